// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semroute

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/semroute/constraint"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func newScenarioMux(t *testing.T, opts ...MuxOption) *Mux {
	t.Helper()

	tbl := NewTable()
	tbl.MustAdd("GET", "/orders", textHandler("v1"),
		WithConstraint(constraint.MustNew(constraint.Min("1.0.0"), constraint.Max("1.9.9"))))
	tbl.MustAdd("GET", "/orders", textHandler("v2"),
		WithConstraint(constraint.MustNew(constraint.Min("2.0.0"))))
	tbl.MustAdd("GET", "/orders", textHandler("default"))

	return MustNewMux(MustNew(WithTable(tbl)), opts...)
}

func TestMuxServeHTTP(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by version header", func(t *testing.T) {
		t.Parallel()

		mux := newScenarioMux(t)

		tests := []struct {
			header string
			want   string
		}{
			{"1.2.0", "v1"},
			{"2.4.0", "v2"},
			{"", "default"},
			{"nonsense", "default"},
		}

		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set(constraint.DefaultHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "header %q", tt.header)
			assert.Equal(t, tt.want, rec.Body.String(), "header %q", tt.header)
		}
	})

	t.Run("unmatched requests get 404", func(t *testing.T) {
		t.Parallel()

		mux := newScenarioMux(t)

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("custom not found handler", func(t *testing.T) {
		t.Parallel()

		mux := newScenarioMux(t, WithNotFoundHandler(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusGone)
			})))

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusGone, rec.Code)
	})

	t.Run("response header echoes resolved version", func(t *testing.T) {
		t.Parallel()

		mux := newScenarioMux(t, WithResponseHeader())

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set(constraint.DefaultHeader, "2.4.0")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, "2.4.0", rec.Header().Get(ResponseHeader))

		// No version to echo on fallback with an absent header.
		req = httptest.NewRequest(http.MethodGet, "/orders", nil)
		rec = httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get(ResponseHeader))
	})
}

func TestNewMuxValidation(t *testing.T) {
	t.Parallel()

	_, err := NewMux(nil)
	assert.ErrorIs(t, err, ErrNilResolver)

	_, err = NewMux(MustNew(), WithNotFoundHandler(nil))
	assert.ErrorIs(t, err, ErrNilHandler)

	require.Panics(t, func() { MustNewMux(nil) })
}
