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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/semroute/constraint"
)

// TestConcurrentResolve hammers one snapshot from many goroutines.
// Resolution is read-only, so every goroutine must see identical results.
func TestConcurrentResolve(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	exact := tbl.MustAdd("GET", "/orders", noopHandler(),
		WithConstraint(constraint.MustNew(constraint.Exact("3.0.0"))))
	tbl.MustAdd("GET", "/orders", noopHandler(),
		WithConstraint(constraint.MustNew(constraint.Min("1.0.0"))))
	fallback := tbl.MustAdd("GET", "/orders", noopHandler())

	r := MustNew(WithTable(tbl))

	const goroutines = 32
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)

	errs := make(chan error, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			for range iterations {
				rt, _, err := r.ResolveRoute("GET", "/orders", versionHeader("3.0.0"))
				if err != nil || rt != exact {
					errs <- errors.New("exact resolution diverged")

					return
				}

				rt, _, err = r.ResolveRoute("GET", "/orders", nil)
				if err != nil || rt != fallback {
					errs <- errors.New("fallback resolution diverged")

					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

// TestConcurrentResolveDuringSwap swaps tables while resolutions run.
// Every resolution must observe a complete snapshot: either table's
// answer is fine, a mix or a failure is not.
func TestConcurrentResolveDuringSwap(t *testing.T) {
	t.Parallel()

	tableA := NewTable()
	routeA := tableA.MustAdd("GET", "/orders", noopHandler())

	tableB := NewTable()
	routeB := tableB.MustAdd("GET", "/orders", noopHandler())

	r := MustNew(WithTable(tableA))

	const readers = 16
	const swaps = 200

	var wg sync.WaitGroup
	wg.Add(readers + 1)

	stop := make(chan struct{})
	errs := make(chan error, readers)

	for range readers {
		go func() {
			defer wg.Done()

			for {
				select {
				case <-stop:
					return
				default:
				}

				rt, _, err := r.ResolveRoute("GET", "/orders", nil)
				if err != nil {
					errs <- err

					return
				}
				if rt != routeA && rt != routeB {
					errs <- errors.New("resolved route from neither snapshot")

					return
				}
			}
		}()
	}

	go func() {
		defer wg.Done()
		defer close(stop)

		for i := range swaps {
			if i%2 == 0 {
				_ = r.SetTable(tableB)
			} else {
				_ = r.SetTable(tableA)
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
