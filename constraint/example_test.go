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

package constraint_test

import (
	"fmt"

	"rivaas.dev/semroute/constraint"
)

func ExampleNew() {
	stable, err := constraint.New(
		constraint.Min("1.0.0"),
		constraint.Max("2.0.0"),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(stable)
	fmt.Println(stable.Matches("1.5.0"))
	fmt.Println(stable.Matches("3.0.0"))
	// Output:
	// >=1.0.0 <=2.0.0
	// true
	// false
}

func ExampleConstraint_Priority() {
	exact := constraint.MustNew(constraint.Exact("3.0.0"))
	preview := constraint.MustNew(constraint.Min("4.0.0"))

	// Exact constraints always dispatch before range constraints.
	fmt.Println(exact.Priority(preview))
	// Output:
	// -1
}

func ExampleConstraint_Combine() {
	class := constraint.MustNew(constraint.Min("1.0.0"))
	method := constraint.MustNew(constraint.Exact("2.0.0"))

	// The method-level declaration replaces the class-level one outright.
	fmt.Println(class.Combine(method))
	// Output:
	// =2.0.0
}
