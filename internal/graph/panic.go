// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package graph

import (
	"fmt"

	"github.com/urso/sderr"
)

// runCompute calls compute and turns a panic into an error carrying key
// as structured context, rather than letting it unwind through whichever
// cell happened to trigger this recompute. A well-behaved compute
// function never needs this; it exists so one misbehaving cell cannot
// take down a wave it merely participates in.
func runCompute[T any](key Key, compute func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = sderr.Wrap(fmt.Errorf("%v", r), "panic in compute for %{key}", key)
		}
	}()
	return compute()
}
