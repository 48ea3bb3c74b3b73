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

import "errors"

// ErrStopCompute is the short-circuit control value a compute function
// returns to mean "abandon this recompute, keep the previously cached
// value". It never reaches an observer or a caller of Value() on a
// healthy path; the compute state recognizes it and swallows it.
var ErrStopCompute = errors.New("cells: stop compute, keep previous value")

// ErrUninitializedCell is returned by a previous-value cell before its
// argument has changed at least once while observed.
var ErrUninitializedCell = errors.New("cells: cell has not produced a value yet")
