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

// Package cells implements a reactive cell graph: values expressed as a
// directed acyclic graph of cells, where each cell holds a primitive
// value, is computed from other cells, or is a mutable view assigned
// through a reverse-computation function. Observers attached to any cell
// are notified exactly when that cell's value changes; diamond-shaped
// dependency graphs never expose a glitched intermediate value.
//
// The engine is single-threaded and synchronous: every operation (reads,
// writes, batch open/close, observer callbacks) runs on the calling
// goroutine. The heavy machinery -- state registry, propagation wave,
// argument tracker, batch queue -- lives in the internal graph package;
// this package is the ergonomic, generics-based façade over it.
//
// A minimal diamond:
//
//	a := cells.Variable(0)
//	sum := cells.Computed(func() (int, error) {
//		av, _ := cells.Get(a)
//		return av + 1, nil
//	}, a)
//	prod := cells.Computed(func() (int, error) {
//		av, _ := cells.Get(a)
//		return av * 8, nil
//	}, a)
//	result := cells.Computed(func() (int, error) {
//		sv, _ := cells.Get(sum)
//		pv, _ := cells.Get(prod)
//		return sv + pv, nil
//	}, sum, prod)
//
//	cells.Watch(func() {
//		v, _ := cells.Get(result)
//		fmt.Println(v)
//	})
//	a.SetValue(2) // prints 19, never an intermediate 17 or 18
package cells
