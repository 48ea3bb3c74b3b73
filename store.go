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

package cells

import "github.com/cellgraph/cells/internal/graph"

// Store wraps c in a stateful cell that caches c's value: equivalent to a
// unary Computed whose compute is c.Value(). Useful for giving a
// stateless view (such as a CellView) the caching and single-notification
// behavior of an ordinary computed cell.
func Store[T any](c Cell[T]) Cell[T] {
	s := graph.NewStaticComputeState[T](graph.NewUniqueKey("cells.Store"), func() (T, error) {
		return c.Value()
	}, []Observable{c}, nil)
	return cellHandle[T]{state: s}
}
