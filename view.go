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

// CellView returns a stateless mutable view over args: unlike
// MutableComputed, it holds no cache, recomputing compute from args'
// current values on every read, and SetValue simply opens a batch and
// runs reverse inside it. An observer attached to a view is attached
// straight through to its arguments, so it sees one notification per
// argument rather than one collapsed notification per wave.
func CellView[T any](compute func() (T, error), reverse func(T), args ...Observable) MutableCell[T] {
	s := graph.NewViewState[T](graph.NewUniqueKey("cells.CellView"), compute, reverse, args, graph.DefaultBatcher())
	return mutableCellHandle[T]{state: s}
}
