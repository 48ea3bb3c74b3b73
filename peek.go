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

// Peek reads c's value without creating a dependency edge: a tracked read
// of the returned cell never registers c as a dependency, and the
// returned cell never forwards notifications to its own observers. It
// still holds c alive and initialized while itself observed.
func Peek[T any](c Cell[T]) Cell[T] {
	s := graph.NewPeekState[T](graph.NewUniqueKey("cells.Peek"), c)
	return cellHandle[T]{state: s}
}
