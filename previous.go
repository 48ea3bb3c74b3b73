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

// Previous returns a cell holding c's value from immediately before its
// most recent change. It only tracks while observed; reading it before c
// has changed at least once since the first observer attached returns
// ErrUninitializedCell.
func Previous[T any](c Cell[T]) Cell[T] {
	s := graph.NewPreviousState[T](graph.NewUniqueKey("cells.Previous"), c)
	return cellHandle[T]{state: s}
}
