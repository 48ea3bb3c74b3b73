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

// Variable returns a mutable leaf cell holding v, using == to decide
// whether a write is a genuine change.
func Variable[T comparable](v T) MutableCell[T] {
	s := graph.NewMutableState[T](graph.NewUniqueKey("cells.Variable"), v, equalComparable[T], graph.DefaultBatcher())
	return mutableCellHandle[T]{state: s}
}

// VariableWithKey is Variable, sharing state across every handle built
// with an equal key.
func VariableWithKey[T comparable](key Key, v T) MutableCell[T] {
	s := graph.GetState(graph.Default(), key, func() *graph.MutableState[T] {
		return graph.NewMutableState[T](key, v, equalComparable[T], graph.DefaultBatcher())
	})
	return mutableCellHandle[T]{state: s}
}

// VariableFunc is Variable for value types that don't support ==, taking
// an explicit equality function. A nil eq treats every write as a change.
func VariableFunc[T any](v T, eq func(a, b T) bool) MutableCell[T] {
	s := graph.NewMutableState[T](graph.NewUniqueKey("cells.VariableFunc"), v, eq, graph.DefaultBatcher())
	return mutableCellHandle[T]{state: s}
}

func equalComparable[T comparable](a, b T) bool { return a == b }
