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

// constantState never forwards observers and never recomputes; its key is
// a value key over v itself.
type constantState[T any] struct {
	key   Key
	value T
}

func (c constantState[T]) Key() Key               { return c.key }
func (c constantState[T]) Value() (T, error)       { return c.value, nil }
func (c constantState[T]) AddObserver(Observer)    {}
func (c constantState[T]) RemoveObserver(Observer) {}

// Constant returns an immutable cell holding v. Two constants built from
// equal values share a key, so they compare equal as graph nodes (e.g.
// hashing identically as a downstream computed cell's argument).
func Constant[T any](v T) Cell[T] {
	return cellHandle[T]{state: constantState[T]{key: graph.NewValueKey("cells.Constant", v), value: v}}
}
