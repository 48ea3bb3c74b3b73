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

// MutableComputed returns a cached, fixed-argument computed cell that can
// also be written: SetValue(v) caches v directly, then runs reverse
// inside a batch so reverse's own writes to args produce one coalesced
// notification. Exceptions from reverse are swallowed; the forward write
// to the cache still stands.
func MutableComputed[T any](compute func() (T, error), reverse func(T), args ...Observable) MutableCell[T] {
	s := graph.NewMutableComputeState[T](graph.NewUniqueKey("cells.MutableComputed"), compute, reverse, args, graph.DefaultBatcher())
	return mutableCellHandle[T]{state: s}
}

// MutableComputedWithKey is MutableComputed, sharing state across handles
// built with an equal key.
func MutableComputedWithKey[T any](key Key, compute func() (T, error), reverse func(T), args ...Observable) MutableCell[T] {
	s := graph.GetState(graph.Default(), key, func() *graph.MutableComputeState[T] {
		return graph.NewMutableComputeState[T](key, compute, reverse, args, graph.DefaultBatcher())
	})
	return mutableCellHandle[T]{state: s}
}

// MutableComputedDynamic is MutableComputed with dynamically-discovered
// arguments, as ComputedDynamic is to Computed.
func MutableComputedDynamic[T any](compute func() (T, error), reverse func(T)) MutableCell[T] {
	s := graph.NewDynamicMutableComputeState[T](graph.NewUniqueKey("cells.MutableComputedDynamic"), compute, reverse, graph.DefaultBatcher())
	return mutableCellHandle[T]{state: s}
}

// MutableComputedDynamicWithKey is MutableComputedDynamic, sharing state
// across handles built with an equal key.
func MutableComputedDynamicWithKey[T any](key Key, compute func() (T, error), reverse func(T)) MutableCell[T] {
	s := graph.GetState(graph.Default(), key, func() *graph.DynamicMutableComputeState[T] {
		return graph.NewDynamicMutableComputeState[T](key, compute, reverse, graph.DefaultBatcher())
	})
	return mutableCellHandle[T]{state: s}
}
