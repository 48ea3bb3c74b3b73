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

// Computed returns a cached cell over a fixed argument list: the cell
// subscribes to each of args when it gains its first observer and
// unsubscribes when it loses its last. While observed, compute re-runs
// once at the end of each wave in which an argument changed and reads
// return the cached result; while unobserved, every Value read re-runs
// compute.
func Computed[T any](compute func() (T, error), args ...Observable) Cell[T] {
	s := graph.NewStaticComputeState[T](graph.NewUniqueKey("cells.Computed"), compute, args, nil)
	return cellHandle[T]{state: s}
}

// ComputedWithKey is Computed, sharing state across handles built with an
// equal key -- e.g. two call sites constructing "the same" derived cell
// over the same arguments reuse one cache and one subscription.
func ComputedWithKey[T any](key Key, compute func() (T, error), args ...Observable) Cell[T] {
	s := graph.GetState(graph.Default(), key, func() *graph.StaticComputeState[T] {
		return graph.NewStaticComputeState[T](key, compute, args, nil)
	})
	return cellHandle[T]{state: s}
}

// ComputedChanges is Computed for a comparable T, additionally
// suppressing the outward update when a recompute produces a value equal
// (by ==) to the previous one: the change-filter variant of spec §4.6.
func ComputedChanges[T comparable](compute func() (T, error), args ...Observable) Cell[T] {
	s := graph.NewStaticComputeState[T](graph.NewUniqueKey("cells.ComputedChanges"), compute, args, equalComparable[T])
	return cellHandle[T]{state: s}
}

// ComputedChangesFunc is ComputedChanges with an explicit equality
// function, for value types that don't support ==.
func ComputedChangesFunc[T any](eq func(a, b T) bool, compute func() (T, error), args ...Observable) Cell[T] {
	s := graph.NewStaticComputeState[T](graph.NewUniqueKey("cells.ComputedChangesFunc"), compute, args, eq)
	return cellHandle[T]{state: s}
}

// ComputedDynamic returns a cached cell whose arguments are discovered by
// calling compute inside the argument tracker: every cell read through
// Get during compute becomes a dependency, re-evaluated on each call
// (dropping cells no longer referenced, adding newly referenced ones).
func ComputedDynamic[T any](compute func() (T, error)) Cell[T] {
	s := graph.NewDynamicComputeState[T](graph.NewUniqueKey("cells.ComputedDynamic"), compute, nil)
	return cellHandle[T]{state: s}
}

// ComputedDynamicWithKey is ComputedDynamic, sharing state across handles
// built with an equal key.
func ComputedDynamicWithKey[T any](key Key, compute func() (T, error)) Cell[T] {
	s := graph.GetState(graph.Default(), key, func() *graph.DynamicComputeState[T] {
		return graph.NewDynamicComputeState[T](key, compute, nil)
	})
	return cellHandle[T]{state: s}
}

// ComputedDynamicChanges is ComputedDynamic with change-filtering for a
// comparable T.
func ComputedDynamicChanges[T comparable](compute func() (T, error)) Cell[T] {
	s := graph.NewDynamicComputeState[T](graph.NewUniqueKey("cells.ComputedDynamicChanges"), compute, equalComparable[T])
	return cellHandle[T]{state: s}
}
