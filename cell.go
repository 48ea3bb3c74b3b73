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

// Key identifies a logical cell; equal keys mean the same cell, sharing
// backing state. Build one with a constant's value, ValueKey, or
// UniqueKey.
type Key = graph.Key

// Observer receives will_update/update notifications from a cell it is
// attached to.
type Observer = graph.Observer

// Observable is the minimal capability a static Computed's argument list
// needs from a cell without knowing its value type: Go generics can't
// express "heterogeneous list of Cell[T] for varying T" directly, so
// argument lists are typed as []Observable. Any Cell[T] already satisfies
// it.
type Observable = graph.Observable

// UniqueKey returns a key that never shares state with any other key,
// including another unique key built with the same label. label is for
// diagnostics only.
func UniqueKey(label string) Key { return graph.NewUniqueKey(label) }

// ValueKey returns a key identified by a tag plus one or more contained
// values, compared by deep equality. Cells built from equal value keys
// share backing state.
func ValueKey(tag string, parts ...any) Key { return graph.NewValueKey(tag, parts...) }

// Cell is a handle to a node in the reactive graph: readable, observable,
// and cheap to copy (copies denote the same logical cell).
type Cell[T any] interface {
	Key() Key
	Value() (T, error)
	AddObserver(o Observer)
	RemoveObserver(o Observer)
}

// MutableCell is a Cell that can also be written.
type MutableCell[T any] interface {
	Cell[T]
	SetValue(v T)
}

// cellHandle adapts any graph.Valuer[T] state to Cell[T].
type cellHandle[T any] struct {
	state graph.Valuer[T]
}

func (c cellHandle[T]) Key() Key                 { return c.state.Key() }
func (c cellHandle[T]) Value() (T, error)         { return c.state.Value() }
func (c cellHandle[T]) AddObserver(o Observer)    { c.state.AddObserver(o) }
func (c cellHandle[T]) RemoveObserver(o Observer) { c.state.RemoveObserver(o) }

// mutableState is the capability set a mutableCellHandle needs.
type mutableState[T any] interface {
	graph.Valuer[T]
	SetValue(v T)
}

// mutableCellHandle adapts any mutableState[T] to MutableCell[T].
type mutableCellHandle[T any] struct {
	state mutableState[T]
}

func (c mutableCellHandle[T]) Key() Key                 { return c.state.Key() }
func (c mutableCellHandle[T]) Value() (T, error)         { return c.state.Value() }
func (c mutableCellHandle[T]) AddObserver(o Observer)    { c.state.AddObserver(o) }
func (c mutableCellHandle[T]) RemoveObserver(o Observer) { c.state.RemoveObserver(o) }
func (c mutableCellHandle[T]) SetValue(v T)              { c.state.SetValue(v) }

// Get is the tracked read: it registers c as a dependency of whatever
// dynamic compute or watcher body currently owns the argument tracker (a
// no-op outside of one), then returns c's current value. Use it inside
// ComputedDynamic, MutableComputedDynamic, and Watch bodies; a static
// Computed's argument list is already fixed, so reading its declared
// arguments with Get is harmless but unnecessary -- a plain c.Value()
// works just as well there.
func Get[T any](c Cell[T]) (T, error) {
	graph.TrackArgument(c)
	return c.Value()
}

// None aborts the current compute, asking the engine to keep the
// previously cached value. It returns the zero value of T and
// ErrStopCompute; a compute function should simply return its result.
func None[T any]() (T, error) {
	var zero T
	return zero, graph.ErrStopCompute
}
