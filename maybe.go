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

// Maybe reifies a compute's outcome as a first-class value: either an Ok
// value or an Err. A zero-value Maybe (constructed without Ok or Err) is
// treated as uninitialized.
type Maybe[T any] struct {
	value         T
	err           error
	isErr         bool
	isInitialized bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, isInitialized: true}
}

// Err wraps a failure.
func Err[T any](err error) Maybe[T] {
	return Maybe[T]{err: err, isErr: true, isInitialized: true}
}

// Get returns the wrapped value and, if this Maybe holds an error (or was
// never initialized), that error -- ErrUninitializedCell for the latter.
func (m Maybe[T]) Get() (T, error) {
	if !m.isInitialized {
		var zero T
		return zero, graph.ErrUninitializedCell
	}
	if m.isErr {
		var zero T
		return zero, m.err
	}
	return m.value, nil
}

// IsOk reports whether this Maybe holds a successful value.
func (m Maybe[T]) IsOk() bool { return m.isInitialized && !m.isErr }

// MaybeCell wraps c so that a compute error becomes a first-class Err
// value instead of a cached, re-raised exception: reading the returned
// cell never itself fails.
func MaybeCell[T any](c Cell[T]) Cell[Maybe[T]] {
	s := graph.NewStaticComputeState[Maybe[T]](graph.NewUniqueKey("cells.MaybeCell"), func() (Maybe[T], error) {
		v, err := c.Value()
		if err != nil {
			return Err[T](err), nil
		}
		return Ok(v), nil
	}, []Observable{c}, nil)
	return cellHandle[Maybe[T]]{state: s}
}

// MutableMaybeCell is MaybeCell for a writable underlying cell: writing
// an Ok value forwards it as a plain assignment; writing an Err value is
// dropped.
func MutableMaybeCell[T any](c MutableCell[T]) MutableCell[Maybe[T]] {
	s := graph.NewMutableComputeState[Maybe[T]](graph.NewUniqueKey("cells.MutableMaybeCell"), func() (Maybe[T], error) {
		v, err := c.Value()
		if err != nil {
			return Err[T](err), nil
		}
		return Ok(v), nil
	}, func(m Maybe[T]) {
		if m.IsOk() {
			v, _ := m.Get()
			c.SetValue(v)
		}
	}, []Observable{c}, graph.DefaultBatcher())
	return mutableCellHandle[Maybe[T]]{state: s}
}
