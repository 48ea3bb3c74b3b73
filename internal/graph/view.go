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

package graph

// ViewState is the stateless mutable view of spec §6 ("cell_view"): no
// cache and no wave bookkeeping of its own. A read re-runs compute against
// the arguments' current values every time; a write opens a batch and
// runs reverse inside it. Grounded on the original source's
// mutable_cell_view, whose value(v) setter is exactly
// `batch([&]{ reverse(value); })` with no notify_will_update/notify_update
// of its own -- observers attach straight through to the argument cells,
// so a view's observer sees one notification per argument rather than one
// collapsed notification per wave.
type ViewState[T any] struct {
	key     Key
	args    []Observable
	compute func() (T, error)
	reverse func(T)
	batcher *Batcher
}

// NewViewState builds a stateless mutable view over args.
func NewViewState[T any](key Key, compute func() (T, error), reverse func(T), args []Observable, batcher *Batcher) *ViewState[T] {
	return &ViewState[T]{key: key, compute: compute, reverse: reverse, args: args, batcher: batcher}
}

func (s *ViewState[T]) Key() Key { return s.key }

func (s *ViewState[T]) AddObserver(o Observer) {
	for _, a := range s.args {
		a.AddObserver(o)
	}
}

func (s *ViewState[T]) RemoveObserver(o Observer) {
	for _, a := range s.args {
		a.RemoveObserver(o)
	}
}

func (s *ViewState[T]) Value() (T, error) { return s.compute() }

func (s *ViewState[T]) SetValue(v T) {
	s.batcher.Run(func() {
		s.reverse(v)
	})
}
