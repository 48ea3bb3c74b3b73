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

import "errors"

// DynamicMutableComputeState is the dynamic-argument counterpart of
// MutableComputeState: it discovers its arguments via the argument
// tracker (like DynamicComputeState) but also accepts writes through a
// reverse function (like MutableComputeState), suppressing the
// will_update/update it would otherwise receive back from its own
// arguments while a reverse write is in flight.
type DynamicMutableComputeState[T any] struct {
	base              *BaseState
	wave              waveState
	compute           func() (T, error)
	reverse           func(T)
	cache             computeCache[T]
	args              map[any]Observable // keyed by Key.cacheKey()
	batcher           *Batcher
	reverseInProgress bool
}

func NewDynamicMutableComputeState[T any](key Key, compute func() (T, error), reverse func(T), batcher *Batcher) *DynamicMutableComputeState[T] {
	s := &DynamicMutableComputeState[T]{compute: compute, reverse: reverse, wave: newWaveState(), args: map[any]Observable{}, batcher: batcher}
	s.base = NewBaseState(key, s)
	return s
}

func (s *DynamicMutableComputeState[T]) Key() Key                 { return s.base.Key() }
func (s *DynamicMutableComputeState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *DynamicMutableComputeState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }

func (s *DynamicMutableComputeState[T]) onInit() {
	s.recompute()
}

func (s *DynamicMutableComputeState[T]) onPause() {
	for _, a := range s.args {
		a.RemoveObserver(s)
	}
	s.args = map[any]Observable{}
	s.wave.stale = true
}

func (s *DynamicMutableComputeState[T]) WillUpdate(source Key) {
	if s.reverseInProgress {
		return
	}
	s.wave.willUpdate(s.base.NotifyWillUpdate)
}

func (s *DynamicMutableComputeState[T]) Update(source Key, changed bool) {
	if s.reverseInProgress {
		return
	}
	s.wave.update(changed, func(any bool) {
		s.base.NotifyUpdate(s.settle(any))
	})
}

// settle mirrors StaticComputeState.settle.
func (s *DynamicMutableComputeState[T]) settle(depsChanged bool) bool {
	if !depsChanged {
		return false
	}
	return !s.recompute()
}

func (s *DynamicMutableComputeState[T]) Value() (T, error) {
	if s.wave.stale {
		s.recompute()
	}
	return s.cache.value, s.cache.err
}

// recompute returns true iff compute invoked none().
func (s *DynamicMutableComputeState[T]) recompute() bool {
	seen := map[any]Observable{}
	var v T
	var err error
	WithTracker(func(o Observable) {
		seen[o.Key().cacheKey()] = o
	}, func() {
		v, err = runCompute(s.base.Key(), s.compute)
	})

	stopped := errors.Is(err, ErrStopCompute)
	if !stopped {
		s.cache = computeCache[T]{value: v, err: err}
	}

	for k, a := range s.args {
		if _, ok := seen[k]; !ok {
			a.RemoveObserver(s)
			delete(s.args, k)
		}
	}
	for k, a := range seen {
		if _, ok := s.args[k]; !ok {
			a.AddObserver(s)
			s.args[k] = a
		}
	}

	s.wave.stale = !s.base.IsActive()
	return stopped
}

// SetValue mirrors MutableComputeState.SetValue; see its doc comment.
func (s *DynamicMutableComputeState[T]) SetValue(v T) {
	s.reverseInProgress = true
	defer func() { s.reverseInProgress = false }()

	s.base.NotifyWillUpdate()
	s.cache = computeCache[T]{value: v}
	s.wave.stale = false
	s.wave.updating = false

	wasInBatch := s.batcher.InBatch()
	s.batcher.Run(func() {
		defer func() { recover() }()
		s.reverse(v)
	})

	if wasInBatch {
		s.batcher.Enqueue(func() { s.base.NotifyUpdate(true) })
	} else {
		s.base.NotifyUpdate(true)
	}
}
