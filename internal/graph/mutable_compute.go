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

// MutableComputeState is the cached mutable-view cell of spec §4.5: a
// computed cell (fixed argument list) with a user-supplied reverse
// function. A write runs the six-step dance from the component design --
// notify, cache silently, run reverse inside a nested batch, then notify
// or enqueue -- while reverseInProgress suppresses the will_update/update
// this cell would otherwise receive back from its own arguments as a
// result of reverse writing to them (the wave originated here and has
// already been delivered).
type MutableComputeState[T any] struct {
	base              *BaseState
	wave              waveState
	args              []Observable
	compute           func() (T, error)
	reverse           func(T)
	cache             computeCache[T]
	batcher           *Batcher
	reverseInProgress bool
}

// NewMutableComputeState builds a cached mutable computed cell.
func NewMutableComputeState[T any](key Key, compute func() (T, error), reverse func(T), args []Observable, batcher *Batcher) *MutableComputeState[T] {
	s := &MutableComputeState[T]{compute: compute, reverse: reverse, args: args, wave: newWaveState(), batcher: batcher}
	s.base = NewBaseState(key, s)
	return s
}

func (s *MutableComputeState[T]) Key() Key                 { return s.base.Key() }
func (s *MutableComputeState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *MutableComputeState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }

func (s *MutableComputeState[T]) onInit() {
	for _, a := range s.args {
		a.AddObserver(s)
	}
}

func (s *MutableComputeState[T]) onPause() {
	for _, a := range s.args {
		a.RemoveObserver(s)
	}
	s.wave.stale = true
}

func (s *MutableComputeState[T]) WillUpdate(source Key) {
	if s.reverseInProgress {
		return
	}
	s.wave.willUpdate(s.base.NotifyWillUpdate)
}

func (s *MutableComputeState[T]) Update(source Key, changed bool) {
	if s.reverseInProgress {
		return
	}
	s.wave.update(changed, func(any bool) {
		s.base.NotifyUpdate(s.settle(any))
	})
}

// settle mirrors StaticComputeState.settle: an eager recompute decides
// whether to forward the change, and none() always suppresses it.
func (s *MutableComputeState[T]) settle(depsChanged bool) bool {
	if !depsChanged {
		return false
	}
	return !s.recompute()
}

func (s *MutableComputeState[T]) Value() (T, error) {
	if s.wave.stale {
		s.recompute()
	}
	return s.cache.value, s.cache.err
}

// recompute shields compute behind an empty tracker frame; see
// StaticComputeState.recompute for why. Returns true iff compute invoked
// none().
func (s *MutableComputeState[T]) recompute() bool {
	var v T
	var err error
	WithTracker(func(Observable) {}, func() {
		v, err = runCompute(s.base.Key(), s.compute)
	})
	stopped := errors.Is(err, ErrStopCompute)
	if !stopped {
		s.cache = computeCache[T]{value: v, err: err}
	}
	s.wave.stale = !s.base.IsActive()
	return stopped
}

// SetValue assigns v through the reverse function, per spec §4.5.
func (s *MutableComputeState[T]) SetValue(v T) {
	s.reverseInProgress = true
	defer func() { s.reverseInProgress = false }()

	s.base.NotifyWillUpdate()
	s.cache = computeCache[T]{value: v}
	s.wave.stale = false
	s.wave.updating = false

	wasInBatch := s.batcher.InBatch()
	s.batcher.Run(func() {
		defer func() { recover() }() // exceptions from reverse are swallowed
		s.reverse(v)
	})

	if wasInBatch {
		s.batcher.Enqueue(func() { s.base.NotifyUpdate(true) })
	} else {
		s.base.NotifyUpdate(true)
	}
}
