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

// computeCache is the lazily-populated result slot shared by every
// cached computed-cell variant.
type computeCache[T any] struct {
	value T
	err   error
}

// StaticComputeState is the fixed-argument computed cell of spec §4.5: it
// subscribes to each argument in onInit, unsubscribes in onPause, and
// caches the result of compute. While observed, the final update of a
// wave in which a dependency changed forces an eager recompute (see
// settle); while unobserved, every read recomputes. An optional changeEq
// turns it into the change-filter variant of §4.6: the new value is
// compared against the previous one to decide whether to notify
// changed=true or changed=false.
type StaticComputeState[T any] struct {
	base     *BaseState
	wave     waveState
	args     []Observable
	compute  func() (T, error)
	changeEq func(a, b T) bool
	cache    computeCache[T]
}

// NewStaticComputeState builds a cached computed cell over a fixed
// argument list. changeEq may be nil (plain computed cell).
func NewStaticComputeState[T any](key Key, compute func() (T, error), args []Observable, changeEq func(a, b T) bool) *StaticComputeState[T] {
	s := &StaticComputeState[T]{compute: compute, args: args, wave: newWaveState(), changeEq: changeEq}
	s.base = NewBaseState(key, s)
	return s
}

func (s *StaticComputeState[T]) Key() Key                 { return s.base.Key() }
func (s *StaticComputeState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *StaticComputeState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }

func (s *StaticComputeState[T]) onInit() {
	for _, a := range s.args {
		a.AddObserver(s)
	}
}

func (s *StaticComputeState[T]) onPause() {
	for _, a := range s.args {
		a.RemoveObserver(s)
	}
	s.wave.stale = true
}

func (s *StaticComputeState[T]) WillUpdate(source Key) {
	s.wave.willUpdate(s.base.NotifyWillUpdate)
}

func (s *StaticComputeState[T]) Update(source Key, changed bool) {
	s.wave.update(changed, func(any bool) {
		s.base.NotifyUpdate(s.settle(any))
	})
}

// settle decides the changed flag to forward to this cell's own
// observers. A dependency change forces an eager recompute (rather than
// waiting for the next Value read) purely to make this decision: none()
// means nothing actually changed here, so it is never forwarded as a
// change, with or without a changeEq; a changeEq additionally suppresses
// the forward when the new value compares equal to the old one.
func (s *StaticComputeState[T]) settle(depsChanged bool) bool {
	if !depsChanged {
		return false
	}
	prev := s.cache
	if s.recompute() {
		return false
	}
	if s.changeEq == nil {
		return true
	}
	if prev.err != nil || s.cache.err != nil {
		return true
	}
	return !s.changeEq(prev.value, s.cache.value)
}

func (s *StaticComputeState[T]) Value() (T, error) {
	if s.wave.stale {
		s.recompute()
	}
	return s.cache.value, s.cache.err
}

// recompute shields compute behind an empty tracker frame: static
// arguments are already fixed, so any tracked read compute performs must
// not leak through to an ambient tracker belonging to whatever ancestor
// happened to trigger this lazy recompute. Returns true iff compute
// invoked none(), in which case the prior cache is left untouched.
func (s *StaticComputeState[T]) recompute() bool {
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
