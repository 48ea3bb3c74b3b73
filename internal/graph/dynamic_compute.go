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

// DynamicComputeState discovers its arguments by running compute inside
// an argument tracker (spec §4.5). After each recompute, it diffs the
// newly-tracked cell set against the previous one: cells no longer
// referenced are unsubscribed immediately (not merely on pause), so a
// dynamic cell that stops reading one of its arguments stops reacting to
// it right away -- required by the "after cond=false, writes to x must
// not notify" clause of the dynamic-dependency-switching scenario, a
// stricter rule than the "arguments only ever accumulate" phrasing a
// literal reading of the component description might suggest.
type DynamicComputeState[T any] struct {
	base     *BaseState
	wave     waveState
	compute  func() (T, error)
	changeEq func(a, b T) bool
	cache    computeCache[T]
	args     map[any]Observable // keyed by Key.cacheKey()
}

// NewDynamicComputeState builds a dynamic-argument computed cell.
// changeEq may be nil.
func NewDynamicComputeState[T any](key Key, compute func() (T, error), changeEq func(a, b T) bool) *DynamicComputeState[T] {
	s := &DynamicComputeState[T]{compute: compute, wave: newWaveState(), changeEq: changeEq, args: map[any]Observable{}}
	s.base = NewBaseState(key, s)
	return s
}

func (s *DynamicComputeState[T]) Key() Key                 { return s.base.Key() }
func (s *DynamicComputeState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *DynamicComputeState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }

func (s *DynamicComputeState[T]) onInit() {
	s.recompute() // primes the cache; a compute error is captured, not raised
}

func (s *DynamicComputeState[T]) onPause() {
	for _, a := range s.args {
		a.RemoveObserver(s)
	}
	s.args = map[any]Observable{}
	s.wave.stale = true
}

func (s *DynamicComputeState[T]) WillUpdate(source Key) {
	s.wave.willUpdate(s.base.NotifyWillUpdate)
}

func (s *DynamicComputeState[T]) Update(source Key, changed bool) {
	s.wave.update(changed, func(any bool) {
		s.base.NotifyUpdate(s.settle(any))
	})
}

// settle mirrors StaticComputeState.settle: none() always suppresses the
// forwarded change regardless of changeEq; see its doc comment.
func (s *DynamicComputeState[T]) settle(depsChanged bool) bool {
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

func (s *DynamicComputeState[T]) Value() (T, error) {
	if s.wave.stale {
		s.recompute()
	}
	return s.cache.value, s.cache.err
}

// recompute returns true iff compute invoked none().
func (s *DynamicComputeState[T]) recompute() bool {
	seen := map[any]Observable{}
	v, err := s.computeTracked(seen)
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

func (s *DynamicComputeState[T]) computeTracked(seen map[any]Observable) (T, error) {
	var v T
	var err error
	WithTracker(func(o Observable) {
		seen[o.Key().cacheKey()] = o
	}, func() {
		v, err = runCompute(s.base.Key(), s.compute)
	})
	return v, err
}
