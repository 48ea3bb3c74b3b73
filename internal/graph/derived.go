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

// PeekState reads an argument without ever forwarding a notification: it
// holds an observer on the argument while itself observed (to keep the
// argument alive and initialized) but its own will_update/update are
// no-ops toward its own observers.
type PeekState[T any] struct {
	base *BaseState
	arg  Valuer[T]
}

func NewPeekState[T any](key Key, arg Valuer[T]) *PeekState[T] {
	s := &PeekState[T]{arg: arg}
	s.base = NewBaseState(key, s)
	return s
}

func (s *PeekState[T]) Key() Key                 { return s.base.Key() }
func (s *PeekState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *PeekState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }
func (s *PeekState[T]) Value() (T, error)         { return s.arg.Value() }

func (s *PeekState[T]) onInit()  { s.arg.AddObserver(s) }
func (s *PeekState[T]) onPause() { s.arg.RemoveObserver(s) }

func (s *PeekState[T]) WillUpdate(Key)   {}
func (s *PeekState[T]) Update(Key, bool) {}

// PreviousState tracks the argument's prior value: on construction (first
// observer attach) it records the current value as "current"; on every
// update wave where changed is true, it rotates current into previous and
// fetches the new current, then emits its own update. Reading before the
// first post-init change raises ErrUninitializedCell. It only tracks
// while observed.
type PreviousState[T any] struct {
	base        *BaseState
	arg         Valuer[T]
	current     T
	previous    T
	hasPrevious bool
}

func NewPreviousState[T any](key Key, arg Valuer[T]) *PreviousState[T] {
	s := &PreviousState[T]{arg: arg}
	s.base = NewBaseState(key, s)
	return s
}

func (s *PreviousState[T]) Key() Key                 { return s.base.Key() }
func (s *PreviousState[T]) AddObserver(o Observer)    { s.base.AddObserver(o) }
func (s *PreviousState[T]) RemoveObserver(o Observer) { s.base.RemoveObserver(o) }

func (s *PreviousState[T]) onInit() {
	v, _ := s.arg.Value()
	s.current = v
	s.hasPrevious = false
	s.arg.AddObserver(s)
}

func (s *PreviousState[T]) onPause() {
	s.arg.RemoveObserver(s)
	s.hasPrevious = false
}

func (s *PreviousState[T]) WillUpdate(source Key) {
	s.base.NotifyWillUpdate()
}

func (s *PreviousState[T]) Update(source Key, changed bool) {
	if !changed {
		s.base.NotifyUpdate(false)
		return
	}
	v, _ := s.arg.Value()
	s.previous, s.current = s.current, v
	s.hasPrevious = true
	s.base.NotifyUpdate(true)
}

func (s *PreviousState[T]) Value() (T, error) {
	if !s.hasPrevious {
		var zero T
		return zero, ErrUninitializedCell
	}
	return s.previous, nil
}
