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

// hooks lets a state subclass react to its observer multiset transitioning
// between empty and non-empty. Both methods default to a no-op via
// noHooks; a computed state overrides them to attach/detach its own
// observer registrations on its arguments.
type hooks interface {
	onInit()
	onPause()
}

type noHooks struct{}

func (noHooks) onInit()  {}
func (noHooks) onPause() {}

// BaseState holds the observer multiset for one logical cell and
// dispatches will_update/update notifications to it. Every concrete state
// type embeds or holds a *BaseState and forwards Key/AddObserver/
// RemoveObserver to it.
type BaseState struct {
	key       Key
	hooks     hooks
	observers map[Observer]int
}

// NewBaseState builds a BaseState for key, calling back into h on the
// empty<->non-empty observer transitions. h may be nil.
func NewBaseState(key Key, h hooks) *BaseState {
	if h == nil {
		h = noHooks{}
	}
	return &BaseState{key: key, hooks: h, observers: map[Observer]int{}}
}

func (b *BaseState) Key() Key { return b.key }

// IsActive reports whether this state currently has at least one observer.
func (b *BaseState) IsActive() bool { return len(b.observers) > 0 }

// AddObserver increments o's reference count, firing onInit first if the
// multiset was empty. If onInit panics, the observer is not recorded.
func (b *BaseState) AddObserver(o Observer) {
	if len(b.observers) == 0 {
		b.hooks.onInit()
	}
	b.observers[o]++
}

// RemoveObserver decrements o's reference count, removing the entry at
// zero and firing onPause if the multiset became empty.
func (b *BaseState) RemoveObserver(o Observer) {
	n, ok := b.observers[o]
	if !ok {
		return
	}
	if n <= 1 {
		delete(b.observers, o)
	} else {
		b.observers[o] = n - 1
	}
	if len(b.observers) == 0 {
		b.hooks.onPause()
	}
}

// NotifyWillUpdate dispatches WillUpdate to a snapshot of the observer
// multiset, so an observer that mutates the multiset mid-dispatch (by
// subscribing or unsubscribing as a reaction) doesn't corrupt the
// iteration. A panicking observer is isolated and does not block the rest.
func (b *BaseState) NotifyWillUpdate() {
	for o := range b.snapshot() {
		dispatchWillUpdate(o, b.key)
	}
}

// NotifyUpdate is NotifyWillUpdate's update-phase counterpart.
func (b *BaseState) NotifyUpdate(changed bool) {
	for o := range b.snapshot() {
		dispatchUpdate(o, b.key, changed)
	}
}

func (b *BaseState) snapshot() map[Observer]int {
	cp := make(map[Observer]int, len(b.observers))
	for o, n := range b.observers {
		cp[o] = n
	}
	return cp
}

func dispatchWillUpdate(o Observer, source Key) {
	defer func() { recover() }()
	o.WillUpdate(source)
}

func dispatchUpdate(o Observer, source Key, changed bool) {
	defer func() { recover() }()
	o.Update(source, changed)
}
