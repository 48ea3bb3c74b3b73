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

import (
	"fmt"
	"runtime"
	"sync"
	"weak"
)

// Registry is the process-global weak-reference table mapping key ->
// cell state. It plays the role the teacher's LockManager plays for named
// locks: findOrCreate reusing a live entry, building a fresh one
// otherwise, except entries here are reclaimed by the garbage collector
// rather than by explicit reference counting, since nothing in the
// example corpus ports cleanly to "destructor runs when the last handle
// goes away" in Go.
type Registry struct {
	mu      sync.Mutex
	entries map[any]any // cacheKey(key) -> weak.Pointer[S], boxed
}

// NewRegistry builds an empty registry. Most callers want Default().
func NewRegistry() *Registry {
	return &Registry{entries: map[any]any{}}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry backing every non-unique key.
func Default() *Registry { return defaultRegistry }

// GetState returns the live state for key, building one with ctor if none
// exists yet (or the previous one was collected). Unique keys always
// build a fresh state and never touch the table. ctor must return *S.
//
// A key that resolves to an existing entry of a different concrete state
// type is a programmer error (two incompatible cells sharing one key) and
// panics rather than silently downcasting.
func GetState[S any](r *Registry, key Key, ctor func() *S) *S {
	if key.IsUnique() {
		return ctor()
	}

	ck := key.cacheKey()

	r.mu.Lock()
	if boxed, ok := r.entries[ck]; ok {
		wp, ok := boxed.(weak.Pointer[S])
		if !ok {
			r.mu.Unlock()
			panic(fmt.Sprintf("cells: key %s is already bound to a different cell type", key))
		}
		if s := wp.Value(); s != nil {
			r.mu.Unlock()
			return s
		}
		delete(r.entries, ck)
	}

	s := ctor()
	wp := weak.Make(s)
	r.entries[ck] = wp
	r.mu.Unlock()

	runtime.AddCleanup(s, r.evict, evictArgs{ck: ck, wp: wp})
	return s
}

// evictArgs pins the exact weak.Pointer a cleanup was registered for, so a
// stale cleanup can be told apart from one belonging to whatever state
// currently occupies the slot.
type evictArgs struct {
	ck any
	wp any // weak.Pointer[S], boxed; compared by == against the live entry
}

// evict runs asynchronously, arbitrarily long after its state was
// collected. By then GetState may already have observed the same slot's
// weak.Pointer as dead and replaced it with a newer state's entry, in
// which case this cleanup belongs to an evicted generation and must not
// delete the newer entry out from under it.
func (r *Registry) evict(args evictArgs) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.entries[args.ck]; ok && current == args.wp {
		delete(r.entries, args.ck)
	}
}

// Size reports the number of live entries currently tracked, used by
// tests asserting that collected states are actually evicted.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
