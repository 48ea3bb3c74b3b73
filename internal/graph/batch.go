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

import "sync"

// Batcher holds the process-global in-batch flag and pending update queue.
// The engine itself runs single-threaded on the calling goroutine; the
// mutex here guards against the same defensive-locking posture the
// teacher applies to its own shared tables, not against concurrent graph
// mutation, which is out of scope.
type Batcher struct {
	mu      sync.Mutex
	depth   int
	pending []func()
}

var globalBatcher = &Batcher{}

// DefaultBatcher returns the process-wide batch scope.
func DefaultBatcher() *Batcher { return globalBatcher }

// InBatch reports whether a batch scope is currently open.
func (b *Batcher) InBatch() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.depth > 0
}

// Enqueue defers notify until the outermost batch scope drains. Callers
// must only enqueue while InBatch() is true.
func (b *Batcher) Enqueue(notify func()) {
	b.mu.Lock()
	b.pending = append(b.pending, notify)
	b.mu.Unlock()
}

// Run opens a batch scope for the duration of fn. Nested calls are no-ops:
// only the outermost call drains the queue, in enqueue order, after fn
// returns.
func (b *Batcher) Run(fn func()) {
	b.mu.Lock()
	outer := b.depth == 0
	b.depth++
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.depth--
		var pending []func()
		if outer && b.depth == 0 {
			pending = b.pending
			b.pending = nil
		}
		b.mu.Unlock()

		for _, notify := range pending {
			notify()
		}
	}()

	fn()
}
