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

// WatchHandle controls a running watcher.
type WatchHandle struct {
	state *graph.WatcherState
}

// Stop unsubscribes the watcher from every cell it reads. Idempotent.
func (h *WatchHandle) Stop() {
	h.state.Stop()
}

// Watch runs fn once immediately under argument tracking, recording every
// cell fn reads through Get as a dependency, then reruns fn (re-tracking)
// on every wave that delivers at least one changed dependency. Cells read
// on an earlier run but no longer referenced stay subscribed for the
// watcher's lifetime; call Stop to release them.
func Watch(fn func()) *WatchHandle {
	return &WatchHandle{state: graph.NewWatcherState(fn)}
}
