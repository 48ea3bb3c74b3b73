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

// Tracker receives each cell read through the tracked-read entry point
// while it is the active tracker.
type Tracker func(o Observable)

// trackerStack holds the nested tracked-read scopes. The argument tracker
// is process-global per the single-threaded contract; nesting happens
// when a dynamic compute or watcher body reads a cell that itself
// recomputes another dynamic cell as a side effect of being read.
var trackerStack []Tracker

// WithTracker installs fn as the active tracker for the duration of body,
// restoring whatever was active before on every exit path, including a
// panic, the same scoped register/restore shape the teacher's
// context-cancellation helper uses for its own scoped slot.
func WithTracker(fn Tracker, body func()) {
	trackerStack = append(trackerStack, fn)
	defer func() {
		trackerStack = trackerStack[:len(trackerStack)-1]
	}()
	body()
}

// TrackArgument notifies the currently active tracker, if any, that o was
// read. Outside of WithTracker it is a no-op, matching an untracked
// value() read.
func TrackArgument(o Observable) {
	if len(trackerStack) == 0 {
		return
	}
	trackerStack[len(trackerStack)-1](o)
}
