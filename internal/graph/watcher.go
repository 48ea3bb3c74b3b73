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

// WatcherState is the imperative side-effect observer of spec §4.6: it
// runs fn once immediately under argument tracking, then on every wave
// that delivers at least one changed=true dependency update, reruns fn
// and re-tracks. Cells previously read but no longer referenced stay
// subscribed for the watcher's lifetime -- unlike DynamicComputeState,
// which prunes eagerly -- matching the looser guarantee the component
// design gives specifically for watchers ("acceptable as long as the
// watcher is stopped in bounded time").
type WatcherState struct {
	fn      func()
	wave    waveState
	args    map[any]Observable // keyed by Key.cacheKey()
	stopped bool
}

// NewWatcherState builds and immediately runs a watcher.
func NewWatcherState(fn func()) *WatcherState {
	w := &WatcherState{fn: fn, wave: newWaveState(), args: map[any]Observable{}}
	w.runTracked()
	return w
}

func (w *WatcherState) WillUpdate(source Key) {
	w.wave.willUpdate(func() {})
}

func (w *WatcherState) Update(source Key, changed bool) {
	w.wave.update(changed, func(any bool) {
		if any && !w.stopped {
			w.runTracked()
		}
	})
}

func (w *WatcherState) runTracked() {
	WithTracker(func(o Observable) {
		k := o.Key().cacheKey()
		if _, ok := w.args[k]; !ok {
			o.AddObserver(w)
			w.args[k] = o
		}
	}, w.fn)
}

// Stop unsubscribes from every recorded dependency. Idempotent.
func (w *WatcherState) Stop() {
	if w.stopped {
		return
	}
	w.stopped = true
	for _, a := range w.args {
		a.RemoveObserver(w)
	}
	w.args = map[any]Observable{}
}
