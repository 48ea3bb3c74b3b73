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

// waveState is the per-wave bookkeeping shared by every computed-cell
// variant: the two-phase will_update/update protocol that collapses an
// arbitrary diamond fan-in into exactly one visible transition per wave.
type waveState struct {
	stale          bool
	updating       bool
	depWillCount   int
	depUpdateCount int
	anyChanged     bool
}

func newWaveState() waveState {
	return waveState{stale: true}
}

// willUpdate runs notifyOwn exactly once per wave, on the first will_update
// received, then counts every call so update can tell when the wave closes.
func (w *waveState) willUpdate(notifyOwn func()) {
	if !w.updating {
		w.updating = true
		w.anyChanged = false
		w.depWillCount = 0
		w.depUpdateCount = 0
		notifyOwn()
		w.stale = true
	}
	w.depWillCount++
}

// update accumulates changed across all deps that sent will_update this
// wave and, once every one of them has reported back, fires notifyOwn
// exactly once with the OR of their changed flags.
func (w *waveState) update(changed bool, notifyOwn func(bool)) {
	if !w.updating {
		panic("cells: update received without a matching will_update")
	}
	w.anyChanged = w.anyChanged || changed
	w.depUpdateCount++
	if w.depUpdateCount == w.depWillCount {
		notifyOwn(w.anyChanged)
		w.updating = false
	}
}
