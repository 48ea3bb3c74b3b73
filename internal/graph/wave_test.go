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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveState(t *testing.T) {
	t.Run("a single dependency round-trips one notification", func(t *testing.T) {
		w := newWaveState()
		var willCount, updateCount int
		w.willUpdate(func() { willCount++ })
		w.update(true, func(changed bool) {
			updateCount++
			assert.True(t, changed)
		})
		assert.Equal(t, 1, willCount)
		assert.Equal(t, 1, updateCount)
	})

	t.Run("two will_updates before any update collapse to one notifyOwn", func(t *testing.T) {
		w := newWaveState()
		var willCount int
		w.willUpdate(func() { willCount++ })
		w.willUpdate(func() { willCount++ })
		assert.Equal(t, 1, willCount, "notifyOwn must fire once per wave, not once per dependency")
	})

	t.Run("update fires only once every will_update has been matched", func(t *testing.T) {
		w := newWaveState()
		w.willUpdate(func() {})
		w.willUpdate(func() {})

		var fired int
		w.update(false, func(bool) { fired++ })
		assert.Equal(t, 0, fired, "must wait for the second update")

		w.update(true, func(changed bool) {
			fired++
			assert.True(t, changed, "any-changed must OR across both dependencies")
		})
		assert.Equal(t, 1, fired)
	})

	t.Run("update without a matching will_update panics", func(t *testing.T) {
		w := newWaveState()
		require.Panics(t, func() {
			w.update(true, func(bool) {})
		})
	})

	t.Run("a fresh wave after settling accepts a new will_update", func(t *testing.T) {
		w := newWaveState()
		var willCount int
		w.willUpdate(func() { willCount++ })
		w.update(true, func(bool) {})

		w.willUpdate(func() { willCount++ })
		w.update(false, func(bool) {})
		assert.Equal(t, 2, willCount)
	})
}
