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

package cells_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/cells"
)

func TestVariable(t *testing.T) {
	t.Run("round-trips its initial value", func(t *testing.T) {
		v := cells.Variable(42)
		got, err := v.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("writing an equal value is silent", func(t *testing.T) {
		v := cells.Variable(1)
		var notified int
		h := cells.Watch(func() { _, _ = cells.Get(v); notified++ })
		defer h.Stop()

		notified = 0
		v.SetValue(1)
		assert.Equal(t, 0, notified)

		v.SetValue(2)
		assert.Equal(t, 1, notified)
	})

	t.Run("VariableWithKey shares state across handles", func(t *testing.T) {
		key := cells.ValueKey("shared-var")
		a := cells.VariableWithKey(key, 1)
		b := cells.VariableWithKey(key, 99) // initial value ignored: state already exists

		a.SetValue(5)
		got, err := b.Value()
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("VariableFunc accepts a custom equality function", func(t *testing.T) {
		type point struct{ x, y int }
		eq := func(a, b point) bool { return a == b }
		v := cells.VariableFunc(point{1, 2}, eq)

		var notified int
		h := cells.Watch(func() { _, _ = cells.Get(v); notified++ })
		defer h.Stop()

		notified = 0
		v.SetValue(point{1, 2})
		assert.Equal(t, 0, notified)
		v.SetValue(point{3, 4})
		assert.Equal(t, 1, notified)
	})
}

func TestConstant(t *testing.T) {
	t.Run("reads back the fixed value", func(t *testing.T) {
		c := cells.Constant("hello")
		v, err := c.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("equal-valued constants compare equal as graph nodes", func(t *testing.T) {
		a := cells.Constant(7)
		b := cells.Constant(7)
		assert.True(t, a.Key().Equal(b.Key()))
	})

	t.Run("differently-valued constants do not compare equal", func(t *testing.T) {
		a := cells.Constant(7)
		b := cells.Constant(8)
		assert.False(t, a.Key().Equal(b.Key()))
	})
}
