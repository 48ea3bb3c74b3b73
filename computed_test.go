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

func TestComputed(t *testing.T) {
	t.Run("recomputes lazily, not on every argument write", func(t *testing.T) {
		a := cells.Variable(1)
		var calls int
		c := cells.Computed(func() (int, error) {
			calls++
			av, _ := cells.Get(a)
			return av * 2, nil
		}, a)

		a.SetValue(2)
		a.SetValue(3)
		assert.Equal(t, 0, calls, "nothing has read the cell yet")

		v, err := c.Value()
		require.NoError(t, err)
		assert.Equal(t, 6, v)
		assert.Equal(t, 1, calls, "one read triggers exactly one recompute regardless of how many writes preceded it")
	})

	t.Run("re-runs on read after being paused", func(t *testing.T) {
		a := cells.Variable(1)
		var calls int
		c := cells.Computed(func() (int, error) {
			calls++
			av, _ := cells.Get(a)
			return av, nil
		}, a)

		h := cells.Watch(func() { _, _ = cells.Get(c) })
		require.Equal(t, 1, calls)
		h.Stop()

		a.SetValue(9)
		v, err := c.Value()
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})
}

func TestComputedChanges(t *testing.T) {
	a := cells.Variable(1)
	parity := cells.ComputedChanges(func() (string, error) {
		av, _ := cells.Get(a)
		if av%2 == 0 {
			return "even", nil
		}
		return "odd", nil
	}, a)

	var observed []string
	h := cells.Watch(func() {
		v, _ := cells.Get(parity)
		observed = append(observed, v)
	})
	defer h.Stop()

	for _, v := range []int{3, 5, 2, 4, 7} {
		a.SetValue(v)
	}

	assert.Equal(t, []string{"odd", "even", "odd"}, observed,
		"consecutive writes producing the same parity must not notify again")
}

func TestComputedDynamicErrorPropagation(t *testing.T) {
	boom := cells.ComputedDynamic(func() (int, error) {
		return 0, assert.AnError
	})
	_, err := boom.Value()
	assert.ErrorIs(t, err, assert.AnError)
}
