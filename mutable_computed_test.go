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

func TestMutableComputed(t *testing.T) {
	t.Run("the written value is cached directly and reverse updates the argument", func(t *testing.T) {
		a := cells.Variable(1)
		doubled := cells.MutableComputed(func() (int, error) {
			av, _ := cells.Get(a)
			return av * 2, nil
		}, func(v int) {
			a.SetValue(v / 2)
		}, a)

		doubled.SetValue(20)
		v, err := doubled.Value()
		require.NoError(t, err)
		assert.Equal(t, 20, v, "the written value is cached directly, independent of what reverse does")

		av, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, 10, av)
	})

	t.Run("a panicking reverse does not prevent the forward write from sticking", func(t *testing.T) {
		a := cells.Variable(1)
		c := cells.MutableComputed(func() (int, error) {
			av, _ := cells.Get(a)
			return av, nil
		}, func(int) {
			panic("reverse blew up")
		}, a)

		assert.NotPanics(t, func() { c.SetValue(5) })
		v, err := c.Value()
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})
}

func TestMutableComputedDynamic(t *testing.T) {
	cond := cells.Variable(true)
	x := cells.Variable(1)
	y := cells.Variable(2)
	d := cells.MutableComputedDynamic(func() (int, error) {
		cv, _ := cells.Get(cond)
		if cv {
			return cells.Get(x)
		}
		return cells.Get(y)
	}, func(v int) {
		cv, _ := cond.Value()
		if cv {
			x.SetValue(v)
		} else {
			y.SetValue(v)
		}
	})

	d.SetValue(100)
	xv, _ := x.Value()
	assert.Equal(t, 100, xv)

	cond.SetValue(false)
	d.SetValue(200)
	yv, _ := y.Value()
	assert.Equal(t, 200, yv)
	xv, _ = x.Value()
	assert.Equal(t, 100, xv, "writing while cond is false must not touch x")
}
