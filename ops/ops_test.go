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

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgraph/cells"
	"github.com/cellgraph/cells/ops"
)

func TestArithmetic(t *testing.T) {
	a := cells.Variable(6)
	b := cells.Variable(4)

	cases := []struct {
		name string
		c    cells.Cell[int]
		want int
	}{
		{"Add", ops.Add[int](a, b), 10},
		{"Sub", ops.Sub[int](a, b), 2},
		{"Mul", ops.Mul[int](a, b), 24},
		{"Div", ops.Div[int](a, b), 1},
		{"Neg", ops.Neg[int](a), -6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.c.Value()
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestComparisons(t *testing.T) {
	a := cells.Variable(3)
	b := cells.Variable(5)

	cases := []struct {
		name string
		c    cells.Cell[bool]
		want bool
	}{
		{"Eq", ops.Eq[int](a, b), false},
		{"Neq", ops.Neq[int](a, b), true},
		{"Lt", ops.Lt[int](a, b), true},
		{"Lte", ops.Lte[int](a, b), true},
		{"Gt", ops.Gt[int](a, b), false},
		{"Gte", ops.Gte[int](a, b), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.c.Value()
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestShortCircuit(t *testing.T) {
	t.Run("And does not read b when a is false", func(t *testing.T) {
		a := cells.Variable(false)
		var bRead bool
		b := cells.Computed(func() (bool, error) {
			bRead = true
			return true, nil
		})

		v, err := ops.And(a, b).Value()
		require.NoError(t, err)
		assert.False(t, v)
		assert.False(t, bRead, "b must not be evaluated once a is known false")
	})

	t.Run("Or does not read b when a is true", func(t *testing.T) {
		a := cells.Variable(true)
		var bRead bool
		b := cells.Computed(func() (bool, error) {
			bRead = true
			return false, nil
		})

		v, err := ops.Or(a, b).Value()
		require.NoError(t, err)
		assert.True(t, v)
		assert.False(t, bRead, "b must not be evaluated once a is known true")
	})

	t.Run("Not negates", func(t *testing.T) {
		a := cells.Variable(true)
		v, err := ops.Not(a).Value()
		require.NoError(t, err)
		assert.False(t, v)
	})
}

func TestSelect(t *testing.T) {
	cond := cells.Variable(true)
	x := cells.Variable(1)
	y := cells.Variable(2)
	sel := ops.Select[int](cond, x, y)

	v, err := sel.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	cond.SetValue(false)
	v, err = sel.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	y.SetValue(99)
	v, err = sel.Value()
	require.NoError(t, err)
	assert.Equal(t, 99, v)
}
