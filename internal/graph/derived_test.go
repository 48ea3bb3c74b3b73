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

type observerFunc struct {
	will   func(Key)
	update func(Key, bool)
}

func (o observerFunc) WillUpdate(k Key)        { o.will(k) }
func (o observerFunc) Update(k Key, changed bool) { o.update(k, changed) }

func TestPeekState(t *testing.T) {
	arg := NewMutableState[int](NewUniqueKey("arg"), 1, equalInt, DefaultBatcher())
	peek := NewPeekState[int](NewUniqueKey("peek"), arg)

	var notified int
	peek.AddObserver(&observerFunc{
		will:   func(Key) {},
		update: func(Key, bool) { notified++ },
	})

	arg.SetValue(2)
	v, err := peek.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 0, notified, "a peek must never forward a notification to its own observers")
}

func TestPreviousState(t *testing.T) {
	arg := NewMutableState[int](NewUniqueKey("arg"), 1, equalInt, DefaultBatcher())
	prev := NewPreviousState[int](NewUniqueKey("prev"), arg)

	_, err := prev.Value()
	assert.ErrorIs(t, err, ErrUninitializedCell, "reading before any observed change must fail")

	prev.AddObserver(&observerFunc{will: func(Key) {}, update: func(Key, bool) {}})
	_, err = prev.Value()
	assert.ErrorIs(t, err, ErrUninitializedCell, "still uninitialized immediately after attaching")

	arg.SetValue(2)
	v, err := prev.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	arg.SetValue(3)
	v, err = prev.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
