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

func TestRunCompute(t *testing.T) {
	t.Run("a well-behaved compute passes its result through untouched", func(t *testing.T) {
		v, err := runCompute(NewUniqueKey("k"), func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("a panicking compute surfaces as an error carrying the cell's key", func(t *testing.T) {
		key := NewUniqueKey("panicky")
		v, err := runCompute(key, func() (int, error) { panic("boom") })
		require.Error(t, err)
		assert.Equal(t, 0, v)
		assert.Contains(t, err.Error(), "panicky")
		assert.Contains(t, err.Error(), "boom")
	})
}
