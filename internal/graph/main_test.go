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

	"go.uber.org/goleak"
)

// TestMain guards the registry's GC-driven eviction path: a runtime.AddCleanup
// callback that never runs, or a test that leaves one pending, shows up here
// as a leaked goroutine rather than silently passing.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
