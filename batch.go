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

package cells

import "github.com/cellgraph/cells/internal/graph"

// Batch applies every mutable write inside fn immediately to values, but
// defers their update notifications to a single drain at the end of the
// outermost batch scope, in the order the cells were written. Nested
// Batch calls are no-ops; only the outermost one drains.
func Batch(fn func()) {
	graph.DefaultBatcher().Run(fn)
}
