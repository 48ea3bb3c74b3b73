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

// ErrStopCompute is returned by None; a compute function that wants to
// abandon recomputation returns it (directly, or wrapped via fmt.Errorf's
// %w) instead of a value.
var ErrStopCompute = graph.ErrStopCompute

// ErrUninitializedCell is returned by Previous before its argument has
// changed at least once while observed.
var ErrUninitializedCell = graph.ErrUninitializedCell
