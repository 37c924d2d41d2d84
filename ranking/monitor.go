// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ranking

import "github.com/poiesic/therapymatch/core"

// RankMonitor provides hooks to observe a ranking run.
// All hooks are called from the goroutine that called Rank, in order.
type RankMonitor interface {
	Start(criteria core.Criteria, candidates int)
	Skipped(index int)
	Scored(result core.RankedProfile)
	Finish(results []core.RankedProfile)
}

type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Criteria, _ int)  {}
func (n *noopMonitor) Skipped(_ int)                 {}
func (n *noopMonitor) Scored(_ core.RankedProfile)   {}
func (n *noopMonitor) Finish(_ []core.RankedProfile) {}
