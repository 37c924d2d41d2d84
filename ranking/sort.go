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

import (
	"sort"

	"github.com/poiesic/therapymatch/core"
)

// Sort orders results in place: score descending, then profile ID
// ascending, then slug ascending. The sort is stable, so results that tie
// on all three keep their input order.
func Sort(results []core.RankedProfile) {
	sort.SliceStable(results, func(i, j int) bool {
		return Less(results[i], results[j])
	})
}

// Less reports whether a ranks before b.
func Less(a, b core.RankedProfile) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	aid, bid := profileID(a), profileID(b)
	if aid != bid {
		return aid < bid
	}
	return profileSlug(a) < profileSlug(b)
}

// Top returns at most n leading results. n <= 0 returns all of them.
func Top(results []core.RankedProfile, n int) []core.RankedProfile {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

func profileID(r core.RankedProfile) core.ID {
	if r.Profile == nil {
		return 0
	}
	return r.Profile.Id
}

func profileSlug(r core.RankedProfile) string {
	if r.Profile == nil {
		return ""
	}
	return r.Profile.Slug
}
