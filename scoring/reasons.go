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

package scoring

import (
	"strings"

	"github.com/poiesic/therapymatch/core"
)

// Match reason keys.
const (
	ReasonExpertIn       = "expert_in"
	ReasonOffersOnline   = "offers_online"
	ReasonOffersInPerson = "offers_in_person"
	ReasonAvailableNow   = "available_now"
	ReasonNearLocation   = "near_location"
)

func matchReasons(profile *core.Profile, criteria core.Criteria, topic core.SubScore, matched []core.Specialty, locMatched, modeMatched bool) []string {
	reasons := make([]string, 0, MaxReasons)

	if topic.Supplied && topic.Points >= expertThreshold && len(matched) > 0 {
		names := make([]string, len(matched))
		for i, s := range matched {
			names[i] = string(s)
		}
		reasons = append(reasons, ReasonExpertIn+":"+strings.Join(names, ","))
	}

	if modeMatched {
		switch {
		case profile.SessionMode == core.SessionModeOnline || criteria.SessionMode == core.SessionModeOnline:
			reasons = append(reasons, ReasonOffersOnline)
		case profile.SessionMode == core.SessionModeInPerson || criteria.SessionMode == core.SessionModeInPerson:
			reasons = append(reasons, ReasonOffersInPerson)
		}
	}

	if profile.Availability == core.AvailabilityImmediately {
		reasons = append(reasons, ReasonAvailableNow)
	}

	if locMatched {
		reasons = append(reasons, ReasonNearLocation)
	}

	if len(reasons) > MaxReasons {
		reasons = reasons[:MaxReasons]
	}
	return reasons
}
