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
	"math"
	"strings"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/taxonomy"
)

// Sub-score ceilings.
const (
	TopicMax      = 50
	CriteriaMax   = 35
	RefinementMax = 15
)

// Practical filter budgets. They sum to CriteriaMax.
const (
	LocationPoints    = 10
	GenderPoints      = 8
	SessionModePoints = 9
	InsurancePoints   = 8
)

// expertThreshold is the topic sub-score from which the matched
// specialties are listed as a match reason.
const expertThreshold = 35

// MaxReasons caps the match reasons of one breakdown.
const MaxReasons = 4

// Catalog is the part of the taxonomy the calculator reads.
// *taxonomy.Taxonomy implements it.
type Catalog interface {
	SpecialtiesForTopics(ids []string) []core.Specialty
	SubTopic(id string) (taxonomy.SubTopic, string, bool)
	SpecialtiesForSubTopic(id string) []core.Specialty
}

// Calculator scores profiles against criteria. It holds no per-call state
// and is safe for concurrent use.
type Calculator struct {
	catalog Catalog
}

// NewCalculator creates a Calculator over the given catalog.
func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Score returns the match score of profile in [0,100].
func (c *Calculator) Score(profile *core.Profile, criteria core.Criteria) int {
	return c.ScoreWithBreakdown(profile, criteria).Total
}

// ScoreWithBreakdown returns the match score together with its sub-scores
// and match reasons. A nil profile is scored as a profile with no attributes.
func (c *Calculator) ScoreWithBreakdown(profile *core.Profile, criteria core.Criteria) core.ScoreBreakdown {
	if profile == nil {
		profile = &core.Profile{}
	}

	topic, matched := c.topicScore(profile, criteria)
	crit, locMatched, modeMatched := criteriaScore(profile, criteria)
	refinement := c.refinementScore(profile, criteria)

	total := topic.Points + crit.Points + refinement.Points
	total = max(0, min(100, total))

	return core.ScoreBreakdown{
		Total:      total,
		Topic:      topic,
		Criteria:   crit,
		Refinement: refinement,
		Reasons:    matchReasons(profile, criteria, topic, matched, locMatched, modeMatched),
	}
}

// selectedSpecialties resolves the criteria topics and unions in the
// injected specialties, preserving first-seen order.
func (c *Calculator) selectedSpecialties(criteria core.Criteria) []core.Specialty {
	selected := c.catalog.SpecialtiesForTopics(criteria.Topics)
	for _, s := range criteria.Specialties {
		if !containsSpecialty(selected, s) {
			selected = append(selected, s)
		}
	}
	return selected
}

func (c *Calculator) topicScore(profile *core.Profile, criteria core.Criteria) (core.SubScore, []core.Specialty) {
	if len(criteria.Topics) == 0 && len(criteria.Specialties) == 0 {
		return fullCredit(TopicMax), nil
	}

	selected := c.selectedSpecialties(criteria)
	if len(selected) == 0 {
		return fullCredit(TopicMax), nil
	}

	var matched []core.Specialty
	for _, s := range selected {
		if profile.HasSpecialty(s) {
			matched = append(matched, s)
		}
	}

	raw := float64(len(matched))
	rawMax := float64(len(selected))
	return core.SubScore{
		Points:   round(TopicMax * raw / rawMax),
		Max:      TopicMax,
		Raw:      raw,
		RawMax:   rawMax,
		Supplied: true,
	}, matched
}

func criteriaScore(profile *core.Profile, criteria core.Criteria) (sub core.SubScore, locMatched, modeMatched bool) {
	var earned, supplied int

	if query := strings.TrimSpace(criteria.Location); query != "" {
		supplied += LocationPoints
		if MatchesLocation(profile.Location, query) {
			earned += LocationPoints
			locMatched = true
		}
	}

	if criteria.Gender != "" {
		supplied += GenderPoints
		if profile.Gender == criteria.Gender {
			earned += GenderPoints
		}
	}

	if criteria.SessionMode != "" {
		supplied += SessionModePoints
		if MatchesSessionMode(profile.SessionMode, criteria.SessionMode) {
			earned += SessionModePoints
			modeMatched = true
		}
	}

	if len(criteria.Insurance) > 0 {
		supplied += InsurancePoints
		if MatchesInsurance(profile.Insurance, criteria.Insurance) {
			earned += InsurancePoints
		}
	}

	if supplied == 0 {
		return fullCredit(CriteriaMax), false, false
	}

	return core.SubScore{
		Points:   round(float64(earned) / float64(supplied) * CriteriaMax),
		Max:      CriteriaMax,
		Raw:      float64(earned),
		RawMax:   float64(supplied),
		Supplied: true,
	}, locMatched, modeMatched
}

func (c *Calculator) refinementScore(profile *core.Profile, criteria core.Criteria) core.SubScore {
	if len(criteria.SubTopics) == 0 {
		return fullCredit(RefinementMax)
	}

	var matchedWeight, totalWeight float64
	for _, id := range criteria.SubTopics {
		sub, _, ok := c.catalog.SubTopic(id)
		if !ok {
			continue
		}
		totalWeight += sub.Weight
		for _, s := range c.catalog.SpecialtiesForSubTopic(id) {
			if profile.HasSpecialty(s) {
				matchedWeight += sub.Weight
				break
			}
		}
	}

	if totalWeight == 0 {
		return fullCredit(RefinementMax)
	}

	return core.SubScore{
		Points:   round(matchedWeight / totalWeight * RefinementMax),
		Max:      RefinementMax,
		Raw:      matchedWeight,
		RawMax:   totalWeight,
		Supplied: true,
	}
}

// MatchesLocation reports whether the lowercased, trimmed query is a
// substring of the city or postal code. A blank query matches.
func MatchesLocation(loc core.Location, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(loc.City), q) ||
		strings.Contains(strings.ToLower(loc.PostalCode), q)
}

// MatchesSessionMode treats "both" on either side as a wildcard.
func MatchesSessionMode(have, want core.SessionMode) bool {
	if have == core.SessionModeBoth || want == core.SessionModeBoth {
		return true
	}
	return have == want
}

// MatchesInsurance reports whether the two sets overlap.
func MatchesInsurance(have, want []core.Insurance) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func fullCredit(ceiling int) core.SubScore {
	return core.SubScore{Points: ceiling, Max: ceiling, Raw: 0, RawMax: 0, Supplied: false}
}

func round(v float64) int {
	return int(math.Round(v))
}

func containsSpecialty(list []core.Specialty, s core.Specialty) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}
