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

package taxonomy

import "github.com/poiesic/therapymatch/core"

// BundledTopics returns a fresh copy of the bundled topic catalog.
func BundledTopics() []Topic {
	return []Topic{
		{
			ID:          "family",
			Section:     SectionRelational,
			Specialties: []core.Specialty{core.SpecialtyRelationships},
			SubTopics: []SubTopic{
				{ID: "divorce", Weight: 1.0},
				{ID: "parenting", Weight: 0.8},
				{ID: "family_conflicts", Weight: 0.9},
				{ID: "generation_conflicts", Weight: 0.7},
			},
		},
		{
			ID:          "anxiety",
			Section:     SectionEmotional,
			Specialties: []core.Specialty{core.SpecialtyAnxiety},
			SubTopics: []SubTopic{
				{ID: "social_anxiety", Weight: 1.0},
				{ID: "panic_attacks", Weight: 1.0},
				{ID: "phobias", Weight: 0.8},
				{ID: "generalized_anxiety", Weight: 0.9},
			},
		},
		{
			ID:          "depression",
			Section:     SectionEmotional,
			Specialties: []core.Specialty{core.SpecialtyDepression},
			SubTopics: []SubTopic{
				{ID: "chronic_sadness", Weight: 1.0},
				{ID: "lack_motivation", Weight: 0.8},
				{ID: "grief", Weight: 0.9},
				{ID: "loneliness", Weight: 0.8},
			},
		},
		{
			ID:          "relationships",
			Section:     SectionRelational,
			Specialties: []core.Specialty{core.SpecialtyRelationships},
			SubTopics: []SubTopic{
				{ID: "couple_conflicts", Weight: 1.0},
				{ID: "breakup", Weight: 0.9},
				{ID: "dating_issues", Weight: 0.7},
				{ID: "intimacy", Weight: 0.8},
			},
		},
		{
			ID:          "burnout",
			Section:     SectionWorkLife,
			Specialties: []core.Specialty{core.SpecialtyBurnout},
			SubTopics: []SubTopic{
				{ID: "work_stress", Weight: 1.0},
				{ID: "exhaustion", Weight: 0.9},
				{ID: "work_life_balance", Weight: 0.7},
			},
		},
		{
			ID:          "trauma",
			Section:     SectionEmotional,
			Specialties: []core.Specialty{core.SpecialtyTrauma},
			SubTopics: []SubTopic{
				{ID: "ptsd", Weight: 1.0},
				{ID: "childhood_trauma", Weight: 1.0},
				{ID: "accident_trauma", Weight: 0.9},
				{ID: "loss", Weight: 0.8},
			},
		},
		{
			ID:          "addiction",
			Section:     SectionBodyBehaviour,
			Specialties: []core.Specialty{core.SpecialtyAddiction},
			SubTopics: []SubTopic{
				{ID: "alcohol", Weight: 1.0},
				{ID: "drugs", Weight: 1.0},
				{ID: "behavioral_addiction", Weight: 0.8},
				{ID: "gaming", Weight: 0.7},
			},
		},
		{
			ID:          "eating_disorders",
			Section:     SectionBodyBehaviour,
			Specialties: []core.Specialty{core.SpecialtyEatingDisorders},
			SubTopics: []SubTopic{
				{ID: "anorexia", Weight: 1.0},
				{ID: "bulimia", Weight: 1.0},
				{ID: "binge_eating", Weight: 0.9},
			},
		},
		{
			ID:          "adhd",
			Section:     SectionBodyBehaviour,
			Specialties: []core.Specialty{core.SpecialtyADHD},
			SubTopics: []SubTopic{
				{ID: "concentration", Weight: 1.0},
				{ID: "impulsivity", Weight: 0.9},
				{ID: "adult_adhd", Weight: 0.8},
			},
		},
		{
			ID:          "self_care",
			Section:     SectionEmotional,
			Specialties: []core.Specialty{core.SpecialtyBurnout, core.SpecialtyDepression},
			SubTopics: []SubTopic{
				{ID: "self_esteem", Weight: 0.8},
				{ID: "boundaries", Weight: 0.7},
				{ID: "life_changes", Weight: 0.7},
			},
		},
		{
			ID:          "stress",
			Section:     SectionWorkLife,
			Specialties: []core.Specialty{core.SpecialtyBurnout},
			SubTopics: []SubTopic{
				{ID: "chronic_stress", Weight: 1.0},
				{ID: "exam_anxiety", Weight: 0.8},
				{ID: "performance_pressure", Weight: 0.9},
			},
		},
		{
			ID:          "sleep",
			Section:     SectionBodyBehaviour,
			Specialties: []core.Specialty{core.SpecialtyDepression, core.SpecialtyAnxiety},
			SubTopics: []SubTopic{
				{ID: "insomnia", Weight: 1.0},
				{ID: "nightmares", Weight: 0.9},
				{ID: "sleep_anxiety", Weight: 0.8},
			},
		},
		{
			ID:          "bereavement",
			Section:     SectionEmotional,
			Specialties: []core.Specialty{core.SpecialtyDepression, core.SpecialtyTrauma},
			SubTopics: []SubTopic{
				{ID: "loss_of_partner", Weight: 1.0},
				{ID: "loss_of_parent", Weight: 1.0},
				{ID: "complicated_grief", Weight: 0.9},
				{ID: "anticipatory_grief", Weight: 0.7},
			},
		},
		{
			ID:          "isolation",
			Section:     SectionRelational,
			Specialties: []core.Specialty{core.SpecialtyDepression, core.SpecialtyRelationships},
			SubTopics: []SubTopic{
				{ID: "social_isolation", Weight: 1.0},
				{ID: "lack_of_connection", Weight: 0.8},
				{ID: "relocation", Weight: 0.6},
			},
		},
		{
			ID:          "life_transitions",
			Section:     SectionWorkLife,
			Specialties: []core.Specialty{core.SpecialtyAnxiety, core.SpecialtyDepression},
			SubTopics: []SubTopic{
				{ID: "career_change", Weight: 0.8},
				{ID: "retirement", Weight: 0.7},
				{ID: "becoming_parent", Weight: 0.8},
				{ID: "migration", Weight: 0.9},
			},
		},
	}
}

// BundledGroups returns the bundled topic to intensity-group map. Topics
// missing from the map use their own id; life_transitions has no statements
// of its own and falls back to the shared default set.
func BundledGroups() map[string]string {
	return map[string]string{
		"bereavement": "depression",
		"isolation":   "relationships",
	}
}

// Default builds the bundled catalog. It panics if the bundled data fails
// validation, which surfaces corrupt data at process start.
func Default() *Taxonomy {
	tax, err := New(BundledTopics(), BundledGroups())
	if err != nil {
		panic(err)
	}
	return tax
}
