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

package intensity

// DefaultGroup is the shared statement pool used when a topic's group has
// no statements of its own.
const DefaultGroup = "default"

// Statement is a self-descriptive sentence carrying a severity weight (1-3).
// TopicID is set on results to the topic the statement was requested under;
// it never affects scoring.
type Statement struct {
	ID       string `json:"id"`
	Group    string `json:"group"`
	TopicID  string `json:"topic_id,omitempty"`
	Weight   int    `json:"weight"`
	LabelKey string `json:"label_key"`
}

func stmt(group, id, label string, weight int) Statement {
	return Statement{ID: id, Group: group, Weight: weight, LabelKey: "matching.intensity." + group + "." + label}
}

// BundledStatements returns a fresh copy of the bundled statement tables
// keyed by group.
func BundledStatements() map[string][]Statement {
	return map[string][]Statement{
		"depression": {
			stmt("depression", "dep_daily", "daily", 2),
			stmt("depression", "dep_sleep", "sleep", 1),
			stmt("depression", "dep_work", "work", 2),
			stmt("depression", "dep_isolation", "isolation", 2),
			stmt("depression", "dep_hopeless", "hopeless", 3),
		},
		"anxiety": {
			stmt("anxiety", "anx_daily", "daily", 2),
			stmt("anxiety", "anx_avoid", "avoid", 2),
			stmt("anxiety", "anx_physical", "physical", 1),
			stmt("anxiety", "anx_panic", "panic", 3),
			stmt("anxiety", "anx_work", "work", 2),
		},
		"family": {
			stmt("family", "fam_daily", "daily", 2),
			stmt("family", "fam_communication", "communication", 1),
			stmt("family", "fam_avoidance", "avoidance", 2),
			stmt("family", "fam_children", "children", 3),
		},
		"relationships": {
			stmt("relationships", "rel_daily", "daily", 2),
			stmt("relationships", "rel_trust", "trust", 2),
			stmt("relationships", "rel_communication", "communication", 1),
			stmt("relationships", "rel_separation", "separation", 3),
		},
		"burnout": {
			stmt("burnout", "burn_exhausted", "exhausted", 2),
			stmt("burnout", "burn_work", "work", 2),
			stmt("burnout", "burn_cynical", "cynical", 2),
			stmt("burnout", "burn_physical", "physical", 3),
			stmt("burnout", "burn_weekend", "weekend", 1),
		},
		"trauma": {
			stmt("trauma", "trauma_flashbacks", "flashbacks", 3),
			stmt("trauma", "trauma_avoid", "avoid", 2),
			stmt("trauma", "trauma_sleep", "sleep", 2),
			stmt("trauma", "trauma_trust", "trust", 2),
			stmt("trauma", "trauma_daily", "daily", 3),
		},
		"addiction": {
			stmt("addiction", "add_control", "control", 2),
			stmt("addiction", "add_daily", "daily", 3),
			stmt("addiction", "add_relationships", "relationships", 2),
			stmt("addiction", "add_withdrawal", "withdrawal", 3),
			stmt("addiction", "add_hide", "hide", 1),
		},
		"eating_disorders": {
			stmt("eating_disorders", "eat_thoughts", "thoughts", 2),
			stmt("eating_disorders", "eat_control", "control", 2),
			stmt("eating_disorders", "eat_physical", "physical", 3),
			stmt("eating_disorders", "eat_social", "social", 2),
		},
		"adhd": {
			stmt("adhd", "adhd_focus", "focus", 2),
			stmt("adhd", "adhd_organize", "organize", 2),
			stmt("adhd", "adhd_impulsive", "impulsive", 2),
			stmt("adhd", "adhd_work", "work", 2),
			stmt("adhd", "adhd_relationships", "relationships", 1),
		},
		"self_care": {
			stmt("self_care", "self_worth", "worth", 2),
			stmt("self_care", "self_boundaries", "boundaries", 2),
			stmt("self_care", "self_neglect", "neglect", 1),
			stmt("self_care", "self_overwhelm", "overwhelm", 2),
		},
		"stress": {
			stmt("stress", "stress_constant", "constant", 2),
			stmt("stress", "stress_physical", "physical", 2),
			stmt("stress", "stress_sleep", "sleep", 1),
			stmt("stress", "stress_control", "control", 3),
		},
		"sleep": {
			stmt("sleep", "sleep_falling", "falling", 1),
			stmt("sleep", "sleep_staying", "staying", 2),
			stmt("sleep", "sleep_daily", "daily", 2),
			stmt("sleep", "sleep_nightmares", "nightmares", 2),
			stmt("sleep", "sleep_medication", "medication", 3),
		},
		DefaultGroup: {
			stmt(DefaultGroup, "default_low", "low", 1),
			stmt(DefaultGroup, "default_medium", "medium", 2),
			stmt(DefaultGroup, "default_high", "high", 3),
		},
	}
}
