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

package ai

import (
	"strings"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
)

type label struct {
	de, en string
}

var topicLabels = map[string]label{
	"depression":       {"Depression & Niedergeschlagenheit", "Depression & Low Mood"},
	"anxiety":          {"Angst & Panik", "Anxiety & Panic"},
	"trauma":           {"Trauma & Belastung", "Trauma & Stress"},
	"relationships":    {"Beziehungen & Partnerschaft", "Relationships & Partnership"},
	"family":           {"Familie & Angehörige", "Family"},
	"burnout":          {"Burnout & Erschöpfung", "Burnout & Exhaustion"},
	"addiction":        {"Sucht & Abhängigkeit", "Addiction"},
	"eating_disorders": {"Essstörungen", "Eating Disorders"},
	"adhd":             {"ADHS & Konzentration", "ADHD & Concentration"},
	"self_care":        {"Selbstwert & Persönlichkeit", "Self-Worth & Personal Growth"},
	"stress":           {"Stress & Überlastung", "Stress & Overwhelm"},
	"sleep":            {"Schlafprobleme", "Sleep Issues"},
	"bereavement":      {"Trauer & Verlust", "Grief & Loss"},
	"isolation":        {"Einsamkeit & Isolation", "Loneliness & Isolation"},
	"life_transitions": {"Lebensübergänge", "Life Transitions"},
}

// TopicLabel returns the display name of a topic, or the id itself when
// no label is known.
func TopicLabel(topicID string, lang core.Language) string {
	l, ok := topicLabels[topicID]
	if !ok {
		return topicID
	}
	if lang == core.LanguageGerman {
		return l.de
	}
	return l.en
}

// Summarize builds the restatement shown after a keyword analysis. At most
// three topics are named.
func Summarize(topics []string, level intensity.Level, lang core.Language) string {
	german := lang == core.LanguageGerman
	if len(topics) == 0 {
		if german {
			return "Danke für deine Offenheit. Wir helfen dir, den passenden Therapeuten zu finden."
		}
		return "Thank you for sharing. We'll help you find the right therapist."
	}

	names := make([]string, 0, 3)
	for _, t := range topics[:min(3, len(topics))] {
		names = append(names, TopicLabel(t, lang))
	}

	if german {
		var opener string
		switch level {
		case intensity.LevelHigh:
			opener = "Wir verstehen, dass du gerade eine schwierige Zeit durchmachst."
		case intensity.LevelLow:
			opener = "Es ist gut, dass du frühzeitig Unterstützung suchst."
		default:
			opener = "Wir verstehen deine Situation."
		}
		return opener + " Basierend auf deiner Beschreibung konzentrieren wir uns auf: " + strings.Join(names, " und ") + "."
	}

	var opener string
	switch level {
	case intensity.LevelHigh:
		opener = "We understand you're going through a difficult time."
	case intensity.LevelLow:
		opener = "It's great that you're seeking support early."
	default:
		opener = "We understand your situation."
	}
	return opener + " Based on your description, we'll focus on: " + strings.Join(names, " and ") + "."
}

func keywordReasoning(lang core.Language) string {
	if lang == core.LanguageGerman {
		return "Basierend auf Schlüsselwörtern in deiner Beschreibung."
	}
	return "Based on keywords in your description."
}
