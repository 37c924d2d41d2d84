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

package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/therapymatch/core"
)

const situationResponseSchema = `{
  "type": "object",
  "properties": {
    "topics": {
      "type": "array",
      "items": {"type": "string"}
    },
    "subTopics": {
      "type": "array",
      "items": {"type": "string"}
    },
    "intensity": {
      "type": "string",
      "enum": ["low", "medium", "high"]
    },
    "summary": {"type": "string"},
    "reasoning": {"type": "string"},
    "crisis": {"type": "boolean"},
    "crisisType": {
      "type": ["string", "null"],
      "enum": ["suicidal", "self_harm", "acute_danger", null]
    }
  },
  "required": ["topics", "intensity", "summary", "reasoning", "crisis"],
  "additionalProperties": false
}`

const situationPromptTemplate = `You help people describe what they are going through so they can find a suitable psychotherapist. Read the person's text and return JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "topics" holds up to %d topic ids from this list, most relevant first: %s.
- "subTopics" may name more specific ids from this list when the text clearly mentions them: %s.
- Use only ids from the lists. If nothing fits, return empty lists.
- "intensity" rates how much the situation burdens the person right now.
- "summary" is one or two empathic sentences addressed directly to the person, written in %s.
- "reasoning" briefly explains the chosen topics, written in %s.
- Set "crisis" to true only if the text indicates suicidal thoughts, self-harm or acute danger, and name it in "crisisType". Otherwise "crisis" is false and "crisisType" is null.
- Placeholders such as [NAME], [ORT] or [FIRMA] replace personal details. Ignore them.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Seit der Trennung von meinem Partner schlafe ich kaum noch und grüble nachts stundenlang."
Output:
{"topics":["relationships","sleep"],"subTopics":["separation","insomnia"],"intensity":"medium","summary":"Die Trennung beschäftigt dich sehr und raubt dir den Schlaf.","reasoning":"Die Trennung deutet auf Beziehungsthemen, das nächtliche Grübeln auf Schlafprobleme.","crisis":false,"crisisType":null}`

// buildSystemPrompt creates the system prompt with the catalog's topic and
// subtopic ids embedded.
func buildSystemPrompt(catalog TopicCatalog, maxTopics int, lang core.Language) string {
	var topics, subTopics []string
	for _, t := range catalog.Topics() {
		topics = append(topics, t.ID)
		for _, s := range t.SubTopics {
			subTopics = append(subTopics, s.ID)
		}
	}

	language := "English"
	if lang == core.LanguageGerman {
		language = "German, using the informal du"
	}

	return fmt.Sprintf(situationPromptTemplate,
		situationResponseSchema,
		maxTopics,
		strings.Join(topics, ", "),
		strings.Join(subTopics, ", "),
		language,
		language)
}
