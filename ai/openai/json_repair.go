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
	"regexp"
	"strings"
)

var (
	// unquotedKey matches keys with a missing opening quote or no quotes
	// at all, e.g. `{topics":` or `, intensity:`.
	unquotedKey   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)"?\s*:`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// cleanResponse strips markdown code fences and any text around the
// outermost JSON object.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// repairJSON fixes formatting mistakes small models commonly make: keys
// with missing quotes and trailing commas. It is only applied after the
// cleaned response failed to parse, since the key pattern can also match
// inside string values.
func repairJSON(s string) string {
	s = unquotedKey.ReplaceAllString(s, `$1"$2":`)
	return trailingComma.ReplaceAllString(s, "$1")
}
