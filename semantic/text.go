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

package semantic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/therapymatch/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// germanIndicators are common German function words. Two or more present as
// substrings mark a text as German.
var germanIndicators = []string{"ich", "und", "der", "die", "das", "mich", "mir", "bin", "habe"}

// Normalize applies NFKC and lowercases text.
func Normalize(text string) string {
	// Casers carry state and are not safe for concurrent use.
	lower := cases.Lower(language.Und)
	return lower.String(norm.NFKC.String(text))
}

// DetectLanguage returns German when at least two indicator words occur in
// the text, English otherwise.
func DetectLanguage(text string) core.Language {
	lowered := Normalize(text)
	hits := 0
	for _, w := range germanIndicators {
		if strings.Contains(lowered, w) {
			hits++
		}
	}
	if hits >= 2 {
		return core.LanguageGerman
	}
	return core.LanguageEnglish
}

// Tokenize lowercases text, replaces every rune that is not a letter, digit
// or underscore with a space, splits on whitespace and drops tokens of two
// runes or fewer.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, Normalize(text))

	fields := strings.Fields(cleaned)
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

type tokenSet map[string]struct{}

func newTokenSet(tokens []string) tokenSet {
	set := make(tokenSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// jaccard returns |a∩b| / |a∪b|, or 0 when both sets are empty.
func jaccard(a, b tokenSet) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
