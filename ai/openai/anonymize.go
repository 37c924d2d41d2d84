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

type replacement struct {
	re   *regexp.Regexp
	with string
}

// Order matters: dates run before phone numbers, which would otherwise
// swallow them, and URLs run before phone numbers for the same reason.
var anonymizers = []replacement{
	{regexp.MustCompile(`[\w.+-]+@[\w-]+(\.[\w-]+)*\.\w+`), "[E-MAIL]"},
	{regexp.MustCompile(`(?i)https?://\S+|www\.\S+`), "[URL]"},
	{regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`), "[DATUM]"},
	{regexp.MustCompile(`(\+?\d{1,4}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{2,6}`), "[TELEFON]"},
	{regexp.MustCompile(`\b\d{5}\s+[A-ZÄÖÜ][a-zäöüß]+`), "[PLZ ORT]"},
	{regexp.MustCompile(`[A-ZÄÖÜ][a-zäöüß]*(?i:straße|strasse|str\.|weg|platz|gasse|allee)\s*\d+[a-z]?`), "[ADRESSE]"},
	{regexp.MustCompile(`\b(?:` + strings.Join(commonNames, "|") + `)\b`), "[NAME]"},
	{regexp.MustCompile(`\b(?i:(mein|meine|der|die)\s+(mann|frau|freund|freundin|partner|partnerin|chef|chefin|kollege|kollegin))\s+[A-ZÄÖÜ][a-zäöüß]+`), "$1 $2 [NAME]"},
	{regexp.MustCompile(`\b(?i:herr|frau|dr\.|prof\.)\s+[A-ZÄÖÜ][a-zäöüß]+`), "[NAME]"},
	{regexp.MustCompile(`\b(?i:(bei der|beim|bei|in der|im))\s+[A-ZÄÖÜ][\w&-]*\s+(?:GmbH|AG|KG|e\.V\.|Inc\.)`), "$1 [FIRMA]"},
	{regexp.MustCompile(`\b(?:` + strings.Join(germanCities, "|") + `)\b`), "[ORT]"},
	{regexp.MustCompile(`\b(?i:(\d{1,2})\s*(jahre|j\.|jährig))`), "[ALTER] Jahre"},
	{regexp.MustCompile(`\b(?i:bin)\s+\d{1,2}\b`), "bin [ALTER]"},
}

var commonNames = []string{
	"Anna", "Maria", "Thomas", "Michael", "Andreas", "Stefan", "Christian",
	"Peter", "Klaus", "Wolfgang", "Sabine", "Petra", "Monika", "Julia",
	"Laura", "Lisa", "Sarah", "Lena", "Max", "Paul", "Felix", "Lukas",
	"Jonas", "Leon", "Tim", "Jan", "Marie", "Sophie", "Emma", "Mia",
	"Hannah", "Lea", "Katharina", "Claudia", "Susanne", "Martina", "Markus",
	"Frank", "Jürgen", "Uwe", "Matthias", "Daniel", "Tobias", "Sebastian",
	"Alexander", "Florian", "Martin", "Simon", "Nina", "Jana",
}

// "Essen" is omitted because it is also the German word for food.
var germanCities = []string{
	"Berlin", "Hamburg", "München", "Köln", "Frankfurt", "Stuttgart",
	"Düsseldorf", "Leipzig", "Dortmund", "Bremen", "Dresden", "Hannover",
	"Nürnberg", "Duisburg", "Bochum", "Wuppertal", "Bielefeld", "Bonn",
	"Münster", "Mannheim", "Karlsruhe", "Augsburg", "Wiesbaden", "Mainz",
	"Kiel", "Freiburg", "Heidelberg", "Potsdam", "Rostock",
}

// Anonymize replaces personal details in text with bracketed placeholders
// before the text is sent to an external model. Names and cities are
// matched case-sensitively so ordinary words survive.
func Anonymize(text string) string {
	for _, r := range anonymizers {
		text = r.re.ReplaceAllString(text, r.with)
	}
	return text
}
