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

package situation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/semantic"
)

const (
	// MaxTopics caps the topics reported by Detect.
	MaxTopics = 4
	// MaxSubTopics caps the subtopics reported by Detect.
	MaxSubTopics = 5
	// shortKeywordRunes is the length up to which keywords must match whole words.
	shortKeywordRunes = 4
)

var (
	germanWords  = []string{"ich", "und", "der", "die", "das", "ist", "bin", "habe", "mich", "mir", "meine", "für", "nicht", "auch", "sehr"}
	englishWords = []string{"i", "and", "the", "is", "am", "have", "my", "me", "for", "not", "also", "very", "with", "been", "feeling"}
)

// SpecialtyResolver maps topic ids to specialties.
// *taxonomy.Taxonomy implements it.
type SpecialtyResolver interface {
	SpecialtiesForTopics(ids []string) []core.Specialty
}

// Crisis describes a detected crisis indicator.
type Crisis struct {
	Type    CrisisType `json:"type"`
	Keyword string     `json:"keyword"`
}

// Analysis is the keyword reading of one text.
type Analysis struct {
	Language    core.Language    `json:"language"`
	Topics      []string         `json:"topics"`
	SubTopics   []string         `json:"sub_topics"`
	Specialties []core.Specialty `json:"specialties"`
	Intensity   intensity.Level  `json:"intensity"`
	Crisis      *Crisis          `json:"crisis,omitempty"`
	Confidence  core.Confidence  `json:"confidence"`
}

// Signal converts the analysis into a classifier override signal.
func (a Analysis) Signal() *semantic.Signal {
	return &semantic.Signal{
		Specialties: append([]core.Specialty(nil), a.Specialties...),
		Confidence:  a.Confidence,
	}
}

type matcher struct {
	keyword string
	re      *regexp.Regexp
}

func newMatcher(keyword string) (matcher, error) {
	keyword = semantic.Normalize(keyword)
	if utf8.RuneCountInString(keyword) > shortKeywordRunes {
		return matcher{keyword: keyword}, nil
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return matcher{}, err
	}
	return matcher{keyword: keyword, re: re}, nil
}

func (m matcher) count(text string) int {
	if m.re != nil {
		return len(m.re.FindAllStringIndex(text, -1))
	}
	return strings.Count(text, m.keyword)
}

type keyMatchers struct {
	key      string
	matchers map[core.Language][]matcher
}

func compile(table map[string]Keywords) ([]keyMatchers, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]keyMatchers, 0, len(keys))
	for _, k := range keys {
		km := keyMatchers{key: k, matchers: make(map[core.Language][]matcher, 2)}
		for lang, words := range table[k] {
			for _, w := range words {
				if strings.TrimSpace(w) == "" {
					return nil, fmt.Errorf("%w: %q has an empty keyword", ErrInvalidKeywords, k)
				}
				m, err := newMatcher(w)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %w", ErrInvalidKeywords, w, err)
				}
				km.matchers[lang] = append(km.matchers[lang], m)
			}
		}
		out = append(out, km)
	}
	return out, nil
}

// Detector finds keyword signals in free text. It is immutable after
// construction and safe for concurrent use.
type Detector struct {
	resolver  SpecialtyResolver
	topics    []keyMatchers
	subTopics []keyMatchers

	topicTable    map[string]Keywords
	subTopicTable map[string]Keywords
	crisis        map[CrisisType]Keywords
	high, low     Keywords
}

// Option configures a Detector.
type Option func(*Detector) error

// WithTopicKeywords replaces the bundled topic keyword table.
func WithTopicKeywords(table map[string]Keywords) Option {
	return func(d *Detector) error {
		d.topicTable = table
		return nil
	}
}

// WithSubTopicKeywords replaces the bundled subtopic keyword table.
func WithSubTopicKeywords(table map[string]Keywords) Option {
	return func(d *Detector) error {
		d.subTopicTable = table
		return nil
	}
}

// NewDetector creates a Detector over the bundled keyword tables.
func NewDetector(resolver SpecialtyResolver, opts ...Option) (*Detector, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: specialty resolver is nil", ErrInvalidKeywords)
	}

	high, low := BundledIntensityMarkers()
	d := &Detector{
		resolver:      resolver,
		topicTable:    BundledTopicKeywords(),
		subTopicTable: BundledSubTopicKeywords(),
		crisis:        BundledCrisisKeywords(),
		high:          high,
		low:           low,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	var err error
	if d.topics, err = compile(d.topicTable); err != nil {
		return nil, err
	}
	if d.subTopics, err = compile(d.subTopicTable); err != nil {
		return nil, err
	}
	d.topicTable, d.subTopicTable = nil, nil
	return d, nil
}

// Detect analyses text.
func (d *Detector) Detect(text string) Analysis {
	lang := DetectLanguage(text)
	lowered := semantic.Normalize(text)

	topics, hits := rank(d.topics, lowered, lang, MaxTopics)
	subTopics, _ := rank(d.subTopics, lowered, lang, MaxSubTopics)

	return Analysis{
		Language:    lang,
		Topics:      topics,
		SubTopics:   subTopics,
		Specialties: d.resolver.SpecialtiesForTopics(topics),
		Intensity:   d.intensityOf(lowered, lang),
		Crisis:      d.crisisOf(lowered, lang),
		Confidence:  confidenceFor(hits),
	}
}

// DetectCrisis reports the first crisis indicator found in text, or nil.
// Both languages are checked, the detected language first.
func (d *Detector) DetectCrisis(text string) *Crisis {
	return d.crisisOf(semantic.Normalize(text), DetectLanguage(text))
}

func (d *Detector) crisisOf(lowered string, lang core.Language) *Crisis {
	for _, l := range []core.Language{lang, otherLanguage(lang)} {
		for _, ct := range crisisOrder {
			for _, w := range d.crisis[ct][l] {
				if strings.Contains(lowered, w) {
					return &Crisis{Type: ct, Keyword: w}
				}
			}
		}
	}
	return nil
}

func (d *Detector) intensityOf(lowered string, lang core.Language) intensity.Level {
	for _, w := range d.high[lang] {
		if strings.Contains(lowered, w) {
			return intensity.LevelHigh
		}
	}
	lows := 0
	for _, w := range d.low[lang] {
		if strings.Contains(lowered, w) {
			lows++
		}
	}
	if lows >= 2 {
		return intensity.LevelLow
	}
	return intensity.LevelMedium
}

// rank counts keyword hits per key and returns up to limit keys ordered by
// hit count descending, then key ascending, with their hit counts.
func rank(table []keyMatchers, lowered string, lang core.Language, limit int) ([]string, []int) {
	type scored struct {
		key  string
		hits int
	}
	var found []scored
	for _, km := range table {
		n := 0
		for _, m := range km.matchers[lang] {
			n += m.count(lowered)
		}
		if n > 0 {
			found = append(found, scored{key: km.key, hits: n})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].hits != found[j].hits {
			return found[i].hits > found[j].hits
		}
		return found[i].key < found[j].key
	})
	if len(found) > limit {
		found = found[:limit]
	}

	keys := make([]string, len(found))
	hits := make([]int, len(found))
	for i, f := range found {
		keys[i] = f.key
		hits[i] = f.hits
	}
	return keys, hits
}

func confidenceFor(hits []int) core.Confidence {
	if len(hits) == 0 {
		return core.ConfidenceLow
	}
	if hits[0] >= 2 && (len(hits) == 1 || hits[0] > hits[1]) {
		return core.ConfidenceHigh
	}
	return core.ConfidenceMedium
}

// DetectLanguage scores whole-word indicators for German and English, with
// a bonus for umlauts and eszett. Ties go to German unless no indicator was
// seen at all.
func DetectLanguage(text string) core.Language {
	lowered := semantic.Normalize(text)
	var de, en int
	for _, w := range strings.Fields(lowered) {
		if contains(germanWords, w) {
			de++
		}
		if contains(englishWords, w) {
			en++
		}
	}
	if strings.ContainsAny(lowered, "äöüß") {
		de += 3
	}
	if de > 0 && de >= en {
		return core.LanguageGerman
	}
	return core.LanguageEnglish
}

func otherLanguage(lang core.Language) core.Language {
	if lang == core.LanguageGerman {
		return core.LanguageEnglish
	}
	return core.LanguageGerman
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
