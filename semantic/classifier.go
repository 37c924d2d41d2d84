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
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/therapymatch/core"
)

const (
	// MinInputLength is the minimum trimmed length, in characters, of
	// classifiable text.
	MinInputLength = 10
	// MaxCandidates caps the specialties suggested from free text.
	MaxCandidates = 2
	// CandidateThreshold is the minimum similarity of a suggested specialty.
	CandidateThreshold = 0.1

	highThreshold   = 0.3
	highLead        = 0.1
	mediumThreshold = 0.15
	maxWeight       = 0.6
	meanWeight      = 0.4
)

// Candidate is a specialty with its similarity to the input.
type Candidate struct {
	Specialty core.Specialty `json:"specialty"`
	Score     float64        `json:"score"`
}

// Result is the outcome of classifying one text.
// Scores holds every specialty in ranked order; Candidates is the
// suggestion list derived from it or from an overriding keyword signal.
type Result struct {
	Candidates  []Candidate     `json:"candidates"`
	Scores      []Candidate     `json:"scores"`
	Confidence  core.Confidence `json:"confidence"`
	Language    core.Language   `json:"language"`
	Explanation string          `json:"explanation"`
}

// Specialties returns the candidate specialties in rank order.
func (r Result) Specialties() []core.Specialty {
	out := make([]core.Specialty, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Specialty
	}
	return out
}

// Signal is an external keyword-based guess. Only a high-confidence signal
// with at least one specialty affects classification.
type Signal struct {
	Specialties []core.Specialty
	Confidence  core.Confidence
}

type compiledEntry struct {
	specialty core.Specialty
	label     map[core.Language]string
	phrases   map[core.Language][]tokenSet
}

// Classifier compares text against a pre-tokenized phrase corpus.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	entries []compiledEntry
	corpus  []Entry
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithCorpus replaces the bundled corpus.
func WithCorpus(corpus []Entry) Option {
	return func(c *Classifier) error {
		c.corpus = corpus
		return nil
	}
}

// NewClassifier builds a Classifier, tokenizing every corpus phrase once.
func NewClassifier(opts ...Option) (*Classifier, error) {
	c := &Classifier{corpus: BundledCorpus()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if len(c.corpus) == 0 {
		return nil, fmt.Errorf("%w: corpus is empty", ErrInvalidCorpus)
	}

	seen := make(map[core.Specialty]struct{}, len(c.corpus))
	for _, e := range c.corpus {
		if !e.Specialty.IsValid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidCorpus, core.ErrUnknownSpecialty, e.Specialty)
		}
		if _, dup := seen[e.Specialty]; dup {
			return nil, fmt.Errorf("%w: duplicate specialty %q", ErrInvalidCorpus, e.Specialty)
		}
		seen[e.Specialty] = struct{}{}

		compiled := compiledEntry{
			specialty: e.Specialty,
			label:     make(map[core.Language]string, len(e.Label)),
			phrases:   make(map[core.Language][]tokenSet, 2),
		}
		for lang, l := range e.Label {
			compiled.label[lang] = l
		}
		for _, lang := range []core.Language{core.LanguageGerman, core.LanguageEnglish} {
			phrases := e.Phrases[lang]
			if len(phrases) == 0 {
				return nil, fmt.Errorf("%w: %q has no %s phrases", ErrInvalidCorpus, e.Specialty, lang)
			}
			for _, p := range phrases {
				compiled.phrases[lang] = append(compiled.phrases[lang], newTokenSet(Tokenize(p)))
			}
		}
		c.entries = append(c.entries, compiled)
	}
	c.corpus = nil
	return c, nil
}

// Classify ranks every specialty by similarity to text.
// Text shorter than MinInputLength after trimming yields an empty,
// low-confidence result.
func (c *Classifier) Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	lang := DetectLanguage(trimmed)
	if utf8.RuneCountInString(trimmed) < MinInputLength {
		return emptyResult(lang)
	}

	input := newTokenSet(Tokenize(trimmed))

	scores := make([]Candidate, 0, len(c.entries))
	for _, e := range c.entries {
		scores = append(scores, Candidate{
			Specialty: e.specialty,
			Score:     similarity(input, e.phrases[lang]),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Specialty < scores[j].Specialty
	})

	var top, second float64
	if len(scores) > 0 {
		top = scores[0].Score
	}
	if len(scores) > 1 {
		second = scores[1].Score
	}

	candidates := make([]Candidate, 0, MaxCandidates)
	for _, s := range scores {
		if len(candidates) == MaxCandidates {
			break
		}
		if s.Score >= CandidateThreshold {
			candidates = append(candidates, s)
		}
	}

	return Result{
		Candidates:  candidates,
		Scores:      scores,
		Confidence:  confidenceFor(top, second),
		Language:    lang,
		Explanation: c.explain(candidates, lang),
	}
}

// ClassifyWithSignal classifies text and lets a high-confidence keyword
// signal replace the candidate list. Scores and explanation always come
// from the corpus comparison.
func (c *Classifier) ClassifyWithSignal(text string, signal *Signal) Result {
	result := c.Classify(text)
	if signal == nil || signal.Confidence != core.ConfidenceHigh || len(signal.Specialties) == 0 {
		return result
	}

	byScore := make(map[core.Specialty]float64, len(result.Scores))
	for _, s := range result.Scores {
		byScore[s.Specialty] = s.Score
	}
	candidates := make([]Candidate, 0, len(signal.Specialties))
	for _, spec := range signal.Specialties {
		candidates = append(candidates, Candidate{Specialty: spec, Score: byScore[spec]})
	}
	result.Candidates = candidates
	result.Confidence = core.ConfidenceHigh
	return result
}

// Label returns the display label of a specialty in the given language,
// or the specialty id when the corpus has none.
func (c *Classifier) Label(spec core.Specialty, lang core.Language) string {
	for _, e := range c.entries {
		if e.specialty == spec {
			if l, ok := e.label[lang]; ok && l != "" {
				return l
			}
			break
		}
	}
	return string(spec)
}

func (c *Classifier) explain(candidates []Candidate, lang core.Language) string {
	if len(candidates) == 0 {
		return ""
	}
	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = c.Label(cand.Specialty, lang)
	}
	if lang == core.LanguageGerman {
		return "Basierend auf deiner Beschreibung passt: " + strings.Join(names, " und ") + "."
	}
	return "Based on your description: " + strings.Join(names, " and ") + "."
}

func similarity(input tokenSet, phrases []tokenSet) float64 {
	if len(phrases) == 0 {
		return 0
	}
	var best, total float64
	for _, p := range phrases {
		sim := jaccard(input, p)
		if sim > best {
			best = sim
		}
		total += sim
	}
	return maxWeight*best + meanWeight*(total/float64(len(phrases)))
}

func confidenceFor(top, second float64) core.Confidence {
	switch {
	case top >= highThreshold && top-second >= highLead:
		return core.ConfidenceHigh
	case top >= mediumThreshold:
		return core.ConfidenceMedium
	default:
		return core.ConfidenceLow
	}
}

func emptyResult(lang core.Language) Result {
	return Result{
		Candidates: []Candidate{},
		Scores:     []Candidate{},
		Confidence: core.ConfidenceLow,
		Language:   lang,
	}
}
