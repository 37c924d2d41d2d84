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
	"context"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/semantic"
	"github.com/poiesic/therapymatch/situation"
)

// KeywordAnalyzer implements SituationAnalyzer with the deterministic
// keyword detector. It never fails.
type KeywordAnalyzer struct {
	detector KeywordDetector
}

var _ SituationAnalyzer = (*KeywordAnalyzer)(nil)

// NewKeywordAnalyzer wraps a keyword detector.
func NewKeywordAnalyzer(detector KeywordDetector) (*KeywordAnalyzer, error) {
	if detector == nil {
		return nil, ErrDetectorRequired
	}
	return &KeywordAnalyzer{detector: detector}, nil
}

// AnalyzeSituation reads text with keyword tables.
func (k *KeywordAnalyzer) AnalyzeSituation(ctx context.Context, text string) (*SituationAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if IsTooShort(text) {
		return EmptyAnalysis(text, SourceKeywords), nil
	}
	if crisis := k.detector.DetectCrisis(text); crisis != nil {
		return CrisisAnalysis(text, crisis, SourceKeywords), nil
	}

	a := k.detector.Detect(text)
	return &SituationAnalysis{
		Analysis:  a,
		Summary:   Summarize(a.Topics, a.Intensity, a.Language),
		Reasoning: keywordReasoning(a.Language),
		Source:    SourceKeywords,
	}, nil
}

// IsTooShort reports whether text is below the minimum length any
// analyzer reads.
func IsTooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < semantic.MinInputLength
}

// EmptyAnalysis is the reading of a text too short to analyze.
func EmptyAnalysis(text string, source Source) *SituationAnalysis {
	return &SituationAnalysis{
		Analysis: situation.Analysis{
			Language:   situation.DetectLanguage(text),
			Intensity:  intensity.LevelNone,
			Confidence: core.ConfidenceLow,
		},
		Source: source,
	}
}

// CrisisAnalysis is the reading of a text with a crisis indicator. Topics
// are withheld so the caller shows crisis resources instead of matches.
func CrisisAnalysis(text string, crisis *situation.Crisis, source Source) *SituationAnalysis {
	return &SituationAnalysis{
		Analysis: situation.Analysis{
			Language:   situation.DetectLanguage(text),
			Intensity:  intensity.LevelHigh,
			Crisis:     crisis,
			Confidence: core.ConfidenceLow,
		},
		Source: source,
	}
}
