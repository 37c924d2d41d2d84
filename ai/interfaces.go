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

	"github.com/poiesic/therapymatch/situation"
)

// SituationAnalyzer reads a free-text description of a person's situation.
// Implementations must be safe for concurrent use.
type SituationAnalyzer interface {
	// AnalyzeSituation returns the topics, specialties and intensity found
	// in text. Texts shorter than the classifier minimum yield an empty
	// analysis. A detected crisis is reported with no topics.
	AnalyzeSituation(ctx context.Context, text string) (*SituationAnalysis, error)
}

// KeywordDetector is the deterministic detector an analyzer falls back on.
// *situation.Detector implements it.
type KeywordDetector interface {
	Detect(text string) situation.Analysis
	DetectCrisis(text string) *situation.Crisis
}

// Provider owns an analyzer and the resources behind it.
type Provider interface {
	// SituationAnalyzer returns the analyzer. It is safe for concurrent use.
	SituationAnalyzer() SituationAnalyzer

	// Close releases resources held by the provider.
	Close() error
}
