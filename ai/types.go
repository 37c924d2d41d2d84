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
	"github.com/poiesic/therapymatch/situation"
)

// Source names the analyzer that produced a SituationAnalysis.
type Source string

const (
	SourceKeywords Source = "keywords"
	SourceLLM      Source = "llm"
	SourceMock     Source = "mock"
)

// SituationAnalysis is a situation.Analysis plus the human-readable text
// shown to the person.
type SituationAnalysis struct {
	situation.Analysis

	// Summary is a short empathic restatement in the detected language.
	Summary string `json:"summary,omitempty"`

	// Reasoning explains why the topics were chosen.
	Reasoning string `json:"reasoning,omitempty"`

	Source Source `json:"source"`
}

// CrisisDetected reports whether a crisis indicator was found.
func (a *SituationAnalysis) CrisisDetected() bool {
	return a != nil && a.Crisis != nil
}
