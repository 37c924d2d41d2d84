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

package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/situation"
	"github.com/poiesic/therapymatch/taxonomy"
)

// MockSituationAnalyzer is a test double for ai.SituationAnalyzer.
type MockSituationAnalyzer struct {
	// AnalyzeSituationFunc allows customizing the behavior.
	// If nil, uses default verbatim topic matching.
	AnalyzeSituationFunc func(ctx context.Context, text string) (*ai.SituationAnalysis, error)

	// Topics are the ids the default behavior looks for.
	Topics []string

	// Resolver maps found topics to specialties. Defaults to the bundled
	// catalog.
	Resolver situation.SpecialtyResolver

	mu        sync.Mutex
	callCount int
}

// NewMockSituationAnalyzer creates a mock analyzer that looks for the
// given topic ids.
// Note: Returns concrete type to allow test assertions via GetMockAnalyzer().
func NewMockSituationAnalyzer(topics ...string) *MockSituationAnalyzer {
	return &MockSituationAnalyzer{Topics: topics, Resolver: taxonomy.Default()}
}

// AnalyzeSituation returns the configured topics that occur in text.
func (m *MockSituationAnalyzer) AnalyzeSituation(ctx context.Context, text string) (*ai.SituationAnalysis, error) {
	m.mu.Lock()
	m.callCount++
	fn := m.AnalyzeSituationFunc
	resolver := m.Resolver
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(text)
	found := make([]string, 0, len(m.Topics))
	for _, t := range m.Topics {
		if strings.Contains(lowered, t) {
			found = append(found, t)
		}
	}

	confidence := core.ConfidenceLow
	var specialties []core.Specialty
	if len(found) > 0 {
		confidence = core.ConfidenceHigh
		if resolver != nil {
			specialties = resolver.SpecialtiesForTopics(found)
		}
	}
	return &ai.SituationAnalysis{
		Analysis: situation.Analysis{
			Language:    situation.DetectLanguage(text),
			Topics:      found,
			Specialties: specialties,
			Intensity:   intensity.LevelMedium,
			Confidence:  confidence,
		},
		Source: ai.SourceMock,
	}, nil
}

// CallCount returns the number of times AnalyzeSituation was called.
func (m *MockSituationAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count.
func (m *MockSituationAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
}
