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

import "github.com/poiesic/therapymatch/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	analyzer *MockSituationAnalyzer
	closed   bool
}

// NewMockProvider creates a new mock provider with a default analyzer.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockAnalyzer() to access the concrete analyzer for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{analyzer: NewMockSituationAnalyzer()}
}

// NewMockProviderWithAnalyzer creates a mock provider around a custom analyzer.
func NewMockProviderWithAnalyzer(analyzer *MockSituationAnalyzer) ai.Provider {
	return &MockProvider{analyzer: analyzer}
}

// SituationAnalyzer returns the mock analyzer.
func (p *MockProvider) SituationAnalyzer() ai.SituationAnalyzer {
	return p.analyzer
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockAnalyzer returns the underlying mock analyzer for test assertions.
func (p *MockProvider) GetMockAnalyzer() *MockSituationAnalyzer {
	return p.analyzer
}
