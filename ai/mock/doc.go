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

// Package mock provides test doubles for the ai interfaces.
//
// The mocks let the engine and CLI be tested without a running model
// server.
//
// # Usage
//
//	provider := mock.NewMockProvider()
//	analyzer := provider.(*mock.MockProvider).GetMockAnalyzer()
//	analyzer.AnalyzeSituationFunc = func(ctx context.Context, text string) (*ai.SituationAnalysis, error) {
//	    return &ai.SituationAnalysis{Source: ai.SourceMock}, nil
//	}
//
//	// Check call counts
//	count := analyzer.CallCount()
//
// # Default Behavior
//
//   - MockSituationAnalyzer: Reports topics whose ids appear verbatim in the text
//   - MockProvider: Wraps a MockSituationAnalyzer
package mock
