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

// Package ai provides the optional language-model side of situation
// analysis.
//
// A person's free-text description can be read two ways: by the
// deterministic keyword detector in package situation, or by an
// OpenAI-compatible chat model. Both sit behind the SituationAnalyzer
// interface so the engine never cares which one produced the reading.
//
// # Implementation Packages
//
//   - ai/openai: langchaingo-backed analyzer with keyword fallback
//   - ai/mock: test doubles
//
// KeywordAnalyzer in this package wraps the keyword detector directly and
// is what the engine uses when no model is configured.
//
// # Safety
//
// Crisis keywords are always checked locally before any text leaves the
// process, and a crisis short-circuits the analysis.
package ai
