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

// Package openai provides a situation analyzer backed by an
// OpenAI-compatible chat API.
//
// This package implements ai.Provider using the langchaingo library, so any
// OpenAI-compatible service works (OpenAI, Groq, Ollama, LocalAI, vLLM).
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	)
//
//	detector, err := situation.NewDetector(taxonomy.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider, err := openai.NewProvider(config, taxonomy.Default(), detector)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	analysis, err := provider.SituationAnalyzer().AnalyzeSituation(ctx, text)
//
// Text is anonymized before it leaves the process, crisis keywords are
// checked locally first, and any model failure falls back to the keyword
// detector.
package openai
