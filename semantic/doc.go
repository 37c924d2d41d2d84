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

// Package semantic classifies free text into specialty candidates without
// any model or network call.
//
// Text is tokenized, compared against a small bilingual phrase corpus per
// specialty with Jaccard similarity, and the per-specialty similarities are
// blended as 0.6*max + 0.4*mean. Output is reproducible byte for byte for a
// given input and corpus.
package semantic
