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

// Package scoring computes the 0-100 match score of one therapist profile
// against a person's criteria.
//
// The score is the sum of three independently normalized sub-scores:
//
//	topic       50  share of the selected specialties the profile holds
//	criteria    35  location 10, gender 8, session mode 9, insurance 8,
//	                rescaled over the filters actually supplied
//	refinement  15  weighted share of selected subtopics whose parent
//	                topic the profile covers
//
// A category without any usable preference is awarded full credit. Each
// sub-score is rounded (half away from zero) before summing. The calculator
// never fails: unknown identifiers degrade to "no preference".
package scoring
