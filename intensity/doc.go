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

// Package intensity converts a person's selection of self-descriptive
// statements into a 0-100 severity reading and a three-level category.
//
// Statements are grouped by intensity group. Topics resolve to a group via
// the taxonomy; a group without statements falls back to the shared default
// set so that every topic can produce a reading.
package intensity
