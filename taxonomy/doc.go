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

// Package taxonomy holds the immutable catalog of topics a person can select,
// their weighted refinements (subtopics), and the mapping from topics to the
// specialty tags carried by therapist profiles.
//
// A Taxonomy is validated once at construction and is safe for concurrent
// read-only use. Lookups never fail loudly: unknown identifiers are reported
// through the boolean return or silently skipped.
//
// # Intensity groups
//
// Several topics may share one pool of intensity statements. The catalog
// carries an explicit topic to group map; a topic without an entry uses its
// own id as the group key.
//
// # Versioning
//
// Fingerprint returns a BLAKE2b digest over a canonical serialization of the
// catalog. Two processes that report the same fingerprint score identically.
package taxonomy
