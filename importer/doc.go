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

// Package importer loads therapist profiles from YAML documents into a
// storage.ProfileRepository.
//
// Profiles are validated up front, written in batches with SaveProfiles
// (so re-importing a file updates profiles in place, keyed by slug), and
// each batch is retried with exponential backoff when the store reports a
// transient failure such as a transaction conflict.
//
// Document format:
//
//	profiles:
//	  - slug: anna-berg
//	    name: Anna Berg
//	    specialties: [anxiety, depression]
//	    gender: female
//	    session_mode: both
//	    insurance: [public]
//	    location: {city: Berlin, postal_code: "10115"}
//	    availability: immediately
package importer
