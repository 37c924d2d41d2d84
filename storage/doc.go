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

// Package storage defines the persistence ports for therapist profiles.
//
// The matching core never imports this package. Profiles are loaded through
// a ProfileRepository and handed to the ranker as plain values, so any
// backend that satisfies the interfaces here can serve a match run.
//
// Values are encoded with a compact mus-go binary format (see codec.go).
// Every encoded profile starts with a format version so older databases
// can be detected instead of silently misread.
//
// # Usage
//
//	repo, backend, err := badger.OpenProfileRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Tests use an in-memory store:
//
//	repo, backend, err := badger.NewMemoryProfileRepository()
package storage
