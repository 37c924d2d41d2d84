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

// Package sqlite implements the storage ports on an embedded SQLite
// database through the pure-Go modernc.org/sqlite driver.
//
// Profiles are stored as codec blobs next to a slug column and a specialty
// join table, so the same records can be read by the badger adapter's
// serialization code. IDs are written as 8-byte big-endian keys, which keeps
// ORDER BY id in unsigned ID order.
package sqlite
