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

package badger

import (
	"encoding/binary"

	"github.com/poiesic/therapymatch/core"
)

const (
	profileRecordPrefix    = "prorec:"
	profileSlugPrefix      = "proslug:"
	profileSpecialtyPrefix = "prospec:"
	metadataPrefix         = "meta:"
)

// makeProfileKey generates a key for a profile by ID.
// Format: prefix + 8 byte BigEndian ID, so iteration yields ascending IDs.
func makeProfileKey(id core.ID) []byte {
	buf := make([]byte, len(profileRecordPrefix)+8)
	offset := copy(buf, profileRecordPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// profileIDFromKey extracts the ID from a profile or specialty index key.
func profileIDFromKey(key []byte) core.ID {
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:]))
}

// makeProfileSlugKey generates the slug index key.
func makeProfileSlugKey(slug string) []byte {
	return []byte(profileSlugPrefix + slug)
}

// makeProfileSpecialtyKey generates a composite key for the specialty index.
// Format: prefix:specialty:ID
func makeProfileSpecialtyKey(specialty core.Specialty, id core.ID) []byte {
	prefix := makePartialProfileSpecialtyKey(specialty)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialProfileSpecialtyKey generates the prefix for specialty queries.
func makePartialProfileSpecialtyKey(specialty core.Specialty) []byte {
	return []byte(profileSpecialtyPrefix + string(specialty) + ":")
}

// makeMetadataKey generates a key for a named metadata value.
func makeMetadataKey(name string) []byte {
	return []byte(metadataPrefix + name)
}
