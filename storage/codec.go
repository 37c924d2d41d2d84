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

package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/therapymatch/core"
)

// profileFormatV1 prefixes every encoded profile.
const profileFormatV1 = 1

// ProfileMUS is the mus-go serializer for core.Profile.
var ProfileMUS = profileSer{}

type profileSer struct{}

// Marshal writes v into bs, which must be at least Size(v) bytes long,
// and returns the number of bytes written.
func (profileSer) Marshal(v core.Profile, bs []byte) (n int) {
	n = varint.Uint64.Marshal(profileFormatV1, bs)
	n += varint.Uint64.Marshal(uint64(v.Id), bs[n:])
	n += ord.String.Marshal(v.Slug, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += marshalStrings(v.Specialties, bs[n:])
	n += ord.String.Marshal(string(v.Gender), bs[n:])
	n += ord.String.Marshal(string(v.SessionMode), bs[n:])
	n += marshalStrings(v.Insurance, bs[n:])
	n += ord.String.Marshal(v.Location.City, bs[n:])
	n += ord.String.Marshal(v.Location.PostalCode, bs[n:])
	n += ord.String.Marshal(string(v.Availability), bs[n:])
	n += marshalStrings(v.Languages, bs[n:])
	return n
}

// Unmarshal decodes a profile from bs.
func (profileSer) Unmarshal(bs []byte) (v core.Profile, n int, err error) {
	var (
		m       int
		version uint64
		id      uint64
		str     string
	)
	if version, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	if version != profileFormatV1 {
		err = fmt.Errorf("%w: profile version %d", ErrUnsupportedFormat, version)
		return
	}

	if id, m, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	v.Id = core.ID(id)

	if v.Slug, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if v.Name, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if v.Specialties, m, err = unmarshalStrings[core.Specialty](bs[n:]); err != nil {
		return
	}
	n += m
	if str, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	v.Gender = core.Gender(str)
	if str, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	v.SessionMode = core.SessionMode(str)
	if v.Insurance, m, err = unmarshalStrings[core.Insurance](bs[n:]); err != nil {
		return
	}
	n += m
	if v.Location.City, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if v.Location.PostalCode, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if str, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	v.Availability = core.Availability(str)
	if v.Languages, m, err = unmarshalStrings[core.Language](bs[n:]); err != nil {
		return
	}
	n += m
	return
}

// Size returns the encoded length of v.
func (profileSer) Size(v core.Profile) (size int) {
	size = varint.Uint64.Size(profileFormatV1)
	size += varint.Uint64.Size(uint64(v.Id))
	size += ord.String.Size(v.Slug)
	size += ord.String.Size(v.Name)
	size += sizeStrings(v.Specialties)
	size += ord.String.Size(string(v.Gender))
	size += ord.String.Size(string(v.SessionMode))
	size += sizeStrings(v.Insurance)
	size += ord.String.Size(v.Location.City)
	size += ord.String.Size(v.Location.PostalCode)
	size += ord.String.Size(string(v.Availability))
	size += sizeStrings(v.Languages)
	return size
}

// String slices are a varint length followed by the elements.

func marshalStrings[T ~string](vs []T, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(len(vs)), bs)
	for _, s := range vs {
		n += ord.String.Marshal(string(s), bs[n:])
	}
	return n
}

func unmarshalStrings[T ~string](bs []byte) (vs []T, n int, err error) {
	length, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	// Every element takes at least one byte.
	if length > uint64(len(bs)-n) {
		return nil, n, fmt.Errorf("%w: slice length %d exceeds input", ErrSerializationFailed, length)
	}
	vs = make([]T, length)
	for i := range vs {
		s, m, err := ord.String.Unmarshal(bs[n:])
		if err != nil {
			return nil, n, err
		}
		n += m
		vs[i] = T(s)
	}
	return vs, n, nil
}

func sizeStrings[T ~string](vs []T) (size int) {
	size = varint.Uint64.Size(uint64(len(vs)))
	for _, s := range vs {
		size += ord.String.Size(string(s))
	}
	return size
}
