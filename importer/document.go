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

package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/poiesic/therapymatch/core"
	"gopkg.in/yaml.v3"
)

// Document is the top-level shape of a profile file.
type Document struct {
	Profiles []*core.Profile `yaml:"profiles"`
}

// ParseDocument decodes a profile document. Unknown fields are rejected so
// typos in a hand-written file surface instead of being dropped.
func ParseDocument(r io.Reader) ([]*core.Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	profiles := make([]*core.Profile, 0, len(doc.Profiles))
	for _, p := range doc.Profiles {
		if p != nil {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}
