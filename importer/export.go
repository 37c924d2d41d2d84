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
	"context"
	"fmt"
	"io"

	"github.com/poiesic/therapymatch/storage"
	"gopkg.in/yaml.v3"
)

// WriteDocument writes every stored profile to w as a profile document that
// ImportFile reads back. It returns the number of profiles written.
func WriteDocument(ctx context.Context, repo storage.ProfileRepository, w io.Writer) (int, error) {
	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		return 0, err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Profiles: profiles}); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	return len(profiles), nil
}

// ExportFile writes every stored profile to path. Paths ending in .gz or
// .zst are compressed.
func ExportFile(ctx context.Context, repo storage.ProfileRepository, path string) (int, error) {
	w, err := createDocument(path)
	if err != nil {
		return 0, err
	}
	n, err := WriteDocument(ctx, repo, w)
	if closeErr := w.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
