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
	"context"

	"github.com/poiesic/therapymatch/core"
)

// ProfileRepository provides operations for managing therapist profiles.
type ProfileRepository interface {
	// AddProfiles stores new profiles.
	// Profiles with ID=0 get a content ID derived from their slug.
	// Returns ErrDuplicateKey if a slug or ID is already taken.
	AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// UpdateProfiles replaces existing profiles, keyed by ID.
	// Returns ErrNotFound if any profile doesn't exist.
	UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// SaveProfiles adds or replaces profiles keyed by slug.
	SaveProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// DeleteProfiles removes profiles and their index entries.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves the profiles that exist among ids.
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// GetProfileBySlug finds a profile through the slug index.
	// Returns ErrNotFound if no profile has the slug.
	GetProfileBySlug(ctx context.Context, slug string) (*core.Profile, error)

	// GetProfileIDsBySpecialty returns the IDs of profiles holding a specialty,
	// in ascending ID order.
	GetProfileIDsBySpecialty(ctx context.Context, specialty core.Specialty) ([]core.ID, error)

	// ListProfiles returns every stored profile in ascending ID order.
	ListProfiles(ctx context.Context) ([]*core.Profile, error)

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)

	// Close releases repository resources. It does not close the backend.
	Close() error
}

// MetadataRepository stores small named values such as the taxonomy
// fingerprint a database was populated under.
type MetadataRepository interface {
	// SetMetadata stores value under key.
	SetMetadata(ctx context.Context, key, value string) error

	// GetMetadata returns the value stored under key.
	// found is false if the key was never set.
	GetMetadata(ctx context.Context, key string) (value string, found bool, err error)
}
