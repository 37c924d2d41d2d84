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
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a ProfileRepository over an open backend.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &ProfileRepository{backend: backend}, nil
}

// OpenProfileRepository opens an on-disk store at path and returns a
// repository over it. The caller closes the backend.
func OpenProfileRepository(path string, opts ...BackendOption) (*ProfileRepository, *Backend, error) {
	backend, err := OpenBackend(path, false, opts...)
	if err != nil {
		return nil, nil, err
	}
	repo, err := NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return repo, backend, nil
}

// Close releases resources. ProfileRepository has no resources to release.
func (r *ProfileRepository) Close() error {
	return nil
}

func (r *ProfileRepository) checkOpen() error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return nil
}

// prepare validates and normalizes profiles before a write.
func prepare(profiles []*core.Profile) error {
	for _, p := range profiles {
		if err := core.ValidateProfile(p); err != nil {
			return err
		}
		core.NormalizeProfile(p)
	}
	return nil
}

// AddProfiles stores new profiles.
func (r *ProfileRepository) AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if err := prepare(profiles); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, p := range profiles {
			if found, err := keyExists(tx, makeProfileKey(p.Id)); err != nil {
				return err
			} else if found {
				return fmt.Errorf("%w: profile id %d", storage.ErrDuplicateKey, p.Id)
			}
			if _, found, err := lookupSlug(tx, p.Slug); err != nil {
				return err
			} else if found {
				return fmt.Errorf("%w: slug %q", storage.ErrDuplicateKey, p.Slug)
			}
			if err := writeProfile(tx, p); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfiles replaces existing profiles, keyed by ID.
func (r *ProfileRepository) UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if err := prepare(profiles); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, p := range profiles {
			old, err := readProfile(tx, makeProfileKey(p.Id))
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: profile id %d", storage.ErrNotFound, p.Id)
			}
			if old.Slug != p.Slug {
				if owner, found, err := lookupSlug(tx, p.Slug); err != nil {
					return err
				} else if found && owner != p.Id {
					return fmt.Errorf("%w: slug %q", storage.ErrDuplicateKey, p.Slug)
				}
			}
			if err := removeIndexes(tx, old); err != nil {
				return err
			}
			if err := writeProfile(tx, p); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// SaveProfiles adds or replaces profiles keyed by slug. A profile whose
// slug is already stored takes over the stored ID.
func (r *ProfileRepository) SaveProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if err := prepare(profiles); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, p := range profiles {
			existing, found, err := lookupSlug(tx, p.Slug)
			if err != nil {
				return err
			}
			if found {
				p.Id = existing
			}

			old, err := readProfile(tx, makeProfileKey(p.Id))
			if err != nil {
				return err
			}
			if old != nil {
				if old.Slug != p.Slug {
					return fmt.Errorf("%w: profile id %d belongs to slug %q", storage.ErrDuplicateKey, p.Id, old.Slug)
				}
				if err := removeIndexes(tx, old); err != nil {
					return err
				}
			}
			if err := writeProfile(tx, p); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteProfiles removes profiles by their IDs.
func (r *ProfileRepository) DeleteProfiles(ctx context.Context, ids ...core.ID) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProfileKey(id)
			old, err := readProfile(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: profile id %d", storage.ErrNotFound, id)
			}
			if err := removeIndexes(tx, old); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProfiles retrieves the profiles that exist among ids, in request order.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	var result []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			p, err := readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if p != nil {
				result = append(result, p)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetProfileBySlug finds a profile through the slug index.
func (r *ProfileRepository) GetProfileBySlug(ctx context.Context, slug string) (*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", storage.ErrInvalidQuery)
	}
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, found, err := lookupSlug(tx, slug)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		result, err = readProfile(tx, makeProfileKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProfileIDsBySpecialty returns the IDs of profiles holding specialty.
func (r *ProfileRepository) GetProfileIDsBySpecialty(ctx context.Context, specialty core.Specialty) ([]core.ID, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makePartialProfileSpecialtyKey(specialty)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			ids = append(ids, profileIDFromKey(iter.Item().Key()))
		}
		return nil
	}, false)
	return ids, err
}

// ListProfiles returns every stored profile in ascending ID order.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.Profile, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p *core.Profile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				p, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, p)
		}
		return nil
	}, false)
	return results, err
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	if err := r.checkOpen(); err != nil {
		return 0, err
	}
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(profileRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// writeProfile stores the record and its slug and specialty index entries.
func writeProfile(tx *badger.Txn, p *core.Profile) error {
	if err := tx.Set(makeProfileKey(p.Id), storage.MarshalProfile(p)); err != nil {
		return err
	}
	if err := tx.Set(makeProfileSlugKey(p.Slug), storage.MarshalID(p.Id)); err != nil {
		return err
	}
	for _, s := range p.Specialties {
		if err := tx.Set(makeProfileSpecialtyKey(s, p.Id), nil); err != nil {
			return err
		}
	}
	return nil
}

// removeIndexes deletes the slug and specialty index entries of p.
func removeIndexes(tx *badger.Txn, p *core.Profile) error {
	if err := tx.Delete(makeProfileSlugKey(p.Slug)); err != nil {
		return err
	}
	for _, s := range p.Specialties {
		if err := tx.Delete(makeProfileSpecialtyKey(s, p.Id)); err != nil {
			return err
		}
	}
	return nil
}

// readProfile reads a profile from the transaction.
// Returns nil, nil if the key doesn't exist.
func readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var p *core.Profile
	err = item.Value(func(val []byte) error {
		var err error
		p, err = storage.UnmarshalProfile(val)
		return err
	})
	return p, err
}

// lookupSlug resolves a slug to its profile ID.
func lookupSlug(tx *badger.Txn, slug string) (core.ID, bool, error) {
	item, err := tx.Get(makeProfileSlugKey(slug))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var err error
		id, err = storage.UnmarshalID(val)
		return err
	})
	return id, err == nil, err
}

func keyExists(tx *badger.Txn, key []byte) (bool, error) {
	_, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}
