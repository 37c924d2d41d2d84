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

package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage"
)

// ProfileRepository implements storage.ProfileRepository on SQLite.
type ProfileRepository struct {
	store *Store
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// Close releases resources. The store stays open.
func (r *ProfileRepository) Close() error {
	return nil
}

// idKey encodes an ID so that byte order equals numeric order.
func idKey(id core.ID) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return buf[:]
}

func idFromKey(key []byte) (core.ID, error) {
	if len(key) != 8 {
		return 0, fmt.Errorf("%w: id key of %d bytes", storage.ErrSerializationFailed, len(key))
	}
	return core.ID(binary.BigEndian.Uint64(key)), nil
}

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
	if err := prepare(profiles); err != nil {
		return nil, err
	}
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range profiles {
			if _, found, err := slugOwner(ctx, tx, p.Slug); err != nil {
				return err
			} else if found {
				return fmt.Errorf("%w: slug %q", storage.ErrDuplicateKey, p.Slug)
			}
			if old, err := readProfile(ctx, tx, p.Id); err != nil {
				return err
			} else if old != nil {
				return fmt.Errorf("%w: profile id %d", storage.ErrDuplicateKey, p.Id)
			}
			if err := writeProfile(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfiles replaces existing profiles, keyed by ID.
func (r *ProfileRepository) UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	if err := prepare(profiles); err != nil {
		return nil, err
	}
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range profiles {
			old, err := readProfile(ctx, tx, p.Id)
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: profile id %d", storage.ErrNotFound, p.Id)
			}
			if old.Slug != p.Slug {
				if owner, found, err := slugOwner(ctx, tx, p.Slug); err != nil {
					return err
				} else if found && owner != p.Id {
					return fmt.Errorf("%w: slug %q", storage.ErrDuplicateKey, p.Slug)
				}
			}
			if err := writeProfile(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// SaveProfiles adds or replaces profiles keyed by slug. A profile whose
// slug is already stored takes over the stored ID.
func (r *ProfileRepository) SaveProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	if err := prepare(profiles); err != nil {
		return nil, err
	}
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range profiles {
			existing, found, err := slugOwner(ctx, tx, p.Slug)
			if err != nil {
				return err
			}
			if found {
				p.Id = existing
			}
			old, err := readProfile(ctx, tx, p.Id)
			if err != nil {
				return err
			}
			if old != nil && old.Slug != p.Slug {
				return fmt.Errorf("%w: profile id %d belongs to slug %q", storage.ErrDuplicateKey, p.Id, old.Slug)
			}
			if err := writeProfile(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteProfiles removes profiles by their IDs together with their
// specialty rows.
func (r *ProfileRepository) DeleteProfiles(ctx context.Context, ids ...core.ID) error {
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			key := idKey(id)
			if _, err := tx.ExecContext(ctx, "DELETE FROM profile_specialties WHERE profile_id = ?", key); err != nil {
				return err
			}
			res, err := tx.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", key)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: profile id %d", storage.ErrNotFound, id)
			}
		}
		return nil
	})
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if result, err = readProfile(ctx, tx, id); err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	})
	return result, err
}

// GetProfiles retrieves the profiles that exist among ids, in request order.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	var result []*core.Profile
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			p, err := readProfile(ctx, tx, id)
			if err != nil {
				return err
			}
			if p != nil {
				result = append(result, p)
			}
		}
		return nil
	})
	return result, err
}

// GetProfileBySlug finds a profile by its slug.
func (r *ProfileRepository) GetProfileBySlug(ctx context.Context, slug string) (*core.Profile, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", storage.ErrInvalidQuery)
	}
	if r.store.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var data []byte
	err := r.store.db.QueryRowContext(ctx, "SELECT data FROM profiles WHERE slug = ?", slug).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalProfile(data)
}

// GetProfileIDsBySpecialty returns the IDs of profiles holding specialty.
func (r *ProfileRepository) GetProfileIDsBySpecialty(ctx context.Context, specialty core.Specialty) ([]core.ID, error) {
	if r.store.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	rows, err := r.store.db.QueryContext(ctx,
		"SELECT profile_id FROM profile_specialties WHERE specialty = ? ORDER BY profile_id",
		string(specialty))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []core.ID
	for rows.Next() {
		var key []byte
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		id, err := idFromKey(key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListProfiles returns every stored profile in ascending ID order.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.Profile, error) {
	if r.store.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	rows, err := r.store.db.QueryContext(ctx, "SELECT data FROM profiles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.Profile
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		p, err := storage.UnmarshalProfile(data)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	if r.store.IsClosed() {
		return 0, storage.ErrStorageClosed
	}
	var count int
	err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&count)
	return count, err
}

// writeProfile upserts the record and rewrites its specialty rows.
func writeProfile(ctx context.Context, tx *sql.Tx, p *core.Profile) error {
	key := idKey(p.Id)
	_, err := tx.ExecContext(ctx, `
		INSERT INTO profiles (id, slug, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			slug = excluded.slug,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, key, p.Slug, storage.MarshalProfile(p))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM profile_specialties WHERE profile_id = ?", key); err != nil {
		return err
	}
	for _, s := range p.Specialties {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO profile_specialties (specialty, profile_id) VALUES (?, ?)",
			string(s), key); err != nil {
			return err
		}
	}
	return nil
}

// readProfile returns nil, nil if no profile has id.
func readProfile(ctx context.Context, tx *sql.Tx, id core.ID) (*core.Profile, error) {
	var data []byte
	err := tx.QueryRowContext(ctx, "SELECT data FROM profiles WHERE id = ?", idKey(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalProfile(data)
}

func slugOwner(ctx context.Context, tx *sql.Tx, slug string) (core.ID, bool, error) {
	var key []byte
	err := tx.QueryRowContext(ctx, "SELECT id FROM profiles WHERE slug = ?", slug).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := idFromKey(key)
	return id, err == nil, err
}
