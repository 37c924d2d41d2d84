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
	"errors"

	"github.com/poiesic/therapymatch/storage"
)

// MetadataRepository implements storage.MetadataRepository on SQLite.
type MetadataRepository struct {
	store *Store
}

var _ storage.MetadataRepository = (*MetadataRepository)(nil)

// SetMetadata persists value under key.
func (r *MetadataRepository) SetMetadata(ctx context.Context, key, value string) error {
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		return err
	})
}

// GetMetadata retrieves the value stored under key.
func (r *MetadataRepository) GetMetadata(ctx context.Context, key string) (string, bool, error) {
	if r.store.IsClosed() {
		return "", false, storage.ErrStorageClosed
	}
	var value string
	err := r.store.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
