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

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/therapymatch/storage"
)

// MetadataRepository implements storage.MetadataRepository for BadgerDB.
type MetadataRepository struct {
	backend *Backend
}

var _ storage.MetadataRepository = (*MetadataRepository)(nil)

// NewMetadataRepository creates a new MetadataRepository.
func NewMetadataRepository(backend *Backend) *MetadataRepository {
	return &MetadataRepository{backend: backend}
}

// SetMetadata persists value under key.
func (r *MetadataRepository) SetMetadata(ctx context.Context, key, value string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeMetadataKey(key), storage.MarshalString(value)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetMetadata retrieves the value stored under key.
func (r *MetadataRepository) GetMetadata(ctx context.Context, key string) (string, bool, error) {
	if r.backend.IsClosed() {
		return "", false, storage.ErrStorageClosed
	}
	var (
		value string
		found bool
	)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeMetadataKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			value, unmarshalErr = storage.UnmarshalString(val)
			return unmarshalErr
		})
	}, false)
	return value, found, err
}
