/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package field

import (
	"github.com/agribot/agribot/internal/system/cache"
)

// cachedBackedFieldStore serves field lookups by id from a cache in front of the database store.
type cachedBackedFieldStore struct {
	fieldByIDCache cache.CacheInterface[*Field]
	store          fieldStoreInterface
}

// newCachedBackedFieldStore wraps the store with the FieldByIDCache.
func newCachedBackedFieldStore(store fieldStoreInterface) fieldStoreInterface {
	return &cachedBackedFieldStore{
		fieldByIDCache: cache.GetCache[*Field]("FieldByIDCache"),
		store:          store,
	}
}

// CreateField creates a new field and caches it.
func (s *cachedBackedFieldStore) CreateField(f Field) error {
	if err := s.store.CreateField(f); err != nil {
		return err
	}
	s.cacheField(&f)
	return nil
}

// GetFieldByID retrieves a field by its id, using the cache if available.
func (s *cachedBackedFieldStore) GetFieldByID(id string) (*Field, error) {
	if cached, ok := s.fieldByIDCache.Get(id); ok {
		return cached, nil
	}

	f, err := s.store.GetFieldByID(id)
	if err != nil || f == nil {
		return f, err
	}
	s.cacheField(f)
	return f, nil
}

// IsFieldNameTaken delegates to the underlying store.
func (s *cachedBackedFieldStore) IsFieldNameTaken(name string) (bool, error) {
	return s.store.IsFieldNameTaken(name)
}

// ListFields delegates to the underlying store.
func (s *cachedBackedFieldStore) ListFields(search string) ([]Field, error) {
	return s.store.ListFields(search)
}

// CreateFieldData delegates to the underlying store.
func (s *cachedBackedFieldStore) CreateFieldData(data FieldData) error {
	return s.store.CreateFieldData(data)
}

// ListFieldData delegates to the underlying store.
func (s *cachedBackedFieldStore) ListFieldData(fieldID string) ([]FieldData, error) {
	return s.store.ListFieldData(fieldID)
}

func (s *cachedBackedFieldStore) cacheField(f *Field) {
	if f == nil || f.ID == "" {
		return
	}
	s.fieldByIDCache.Set(f.ID, f)
}
