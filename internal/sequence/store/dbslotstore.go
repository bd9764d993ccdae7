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

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/agribot/agribot/internal/system/database/provider"
	"github.com/agribot/agribot/internal/system/log"
)

// dbSlotStore keeps slots in the SEQUENCE_SLOT table.
type dbSlotStore struct {
	dbProvider provider.DBProviderInterface
	logger     *log.Logger
}

// NewDBSlotStore creates a slot store backed by the AgriBot database.
func NewDBSlotStore(dbProvider provider.DBProviderInterface) SlotStoreInterface {
	return &dbSlotStore{
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSlotStore")),
	}
}

// Put writes all slots in a single transaction.
func (s *dbSlotStore) Put(ctx context.Context, slots map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	keys := make([]string, 0, len(slots))
	for key := range slots {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := tx.Exec(QueryUpsertSlot, key, string(slots[key])); err != nil {
			execErr := fmt.Errorf("failed to write slot %s: %w", key, err)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return multierr.Append(execErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return execErr
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Get reads the requested slots.
func (s *dbSlotStore) Get(ctx context.Context, keys []string) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	slots := make(map[string][]byte, len(keys))
	for _, key := range keys {
		results, err := dbClient.Query(QueryGetSlot, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
		}
		if len(results) == 0 {
			continue
		}
		if len(results) > 1 {
			s.logger.Error("More than one row found for slot", log.String("slot", key))
			return nil, errors.New("unexpected number of rows for slot " + key)
		}

		payload, err := payloadBytes(results[0]["payload"])
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
		}
		slots[key] = payload
	}
	return slots, nil
}

// payloadBytes converts the driver representation of a text column into bytes.
func payloadBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected payload type %T", value)
	}
}
