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
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agribot/agribot/internal/system/config"
)

// redisClientInterface is the subset of the go-redis client used by the slot store.
type redisClientInterface interface {
	MSet(ctx context.Context, values ...interface{}) *redis.StatusCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// redisSlotStore keeps slots as redis strings under a key prefix.
type redisSlotStore struct {
	client redisClientInterface
	prefix string
}

// NewRedisClient creates a go-redis client from the persistence configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisSlotStore creates a slot store on top of a redis client.
func NewRedisSlotStore(client redisClientInterface, prefix string) SlotStoreInterface {
	return &redisSlotStore{
		client: client,
		prefix: prefix,
	}
}

// Put writes all slots with a single MSET, which redis applies atomically.
func (s *redisSlotStore) Put(ctx context.Context, slots map[string][]byte) error {
	values := make([]interface{}, 0, len(slots)*2)
	for key, payload := range slots {
		values = append(values, s.prefix+key, string(payload))
	}
	if err := s.client.MSet(ctx, values...).Err(); err != nil {
		return fmt.Errorf("failed to write slots to redis: %w", err)
	}
	return nil
}

// Get reads the requested slots with a single MGET.
func (s *redisSlotStore) Get(ctx context.Context, keys []string) (map[string][]byte, error) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}

	values, err := s.client.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read slots from redis: %w", err)
	}

	slots := make(map[string][]byte, len(keys))
	for i, value := range values {
		if i >= len(keys) || value == nil {
			continue
		}
		payload, err := payloadBytes(value)
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", keys[i], err)
		}
		slots[keys[i]] = payload
	}
	return slots, nil
}
