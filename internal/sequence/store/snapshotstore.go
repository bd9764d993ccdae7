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

// Package store persists sequence snapshots into two fixed key-value slots.
package store

import (
	"context"
	"fmt"

	"github.com/agribot/agribot/internal/sequence/graph"
	"github.com/agribot/agribot/internal/system/log"
)

// SnapshotStoreInterface saves and loads sequence snapshots.
type SnapshotStoreInterface interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}

// SlotStoreInterface is a key-value store holding raw slot payloads. Get omits absent keys.
type SlotStoreInterface interface {
	Put(ctx context.Context, slots map[string][]byte) error
	Get(ctx context.Context, keys []string) (map[string][]byte, error)
}

// snapshotStore encodes snapshots into the node and edge slots of a slot store.
type snapshotStore struct {
	slots  SlotStoreInterface
	logger *log.Logger
}

// NewSnapshotStore creates a snapshot store on top of the given slot store.
func NewSnapshotStore(slots SlotStoreInterface) SnapshotStoreInterface {
	return &snapshotStore{
		slots:  slots,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SnapshotStore")),
	}
}

// Save overwrites both slots with the snapshot.
func (s *snapshotStore) Save(ctx context.Context, snapshot Snapshot) error {
	nodes := snapshot.Nodes
	if nodes == nil {
		nodes = []graph.Node{}
	}
	edges := snapshot.Edges
	if edges == nil {
		edges = []graph.Edge{}
	}

	nodePayload, err := encodeSlot(nodes)
	if err != nil {
		return fmt.Errorf("failed to encode nodes: %w", err)
	}
	edgePayload, err := encodeSlot(edges)
	if err != nil {
		return fmt.Errorf("failed to encode edges: %w", err)
	}

	if err := s.slots.Put(ctx, map[string][]byte{
		NodesSlot: nodePayload,
		EdgesSlot: edgePayload,
	}); err != nil {
		return fmt.Errorf("failed to write snapshot slots: %w", err)
	}

	s.logger.Debug("Snapshot saved", log.Int("nodes", len(nodes)), log.Int("edges", len(edges)))
	return nil
}

// Load reads both slots. It returns ErrSnapshotNotFound when either slot is absent and
// ErrSnapshotCorrupt when a slot cannot be decoded.
func (s *snapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	payloads, err := s.slots.Get(ctx, []string{NodesSlot, EdgesSlot})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot slots: %w", err)
	}

	nodePayload, hasNodes := payloads[NodesSlot]
	edgePayload, hasEdges := payloads[EdgesSlot]
	if !hasNodes || !hasEdges {
		return nil, ErrSnapshotNotFound
	}

	nodes, err := decodeNodes(nodePayload)
	if err != nil {
		return nil, err
	}
	edges, err := decodeEdges(edgePayload)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Snapshot loaded", log.Int("nodes", len(nodes)), log.Int("edges", len(edges)))
	return &Snapshot{Nodes: nodes, Edges: edges}, nil
}
