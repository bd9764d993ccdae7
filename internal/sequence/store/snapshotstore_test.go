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
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/sequence/catalog"
	"github.com/agribot/agribot/internal/sequence/graph"
)

// memorySlotStore is an in-memory SlotStoreInterface.
type memorySlotStore struct {
	slots  map[string][]byte
	putErr error
	getErr error
}

func newMemorySlotStore() *memorySlotStore {
	return &memorySlotStore{slots: make(map[string][]byte)}
}

func (m *memorySlotStore) Put(_ context.Context, slots map[string][]byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	for key, payload := range slots {
		m.slots[key] = payload
	}
	return nil
}

func (m *memorySlotStore) Get(_ context.Context, keys []string) (map[string][]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[string][]byte)
	for _, key := range keys {
		if payload, ok := m.slots[key]; ok {
			result[key] = payload
		}
	}
	return result, nil
}

type SnapshotStoreTestSuite struct {
	suite.Suite
	slots *memorySlotStore
	store SnapshotStoreInterface
}

func TestSnapshotStoreSuite(t *testing.T) {
	suite.Run(t, new(SnapshotStoreTestSuite))
}

func (suite *SnapshotStoreTestSuite) SetupTest() {
	suite.slots = newMemorySlotStore()
	suite.store = NewSnapshotStore(suite.slots)
}

func (suite *SnapshotStoreTestSuite) TestSaveThenLoadRoundTrip() {
	g := graph.NewStore()
	defs := catalog.Default().All()
	a := g.PlaceNode(defs[0], graph.Position{X: 10, Y: 300})
	b := g.PlaceNode(defs[6], graph.Position{X: 20.25, Y: 100})
	c, _ := g.DuplicateNode(a.ID)
	g.EditNode(b.ID, "Swing", 125)
	_, _ = g.Connect(a.ID, b.ID)
	_, _ = g.Connect(b.ID, c.ID)
	original := g.Snapshot()

	suite.Require().NoError(suite.store.Save(context.Background(),
		Snapshot{Nodes: original.Nodes, Edges: original.Edges}))
	loaded, err := suite.store.Load(context.Background())

	suite.Require().NoError(err)
	suite.Equal(original.Nodes, loaded.Nodes)
	suite.Equal(original.Edges, loaded.Edges)
}

func (suite *SnapshotStoreTestSuite) TestSaveEmptySnapshot() {
	suite.Require().NoError(suite.store.Save(context.Background(), Snapshot{}))

	suite.JSONEq(`{"schemaVersion":1,"items":[]}`, string(suite.slots.slots[NodesSlot]))
	loaded, err := suite.store.Load(context.Background())
	suite.NoError(err)
	suite.Empty(loaded.Nodes)
	suite.Empty(loaded.Edges)
}

func (suite *SnapshotStoreTestSuite) TestLoadAbsent() {
	_, err := suite.store.Load(context.Background())
	suite.ErrorIs(err, ErrSnapshotNotFound)

	suite.slots.slots[NodesSlot] = []byte(`[]`)
	_, err = suite.store.Load(context.Background())
	suite.ErrorIs(err, ErrSnapshotNotFound)
}

func (suite *SnapshotStoreTestSuite) TestLoadCorrupt() {
	suite.slots.slots[NodesSlot] = []byte(`{broken`)
	suite.slots.slots[EdgesSlot] = []byte(`[]`)

	_, err := suite.store.Load(context.Background())

	suite.ErrorIs(err, ErrSnapshotCorrupt)
}

func (suite *SnapshotStoreTestSuite) TestLoadLegacySlots() {
	suite.slots.slots[NodesSlot] = []byte(`[{"id":"n1","position":{"x":0,"y":0},` +
		`"data":{"command":"f","label":"Forward","delay":3000,"category":"basic"}}]`)
	suite.slots.slots[EdgesSlot] = []byte(`[]`)

	loaded, err := suite.store.Load(context.Background())

	suite.NoError(err)
	suite.Len(loaded.Nodes, 1)
	suite.Equal(3000, loaded.Nodes[0].Data.DelayMs)
}

func (suite *SnapshotStoreTestSuite) TestBackendErrors() {
	suite.slots.putErr = errors.New("quota exceeded")
	suite.Error(suite.store.Save(context.Background(), Snapshot{}))

	suite.slots.getErr = errors.New("connection reset")
	_, err := suite.store.Load(context.Background())
	suite.Error(err)
	suite.NotErrorIs(err, ErrSnapshotNotFound)
}
