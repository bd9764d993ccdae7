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

// Package sequencestoremock provides testify mocks of the sequence snapshot store.
package sequencestoremock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agribot/agribot/internal/sequence/store"
)

var _ store.SnapshotStoreInterface = &MockSnapshotStore{}

// MockSnapshotStore is a mock implementation of SnapshotStoreInterface.
type MockSnapshotStore struct {
	mock.Mock
}

// NewMockSnapshotStore creates a MockSnapshotStore whose expectations are asserted when the test ends.
func NewMockSnapshotStore(t mock.TestingT) *MockSnapshotStore {
	m := &MockSnapshotStore{}
	m.Mock.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Save implements SnapshotStoreInterface.Save.
func (m *MockSnapshotStore) Save(ctx context.Context, snapshot store.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

// Load implements SnapshotStoreInterface.Load.
func (m *MockSnapshotStore) Load(ctx context.Context) (*store.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Snapshot), args.Error(1)
}
