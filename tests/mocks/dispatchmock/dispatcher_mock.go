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

// Package dispatchmock provides a testify mock of the command dispatcher.
package dispatchmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agribot/agribot/internal/dispatch"
)

var _ dispatch.DispatcherInterface = &MockDispatcher{}

// MockDispatcher is a mock implementation of DispatcherInterface.
type MockDispatcher struct {
	mock.Mock
}

// NewMockDispatcher creates a MockDispatcher whose expectations are asserted when the test ends.
func NewMockDispatcher(t mock.TestingT) *MockDispatcher {
	m := &MockDispatcher{}
	m.Mock.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Dispatch implements DispatcherInterface.Dispatch.
func (m *MockDispatcher) Dispatch(ctx context.Context, command string) error {
	return m.Called(ctx, command).Error(0)
}
