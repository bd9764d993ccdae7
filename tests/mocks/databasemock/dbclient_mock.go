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

// Package databasemock provides testify mocks of the database interfaces.
package databasemock

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/agribot/agribot/internal/system/database/client"
	"github.com/agribot/agribot/internal/system/database/model"
	"github.com/agribot/agribot/internal/system/database/provider"
)

var (
	_ client.DBClientInterface     = &MockDBClient{}
	_ provider.DBProviderInterface = &MockDBProvider{}
	_ model.TxInterface            = &MockTx{}
)

// MockDBClient is a mock implementation of DBClientInterface.
type MockDBClient struct {
	mock.Mock
}

// NewMockDBClient creates a MockDBClient whose expectations are asserted when the test ends.
func NewMockDBClient(t mock.TestingT) *MockDBClient {
	m := &MockDBClient{}
	m.Mock.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// Query implements DBClientInterface.Query.
func (m *MockDBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	ret := m.Called(append([]interface{}{query}, args...)...)
	rows, _ := ret.Get(0).([]map[string]interface{})
	return rows, ret.Error(1)
}

// Execute implements DBClientInterface.Execute.
func (m *MockDBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	ret := m.Called(append([]interface{}{query}, args...)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// BeginTx implements DBClientInterface.BeginTx.
func (m *MockDBClient) BeginTx() (model.TxInterface, error) {
	ret := m.Called()
	tx, _ := ret.Get(0).(model.TxInterface)
	return tx, ret.Error(1)
}

// Ping implements DBClientInterface.Ping.
func (m *MockDBClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Close implements DBClientInterface.Close.
func (m *MockDBClient) Close() error {
	return m.Called().Error(0)
}

// MockDBProvider is a mock implementation of DBProviderInterface.
type MockDBProvider struct {
	mock.Mock
}

// NewMockDBProvider creates a MockDBProvider whose expectations are asserted when the test ends.
func NewMockDBProvider(t mock.TestingT) *MockDBProvider {
	m := &MockDBProvider{}
	m.Mock.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

// GetDBClient implements DBProviderInterface.GetDBClient.
func (m *MockDBProvider) GetDBClient() (client.DBClientInterface, error) {
	ret := m.Called()
	dbClient, _ := ret.Get(0).(client.DBClientInterface)
	return dbClient, ret.Error(1)
}

// Close implements DBProviderInterface.Close.
func (m *MockDBProvider) Close() error {
	return m.Called().Error(0)
}

// MockTx is a mock implementation of TxInterface.
type MockTx struct {
	mock.Mock
}

// Commit implements TxInterface.Commit.
func (m *MockTx) Commit() error {
	return m.Called().Error(0)
}

// Rollback implements TxInterface.Rollback.
func (m *MockTx) Rollback() error {
	return m.Called().Error(0)
}

// Exec implements TxInterface.Exec.
func (m *MockTx) Exec(query model.DBQuery, args ...interface{}) (sql.Result, error) {
	ret := m.Called(append([]interface{}{query}, args...)...)
	result, _ := ret.Get(0).(sql.Result)
	return result, ret.Error(1)
}
