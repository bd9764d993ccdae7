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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/healthcheck/model"
	"github.com/agribot/agribot/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	provider *databasemock.MockDBProvider
	client   *databasemock.MockDBClient
	service  *HealthCheckService
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.provider = databasemock.NewMockDBProvider(suite.T())
	suite.client = databasemock.NewMockDBClient(suite.T())
	suite.service = &HealthCheckService{DBProvider: suite.provider}
}

func (suite *HealthCheckServiceTestSuite) TestReadinessUp() {
	suite.provider.On("GetDBClient").Return(suite.client, nil)
	suite.client.On("Query", querySequenceSlotTable).Return([]map[string]interface{}{}, nil)

	status := suite.service.CheckReadiness()

	suite.Equal(model.StatusUp, status.Status)
	suite.Len(status.ServiceStatus, 1)
	suite.Equal("AgriBotDB", status.ServiceStatus[0].ServiceName)
}

func (suite *HealthCheckServiceTestSuite) TestReadinessDownOnQueryError() {
	suite.provider.On("GetDBClient").Return(suite.client, nil)
	suite.client.On("Query", querySequenceSlotTable).Return(nil, errors.New("no such table"))

	status := suite.service.CheckReadiness()

	suite.Equal(model.StatusDown, status.Status)
}

func (suite *HealthCheckServiceTestSuite) TestReadinessDownOnClientError() {
	suite.provider.On("GetDBClient").Return(nil, errors.New("connection refused"))

	status := suite.service.CheckReadiness()

	suite.Equal(model.StatusDown, status.Status)
	suite.Equal(model.StatusDown, status.ServiceStatus[0].Status)
}
