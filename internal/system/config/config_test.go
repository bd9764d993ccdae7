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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testResourceDir = "../../../tests/resources"

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) getFilePath(filename string) string {
	return filepath.Join(testResourceDir, filename)
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	suite.T().Setenv("AGRIBOT_TEST_RTDB_TOKEN", "rtdb-secret")

	config, err := LoadConfig(suite.getFilePath("deployment.yaml"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 8090, config.Server.Port)
	assert.True(suite.T(), config.Server.HTTPOnly)
	assert.Equal(suite.T(), []string{"http://localhost:5173"}, config.CORS.AllowedOrigins)

	assert.Equal(suite.T(), "sqlite", config.Database.AgriBot.Type)
	assert.Equal(suite.T(), "repository/database/agribot.db", config.Database.AgriBot.Path)
	assert.Equal(suite.T(), 10, config.Database.AgriBot.MaxOpenConns)

	assert.Equal(suite.T(), PersistenceBackendRedis, config.Persistence.Backend)
	assert.Equal(suite.T(), "localhost:6379", config.Persistence.Redis.Address)
	assert.Equal(suite.T(), 2, config.Persistence.Redis.DB)

	assert.Equal(suite.T(), "https://agribot-default-rtdb.firebaseio.com", config.Dispatcher.DatabaseURL)
	assert.Equal(suite.T(), "rtdb-secret", config.Dispatcher.AuthToken)
	assert.Equal(suite.T(), 3, config.Dispatcher.MaxAttempts)
	assert.Equal(suite.T(), 20, config.Executor.DispatchTimeout)
	assert.True(suite.T(), config.Metrics.Enabled)
}

func (suite *ConfigTestSuite) TestLoadConfigAppliesDefaults() {
	config, err := LoadConfig(suite.getFilePath("deployment.yaml"))
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), DefaultTriggerPath, config.Dispatcher.TriggerPath)
	assert.Equal(suite.T(), "agribot:", config.Persistence.Redis.KeyPrefix)
	assert.Equal(suite.T(), 10, config.Robot.Timeout)
	assert.Equal(suite.T(), 200, config.Notification.Capacity)
}

func (suite *ConfigTestSuite) TestLoadConfigEmptyFileUsesDatabaseBackend() {
	path := filepath.Join(suite.T().TempDir(), "empty.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600))

	config, err := LoadConfig(path)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), PersistenceBackendDatabase, config.Persistence.Backend)
	assert.Equal(suite.T(), 1, config.Dispatcher.MaxAttempts)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(suite.getFilePath("non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.getFilePath("invalid_deployment.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}
