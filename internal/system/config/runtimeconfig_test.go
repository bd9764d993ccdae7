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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) TearDownTest() {
	ResetAgriBotRuntime()
}

func (suite *RuntimeConfigTestSuite) TestInitializeOnlyOnce() {
	first := &Config{Server: ServerConfig{Port: 8090}}
	second := &Config{Server: ServerConfig{Port: 9999}}

	assert.NoError(suite.T(), InitializeAgriBotRuntime("/opt/agribot", first))
	assert.NoError(suite.T(), InitializeAgriBotRuntime("/tmp/other", second))

	runtime := GetAgriBotRuntime()
	assert.Equal(suite.T(), "/opt/agribot", runtime.AgriBotHome)
	assert.Equal(suite.T(), 8090, runtime.Config.Server.Port)
}

func (suite *RuntimeConfigTestSuite) TestGetBeforeInitializePanics() {
	assert.Panics(suite.T(), func() {
		GetAgriBotRuntime()
	})
}
