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

package log

import (
	"bytes"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"github.com/agribot/agribot/internal/system/constants"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(constants.LogLevelEnvironmentVariable)
}

func (suite *LogTestSuite) TearDownTest() {
	err := os.Setenv(constants.LogLevelEnvironmentVariable, suite.originalLogLevel)
	if err != nil {
		suite.T().Errorf("Failed to restore environment variable: %v", err)
	}

	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{" warn ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.ErrorLevel, true},
	}

	for _, tc := range testCases {
		suite.Run(tc.input, func() {
			level, err := parseLogLevel(tc.input)
			if tc.wantErr {
				assert.Error(suite.T(), err)
			} else {
				assert.NoError(suite.T(), err)
			}
			assert.Equal(suite.T(), tc.expected, level)
		})
	}
}

func (suite *LogTestSuite) TestGetLoggerHonoursEnvironment() {
	suite.Require().NoError(os.Setenv(constants.LogLevelEnvironmentVariable, "debug"))

	l := GetLogger()
	assert.NotNil(suite.T(), l)
	assert.True(suite.T(), l.IsDebugEnabled())
	assert.Same(suite.T(), l, GetLogger())
}

func (suite *LogTestSuite) TestGetLoggerDefaultsToInfo() {
	suite.Require().NoError(os.Unsetenv(constants.LogLevelEnvironmentVariable))

	l := GetLogger()
	assert.False(suite.T(), l.IsDebugEnabled())
}

func (suite *LogTestSuite) TestInitLoggerRejectsUnknownLevel() {
	suite.Require().NoError(os.Setenv(constants.LogLevelEnvironmentVariable, "chatty"))

	assert.Error(suite.T(), initLogger())
}

func (suite *LogTestSuite) TestWithAddsFields() {
	var buf bytes.Buffer
	l := newLogger(zapcore.AddSync(&buf), zapcore.InfoLevel)

	l.With(String(LoggerKeyComponentName, "Executor")).Error("dispatch failed",
		String(LoggerKeyNodeID, "node-1"), Error(errors.New("boom")))
	l.Debug("suppressed")

	output := buf.String()
	assert.Contains(suite.T(), output, "ERROR")
	assert.Contains(suite.T(), output, "Executor")
	assert.Contains(suite.T(), output, "node-1")
	assert.Contains(suite.T(), output, "boom")
	assert.NotContains(suite.T(), output, "suppressed")
}

func (suite *LogTestSuite) TestMaskString() {
	assert.Equal(suite.T(), "***", MaskString("abc"))
	assert.Equal(suite.T(), "s****t", MaskString("secret"))
	assert.Equal(suite.T(), "", MaskString(""))
}
