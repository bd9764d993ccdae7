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

package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/error/apierror"
	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name        string
		jsonBody    string
		expected    testStruct
		expectError bool
	}{
		{
			name:     "ValidJSON",
			jsonBody: `{"name":"test","value":123}`,
			expected: testStruct{Name: "test", Value: 123},
		},
		{
			name:     "EmptyJSON",
			jsonBody: `{}`,
			expected: testStruct{},
		},
		{
			name:        "InvalidJSON",
			jsonBody:    `{"name":"test","value":}`,
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.jsonBody))
			req.Header.Set("Content-Type", "application/json")

			result, err := DecodeJSONBody[testStruct](req)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.expected, *result)
			}
		})
	}
}

func (suite *HTTPUtilTestSuite) TestWriteJSONResponse() {
	rr := httptest.NewRecorder()

	WriteJSONResponse(rr, http.StatusCreated, map[string]string{"status": "cleared"}, log.GetLogger())

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(suite.T(), `{"status":"cleared"}`, rr.Body.String())
}

func (suite *HTTPUtilTestSuite) TestWriteJSONResponseWithoutBody() {
	rr := httptest.NewRecorder()

	WriteJSONResponse(rr, http.StatusAccepted, nil, log.GetLogger())

	assert.Equal(suite.T(), http.StatusAccepted, rr.Code)
	assert.Empty(suite.T(), rr.Body.String())
}

func (suite *HTTPUtilTestSuite) TestWriteServiceErrorResponse() {
	rr := httptest.NewRecorder()
	svcErr := &serviceerror.ServiceError{
		Code:             "SEQ-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Nothing to execute",
		ErrorDescription: "No commands to execute",
	}

	WriteServiceErrorResponse(rr, http.StatusUnprocessableEntity, svcErr, log.GetLogger())

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, rr.Code)
	var errResp apierror.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(suite.T(), "SEQ-1003", errResp.Code)
	assert.Equal(suite.T(), "Nothing to execute", errResp.Message)
	assert.Equal(suite.T(), "No commands to execute", errResp.Description)
}

func (suite *HTTPUtilTestSuite) TestSanitizeString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"NormalString", "Forward (1)", "Forward (1)"},
		{"StringWithHTML", "<b>Left</b>", "&lt;b&gt;Left&lt;/b&gt;"},
		{"StringWithControlChars", "Camera\x00 Up", "Camera Up"},
		{"StringWithWhitespace", "  Stop  ", "Stop"},
		{"EmptyString", "", ""},
		{"TabAndNewlinesPreserved", "Line 1\nLine 2\tTabbed", "Line 1\nLine 2\tTabbed"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeString(tc.input))
		})
	}
}

func (suite *HTTPUtilTestSuite) TestGetAllowedOrigin() {
	origins := []string{"http://localhost:5173", "https://dashboard.agribot.local/"}

	assert.Equal(suite.T(), "http://localhost:5173", GetAllowedOrigin(origins, "http://localhost:5173"))
	assert.Equal(suite.T(), "https://dashboard.agribot.local",
		GetAllowedOrigin(origins, "https://dashboard.agribot.local"))
	assert.Equal(suite.T(), "", GetAllowedOrigin(origins, "http://evil.example"))
	assert.Equal(suite.T(), "", GetAllowedOrigin(nil, "http://localhost:5173"))
	assert.Equal(suite.T(), "http://any", GetAllowedOrigin([]string{"*"}, "http://any"))
}

func (suite *HTTPUtilTestSuite) TestGenerateUUIDUniqueness() {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateUUID()
		assert.Len(suite.T(), id, 36)
		_, dup := seen[id]
		assert.False(suite.T(), dup)
		seen[id] = struct{}{}
	}
}
