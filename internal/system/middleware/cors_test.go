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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/config"
)

type CORSTestSuite struct {
	suite.Suite
}

func TestCORSSuite(t *testing.T) {
	suite.Run(t, new(CORSTestSuite))
}

func (suite *CORSTestSuite) SetupTest() {
	config.ResetAgriBotRuntime()
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	_ = config.InitializeAgriBotRuntime("/tmp/agribot", cfg)
}

func (suite *CORSTestSuite) TearDownTest() {
	config.ResetAgriBotRuntime()
}

func (suite *CORSTestSuite) serve(origin string) *httptest.ResponseRecorder {
	called := false
	pattern, handler := WithCORS("GET /autonomous/graph", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}, CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	})
	suite.Equal("GET /autonomous/graph", pattern)

	req := httptest.NewRequest(http.MethodGet, "/autonomous/graph", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	suite.True(called)
	return rr
}

func (suite *CORSTestSuite) TestAllowedOrigin() {
	rr := suite.serve("http://localhost:5173")

	suite.Equal("http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	suite.Equal("GET, DELETE", rr.Header().Get("Access-Control-Allow-Methods"))
	suite.Equal("Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	suite.Equal("true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSTestSuite) TestDisallowedOrigin() {
	rr := suite.serve("http://unknown.example")

	suite.Empty(rr.Header().Get("Access-Control-Allow-Origin"))
	suite.Empty(rr.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *CORSTestSuite) TestNoOriginHeader() {
	rr := suite.serve("")

	suite.Empty(rr.Header().Get("Access-Control-Allow-Origin"))
}
