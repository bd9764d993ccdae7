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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBQueryGetQuery(t *testing.T) {
	query := DBQuery{
		ID:            "SLQ-01",
		Query:         "SELECT 1",
		PostgresQuery: "SELECT 1 FOR UPDATE",
	}

	assert.Equal(t, "SLQ-01", query.GetID())
	assert.Equal(t, "SELECT 1 FOR UPDATE", query.GetQuery("postgres"))
	assert.Equal(t, "SELECT 1", query.GetQuery("sqlite"))
	assert.Equal(t, "SELECT 1", query.GetQuery("mock"))

	query.SQLiteQuery = "SELECT 2"
	assert.Equal(t, "SELECT 2", query.GetQuery("sqlite"))
}
