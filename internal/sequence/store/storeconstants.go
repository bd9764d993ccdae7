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

package store

import dbmodel "github.com/agribot/agribot/internal/system/database/model"

var (
	// QueryUpsertSlot is the query to insert or overwrite a slot.
	QueryUpsertSlot = dbmodel.DBQuery{
		ID: "SLQ-SEQ-01",
		Query: "INSERT INTO SEQUENCE_SLOT (SLOT_KEY, PAYLOAD, UPDATED_AT) VALUES ($1, $2, CURRENT_TIMESTAMP) " +
			"ON CONFLICT (SLOT_KEY) DO UPDATE SET PAYLOAD = excluded.PAYLOAD, UPDATED_AT = CURRENT_TIMESTAMP",
	}
	// QueryGetSlot is the query to read a slot.
	QueryGetSlot = dbmodel.DBQuery{
		ID:    "SLQ-SEQ-02",
		Query: "SELECT SLOT_KEY, PAYLOAD FROM SEQUENCE_SLOT WHERE SLOT_KEY = $1",
	}
)
