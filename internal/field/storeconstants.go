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

package field

import dbmodel "github.com/agribot/agribot/internal/system/database/model"

var (
	// queryCreateField is the query to create a new field.
	queryCreateField = dbmodel.DBQuery{
		ID: "FLQ-FL-01",
		Query: "INSERT INTO FIELD (FIELD_ID, NAME, DESCRIPTION, GEOMETRY, SIZE, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}

	// queryGetFieldByID is the query to get a field by its id.
	queryGetFieldByID = dbmodel.DBQuery{
		ID: "FLQ-FL-02",
		Query: "SELECT FIELD_ID, NAME, DESCRIPTION, GEOMETRY, SIZE, CREATED_AT, UPDATED_AT " +
			"FROM FIELD WHERE FIELD_ID = $1",
	}

	// queryCountFieldsByName is the query to count the fields with a given name.
	queryCountFieldsByName = dbmodel.DBQuery{
		ID:    "FLQ-FL-03",
		Query: "SELECT COUNT(*) AS TOTAL FROM FIELD WHERE NAME = $1",
	}

	// queryListFields is the query to list all fields, newest first.
	queryListFields = dbmodel.DBQuery{
		ID: "FLQ-FL-04",
		Query: "SELECT FIELD_ID, NAME, DESCRIPTION, GEOMETRY, SIZE, CREATED_AT, UPDATED_AT " +
			"FROM FIELD ORDER BY CREATED_AT DESC, ID DESC",
	}

	// querySearchFields is the query to list the fields whose name contains a pattern, newest first.
	querySearchFields = dbmodel.DBQuery{
		ID: "FLQ-FL-05",
		Query: "SELECT FIELD_ID, NAME, DESCRIPTION, GEOMETRY, SIZE, CREATED_AT, UPDATED_AT " +
			"FROM FIELD WHERE LOWER(NAME) LIKE $1 ESCAPE '\\' ORDER BY CREATED_AT DESC, ID DESC",
	}

	// queryCreateFieldData is the query to record readings on a field.
	queryCreateFieldData = dbmodel.DBQuery{
		ID: "FLQ-FD-01",
		Query: "INSERT INTO FIELD_DATA (DATA_ID, FIELD_ID, TEMPERATURE, HUMIDITY, SOIL_MOISTURE, IMG, " +
			"DESCRIPTION, LOCATION, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}

	// queryListFieldData is the query to list all field readings, newest first.
	queryListFieldData = dbmodel.DBQuery{
		ID: "FLQ-FD-02",
		Query: "SELECT DATA_ID, FIELD_ID, TEMPERATURE, HUMIDITY, SOIL_MOISTURE, IMG, DESCRIPTION, LOCATION, " +
			"CREATED_AT FROM FIELD_DATA ORDER BY CREATED_AT DESC, ID DESC",
	}

	// queryListFieldDataByField is the query to list the readings of one field, newest first.
	queryListFieldDataByField = dbmodel.DBQuery{
		ID: "FLQ-FD-03",
		Query: "SELECT DATA_ID, FIELD_ID, TEMPERATURE, HUMIDITY, SOIL_MOISTURE, IMG, DESCRIPTION, LOCATION, " +
			"CREATED_AT FROM FIELD_DATA WHERE FIELD_ID = $1 ORDER BY CREATED_AT DESC, ID DESC",
	}
)
