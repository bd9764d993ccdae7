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

import (
	"encoding/json"
	"time"
)

// Field is a cultivated area the robot works on.
type Field struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	Geometry       json.RawMessage `json:"geometry"`
	Size           float64         `json:"size"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	MainCoordinate []float64       `json:"main_coordinate"`
	MapTileURL     *string         `json:"map_tile_url"`
}

// FieldRequest is the payload to create a field.
type FieldRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Geometry    json.RawMessage `json:"geometry"`
	Size        *float64        `json:"size"`
}

// FieldData is a set of readings taken on a field.
type FieldData struct {
	ID           string          `json:"id"`
	FieldID      string          `json:"field"`
	Temperature  *float64        `json:"temperature"`
	Humidity     *float64        `json:"humidity"`
	SoilMoisture *float64        `json:"soil_moisture"`
	Img          *string         `json:"img"`
	Description  *string         `json:"description"`
	Location     json.RawMessage `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FieldDataRequest is the payload to record readings on a field.
type FieldDataRequest struct {
	FieldID      string          `json:"field"`
	Temperature  *float64        `json:"temperature"`
	Humidity     *float64        `json:"humidity"`
	SoilMoisture *float64        `json:"soil_moisture"`
	Img          *string         `json:"img"`
	Description  *string         `json:"description"`
	Location     json.RawMessage `json:"location"`
}
