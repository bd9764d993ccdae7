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

import (
	"encoding/json"

	"github.com/agribot/agribot/internal/sequence/graph"
)

// Snapshot is the persisted node and edge set of a sequence.
type Snapshot struct {
	Nodes []graph.Node
	Edges []graph.Edge
}

// envelope wraps the items of a slot with the schema version they were written with.
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Items         json.RawMessage `json:"items"`
}

// legacyNode is a node as written by the browser editor before slots were versioned.
type legacyNode struct {
	ID       string         `json:"id"`
	Position graph.Position `json:"position"`
	Data     struct {
		Command  string   `json:"command"`
		Label    string   `json:"label"`
		Delay    *float64 `json:"delay"`
		Category string   `json:"category"`
	} `json:"data"`
}

// legacyEdge is an edge as written by the browser editor before slots were versioned.
type legacyEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}
