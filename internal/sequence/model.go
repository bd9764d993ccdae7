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

package sequence

import (
	"encoding/json"

	"github.com/agribot/agribot/internal/sequence/graph"
	"github.com/agribot/agribot/internal/sequence/notify"
)

// PlaceNodeRequest places a command on the canvas. Fields left out are taken from the catalog.
type PlaceNodeRequest struct {
	Command  string          `json:"command"`
	Label    *string         `json:"label,omitempty"`
	Delay    json.RawMessage `json:"delay,omitempty"`
	Category string          `json:"category,omitempty"`
	Position graph.Position  `json:"position"`
}

// EditNodeRequest changes the label or the delay of a node. Delay is a number or a base 10 string.
type EditNodeRequest struct {
	Label *string         `json:"label,omitempty"`
	Delay json.RawMessage `json:"delay,omitempty"`
}

// SelectionRequest selects a node. A null node id clears the selection.
type SelectionRequest struct {
	NodeID *string `json:"nodeId"`
}

// ConnectRequest connects two nodes.
type ConnectRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphResponse is the current canvas along with whether a sequence is executing.
type GraphResponse struct {
	graph.Graph
	Executing bool `json:"executing"`
}

// ClearResponse reports what a clear request did.
type ClearResponse struct {
	Result graph.ClearOutcome `json:"result"`
}

// SaveResponse reports a successful save.
type SaveResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// LoadResponse reports the outcome of a load request.
type LoadResponse struct {
	Result LoadResult `json:"result"`
	Nodes  int        `json:"nodes"`
	Edges  int        `json:"edges"`
}

// ExecutionResponse identifies a started execution.
type ExecutionResponse struct {
	RunID      string `json:"runId"`
	TotalSteps int    `json:"totalSteps"`
}

// NotificationListResponse is a page of the notification feed.
type NotificationListResponse struct {
	LastSeq       uint64                `json:"lastSeq"`
	Notifications []notify.Notification `json:"notifications"`
}
