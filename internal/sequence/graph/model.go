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

package graph

import "github.com/agribot/agribot/internal/sequence/catalog"

// Position is a point on the sequence canvas. Larger Y is further down.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the command a node executes, copied from a catalog definition and possibly
// overridden by the operator.
type NodeData struct {
	Label    string           `json:"label"`
	Command  string           `json:"command"`
	DelayMs  int              `json:"delay"`
	Category catalog.Category `json:"category"`
}

// Node is a placed instance of a command on the sequence canvas.
type Node struct {
	ID          string   `json:"id"`
	Position    Position `json:"position"`
	Data        NodeData `json:"data"`
	Highlighted bool     `json:"highlighted"`
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is a point-in-time copy of the sequence canvas.
type Graph struct {
	Nodes          []Node `json:"nodes"`
	Edges          []Edge `json:"edges"`
	SelectedNodeID string `json:"selectedNodeId,omitempty"`
}

// ClearOutcome reports what Clear did.
type ClearOutcome string

const (
	// Cleared means the graph held nodes or edges and is now empty.
	Cleared ClearOutcome = "cleared"
	// AlreadyEmpty means there was nothing to clear.
	AlreadyEmpty ClearOutcome = "already_empty"
)

// dataFromDefinition copies a catalog definition into node data.
func dataFromDefinition(def catalog.CommandDefinition) NodeData {
	return NodeData{
		Label:    def.Label,
		Command:  def.Command,
		DelayMs:  def.DelayMs,
		Category: def.Category,
	}
}
