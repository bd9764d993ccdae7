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

package executor

import (
	"sort"

	"github.com/agribot/agribot/internal/sequence/graph"
)

// Step is a copy of the command data of one node, taken when a run is planned.
type Step struct {
	NodeID  string `json:"nodeId"`
	Label   string `json:"label"`
	Command string `json:"command"`
	DelayMs int    `json:"delay"`
}

// Plan orders the nodes top to bottom by canvas position. Nodes at the same height keep their
// insertion order. Edges play no part in the order.
func Plan(nodes []graph.Node) []Step {
	ordered := make([]graph.Node, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position.Y < ordered[j].Position.Y
	})

	steps := make([]Step, 0, len(ordered))
	for _, node := range ordered {
		steps = append(steps, Step{
			NodeID:  node.ID,
			Label:   node.Data.Label,
			Command: node.Data.Command,
			DelayMs: node.Data.DelayMs,
		})
	}
	return steps
}
