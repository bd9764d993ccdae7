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

import (
	"github.com/thanhpk/randstr"

	"github.com/agribot/agribot/internal/system/utils"
)

const (
	nodeIDLength   = 21
	nodeIDAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"
)

// IDGenerator produces unique opaque identifiers.
type IDGenerator func() string

// NewNodeID returns a random URL-safe 21 character node identifier.
func NewNodeID() string {
	return randstr.String(nodeIDLength, nodeIDAlphabet)
}

// NewEdgeID returns a random UUID for an edge.
func NewEdgeID() string {
	return utils.GenerateUUID()
}
