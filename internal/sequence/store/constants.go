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

import "errors"

const (
	// NodesSlot is the key of the slot holding the node array.
	NodesSlot = "flowNodes"
	// EdgesSlot is the key of the slot holding the edge array.
	EdgesSlot = "flowEdges"
	// SchemaVersion is the version written into every slot.
	SchemaVersion = 1
	// legacySchemaVersion is assigned to bare arrays without an envelope.
	legacySchemaVersion = 0
)

var (
	// ErrSnapshotNotFound is returned when no complete snapshot has been saved.
	ErrSnapshotNotFound = errors.New("no saved snapshot found")
	// ErrSnapshotCorrupt is returned when a saved snapshot cannot be decoded.
	ErrSnapshotCorrupt = errors.New("saved snapshot is corrupt")
)
