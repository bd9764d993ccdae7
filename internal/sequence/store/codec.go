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
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/agribot/agribot/internal/sequence/catalog"
	"github.com/agribot/agribot/internal/sequence/graph"
)

// encodeSlot wraps items in a versioned envelope.
func encodeSlot(items any) ([]byte, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{SchemaVersion: SchemaVersion, Items: raw})
}

// openSlot returns the schema version and the raw items of a slot payload.
// A bare JSON array is an unversioned slot.
func openSlot(payload []byte) (int, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return 0, nil, fmt.Errorf("%w: empty slot", ErrSnapshotCorrupt)
	}

	switch trimmed[0] {
	case '[':
		return legacySchemaVersion, trimmed, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return 0, nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		if env.SchemaVersion != SchemaVersion {
			return 0, nil, fmt.Errorf("%w: unsupported schema version %d", ErrSnapshotCorrupt, env.SchemaVersion)
		}
		if len(env.Items) == 0 || bytes.Equal(env.Items, []byte("null")) {
			return env.SchemaVersion, json.RawMessage("[]"), nil
		}
		return env.SchemaVersion, env.Items, nil
	default:
		return 0, nil, fmt.Errorf("%w: unexpected payload", ErrSnapshotCorrupt)
	}
}

// decodeNodes decodes a node slot of any supported schema version.
func decodeNodes(payload []byte) ([]graph.Node, error) {
	version, items, err := openSlot(payload)
	if err != nil {
		return nil, err
	}

	if version == legacySchemaVersion {
		var legacy []legacyNode
		if err := json.Unmarshal(items, &legacy); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		nodes := make([]graph.Node, 0, len(legacy))
		for _, ln := range legacy {
			nodes = append(nodes, migrateNode(ln))
		}
		return nodes, nil
	}

	nodes := make([]graph.Node, 0)
	if err := json.Unmarshal(items, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	return nodes, nil
}

// decodeEdges decodes an edge slot of any supported schema version.
func decodeEdges(payload []byte) ([]graph.Edge, error) {
	version, items, err := openSlot(payload)
	if err != nil {
		return nil, err
	}

	if version == legacySchemaVersion {
		var legacy []legacyEdge
		if err := json.Unmarshal(items, &legacy); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		edges := make([]graph.Edge, 0, len(legacy))
		for _, le := range legacy {
			edges = append(edges, graph.Edge{ID: le.ID, Source: le.Source, Target: le.Target})
		}
		return edges, nil
	}

	edges := make([]graph.Edge, 0)
	if err := json.Unmarshal(items, &edges); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	return edges, nil
}

// migrateNode converts an unversioned browser node. Missing or unparsable delays become zero.
func migrateNode(ln legacyNode) graph.Node {
	delay := 0
	if ln.Data.Delay != nil && *ln.Data.Delay > 0 && !math.IsInf(*ln.Data.Delay, 0) {
		delay = int(*ln.Data.Delay)
	}
	return graph.Node{
		ID:       ln.ID,
		Position: ln.Position,
		Data: graph.NodeData{
			Label:    ln.Data.Label,
			Command:  ln.Data.Command,
			DelayMs:  delay,
			Category: catalog.ParseCategory(ln.Data.Category),
		},
	}
}
