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

// Package graph holds the in-memory sequence graph and the editing operations on it.
package graph

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/agribot/agribot/internal/sequence/catalog"
)

// duplicateOffset is how far a duplicated node is moved from its source, on both axes.
const duplicateOffset = 50

var (
	// ErrNodeNotFound is returned when an operation references a node that does not exist.
	ErrNodeNotFound = errors.New("node not found")
	// ErrInvalidDelay is returned when a delay is not a non-negative base 10 integer.
	ErrInvalidDelay = errors.New("delay must be a non-negative integer")

	duplicateSuffix = regexp.MustCompile(`\s\(\d+\)$`)
)

// Store is the sequence graph owned by the controller. It is safe for concurrent use and
// every read returns a copy.
type Store struct {
	mu         sync.RWMutex
	nodes      []Node
	edges      []Edge
	selectedID string
	newNodeID  IDGenerator
	newEdgeID  IDGenerator
}

// NewStore creates an empty graph store using random node and edge identifiers.
func NewStore() *Store {
	return NewStoreWithIDs(NewNodeID, NewEdgeID)
}

// NewStoreWithIDs creates an empty graph store with the given identifier generators.
func NewStoreWithIDs(nodeIDs, edgeIDs IDGenerator) *Store {
	return &Store{
		nodes:     make([]Node, 0),
		edges:     make([]Edge, 0),
		newNodeID: nodeIDs,
		newEdgeID: edgeIDs,
	}
}

// PlaceNode adds a node for the command definition at the given position.
func (s *Store) PlaceNode(def catalog.CommandDefinition, pos Position) Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := Node{
		ID:       s.uniqueNodeID(),
		Position: pos,
		Data:     dataFromDefinition(def),
	}
	s.nodes = append(s.nodes, node)
	return node
}

// DuplicateNode clones the node at an offset position with a numbered label. The suffix is the
// number of other nodes whose label starts with the base label, so it can repeat after deletions.
// It returns false when the node does not exist.
func (s *Store) DuplicateNode(id string) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Node{}, false
	}
	source := s.nodes[idx]

	base := duplicateSuffix.ReplaceAllString(source.Data.Label, "")
	count := 0
	for i, node := range s.nodes {
		if i != idx && strings.HasPrefix(node.Data.Label, base) {
			count++
		}
	}

	clone := Node{
		ID: s.uniqueNodeID(),
		Position: Position{
			X: source.Position.X + duplicateOffset,
			Y: source.Position.Y + duplicateOffset,
		},
		Data: source.Data,
	}
	clone.Data.Label = base + " (" + strconv.Itoa(count) + ")"
	s.nodes = append(s.nodes, clone)
	return clone, true
}

// EditNode replaces the label and delay of the node. It returns false when the node does not exist.
func (s *Store) EditNode(id, label string, delayMs int) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Node{}, false
	}
	s.nodes[idx].Data.Label = label
	s.nodes[idx].Data.DelayMs = delayMs
	return s.nodes[idx], true
}

// MoveNode sets the canvas position of the node. It returns false when the node does not exist.
func (s *Store) MoveNode(id string, pos Position) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Node{}, false
	}
	s.nodes[idx].Position = pos
	return s.nodes[idx], true
}

// DeleteNode removes the node together with every edge touching it, and clears the selection if
// it pointed at the node. It returns false when the node does not exist.
func (s *Store) DeleteNode(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.nodes = append(s.nodes[:idx], s.nodes[idx+1:]...)

	kept := s.edges[:0]
	for _, edge := range s.edges {
		if edge.Source != id && edge.Target != id {
			kept = append(kept, edge)
		}
	}
	s.edges = kept

	if s.selectedID == id {
		s.selectedID = ""
	}
	return true
}

// Clear empties the graph and the selection.
func (s *Store) Clear() ClearOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.nodes) == 0 && len(s.edges) == 0 {
		s.selectedID = ""
		return AlreadyEmpty
	}
	s.nodes = make([]Node, 0)
	s.edges = make([]Edge, 0)
	s.selectedID = ""
	return Cleared
}

// Connect adds a directed edge between two existing nodes. Parallel edges and cycles are allowed.
func (s *Store) Connect(source, target string) (Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(source) < 0 || s.indexOf(target) < 0 {
		return Edge{}, ErrNodeNotFound
	}
	edge := Edge{ID: s.newEdgeID(), Source: source, Target: target}
	s.edges = append(s.edges, edge)
	return edge, nil
}

// Disconnect removes the edge with the given id. It returns false when the edge does not exist.
func (s *Store) Disconnect(edgeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, edge := range s.edges {
		if edge.ID == edgeID {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			return true
		}
	}
	return false
}

// Select marks the node as selected. It returns false when the node does not exist.
func (s *Store) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return false
	}
	s.selectedID = id
	return true
}

// ClearSelection removes the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = ""
}

// SetHighlight toggles the execution highlight of the node. Deleted nodes are ignored.
func (s *Store) SetHighlight(id string, on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.nodes[idx].Highlighted = on
	return true
}

// Node returns a copy of the node with the given id.
func (s *Store) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Node{}, false
	}
	return s.nodes[idx], true
}

// Nodes returns a copy of the nodes in insertion order.
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// Snapshot returns a copy of the whole graph.
func (s *Store) Snapshot() Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := Graph{
		Nodes:          make([]Node, len(s.nodes)),
		Edges:          make([]Edge, len(s.edges)),
		SelectedNodeID: s.selectedID,
	}
	copy(g.Nodes, s.nodes)
	copy(g.Edges, s.edges)
	return g
}

// Replace swaps in a loaded graph. Selection and highlights are dropped, repeated node ids keep
// their first occurrence and edges whose endpoints are missing are discarded.
func (s *Store) Replace(nodes []Node, edges []Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(nodes))
	s.nodes = make([]Node, 0, len(nodes))
	for _, node := range nodes {
		if _, dup := seen[node.ID]; dup || node.ID == "" {
			continue
		}
		seen[node.ID] = struct{}{}
		node.Highlighted = false
		s.nodes = append(s.nodes, node)
	}

	s.edges = make([]Edge, 0, len(edges))
	for _, edge := range edges {
		_, hasSource := seen[edge.Source]
		_, hasTarget := seen[edge.Target]
		if hasSource && hasTarget {
			s.edges = append(s.edges, edge)
		}
	}
	s.selectedID = ""
}

// ParseDelay parses an operator supplied delay in milliseconds as a base 10 integer.
func ParseDelay(value string) (int, error) {
	delay, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil || delay < 0 {
		return 0, ErrInvalidDelay
	}
	return int(delay), nil
}

// uniqueNodeID draws identifiers until one is unused. The caller holds the lock.
func (s *Store) uniqueNodeID() string {
	for {
		id := s.newNodeID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// indexOf returns the position of the node in the node list, or -1. The caller holds the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return -1
}
