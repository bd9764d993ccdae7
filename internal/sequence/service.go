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

// Package sequence provides the autonomous sequence editor: the command palette, the editable
// command graph, its persistence and its execution against the robot.
package sequence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/agribot/agribot/internal/sequence/catalog"
	"github.com/agribot/agribot/internal/sequence/executor"
	"github.com/agribot/agribot/internal/sequence/graph"
	"github.com/agribot/agribot/internal/sequence/notify"
	"github.com/agribot/agribot/internal/sequence/store"
	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
	"github.com/agribot/agribot/internal/system/utils"
)

// SequenceServiceInterface defines the operations of the sequence editor.
type SequenceServiceInterface interface {
	ListCommands(category string) []catalog.CommandDefinition
	GetGraph() GraphResponse
	ClearGraph() graph.ClearOutcome
	SaveGraph(ctx context.Context) (*SaveResponse, *serviceerror.ServiceError)
	LoadGraph(ctx context.Context) (*LoadResponse, *serviceerror.ServiceError)
	RestoreGraph(ctx context.Context)
	PlaceNode(request PlaceNodeRequest) (*graph.Node, *serviceerror.ServiceError)
	EditNode(nodeID string, request EditNodeRequest) (*graph.Node, *serviceerror.ServiceError)
	MoveNode(nodeID string, position graph.Position) (*graph.Node, *serviceerror.ServiceError)
	DuplicateNode(nodeID string) (*graph.Node, *serviceerror.ServiceError)
	DeleteNode(nodeID string) *serviceerror.ServiceError
	SelectNode(nodeID *string) *serviceerror.ServiceError
	ConnectNodes(request ConnectRequest) (*graph.Edge, *serviceerror.ServiceError)
	DisconnectNodes(edgeID string) *serviceerror.ServiceError
	StartExecution() (*ExecutionResponse, *serviceerror.ServiceError)
	GetExecutionStatus() executor.Status
	CancelExecution() *serviceerror.ServiceError
	ListNotifications(since uint64) NotificationListResponse
	Shutdown()
}

// executorInterface is the part of the executor the service drives.
type executorInterface interface {
	Start(ctx context.Context, steps []executor.Step) (string, error)
	Cancel() bool
	Wait()
	IsRunning() bool
	Status() executor.Status
}

// sequenceService is the default implementation of SequenceServiceInterface.
type sequenceService struct {
	catalog   *catalog.Catalog
	graph     *graph.Store
	executor  executorInterface
	snapshots store.SnapshotStoreInterface
	feed      *notify.Feed
	runCtx    context.Context
	stopRuns  context.CancelFunc
	logger    *log.Logger
}

// newSequenceService creates a sequence service over the given components.
func newSequenceService(cat *catalog.Catalog, graphStore *graph.Store, exec executorInterface,
	snapshots store.SnapshotStoreInterface, feed *notify.Feed) *sequenceService {
	runCtx, stopRuns := context.WithCancel(context.Background())
	return &sequenceService{
		catalog:   cat,
		graph:     graphStore,
		executor:  exec,
		snapshots: snapshots,
		feed:      feed,
		runCtx:    runCtx,
		stopRuns:  stopRuns,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceService")),
	}
}

// ListCommands returns the command palette, optionally restricted to one category.
func (s *sequenceService) ListCommands(category string) []catalog.CommandDefinition {
	if strings.TrimSpace(category) == "" {
		return s.catalog.All()
	}
	return s.catalog.ByCategory(catalog.ParseCategory(category))
}

// GetGraph returns a copy of the canvas.
func (s *sequenceService) GetGraph() GraphResponse {
	return GraphResponse{
		Graph:     s.graph.Snapshot(),
		Executing: s.executor.IsRunning(),
	}
}

// ClearGraph removes every node and edge.
func (s *sequenceService) ClearGraph() graph.ClearOutcome {
	outcome := s.graph.Clear()
	if outcome == graph.AlreadyEmpty {
		s.feed.Notify(notify.LevelInfo, msgFlowAlreadyEmpty, "")
	} else {
		s.feed.Notify(notify.LevelSuccess, msgFlowCleared, "")
	}
	return outcome
}

// SaveGraph overwrites the saved sequence with the current nodes and edges.
func (s *sequenceService) SaveGraph(ctx context.Context) (*SaveResponse, *serviceerror.ServiceError) {
	current := s.graph.Snapshot()
	for i := range current.Nodes {
		current.Nodes[i].Highlighted = false
	}

	if err := s.snapshots.Save(ctx, store.Snapshot{Nodes: current.Nodes, Edges: current.Edges}); err != nil {
		s.logger.Error("Failed to save the sequence", log.Error(err))
		s.feed.Notify(notify.LevelError, msgFlowSaveFailed, "")
		return nil, &ErrorSaveFailed
	}

	s.feed.Notify(notify.LevelSuccess, msgFlowSaved, "")
	return &SaveResponse{Nodes: len(current.Nodes), Edges: len(current.Edges)}, nil
}

// LoadGraph replaces the canvas with the saved sequence. A missing sequence leaves the canvas as is.
func (s *sequenceService) LoadGraph(ctx context.Context) (*LoadResponse, *serviceerror.ServiceError) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			s.feed.Notify(notify.LevelInfo, msgFlowNotFound, "")
			return &LoadResponse{Result: LoadResultNotFound}, nil
		}
		s.logger.Error("Failed to load the sequence", log.Error(err))
		s.feed.Notify(notify.LevelError, msgFlowLoadFailed, "")
		return nil, &ErrorLoadFailed
	}

	s.graph.Replace(snapshot.Nodes, snapshot.Edges)
	current := s.graph.Snapshot()
	s.feed.Notify(notify.LevelSuccess, msgFlowLoaded, "")
	return &LoadResponse{
		Result: LoadResultLoaded,
		Nodes:  len(current.Nodes),
		Edges:  len(current.Edges),
	}, nil
}

// RestoreGraph loads the saved sequence without notifying the operator. Failures are only logged.
func (s *sequenceService) RestoreGraph(ctx context.Context) {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			s.logger.Debug("No saved sequence to restore")
			return
		}
		s.logger.Warn("Could not load saved flow from storage", log.Error(err))
		return
	}

	s.graph.Replace(snapshot.Nodes, snapshot.Edges)
	s.logger.Info("Restored saved sequence", log.Int("nodes", len(snapshot.Nodes)),
		log.Int("edges", len(snapshot.Edges)))
}

// PlaceNode adds a node for the requested command at the requested position.
func (s *sequenceService) PlaceNode(request PlaceNodeRequest) (*graph.Node, *serviceerror.ServiceError) {
	command := strings.TrimSpace(request.Command)
	def, known := s.catalog.Lookup(command)
	if !known {
		def = catalog.CommandDefinition{
			Command:  command,
			Label:    command,
			Category: catalog.CategoryDefault,
		}
	}
	if request.Label != nil {
		def.Label = utils.SanitizeString(*request.Label)
	}
	if request.Category != "" {
		def.Category = catalog.ParseCategory(request.Category)
	}
	if delay, ok, err := parseDelayValue(request.Delay); err != nil {
		return nil, &ErrorInvalidDelay
	} else if ok {
		def.DelayMs = delay
	}

	if err := catalog.Validate(def); err != nil {
		if errors.Is(err, catalog.ErrNegativeDelay) {
			return nil, &ErrorInvalidDelay
		}
		return nil, serviceerror.CustomServiceError(ErrorInvalidCommandDefinition, err.Error())
	}

	node := s.graph.PlaceNode(def, request.Position)
	s.logger.Debug("Node placed", log.String(log.LoggerKeyNodeID, node.ID),
		log.String(log.LoggerKeyCommand, node.Data.Command))
	return &node, nil
}

// EditNode updates the label and the delay of a node. Fields left out keep their value.
func (s *sequenceService) EditNode(nodeID string, request EditNodeRequest) (*graph.Node,
	*serviceerror.ServiceError) {
	existing, ok := s.graph.Node(nodeID)
	if !ok {
		return nil, &ErrorNodeNotFound
	}

	label := existing.Data.Label
	if request.Label != nil {
		label = utils.SanitizeString(*request.Label)
		if label == "" {
			return nil, &ErrorInvalidLabel
		}
	}
	delay := existing.Data.DelayMs
	if parsed, set, err := parseDelayValue(request.Delay); err != nil {
		return nil, &ErrorInvalidDelay
	} else if set {
		delay = parsed
	}

	updated, ok := s.graph.EditNode(nodeID, label, delay)
	if !ok {
		return nil, &ErrorNodeNotFound
	}
	return &updated, nil
}

// MoveNode moves a node on the canvas, which changes its place in the execution order.
func (s *sequenceService) MoveNode(nodeID string, position graph.Position) (*graph.Node,
	*serviceerror.ServiceError) {
	moved, ok := s.graph.MoveNode(nodeID, position)
	if !ok {
		return nil, &ErrorNodeNotFound
	}
	return &moved, nil
}

// DuplicateNode clones a node next to the original.
func (s *sequenceService) DuplicateNode(nodeID string) (*graph.Node, *serviceerror.ServiceError) {
	clone, ok := s.graph.DuplicateNode(nodeID)
	if !ok {
		return nil, &ErrorNodeNotFound
	}
	return &clone, nil
}

// DeleteNode removes a node and every edge touching it.
func (s *sequenceService) DeleteNode(nodeID string) *serviceerror.ServiceError {
	if !s.graph.DeleteNode(nodeID) {
		return &ErrorNodeNotFound
	}
	return nil
}

// SelectNode selects a node, or clears the selection when nodeID is nil.
func (s *sequenceService) SelectNode(nodeID *string) *serviceerror.ServiceError {
	if nodeID == nil || *nodeID == "" {
		s.graph.ClearSelection()
		return nil
	}
	if !s.graph.Select(*nodeID) {
		return &ErrorNodeNotFound
	}
	return nil
}

// ConnectNodes adds a directed edge between two existing nodes.
func (s *sequenceService) ConnectNodes(request ConnectRequest) (*graph.Edge, *serviceerror.ServiceError) {
	edge, err := s.graph.Connect(request.Source, request.Target)
	if err != nil {
		if errors.Is(err, graph.ErrNodeNotFound) {
			return nil, &ErrorInvalidEdgeEndpoint
		}
		s.logger.Error("Failed to connect nodes", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return &edge, nil
}

// DisconnectNodes removes an edge.
func (s *sequenceService) DisconnectNodes(edgeID string) *serviceerror.ServiceError {
	if !s.graph.Disconnect(edgeID) {
		return &ErrorEdgeNotFound
	}
	return nil
}

// StartExecution plans the current canvas and executes it in the background.
func (s *sequenceService) StartExecution() (*ExecutionResponse, *serviceerror.ServiceError) {
	steps := executor.Plan(s.graph.Nodes())

	runID, err := s.executor.Start(s.runCtx, steps)
	if err != nil {
		switch {
		case errors.Is(err, executor.ErrNothingToExecute):
			return nil, &ErrorNothingToExecute
		case errors.Is(err, executor.ErrAlreadyRunning):
			return nil, &ErrorExecutionInProgress
		default:
			s.logger.Error("Failed to start the sequence", log.Error(err))
			return nil, &ErrorInternalServerError
		}
	}
	return &ExecutionResponse{RunID: runID, TotalSteps: len(steps)}, nil
}

// GetExecutionStatus returns the status of the active or the last execution.
func (s *sequenceService) GetExecutionStatus() executor.Status {
	return s.executor.Status()
}

// CancelExecution stops the active execution.
func (s *sequenceService) CancelExecution() *serviceerror.ServiceError {
	if !s.executor.Cancel() {
		return &ErrorNoActiveExecution
	}
	return nil
}

// ListNotifications returns the notifications newer than since.
func (s *sequenceService) ListNotifications(since uint64) NotificationListResponse {
	return NotificationListResponse{
		LastSeq:       s.feed.LastSeq(),
		Notifications: s.feed.List(since),
	}
}

// Shutdown cancels the active execution and waits for it to finish.
func (s *sequenceService) Shutdown() {
	s.stopRuns()
	s.executor.Wait()
}

// parseDelayValue reads a delay given as a JSON number or a base 10 string. The boolean is false
// when no delay was given.
func parseDelayValue(raw json.RawMessage) (int, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false, nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, false, graph.ErrInvalidDelay
		}
		delay, err := graph.ParseDelay(text)
		if err != nil {
			return 0, false, err
		}
		return delay, true, nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return 0, false, graph.ErrInvalidDelay
	}
	if number < 0 || number != math.Trunc(number) || number > math.MaxInt32 {
		return 0, false, graph.ErrInvalidDelay
	}
	return int(number), true, nil
}
