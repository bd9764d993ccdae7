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
	"net/http"
	"strconv"
	"strings"

	"github.com/agribot/agribot/internal/sequence/graph"
	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
	sysutils "github.com/agribot/agribot/internal/system/utils"
)

// sequenceHandler handles the HTTP requests of the sequence editor.
type sequenceHandler struct {
	service SequenceServiceInterface
}

// newSequenceHandler creates a new instance of sequenceHandler.
func newSequenceHandler(service SequenceServiceInterface) *sequenceHandler {
	return &sequenceHandler{
		service: service,
	}
}

// HandleCommandListRequest handles the request to list the command palette.
func (h *sequenceHandler) HandleCommandListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	commands := h.service.ListCommands(r.URL.Query().Get("category"))
	sysutils.WriteJSONResponse(w, http.StatusOK, commands, logger)
}

// HandleGraphGetRequest handles the request to read the canvas.
func (h *sequenceHandler) HandleGraphGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	sysutils.WriteJSONResponse(w, http.StatusOK, h.service.GetGraph(), logger)
}

// HandleGraphDeleteRequest handles the request to clear the canvas.
func (h *sequenceHandler) HandleGraphDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	outcome := h.service.ClearGraph()
	sysutils.WriteJSONResponse(w, http.StatusOK, ClearResponse{Result: outcome}, logger)
}

// HandleGraphSaveRequest handles the request to save the canvas.
func (h *sequenceHandler) HandleGraphSaveRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	saved, svcErr := h.service.SaveGraph(r.Context())
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, saved, logger)
}

// HandleGraphLoadRequest handles the request to replace the canvas with the saved sequence.
func (h *sequenceHandler) HandleGraphLoadRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	loaded, svcErr := h.service.LoadGraph(r.Context())
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, loaded, logger)
}

// HandleNodePostRequest handles the request to place a node.
func (h *sequenceHandler) HandleNodePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	request, err := sysutils.DecodeJSONBody[PlaceNodeRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	node, svcErr := h.service.PlaceNode(*request)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, node, logger)
}

// HandleNodePutRequest handles the request to edit the label or the delay of a node.
func (h *sequenceHandler) HandleNodePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	request, err := sysutils.DecodeJSONBody[EditNodeRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	node, svcErr := h.service.EditNode(r.PathValue("id"), *request)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, node, logger)
}

// HandleNodePositionPutRequest handles the request to move a node.
func (h *sequenceHandler) HandleNodePositionPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	position, err := sysutils.DecodeJSONBody[graph.Position](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	node, svcErr := h.service.MoveNode(r.PathValue("id"), *position)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, node, logger)
}

// HandleNodeDuplicateRequest handles the request to duplicate a node.
func (h *sequenceHandler) HandleNodeDuplicateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	node, svcErr := h.service.DuplicateNode(r.PathValue("id"))
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, node, logger)
}

// HandleNodeDeleteRequest handles the request to delete a node.
func (h *sequenceHandler) HandleNodeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	if svcErr := h.service.DeleteNode(r.PathValue("id")); svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSelectionPutRequest handles the request to change the selected node.
func (h *sequenceHandler) HandleSelectionPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	request, err := sysutils.DecodeJSONBody[SelectionRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	if svcErr := h.service.SelectNode(request.NodeID); svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleEdgePostRequest handles the request to connect two nodes.
func (h *sequenceHandler) HandleEdgePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	request, err := sysutils.DecodeJSONBody[ConnectRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	edge, svcErr := h.service.ConnectNodes(*request)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, edge, logger)
}

// HandleEdgeDeleteRequest handles the request to remove an edge.
func (h *sequenceHandler) HandleEdgeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	if svcErr := h.service.DisconnectNodes(r.PathValue("id")); svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExecutionPostRequest handles the request to execute the sequence.
func (h *sequenceHandler) HandleExecutionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	execution, svcErr := h.service.StartExecution()
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}

	logger.Debug("Sequence execution accepted", log.String(log.LoggerKeyRunID, execution.RunID))
	sysutils.WriteJSONResponse(w, http.StatusAccepted, execution, logger)
}

// HandleExecutionGetRequest handles the request to read the execution status.
func (h *sequenceHandler) HandleExecutionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	sysutils.WriteJSONResponse(w, http.StatusOK, h.service.GetExecutionStatus(), logger)
}

// HandleExecutionDeleteRequest handles the request to cancel the running sequence.
func (h *sequenceHandler) HandleExecutionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	if svcErr := h.service.CancelExecution(); svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// HandleNotificationListRequest handles the request to poll the notification feed.
func (h *sequenceHandler) HandleNotificationListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceHandler"))

	var since uint64
	if sinceParam := strings.TrimSpace(r.URL.Query().Get("since")); sinceParam != "" {
		parsed, err := strconv.ParseUint(sinceParam, 10, 64)
		if err != nil {
			h.handleError(w, logger, &ErrorInvalidSequenceNumber)
			return
		}
		since = parsed
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, h.service.ListNotifications(since), logger)
}

// handleError writes the service error with the matching status code.
func (h *sequenceHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}
	sysutils.WriteServiceErrorResponse(w, statusCode, svcErr, logger)
}

// getClientErrorStatusCode maps a client error code to an HTTP status code.
func getClientErrorStatusCode(code string) int {
	switch code {
	case ErrorNodeNotFound.Code, ErrorEdgeNotFound.Code:
		return http.StatusNotFound
	case ErrorExecutionInProgress.Code, ErrorNoActiveExecution.Code:
		return http.StatusConflict
	case ErrorNothingToExecute.Code:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
