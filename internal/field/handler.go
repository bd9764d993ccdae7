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

package field

import (
	"net/http"

	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
	sysutils "github.com/agribot/agribot/internal/system/utils"
)

// fieldHandler handles the HTTP requests of field management.
type fieldHandler struct {
	service FieldServiceInterface
}

// newFieldHandler creates a new instance of fieldHandler.
func newFieldHandler(service FieldServiceInterface) *fieldHandler {
	return &fieldHandler{
		service: service,
	}
}

// HandleFieldListRequest handles the request to list fields.
func (h *fieldHandler) HandleFieldListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldHandler"))

	fields, svcErr := h.service.ListFields(r.URL.Query().Get("search"))
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, fields, logger)
}

// HandleFieldPostRequest handles the request to create a field.
func (h *fieldHandler) HandleFieldPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldHandler"))

	request, err := sysutils.DecodeJSONBody[FieldRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	created, svcErr := h.service.CreateField(*request)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, created, logger)
}

// HandleFieldGetRequest handles the request to read a field by its id.
func (h *fieldHandler) HandleFieldGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldHandler"))

	f, svcErr := h.service.GetField(r.PathValue("id"))
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, f, logger)
}

// HandleFieldDataListRequest handles the request to list field readings.
func (h *fieldHandler) HandleFieldDataListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldHandler"))

	records, svcErr := h.service.ListFieldData(r.URL.Query().Get("field"))
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, records, logger)
}

// HandleFieldDataPostRequest handles the request to record readings on a field.
func (h *fieldHandler) HandleFieldDataPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldHandler"))

	request, err := sysutils.DecodeJSONBody[FieldDataRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	record, svcErr := h.service.CreateFieldData(*request)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, record, logger)
}

// handleError writes the service error with the matching status code.
func (h *fieldHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorFieldNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorFieldAlreadyExists.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	}
	sysutils.WriteServiceErrorResponse(w, statusCode, svcErr, logger)
}
