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

package robot

import (
	"net/http"

	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
	sysutils "github.com/agribot/agribot/internal/system/utils"
)

// robotHandler handles the HTTP requests of the live-control page.
type robotHandler struct {
	service RobotServiceInterface
}

// newRobotHandler creates a new instance of robotHandler.
func newRobotHandler(service RobotServiceInterface) *robotHandler {
	return &robotHandler{
		service: service,
	}
}

// HandleCommandPostRequest handles the request to send a single command.
func (h *robotHandler) HandleCommandPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RobotHandler"))

	request, err := sysutils.DecodeJSONBody[CommandRequest](r)
	if err != nil {
		h.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	response, svcErr := h.service.SendCommand(r.Context(), request.Command)
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, response, logger)
}

// HandleGPSGetRequest handles the request to read the GPS position.
func (h *robotHandler) HandleGPSGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RobotHandler"))

	reading, svcErr := h.service.GetGPS(r.Context())
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, reading, logger)
}

// HandleSensorGetRequest handles the request to read the sensors.
func (h *robotHandler) HandleSensorGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RobotHandler"))

	reading, svcErr := h.service.GetSensor(r.Context())
	if svcErr != nil {
		h.handleError(w, logger, svcErr)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, reading, logger)
}

func (h *robotHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusBadRequest
	if svcErr.Type == serviceerror.ServerErrorType {
		statusCode = getServerErrorStatusCode(svcErr.Code)
	}
	sysutils.WriteServiceErrorResponse(w, statusCode, svcErr, logger)
}

// getServerErrorStatusCode reports robot side failures as a bad gateway.
func getServerErrorStatusCode(code string) int {
	switch code {
	case ErrorCommandNotSent.Code, ErrorGPSUnavailable.Code, ErrorSensorUnavailable.Code:
		return http.StatusBadGateway
	case ErrorRobotNotConfigured.Code:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
