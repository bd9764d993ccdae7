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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agribot/agribot/internal/system/constants"
	"github.com/agribot/agribot/internal/system/error/apierror"
	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
)

// maxRequestBodyBytes bounds the size of JSON request bodies accepted by the API.
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody decodes the JSON request body into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	var data T
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.New("failed to decode JSON request body: " + err.Error())
	}
	return &data, nil
}

// WriteJSONResponse writes the given value as a JSON response with the provided status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any, logger *log.Logger) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if body == nil {
		return
	}
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// WriteServiceErrorResponse writes the service error as an API error response with the given status code.
func WriteServiceErrorResponse(w http.ResponseWriter, statusCode int, svcErr *serviceerror.ServiceError,
	logger *log.Logger) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
