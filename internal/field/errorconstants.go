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

import "github.com/agribot/agribot/internal/system/error/serviceerror"

// Client errors for field management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorFieldNotFound is the error returned when a field is not found.
	ErrorFieldNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1002",
		Error:            "Field not found",
		ErrorDescription: "The field with the specified id does not exist",
	}
	// ErrorFieldAlreadyExists is the error returned when the field name is already in use.
	ErrorFieldAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1003",
		Error:            "Field already exists",
		ErrorDescription: "A field with the same name already exists",
	}
	// ErrorInvalidFieldName is the error returned when the field name is missing or too long.
	ErrorInvalidFieldName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1004",
		Error:            "Invalid field name",
		ErrorDescription: "The field name is required and must not exceed 100 characters",
	}
	// ErrorInvalidDescription is the error returned when the description is too long.
	ErrorInvalidDescription = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1005",
		Error:            "Invalid description",
		ErrorDescription: "The description must not exceed 200 characters",
	}
	// ErrorInvalidFieldSize is the error returned when the field size is missing or negative.
	ErrorInvalidFieldSize = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1006",
		Error:            "Invalid field size",
		ErrorDescription: "The field size is required and must not be negative",
	}
	// ErrorInvalidGeometry is the error returned when the geometry is not valid JSON.
	ErrorInvalidGeometry = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1007",
		Error:            "Invalid geometry",
		ErrorDescription: "The geometry must be a GeoJSON object or an array of rings",
	}
	// ErrorInvalidFieldReference is the error returned when field data points to an unknown field.
	ErrorInvalidFieldReference = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLD-1008",
		Error:            "Invalid field reference",
		ErrorDescription: "The referenced field does not exist",
	}
)

// Server errors for field management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLD-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
