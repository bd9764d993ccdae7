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

import "github.com/agribot/agribot/internal/system/error/serviceerror"

// Client errors for live-control operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ROB-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorEmptyCommand is the error returned when no command is given.
	ErrorEmptyCommand = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ROB-1002",
		Error:            "Invalid command",
		ErrorDescription: "The command must not be empty",
	}
)

// Server errors for live-control operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ROB-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorCommandNotSent is the error returned when the command could not be written to the trigger channel.
	ErrorCommandNotSent = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ROB-5001",
		Error:            "Error sending command",
		ErrorDescription: "The command could not be delivered to the robot",
	}
	// ErrorGPSUnavailable is the error returned when no valid GPS fix could be read.
	ErrorGPSUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ROB-5002",
		Error:            "Failed to get GPS data",
		ErrorDescription: "The robot did not report a valid GPS position",
	}
	// ErrorSensorUnavailable is the error returned when no valid sensor reading could be taken.
	ErrorSensorUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ROB-5003",
		Error:            "Failed to get sensor data",
		ErrorDescription: "The robot did not report a valid sensor reading",
	}
	// ErrorRobotNotConfigured is the error returned when the robot endpoints are not configured.
	ErrorRobotNotConfigured = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ROB-5004",
		Error:            "Robot not configured",
		ErrorDescription: "The robot connection has not been configured on the server",
	}
)
