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

import "github.com/agribot/agribot/internal/system/error/serviceerror"

// Client errors for sequence editor operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorNodeNotFound is the error returned when a node is not found.
	ErrorNodeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1002",
		Error:            "Node not found",
		ErrorDescription: "The requested node could not be found",
	}
	// ErrorEdgeNotFound is the error returned when an edge is not found.
	ErrorEdgeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1003",
		Error:            "Edge not found",
		ErrorDescription: "The requested edge could not be found",
	}
	// ErrorInvalidDelay is the error returned when a delay is not a non-negative base 10 integer.
	ErrorInvalidDelay = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1004",
		Error:            "Invalid delay",
		ErrorDescription: "The delay must be a non-negative whole number of milliseconds",
	}
	// ErrorInvalidCommandDefinition is the error returned when a node definition is incomplete.
	ErrorInvalidCommandDefinition = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1005",
		Error:            "Invalid command definition",
		ErrorDescription: "The command definition is missing a command or label",
	}
	// ErrorInvalidEdgeEndpoint is the error returned when an edge refers to an unknown node.
	ErrorInvalidEdgeEndpoint = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1006",
		Error:            "Invalid edge endpoint",
		ErrorDescription: "Both the source and the target of an edge must be existing nodes",
	}
	// ErrorNothingToExecute is the error returned when an execution is requested on an empty graph.
	ErrorNothingToExecute = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1007",
		Error:            "Nothing to execute",
		ErrorDescription: "The sequence has no commands to execute",
	}
	// ErrorExecutionInProgress is the error returned when an execution is requested while one is running.
	ErrorExecutionInProgress = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1008",
		Error:            "Execution in progress",
		ErrorDescription: "A sequence is already being executed",
	}
	// ErrorNoActiveExecution is the error returned when cancelling while no sequence is running.
	ErrorNoActiveExecution = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1009",
		Error:            "No active execution",
		ErrorDescription: "There is no running sequence to cancel",
	}
	// ErrorInvalidLabel is the error returned when a node label is empty.
	ErrorInvalidLabel = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1010",
		Error:            "Invalid label",
		ErrorDescription: "The node label must not be empty",
	}
	// ErrorInvalidSequenceNumber is the error returned when the notification cursor is not a number.
	ErrorInvalidSequenceNumber = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SEQ-1011",
		Error:            "Invalid sequence number",
		ErrorDescription: "The since parameter must be a non-negative integer",
	}
)

// Server errors for sequence editor operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SEQ-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorSaveFailed is the error returned when the sequence could not be persisted.
	ErrorSaveFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SEQ-5001",
		Error:            "Failed to save flow",
		ErrorDescription: "The sequence could not be written to storage",
	}
	// ErrorLoadFailed is the error returned when the saved sequence could not be read.
	ErrorLoadFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SEQ-5002",
		Error:            "Failed to load flow",
		ErrorDescription: "The saved sequence could not be read from storage",
	}
)
