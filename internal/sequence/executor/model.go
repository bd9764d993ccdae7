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

package executor

import (
	"errors"
	"time"
)

// State is the state of the executor.
type State string

const (
	// StateIdle means no run is active.
	StateIdle State = "idle"
	// StateRunning means a run is dispatching steps.
	StateRunning State = "running"
)

// Outcome is how a run ended.
type Outcome string

const (
	// OutcomeCompleted means every step was attempted.
	OutcomeCompleted Outcome = "completed"
	// OutcomeCancelled means the run was stopped before its last step finished.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeFailed means the run stopped on an unexpected error.
	OutcomeFailed Outcome = "failed"
)

const (
	msgNothingToExecute = "No commands to execute"
	msgStarted          = "Autonomous sequence started"
	msgExecutingFormat  = "Executing: %s"
	msgFailedFormat     = "Failed to execute %q"
	msgCompleted        = "Sequence completed successfully"
	msgCancelled        = "Sequence cancelled"
	msgExecutionError   = "Execution error occurred"
)

var (
	// ErrNothingToExecute is returned when a run is started without steps.
	ErrNothingToExecute = errors.New("no commands to execute")
	// ErrAlreadyRunning is returned when a run is started while another is active.
	ErrAlreadyRunning = errors.New("a sequence is already running")
)

// StepFailure records a step whose dispatch failed.
type StepFailure struct {
	NodeID string `json:"nodeId"`
	Label  string `json:"label"`
	Error  string `json:"error"`
}

// Status describes the active run, or the last one when the executor is idle.
type Status struct {
	State         State         `json:"state"`
	RunID         string        `json:"runId,omitempty"`
	CurrentNodeID string        `json:"currentNodeId,omitempty"`
	StepIndex     int           `json:"stepIndex"`
	TotalSteps    int           `json:"totalSteps"`
	StartedAt     *time.Time    `json:"startedAt,omitempty"`
	FinishedAt    *time.Time    `json:"finishedAt,omitempty"`
	LastOutcome   Outcome       `json:"lastOutcome,omitempty"`
	Failures      []StepFailure `json:"failures"`
	Error         string        `json:"error,omitempty"`
}
