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

// Package executor runs a planned sequence against the command dispatcher, one step at a time.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/agribot/agribot/internal/dispatch"
	"github.com/agribot/agribot/internal/sequence/notify"
	"github.com/agribot/agribot/internal/system/log"
	"github.com/agribot/agribot/internal/system/utils"
)

// DefaultDispatchTimeout bounds a single dispatch when no timeout is configured.
const DefaultDispatchTimeout = 15 * time.Second

// HighlighterInterface receives the execution highlight of nodes.
type HighlighterInterface interface {
	SetHighlight(nodeID string, on bool) bool
}

// Executor runs one sequence at a time. A second Start while a run is active fails with
// ErrAlreadyRunning.
type Executor struct {
	dispatcher      dispatch.DispatcherInterface
	highlighter     HighlighterInterface
	notifier        notify.NotifierInterface
	clock           clock.Clock
	dispatchTimeout time.Duration
	logger          *log.Logger

	running atomic.Bool
	mu      sync.RWMutex
	status  Status
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewExecutor creates an idle executor.
func NewExecutor(dispatcher dispatch.DispatcherInterface, highlighter HighlighterInterface,
	notifier notify.NotifierInterface, clk clock.Clock, dispatchTimeout time.Duration) *Executor {
	if dispatchTimeout <= 0 {
		dispatchTimeout = DefaultDispatchTimeout
	}
	return &Executor{
		dispatcher:      dispatcher,
		highlighter:     highlighter,
		notifier:        notifier,
		clock:           clk,
		dispatchTimeout: dispatchTimeout,
		logger:          log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SequenceExecutor")),
		status:          Status{State: StateIdle, Failures: []StepFailure{}},
	}
}

// Start begins a run of the given steps in the background and returns its run id. The run stops
// when ctx is cancelled or Cancel is called. An empty plan is reported and leaves the executor idle.
func (e *Executor) Start(ctx context.Context, steps []Step) (string, error) {
	if len(steps) == 0 {
		e.notifier.Notify(notify.LevelError, msgNothingToExecute, "")
		return "", ErrNothingToExecute
	}
	if !e.running.CompareAndSwap(false, true) {
		return "", ErrAlreadyRunning
	}

	plan := make([]Step, len(steps))
	copy(plan, steps)

	runID := utils.GenerateUUID()
	runCtx, cancel := context.WithCancel(ctx)
	startedAt := e.clock.Now()
	done := make(chan struct{})

	e.mu.Lock()
	e.status = Status{
		State:      StateRunning,
		RunID:      runID,
		TotalSteps: len(plan),
		StartedAt:  &startedAt,
		Failures:   []StepFailure{},
	}
	e.cancel = cancel
	e.done = done
	e.mu.Unlock()

	runningGauge.Set(1)
	e.notifier.Notify(notify.LevelInfo, msgStarted, "")
	e.logger.Info("Sequence run started", log.String(log.LoggerKeyRunID, runID), log.Int("steps", len(plan)))

	go e.run(runCtx, cancel, runID, plan, done)
	return runID, nil
}

// Cancel stops the active run. It returns false when no run is active.
func (e *Executor) Cancel() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.status.State != StateRunning || e.cancel == nil {
		return false
	}
	e.cancel()
	return true
}

// Wait blocks until the active run, if any, has finished.
func (e *Executor) Wait() {
	e.mu.RLock()
	done := e.done
	e.mu.RUnlock()

	if done != nil {
		<-done
	}
}

// IsRunning reports whether a run is active.
func (e *Executor) IsRunning() bool {
	return e.running.Load()
}

// Status returns a copy of the executor status.
func (e *Executor) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	status := e.status
	status.Failures = make([]StepFailure, len(e.status.Failures))
	copy(status.Failures, e.status.Failures)
	return status
}

// run dispatches the steps in order. The executor always returns to idle, even on panic.
func (e *Executor) run(ctx context.Context, cancel context.CancelFunc, runID string, steps []Step,
	done chan struct{}) {
	logger := e.logger.With(log.String(log.LoggerKeyRunID, runID))
	outcome := OutcomeFailed
	var runErr error
	current := ""

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Sequence run panicked", log.Any("panic", r))
			runErr = multierr.Append(runErr, fmt.Errorf("run panicked: %v", r))
			outcome = OutcomeFailed
			e.notifier.Notify(notify.LevelError, msgExecutionError, "")
		}
		if current != "" {
			e.highlighter.SetHighlight(current, false)
		}
		cancel()
		e.finish(outcome, runErr)
		runCounter.WithLabelValues(string(outcome)).Inc()
		runningGauge.Set(0)
		e.running.Store(false)
		close(done)
		logger.Info("Sequence run finished", log.String("outcome", string(outcome)))
	}()

	for i, step := range steps {
		if ctx.Err() != nil {
			outcome = OutcomeCancelled
			e.notifier.Notify(notify.LevelWarning, msgCancelled, "")
			return
		}

		e.mu.Lock()
		e.status.StepIndex = i
		e.status.CurrentNodeID = step.NodeID
		e.mu.Unlock()

		current = step.NodeID
		e.highlighter.SetHighlight(step.NodeID, true)

		if err := e.dispatch(ctx, step); err != nil {
			if ctx.Err() != nil {
				outcome = OutcomeCancelled
				e.notifier.Notify(notify.LevelWarning, msgCancelled, step.NodeID)
				return
			}
			stepCounter.WithLabelValues("failure").Inc()
			runErr = multierr.Append(runErr, fmt.Errorf("step %d %q: %w", i+1, step.Label, err))
			e.recordFailure(step, err)
			logger.Warn("Step dispatch failed", log.String(log.LoggerKeyNodeID, step.NodeID),
				log.String(log.LoggerKeyCommand, step.Command), log.Error(err))
			e.notifier.Notify(notify.LevelError, fmt.Sprintf(msgFailedFormat, step.Label), step.NodeID)
		} else {
			stepCounter.WithLabelValues("success").Inc()
			e.notifier.Notify(notify.LevelInfo, fmt.Sprintf(msgExecutingFormat, step.Label), step.NodeID)
		}

		if !e.sleep(ctx, time.Duration(step.DelayMs)*time.Millisecond) {
			outcome = OutcomeCancelled
			e.notifier.Notify(notify.LevelWarning, msgCancelled, step.NodeID)
			return
		}

		e.highlighter.SetHighlight(step.NodeID, false)
		current = ""
	}

	outcome = OutcomeCompleted
	e.notifier.Notify(notify.LevelSuccess, msgCompleted, "")
}

// dispatch relays the command of the step, bounded by the dispatch timeout.
func (e *Executor) dispatch(ctx context.Context, step Step) error {
	dispatchCtx, cancel := context.WithTimeout(ctx, e.dispatchTimeout)
	defer cancel()

	return e.dispatcher.Dispatch(dispatchCtx, step.Command)
}

// sleep waits for d on the executor clock. It returns false when ctx is cancelled first.
// A zero delay returns immediately.
func (e *Executor) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := e.clock.Timer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// recordFailure appends a step failure to the status.
func (e *Executor) recordFailure(step Step, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.status.Failures = append(e.status.Failures, StepFailure{
		NodeID: step.NodeID,
		Label:  step.Label,
		Error:  err.Error(),
	})
}

// finish moves the executor back to idle with the outcome of the run.
func (e *Executor) finish(outcome Outcome, runErr error) {
	finishedAt := e.clock.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.status.State = StateIdle
	e.status.CurrentNodeID = ""
	e.status.FinishedAt = &finishedAt
	e.status.LastOutcome = outcome
	if runErr != nil {
		e.status.Error = runErr.Error()
	}
	e.cancel = nil
}
