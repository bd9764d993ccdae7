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

package dispatch

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/system/log"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// InstrumentedDispatcher logs and measures every dispatch of the wrapped dispatcher.
type InstrumentedDispatcher struct {
	next   DispatcherInterface
	clock  clock.Clock
	logger *log.Logger
}

// NewInstrumentedDispatcher wraps a dispatcher with logging and metrics.
func NewInstrumentedDispatcher(next DispatcherInterface, clk clock.Clock) *InstrumentedDispatcher {
	return &InstrumentedDispatcher{
		next:   next,
		clock:  clk,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CommandDispatcher")),
	}
}

// Dispatch relays the command through the wrapped dispatcher.
func (d *InstrumentedDispatcher) Dispatch(ctx context.Context, command string) error {
	start := d.clock.Now()
	err := d.next.Dispatch(ctx, command)
	elapsed := d.clock.Since(start)
	dispatchDuration.Observe(elapsed.Seconds())

	if err != nil {
		dispatchCounter.WithLabelValues(outcomeFailure).Inc()
		d.logger.Error("Command dispatch failed", log.String(log.LoggerKeyCommand, command),
			log.Duration("elapsed", elapsed), log.Error(err))
		return err
	}

	dispatchCounter.WithLabelValues(outcomeSuccess).Inc()
	d.logger.Info("Command dispatched", log.String(log.LoggerKeyCommand, command),
		log.Duration("elapsed", elapsed))
	return nil
}
