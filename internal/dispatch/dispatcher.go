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

// Package dispatch relays commands to the robot through the realtime trigger channel.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"

	"github.com/agribot/agribot/internal/system/config"
	syshttp "github.com/agribot/agribot/internal/system/http"
	"github.com/agribot/agribot/internal/system/log"
)

const (
	defaultInitialBackoff = 250 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second
)

var (
	// ErrEmptyCommand is returned when an empty command is dispatched.
	ErrEmptyCommand = errors.New("command must not be empty")
	// ErrNotConfigured is returned when no realtime database URL is configured.
	ErrNotConfigured = errors.New("realtime database url is not configured")
	// ErrDispatchRejected is returned when the realtime database answers with a non-2xx status.
	ErrDispatchRejected = errors.New("realtime database rejected the trigger")
)

// DispatcherInterface delivers a single command string to the robot.
type DispatcherInterface interface {
	Dispatch(ctx context.Context, command string) error
}

// Trigger is the value written to the trigger channel.
type Trigger struct {
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"`
}

// RealtimeDispatcher writes triggers to the realtime database over its REST API.
type RealtimeDispatcher struct {
	httpClient     syshttp.HTTPClientInterface
	databaseURL    string
	triggerPath    string
	authToken      string
	maxAttempts    int
	initialBackoff time.Duration
	clock          clock.Clock
	logger         *log.Logger
}

// NewRealtimeDispatcher creates a dispatcher from the dispatcher configuration.
func NewRealtimeDispatcher(cfg config.DispatcherConfig, httpClient syshttp.HTTPClientInterface,
	clk clock.Clock) *RealtimeDispatcher {
	triggerPath := cfg.TriggerPath
	if triggerPath == "" {
		triggerPath = config.DefaultTriggerPath
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &RealtimeDispatcher{
		httpClient:     httpClient,
		databaseURL:    strings.TrimSuffix(cfg.DatabaseURL, "/"),
		triggerPath:    strings.Trim(triggerPath, "/"),
		authToken:      cfg.AuthToken,
		maxAttempts:    maxAttempts,
		initialBackoff: defaultInitialBackoff,
		clock:          clk,
		logger:         log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RealtimeDispatcher")),
	}
}

// Dispatch writes the command with the current epoch millisecond timestamp to the trigger channel,
// retrying transient failures up to the configured number of attempts.
func (d *RealtimeDispatcher) Dispatch(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}
	if d.databaseURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(Trigger{Command: command, Timestamp: d.clock.Now().UnixMilli()})
	if err != nil {
		return fmt.Errorf("failed to encode trigger: %w", err)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = d.initialBackoff
	expBackoff.MaxInterval = defaultMaxBackoff
	retryPolicy := backoff.WithMaxRetries(backoff.WithContext(expBackoff, ctx), uint64(d.maxAttempts-1))

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		sendErr := d.send(ctx, body)
		if sendErr != nil && attempt < d.maxAttempts {
			d.logger.Warn("Trigger write failed", log.String(log.LoggerKeyCommand, command),
				log.Int("attempt", attempt), log.Error(sendErr))
		}
		return sendErr
	}, retryPolicy)
	if err != nil {
		return err
	}

	d.logger.Debug("Trigger written", log.String(log.LoggerKeyCommand, command), log.Int("attempts", attempt))
	return nil
}

// send performs a single PUT of the trigger. Client errors other than timeouts and throttling are
// not retried.
func (d *RealtimeDispatcher) send(ctx context.Context, body []byte) error {
	if err := ctx.Err(); err != nil {
		return backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, d.triggerURL(), bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to build trigger request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to write trigger: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			d.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	rejected := fmt.Errorf("%w: status %d", ErrDispatchRejected, resp.StatusCode)
	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError &&
		resp.StatusCode != http.StatusRequestTimeout && resp.StatusCode != http.StatusTooManyRequests {
		return backoff.Permanent(rejected)
	}
	return rejected
}

// triggerURL returns the REST location of the trigger channel.
func (d *RealtimeDispatcher) triggerURL() string {
	location := d.databaseURL + "/" + d.triggerPath + ".json"
	if d.authToken == "" {
		return location
	}
	return location + "?" + url.Values{"auth": []string{d.authToken}}.Encode()
}
