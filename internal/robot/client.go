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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/agribot/agribot/internal/system/config"
	syshttp "github.com/agribot/agribot/internal/system/http"
	"github.com/agribot/agribot/internal/system/log"
)

var (
	// ErrNotConfigured is returned when no robot base URL is configured.
	ErrNotConfigured = errors.New("robot base url is not configured")
	// ErrUnavailable is returned when the robot cannot be reached or answers with a non-2xx status.
	ErrUnavailable = errors.New("robot is unavailable")
	// ErrInvalidReading is returned when the robot reports a reading it could not take.
	ErrInvalidReading = errors.New("robot reported an invalid reading")
)

// RobotClientInterface reads the live telemetry of the robot.
type RobotClientInterface interface {
	GetGPS(ctx context.Context) (*GPSReading, error)
	GetSensor(ctx context.Context) (*SensorReading, error)
}

// robotClient calls the HTTP API served by the robot firmware.
type robotClient struct {
	baseURL    string
	httpClient syshttp.HTTPClientInterface
	logger     *log.Logger
}

// NewRobotClient creates a client for the robot API described by the configuration.
func NewRobotClient(cfg config.RobotConfig, httpClient syshttp.HTTPClientInterface) RobotClientInterface {
	return &robotClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RobotClient")),
	}
}

// GetGPS returns the current position. A fix whose status is not "valid" is an error.
func (c *robotClient) GetGPS(ctx context.Context) (*GPSReading, error) {
	var reading GPSReading
	if err := c.get(ctx, "/api/gps", &reading); err != nil {
		return nil, err
	}
	if reading.Status != gpsStatusValid {
		return nil, fmt.Errorf("%w: gps status %q", ErrInvalidReading, reading.Status)
	}
	return &reading, nil
}

// GetSensor returns the current sensor values. A reading whose dht_status is not "ok" is an error.
func (c *robotClient) GetSensor(ctx context.Context) (*SensorReading, error) {
	var reading SensorReading
	if err := c.get(ctx, "/api/sensor", &reading); err != nil {
		return nil, err
	}
	if reading.DHTStatus != dhtStatusOK {
		return nil, fmt.Errorf("%w: dht status %q", ErrInvalidReading, reading.DHTStatus)
	}
	return &reading, nil
}

// get performs a GET on the robot API and decodes the JSON answer into out.
func (c *robotClient) get(ctx context.Context, path string, out any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build robot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReading, err)
	}
	return nil
}
