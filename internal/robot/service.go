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

// Package robot provides live control of the robot: single commands and on-demand telemetry.
package robot

import (
	"context"
	"errors"
	"strings"

	"github.com/agribot/agribot/internal/dispatch"
	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
)

// RobotServiceInterface defines the live-control operations.
type RobotServiceInterface interface {
	SendCommand(ctx context.Context, command string) (*CommandResponse, *serviceerror.ServiceError)
	GetGPS(ctx context.Context) (*GPSReading, *serviceerror.ServiceError)
	GetSensor(ctx context.Context) (*SensorReading, *serviceerror.ServiceError)
}

// robotService is the default implementation of RobotServiceInterface.
type robotService struct {
	dispatcher dispatch.DispatcherInterface
	client     RobotClientInterface
	logger     *log.Logger
}

// newRobotService creates a new instance of robotService.
func newRobotService(dispatcher dispatch.DispatcherInterface, client RobotClientInterface) RobotServiceInterface {
	return &robotService{
		dispatcher: dispatcher,
		client:     client,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RobotService")),
	}
}

// SendCommand writes a single command to the trigger channel.
func (s *robotService) SendCommand(ctx context.Context, command string) (*CommandResponse,
	*serviceerror.ServiceError) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, &ErrorEmptyCommand
	}

	if err := s.dispatcher.Dispatch(ctx, command); err != nil {
		s.logger.Error("Failed to send command", log.String(log.LoggerKeyCommand, command), log.Error(err))
		if errors.Is(err, dispatch.ErrNotConfigured) {
			return nil, &ErrorRobotNotConfigured
		}
		return nil, &ErrorCommandNotSent
	}
	return &CommandResponse{Command: command, Status: "sent"}, nil
}

// GetGPS reads the current GPS fix of the robot.
func (s *robotService) GetGPS(ctx context.Context) (*GPSReading, *serviceerror.ServiceError) {
	reading, err := s.client.GetGPS(ctx)
	if err != nil {
		s.logger.Error("Failed to read GPS", log.Error(err))
		return nil, s.readingError(err, &ErrorGPSUnavailable)
	}
	return reading, nil
}

// GetSensor reads the current sensor values of the robot.
func (s *robotService) GetSensor(ctx context.Context) (*SensorReading, *serviceerror.ServiceError) {
	reading, err := s.client.GetSensor(ctx)
	if err != nil {
		s.logger.Error("Failed to read sensors", log.Error(err))
		return nil, s.readingError(err, &ErrorSensorUnavailable)
	}
	return reading, nil
}

func (s *robotService) readingError(err error, fallback *serviceerror.ServiceError) *serviceerror.ServiceError {
	if errors.Is(err, ErrNotConfigured) {
		return &ErrorRobotNotConfigured
	}
	return fallback
}
