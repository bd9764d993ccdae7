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

// Package notify provides the operator notification feed of the sequence editor.
package notify

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/system/log"
)

// DefaultCapacity is the number of notifications a feed retains when no capacity is configured.
const DefaultCapacity = 200

// Level is the severity of a notification.
type Level string

const (
	// LevelInfo is used for progress messages.
	LevelInfo Level = "info"
	// LevelSuccess is used when an operation finished as requested.
	LevelSuccess Level = "success"
	// LevelWarning is used for non-fatal anomalies.
	LevelWarning Level = "warning"
	// LevelError is used for failed operations.
	LevelError Level = "error"
)

// Notification is a message surfaced to the operator.
type Notification struct {
	Seq     uint64    `json:"seq"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	NodeID  string    `json:"nodeId,omitempty"`
	Time    time.Time `json:"time"`
}

// NotifierInterface accepts notifications.
type NotifierInterface interface {
	Notify(level Level, message, nodeID string)
}

// Feed is a bounded, ordered notification log that clients poll by sequence number.
type Feed struct {
	mu       sync.RWMutex
	items    []Notification
	capacity int
	lastSeq  uint64
	clock    clock.Clock
	logger   *log.Logger
}

// NewFeed creates a feed that keeps the most recent capacity notifications.
func NewFeed(capacity int, clk clock.Clock) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		items:    make([]Notification, 0, capacity),
		capacity: capacity,
		clock:    clk,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, "NotificationFeed")),
	}
}

// Notify appends a notification, evicting the oldest one when the feed is full.
func (f *Feed) Notify(level Level, message, nodeID string) {
	f.mu.Lock()
	f.lastSeq++
	n := Notification{
		Seq:     f.lastSeq,
		Level:   level,
		Message: message,
		NodeID:  nodeID,
		Time:    f.clock.Now(),
	}
	if len(f.items) == f.capacity {
		copy(f.items, f.items[1:])
		f.items = f.items[:len(f.items)-1]
	}
	f.items = append(f.items, n)
	f.mu.Unlock()

	fields := []log.Field{log.Int64("seq", int64(n.Seq))}
	if nodeID != "" {
		fields = append(fields, log.String(log.LoggerKeyNodeID, nodeID))
	}
	switch level {
	case LevelError:
		f.logger.Error(message, fields...)
	case LevelWarning:
		f.logger.Warn(message, fields...)
	default:
		f.logger.Info(message, fields...)
	}
}

// List returns the retained notifications with a sequence number greater than since, oldest first.
func (f *Feed) List(since uint64) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]Notification, 0)
	for _, n := range f.items {
		if n.Seq > since {
			result = append(result, n)
		}
	}
	return result
}

// LastSeq returns the sequence number of the most recent notification.
func (f *Feed) LastSeq() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.lastSeq
}
