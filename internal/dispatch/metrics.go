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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agribot/agribot/internal/system/metrics"
)

var (
	dispatchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "dispatch",
			Name:      "commands_total",
			Help:      "Total number of commands relayed to the robot, by outcome",
		}, []string{"outcome"})
	dispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Time taken to relay a command to the robot, including retries",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		})
)

// InitMetrics registers all metrics used by the dispatcher.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(dispatchCounter)
	registry.MustRegister(dispatchDuration)
}
