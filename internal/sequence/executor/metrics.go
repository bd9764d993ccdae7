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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agribot/agribot/internal/system/metrics"
)

var (
	runCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "executor",
			Name:      "runs_total",
			Help:      "Total number of sequence runs, by outcome",
		}, []string{"outcome"})
	stepCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "executor",
			Name:      "steps_total",
			Help:      "Total number of executed sequence steps, by dispatch result",
		}, []string{"result"})
	runningGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: "executor",
			Name:      "running",
			Help:      "1 while a sequence is running",
		})
)

// InitMetrics registers all metrics used by the executor.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(runCounter)
	registry.MustRegister(stepCounter)
	registry.MustRegister(runningGauge)
}
