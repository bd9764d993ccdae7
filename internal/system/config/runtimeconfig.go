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

package config

import "sync"

// AgriBotRuntime holds the runtime configuration for the AgriBot server.
type AgriBotRuntime struct {
	AgriBotHome string `yaml:"agribot_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *AgriBotRuntime
	once          sync.Once
)

// InitializeAgriBotRuntime initializes the AgriBotRuntime configuration.
func InitializeAgriBotRuntime(agriBotHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &AgriBotRuntime{
			AgriBotHome: agriBotHome,
			Config:      *config,
		}
	})

	return nil
}

// GetAgriBotRuntime returns the AgriBotRuntime configuration.
func GetAgriBotRuntime() *AgriBotRuntime {
	if runtimeConfig == nil {
		panic("AgriBotRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetAgriBotRuntime resets the AgriBotRuntime.
// This should only be used in tests to reset the singleton state.
func ResetAgriBotRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
