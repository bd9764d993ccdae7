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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the configuration details for cross-origin requests from the dashboard.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	AgriBot DataSource `yaml:"agribot"`
}

// RedisConfig holds the connection details of the redis server used for sequence snapshots.
type RedisConfig struct {
	Address   string `yaml:"address"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// PersistenceConfig holds the configuration of the sequence snapshot storage.
type PersistenceConfig struct {
	Backend string      `yaml:"backend"`
	Redis   RedisConfig `yaml:"redis"`
}

// DispatcherConfig holds the configuration of the realtime trigger channel used to reach the robot.
type DispatcherConfig struct {
	DatabaseURL string `yaml:"database_url"`
	TriggerPath string `yaml:"trigger_path"`
	AuthToken   string `yaml:"auth_token"`
	Timeout     int    `yaml:"timeout"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// RobotConfig holds the configuration of the on-robot HTTP API.
type RobotConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// ExecutorConfig holds the configuration of the sequence executor.
type ExecutorConfig struct {
	DispatchTimeout int `yaml:"dispatch_timeout"`
}

// NotificationConfig holds the configuration of the operator notification feed.
type NotificationConfig struct {
	Capacity int `yaml:"capacity"`
}

// CacheProperty holds the configuration of an individual cache.
type CacheProperty struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	TTL    int    `yaml:"ttl"`
	Enable bool   `yaml:"enable"`
}

// CacheConfig holds the cache configuration details.
type CacheConfig struct {
	Disabled   bool            `yaml:"disabled"`
	Size       int             `yaml:"size"`
	TTL        int             `yaml:"ttl"`
	Properties []CacheProperty `yaml:"properties,omitempty"`
}

// MetricsConfig holds the configuration of the metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Security     SecurityConfig     `yaml:"security"`
	CORS         CORSConfig         `yaml:"cors"`
	Database     DatabaseConfig     `yaml:"database"`
	Persistence  PersistenceConfig  `yaml:"persistence"`
	Dispatcher   DispatcherConfig   `yaml:"dispatcher"`
	Robot        RobotConfig        `yaml:"robot"`
	Executor     ExecutorConfig     `yaml:"executor"`
	Notification NotificationConfig `yaml:"notification"`
	Cache        CacheConfig        `yaml:"cache"`
	Metrics      MetricsConfig      `yaml:"metrics"`
}

// LoadConfig loads the configurations from the specified YAML file.
// References of the form ${VAR} are expanded from the environment before parsing.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in the values that the deployment file may leave out.
func applyDefaults(cfg *Config) {
	if cfg.Persistence.Backend == "" {
		cfg.Persistence.Backend = PersistenceBackendDatabase
	}
	if cfg.Persistence.Redis.KeyPrefix == "" {
		cfg.Persistence.Redis.KeyPrefix = "agribot:"
	}
	if cfg.Dispatcher.TriggerPath == "" {
		cfg.Dispatcher.TriggerPath = DefaultTriggerPath
	}
	if cfg.Dispatcher.MaxAttempts <= 0 {
		cfg.Dispatcher.MaxAttempts = 1
	}
	if cfg.Dispatcher.Timeout <= 0 {
		cfg.Dispatcher.Timeout = 10
	}
	if cfg.Robot.Timeout <= 0 {
		cfg.Robot.Timeout = 10
	}
	if cfg.Executor.DispatchTimeout <= 0 {
		cfg.Executor.DispatchTimeout = 15
	}
	if cfg.Notification.Capacity <= 0 {
		cfg.Notification.Capacity = 200
	}
}
