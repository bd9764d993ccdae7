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

// Package managers provides functionality for managing and registering system services.
package managers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"

	"github.com/agribot/agribot/internal/dispatch"
	"github.com/agribot/agribot/internal/field"
	"github.com/agribot/agribot/internal/robot"
	"github.com/agribot/agribot/internal/sequence"
	"github.com/agribot/agribot/internal/sequence/executor"
	"github.com/agribot/agribot/internal/sequence/store"
	"github.com/agribot/agribot/internal/system/config"
	"github.com/agribot/agribot/internal/system/database/provider"
	healthcheckhandler "github.com/agribot/agribot/internal/system/healthcheck/handler"
	healthcheckservice "github.com/agribot/agribot/internal/system/healthcheck/service"
	syshttp "github.com/agribot/agribot/internal/system/http"
	"github.com/agribot/agribot/internal/system/log"
	"github.com/agribot/agribot/internal/system/metrics"
)

const redisPingTimeout = 5 * time.Second

// ServiceManagerInterface defines the interface for managing services.
type ServiceManagerInterface interface {
	RegisterServices(ctx context.Context) error
	Close() error
}

// ServiceManager implements the ServiceManagerInterface and is responsible for registering services.
type ServiceManager struct {
	mux         *http.ServeMux
	config      *config.Config
	dbProvider  provider.DBProviderInterface
	redisClient *redis.Client
	sequence    sequence.SequenceServiceInterface
	logger      *log.Logger
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config,
	dbProvider provider.DBProviderInterface) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		config:     cfg,
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager")),
	}
}

// RegisterServices registers all the services with the provided HTTP multiplexer.
func (sm *ServiceManager) RegisterServices(ctx context.Context) error {
	// Register the health check service.
	healthcheckhandler.NewHealthCheckHandler(healthcheckservice.GetHealthCheckService()).RegisterRoutes(sm.mux)

	if sm.config.Metrics.Enabled {
		registry := metrics.GetRegistry()
		dispatch.InitMetrics(registry)
		executor.InitMetrics(registry)
		sm.mux.Handle("GET /metrics", metrics.Handler())
	}

	dispatcher := dispatch.NewInstrumentedDispatcher(
		dispatch.NewRealtimeDispatcher(sm.config.Dispatcher,
			syshttp.NewHTTPClientWithSeconds(sm.config.Dispatcher.Timeout), clock.New()),
		clock.New())

	slots, err := sm.newSlotStore(ctx)
	if err != nil {
		return err
	}

	// Register the sequence editor and executor.
	sm.sequence = sequence.Initialize(ctx, sm.mux, dispatcher, store.NewSnapshotStore(slots), sm.config)

	// Register the live-control service.
	robot.Initialize(sm.mux, dispatcher, sm.config.Robot)

	// Register the field service.
	field.Initialize(sm.mux, sm.dbProvider)

	return nil
}

// Close stops the running sequence and releases the storage connections.
func (sm *ServiceManager) Close() error {
	if sm.sequence != nil {
		sm.sequence.Shutdown()
	}

	var err error
	if sm.redisClient != nil {
		err = multierr.Append(err, sm.redisClient.Close())
	}
	return multierr.Append(err, sm.dbProvider.Close())
}

// newSlotStore creates the snapshot slot store of the configured persistence backend.
func (sm *ServiceManager) newSlotStore(ctx context.Context) (store.SlotStoreInterface, error) {
	switch sm.config.Persistence.Backend {
	case config.PersistenceBackendDatabase:
		return store.NewDBSlotStore(sm.dbProvider), nil
	case config.PersistenceBackendRedis:
		sm.redisClient = store.NewRedisClient(sm.config.Persistence.Redis)

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := sm.redisClient.Ping(pingCtx).Err(); err != nil {
			sm.logger.Warn("Redis is not reachable, saved sequences are unavailable until it is",
				log.String("address", sm.config.Persistence.Redis.Address), log.Error(err))
		}
		return store.NewRedisSlotStore(sm.redisClient, sm.config.Persistence.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported persistence backend: %s", sm.config.Persistence.Backend)
	}
}
