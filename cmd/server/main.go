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

// Package main is the entry point for starting the AgriBot server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/agribot/agribot/internal/system/cert"
	"github.com/agribot/agribot/internal/system/config"
	"github.com/agribot/agribot/internal/system/database/provider"
	"github.com/agribot/agribot/internal/system/log"
	"github.com/agribot/agribot/internal/system/managers"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := log.GetLogger()

	agriBotHome := getAgriBotHome(logger)

	cfg := initAgriBotConfigurations(logger, agriBotHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux, serviceManager := initMultiplexer(ctx, logger, cfg)

	server, serverAddr := createHTTPServer(logger, cfg, mux)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if cfg.Server.HTTPOnly {
			logger.Info("TLS is not enabled, starting server without TLS")
			return startHTTPServer(logger, server, serverAddr)
		}
		return startTLSServer(logger, cfg, server, serverAddr, agriBotHome)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutting down AgriBot server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the server gracefully", log.Error(err))
		}
		return serviceManager.Close()
	})

	if err := group.Wait(); err != nil {
		logger.Fatal("AgriBot server stopped with an error", log.Error(err))
	}
	logger.Info("AgriBot server stopped")
	logger.Sync()
}

// getAgriBotHome retrieves and returns the AgriBot home directory.
func getAgriBotHome(logger *log.Logger) string {
	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("agribotHome", "", "Path to AgriBot home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using agribotHome from command line argument", log.String("agribotHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else if envHome := os.Getenv("AGRIBOT_HOME"); envHome != "" {
		logger.Info("Using AGRIBOT_HOME from the environment", log.String("agribotHome", envHome))
		projectHome = envHome
	} else {
		// If no home is given, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initAgriBotConfigurations initializes the AgriBot configurations.
func initAgriBotConfigurations(logger *log.Logger, agriBotHome string) *config.Config {
	// Secrets referenced from deployment.yaml may live in a .env file next to it.
	envFilePath := path.Join(agriBotHome, ".env")
	if err := godotenv.Load(envFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Fatal("Failed to load environment file", log.String("path", envFilePath), log.Error(err))
	}

	// Load the configurations.
	configFilePath := path.Join(agriBotHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	// Initialize runtime configurations.
	if err := config.InitializeAgriBotRuntime(agriBotHome, cfg); err != nil {
		logger.Fatal("Failed to initialize agribot runtime", log.Error(err))
	}

	return cfg
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(ctx context.Context, logger *log.Logger,
	cfg *config.Config) (*http.ServeMux, managers.ServiceManagerInterface) {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, provider.GetDBProvider())

	// Register the services.
	if err := serviceManager.RegisterServices(ctx); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	return mux, serviceManager
}

// startTLSServer serves HTTPS with the configured certificate until the server is shut down.
func startTLSServer(logger *log.Logger, cfg *config.Config, server *http.Server, serverAddr,
	agriBotHome string) error {
	// Get TLS configuration from the certificate and key files.
	tlsConfig, err := cert.GetTLSConfig(cfg, agriBotHome)
	if err != nil {
		return fmt.Errorf("failed to load TLS configuration: %w", err)
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to start TLS listener: %w", err)
	}

	logger.Info("AgriBot server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve requests: %w", err)
	}
	return nil
}

// startHTTPServer serves plain HTTP until the server is shut down.
func startHTTPServer(logger *log.Logger, server *http.Server, serverAddr string) error {
	logger.Info("AgriBot server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP requests: %w", err)
	}
	return nil
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	// Build the server address using hostname and port from the configurations.
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
