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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/agribot/agribot/internal/system/config"
	"github.com/agribot/agribot/internal/system/database/client"
	"github.com/agribot/agribot/internal/system/database/model"
	"github.com/agribot/agribot/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"

	// schemaScriptDir is the directory, relative to the server home, holding the schema scripts.
	schemaScriptDir = "dbscripts"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dbClient client.DBClientInterface
	mutex    sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns the client of the AgriBot database, connecting on first use.
// The returned client manages its own connection pool and is closed by Close.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mutex.RLock()
	if d.dbClient != nil {
		dbClient := d.dbClient
		d.mutex.RUnlock()
		return dbClient, nil
	}
	d.mutex.RUnlock()

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.dbClient != nil {
		return d.dbClient, nil
	}

	runtime := config.GetAgriBotRuntime()
	dbClient, err := openClient(runtime.AgriBotHome, runtime.Config.Database.AgriBot)
	if err != nil {
		return nil, err
	}
	d.dbClient = dbClient
	return d.dbClient, nil
}

// Close closes the database connections.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.dbClient == nil {
		return nil
	}
	err := d.dbClient.Close()
	d.dbClient = nil
	if err != nil {
		return fmt.Errorf("failed to close agribot database client: %w", err)
	}
	return nil
}

// openClient connects to the data source, applies the schema script and wraps the connection
// in a DB client.
func openClient(home string, dataSource config.DataSource) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConf, err := getDBConfig(home, dataSource)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(dbConf.driverName, dbConf.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err), db.Close())
	}

	if dbConf.driverName == dataSourceTypeSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			return nil, multierr.Append(
				fmt.Errorf("failed to enable foreign key constraints for %s: %w", dataSource.Name, err), db.Close())
		}
	}

	if err := applySchema(db, home, dbConf.driverName); err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	logger.Debug("Connected to database", log.String("type", dbConf.driverName),
		log.String("name", dataSource.Name))
	return client.NewDBClient(model.NewDB(db), dbConf.driverName), nil
}

// applySchema runs the idempotent schema script of the driver when it is present in the home.
func applySchema(db *sql.DB, home, driverName string) error {
	scriptPath := filepath.Join(home, schemaScriptDir, driverName+".sql")
	script, err := os.ReadFile(filepath.Clean(scriptPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read schema script %s: %w", scriptPath, err)
	}
	if _, err := db.Exec(string(script)); err != nil {
		return fmt.Errorf("failed to apply schema script %s: %w", scriptPath, err)
	}
	return nil
}

// getDBConfig returns the driver name and DSN of the data source.
func getDBConfig(home string, dataSource config.DataSource) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		sslMode := dataSource.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, sslMode),
		}, nil
	case dataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        path.Join(home, dataSource.Path) + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %q", dataSource.Type)
	}
}
