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

package sequence

import (
	"context"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/dispatch"
	"github.com/agribot/agribot/internal/sequence/catalog"
	"github.com/agribot/agribot/internal/sequence/executor"
	"github.com/agribot/agribot/internal/sequence/graph"
	"github.com/agribot/agribot/internal/sequence/notify"
	"github.com/agribot/agribot/internal/sequence/store"
	"github.com/agribot/agribot/internal/system/config"
	"github.com/agribot/agribot/internal/system/middleware"
)

// Initialize creates the sequence service, restores the saved sequence and registers its routes.
func Initialize(ctx context.Context, mux *http.ServeMux, dispatcher dispatch.DispatcherInterface,
	snapshots store.SnapshotStoreInterface, cfg *config.Config) SequenceServiceInterface {
	clk := clock.New()
	feed := notify.NewFeed(cfg.Notification.Capacity, clk)
	graphStore := graph.NewStore()
	exec := executor.NewExecutor(dispatcher, graphStore, feed, clk,
		time.Duration(cfg.Executor.DispatchTimeout)*time.Second)

	service := newSequenceService(catalog.Default(), graphStore, exec, snapshots, feed)
	service.RestoreGraph(ctx)

	registerRoutes(mux, newSequenceHandler(service))
	return service
}

// registerRoutes registers the routes of the sequence editor.
func registerRoutes(mux *http.ServeMux, handler *sequenceHandler) {
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /autonomous/commands", handler.HandleCommandListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /autonomous/notifications",
		handler.HandleNotificationListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/commands", noContent, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/notifications", noContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /autonomous/graph", handler.HandleGraphGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /autonomous/graph", handler.HandleGraphDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/graph", noContent, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/graph/save", handler.HandleGraphSaveRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/graph/load", handler.HandleGraphLoadRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/nodes", handler.HandleNodePostRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/nodes/{id}/duplicate",
		handler.HandleNodeDuplicateRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/edges", handler.HandleEdgePostRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /autonomous/executions", handler.HandleExecutionPostRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/graph/save", noContent, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/graph/load", noContent, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/nodes", noContent, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/nodes/{id}/duplicate", noContent, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/edges", noContent, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/executions", noContent, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "PUT, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /autonomous/nodes/{id}", handler.HandleNodePutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("DELETE /autonomous/nodes/{id}", handler.HandleNodeDeleteRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("PUT /autonomous/nodes/{id}/position",
		handler.HandleNodePositionPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("PUT /autonomous/selection", handler.HandleSelectionPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("DELETE /autonomous/edges/{id}", handler.HandleEdgeDeleteRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/nodes/{id}", noContent, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/nodes/{id}/position", noContent, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/selection", noContent, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/edges/{id}", noContent, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /autonomous/executions/current",
		handler.HandleExecutionGetRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("DELETE /autonomous/executions/current",
		handler.HandleExecutionDeleteRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /autonomous/executions/current", noContent, opts5))
}
