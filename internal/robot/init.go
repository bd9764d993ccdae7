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

package robot

import (
	"net/http"

	"github.com/agribot/agribot/internal/dispatch"
	"github.com/agribot/agribot/internal/system/config"
	syshttp "github.com/agribot/agribot/internal/system/http"
	"github.com/agribot/agribot/internal/system/middleware"
)

// Initialize creates the live-control service and registers its routes.
func Initialize(mux *http.ServeMux, dispatcher dispatch.DispatcherInterface,
	cfg config.RobotConfig) RobotServiceInterface {
	client := NewRobotClient(cfg, syshttp.NewHTTPClientWithSeconds(cfg.Timeout))
	service := newRobotService(dispatcher, client)
	registerRoutes(mux, newRobotHandler(service))
	return service
}

// registerRoutes registers the routes of the live-control page.
func registerRoutes(mux *http.ServeMux, handler *robotHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /controller/commands", handler.HandleCommandPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /controller/commands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /controller/gps", handler.HandleGPSGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("GET /controller/sensor", handler.HandleSensorGetRequest, opts2))
}
