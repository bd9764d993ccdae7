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

package field

import (
	"net/http"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/system/database/provider"
	"github.com/agribot/agribot/internal/system/middleware"
)

// Initialize creates the field service over the agribot database and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface) FieldServiceInterface {
	store := newCachedBackedFieldStore(newFieldStore(dbProvider))
	service := newFieldService(store, clock.New())
	registerRoutes(mux, newFieldHandler(service))
	return service
}

// registerRoutes registers the routes of field management.
func registerRoutes(mux *http.ServeMux, handler *fieldHandler) {
	noContent := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /core/fields/{$}", handler.HandleFieldListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /core/fields/{$}", handler.HandleFieldPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /core/fields/{$}", noContent, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /core/field-data/{$}", handler.HandleFieldDataListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /core/field-data/{$}", handler.HandleFieldDataPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /core/field-data/{$}", noContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /core/fields/{id}/{$}", handler.HandleFieldGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /core/fields/{id}/{$}", noContent, opts2))
}
