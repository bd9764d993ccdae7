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
	"encoding/json"
	"fmt"
	"math"
)

const (
	// MapTileZoom is the zoom level of the map tile shown for a field.
	MapTileZoom = 17
	// maxMercatorLatitude is the latitude limit of the web mercator projection.
	maxMercatorLatitude = 85.05112878
	mapTileURLFormat    = "https://mt1.google.com/vt/lyrs=y&x=%d&y=%d&z=%d"
)

// MainCoordinate returns the first vertex of the first ring of the geometry. The geometry is either
// a GeoJSON object with a coordinates member or a bare array of rings.
func MainCoordinate(geometry json.RawMessage) ([]float64, bool) {
	if len(geometry) == 0 {
		return nil, false
	}

	var rings [][]json.RawMessage
	var object struct {
		Coordinates [][]json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(geometry, &object); err == nil {
		rings = object.Coordinates
	} else if err := json.Unmarshal(geometry, &rings); err != nil {
		return nil, false
	}
	if len(rings) == 0 || len(rings[0]) == 0 {
		return nil, false
	}

	var vertex []float64
	if err := json.Unmarshal(rings[0][0], &vertex); err != nil || len(vertex) != 2 {
		return nil, false
	}
	return vertex, true
}

// TileXY returns the web mercator tile holding the point at the zoom level. Latitudes are clamped
// to the projection limit and longitudes are wrapped into [-180, 180).
func TileXY(latitude, longitude float64, zoom int) (int, int) {
	numTiles := float64(int(1) << zoom)
	latitude = math.Max(-maxMercatorLatitude, math.Min(maxMercatorLatitude, latitude))
	longitude = math.Mod(math.Mod(longitude+180, 360)+360, 360) - 180

	latRad := latitude * math.Pi / 180
	x := math.RoundToEven((longitude + 180) / 360 * numTiles)
	y := math.RoundToEven((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * numTiles)
	return int(x), int(y)
}

// MapTileURL returns the satellite tile URL for the point at the zoom level.
func MapTileURL(longitude, latitude float64, zoom int) string {
	x, y := TileXY(latitude, longitude, zoom)
	return fmt.Sprintf(mapTileURLFormat, x, y, zoom)
}

// withDerivedLocation fills the main coordinate and map tile of the field from its geometry.
// The first element of the coordinate is the longitude.
func withDerivedLocation(f *Field) *Field {
	coordinate, ok := MainCoordinate(f.Geometry)
	if !ok {
		f.MainCoordinate = nil
		f.MapTileURL = nil
		return f
	}
	url := MapTileURL(coordinate[0], coordinate[1], MapTileZoom)
	f.MainCoordinate = coordinate
	f.MapTileURL = &url
	return f
}
