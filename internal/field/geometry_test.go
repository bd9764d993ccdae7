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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
		want     []float64
		ok       bool
	}{
		{"GeoJSON polygon", `{"type":"Polygon","coordinates":[[[80.1,7.2],[80.2,7.3],[80.1,7.2]]]}`,
			[]float64{80.1, 7.2}, true},
		{"Bare ring array", `[[[79.86,6.92],[79.87,6.93]]]`, []float64{79.86, 6.92}, true},
		{"Empty coordinates", `{"type":"Polygon","coordinates":[]}`, nil, false},
		{"Empty ring", `[[]]`, nil, false},
		{"Vertex with altitude", `[[[79.86,6.92,12]]]`, nil, false},
		{"Not JSON", `polygon`, nil, false},
		{"Missing", ``, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MainCoordinate(json.RawMessage(tt.geometry))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTileXY(t *testing.T) {
	x, y := TileXY(0, 0, MapTileZoom)
	assert.Equal(t, 65536, x)
	assert.Equal(t, 65536, y)

	// Halfway tiles round to the even neighbour.
	x, _ = TileXY(0, -90, 1)
	assert.Equal(t, 0, x)
	x, _ = TileXY(0, 90, 1)
	assert.Equal(t, 2, x)
}

func TestTileXYClampsLatitude(t *testing.T) {
	xNorth, yNorth := TileXY(90, 0, 1)
	xLimit, yLimit := TileXY(maxMercatorLatitude, 0, 1)
	assert.Equal(t, xLimit, xNorth)
	assert.Equal(t, yLimit, yNorth)
	assert.Equal(t, 0, yNorth)

	_, ySouth := TileXY(-90, 0, 1)
	assert.Equal(t, 2, ySouth)
}

func TestTileXYWrapsLongitude(t *testing.T) {
	xEast, _ := TileXY(0, 180, 1)
	xWest, _ := TileXY(0, -180, 1)
	assert.Equal(t, 0, xEast)
	assert.Equal(t, 0, xWest)

	xWrapped, _ := TileXY(0, 270, 4)
	xPlain, _ := TileXY(0, -90, 4)
	assert.Equal(t, xPlain, xWrapped)
}

func TestMapTileURL(t *testing.T) {
	assert.Equal(t, "https://mt1.google.com/vt/lyrs=y&x=65536&y=65536&z=17", MapTileURL(0, 0, MapTileZoom))
}

func TestWithDerivedLocation(t *testing.T) {
	f := withDerivedLocation(&Field{Geometry: json.RawMessage(`[[[0,0],[1,1]]]`)})
	assert.Equal(t, []float64{0, 0}, f.MainCoordinate)
	if assert.NotNil(t, f.MapTileURL) {
		assert.Equal(t, "https://mt1.google.com/vt/lyrs=y&x=65536&y=65536&z=17", *f.MapTileURL)
	}

	f = withDerivedLocation(&Field{})
	assert.Nil(t, f.MainCoordinate)
	assert.Nil(t, f.MapTileURL)
}
