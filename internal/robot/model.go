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

const (
	gpsStatusValid = "valid"
	dhtStatusOK    = "ok"
)

// GPSReading is the position reported by the on-robot GPS receiver.
type GPSReading struct {
	Status     string  `json:"status"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Satellites int     `json:"satellites,omitempty"`
}

// SensorReading is the environment reading of the on-robot sensors.
type SensorReading struct {
	DHTStatus           string  `json:"dht_status"`
	Temperature         float64 `json:"temperature"`
	Humidity            float64 `json:"humidity"`
	SoilMoisturePercent float64 `json:"soil_moisture_percent"`
}

// CommandRequest is a single live-control command.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse acknowledges a command written to the trigger channel.
type CommandResponse struct {
	Command string `json:"command"`
	Status  string `json:"status"`
}
