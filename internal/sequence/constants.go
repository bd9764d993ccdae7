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

// Operator notification messages of the editor.
const (
	msgFlowSaved        = "Flow saved successfully"
	msgFlowSaveFailed   = "Failed to save flow"
	msgFlowLoaded       = "Flow loaded successfully"
	msgFlowNotFound     = "No saved flow found"
	msgFlowLoadFailed   = "Failed to load flow"
	msgFlowAlreadyEmpty = "Flow already empty"
	msgFlowCleared      = "Flow cleared"
)

// LoadResult reports the outcome of a load request.
type LoadResult string

const (
	// LoadResultLoaded means the saved sequence replaced the graph.
	LoadResultLoaded LoadResult = "loaded"
	// LoadResultNotFound means no sequence has been saved yet; the graph is unchanged.
	LoadResultNotFound LoadResult = "not_found"
)
