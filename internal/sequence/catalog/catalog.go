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

// Package catalog provides the built-in vocabulary of commands that can be placed on a sequence.
package catalog

import (
	"errors"
	"strings"
)

// Category groups command definitions in the palette.
type Category string

const (
	// CategoryBasic holds the drive commands.
	CategoryBasic Category = "basic"
	// CategoryAdvanced holds the servo commands.
	CategoryAdvanced Category = "advanced"
	// CategoryTiming holds pure waiting steps.
	CategoryTiming Category = "timing"
	// CategoryDefault is used for anything without a known category.
	CategoryDefault Category = "default"
)

var (
	// ErrEmptyCommand is returned when a definition carries no wire command.
	ErrEmptyCommand = errors.New("command must not be empty")
	// ErrEmptyLabel is returned when a definition carries no label.
	ErrEmptyLabel = errors.New("label must not be empty")
	// ErrNegativeDelay is returned when a definition carries a negative delay.
	ErrNegativeDelay = errors.New("delay must not be negative")
)

// CommandDefinition describes an executable step: the wire command relayed to the robot, the label
// shown to the operator, the default wait after dispatch and the palette category.
type CommandDefinition struct {
	Command  string   `json:"command"`
	Label    string   `json:"label"`
	DelayMs  int      `json:"delay"`
	Category Category `json:"category"`
}

// defaultDefinitions is the built-in vocabulary, in palette order.
var defaultDefinitions = []CommandDefinition{
	{Command: "f", Label: "Forward", DelayMs: 3000, Category: CategoryBasic},
	{Command: "l", Label: "Left", DelayMs: 3000, Category: CategoryBasic},
	{Command: "s", Label: "Stop", DelayMs: 0, Category: CategoryBasic},
	{Command: "r", Label: "Right", DelayMs: 3000, Category: CategoryBasic},
	{Command: "b", Label: "Backward", DelayMs: 3000, Category: CategoryBasic},
	{Command: "send", Label: "Send", DelayMs: 3000, Category: CategoryBasic},
	{Command: "servo 2 80", Label: "Base Rotation Left", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 2 63", Label: "Base Rotation Stop", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 2 30", Label: "Base Rotation Right", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 3 10", Label: "Camera Angle Up", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 3 40", Label: "Camera Angle Middle", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 3 90", Label: "Camera Angle Down", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 1 90", Label: "Soil Sensor In", DelayMs: 3000, Category: CategoryAdvanced},
	{Command: "servo 1 120", Label: "Soil Sensor Out", DelayMs: 3000, Category: CategoryAdvanced},
}

// Catalog is an immutable list of command definitions.
type Catalog struct {
	definitions []CommandDefinition
	byCommand   map[string]CommandDefinition
}

// Default returns the catalog of built-in commands.
func Default() *Catalog {
	return New(defaultDefinitions)
}

// New builds a catalog from the given definitions. The slice is copied.
// When two definitions share a wire command the first one wins for Lookup.
func New(definitions []CommandDefinition) *Catalog {
	c := &Catalog{
		definitions: make([]CommandDefinition, len(definitions)),
		byCommand:   make(map[string]CommandDefinition, len(definitions)),
	}
	copy(c.definitions, definitions)
	for _, def := range c.definitions {
		if _, exists := c.byCommand[def.Command]; !exists {
			c.byCommand[def.Command] = def
		}
	}
	return c
}

// All returns a copy of every definition in palette order.
func (c *Catalog) All() []CommandDefinition {
	all := make([]CommandDefinition, len(c.definitions))
	copy(all, c.definitions)
	return all
}

// ByCategory returns the definitions of the given category in palette order.
func (c *Catalog) ByCategory(category Category) []CommandDefinition {
	matches := make([]CommandDefinition, 0)
	for _, def := range c.definitions {
		if def.Category == category {
			matches = append(matches, def)
		}
	}
	return matches
}

// Lookup returns the definition of the given wire command.
func (c *Catalog) Lookup(command string) (CommandDefinition, bool) {
	def, ok := c.byCommand[command]
	return def, ok
}

// ParseCategory maps a category name to a Category. Unknown and empty names map to CategoryDefault.
func ParseCategory(name string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(name))) {
	case CategoryBasic:
		return CategoryBasic
	case CategoryAdvanced:
		return CategoryAdvanced
	case CategoryTiming:
		return CategoryTiming
	default:
		return CategoryDefault
	}
}

// Validate checks that a definition can be executed.
func Validate(def CommandDefinition) error {
	if strings.TrimSpace(def.Command) == "" {
		return ErrEmptyCommand
	}
	if strings.TrimSpace(def.Label) == "" {
		return ErrEmptyLabel
	}
	if def.DelayMs < 0 {
		return ErrNegativeDelay
	}
	return nil
}
