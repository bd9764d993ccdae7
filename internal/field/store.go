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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agribot/agribot/internal/system/database/provider"
	"github.com/agribot/agribot/internal/system/log"
)

// ErrFieldNotFound is returned when a field does not exist.
var ErrFieldNotFound = errors.New("field not found")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// fieldStoreInterface defines the persistence operations of fields and their readings.
type fieldStoreInterface interface {
	CreateField(f Field) error
	GetFieldByID(id string) (*Field, error)
	IsFieldNameTaken(name string) (bool, error)
	ListFields(search string) ([]Field, error)
	CreateFieldData(data FieldData) error
	ListFieldData(fieldID string) ([]FieldData, error)
}

// fieldStore is the database implementation of fieldStoreInterface.
type fieldStore struct {
	dbProvider provider.DBProviderInterface
	logger     *log.Logger
}

// newFieldStore creates a new field store over the agribot database.
func newFieldStore(dbProvider provider.DBProviderInterface) fieldStoreInterface {
	return &fieldStore{
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldStore")),
	}
}

// CreateField inserts a new field.
func (s *fieldStore) CreateField(f Field) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateField, f.ID, f.Name, nullableString(f.Description),
		nullableJSON(f.Geometry), f.Size, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetFieldByID returns the field with the given id, or ErrFieldNotFound.
func (s *fieldStore) GetFieldByID(id string) (*Field, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetFieldByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		s.logger.Debug("Field not found", log.String("id", id))
		return nil, ErrFieldNotFound
	}
	if len(results) > 1 {
		return nil, fmt.Errorf("multiple fields found for id: %s", id)
	}

	return buildFieldFromResultRow(results[0])
}

// IsFieldNameTaken reports whether a field with the given name exists.
func (s *fieldStore) IsFieldNameTaken(name string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountFieldsByName, name)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return false, nil
	}

	total, ok := int64Value(results[0]["total"])
	if !ok {
		return false, fmt.Errorf("failed to parse total as integer")
	}
	return total > 0, nil
}

// ListFields returns the fields whose name contains search, ignoring case, newest first.
// An empty search returns every field.
func (s *fieldStore) ListFields(search string) ([]Field, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	var results []map[string]interface{}
	if search == "" {
		results, err = dbClient.Query(queryListFields)
	} else {
		results, err = dbClient.Query(querySearchFields, likePattern(search))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	fields := make([]Field, 0, len(results))
	for _, row := range results {
		f, err := buildFieldFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build field from result row: %w", err)
		}
		fields = append(fields, *f)
	}
	return fields, nil
}

// CreateFieldData inserts a set of readings.
func (s *fieldStore) CreateFieldData(data FieldData) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateFieldData, data.ID, data.FieldID, nullableFloat(data.Temperature),
		nullableFloat(data.Humidity), nullableFloat(data.SoilMoisture), nullableString(data.Img),
		nullableString(data.Description), nullableJSON(data.Location), data.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// ListFieldData returns the readings of a field, or of every field when fieldID is empty, newest first.
func (s *fieldStore) ListFieldData(fieldID string) ([]FieldData, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	var results []map[string]interface{}
	if fieldID == "" {
		results, err = dbClient.Query(queryListFieldData)
	} else {
		results, err = dbClient.Query(queryListFieldDataByField, fieldID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	records := make([]FieldData, 0, len(results))
	for _, row := range results {
		record, err := buildFieldDataFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build field data from result row: %w", err)
		}
		records = append(records, *record)
	}
	return records, nil
}

// buildFieldFromResultRow constructs a Field from a database result row.
func buildFieldFromResultRow(row map[string]interface{}) (*Field, error) {
	id, ok := stringValue(row["field_id"])
	if !ok {
		return nil, fmt.Errorf("failed to parse field_id as string")
	}
	name, ok := stringValue(row["name"])
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}
	size, ok := float64Value(row["size"])
	if !ok {
		return nil, fmt.Errorf("failed to parse size as number")
	}
	createdAt, err := timeValue(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := timeValue(row["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	f := &Field{
		ID:          id,
		Name:        name,
		Description: optionalString(row["description"]),
		Size:        size,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if geometry, ok := stringValue(row["geometry"]); ok && geometry != "" {
		f.Geometry = json.RawMessage(geometry)
	}
	return withDerivedLocation(f), nil
}

// buildFieldDataFromResultRow constructs a FieldData from a database result row.
func buildFieldDataFromResultRow(row map[string]interface{}) (*FieldData, error) {
	id, ok := stringValue(row["data_id"])
	if !ok {
		return nil, fmt.Errorf("failed to parse data_id as string")
	}
	fieldID, ok := stringValue(row["field_id"])
	if !ok {
		return nil, fmt.Errorf("failed to parse field_id as string")
	}
	createdAt, err := timeValue(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	record := &FieldData{
		ID:           id,
		FieldID:      fieldID,
		Temperature:  optionalFloat(row["temperature"]),
		Humidity:     optionalFloat(row["humidity"]),
		SoilMoisture: optionalFloat(row["soil_moisture"]),
		Img:          optionalString(row["img"]),
		Description:  optionalString(row["description"]),
		CreatedAt:    createdAt,
	}
	if location, ok := stringValue(row["location"]); ok && location != "" {
		record.Location = json.RawMessage(location)
	}
	return record, nil
}

// likePattern builds a case-insensitive contains pattern with LIKE wildcards escaped.
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(search))
	return "%" + escaped + "%"
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func optionalString(value interface{}) *string {
	s, ok := stringValue(value)
	if !ok {
		return nil
	}
	return &s
}

func float64Value(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func optionalFloat(value interface{}) *float64 {
	f, ok := float64Value(value)
	if !ok {
		return nil
	}
	return &f
}

func int64Value(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// timeValue reads a timestamp column, which is a time.Time on postgres and text on sqlite.
func timeValue(value interface{}) (time.Time, error) {
	if t, ok := value.(time.Time); ok {
		return t.UTC(), nil
	}
	text, ok := stringValue(value)
	if !ok {
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", value)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", text)
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableJSON(value json.RawMessage) interface{} {
	if len(value) == 0 || string(value) == "null" {
		return nil
	}
	return string(value)
}
