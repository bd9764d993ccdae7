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

// Package field manages the fields the robot works on and the readings taken on them.
package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/system/error/serviceerror"
	"github.com/agribot/agribot/internal/system/log"
	sysutils "github.com/agribot/agribot/internal/system/utils"
)

const (
	maxFieldNameLength   = 100
	maxDescriptionLength = 200
)

// FieldServiceInterface defines the field management operations.
type FieldServiceInterface interface {
	ListFields(search string) ([]Field, *serviceerror.ServiceError)
	CreateField(request FieldRequest) (*Field, *serviceerror.ServiceError)
	GetField(id string) (*Field, *serviceerror.ServiceError)
	ListFieldData(fieldID string) ([]FieldData, *serviceerror.ServiceError)
	CreateFieldData(request FieldDataRequest) (*FieldData, *serviceerror.ServiceError)
}

// fieldService is the default implementation of FieldServiceInterface.
type fieldService struct {
	store  fieldStoreInterface
	clock  clock.Clock
	logger *log.Logger
}

// newFieldService creates a new instance of fieldService.
func newFieldService(store fieldStoreInterface, clk clock.Clock) FieldServiceInterface {
	return &fieldService{
		store:  store,
		clock:  clk,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FieldService")),
	}
}

// ListFields lists the fields whose name contains the search text, newest first.
func (s *fieldService) ListFields(search string) ([]Field, *serviceerror.ServiceError) {
	fields, err := s.store.ListFields(strings.TrimSpace(search))
	if err != nil {
		s.logger.Error("Failed to list fields", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return fields, nil
}

// CreateField validates and stores a new field.
func (s *fieldService) CreateField(request FieldRequest) (*Field, *serviceerror.ServiceError) {
	name := sysutils.SanitizeString(request.Name)
	if name == "" || utf8.RuneCountInString(name) > maxFieldNameLength {
		return nil, &ErrorInvalidFieldName
	}
	description, svcErr := sanitizeDescription(request.Description)
	if svcErr != nil {
		return nil, svcErr
	}
	if request.Size == nil || *request.Size < 0 {
		return nil, &ErrorInvalidFieldSize
	}
	geometry, ok := normalizeGeometry(request.Geometry)
	if !ok || (geometry != nil && geometry[0] != '{' && geometry[0] != '[') {
		return nil, &ErrorInvalidGeometry
	}

	taken, err := s.store.IsFieldNameTaken(name)
	if err != nil {
		s.logger.Error("Failed to check field name", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if taken {
		return nil, &ErrorFieldAlreadyExists
	}

	now := s.clock.Now().UTC()
	f := &Field{
		ID:          sysutils.GenerateUUID(),
		Name:        name,
		Description: description,
		Geometry:    geometry,
		Size:        *request.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	withDerivedLocation(f)

	if err := s.store.CreateField(*f); err != nil {
		s.logger.Error("Failed to create field", log.String("name", name), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	s.logger.Debug("Field created", log.String("id", f.ID), log.String("name", name))
	return f, nil
}

// GetField returns the field with the given id.
func (s *fieldService) GetField(id string) (*Field, *serviceerror.ServiceError) {
	f, err := s.store.GetFieldByID(strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return nil, &ErrorFieldNotFound
		}
		s.logger.Error("Failed to get field", log.String("id", id), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return f, nil
}

// ListFieldData lists the readings of a field, or of every field when fieldID is empty.
func (s *fieldService) ListFieldData(fieldID string) ([]FieldData, *serviceerror.ServiceError) {
	records, err := s.store.ListFieldData(strings.TrimSpace(fieldID))
	if err != nil {
		s.logger.Error("Failed to list field data", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return records, nil
}

// CreateFieldData records a set of readings on an existing field.
func (s *fieldService) CreateFieldData(request FieldDataRequest) (*FieldData, *serviceerror.ServiceError) {
	fieldID := strings.TrimSpace(request.FieldID)
	if fieldID == "" {
		return nil, &ErrorInvalidFieldReference
	}
	description, svcErr := sanitizeDescription(request.Description)
	if svcErr != nil {
		return nil, svcErr
	}
	location, ok := normalizeGeometry(request.Location)
	if !ok {
		return nil, serviceerror.CustomServiceError(ErrorInvalidRequestFormat, "The location must be valid JSON")
	}

	if _, err := s.store.GetFieldByID(fieldID); err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return nil, &ErrorInvalidFieldReference
		}
		s.logger.Error("Failed to get field", log.String("id", fieldID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	var img *string
	if request.Img != nil {
		trimmed := strings.TrimSpace(*request.Img)
		img = &trimmed
	}

	record := &FieldData{
		ID:           sysutils.GenerateUUID(),
		FieldID:      fieldID,
		Temperature:  request.Temperature,
		Humidity:     request.Humidity,
		SoilMoisture: request.SoilMoisture,
		Img:          img,
		Description:  description,
		Location:     location,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.store.CreateFieldData(*record); err != nil {
		s.logger.Error("Failed to create field data", log.String("field", fieldID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return record, nil
}

func sanitizeDescription(description *string) (*string, *serviceerror.ServiceError) {
	if description == nil {
		return nil, nil
	}
	sanitized := sysutils.SanitizeString(*description)
	if utf8.RuneCountInString(sanitized) > maxDescriptionLength {
		return nil, &ErrorInvalidDescription
	}
	return &sanitized, nil
}

// normalizeGeometry compacts a JSON document. A missing or null document yields nil.
func normalizeGeometry(raw json.RawMessage) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, false
	}
	return json.RawMessage(buf.Bytes()), true
}
