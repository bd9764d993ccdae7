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
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type fieldStoreMock struct {
	mock.Mock
}

func newFieldStoreMock(t *testing.T) *fieldStoreMock {
	m := &fieldStoreMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *fieldStoreMock) CreateField(f Field) error {
	return m.Called(f).Error(0)
}

func (m *fieldStoreMock) GetFieldByID(id string) (*Field, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Field), args.Error(1)
}

func (m *fieldStoreMock) IsFieldNameTaken(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *fieldStoreMock) ListFields(search string) ([]Field, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Field), args.Error(1)
}

func (m *fieldStoreMock) CreateFieldData(data FieldData) error {
	return m.Called(data).Error(0)
}

func (m *fieldStoreMock) ListFieldData(fieldID string) ([]FieldData, error) {
	args := m.Called(fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FieldData), args.Error(1)
}

type FieldServiceTestSuite struct {
	suite.Suite
	store   *fieldStoreMock
	clock   *clock.Mock
	service FieldServiceInterface
}

func TestFieldServiceSuite(t *testing.T) {
	suite.Run(t, new(FieldServiceTestSuite))
}

func (suite *FieldServiceTestSuite) SetupTest() {
	suite.store = newFieldStoreMock(suite.T())
	suite.clock = clock.NewMock()
	suite.clock.Set(testTime)
	suite.service = newFieldService(suite.store, suite.clock)
}

func sizeOf(value float64) *float64 {
	return &value
}

func (suite *FieldServiceTestSuite) TestCreateField() {
	suite.store.On("IsFieldNameTaken", "North").Return(false, nil)
	suite.store.On("CreateField", mock.MatchedBy(func(f Field) bool {
		return f.Name == "North" && f.Size == 2.5 && f.CreatedAt.Equal(testTime) && f.ID != "" &&
			string(f.Geometry) == `{"type":"Polygon","coordinates":[[[0,0],[1,1]]]}`
	})).Return(nil)

	f, svcErr := suite.service.CreateField(FieldRequest{
		Name:     "  North ",
		Geometry: json.RawMessage(`{"type": "Polygon", "coordinates": [[[0, 0], [1, 1]]]}`),
		Size:     sizeOf(2.5),
	})

	suite.Nil(svcErr)
	suite.Require().NotNil(f)
	suite.Equal("North", f.Name)
	suite.Equal(testTime, f.UpdatedAt)
	suite.Equal([]float64{0, 0}, f.MainCoordinate)
	suite.Require().NotNil(f.MapTileURL)
}

func (suite *FieldServiceTestSuite) TestCreateFieldValidation() {
	longName := strings.Repeat("n", maxFieldNameLength+1)
	longDescription := strings.Repeat("d", maxDescriptionLength+1)

	tests := []struct {
		name    string
		request FieldRequest
		code    string
	}{
		{"Missing name", FieldRequest{Name: "  ", Size: sizeOf(1)}, ErrorInvalidFieldName.Code},
		{"Long name", FieldRequest{Name: longName, Size: sizeOf(1)}, ErrorInvalidFieldName.Code},
		{"Long description", FieldRequest{Name: "North", Description: &longDescription, Size: sizeOf(1)},
			ErrorInvalidDescription.Code},
		{"Missing size", FieldRequest{Name: "North"}, ErrorInvalidFieldSize.Code},
		{"Negative size", FieldRequest{Name: "North", Size: sizeOf(-1)}, ErrorInvalidFieldSize.Code},
		{"Scalar geometry", FieldRequest{Name: "North", Size: sizeOf(1), Geometry: json.RawMessage(`"x"`)},
			ErrorInvalidGeometry.Code},
		{"Broken geometry", FieldRequest{Name: "North", Size: sizeOf(1), Geometry: json.RawMessage(`{"a"`)},
			ErrorInvalidGeometry.Code},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			f, svcErr := suite.service.CreateField(tt.request)
			suite.Nil(f)
			suite.Require().NotNil(svcErr)
			suite.Equal(tt.code, svcErr.Code)
		})
	}
}

func (suite *FieldServiceTestSuite) TestCreateFieldDuplicateName() {
	suite.store.On("IsFieldNameTaken", "North").Return(true, nil)

	_, svcErr := suite.service.CreateField(FieldRequest{Name: "North", Size: sizeOf(1)})

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorFieldAlreadyExists.Code, svcErr.Code)
}

func (suite *FieldServiceTestSuite) TestCreateFieldStoreError() {
	suite.store.On("IsFieldNameTaken", "North").Return(false, nil)
	suite.store.On("CreateField", mock.Anything).Return(errors.New("disk full"))

	_, svcErr := suite.service.CreateField(FieldRequest{Name: "North", Size: sizeOf(1)})

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *FieldServiceTestSuite) TestGetField() {
	suite.store.On("GetFieldByID", "f-1").Return(&Field{ID: "f-1", Name: "North"}, nil)
	suite.store.On("GetFieldByID", "missing").Return(nil, ErrFieldNotFound)
	suite.store.On("GetFieldByID", "broken").Return(nil, errors.New("timeout"))

	f, svcErr := suite.service.GetField("f-1")
	suite.Nil(svcErr)
	suite.Equal("North", f.Name)

	_, svcErr = suite.service.GetField("missing")
	suite.Equal(ErrorFieldNotFound.Code, svcErr.Code)

	_, svcErr = suite.service.GetField("broken")
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *FieldServiceTestSuite) TestListFieldsTrimsSearch() {
	suite.store.On("ListFields", "north").Return([]Field{{ID: "f-1"}}, nil)

	fields, svcErr := suite.service.ListFields(" north ")

	suite.Nil(svcErr)
	suite.Len(fields, 1)
}

func (suite *FieldServiceTestSuite) TestCreateFieldData() {
	suite.store.On("GetFieldByID", "f-1").Return(&Field{ID: "f-1"}, nil)
	suite.store.On("CreateFieldData", mock.MatchedBy(func(data FieldData) bool {
		return data.FieldID == "f-1" && *data.Temperature == 28.5 && data.CreatedAt.Equal(testTime)
	})).Return(nil)

	record, svcErr := suite.service.CreateFieldData(FieldDataRequest{
		FieldID:     "f-1",
		Temperature: sizeOf(28.5),
		Location:    json.RawMessage(`{"lat": 7.2}`),
	})

	suite.Nil(svcErr)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.ID)
	suite.Equal(`{"lat":7.2}`, string(record.Location))
}

func (suite *FieldServiceTestSuite) TestCreateFieldDataUnknownField() {
	suite.store.On("GetFieldByID", "missing").Return(nil, ErrFieldNotFound)

	_, svcErr := suite.service.CreateFieldData(FieldDataRequest{FieldID: "missing"})

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidFieldReference.Code, svcErr.Code)
}

func (suite *FieldServiceTestSuite) TestCreateFieldDataRequiresField() {
	_, svcErr := suite.service.CreateFieldData(FieldDataRequest{})

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInvalidFieldReference.Code, svcErr.Code)
}

func (suite *FieldServiceTestSuite) TestListFieldDataError() {
	suite.store.On("ListFieldData", "f-1").Return(nil, errors.New("timeout"))

	_, svcErr := suite.service.ListFieldData("f-1")

	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
}
