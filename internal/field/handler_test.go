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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/error/apierror"
)

type FieldHandlerTestSuite struct {
	suite.Suite
	store *fieldStoreMock
	mux   *http.ServeMux
}

func TestFieldHandlerSuite(t *testing.T) {
	suite.Run(t, new(FieldHandlerTestSuite))
}

func (suite *FieldHandlerTestSuite) SetupTest() {
	suite.store = newFieldStoreMock(suite.T())
	clk := clock.NewMock()
	clk.Set(testTime)
	suite.mux = http.NewServeMux()
	registerRoutes(suite.mux, newFieldHandler(newFieldService(suite.store, clk)))
}

func (suite *FieldHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *FieldHandlerTestSuite) errorCode(rr *httptest.ResponseRecorder) string {
	var errResp apierror.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &errResp))
	return errResp.Code
}

func (suite *FieldHandlerTestSuite) TestListFieldsWithSearch() {
	suite.store.On("ListFields", "paddy").Return([]Field{{ID: "f-1", Name: "Paddy"}}, nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/core/fields/?search=paddy", nil))

	suite.Equal(http.StatusOK, rr.Code)
	var fields []Field
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &fields))
	suite.Len(fields, 1)
	suite.Equal("Paddy", fields[0].Name)
}

func (suite *FieldHandlerTestSuite) TestCreateField() {
	suite.store.On("IsFieldNameTaken", "North").Return(false, nil).Once()
	suite.store.On("CreateField", mock.Anything).Return(nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodPost, "/core/fields/",
		strings.NewReader(`{"name":"North","size":2,"geometry":[[[0,0],[1,1]]]}`)))

	suite.Equal(http.StatusCreated, rr.Code)
	var created Field
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &created))
	suite.Equal("North", created.Name)
	suite.Equal([]float64{0, 0}, created.MainCoordinate)
}

func (suite *FieldHandlerTestSuite) TestCreateFieldDuplicate() {
	suite.store.On("IsFieldNameTaken", "North").Return(true, nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodPost, "/core/fields/",
		strings.NewReader(`{"name":"North","size":2}`)))

	suite.Equal(http.StatusConflict, rr.Code)
	suite.Equal(ErrorFieldAlreadyExists.Code, suite.errorCode(rr))
}

func (suite *FieldHandlerTestSuite) TestCreateFieldMalformed() {
	rr := suite.serve(httptest.NewRequest(http.MethodPost, "/core/fields/", strings.NewReader(`{`)))

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidRequestFormat.Code, suite.errorCode(rr))
}

func (suite *FieldHandlerTestSuite) TestGetField() {
	suite.store.On("GetFieldByID", "f-1").Return(&Field{ID: "f-1", Name: "North"}, nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/core/fields/f-1/", nil))

	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), `"name":"North"`)
}

func (suite *FieldHandlerTestSuite) TestGetFieldNotFound() {
	suite.store.On("GetFieldByID", "missing").Return(nil, ErrFieldNotFound).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/core/fields/missing/", nil))

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.Equal(ErrorFieldNotFound.Code, suite.errorCode(rr))
}

func (suite *FieldHandlerTestSuite) TestListFieldDataByField() {
	suite.store.On("ListFieldData", "f-1").Return([]FieldData{{ID: "d-1", FieldID: "f-1"}}, nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/core/field-data/?field=f-1", nil))

	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), `"field":"f-1"`)
}

func (suite *FieldHandlerTestSuite) TestListFieldDataFailure() {
	suite.store.On("ListFieldData", "").Return(nil, errors.New("timeout")).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/core/field-data/", nil))

	suite.Equal(http.StatusInternalServerError, rr.Code)
	suite.Equal(ErrorInternalServerError.Code, suite.errorCode(rr))
}

func (suite *FieldHandlerTestSuite) TestCreateFieldData() {
	suite.store.On("GetFieldByID", "f-1").Return(&Field{ID: "f-1"}, nil).Once()
	suite.store.On("CreateFieldData", mock.Anything).Return(nil).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodPost, "/core/field-data/",
		strings.NewReader(`{"field":"f-1","temperature":28.5,"humidity":70}`)))

	suite.Equal(http.StatusCreated, rr.Code)
	suite.Contains(rr.Body.String(), `"temperature":28.5`)
}

func (suite *FieldHandlerTestSuite) TestCreateFieldDataUnknownField() {
	suite.store.On("GetFieldByID", "missing").Return(nil, ErrFieldNotFound).Once()

	rr := suite.serve(httptest.NewRequest(http.MethodPost, "/core/field-data/",
		strings.NewReader(`{"field":"missing"}`)))

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Equal(ErrorInvalidFieldReference.Code, suite.errorCode(rr))
}
