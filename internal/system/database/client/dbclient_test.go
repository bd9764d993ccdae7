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

package client

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	suite.dbClient = NewDBClient(model.NewDB(suite.mockDB), "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT FIELD_ID, NAME FROM FIELD WHERE FIELD_ID = \\$1",
	}
	rows := sqlmock.NewRows([]string{"FIELD_ID", "NAME"}).
		AddRow("f-1", "North").
		AddRow("f-2", "South")
	suite.mock.ExpectQuery(testQuery.Query).WithArgs("f-1").WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, "f-1")

	suite.NoError(err)
	suite.Len(results, 2)
	suite.Equal("f-1", results[0]["field_id"])
	suite.Equal("North", results[0]["name"])
	suite.Equal("South", results[1]["name"])
}

func (suite *DBClientTestSuite) TestQueryNoRows() {
	testQuery := model.DBQuery{ID: "test_query_empty", Query: "SELECT NAME FROM FIELD"}
	suite.mock.ExpectQuery(testQuery.Query).WillReturnRows(sqlmock.NewRows([]string{"NAME"}))

	results, err := suite.dbClient.Query(testQuery)

	suite.NoError(err)
	suite.NotNil(results)
	suite.Empty(results)
}

func (suite *DBClientTestSuite) TestQueryError() {
	testQuery := model.DBQuery{ID: "test_query_error", Query: "SELECT NAME FROM FIELD"}
	suite.mock.ExpectQuery(testQuery.Query).WillReturnError(errors.New("query failed"))

	results, err := suite.dbClient.Query(testQuery)

	suite.EqualError(err, "query failed")
	suite.Nil(results)
}

func (suite *DBClientTestSuite) TestQueryScanRowError() {
	testQuery := model.DBQuery{ID: "test_query_row_error", Query: "SELECT NAME FROM FIELD"}
	rows := sqlmock.NewRows([]string{"NAME"}).AddRow("North").RowError(0, errors.New("row failed"))
	suite.mock.ExpectQuery(testQuery.Query).WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery)

	suite.Error(err)
	suite.Nil(results)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{ID: "test_execute", Query: "DELETE FROM FIELD WHERE FIELD_ID = \\$1"}
	suite.mock.ExpectExec(testQuery.Query).WithArgs("f-1").WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := suite.dbClient.Execute(testQuery, "f-1")

	suite.NoError(err)
	suite.Equal(int64(1), affected)
}

func (suite *DBClientTestSuite) TestExecuteError() {
	testQuery := model.DBQuery{ID: "test_execute_error", Query: "DELETE FROM FIELD"}
	suite.mock.ExpectExec(testQuery.Query).WillReturnError(errors.New("exec failed"))

	affected, err := suite.dbClient.Execute(testQuery)

	suite.EqualError(err, "exec failed")
	suite.Equal(int64(0), affected)
}

func (suite *DBClientTestSuite) TestDialectSpecificQuery() {
	pgClient := NewDBClient(model.NewDB(suite.mockDB), "postgres")
	testQuery := model.DBQuery{
		ID:            "test_dialect",
		Query:         "INSERT OR REPLACE INTO SEQUENCE_SLOT",
		PostgresQuery: "INSERT INTO SEQUENCE_SLOT ON CONFLICT",
	}
	suite.mock.ExpectExec("INSERT INTO SEQUENCE_SLOT ON CONFLICT").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := pgClient.Execute(testQuery)

	suite.NoError(err)
}

func (suite *DBClientTestSuite) TestTransactionCommit() {
	testQuery := model.DBQuery{ID: "test_tx", Query: "UPDATE SEQUENCE_SLOT SET PAYLOAD = \\$1"}
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(testQuery.Query).WithArgs("[]").WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx()
	suite.Require().NoError(err)
	_, err = tx.Exec(testQuery, "[]")
	suite.NoError(err)
	suite.NoError(tx.Commit())
}

func (suite *DBClientTestSuite) TestTransactionRollback() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectRollback()

	tx, err := suite.dbClient.BeginTx()
	suite.Require().NoError(err)
	suite.NoError(tx.Rollback())
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	suite.mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

	tx, err := suite.dbClient.BeginTx()

	suite.EqualError(err, "begin failed")
	suite.Nil(tx)
}

func (suite *DBClientTestSuite) TestPing() {
	suite.mock.ExpectPing()

	suite.NoError(suite.dbClient.Ping(context.Background()))
}

func (suite *DBClientTestSuite) TestClose() {
	suite.mock.ExpectClose()

	suite.NoError(suite.dbClient.Close())
}
