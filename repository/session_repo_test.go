package repository

import (
	"context"
	"errors"
	"testing"

	"dalshop-gateway/dal"
	"dalshop-gateway/models"
	"dalshop-gateway/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{})                 { m.Called(args...) }
func (m *MockLogger) Debugf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Info(args ...interface{})                  { m.Called(args...) }
func (m *MockLogger) Infof(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Warn(args ...interface{})                  { m.Called(args...) }
func (m *MockLogger) Warnf(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockLogger) Error(args ...interface{})                 { m.Called(args...) }
func (m *MockLogger) Errorf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) Fatal(args ...interface{})                 { m.Called(args...) }
func (m *MockLogger) Fatalf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	m.Called(fields)
	return m
}

func newQuietLogger() *MockLogger {
	m := &MockLogger{}
	m.On("Debug", mock.Anything).Return().Maybe()
	m.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Info", mock.Anything).Return().Maybe()
	m.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Warn", mock.Anything).Return().Maybe()
	m.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Error", mock.Anything).Return().Maybe()
	m.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	return m
}

// MockDatabaseClient implements the database client interface for testing
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) GetItem(ctx context.Context, tableName, key, value string, result interface{}) error {
	args := m.Called(ctx, tableName, key, value, result)
	return args.Error(0)
}

func (m *MockDatabaseClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *MockDatabaseClient) DeleteItem(ctx context.Context, tableName, key, value string) error {
	args := m.Called(ctx, tableName, key, value)
	return args.Error(0)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	return args.Error(0)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

// SessionRepositoryTestSuite defines a test suite for the session repository
type SessionRepositoryTestSuite struct {
	suite.Suite
	mockDB *MockDatabaseClient
	repo   *SessionRepository
	ctx    context.Context
}

// SetupTest runs before each test
func (suite *SessionRepositoryTestSuite) SetupTest() {
	suite.mockDB = &MockDatabaseClient{}
	cfg := &models.Config{DynamoDBTablePrefix: "test"}
	suite.repo = NewSessionRepository(suite.mockDB, cfg, newQuietLogger())
	suite.ctx = context.Background()
}

func (suite *SessionRepositoryTestSuite) TestCreateAssignsIDAndTimestamps() {
	suite.mockDB.On("PutItem", suite.ctx, "test_sessions", mock.AnythingOfType("*models.Session")).Return(nil)

	created, err := suite.repo.Create(suite.ctx, &models.Session{Token: "token-abc"})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ID)
	assert.False(suite.T(), created.CreatedAt.IsZero())
	assert.Equal(suite.T(), created.CreatedAt, created.UpdatedAt)
	suite.mockDB.AssertExpectations(suite.T())
}

func (suite *SessionRepositoryTestSuite) TestGetEmptyID() {
	session, err := suite.repo.Get(suite.ctx, "")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), session)
	suite.mockDB.AssertNotCalled(suite.T(), "GetItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SessionRepositoryTestSuite) TestGetMissingSessionIsNotAnError() {
	suite.mockDB.On("GetItem", suite.ctx, "test_sessions", "id", "gone", mock.Anything).
		Return(dal.ErrItemNotFound)

	session, err := suite.repo.Get(suite.ctx, "gone")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), session)
}

func (suite *SessionRepositoryTestSuite) TestGetDatabaseError() {
	suite.mockDB.On("GetItem", suite.ctx, "test_sessions", "id", "sess-1", mock.Anything).
		Return(errors.New("dynamodb down"))

	session, err := suite.repo.Get(suite.ctx, "sess-1")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), session)
}

func (suite *SessionRepositoryTestSuite) TestGetPopulatesSession() {
	suite.mockDB.On("GetItem", suite.ctx, "test_sessions", "id", "sess-1", mock.Anything).
		Run(func(args mock.Arguments) {
			s := args.Get(4).(*models.Session)
			s.ID = "sess-1"
			s.Token = "token-abc"
		}).Return(nil)

	session, err := suite.repo.Get(suite.ctx, "sess-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sess-1", session.ID)
	assert.True(suite.T(), session.Authenticated())
}

func (suite *SessionRepositoryTestSuite) TestSaveBumpsUpdatedAt() {
	session := &models.Session{ID: "sess-1", Token: "token-abc"}
	suite.mockDB.On("PutItem", suite.ctx, "test_sessions", session).Return(nil)

	assert.NoError(suite.T(), suite.repo.Save(suite.ctx, session))
	assert.False(suite.T(), session.UpdatedAt.IsZero())
}

func (suite *SessionRepositoryTestSuite) TestClearEmptyIDIsNoop() {
	assert.NoError(suite.T(), suite.repo.Clear(suite.ctx, ""))
	suite.mockDB.AssertNotCalled(suite.T(), "DeleteItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SessionRepositoryTestSuite) TestClearAndInvalidate() {
	suite.mockDB.On("DeleteItem", suite.ctx, "test_sessions", "id", "sess-1").Return(nil).Twice()

	assert.NoError(suite.T(), suite.repo.Clear(suite.ctx, "sess-1"))
	assert.NoError(suite.T(), suite.repo.Invalidate(suite.ctx, "sess-1"))
	suite.mockDB.AssertExpectations(suite.T())
}

func (suite *SessionRepositoryTestSuite) TestAll() {
	suite.mockDB.On("Scan", suite.ctx, "test_sessions", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]*models.Session)
			*out = []*models.Session{{ID: "a"}, {ID: "b"}}
		}).Return(nil)

	sessions, err := suite.repo.All(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sessions, 2)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
