package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/lucasll37/myfinanceapp-backend/internal/handlers"
	"github.com/lucasll37/myfinanceapp-backend/internal/platform/config"
	"github.com/lucasll37/myfinanceapp-backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// --- Mock TransactionSvcFacade ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.TransactionWithRefs, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionWithRefs), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockTransactionService
	userID  string
	token   string
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockSvc = new(MockTransactionService)
	s.userID = uuid.NewString()

	token, err := utils.GenerateJWT(s.userID, testJWTSecret, time.Hour, "test")
	s.Require().NoError(err)
	s.token = token

	cfg := &config.Config{JWTSecret: testJWTSecret, AuthRateLimit: "100-M"}
	services := &portssvc.ServiceContainer{Transaction: s.mockSvc}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, services)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_ReturnsDerivedType() {
	accountID := uuid.NewString()
	returned := &domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:   "Groceries",
		Amount:        decimal.NewFromFloat(-45.90),
		Type:          domain.TransactionExpense,
		CreatedBy:     s.userID,
	}
	s.mockSvc.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), s.userID).Return(returned, nil).Once()

	w := s.request(http.MethodPost, "/api/v1/transactions", gin.H{
		"accountID":   accountID,
		"date":        "2025-03-10",
		"description": "Groceries",
		"amount":      "-45.90",
	})

	assert.Equal(s.T(), http.StatusCreated, w.Code)
	var res dto.TransactionEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), "transaction created successfully", res.Message)
	assert.Equal(s.T(), "expense", res.Transaction.Type)
	assert.Equal(s.T(), "2025-03-10", res.Transaction.Date)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_WrappedWithoutMessage() {
	transactionID := uuid.NewString()
	returned := &domain.Transaction{
		TransactionID: transactionID,
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:   "Groceries",
		Amount:        decimal.NewFromFloat(-45.90),
		Type:          domain.TransactionExpense,
	}
	s.mockSvc.On("GetTransaction", mock.Anything, transactionID, s.userID).Return(returned, nil).Once()

	w := s.request(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var res dto.TransactionEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(s.T(), res.Message)
	assert.Equal(s.T(), transactionID, res.Transaction.TransactionID)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_BindFailureListsFields() {
	w := s.request(http.MethodPost, "/api/v1/transactions", gin.H{
		"date":   "not-a-date",
		"amount": "10",
	})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	var res dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), http.StatusBadRequest, res.StatusCode)
	assert.NotEmpty(s.T(), res.Errors)
	s.mockSvc.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_EmptyPatchIs400() {
	transactionID := uuid.NewString()
	s.mockSvc.On("UpdateTransaction", mock.Anything, transactionID, mock.Anything, s.userID).Return(nil, apperrors.ErrEmptyPatch).Once()

	w := s.request(http.MethodPut, "/api/v1/transactions/"+transactionID, gin.H{})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	var res dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), "no fields to update", res.Message)
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFoundEnvelope() {
	transactionID := uuid.NewString()
	s.mockSvc.On("GetTransaction", mock.Anything, transactionID, s.userID).Return(nil, apperrors.ErrNotFound).Once()

	w := s.request(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	var res dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), http.StatusNotFound, res.StatusCode)
	assert.Equal(s.T(), "record not found", res.Message)
	assert.Empty(s.T(), res.Stack)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_ReturnsMessage() {
	transactionID := uuid.NewString()
	s.mockSvc.On("DeleteTransaction", mock.Anything, transactionID, s.userID).Return(nil).Once()

	w := s.request(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var res dto.MessageResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), "transaction deleted successfully", res.Message)
}

func (s *TransactionHandlerTestSuite) TestMissingTokenIsGeneric401() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	var res dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(s.T(), "invalid or missing authentication token", res.Message)
}
