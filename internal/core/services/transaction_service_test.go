package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsForUser(ctx context.Context, userID, accountID string) ([]domain.TransactionWithRefs, error) {
	args := m.Called(ctx, userID, accountID)
	var txns []domain.TransactionWithRefs
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TransactionWithRefs)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, fields map[string]any) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, fields)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByAccountID(ctx context.Context, accountID string) ([]domain.Category, error) {
	args := m.Called(ctx, accountID)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, categoryID string, fields map[string]any) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, fields)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountTransactionsByCategoryID(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// stubAuthorizer grants or denies uniformly; enough for resource services
// whose authorization logic lives in AccountService.
type stubAuthorizer struct {
	role domain.Role
	err  error
}

func (a *stubAuthorizer) AuthorizeAccountAction(ctx context.Context, userID, accountID string, action domain.Action) (domain.Role, error) {
	if a.err != nil {
		return "", a.err
	}
	return a.role, nil
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	authorizer       *stubAuthorizer
	service          *services.TransactionService
	ctx              context.Context
	userID           string
	accountID        string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.authorizer = &stubAuthorizer{role: domain.RoleEditor}
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockCategoryRepo, s.authorizer).(*services.TransactionService)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.accountID = uuid.NewString()
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountIsExpense() {
	var captured domain.Transaction
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		AccountID:   s.accountID,
		Date:        "2025-03-10",
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(-45.90),
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.TransactionExpense, txn.Type)
	assert.Equal(s.T(), domain.TransactionExpense, captured.Type)
	assert.Equal(s.T(), s.userID, captured.CreatedBy)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PositiveAmountIsIncome() {
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.Anything).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		AccountID:   s.accountID,
		Date:        "2025-03-01",
		Description: "Salary",
		Amount:      decimal.NewFromInt(5000),
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.TransactionIncome, txn.Type)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ViewerDenied() {
	s.authorizer.err = apperrors.NewForbiddenError("insufficient role for this operation")

	_, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		AccountID:   s.accountID,
		Date:        "2025-03-01",
		Description: "Salary",
		Amount:      decimal.NewFromInt(5000),
	}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ForeignCategoryRejected() {
	categoryID := uuid.NewString()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		AccountID:  uuid.NewString(),
	}, nil).Once()

	_, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		AccountID:   s.accountID,
		Date:        "2025-03-01",
		Description: "Dinner",
		Amount:      decimal.NewFromInt(-80),
		CategoryID:  &categoryID,
	}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_AmountChangeRederivesType() {
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		AccountID:     s.accountID,
		Amount:        decimal.NewFromInt(100),
		Type:          domain.TransactionIncome,
	}
	newAmount := decimal.NewFromInt(-100)

	var capturedFields map[string]any
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, transactionID).Return(existing, nil).Once()
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, transactionID, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedFields = args.Get(2).(map[string]any)
		}).Return(existing, nil).Once()

	_, err := s.service.UpdateTransaction(s.ctx, transactionID, dto.UpdateTransactionRequest{
		Amount: &newAmount,
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.TransactionExpense, capturedFields["txn_type"])
	assert.Equal(s.T(), newAmount, capturedFields["amount"])
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_NoAmountChangeKeepsType() {
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		AccountID:     s.accountID,
		Amount:        decimal.NewFromInt(100),
		Type:          domain.TransactionIncome,
	}
	newDescription := "Updated"

	var capturedFields map[string]any
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, transactionID).Return(existing, nil).Once()
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, transactionID, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedFields = args.Get(2).(map[string]any)
		}).Return(existing, nil).Once()

	_, err := s.service.UpdateTransaction(s.ctx, transactionID, dto.UpdateTransactionRequest{
		Description: &newDescription,
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.NotContains(s.T(), capturedFields, "txn_type")
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_EmptyPatchPropagates() {
	transactionID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: transactionID, AccountID: s.accountID}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, transactionID).Return(existing, nil).Once()
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, transactionID, map[string]any{}).Return(nil, apperrors.ErrEmptyPatch).Once()

	_, err := s.service.UpdateTransaction(s.ctx, transactionID, dto.UpdateTransactionRequest{}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrEmptyPatch)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NonMemberSeesNotFound() {
	transactionID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: transactionID, AccountID: s.accountID}

	s.mockTxnRepo.On("FindTransactionByID", s.ctx, transactionID).Return(existing, nil).Once()
	s.authorizer.err = apperrors.ErrNotFound

	_, err := s.service.GetTransaction(s.ctx, transactionID, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
