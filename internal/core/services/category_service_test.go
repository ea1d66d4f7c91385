package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	authorizer       *stubAuthorizer
	service          *services.CategoryService
	ctx              context.Context
	userID           string
	accountID        string
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.mockCategoryRepo = new(MockCategoryRepository)
	s.authorizer = &stubAuthorizer{role: domain.RoleEditor}
	s.service = services.NewCategoryService(s.mockCategoryRepo, s.authorizer).(*services.CategoryService)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.accountID = uuid.NewString()
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_BlockedWhileReferenced() {
	categoryID := uuid.NewString()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		AccountID:  s.accountID,
	}, nil).Once()
	s.mockCategoryRepo.On("CountTransactionsByCategoryID", s.ctx, categoryID).Return(int64(3), nil).Once()

	err := s.service.DeleteCategory(s.ctx, categoryID, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockCategoryRepo.AssertNotCalled(s.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_UnreferencedSucceeds() {
	categoryID := uuid.NewString()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		AccountID:  s.accountID,
	}, nil).Once()
	s.mockCategoryRepo.On("CountTransactionsByCategoryID", s.ctx, categoryID).Return(int64(0), nil).Once()
	s.mockCategoryRepo.On("DeleteCategory", s.ctx, categoryID).Return(nil).Once()

	err := s.service.DeleteCategory(s.ctx, categoryID, s.userID)

	assert.NoError(s.T(), err)
	s.mockCategoryRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceTestSuite) TestCreateCategory_ForeignParentRejected() {
	parentID := uuid.NewString()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, parentID).Return(&domain.Category{
		CategoryID: parentID,
		AccountID:  uuid.NewString(),
	}, nil).Once()

	_, err := s.service.CreateCategory(s.ctx, dto.CreateCategoryRequest{
		AccountID: s.accountID,
		Name:      "Restaurants",
		Type:      "expense",
		ParentID:  &parentID,
	}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Succeeds() {
	var captured domain.Category
	s.mockCategoryRepo.On("SaveCategory", s.ctx, mock.AnythingOfType("domain.Category")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Category)
		}).Return(nil).Once()

	category, err := s.service.CreateCategory(s.ctx, dto.CreateCategoryRequest{
		AccountID: s.accountID,
		Name:      "Groceries",
		Type:      "expense",
	}, s.userID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.CategoryExpense, category.Type)
	assert.True(s.T(), captured.IsActive)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_NonMemberSeesNotFound() {
	categoryID := uuid.NewString()
	s.mockCategoryRepo.On("FindCategoryByID", s.ctx, categoryID).Return(&domain.Category{
		CategoryID: categoryID,
		AccountID:  s.accountID,
	}, nil).Once()
	s.authorizer.err = apperrors.ErrNotFound

	name := "Renamed"
	_, err := s.service.UpdateCategory(s.ctx, categoryID, dto.UpdateCategoryRequest{Name: &name}, s.userID)

	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
