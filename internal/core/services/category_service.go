package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

// CategoryService handles account-scoped categories.
type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(cr portsrepo.CategoryRepository, authorizer portssvc.AccountAuthorizerSvc) portssvc.CategorySvcFacade {
	return &CategoryService{
		BaseService:  BaseService{AccountAuthorizer: authorizer},
		categoryRepo: cr,
	}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if _, err := s.Authorize(ctx, userID, req.AccountID, domain.ActionWrite); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationFailedError("parent category not found")
			}
			s.LogError(ctx, err, "failed to check parent category")
			return nil, fmt.Errorf("failed to check parent category: %w", err)
		}
		if parent.AccountID != req.AccountID {
			return nil, apperrors.NewValidationFailedError("parent category belongs to another account")
		}
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		AccountID:  req.AccountID,
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		Color:      req.Color,
		Icon:       req.Icon,
		ParentID:   req.ParentID,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, accountID, userID string) ([]domain.Category, error) {
	if _, err := s.Authorize(ctx, userID, accountID, domain.ActionRead); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategoriesByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list categories", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.resolveCategory(ctx, categoryID, userID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	updated, err := s.categoryRepo.UpdateCategory(ctx, category.CategoryID, req.Fields())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	category, err := s.resolveCategory(ctx, categoryID, userID, domain.ActionWrite)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountTransactionsByCategoryID(ctx, category.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "failed to count category transactions", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return apperrors.NewValidationFailedError("category has transactions and cannot be deleted")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, category.CategoryID); err != nil {
		s.LogError(ctx, err, "failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "category deleted", slog.String("category_id", categoryID))
	return nil
}

// resolveCategory loads the category and authorizes the caller against
// its owning account. Resolution happens before authorization so a
// category in a foreign account surfaces as not found.
func (s *CategoryService) resolveCategory(ctx context.Context, categoryID, userID string, action domain.Action) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if _, err := s.Authorize(ctx, userID, category.AccountID, action); err != nil {
		return nil, err
	}
	return category, nil
}
