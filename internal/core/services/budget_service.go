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

// defaultAlertThreshold warns at 80% of the budgeted amount.
const defaultAlertThreshold = 80

// BudgetService handles account-scoped budgets.
type BudgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(br portsrepo.BudgetRepository, cr portsrepo.CategoryRepository, authorizer portssvc.AccountAuthorizerSvc) portssvc.BudgetSvcFacade {
	return &BudgetService{
		BaseService:  BaseService{AccountAuthorizer: authorizer},
		budgetRepo:   br,
		categoryRepo: cr,
	}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

func (s *BudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if _, err := s.Authorize(ctx, userID, req.AccountID, domain.ActionWrite); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationFailedError("category not found")
			}
			s.LogError(ctx, err, "failed to check category")
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if category.AccountID != req.AccountID {
			return nil, apperrors.NewValidationFailedError("category belongs to another account")
		}
	}

	startDate, err := time.Parse(txnDateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid start date format, expected YYYY-MM-DD")
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(txnDateLayout, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid end date format, expected YYYY-MM-DD")
		}
		if parsed.Before(startDate) {
			return nil, apperrors.NewValidationFailedError("end date is before start date")
		}
		endDate = &parsed
	}

	threshold := defaultAlertThreshold
	if req.AlertThreshold != nil {
		threshold = *req.AlertThreshold
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		AccountID:      req.AccountID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Amount:         req.Amount,
		Period:         domain.BudgetPeriod(req.Period),
		StartDate:      startDate,
		EndDate:        endDate,
		AlertThreshold: threshold,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "failed to save budget")
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.LogInfo(ctx, "budget created", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, userID string, params dto.ListBudgetsParams) ([]domain.Budget, error) {
	if params.AccountID != "" {
		if _, err := s.Authorize(ctx, userID, params.AccountID, domain.ActionRead); err != nil {
			return nil, err
		}
	}
	var period *domain.BudgetPeriod
	if params.Period != "" {
		p := domain.BudgetPeriod(params.Period)
		period = &p
	}
	budgets, err := s.budgetRepo.ListBudgetsForUser(ctx, userID, params.AccountID, period)
	if err != nil {
		s.LogError(ctx, err, "failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	budget, err := s.resolveBudget(ctx, budgetID, userID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if raw, ok := fields["end_date"]; ok {
		parsed, err := time.Parse(txnDateLayout, raw.(string))
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid end date format, expected YYYY-MM-DD")
		}
		if parsed.Before(budget.StartDate) {
			return nil, apperrors.NewValidationFailedError("end date is before start date")
		}
		fields["end_date"] = parsed
	}

	updated, err := s.budgetRepo.UpdateBudget(ctx, budget.BudgetID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return updated, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID, userID string) error {
	budget, err := s.resolveBudget(ctx, budgetID, userID, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budget.BudgetID); err != nil {
		s.LogError(ctx, err, "failed to delete budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	s.LogInfo(ctx, "budget deleted", slog.String("budget_id", budgetID))
	return nil
}

func (s *BudgetService) resolveBudget(ctx context.Context, budgetID, userID string, action domain.Action) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if _, err := s.Authorize(ctx, userID, budget.AccountID, action); err != nil {
		return nil, err
	}
	return budget, nil
}
