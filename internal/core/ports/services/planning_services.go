package services

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

// BudgetSvcFacade manages account-scoped budgets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string, params dto.ListBudgetsParams) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID, userID string) error
}

// GoalSvcFacade manages account-scoped goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID, accountID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID string) error
}

// InvestmentSvcFacade manages account-scoped investment assets.
type InvestmentSvcFacade interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.InvestmentAsset, error)
	ListInvestments(ctx context.Context, userID, accountID string) ([]domain.InvestmentAsset, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest, userID string) (*domain.InvestmentAsset, error)
	DeleteInvestment(ctx context.Context, investmentID, userID string) error
}
