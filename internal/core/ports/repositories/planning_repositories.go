package repositories

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// BudgetRepository persists budgets.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgetsForUser(ctx context.Context, userID, accountID string, period *domain.BudgetPeriod) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, fields map[string]any) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}

// GoalRepository persists goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoalsForUser(ctx context.Context, userID, accountID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, fields map[string]any) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
}

// InvestmentRepository persists investment assets.
type InvestmentRepository interface {
	SaveInvestment(ctx context.Context, asset domain.InvestmentAsset) error
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.InvestmentAsset, error)
	ListInvestmentsForUser(ctx context.Context, userID, accountID string) ([]domain.InvestmentAsset, error)
	UpdateInvestment(ctx context.Context, investmentID string, fields map[string]any) (*domain.InvestmentAsset, error)
	DeleteInvestment(ctx context.Context, investmentID string) error
}
