package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
)

const budgetColumns = `budget_id, account_id, category_id, name, amount, period, start_date, end_date, alert_threshold, is_active, created_at, updated_at`

var budgetPatchColumns = []string{"category_id", "name", "amount", "period", "start_date", "end_date", "alert_threshold", "is_active"}

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID,
		budget.AccountID,
		budget.CategoryID,
		budget.Name,
		budget.Amount,
		budget.Period,
		budget.StartDate,
		budget.EndDate,
		budget.AlertThreshold,
		budget.IsActive,
		budget.CreatedAt,
		budget.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save budget")
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query budget")
	}
	budget, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Budget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan budget")
	}
	return &budget, nil
}

func (r *PgxBudgetRepository) ListBudgetsForUser(ctx context.Context, userID, accountID string, period *domain.BudgetPeriod) ([]domain.Budget, error) {
	query := `
		SELECT b.budget_id, b.account_id, b.category_id, b.name, b.amount, b.period, b.start_date,
		       b.end_date, b.alert_threshold, b.is_active, b.created_at, b.updated_at
		FROM budgets b
		JOIN accounts a ON a.account_id = b.account_id
		JOIN account_members m ON m.account_id = b.account_id
		WHERE m.user_id = $1 AND m.status = $2 AND a.deleted_at IS NULL
	`
	args := []any{userID, domain.MemberAccepted}
	if accountID != "" {
		args = append(args, accountID)
		query += fmt.Sprintf(` AND b.account_id = $%d`, len(args))
	}
	if period != nil {
		args = append(args, *period)
		query += fmt.Sprintf(` AND b.period = $%d`, len(args))
	}
	query += ` ORDER BY b.start_date DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list budgets")
	}
	budgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Budget])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan budgets")
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budgetID string, fields map[string]any) (*domain.Budget, error) {
	setClause, args, err := buildPatch(budgetPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE budgets SET %s, updated_at = NOW()
		WHERE budget_id = $%d
		RETURNING %s;
	`, setClause, len(args)+1, budgetColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, budgetID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update budget")
	}
	budget, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Budget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated budget")
	}
	return &budget, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, budgetID)
	if err != nil {
		return apperrors.FromPgError(err, "delete budget")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
