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

const goalColumns = `goal_id, account_id, name, description, target_amount, current_amount, target_date, is_achieved, created_at, updated_at`

// is_achieved is recomputed by the service whenever current_amount or
// target_amount changes, so it sits after both in the allow-list.
var goalPatchColumns = []string{"name", "description", "target_amount", "current_amount", "target_date", "is_achieved"}

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.AccountID,
		goal.Name,
		goal.Description,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.IsAchieved,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save goal")
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`
	rows, err := r.Pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query goal")
	}
	goal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan goal")
	}
	return &goal, nil
}

func (r *PgxGoalRepository) ListGoalsForUser(ctx context.Context, userID, accountID string) ([]domain.Goal, error) {
	query := `
		SELECT g.goal_id, g.account_id, g.name, g.description, g.target_amount, g.current_amount,
		       g.target_date, g.is_achieved, g.created_at, g.updated_at
		FROM goals g
		JOIN accounts a ON a.account_id = g.account_id
		JOIN account_members m ON m.account_id = g.account_id
		WHERE m.user_id = $1 AND m.status = $2 AND a.deleted_at IS NULL
	`
	args := []any{userID, domain.MemberAccepted}
	if accountID != "" {
		query += ` AND g.account_id = $3`
		args = append(args, accountID)
	}
	query += ` ORDER BY g.created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list goals")
	}
	goals, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Goal])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan goals")
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goalID string, fields map[string]any) (*domain.Goal, error) {
	setClause, args, err := buildPatch(goalPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE goals SET %s, updated_at = NOW()
		WHERE goal_id = $%d
		RETURNING %s;
	`, setClause, len(args)+1, goalColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, goalID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update goal")
	}
	goal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated goal")
	}
	return &goal, nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, goalID)
	if err != nil {
		return apperrors.FromPgError(err, "delete goal")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
