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

const investmentColumns = `investment_id, account_id, name, investment_type, ticker, quantity, purchase_price, current_price, purchase_date, notes, created_at, updated_at`

var investmentPatchColumns = []string{"name", "investment_type", "ticker", "quantity", "purchase_price", "current_price", "purchase_date", "notes"}

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(db *pgxpool.Pool) portsrepo.InvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvestmentRepository = (*PgxInvestmentRepository)(nil)

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, asset domain.InvestmentAsset) error {
	query := `
		INSERT INTO investment_assets (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.InvestmentID,
		asset.AccountID,
		asset.Name,
		asset.Type,
		asset.Ticker,
		asset.Quantity,
		asset.PurchasePrice,
		asset.CurrentPrice,
		asset.PurchaseDate,
		asset.Notes,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save investment")
	}
	return nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.InvestmentAsset, error) {
	query := `SELECT ` + investmentColumns + ` FROM investment_assets WHERE investment_id = $1;`
	rows, err := r.Pool.Query(ctx, query, investmentID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query investment")
	}
	asset, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.InvestmentAsset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan investment")
	}
	return &asset, nil
}

func (r *PgxInvestmentRepository) ListInvestmentsForUser(ctx context.Context, userID, accountID string) ([]domain.InvestmentAsset, error) {
	query := `
		SELECT i.investment_id, i.account_id, i.name, i.investment_type, i.ticker, i.quantity,
		       i.purchase_price, i.current_price, i.purchase_date, i.notes, i.created_at, i.updated_at
		FROM investment_assets i
		JOIN accounts a ON a.account_id = i.account_id
		JOIN account_members m ON m.account_id = i.account_id
		WHERE m.user_id = $1 AND m.status = $2 AND a.deleted_at IS NULL
	`
	args := []any{userID, domain.MemberAccepted}
	if accountID != "" {
		query += ` AND i.account_id = $3`
		args = append(args, accountID)
	}
	query += ` ORDER BY i.name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list investments")
	}
	assets, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InvestmentAsset])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan investments")
	}
	return assets, nil
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, investmentID string, fields map[string]any) (*domain.InvestmentAsset, error) {
	setClause, args, err := buildPatch(investmentPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE investment_assets SET %s, updated_at = NOW()
		WHERE investment_id = $%d
		RETURNING %s;
	`, setClause, len(args)+1, investmentColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, investmentID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update investment")
	}
	asset, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.InvestmentAsset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated investment")
	}
	return &asset, nil
}

func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	query := `DELETE FROM investment_assets WHERE investment_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, investmentID)
	if err != nil {
		return apperrors.FromPgError(err, "delete investment")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
