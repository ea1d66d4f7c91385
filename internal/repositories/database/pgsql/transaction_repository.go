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

const transactionColumns = `transaction_id, account_id, category_id, txn_date, description, amount, txn_type, payment_method, notes, tags, is_recurring, created_by, created_at, updated_at`

// transactionPatchColumns ends with txn_type so a type re-derived from a
// changed amount lands after every client-supplied column.
var transactionPatchColumns = []string{"category_id", "txn_date", "description", "amount", "payment_method", "notes", "tags", "is_recurring", "txn_type"}

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.CategoryID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Type,
		txn.PaymentMethod,
		txn.Notes,
		txn.Tags,
		txn.IsRecurring,
		txn.CreatedBy,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save transaction")
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query transaction")
	}
	txn, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan transaction")
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactionsForUser(ctx context.Context, userID, accountID string) ([]domain.TransactionWithRefs, error) {
	query := `
		SELECT t.transaction_id, t.account_id, t.category_id, t.txn_date, t.description, t.amount,
		       t.txn_type, t.payment_method, t.notes, t.tags, t.is_recurring, t.created_by,
		       t.created_at, t.updated_at,
		       c.name AS category_name, c.category_type, c.color AS category_color,
		       a.name AS account_name
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		JOIN account_members m ON m.account_id = t.account_id
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE m.user_id = $1 AND m.status = $2 AND a.deleted_at IS NULL
	`
	args := []any{userID, domain.MemberAccepted}
	if accountID != "" {
		query += ` AND t.account_id = $3`
		args = append(args, accountID)
	}
	query += ` ORDER BY t.txn_date DESC, t.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list transactions")
	}
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TransactionWithRefs])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan transactions")
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, fields map[string]any) (*domain.Transaction, error) {
	setClause, args, err := buildPatch(transactionPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE transactions SET %s, updated_at = NOW()
		WHERE transaction_id = $%d
		RETURNING %s;
	`, setClause, len(args)+1, transactionColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, transactionID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update transaction")
	}
	txn, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated transaction")
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return apperrors.FromPgError(err, "delete transaction")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
