package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
)

const accountColumns = `account_id, name, account_type, currency, initial_balance, current_balance, color, icon, deleted_at, created_at, updated_at`

const memberColumns = `m.account_id, m.user_id, m.role, m.status, m.invited_by, m.created_at, u.email AS user_email, u.full_name AS user_name`

// accountPatchColumns is the allow-list for partial account updates.
var accountPatchColumns = []string{"name", "account_type", "currency", "color", "icon"}

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) CreateAccountWithOwner(ctx context.Context, account domain.Account, owner domain.AccountMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountQuery := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, accountQuery,
		account.AccountID,
		account.Name,
		account.AccountType,
		account.Currency,
		account.InitialBalance,
		account.CurrentBalance,
		account.Color,
		account.Icon,
		account.DeletedAt,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "insert account")
	}

	memberQuery := `
		INSERT INTO account_members (account_id, user_id, role, status, invited_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, memberQuery,
		owner.AccountID,
		owner.UserID,
		owner.Role,
		owner.Status,
		owner.InvitedBy,
		owner.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "insert owner membership")
	}

	return r.Commit(ctx, tx)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query account")
	}
	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan account")
	}
	return &account, nil
}

func (r *PgxAccountRepository) ListAccountsByUserID(ctx context.Context, userID string) ([]domain.AccountWithRole, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type, a.currency, a.initial_balance, a.current_balance,
		       a.color, a.icon, a.deleted_at, a.created_at, a.updated_at, m.role
		FROM accounts a
		JOIN account_members m ON m.account_id = a.account_id
		WHERE m.user_id = $1 AND m.status = $2 AND a.deleted_at IS NULL
		ORDER BY a.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID, domain.MemberAccepted)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list accounts")
	}
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AccountWithRole])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan accounts")
	}
	return accounts, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, accountID string, fields map[string]any) (*domain.Account, error) {
	setClause, args, err := buildPatch(accountPatchColumns, fields)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE accounts SET %s, updated_at = NOW()
		WHERE account_id = $%d AND deleted_at IS NULL
		RETURNING %s;
	`, setClause, len(args)+1, accountColumns)
	rows, err := r.Pool.Query(ctx, query, append(args, accountID)...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "update account")
	}
	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan updated account")
	}
	return &account, nil
}

func (r *PgxAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, now time.Time) error {
	query := `UPDATE accounts SET deleted_at = $1, updated_at = $1 WHERE account_id = $2 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, now, accountID)
	if err != nil {
		return apperrors.FromPgError(err, "soft delete account")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) FindAcceptedMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM account_members m
		JOIN users u ON u.user_id = m.user_id
		JOIN accounts a ON a.account_id = m.account_id AND a.deleted_at IS NULL
		WHERE m.account_id = $1 AND m.user_id = $2 AND m.status = $3;
	`
	return r.findMember(ctx, query, accountID, userID, domain.MemberAccepted)
}

func (r *PgxAccountRepository) FindMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM account_members m
		JOIN users u ON u.user_id = m.user_id
		JOIN accounts a ON a.account_id = m.account_id AND a.deleted_at IS NULL
		WHERE m.account_id = $1 AND m.user_id = $2;
	`
	return r.findMember(ctx, query, accountID, userID)
}

func (r *PgxAccountRepository) findMember(ctx context.Context, query string, args ...any) (*domain.AccountMember, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPgError(err, "query membership")
	}
	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.AccountMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan membership")
	}
	return &member, nil
}

func (r *PgxAccountRepository) ListMembers(ctx context.Context, accountID string) ([]domain.AccountMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM account_members m
		JOIN users u ON u.user_id = m.user_id
		WHERE m.account_id = $1
		ORDER BY m.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list members")
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AccountMember])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan members")
	}
	return members, nil
}

func (r *PgxAccountRepository) AddMember(ctx context.Context, member domain.AccountMember) error {
	query := `
		INSERT INTO account_members (account_id, user_id, role, status, invited_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.AccountID,
		member.UserID,
		member.Role,
		member.Status,
		member.InvitedBy,
		member.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "add member")
	}
	return nil
}

func (r *PgxAccountRepository) UpdateMemberStatus(ctx context.Context, accountID, userID string, status domain.MemberStatus) error {
	query := `UPDATE account_members SET status = $1 WHERE account_id = $2 AND user_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, status, accountID, userID)
	if err != nil {
		return apperrors.FromPgError(err, "update member status")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) RemoveMember(ctx context.Context, accountID, userID string) error {
	query := `DELETE FROM account_members WHERE account_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return apperrors.FromPgError(err, "remove member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
