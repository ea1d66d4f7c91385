package repositories

import (
	"context"
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// AccountRepository persists accounts and their memberships.
type AccountRepository interface {
	// CreateAccountWithOwner inserts the account and its owner membership
	// in one transaction; neither row persists if either insert fails.
	CreateAccountWithOwner(ctx context.Context, account domain.Account, owner domain.AccountMember) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByUserID(ctx context.Context, userID string) ([]domain.AccountWithRole, error)
	// UpdateAccount applies a partial update built from fields and returns
	// the updated row. Fails with apperrors.ErrEmptyPatch when fields is empty.
	UpdateAccount(ctx context.Context, accountID string, fields map[string]any) (*domain.Account, error)
	SoftDeleteAccount(ctx context.Context, accountID string, now time.Time) error

	// FindAcceptedMember returns the membership row only when its status
	// is accepted; otherwise apperrors.ErrNotFound.
	FindAcceptedMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error)
	// FindMember returns the membership row regardless of status.
	FindMember(ctx context.Context, accountID, userID string) (*domain.AccountMember, error)
	ListMembers(ctx context.Context, accountID string) ([]domain.AccountMember, error)
	AddMember(ctx context.Context, member domain.AccountMember) error
	UpdateMemberStatus(ctx context.Context, accountID, userID string, status domain.MemberStatus) error
	RemoveMember(ctx context.Context, accountID, userID string) error
}
