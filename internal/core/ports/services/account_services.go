package services

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

// AccountAuthorizerSvc is the single authorization primitive every
// account-scoped service calls before touching a resource. It reports
// apperrors.ErrNotFound when the user has no accepted membership (so the
// account's existence is not leaked) and apperrors.ErrForbidden when the
// membership's role does not permit the action.
type AccountAuthorizerSvc interface {
	AuthorizeAccountAction(ctx context.Context, userID, accountID string, action domain.Action) (domain.Role, error)
}

// AccountSvcFacade manages accounts and their memberships.
type AccountSvcFacade interface {
	AccountAuthorizerSvc

	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID, userID string) (*domain.Account, domain.Role, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.AccountWithRole, error)
	// UpdateAccount patches account attributes; editors and owners may
	// update, and the caller's role is returned alongside the account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, domain.Role, error)
	// DeleteAccount soft-deletes; owner role required.
	DeleteAccount(ctx context.Context, accountID, userID string) error

	ListMembers(ctx context.Context, accountID, userID string) ([]domain.AccountMember, error)
	// InviteMember adds a pending membership for an existing user; owner only.
	InviteMember(ctx context.Context, accountID string, req dto.InviteMemberRequest, inviterUserID string) (*domain.AccountMember, error)
	// AcceptInvite flips the caller's own pending membership to accepted.
	AcceptInvite(ctx context.Context, accountID, userID string) (*domain.AccountMember, error)
	RemoveMember(ctx context.Context, accountID, targetUserID, requesterUserID string) error
}
