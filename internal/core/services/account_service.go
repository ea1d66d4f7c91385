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
	"github.com/shopspring/decimal"
)

// AccountService handles accounts, memberships and the permission
// resolution every other account-scoped service relies on.
type AccountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	userRepo     portsrepo.UserRepository
	notification portssvc.NotificationSvcFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(ar portsrepo.AccountRepository, ur portsrepo.UserRepository, ns portssvc.NotificationSvcFacade) *AccountService {
	return &AccountService{accountRepo: ar, userRepo: ur, notification: ns}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// AuthorizeAccountAction resolves the caller's accepted membership and
// checks its role against the action. A missing or pending membership
// yields ErrNotFound so the account's existence is never leaked; an
// insufficient role yields a Forbidden error.
func (s *AccountService) AuthorizeAccountAction(ctx context.Context, userID, accountID string, action domain.Action) (domain.Role, error) {
	member, err := s.accountRepo.FindAcceptedMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to resolve membership", slog.String("account_id", accountID))
		return "", fmt.Errorf("failed to resolve membership: %w", err)
	}
	if !member.Role.Can(action) {
		return "", apperrors.NewForbiddenError("insufficient role for this operation")
	}
	return member.Role, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	now := time.Now()

	initialBalance := decimal.Zero
	if req.InitialBalance != nil {
		initialBalance = *req.InitialBalance
	}
	currency := req.Currency
	if currency == "" {
		currency = "BRL"
	}

	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    domain.AccountType(req.AccountType),
		Currency:       currency,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		Color:          req.Color,
		Icon:           req.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	owner := domain.AccountMember{
		AccountID: account.AccountID,
		UserID:    creatorUserID,
		Role:      domain.RoleOwner,
		Status:    domain.MemberAccepted,
		CreatedAt: now,
	}

	if err := s.accountRepo.CreateAccountWithOwner(ctx, account, owner); err != nil {
		s.LogError(ctx, err, "failed to create account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID, userID string) (*domain.Account, domain.Role, error) {
	role, err := s.AuthorizeAccountAction(ctx, userID, accountID, domain.ActionRead)
	if err != nil {
		return nil, "", err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find account", slog.String("account_id", accountID))
		return nil, "", fmt.Errorf("failed to find account: %w", err)
	}
	return account, role, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.AccountWithRole, error) {
	accounts, err := s.accountRepo.ListAccountsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, domain.Role, error) {
	role, err := s.AuthorizeAccountAction(ctx, userID, accountID, domain.ActionWrite)
	if err != nil {
		return nil, "", err
	}
	account, err := s.accountRepo.UpdateAccount(ctx, accountID, req.Fields())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", err
		}
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, "", fmt.Errorf("failed to update account: %w", err)
	}
	return account, role, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID, userID string) error {
	if _, err := s.AuthorizeAccountAction(ctx, userID, accountID, domain.ActionManage); err != nil {
		return err
	}
	if err := s.accountRepo.SoftDeleteAccount(ctx, accountID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *AccountService) ListMembers(ctx context.Context, accountID, userID string) ([]domain.AccountMember, error) {
	if _, err := s.AuthorizeAccountAction(ctx, userID, accountID, domain.ActionRead); err != nil {
		return nil, err
	}
	members, err := s.accountRepo.ListMembers(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list members", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *AccountService) InviteMember(ctx context.Context, accountID string, req dto.InviteMemberRequest, inviterUserID string) (*domain.AccountMember, error) {
	if _, err := s.AuthorizeAccountAction(ctx, inviterUserID, accountID, domain.ActionManage); err != nil {
		return nil, err
	}

	invitee, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("no user registered with that email")
		}
		s.LogError(ctx, err, "failed to look up invitee")
		return nil, fmt.Errorf("failed to look up invitee: %w", err)
	}

	if _, err := s.accountRepo.FindMember(ctx, accountID, invitee.UserID); err == nil {
		return nil, apperrors.NewConflictError("user is already a member of this account")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check existing membership")
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	member := domain.AccountMember{
		AccountID: accountID,
		UserID:    invitee.UserID,
		Role:      req.Role,
		Status:    domain.MemberPending,
		InvitedBy: &inviterUserID,
		CreatedAt: time.Now(),
		UserEmail: invitee.Email,
		UserName:  invitee.FullName,
	}
	if err := s.accountRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("user is already a member of this account")
		}
		s.LogError(ctx, err, "failed to add member", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	accountName := accountID
	if err == nil {
		accountName = account.Name
	}
	if err := s.notification.Notify(ctx, invitee.UserID,
		"Account invitation",
		fmt.Sprintf("You have been invited to join %q as %s.", accountName, member.Role),
		"invite"); err != nil {
		s.LogError(ctx, err, "failed to notify invitee", slog.String("user_id", invitee.UserID))
	}

	s.LogInfo(ctx, "member invited", slog.String("account_id", accountID), slog.String("user_id", invitee.UserID))
	return &member, nil
}

func (s *AccountService) AcceptInvite(ctx context.Context, accountID, userID string) (*domain.AccountMember, error) {
	member, err := s.accountRepo.FindMember(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find invitation", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}
	if member.Status == domain.MemberAccepted {
		return nil, apperrors.NewConflictError("invitation already accepted")
	}

	if err := s.accountRepo.UpdateMemberStatus(ctx, accountID, userID, domain.MemberAccepted); err != nil {
		s.LogError(ctx, err, "failed to accept invitation", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}
	member.Status = domain.MemberAccepted
	s.LogInfo(ctx, "invitation accepted", slog.String("account_id", accountID), slog.String("user_id", userID))
	return member, nil
}

func (s *AccountService) RemoveMember(ctx context.Context, accountID, targetUserID, requesterUserID string) error {
	if _, err := s.AuthorizeAccountAction(ctx, requesterUserID, accountID, domain.ActionManage); err != nil {
		return err
	}

	target, err := s.accountRepo.FindMember(ctx, accountID, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find member", slog.String("account_id", accountID))
		return fmt.Errorf("failed to find member: %w", err)
	}
	// An account always keeps its owner.
	if target.Role == domain.RoleOwner {
		return apperrors.NewValidationFailedError("the account owner cannot be removed")
	}

	if err := s.accountRepo.RemoveMember(ctx, accountID, targetUserID); err != nil {
		s.LogError(ctx, err, "failed to remove member", slog.String("account_id", accountID))
		return fmt.Errorf("failed to remove member: %w", err)
	}
	s.LogInfo(ctx, "member removed", slog.String("account_id", accountID), slog.String("user_id", targetUserID))
	return nil
}
