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

const txnDateLayout = "2006-01-02"

// TransactionService handles ledger transactions.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(tr portsrepo.TransactionRepository, cr portsrepo.CategoryRepository, authorizer portssvc.AccountAuthorizerSvc) portssvc.TransactionSvcFacade {
	return &TransactionService{
		BaseService:     BaseService{AccountAuthorizer: authorizer},
		transactionRepo: tr,
		categoryRepo:    cr,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, userID, req.AccountID, domain.ActionWrite); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID, req.AccountID); err != nil {
		return nil, err
	}

	date, err := time.Parse(txnDateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid date format, expected YYYY-MM-DD")
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          domain.DeriveTransactionType(req.Amount),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Tags:          req.Tags,
		IsRecurring:   req.IsRecurring,
		CreatedBy:     userID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	return s.resolveTransaction(ctx, transactionID, userID, domain.ActionRead)
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.TransactionWithRefs, error) {
	if params.AccountID != "" {
		if _, err := s.Authorize(ctx, userID, params.AccountID, domain.ActionRead); err != nil {
			return nil, err
		}
	}
	txns, err := s.transactionRepo.ListTransactionsForUser(ctx, userID, params.AccountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.resolveTransaction(ctx, transactionID, userID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID, txn.AccountID); err != nil {
		return nil, err
	}

	fields := req.Fields()
	if raw, ok := fields["txn_date"]; ok {
		date, err := time.Parse(txnDateLayout, raw.(string))
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid date format, expected YYYY-MM-DD")
		}
		fields["txn_date"] = date
	}
	// A changed amount re-derives the stored type.
	if amount, ok := fields["amount"]; ok {
		fields["txn_type"] = domain.DeriveTransactionType(amount.(decimal.Decimal))
	}

	updated, err := s.transactionRepo.UpdateTransaction(ctx, txn.TransactionID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	txn, err := s.resolveTransaction(ctx, transactionID, userID, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, txn.TransactionID); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *TransactionService) resolveTransaction(ctx context.Context, transactionID, userID string, action domain.Action) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if _, err := s.Authorize(ctx, userID, txn.AccountID, action); err != nil {
		return nil, err
	}
	return txn, nil
}

// checkCategory verifies a referenced category exists and belongs to the
// transaction's account. A nil categoryID is fine.
func (s *TransactionService) checkCategory(ctx context.Context, categoryID *string, accountID string) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError("category not found")
		}
		s.LogError(ctx, err, "failed to check category", slog.String("category_id", *categoryID))
		return fmt.Errorf("failed to check category: %w", err)
	}
	if category.AccountID != accountID {
		return apperrors.NewValidationFailedError("category belongs to another account")
	}
	return nil
}
