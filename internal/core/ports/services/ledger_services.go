package services

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
)

// CategorySvcFacade manages account-scoped categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	ListCategories(ctx context.Context, accountID, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	// DeleteCategory fails with a validation error while transactions
	// still reference the category.
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// TransactionSvcFacade manages ledger transactions.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.TransactionWithRefs, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID string) error
}
