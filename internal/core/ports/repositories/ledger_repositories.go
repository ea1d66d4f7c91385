package repositories

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategoriesByAccountID(ctx context.Context, accountID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, fields map[string]any) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	CountTransactionsByCategoryID(ctx context.Context, categoryID string) (int64, error)
}

// TransactionRepository persists transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactionsForUser returns transactions of all accounts the
	// user has an accepted membership in, newest first. A non-empty
	// accountID narrows the listing to that account.
	ListTransactionsForUser(ctx context.Context, userID, accountID string) ([]domain.TransactionWithRefs, error)
	UpdateTransaction(ctx context.Context, transactionID string, fields map[string]any) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
