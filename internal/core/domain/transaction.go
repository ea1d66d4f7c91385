package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is derived from the amount's sign, never set by clients.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// DeriveTransactionType computes the stored type from an amount:
// non-negative amounts are income, negative amounts are expense. It is
// recomputed whenever the amount changes.
func DeriveTransactionType(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TransactionExpense
	}
	return TransactionIncome
}

// Transaction is a single ledger entry of an account, optionally linked to
// a category, created by a user.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	AccountID     string          `json:"accountID" db:"account_id"`
	CategoryID    *string         `json:"categoryID,omitempty" db:"category_id"`
	Date          time.Time       `json:"date" db:"txn_date"`
	Description   string          `json:"description" db:"description"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Type          TransactionType `json:"type" db:"txn_type"`
	PaymentMethod *string         `json:"paymentMethod,omitempty" db:"payment_method"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	Tags          []string        `json:"tags,omitempty" db:"tags"`
	IsRecurring   bool            `json:"isRecurring" db:"is_recurring"`
	CreatedBy     string          `json:"createdBy" db:"created_by"`
	AuditFields
}

// TransactionWithRefs is a transaction enriched with display fields from
// its category and account, as produced by listing joins.
type TransactionWithRefs struct {
	Transaction
	CategoryName  *string       `json:"-" db:"category_name"`
	CategoryType  *CategoryType `json:"-" db:"category_type"`
	CategoryColor *string       `json:"-" db:"category_color"`
	AccountName   string        `json:"accountName" db:"account_name"`
}
