package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// The type is derived from the amount's sign and cannot be supplied.
type CreateTransactionRequest struct {
	AccountID     string          `json:"accountID" binding:"required,uuid"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CategoryID    *string         `json:"categoryID" binding:"omitempty,uuid"`
	PaymentMethod *string         `json:"paymentMethod"`
	Notes         *string         `json:"notes"`
	Tags          []string        `json:"tags"`
	IsRecurring   bool            `json:"isRecurring"`
}

// UpdateTransactionRequest defines the fields allowed for a partial
// transaction update.
type UpdateTransactionRequest struct {
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description   *string          `json:"description" binding:"omitempty,min=1"`
	Amount        *decimal.Decimal `json:"amount"`
	CategoryID    *string          `json:"categoryID" binding:"omitempty,uuid"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
	Tags          []string         `json:"tags"`
}

// Fields returns the provided values keyed by column name. The derived
// type assignment is appended by the service, not here.
func (r UpdateTransactionRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Date != nil {
		fields["txn_date"] = *r.Date
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Amount != nil {
		fields["amount"] = *r.Amount
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.PaymentMethod != nil {
		fields["payment_method"] = *r.PaymentMethod
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.Tags != nil {
		fields["tags"] = r.Tags
	}
	return fields
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string `form:"account_id" binding:"omitempty,uuid"`
}

// TransactionCategoryRef is the embedded category summary on a
// transaction response, present only when the transaction is categorized.
type TransactionCategoryRef struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                  `json:"transactionID"`
	AccountID     string                  `json:"accountID"`
	AccountName   string                  `json:"accountName,omitempty"`
	CategoryID    *string                 `json:"categoryID,omitempty"`
	Category      *TransactionCategoryRef `json:"category,omitempty"`
	Date          string                  `json:"date"`
	Description   string                  `json:"description"`
	Amount        decimal.Decimal         `json:"amount"`
	Type          string                  `json:"type"`
	PaymentMethod *string                 `json:"paymentMethod,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
	Tags          []string                `json:"tags,omitempty"`
	IsRecurring   bool                    `json:"isRecurring"`
	CreatedBy     string                  `json:"createdBy"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		CategoryID:    t.CategoryID,
		Date:          t.Date.Format("2006-01-02"),
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          string(t.Type),
		PaymentMethod: t.PaymentMethod,
		Notes:         t.Notes,
		Tags:          t.Tags,
		IsRecurring:   t.IsRecurring,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTransactionWithRefsResponse converts a joined transaction row,
// embedding the category summary when the row has one.
func ToTransactionWithRefsResponse(t *domain.TransactionWithRefs) TransactionResponse {
	res := ToTransactionResponse(&t.Transaction)
	res.AccountName = t.AccountName
	if t.CategoryName != nil && t.CategoryType != nil {
		res.Category = &TransactionCategoryRef{
			Name:  *t.CategoryName,
			Type:  string(*t.CategoryType),
			Color: t.CategoryColor,
		}
	}
	return res
}

// TransactionEnvelope wraps a single transaction under its resource key.
// Message is set on mutations only.
type TransactionEnvelope struct {
	Message     string              `json:"message,omitempty"`
	Transaction TransactionResponse `json:"transaction"`
}

// ListTransactionsResponse wraps the caller's visible transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts joined rows to the list envelope.
func ToListTransactionsResponse(transactions []domain.TransactionWithRefs) ListTransactionsResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionWithRefsResponse(&transactions[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
