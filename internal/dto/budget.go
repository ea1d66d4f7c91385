package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	AccountID      string          `json:"accountID" binding:"required,uuid"`
	Name           string          `json:"name" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Period         string          `json:"period" binding:"required,oneof=monthly yearly"`
	StartDate      string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        *string         `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	CategoryID     *string         `json:"categoryID" binding:"omitempty,uuid"`
	AlertThreshold *int            `json:"alertThreshold" binding:"omitempty,min=0,max=100"`
}

// UpdateBudgetRequest defines the fields allowed for a partial budget update.
type UpdateBudgetRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Amount         *decimal.Decimal `json:"amount"`
	AlertThreshold *int             `json:"alertThreshold" binding:"omitempty,min=0,max=100"`
	EndDate        *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive       *bool            `json:"isActive"`
}

// Fields returns the provided values keyed by column name.
func (r UpdateBudgetRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Amount != nil {
		fields["amount"] = *r.Amount
	}
	if r.AlertThreshold != nil {
		fields["alert_threshold"] = *r.AlertThreshold
	}
	if r.EndDate != nil {
		fields["end_date"] = *r.EndDate
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	AccountID string `form:"account_id" binding:"omitempty,uuid"`
	Period    string `form:"period" binding:"omitempty,oneof=monthly yearly"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID       string          `json:"budgetID"`
	AccountID      string          `json:"accountID"`
	CategoryID     *string         `json:"categoryID,omitempty"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Period         string          `json:"period"`
	StartDate      string          `json:"startDate"`
	EndDate        *string         `json:"endDate,omitempty"`
	AlertThreshold int             `json:"alertThreshold"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	res := BudgetResponse{
		BudgetID:       b.BudgetID,
		AccountID:      b.AccountID,
		CategoryID:     b.CategoryID,
		Name:           b.Name,
		Amount:         b.Amount,
		Period:         string(b.Period),
		StartDate:      b.StartDate.Format("2006-01-02"),
		AlertThreshold: b.AlertThreshold,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.EndDate != nil {
		formatted := b.EndDate.Format("2006-01-02")
		res.EndDate = &formatted
	}
	return res
}

// BudgetEnvelope wraps a single budget under its resource key.
// Message is set on mutations only.
type BudgetEnvelope struct {
	Message string         `json:"message,omitempty"`
	Budget  BudgetResponse `json:"budget"`
}

// ListBudgetsResponse wraps the caller's visible budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToListBudgetsResponse converts domain budgets to the list envelope.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: res}
}
