package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to create an investment asset.
type CreateInvestmentRequest struct {
	AccountID     string           `json:"accountID" binding:"required,uuid"`
	Name          string           `json:"name" binding:"required"`
	Type          string           `json:"type" binding:"required,oneof=fixed_income fund stock other"`
	Ticker        *string          `json:"ticker"`
	Quantity      *decimal.Decimal `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice"`
	PurchaseDate  *string          `json:"purchaseDate" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string          `json:"notes"`
}

// UpdateInvestmentRequest defines the fields allowed for a partial
// investment update.
type UpdateInvestmentRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1"`
	Ticker        *string          `json:"ticker"`
	Quantity      *decimal.Decimal `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice"`
	PurchaseDate  *string          `json:"purchaseDate" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string          `json:"notes"`
}

// Fields returns the provided values keyed by column name.
func (r UpdateInvestmentRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Ticker != nil {
		fields["ticker"] = *r.Ticker
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.PurchasePrice != nil {
		fields["purchase_price"] = *r.PurchasePrice
	}
	if r.CurrentPrice != nil {
		fields["current_price"] = *r.CurrentPrice
	}
	if r.PurchaseDate != nil {
		fields["purchase_date"] = *r.PurchaseDate
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}

// InvestmentResponse defines the data returned for an investment asset.
// Balance is always computed from quantity and current price.
type InvestmentResponse struct {
	InvestmentID  string          `json:"investmentID"`
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Ticker        *string         `json:"ticker,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Balance       decimal.Decimal `json:"balance"`
	PurchaseDate  *string         `json:"purchaseDate,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToInvestmentResponse converts a domain.InvestmentAsset to InvestmentResponse.
func ToInvestmentResponse(a *domain.InvestmentAsset) InvestmentResponse {
	res := InvestmentResponse{
		InvestmentID:  a.InvestmentID,
		AccountID:     a.AccountID,
		Name:          a.Name,
		Type:          string(a.Type),
		Ticker:        a.Ticker,
		Quantity:      a.Quantity,
		PurchasePrice: a.PurchasePrice,
		CurrentPrice:  a.CurrentPrice,
		Balance:       a.Balance(),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.PurchaseDate != nil {
		formatted := a.PurchaseDate.Format("2006-01-02")
		res.PurchaseDate = &formatted
	}
	return res
}

// InvestmentEnvelope wraps a single investment under its resource key.
// Message is set on mutations only.
type InvestmentEnvelope struct {
	Message    string             `json:"message,omitempty"`
	Investment InvestmentResponse `json:"investment"`
}

// ListInvestmentsResponse wraps the caller's visible investments.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToListInvestmentsResponse converts domain assets to the list envelope.
func ToListInvestmentsResponse(assets []domain.InvestmentAsset) ListInvestmentsResponse {
	res := make([]InvestmentResponse, len(assets))
	for i := range assets {
		res[i] = ToInvestmentResponse(&assets[i])
	}
	return ListInvestmentsResponse{Investments: res}
}
