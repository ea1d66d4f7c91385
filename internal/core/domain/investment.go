package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment asset.
type InvestmentType string

const (
	InvestmentFixedIncome InvestmentType = "fixed_income"
	InvestmentFund        InvestmentType = "fund"
	InvestmentStock       InvestmentType = "stock"
	InvestmentOther       InvestmentType = "other"
)

// InvestmentAsset belongs to an account. Its balance is always computed
// from quantity and current price, never persisted.
type InvestmentAsset struct {
	InvestmentID  string          `json:"investmentID" db:"investment_id"`
	AccountID     string          `json:"accountID" db:"account_id"`
	Name          string          `json:"name" db:"name"`
	Type          InvestmentType  `json:"type" db:"investment_type"`
	Ticker        *string         `json:"ticker,omitempty" db:"ticker"`
	Quantity      decimal.Decimal `json:"quantity" db:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" db:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"currentPrice" db:"current_price"`
	PurchaseDate  *time.Time      `json:"purchaseDate,omitempty" db:"purchase_date"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// Balance returns quantity times current price.
func (a InvestmentAsset) Balance() decimal.Decimal {
	return a.Quantity.Mul(a.CurrentPrice)
}
