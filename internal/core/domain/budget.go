package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence window of a budget.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for an account, optionally scoped to one category.
// AlertThreshold is the percentage of Amount (0-100) at which the owner
// wants to be warned.
type Budget struct {
	BudgetID       string          `json:"budgetID" db:"budget_id"`
	AccountID      string          `json:"accountID" db:"account_id"`
	CategoryID     *string         `json:"categoryID,omitempty" db:"category_id"`
	Name           string          `json:"name" db:"name"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Period         BudgetPeriod    `json:"period" db:"period"`
	StartDate      time.Time       `json:"startDate" db:"start_date"`
	EndDate        *time.Time      `json:"endDate,omitempty" db:"end_date"`
	AlertThreshold int             `json:"alertThreshold" db:"alert_threshold"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	AuditFields
}
