package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal tracks progress of an account towards a target amount. IsAchieved
// flips automatically once CurrentAmount reaches TargetAmount.
type Goal struct {
	GoalID        string          `json:"goalID" db:"goal_id"`
	AccountID     string          `json:"accountID" db:"account_id"`
	Name          string          `json:"name" db:"name"`
	Description   *string         `json:"description,omitempty" db:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount" db:"target_amount"`
	CurrentAmount decimal.Decimal `json:"currentAmount" db:"current_amount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty" db:"target_date"`
	IsAchieved    bool            `json:"isAchieved" db:"is_achieved"`
	AuditFields
}
