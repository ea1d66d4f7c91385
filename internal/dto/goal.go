package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal.
type CreateGoalRequest struct {
	AccountID     string           `json:"accountID" binding:"required,uuid"`
	Name          string           `json:"name" binding:"required"`
	Description   *string          `json:"description"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalRequest defines the fields allowed for a partial goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1"`
	Description   *string          `json:"description"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
}

// Fields returns the provided values keyed by column name. The derived
// is_achieved assignment is appended by the service when amounts change.
func (r UpdateGoalRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.TargetAmount != nil {
		fields["target_amount"] = *r.TargetAmount
	}
	if r.CurrentAmount != nil {
		fields["current_amount"] = *r.CurrentAmount
	}
	if r.TargetDate != nil {
		fields["target_date"] = *r.TargetDate
	}
	return fields
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *string         `json:"targetDate,omitempty"`
	IsAchieved    bool            `json:"isAchieved"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	res := GoalResponse{
		GoalID:        g.GoalID,
		AccountID:     g.AccountID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		IsAchieved:    g.IsAchieved,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.TargetDate != nil {
		formatted := g.TargetDate.Format("2006-01-02")
		res.TargetDate = &formatted
	}
	return res
}

// GoalEnvelope wraps a single goal under its resource key. Message is
// set on mutations only.
type GoalEnvelope struct {
	Message string       `json:"message,omitempty"`
	Goal    GoalResponse `json:"goal"`
}

// ListGoalsResponse wraps the caller's visible goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToListGoalsResponse converts domain goals to the list envelope.
func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Goals: res}
}
