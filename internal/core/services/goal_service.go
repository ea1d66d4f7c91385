package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// GoalService handles account-scoped savings goals.
type GoalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(gr portsrepo.GoalRepository, authorizer portssvc.AccountAuthorizerSvc) portssvc.GoalSvcFacade {
	return &GoalService{
		BaseService: BaseService{AccountAuthorizer: authorizer},
		goalRepo:    gr,
	}
}

var _ portssvc.GoalSvcFacade = (*GoalService)(nil)

func (s *GoalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	if _, err := s.Authorize(ctx, userID, req.AccountID, domain.ActionWrite); err != nil {
		return nil, err
	}

	currentAmount := decimal.Zero
	if req.CurrentAmount != nil {
		currentAmount = *req.CurrentAmount
	}
	var targetDate *time.Time
	if req.TargetDate != nil {
		parsed, err := time.Parse(txnDateLayout, *req.TargetDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid target date format, expected YYYY-MM-DD")
		}
		targetDate = &parsed
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		AccountID:     req.AccountID,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		IsAchieved:    currentAmount.GreaterThanOrEqual(req.TargetAmount),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "failed to save goal")
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.LogInfo(ctx, "goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *GoalService) ListGoals(ctx context.Context, userID, accountID string) ([]domain.Goal, error) {
	if accountID != "" {
		if _, err := s.Authorize(ctx, userID, accountID, domain.ActionRead); err != nil {
			return nil, err
		}
	}
	goals, err := s.goalRepo.ListGoalsForUser(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	goal, err := s.resolveGoal(ctx, goalID, userID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if raw, ok := fields["target_date"]; ok {
		parsed, err := time.Parse(txnDateLayout, raw.(string))
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid target date format, expected YYYY-MM-DD")
		}
		fields["target_date"] = parsed
	}

	// Achievement follows the effective amounts after the patch.
	if _, changedCurrent := fields["current_amount"]; changedCurrent || hasField(fields, "target_amount") {
		target := goal.TargetAmount
		current := goal.CurrentAmount
		if v, ok := fields["target_amount"]; ok {
			target = v.(decimal.Decimal)
		}
		if v, ok := fields["current_amount"]; ok {
			current = v.(decimal.Decimal)
		}
		fields["is_achieved"] = current.GreaterThanOrEqual(target)
	}

	updated, err := s.goalRepo.UpdateGoal(ctx, goal.GoalID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return updated, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	goal, err := s.resolveGoal(ctx, goalID, userID, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goal.GoalID); err != nil {
		s.LogError(ctx, err, "failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	s.LogInfo(ctx, "goal deleted", slog.String("goal_id", goalID))
	return nil
}

func (s *GoalService) resolveGoal(ctx context.Context, goalID, userID string, action domain.Action) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if _, err := s.Authorize(ctx, userID, goal.AccountID, action); err != nil {
		return nil, err
	}
	return goal, nil
}

func hasField(fields map[string]any, key string) bool {
	_, ok := fields[key]
	return ok
}
