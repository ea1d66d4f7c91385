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

// InvestmentService handles account-scoped investment assets.
type InvestmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(ir portsrepo.InvestmentRepository, authorizer portssvc.AccountAuthorizerSvc) portssvc.InvestmentSvcFacade {
	return &InvestmentService{
		BaseService:    BaseService{AccountAuthorizer: authorizer},
		investmentRepo: ir,
	}
}

var _ portssvc.InvestmentSvcFacade = (*InvestmentService)(nil)

func (s *InvestmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.InvestmentAsset, error) {
	if _, err := s.Authorize(ctx, userID, req.AccountID, domain.ActionWrite); err != nil {
		return nil, err
	}

	var purchaseDate *time.Time
	if req.PurchaseDate != nil {
		parsed, err := time.Parse(txnDateLayout, *req.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid purchase date format, expected YYYY-MM-DD")
		}
		purchaseDate = &parsed
	}

	now := time.Now()
	asset := domain.InvestmentAsset{
		InvestmentID:  uuid.NewString(),
		AccountID:     req.AccountID,
		Name:          req.Name,
		Type:          domain.InvestmentType(req.Type),
		Ticker:        req.Ticker,
		Quantity:      valueOrZero(req.Quantity),
		PurchasePrice: valueOrZero(req.PurchasePrice),
		CurrentPrice:  valueOrZero(req.CurrentPrice),
		PurchaseDate:  purchaseDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.investmentRepo.SaveInvestment(ctx, asset); err != nil {
		s.LogError(ctx, err, "failed to save investment")
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.LogInfo(ctx, "investment created", slog.String("investment_id", asset.InvestmentID))
	return &asset, nil
}

func (s *InvestmentService) ListInvestments(ctx context.Context, userID, accountID string) ([]domain.InvestmentAsset, error) {
	if accountID != "" {
		if _, err := s.Authorize(ctx, userID, accountID, domain.ActionRead); err != nil {
			return nil, err
		}
	}
	assets, err := s.investmentRepo.ListInvestmentsForUser(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return assets, nil
}

func (s *InvestmentService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest, userID string) (*domain.InvestmentAsset, error) {
	asset, err := s.resolveInvestment(ctx, investmentID, userID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	fields := req.Fields()
	if raw, ok := fields["purchase_date"]; ok {
		parsed, err := time.Parse(txnDateLayout, raw.(string))
		if err != nil {
			return nil, apperrors.NewValidationFailedError("invalid purchase date format, expected YYYY-MM-DD")
		}
		fields["purchase_date"] = parsed
	}

	updated, err := s.investmentRepo.UpdateInvestment(ctx, asset.InvestmentID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyPatch) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to update investment", slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}
	return updated, nil
}

func (s *InvestmentService) DeleteInvestment(ctx context.Context, investmentID, userID string) error {
	asset, err := s.resolveInvestment(ctx, investmentID, userID, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.investmentRepo.DeleteInvestment(ctx, asset.InvestmentID); err != nil {
		s.LogError(ctx, err, "failed to delete investment", slog.String("investment_id", investmentID))
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	s.LogInfo(ctx, "investment deleted", slog.String("investment_id", investmentID))
	return nil
}

func (s *InvestmentService) resolveInvestment(ctx context.Context, investmentID, userID string, action domain.Action) (*domain.InvestmentAsset, error) {
	asset, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to find investment", slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	if _, err := s.Authorize(ctx, userID, asset.AccountID, action); err != nil {
		return nil, err
	}
	return asset, nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
