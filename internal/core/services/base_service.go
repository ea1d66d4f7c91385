package services

import (
	"context"
	"log/slog"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
	"github.com/lucasll37/myfinanceapp-backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AccountAuthorizer portssvc.AccountAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize resolves the caller's role in the account and checks it
// against the action. Every account-scoped operation goes through here.
func (s *BaseService) Authorize(ctx context.Context, userID, accountID string, action domain.Action) (domain.Role, error) {
	return s.AccountAuthorizer.AuthorizeAccountAction(ctx, userID, accountID, action)
}
