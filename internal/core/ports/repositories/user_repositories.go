package repositories

import (
	"context"
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// UserRepository persists users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
	MarkLastLogin(ctx context.Context, userID string, when time.Time) error
}
