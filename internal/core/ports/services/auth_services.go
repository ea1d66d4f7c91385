package services

import (
	"context"
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// UserSvcFacade manages user identities and credentials.
type UserSvcFacade interface {
	// Register creates a local user. Fails with a Conflict error when the
	// email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login verifies credentials. The returned error message is identical
	// for an unknown email and a wrong password; a deactivated user fails
	// with Forbidden only after the password verifies.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// CreateOAuthUser finds or creates a user for an external identity.
	CreateOAuthUser(ctx context.Context, fullName, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// TokenSvcFacade issues bearer tokens. Verification happens statelessly in
// the auth middleware and never touches storage.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade handles the Google authorization-code exchange.
type GoogleOAuthSvcFacade interface {
	Enabled() bool
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
