package apperrors_test

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	assert.True(t, apperrors.IsUniqueViolation(uniqueErr, "idx_users_email"))
	assert.True(t, apperrors.IsUniqueViolation(uniqueErr, ""), "empty constraint matches any unique violation")
	assert.False(t, apperrors.IsUniqueViolation(uniqueErr, "idx_users_provider"))

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "idx_users_email"}
	assert.False(t, apperrors.IsUniqueViolation(fkErr, "idx_users_email"))
	assert.False(t, apperrors.IsUniqueViolation(assert.AnError, ""))
}

func TestFromPgError_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"no rows is not found", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"unique violation is conflict", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate},
		{"foreign key violation is bad request", &pgconn.PgError{Code: "23503"}, apperrors.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, apperrors.FromPgError(tc.err, "op"), tc.sentinel)
		})
	}
}

func TestFromPgError_HidesNativeErrorText(t *testing.T) {
	cause := &pgconn.PgError{Code: "42P01", Message: "relation \"users\" does not exist"}

	err := apperrors.FromPgError(cause, "save user")

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "save user", appErr.Message)
}
