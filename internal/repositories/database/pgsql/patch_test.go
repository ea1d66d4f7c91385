package pgsql

import (
	"testing"

	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPatch_OrdersByAllowlist(t *testing.T) {
	allowlist := []string{"name", "account_type", "currency", "color"}
	fields := map[string]any{
		"color":        "#ff0000",
		"name":         "Household",
		"account_type": "household",
	}

	setClause, args, err := buildPatch(allowlist, fields)
	require.NoError(t, err)

	assert.Equal(t, "name = $1, account_type = $2, color = $3", setClause)
	assert.Equal(t, []any{"Household", "household", "#ff0000"}, args)
}

func TestBuildPatch_IgnoresUnknownColumns(t *testing.T) {
	allowlist := []string{"name"}
	fields := map[string]any{
		"name":    "Groceries",
		"user_id": "sneaky",
	}

	setClause, args, err := buildPatch(allowlist, fields)
	require.NoError(t, err)

	assert.Equal(t, "name = $1", setClause)
	assert.Equal(t, []any{"Groceries"}, args)
}

func TestBuildPatch_EmptyPatch(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
	}{
		{name: "no fields", fields: map[string]any{}},
		{name: "only unknown fields", fields: map[string]any{"bogus": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildPatch([]string{"name"}, tt.fields)
			assert.ErrorIs(t, err, apperrors.ErrEmptyPatch)
		})
	}
}

func TestBuildPatch_NilValueIsExplicit(t *testing.T) {
	// A present nil clears the column; an absent key leaves it alone.
	setClause, args, err := buildPatch([]string{"category_id", "notes"}, map[string]any{
		"category_id": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "category_id = $1", setClause)
	assert.Equal(t, []any{nil}, args)
}
