package pgsql

import (
	"fmt"
	"strings"

	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
)

// buildPatch assembles the SET clause of a partial UPDATE from the columns
// present in fields, walking allowlist in order so the generated SQL is
// deterministic. Columns not in the allowlist are ignored. Placeholders are
// numbered from $1; callers append their WHERE arguments after the returned
// args slice.
//
// Returns apperrors.ErrEmptyPatch when no allow-listed column is present.
func buildPatch(allowlist []string, fields map[string]any) (string, []any, error) {
	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, col := range allowlist {
		value, ok := fields[col]
		if !ok {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, value)
	}
	if len(assignments) == 0 {
		return "", nil, apperrors.ErrEmptyPatch
	}
	return strings.Join(assignments, ", "), args, nil
}
