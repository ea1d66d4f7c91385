package domain_test

import (
	"testing"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleCan(t *testing.T) {
	testCases := []struct {
		role    domain.Role
		action  domain.Action
		allowed bool
	}{
		{domain.RoleViewer, domain.ActionRead, true},
		{domain.RoleViewer, domain.ActionWrite, false},
		{domain.RoleViewer, domain.ActionManage, false},
		{domain.RoleEditor, domain.ActionRead, true},
		{domain.RoleEditor, domain.ActionWrite, true},
		{domain.RoleEditor, domain.ActionManage, false},
		{domain.RoleOwner, domain.ActionRead, true},
		{domain.RoleOwner, domain.ActionWrite, true},
		{domain.RoleOwner, domain.ActionManage, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"_"+string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.role.Can(tc.action))
		})
	}

	t.Run("unknown role has no permissions", func(t *testing.T) {
		assert.False(t, domain.Role("admin").Can(domain.ActionWrite))
	})

	t.Run("unknown action is denied", func(t *testing.T) {
		assert.False(t, domain.RoleOwner.Can(domain.Action("transfer")))
	})
}
