package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsStaff(t *testing.T) {
	tests := []struct {
		role UserRole
		want bool
	}{
		{RoleAdmin, true},
		{RoleModerator, true},
		{RoleUser, false},
		{UserRole(""), false},
		{UserRole("owner"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsStaff())
		})
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleModerator, ParseUserRole("moderator"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
	assert.Equal(t, RoleUser, ParseUserRole(""))
}
