package authorization

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleUser      UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role carries elevated privilege.
// Admins and moderators are staff.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleModerator || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
