package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
)

// Account is a user account as seen by system messaging: who it is, what
// privilege it holds and which locale it reads.
type Account struct {
	id        uint
	username  string
	name      string
	role      authorization.UserRole
	locale    string
	createdAt time.Time
	updatedAt time.Time
}

// NewAccount creates a new account with the given username and role
func NewAccount(username, name string, role authorization.UserRole, locale string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &Account{
		username:  username,
		name:      name,
		role:      role,
		locale:    locale,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAccount reconstructs an account from persistence
func ReconstructAccount(id uint, username, name string, role authorization.UserRole, locale string, createdAt, updatedAt time.Time) *Account {
	return &Account{
		id:        id,
		username:  username,
		name:      name,
		role:      role,
		locale:    locale,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SystemAccount returns the built-in system actor. It is staff and always
// available, so it is the last-resort sender for system messages.
func SystemAccount() *Account {
	return &Account{
		id:       constants.SystemUserID,
		username: constants.SystemUsername,
		name:     "System",
		role:     authorization.RoleAdmin,
		locale:   constants.SystemUserLocale,
	}
}

func (a *Account) ID() uint                     { return a.id }
func (a *Account) Username() string             { return a.username }
func (a *Account) Name() string                 { return a.name }
func (a *Account) Role() authorization.UserRole { return a.role }
func (a *Account) Locale() string               { return a.locale }
func (a *Account) CreatedAt() time.Time         { return a.createdAt }
func (a *Account) UpdatedAt() time.Time         { return a.updatedAt }

// IsStaff reports whether the account holds elevated privilege
func (a *Account) IsStaff() bool {
	return a.role.IsStaff()
}

// IsSystem reports whether this is the built-in system actor
func (a *Account) IsSystem() bool {
	return a.id == constants.SystemUserID && a.username == constants.SystemUsername
}

// EffectiveLocale is the locale used to render content for this account,
// falling back to defaultLocale when the account has none.
func (a *Account) EffectiveLocale(defaultLocale string) string {
	if a.locale != "" {
		return a.locale
	}
	return defaultLocale
}

// SetID sets the account ID (only for persistence layer use)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetRole changes the account role
func (a *Account) SetRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	a.role = role
	a.updatedAt = time.Now().UTC()
	return nil
}

// SetLocale changes the account locale; empty means "use the site default"
func (a *Account) SetLocale(locale string) {
	a.locale = locale
	a.updatedAt = time.Now().UTC()
}
