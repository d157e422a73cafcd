package localcontact

import (
	"context"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
)

// UserFinder looks up accounts by username.
// Implementations return user.ErrUserNotFound when nothing matches.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*user.Account, error)
}

// SiteContactProvider supplies the default sender. It always returns an account.
type SiteContactProvider interface {
	DefaultSiteContact(ctx context.Context) *user.Account
}

// ContactResolver picks the sender for a locale
type ContactResolver interface {
	Resolve(ctx context.Context, locale, rawConfig string) *user.Account
}

// Settings is the slice of site settings the feature reads
type Settings interface {
	IsLocalContactsEnabled(ctx context.Context) bool
	GetLocalContacts(ctx context.Context) string
	GetSiteContactUsername(ctx context.Context) string
	GetDefaultLocale(ctx context.Context) string
}
