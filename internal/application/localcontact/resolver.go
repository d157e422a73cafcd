package localcontact

import (
	"context"
	"errors"

	domain "github.com/discourse/discourse-local-site-contacts/internal/domain/localcontact"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// Resolver picks the staff account that sends system messages to readers of
// a locale. It never fails: every problem is logged and answered with the
// default site contact.
type Resolver struct {
	users       UserFinder
	siteContact SiteContactProvider
	logger      logger.Interface
}

// NewResolver creates a new Resolver
func NewResolver(users UserFinder, siteContact SiteContactProvider, logger logger.Interface) *Resolver {
	return &Resolver{
		users:       users,
		siteContact: siteContact,
		logger:      logger,
	}
}

// Resolve returns the account configured for locale in rawConfig, provided
// it exists and is staff. Otherwise it returns the default site contact.
func (r *Resolver) Resolve(ctx context.Context, locale, rawConfig string) *user.Account {
	mapping, err := domain.ParseMapping(rawConfig)
	if err != nil {
		r.logger.Errorw("unable to parse local_site_contacts",
			"raw", rawConfig,
			"error", err,
		)
		return r.siteContact.DefaultSiteContact(ctx)
	}

	entry, ok := mapping.FirstForLocale(locale)
	if !ok {
		return r.siteContact.DefaultSiteContact(ctx)
	}

	account, err := r.users.FindByUsername(ctx, entry.Username)
	switch {
	case err == nil && account != nil && account.IsStaff():
		return account
	case err == nil && account != nil:
		r.logger.Errorw("local_site_contact user is not a staff member",
			"locale", locale,
			"username", entry.Username,
		)
	case err == nil || errors.Is(err, user.ErrUserNotFound):
		r.logger.Errorw("unable to find local_site_contacts user",
			"locale", locale,
			"username", entry.Username,
		)
	default:
		r.logger.Errorw("failed to look up local_site_contacts user",
			"locale", locale,
			"username", entry.Username,
			"error", err,
		)
	}

	return r.siteContact.DefaultSiteContact(ctx)
}
