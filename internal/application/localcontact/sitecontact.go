package localcontact

import (
	"context"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// SettingSiteContactProvider resolves the default site contact from the
// site.contact_username setting. When that account is missing, or the
// setting names the system user, the built-in system account is used.
type SettingSiteContactProvider struct {
	settings Settings
	users    UserFinder
	logger   logger.Interface
}

// NewSettingSiteContactProvider creates a new SettingSiteContactProvider
func NewSettingSiteContactProvider(settings Settings, users UserFinder, logger logger.Interface) *SettingSiteContactProvider {
	return &SettingSiteContactProvider{
		settings: settings,
		users:    users,
		logger:   logger,
	}
}

// DefaultSiteContact always returns an account
func (p *SettingSiteContactProvider) DefaultSiteContact(ctx context.Context) *user.Account {
	username := p.settings.GetSiteContactUsername(ctx)
	if username == "" || username == constants.SystemUsername {
		return user.SystemAccount()
	}

	account, err := p.users.FindByUsername(ctx, username)
	if err != nil || account == nil {
		p.logger.Warnw("site contact user not found, using system user",
			"username", username,
			"error", err,
		)
		return user.SystemAccount()
	}
	return account
}
