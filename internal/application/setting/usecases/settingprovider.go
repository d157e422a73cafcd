package usecases

import (
	"context"
	"errors"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	sharedConfig "github.com/discourse/discourse-local-site-contacts/internal/shared/config"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// SettingProviderConfig holds all fallback configurations from the config file
type SettingProviderConfig struct {
	LocalContacts sharedConfig.LocalContactsConfig
}

// SettingProvider reads settings database-first, falling back to the
// configured defaults when a row is absent, empty or unreadable.
type SettingProvider struct {
	settingRepo   setting.Repository
	localContacts sharedConfig.LocalContactsConfig
	logger        logger.Interface
}

// NewSettingProvider creates a new SettingProvider
func NewSettingProvider(
	settingRepo setting.Repository,
	cfg SettingProviderConfig,
	logger logger.Interface,
) *SettingProvider {
	return &SettingProvider{
		settingRepo:   settingRepo,
		localContacts: cfg.LocalContacts,
		logger:        logger,
	}
}

func (p *SettingProvider) lookup(ctx context.Context, category, key string) *setting.SystemSetting {
	s, err := p.settingRepo.GetByKey(ctx, category, key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			p.logger.Warnw("failed to read setting from database, using fallback",
				"category", category,
				"key", key,
				"error", err,
			)
		}
		return nil
	}
	if s == nil || !s.HasValue() {
		return nil
	}
	return s
}

// GetString retrieves a string setting value
// Database values take precedence over default
func (p *SettingProvider) GetString(ctx context.Context, category, key, defaultValue string) string {
	s := p.lookup(ctx, category, key)
	if s == nil {
		return defaultValue
	}
	return s.GetStringValue()
}

// GetBool retrieves a bool setting value
// Database values take precedence over default
func (p *SettingProvider) GetBool(ctx context.Context, category, key string, defaultValue bool) bool {
	s := p.lookup(ctx, category, key)
	if s == nil {
		return defaultValue
	}
	val, err := s.GetBoolValue()
	if err != nil {
		p.logger.Warnw("invalid bool setting, using fallback",
			"category", category,
			"key", key,
			"value", s.GetStringValue(),
		)
		return defaultValue
	}
	return val
}

// IsLocalContactsEnabled reports whether per-locale senders are switched on
func (p *SettingProvider) IsLocalContactsEnabled(ctx context.Context) bool {
	return p.GetBool(ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled, p.localContacts.Enabled)
}

// GetLocalContacts returns the raw JSON text of the contacts setting
func (p *SettingProvider) GetLocalContacts(ctx context.Context) string {
	return p.GetString(ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts, p.localContacts.Contacts)
}

// GetSiteContactUsername returns the username of the default site contact
func (p *SettingProvider) GetSiteContactUsername(ctx context.Context) string {
	return p.GetString(ctx, setting.CategorySite, setting.KeySiteContactUsername, p.localContacts.SiteContactUsername)
}

// GetDefaultLocale returns the site locale used for recipients without one
func (p *SettingProvider) GetDefaultLocale(ctx context.Context) string {
	return p.GetString(ctx, setting.CategorySite, setting.KeyDefaultLocale, p.localContacts.DefaultLocale)
}
