package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	sharedConfig "github.com/discourse/discourse-local-site-contacts/internal/shared/config"
)

func stored(category, key, value string, vt setting.ValueType) *setting.SystemSetting {
	now := time.Now()
	return setting.ReconstructSystemSetting(1, category, key, value, vt, "", 0, 1, now, now)
}

func newProvider(repo *mockSettingRepository, log *mockLogger) *SettingProvider {
	return NewSettingProvider(repo, SettingProviderConfig{
		LocalContacts: sharedConfig.LocalContactsConfig{
			Enabled:             false,
			Contacts:            "[]",
			SiteContactUsername: "system",
			DefaultLocale:       "en",
		},
	}, log)
}

func TestSettingProvider_DatabaseWins(t *testing.T) {
	repo := new(mockSettingRepository)
	log := new(mockLogger)
	ctx := context.Background()

	raw := `[{"locale":"fr","username":"bob"}]`
	repo.On("GetByKey", ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled).
		Return(stored(setting.CategoryLocalSiteContacts, setting.KeyEnabled, "true", setting.ValueTypeBool), nil)
	repo.On("GetByKey", ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts).
		Return(stored(setting.CategoryLocalSiteContacts, setting.KeyContacts, raw, setting.ValueTypeJSON), nil)
	repo.On("GetByKey", ctx, setting.CategorySite, setting.KeySiteContactUsername).
		Return(stored(setting.CategorySite, setting.KeySiteContactUsername, "team", setting.ValueTypeString), nil)

	p := newProvider(repo, log)

	assert.True(t, p.IsLocalContactsEnabled(ctx))
	assert.Equal(t, raw, p.GetLocalContacts(ctx))
	assert.Equal(t, "team", p.GetSiteContactUsername(ctx))
	repo.AssertExpectations(t)
	log.AssertNotCalled(t, "Warnw", mock.Anything, mock.Anything)
}

func TestSettingProvider_FallsBackWhenMissing(t *testing.T) {
	repo := new(mockSettingRepository)
	log := new(mockLogger)
	ctx := context.Background()

	repo.On("GetByKey", ctx, mock.Anything, mock.Anything).Return(nil, setting.ErrSettingNotFound)

	p := newProvider(repo, log)

	assert.False(t, p.IsLocalContactsEnabled(ctx))
	assert.Equal(t, "[]", p.GetLocalContacts(ctx))
	assert.Equal(t, "system", p.GetSiteContactUsername(ctx))
	assert.Equal(t, "en", p.GetDefaultLocale(ctx))
	log.AssertNotCalled(t, "Warnw", mock.Anything, mock.Anything)
}

func TestSettingProvider_FallsBackOnEmptyValue(t *testing.T) {
	repo := new(mockSettingRepository)
	log := new(mockLogger)
	ctx := context.Background()

	repo.On("GetByKey", ctx, setting.CategorySite, setting.KeyDefaultLocale).
		Return(stored(setting.CategorySite, setting.KeyDefaultLocale, "", setting.ValueTypeString), nil)

	assert.Equal(t, "en", newProvider(repo, log).GetDefaultLocale(ctx))
}

func TestSettingProvider_WarnsOnRepositoryError(t *testing.T) {
	repo := new(mockSettingRepository)
	log := new(mockLogger)
	ctx := context.Background()

	repo.On("GetByKey", ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled).
		Return(nil, errors.New("connection refused"))
	log.On("Warnw", "failed to read setting from database, using fallback", mock.Anything).Return()

	assert.False(t, newProvider(repo, log).IsLocalContactsEnabled(ctx))
	log.AssertExpectations(t)
}

func TestSettingProvider_WarnsOnInvalidBool(t *testing.T) {
	repo := new(mockSettingRepository)
	log := new(mockLogger)
	ctx := context.Background()

	repo.On("GetByKey", ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled).
		Return(stored(setting.CategoryLocalSiteContacts, setting.KeyEnabled, "maybe", setting.ValueTypeBool), nil)
	log.On("Warnw", "invalid bool setting, using fallback", mock.Anything).Return()

	assert.False(t, newProvider(repo, log).IsLocalContactsEnabled(ctx))
	log.AssertExpectations(t)
}
