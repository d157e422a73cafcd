package usecases

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/localcontact"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	appErrors "github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// UpdateSettingsUseCase writes the settings read by SettingProvider
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase
func NewUpdateSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// SetLocalContacts stores the contacts configuration. Text that could never
// be resolved is rejected; unknown users and duplicate locales are accepted.
func (uc *UpdateSettingsUseCase) SetLocalContacts(ctx context.Context, raw string, updatedBy uint) error {
	if _, err := localcontact.ParseMapping(raw); err != nil {
		return appErrors.NewValidationError("invalid local site contacts", err.Error())
	}

	return uc.update(ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts, setting.ValueTypeJSON, updatedBy,
		func(s *setting.SystemSetting) error { return s.SetRawJSONValue(raw, updatedBy) })
}

// SetLocalContactsEnabled switches per-locale senders on or off
func (uc *UpdateSettingsUseCase) SetLocalContactsEnabled(ctx context.Context, enabled bool, updatedBy uint) error {
	return uc.update(ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled, setting.ValueTypeBool, updatedBy,
		func(s *setting.SystemSetting) error { return s.SetBoolValue(enabled, updatedBy) })
}

// SetSiteContactUsername changes the default sender
func (uc *UpdateSettingsUseCase) SetSiteContactUsername(ctx context.Context, username string, updatedBy uint) error {
	if username == "" {
		return appErrors.NewValidationError("site contact username is required")
	}
	return uc.update(ctx, setting.CategorySite, setting.KeySiteContactUsername, setting.ValueTypeString, updatedBy,
		func(s *setting.SystemSetting) error { return s.SetStringValue(username, updatedBy) })
}

// resettableKeys lists the settings Reset may remove, by category
var resettableKeys = map[string][]string{
	setting.CategoryLocalSiteContacts: {setting.KeyEnabled, setting.KeyContacts},
	setting.CategorySite:              {setting.KeySiteContactUsername, setting.KeyDefaultLocale},
}

// Reset deletes a stored setting so that reads fall back to the config file
func (uc *UpdateSettingsUseCase) Reset(ctx context.Context, category, key string) error {
	if !slices.Contains(resettableKeys[category], key) {
		return appErrors.NewValidationError("unknown setting", category+"."+key)
	}

	if err := uc.settingRepo.Delete(ctx, category, key); err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return appErrors.NewNotFoundError("setting is not stored", category+"."+key)
		}
		return fmt.Errorf("failed to reset setting %s.%s: %w", category, key, err)
	}

	uc.logger.Infow("setting reset",
		"category", category,
		"key", key,
	)
	return nil
}

func (uc *UpdateSettingsUseCase) update(
	ctx context.Context,
	category, key string,
	valueType setting.ValueType,
	updatedBy uint,
	apply func(*setting.SystemSetting) error,
) error {
	s, err := uc.settingRepo.GetByKey(ctx, category, key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return fmt.Errorf("failed to load setting %s.%s: %w", category, key, err)
		}
		s, err = setting.NewSystemSetting(category, key, valueType, "")
		if err != nil {
			return fmt.Errorf("failed to create setting %s.%s: %w", category, key, err)
		}
	}

	if err := apply(s); err != nil {
		return fmt.Errorf("failed to set %s.%s: %w", category, key, err)
	}

	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to update setting",
			"category", category,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to update setting %s.%s: %w", category, key, err)
	}

	uc.logger.Infow("setting updated",
		"category", category,
		"key", key,
		"updated_by", updatedBy,
	)
	return nil
}
