package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// StoredSetting is the read model of one persisted setting row
type StoredSetting struct {
	Category  string    `json:"category" yaml:"category"`
	Key       string    `json:"key" yaml:"key"`
	Value     string    `json:"value" yaml:"value"`
	ValueType string    `json:"value_type" yaml:"value_type"`
	Version   int       `json:"version" yaml:"version"`
	UpdatedBy uint      `json:"updated_by" yaml:"updated_by"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// featureCategories are the categories the local site contacts feature reads
var featureCategories = []string{setting.CategoryLocalSiteContacts, setting.CategorySite}

// GetSettingsUseCase lists the settings stored in the database. Values that
// only come from the config file are not part of the result.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase
func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// ListStored returns the stored rows of every category the feature reads
func (uc *GetSettingsUseCase) ListStored(ctx context.Context) ([]StoredSetting, error) {
	var result []StoredSetting
	for _, category := range featureCategories {
		settings, err := uc.settingRepo.GetByCategory(ctx, category)
		if err != nil {
			uc.logger.Errorw("failed to get settings by category",
				"category", category,
				"error", err,
			)
			return nil, fmt.Errorf("failed to list %s settings: %w", category, err)
		}

		for _, s := range settings {
			result = append(result, StoredSetting{
				Category:  s.Category(),
				Key:       s.Key(),
				Value:     s.Value(),
				ValueType: string(s.ValueType()),
				Version:   s.Version(),
				UpdatedBy: s.UpdatedBy(),
				UpdatedAt: s.UpdatedAt(),
			})
		}
	}
	return result, nil
}
