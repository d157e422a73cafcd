package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/mappers"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// SystemSettingRepository implements setting.Repository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SystemSettingMapper
}

// NewSystemSettingRepository creates a new SystemSettingRepository
func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSystemSettingMapper(),
	}
}

// GetByKey retrieves a setting by category and key
func (r *SystemSettingRepository) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel

	err := r.db.WithContext(ctx).
		Where("category = ? AND setting_key = ?", category, key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "category", category, "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByCategory retrieves all settings in a category
func (r *SystemSettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get settings by category", "category", category, "error", err)
		return nil, fmt.Errorf("failed to get settings by category: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Upsert creates or updates a setting
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model := r.mapper.ToModel(s)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "value_type", "description", "updated_by", "version", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "category", s.Category(), "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	if s.ID() == 0 {
		s.SetID(model.ID)
	}

	return nil
}

// Delete removes a setting by category and key
func (r *SystemSettingRepository) Delete(ctx context.Context, category, key string) error {
	result := r.db.WithContext(ctx).
		Where("category = ? AND setting_key = ?", category, key).
		Delete(&models.SystemSettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "category", category, "key", key, "error", result.Error)
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}
