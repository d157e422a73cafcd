package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/mappers"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.UserMapper
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewUserMapper(),
	}
}

var _ user.Repository = (*UserRepository)(nil)

// Create creates a new account
func (r *UserRepository) Create(ctx context.Context, account *user.Account) error {
	model := r.mapper.ToModel(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "username", account.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return account.SetID(model.ID)
}

// Update persists role and locale changes
func (r *UserRepository) Update(ctx context.Context, account *user.Account) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", account.ID()).
		Updates(map[string]interface{}{
			"name":       account.Name(),
			"role":       account.Role().String(),
			"locale":     account.Locale(),
			"updated_at": account.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "user_id", account.ID(), "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// FindByUsername retrieves an account by username, case-insensitively
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	if username == "" {
		return nil, user.ErrUserNotFound
	}
	return r.first(ctx, "LOWER(username) = LOWER(?)", username)
}

func (r *UserRepository) first(ctx context.Context, query string, args ...interface{}) (*user.Account, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}
