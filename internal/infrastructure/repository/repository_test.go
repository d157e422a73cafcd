package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/setting"
	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.UserModel{}, &models.SystemSettingModel{})
	require.NoError(t, err)

	return db
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	alice, err := user.NewAccount("Alice", "Alice A.", authorization.RoleAdmin, "en")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, alice))
	assert.NotZero(t, alice.ID())

	t.Run("exact match", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID(), found.ID())
		assert.True(t, found.IsStaff())
		assert.Equal(t, "en", found.Locale())
	})

	t.Run("case insensitive", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID(), found.ID())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "ghost123")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		dup, err := user.NewAccount("Alice", "Other", authorization.RoleUser, "")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, dup))
	})
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	bob, err := user.NewAccount("bob", "Bob", authorization.RoleAdmin, "fr")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, bob))

	require.NoError(t, bob.SetRole(authorization.RoleUser))
	require.NoError(t, repo.Update(ctx, bob))

	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, found.IsStaff())

	missing := user.ReconstructAccount(999, "nobody", "", authorization.RoleUser, "", bob.CreatedAt(), bob.UpdatedAt())
	assert.ErrorIs(t, repo.Update(ctx, missing), user.ErrUserNotFound)
}

func TestSystemSettingRepository_UpsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSystemSettingRepository(db, logger.NewLogger())
	ctx := context.Background()

	_, err := repo.GetByKey(ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts)
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)

	s, err := setting.NewSystemSetting(setting.CategoryLocalSiteContacts, setting.KeyContacts, setting.ValueTypeJSON, "per-locale senders")
	require.NoError(t, err)
	require.NoError(t, s.SetRawJSONValue(`[{"locale":"en","username":"alice"}]`, 1))
	require.NoError(t, repo.Upsert(ctx, s))
	assert.NotZero(t, s.ID())

	found, err := repo.GetByKey(ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts)
	require.NoError(t, err)
	assert.Equal(t, `[{"locale":"en","username":"alice"}]`, found.GetStringValue())

	require.NoError(t, found.SetRawJSONValue(`[]`, 2))
	require.NoError(t, repo.Upsert(ctx, found))

	found, err = repo.GetByKey(ctx, setting.CategoryLocalSiteContacts, setting.KeyContacts)
	require.NoError(t, err)
	assert.Equal(t, `[]`, found.GetStringValue())
	assert.Equal(t, uint(2), found.UpdatedBy())
}

func TestSystemSettingRepository_GetByCategoryAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSystemSettingRepository(db, logger.NewLogger())
	ctx := context.Background()

	enabled, err := setting.NewSystemSetting(setting.CategoryLocalSiteContacts, setting.KeyEnabled, setting.ValueTypeBool, "")
	require.NoError(t, err)
	require.NoError(t, enabled.SetBoolValue(true, 1))
	require.NoError(t, repo.Upsert(ctx, enabled))

	contacts, err := setting.NewSystemSetting(setting.CategoryLocalSiteContacts, setting.KeyContacts, setting.ValueTypeJSON, "")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, contacts))

	list, err := repo.GetByCategory(ctx, setting.CategoryLocalSiteContacts)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, setting.KeyContacts, list[0].Key())
	assert.Equal(t, setting.KeyEnabled, list[1].Key())

	require.NoError(t, repo.Delete(ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled))
	assert.ErrorIs(t, repo.Delete(ctx, setting.CategoryLocalSiteContacts, setting.KeyEnabled), setting.ErrSettingNotFound)
}
