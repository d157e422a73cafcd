package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/persistence/models"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/config"
)

func TestNewManager_SelectsStrategyByDriver(t *testing.T) {
	assert.Equal(t, "gorm_auto_migrate", NewManager(&config.DatabaseConfig{Driver: "sqlite"}).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager(&config.DatabaseConfig{Driver: "mysql"}).GetStrategy().GetName())
}

func TestManager_MigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	m := NewManager(&config.DatabaseConfig{Driver: "sqlite"})

	status, err := m.Status(db)
	require.NoError(t, err)
	assert.Equal(t, "pending", status)

	require.NoError(t, m.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.UserModel{}))
	assert.True(t, db.Migrator().HasTable(&models.SystemSettingModel{}))
	assert.True(t, db.Migrator().HasIndex(&models.SystemSettingModel{}, "idx_category_key"))

	status, err = m.Status(db)
	require.NoError(t, err)
	assert.Equal(t, "up to date", status)
}

func TestEmbeddedScripts(t *testing.T) {
	files, err := fs.Glob(scriptsFS, "scripts/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	for _, name := range files {
		body, err := fs.ReadFile(scriptsFS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}
