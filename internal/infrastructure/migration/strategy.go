package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

const scriptsDir = "scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// Status reports the applied version
	Status(db *gorm.DB) (string, error)
	// GetName returns the strategy name
	GetName() string
}

// GormAutoMigrateStrategy syncs the schema from the gorm models
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) Status(db *gorm.DB) (string, error) {
	migrator := db.Migrator()
	for _, model := range AutoMigrateModels() {
		if !migrator.HasTable(model) {
			return "pending", nil
		}
	}
	return "up to date", nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy applies the embedded mysql scripts with goose
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy() Strategy {
	return &GooseStrategy{
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("starting goose migration", "version", currentVersion)

	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) Status(db *gorm.DB) (string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return "", fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := s.prepare(); err != nil {
		return "", err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return "", fmt.Errorf("failed to get version: %w", err)
	}

	return fmt.Sprintf("version %d", version), nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
