package migration

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/config"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   *slog.Logger
}

// NewManager picks the strategy for the configured driver. The SQL scripts
// are written for mysql; sqlite schemas come from the gorm models.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	var strategy Strategy
	if cfg.IsSQLite() {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		strategy = NewGooseStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Info("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, AutoMigrateModels()...); err != nil {
		m.logger.Error("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Info("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Status reports the schema state for the configured strategy
func (m *Manager) Status(db *gorm.DB) (string, error) {
	return m.strategy.Status(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
