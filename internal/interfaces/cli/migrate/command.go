package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/config"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/database"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/migration"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/bootstrap"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

var opts bootstrap.Options

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply database migrations and check the schema status.`,
	}

	bootstrap.BindFlags(cmd, &opts)

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.ResolveEnv(), "driver", cfg.Database.Driver)

	if err := migration.NewManager(&cfg.Database).Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(&cfg.Database)
	status, err := manager.Status(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", manager.GetStrategy().GetName(), status)
	return nil
}
