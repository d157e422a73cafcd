// Package bootstrap holds the start-up sequence shared by the CLI commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/config"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/database"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/container"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// Options are the flags every command accepts
type Options struct {
	Env        string
	ConfigPath string
}

// BindFlags registers --env and --config on cmd and its children
func BindFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// ResolveEnv lets the ENV variable override the --env flag
func (o Options) ResolveEnv() string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return o.Env
}

// LoadConfig loads configuration and initializes the logger
func LoadConfig(opts Options) (*config.Config, error) {
	env := opts.ResolveEnv()

	cfg, err := config.Load(env, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// Open loads configuration, connects to the database and wires the
// container. The returned cleanup closes the connection.
func Open(opts Options) (*container.Container, func(), error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	return container.New(cfg, database.Get(), logger.NewLogger()), cleanup, nil
}

// GinMode maps an environment name to a gin mode
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
