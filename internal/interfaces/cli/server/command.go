package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/config"
	"github.com/discourse/discourse-local-site-contacts/internal/infrastructure/migration"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/bootstrap"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

var (
	opts        bootstrap.Options
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the admin HTTP server",
		Long:  `Start the HTTP server exposing the local site contacts admin API.`,
		RunE:  run,
	}

	bootstrap.BindFlags(cmd, &opts)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	c, cleanup, err := bootstrap.Open(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := c.Config()
	if err := checkJWTSecret(cfg, logger.NewLogger()); err != nil {
		return err
	}

	logger.Info("starting server",
		"environment", opts.ResolveEnv(),
		"auto-migrate", autoMigrate)

	manager := migration.NewManager(&cfg.Database)
	if autoMigrate {
		if err := manager.Migrate(c.DB()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	} else if status, err := manager.Status(c.DB()); err != nil {
		logger.Warn("failed to check migration status", "error", err)
	} else {
		logger.Info("migration status", "strategy", manager.GetStrategy().GetName(), "status", status)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           c.Router().Engine(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// checkJWTSecret refuses to serve in release mode with the placeholder
// secret and warns about it in every other mode.
func checkJWTSecret(cfg *config.Config, log logger.Interface) error {
	err := cfg.CheckJWTSecret()
	if err == nil {
		return nil
	}
	if cfg.Server.Mode == gin.ReleaseMode {
		return fmt.Errorf("refusing to start in %s mode: %w", cfg.Server.Mode, err)
	}
	log.Warnw("admin API tokens are signed with an insecure secret, set auth.jwt.secret",
		"mode", cfg.Server.Mode,
	)
	return nil
}
