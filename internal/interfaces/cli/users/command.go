package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourse/discourse-local-site-contacts/internal/domain/user"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/bootstrap"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/container"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
	appErrors "github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
)

// Opener builds the container a subcommand works against
type Opener func() (*container.Container, func(), error)

func NewCommand() *cobra.Command {
	var opts bootstrap.Options
	cmd := NewCommandWithOpener(func() (*container.Container, func(), error) {
		return bootstrap.Open(opts)
	})
	bootstrap.BindFlags(cmd, &opts)
	return cmd
}

// NewCommandWithOpener builds the users command tree on top of open
func NewCommandWithOpener(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the accounts that can send system messages",
	}

	cmd.AddCommand(
		newAddCommand(open),
		newRoleCommand(open),
		newTokenCommand(open),
	)

	return cmd
}

func newAddCommand(open Opener) *cobra.Command {
	var (
		name   string
		role   string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			account, err := user.NewAccount(args[0], name, authorization.UserRole(role), locale)
			if err != nil {
				return err
			}
			if err := c.Users().Create(cmd.Context(), account); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (id %d, role %s)\n", account.Username(), account.ID(), account.Role())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleUser), "Role (admin, moderator, user)")
	cmd.Flags().StringVar(&locale, "locale", "", "Preferred locale (empty uses the site default)")

	return cmd
}

func newRoleCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "role USERNAME ROLE",
		Short: "Change the role of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			account, err := findAccount(ctx, c, args[0])
			if err != nil {
				return err
			}
			if err := account.SetRole(authorization.UserRole(args[1])); err != nil {
				return err
			}
			if err := c.Users().Update(ctx, account); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", account.Username(), account.Role())
			return nil
		},
	}
}

func newTokenCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "token USERNAME",
		Short: "Issue an admin API token for an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			account, err := findAccount(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			if !account.Role().IsAdmin() {
				return fmt.Errorf("%s is not an admin", account.Username())
			}

			token, err := c.JWTService().Generate(account.ID(), account.Username(), account.Role())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func findAccount(ctx context.Context, c *container.Container, username string) (*user.Account, error) {
	account, err := c.Users().FindByUsername(ctx, username)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, appErrors.NewNotFoundError("user not found", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", username, err)
	}
	return account, nil
}
