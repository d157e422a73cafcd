package contacts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/discourse/discourse-local-site-contacts/internal/domain/localcontact"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/bootstrap"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/container"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/constants"
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

// NewCommandWithOpener builds the contacts command tree on top of open
func NewCommandWithOpener(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect and manage local site contacts",
		Long:  `Preview which staff account sends system messages per locale, validate the configuration and update it.`,
	}

	cmd.AddCommand(
		newResolveCommand(open),
		newValidateCommand(open),
		newSchemaCommand(),
		newSetCommand(open),
		newToggleCommand(open, "enable", "Turn on per-locale system message senders", true),
		newToggleCommand(open, "disable", "Turn off per-locale system message senders", false),
		newSiteContactCommand(open),
		newShowCommand(open),
		newResetCommand(open),
	)

	return cmd
}

func newResolveCommand(open Opener) *cobra.Command {
	var (
		locale     string
		fromSystem bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the sender for a recipient locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			res := c.Previewer().Preview(cmd.Context(), locale, fromSystem)
			return render(cmd.OutOrStdout(), output, res, func(w io.Writer) error {
				return writePreview(w, res)
			})
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "Recipient locale (empty uses the site default)")
	cmd.Flags().BoolVar(&fromSystem, "from-system", false, "Treat the send as system originated")
	cmd.Flags().StringVarP(&output, "output", "o", OutputText, "Output format (text, yaml, json)")

	return cmd
}

func newValidateCommand(open Opener) *cobra.Command {
	var (
		file   string
		output string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the contacts configuration",
		Long:  `Validate the stored contacts configuration, or a candidate read from --file ("-" for stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			raw := c.Settings().GetLocalContacts(ctx)
			if file != "" {
				if raw, err = readInput(cmd, file); err != nil {
					return err
				}
			}

			report := c.Validator().Validate(ctx, raw)
			if err := render(cmd.OutOrStdout(), output, report, func(w io.Writer) error {
				return writeReport(w, report)
			}); err != nil {
				return err
			}

			if !report.Valid {
				return fmt.Errorf("configuration is invalid")
			}
			if strict && report.IssueCount() > 0 {
				return fmt.Errorf("configuration has %d issues", report.IssueCount())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Validate this file instead of the stored setting")
	cmd.Flags().StringVarP(&output, "output", "o", OutputText, "Output format (text, yaml, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any entry has issues")

	return cmd
}

func newSchemaCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the contacts setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := domain.Schema()
			return render(cmd.OutOrStdout(), output, schema, func(w io.Writer) error {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(schema)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputJSON, "Output format (json, yaml)")

	return cmd
}

func newSetCommand(open Opener) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a new contacts configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.SettingsWriter().SetLocalContacts(cmd.Context(), raw, constants.SystemUserID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "local site contacts updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "File holding the JSON configuration (\"-\" for stdin)")

	return cmd
}

func newToggleCommand(open Opener, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.SettingsWriter().SetLocalContactsEnabled(cmd.Context(), enabled, constants.SystemUserID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "local site contacts enabled=%t\n", enabled)
			return nil
		},
	}
}

func newSiteContactCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "site-contact USERNAME",
		Short: "Set the default site contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.SettingsWriter().SetSiteContactUsername(cmd.Context(), args[0], constants.SystemUserID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "site contact set to %s\n", args[0])
			return nil
		},
	}
}

func newShowCommand(open Opener) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the settings stored in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			stored, err := c.SettingsReader().ListStored(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, stored, func(w io.Writer) error {
				return writeStored(w, stored)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputText, "Output format (text, yaml, json)")

	return cmd
}

func newResetCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "reset CATEGORY.KEY",
		Short: "Remove a stored setting so the config file value applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, key, ok := strings.Cut(args[0], ".")
			if !ok {
				return fmt.Errorf("expected CATEGORY.KEY, got %q", args[0])
			}

			c, cleanup, err := open()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := c.SettingsWriter().Reset(cmd.Context(), category, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s reset\n", args[0])
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
