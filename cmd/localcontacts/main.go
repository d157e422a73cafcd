package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/contacts"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/migrate"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/server"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/cli/users"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "localcontacts",
		Short:        "Per-locale senders for system messages",
		Long:         `localcontacts picks which staff account appears as the sender of system messages for each recipient locale.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		contacts.NewCommand(),
		users.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
