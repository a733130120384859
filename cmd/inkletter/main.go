package main

import (
	"os"

	"github.com/spf13/cobra"

	"inkletter/internal/interfaces/cli/migrate"
	"inkletter/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkletter",
		Short: "Inkletter - blog newsletter subscription service",
		Long:  `Inkletter runs the double opt-in newsletter subscription service and its database migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
