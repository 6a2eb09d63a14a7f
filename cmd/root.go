// Package cmd defines the impactboard CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brightimpact/impactboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "impactboard",
	Short: "Impactboard corporate impact dashboard",
	Long:  "Impactboard serves the corporate impact dashboard: the REST API, the email notification boundary, and the embedded web UI.",
}

// Execute loads configuration, registers subcommands, and runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(NewServeCmd(cfg))
	rootCmd.AddCommand(NewPreviewCmd(cfg))
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
