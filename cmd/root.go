/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/orien/satsetup/internal/config/file"
	"github.com/orien/satsetup/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satsetup",
	Short: "Provision Security Analysis Tool credentials into a Databricks workspace",
	Long: `satsetup is an interactive wizard that prepares a Databricks workspace for
the Security Analysis Tool (SAT). It:

• Lets you pick a workspace profile from your local Databricks configuration
• Collects the account ID, catalog, SQL warehouse and cloud credentials
• Reuses values already present in the environment instead of asking again
• Recreates the sat_scope secret scope with a fresh workspace token

Run 'satsetup install' to start the wizard.`,
	SilenceUsage: true,
}

// RootCommand returns the root command, for documentation generation
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Short()),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", file.DefaultFilename, "settings file (default is satsetup.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("dry-run", false, "show what would be written without changing the workspace")
}
