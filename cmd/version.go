/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/orien/satsetup/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build details",
	Long: `Show build details: the satsetup version, git commit, build date, and the
Databricks SDK, Go toolchain and platform it was built with.

Include this output when reporting a problem.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
