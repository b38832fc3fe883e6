/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the workspace profiles the wizard can configure",
	Long: `List the workspace profiles found in the local Databricks configuration file.

The file is ~/.databrickscfg unless DATABRICKS_CONFIG_FILE or the profiles_file
setting points elsewhere. The DEFAULT section is listed only when it sets a host.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		profiles, err := getProfileStore(settings).ListProfiles()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
			return nil
		}
		for _, p := range profiles {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
