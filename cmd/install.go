/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/env"
	"github.com/orien/satsetup/internal/prompt"
	"github.com/orien/satsetup/internal/provision"
	"github.com/orien/satsetup/internal/questions"
	"github.com/orien/satsetup/internal/report"
	"github.com/spf13/cobra"
)

var (
	// provisioner can be injected for testing
	provisioner provision.Provisioner
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Collect credentials and provision the SAT secret scope",
	Long: `Collect credentials and provision the Security Analysis Tool secret scope.

The wizard asks, in order, for:

• The workspace profile to configure (from ~/.databrickscfg)
• The Databricks account ID
• Whether Unity Catalog is in use, and if so which catalog
• The SQL warehouse the analysis runs on
• Credentials for the cloud hosting the workspace (AWS, Azure or GCP)

Cloud credentials already set in the environment (for example AWS_CLIENT_ID or
AZURE_TENANT_ID) are used without prompting.

Any existing sat_scope secret scope is deleted and recreated, so running the
wizard again replaces the previous configuration.

Examples:
  satsetup install              # Run the wizard and write the secrets
  satsetup install --dry-run    # Run the wizard and only show the plan`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runInstall(cmd.Context(), cmd)
		if errors.Is(err, prompt.ErrInputAborted) {
			return fmt.Errorf("setup aborted: %w", err)
		}
		return err
	},
}

// getProvisioner returns the provisioner instance, creating a default one for ws if none is set
func getProvisioner(ws databricks.Workspace, logger *log.Logger) provision.Provisioner {
	if provisioner != nil {
		return provisioner
	}
	return provision.NewSecretProvisioner(ws, logger)
}

// SetProvisioner allows injection of a provisioner (for testing)
func SetProvisioner(p provision.Provisioner) {
	provisioner = p
}

// runInstall drives profile selection, collection and provisioning
func runInstall(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(ctx, cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, settings)
	if err != nil {
		return err
	}

	p := prompt.GetDefaultPrompter()
	collector := questions.NewCollector(p, env.NewResolver(getEnvironment(), p, logger), logger)

	profile, err := collector.SelectProfile(getProfileStore(settings))
	if err != nil {
		return err
	}

	ws, err := getClientFactory(settings).NewWorkspace(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to connect to workspace: %w", err)
	}

	lookups := questions.NewLookups(ws, p)
	cloud, err := lookups.Cloud()
	if err != nil {
		return fmt.Errorf("failed to determine cloud provider: %w", err)
	}
	logger.Info("Connected to workspace", "profile", profile, "cloud", cloud)

	m, err := questions.SetupModel(lookups)
	if err != nil {
		return err
	}
	answers, err := collector.Collect(ctx, m, questions.NewGate(cloud))
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(report.NewStyleSet(isColourOutput(cmd)))
	if err != nil {
		return err
	}

	prov := getProvisioner(ws, logger)
	var out string
	if isDryRun(cmd) {
		plan, err := prov.Preview(ctx, answers, cloud)
		if err != nil {
			return err
		}
		out, err = renderer.RenderPlan(plan)
		if err != nil {
			return err
		}
	} else {
		result, err := prov.Provision(ctx, answers, cloud)
		if err != nil {
			return fmt.Errorf("failed to provision secrets: %w", err)
		}
		out, err = renderer.RenderResult(result)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// isColourOutput reports whether the command writes to a terminal
func isColourOutput(cmd *cobra.Command) bool {
	type fder interface{ Fd() uintptr }
	f, ok := cmd.OutOrStdout().(fder)
	return ok && isatty.IsTerminal(f.Fd())
}

func init() {
	rootCmd.AddCommand(installCmd)
}
