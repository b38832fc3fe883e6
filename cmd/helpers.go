/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/orien/satsetup/internal/config"
	"github.com/orien/satsetup/internal/config/file"
	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/env"
	"github.com/orien/satsetup/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	// These can be injected for testing
	settingsProvider config.SettingsProvider
	clientFactory    databricks.ClientFactory
	profileStore     databricks.ProfileStore
	environment      env.Environment
)

// SetSettingsProvider allows injection of a settings provider (for testing)
func SetSettingsProvider(p config.SettingsProvider) {
	settingsProvider = p
}

// SetClientFactory allows injection of a workspace client factory (for testing)
func SetClientFactory(f databricks.ClientFactory) {
	clientFactory = f
}

// SetProfileStore allows injection of a profile store (for testing)
func SetProfileStore(s databricks.ProfileStore) {
	profileStore = s
}

// SetEnvironment allows injection of the environment consulted before prompting (for testing)
func SetEnvironment(e env.Environment) {
	environment = e
}

func getClientFactory(settings *config.Settings) databricks.ClientFactory {
	if clientFactory != nil {
		return clientFactory
	}
	return databricks.NewClientFactory(settings.ProfilesFile)
}

func getProfileStore(settings *config.Settings) databricks.ProfileStore {
	if profileStore != nil {
		return profileStore
	}
	return databricks.NewFileProfileStore(settings.ProfilesFile)
}

func getEnvironment() env.Environment {
	if environment != nil {
		return environment
	}
	return env.OSEnvironment{}
}

// getSettingsProvider returns the injected provider, or one reading the file named by --config
func getSettingsProvider(cmd *cobra.Command) (config.SettingsProvider, error) {
	if settingsProvider != nil {
		return settingsProvider, nil
	}
	filename, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return file.NewProvider(filename), nil
}

// loadSettings validates and loads the settings and applies them to the prompt package
func loadSettings(ctx context.Context, cmd *cobra.Command) (*config.Settings, error) {
	provider, err := getSettingsProvider(cmd)
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	settings, err := provider.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	if settings.Accessible {
		prompt.SetAccessible(true)
	}
	return settings, nil
}

// newLogger creates the command logger. --verbose overrides the configured level.
func newLogger(cmd *cobra.Command, settings *config.Settings) (*log.Logger, error) {
	level, err := settings.Level()
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}

	return newLoggerTo(cmd.ErrOrStderr(), level), nil
}

func newLoggerTo(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "satsetup",
	})
}

// isDryRun reports the --dry-run flag
func isDryRun(cmd *cobra.Command) bool {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		panic(fmt.Sprintf("dry-run flag not registered: %v", err))
	}
	return dryRun
}
