/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/orien/satsetup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProvider_MissingFileYieldsDefaults(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "absent.yaml"))

	settings, err := provider.LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestProvider_ParsesSettings(t *testing.T) {
	path := writeConfigFile(t, `
profiles_file: /etc/databricks/profiles.cfg
log_level: debug
accessible: true
`)

	settings, err := NewProvider(path).LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &config.Settings{
		ProfilesFile: "/etc/databricks/profiles.cfg",
		LogLevel:     "debug",
		Accessible:   true,
	}, settings)
}

func TestProvider_RelativeProfilesFile(t *testing.T) {
	path := writeConfigFile(t, "profiles_file: profiles.cfg\n")

	settings, err := NewProvider(path).LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "profiles.cfg"), settings.ProfilesFile)
}

func TestProvider_ExpandsHome(t *testing.T) {
	path := writeConfigFile(t, "profiles_file: ~/.databrickscfg\n")
	provider := NewProvider(path)
	provider.home = func() (string, error) { return "/home/operator", nil }

	settings, err := provider.LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/home/operator/.databrickscfg", settings.ProfilesFile)
}

func TestProvider_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "log_level: [unterminated\n")

	_, err := NewProvider(path).LoadSettings(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config file")
}

func TestProvider_Validate(t *testing.T) {
	assert.NoError(t, NewProvider(writeConfigFile(t, "log_level: warn\n")).Validate())

	err := NewProvider(writeConfigFile(t, "log_level: loud\n")).Validate()
	assert.ErrorContains(t, err, "invalid log level 'loud'")
}

func TestProvider_LoadsFileOnce(t *testing.T) {
	path := writeConfigFile(t, "log_level: error\n")
	provider := NewProvider(path)

	_, err := provider.LoadSettings(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	settings, err := provider.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "error", settings.LogLevel)
}
