/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/orien/satsetup/internal/config"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the working directory
const DefaultFilename = "satsetup.yaml"

// Ensure that Provider implements config.SettingsProvider
var _ config.SettingsProvider = (*Provider)(nil)

// Provider implements config.SettingsProvider by reading from a YAML file.
// A missing file yields the default settings.
type Provider struct {
	filename  string
	rawConfig *Config
	home      func() (string, error)
}

// NewProvider creates a new file-based SettingsProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
		home:     os.UserHomeDir,
	}
}

// LoadSettings loads the file and applies defaults
func (fp *Provider) LoadSettings(ctx context.Context) (*config.Settings, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	settings := config.DefaultSettings()
	if fp.rawConfig.LogLevel != "" {
		settings.LogLevel = fp.rawConfig.LogLevel
	}
	if fp.rawConfig.Accessible != nil {
		settings.Accessible = *fp.rawConfig.Accessible
	}
	if fp.rawConfig.ProfilesFile != "" {
		path, err := fp.resolvePath(fp.rawConfig.ProfilesFile)
		if err != nil {
			return nil, err
		}
		settings.ProfilesFile = path
	}

	return settings, nil
}

// Validate checks the settings for errors
func (fp *Provider) Validate() error {
	settings, err := fp.LoadSettings(context.Background())
	if err != nil {
		return err
	}
	if _, err := settings.Level(); err != nil {
		return fmt.Errorf("config file '%s': %w", fp.filename, err)
	}
	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if errors.Is(err, fs.ErrNotExist) {
		fp.rawConfig = &Config{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolvePath expands a leading ~ and makes relative paths relative to the config file directory
func (fp *Provider) resolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := fp.home()
		if err != nil {
			return "", fmt.Errorf("failed to expand '%s': %w", path, err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(filepath.Dir(fp.filename), path), nil
}
