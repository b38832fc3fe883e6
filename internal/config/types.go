/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config defines the tool's own settings, independent of where they are stored.
package config

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// DefaultLogLevel is used when no level is configured
const DefaultLogLevel = "info"

// SettingsProvider defines the interface for loading tool settings
type SettingsProvider interface {
	// LoadSettings returns the resolved settings, applying defaults for anything unset
	LoadSettings(ctx context.Context) (*Settings, error)

	// Validate checks the settings for errors
	Validate() error
}

// Settings represents the resolved tool settings
type Settings struct {
	// ProfilesFile is the local workspace profiles file; empty means the SDK default
	ProfilesFile string
	// LogLevel is one of debug, info, warn, error
	LogLevel string
	// Accessible forces line-based prompts even on a terminal
	Accessible bool
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: DefaultLogLevel,
	}
}

// Level parses LogLevel
func (s *Settings) Level() (log.Level, error) {
	if s.LogLevel == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level '%s': %w", s.LogLevel, err)
	}
	return level, nil
}
