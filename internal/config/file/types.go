/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains the YAML-backed settings provider.
package file

// Config represents the raw YAML settings file structure
type Config struct {
	ProfilesFile string `yaml:"profiles_file"`
	LogLevel     string `yaml:"log_level"`
	Accessible   *bool  `yaml:"accessible"`
}
