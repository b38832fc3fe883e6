/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// ConfigFileEnv overrides the location of the profile file
const ConfigFileEnv = "DATABRICKS_CONFIG_FILE"

// FileProfileStore lists profiles from a .databrickscfg file
type FileProfileStore struct {
	path string
}

// NewFileProfileStore creates a store for path, or the default location when path is empty
func NewFileProfileStore(path string) *FileProfileStore {
	if path == "" {
		path = DefaultConfigFile()
	}
	return &FileProfileStore{path: path}
}

// DefaultConfigFile returns $DATABRICKS_CONFIG_FILE or ~/.databrickscfg
func DefaultConfigFile() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".databrickscfg"
	}
	return filepath.Join(home, ".databrickscfg")
}

// Path returns the file backing this store
func (s *FileProfileStore) Path() string {
	return s.path
}

// ListProfiles returns profile names in file order. A missing file yields no profiles.
// The DEFAULT section is only listed when it configures a host.
func (s *FileProfileStore) ListProfiles() ([]string, error) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profiles from '%s': %w", s.path, err)
	}

	var profiles []string
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection && !section.HasKey("host") {
			continue
		}
		profiles = append(profiles, section.Name())
	}
	return profiles, nil
}
