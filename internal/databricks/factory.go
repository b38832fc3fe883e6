/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/databricks/databricks-sdk-go"
)

// DefaultClientFactory builds SDK-backed clients, one per profile
type DefaultClientFactory struct {
	configFile  string
	clientCache map[string]Workspace
	mutex       sync.Mutex
}

// NewClientFactory creates a factory reading profiles from configFile.
// An empty configFile uses the SDK default (~/.databrickscfg).
func NewClientFactory(configFile string) *DefaultClientFactory {
	return &DefaultClientFactory{
		configFile:  configFile,
		clientCache: make(map[string]Workspace),
	}
}

// NewWorkspace returns the client for profile, creating it on first use
func (f *DefaultClientFactory) NewWorkspace(ctx context.Context, profile string) (Workspace, error) {
	if profile == "" {
		return nil, fmt.Errorf("profile cannot be empty")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if ws, exists := f.clientCache[profile]; exists {
		return ws, nil
	}

	w, err := sdk.NewWorkspaceClient(&sdk.Config{
		Profile:    profile,
		ConfigFile: f.configFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace client for profile %s: %w", profile, err)
	}

	ws := NewClient(w)
	f.clientCache[profile] = ws
	return ws, nil
}
