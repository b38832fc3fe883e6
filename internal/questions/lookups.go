/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package questions

import (
	"context"
	"fmt"

	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/model"
	"github.com/orien/satsetup/internal/prompt"
)

// Lookups caches remote metadata for the lifetime of one run
type Lookups struct {
	ws       databricks.Workspace
	prompter prompt.Prompter

	cloud      model.CloudType
	catalogs   []model.Choice
	warehouses []model.Choice
	loaded     map[string]bool
}

// NewLookups creates a per-run cache over ws. Remote loads show a spinner via prompter.
func NewLookups(ws databricks.Workspace, prompter prompt.Prompter) *Lookups {
	return &Lookups{
		ws:       ws,
		prompter: prompter,
		loaded:   make(map[string]bool),
	}
}

// Cloud returns the workspace's cloud type
func (l *Lookups) Cloud() (model.CloudType, error) {
	if l.loaded["cloud"] {
		return l.cloud, nil
	}
	cloud, err := l.ws.Cloud()
	if err != nil {
		return "", err
	}
	l.cloud = cloud
	l.loaded["cloud"] = true
	return cloud, nil
}

// Catalogs returns the workspace's Unity Catalog catalogs
func (l *Lookups) Catalogs(ctx context.Context) ([]model.Choice, error) {
	return l.load(ctx, "catalogs", &l.catalogs, l.ws.ListCatalogs)
}

// Warehouses returns the workspace's SQL warehouses
func (l *Lookups) Warehouses(ctx context.Context) ([]model.Choice, error) {
	return l.load(ctx, "warehouses", &l.warehouses, l.ws.ListWarehouses)
}

func (l *Lookups) load(ctx context.Context, name string, dst *[]model.Choice, list func(context.Context) ([]model.Choice, error)) ([]model.Choice, error) {
	if l.loaded[name] {
		return *dst, nil
	}

	var choices []model.Choice
	err := l.prompter.Spin(fmt.Sprintf("Loading %s...", name), func() error {
		var err error
		choices, err = list(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	*dst = choices
	l.loaded[name] = true
	return choices, nil
}
