/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/catalog"
	"github.com/databricks/databricks-sdk-go/service/settings"
	"github.com/databricks/databricks-sdk-go/service/sql"
	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/orien/satsetup/internal/model"
)

// Client implements Workspace on top of the Databricks SDK services
type Client struct {
	cloud       CloudConfig
	secrets     SecretsAPI
	tokens      TokensAPI
	catalogs    CatalogsAPI
	warehouses  WarehousesAPI
	workspaceID func(ctx context.Context) (int64, error)
}

// NewClient wraps an SDK workspace client
func NewClient(w *sdk.WorkspaceClient) *Client {
	return &Client{
		cloud:       w.Config,
		secrets:     w.Secrets,
		tokens:      w.Tokens,
		catalogs:    w.Catalogs,
		warehouses:  w.Warehouses,
		workspaceID: w.CurrentWorkspaceID,
	}
}

// Cloud derives the cloud type from the resolved workspace host
func (c *Client) Cloud() (model.CloudType, error) {
	switch {
	case c.cloud.IsAzure():
		return model.CloudAzure, nil
	case c.cloud.IsGcp():
		return model.CloudGCP, nil
	case c.cloud.IsAws():
		return model.CloudAWS, nil
	default:
		return "", fmt.Errorf("unable to determine cloud type for workspace")
	}
}

func (c *Client) WorkspaceID(ctx context.Context) (int64, error) {
	id, err := c.workspaceID(ctx)
	if err != nil {
		return 0, newRemoteError("get workspace id", err)
	}
	return id, nil
}

func (c *Client) ListCatalogs(ctx context.Context) ([]model.Choice, error) {
	infos, err := c.catalogs.ListAll(ctx, catalog.ListCatalogsRequest{})
	if err != nil {
		return nil, newRemoteError("list catalogs", err)
	}
	choices := make([]model.Choice, 0, len(infos))
	for _, info := range infos {
		choices = append(choices, model.Choice{Name: info.Name, ID: info.Name})
	}
	return choices, nil
}

func (c *Client) ListWarehouses(ctx context.Context) ([]model.Choice, error) {
	infos, err := c.warehouses.ListAll(ctx, sql.ListWarehousesRequest{})
	if err != nil {
		return nil, newRemoteError("list warehouses", err)
	}
	choices := make([]model.Choice, 0, len(infos))
	for _, info := range infos {
		choices = append(choices, model.Choice{Name: info.Name, ID: info.Id})
	}
	return choices, nil
}

func (c *Client) ListScopes(ctx context.Context) ([]string, error) {
	scopes, err := c.secrets.ListScopesAll(ctx)
	if err != nil {
		return nil, newRemoteError("list secret scopes", err)
	}
	names := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		names = append(names, scope.Name)
	}
	return names, nil
}

func (c *Client) CreateScope(ctx context.Context, scope string) error {
	err := c.secrets.CreateScope(ctx, workspace.CreateScope{Scope: scope})
	return newRemoteError(fmt.Sprintf("create secret scope %s", scope), err)
}

func (c *Client) DeleteScope(ctx context.Context, scope string) error {
	err := c.secrets.DeleteScope(ctx, workspace.DeleteScope{Scope: scope})
	return newRemoteError(fmt.Sprintf("delete secret scope %s", scope), err)
}

func (c *Client) PutSecret(ctx context.Context, scope, key, value string) error {
	err := c.secrets.PutSecret(ctx, workspace.PutSecret{
		Scope:       scope,
		Key:         key,
		StringValue: value,
	})
	return newRemoteError(fmt.Sprintf("put secret %s/%s", scope, key), err)
}

func (c *Client) CreateToken(ctx context.Context, comment string, lifetime time.Duration) (string, error) {
	resp, err := c.tokens.Create(ctx, settings.CreateTokenRequest{
		Comment:         comment,
		LifetimeSeconds: int64(lifetime / time.Second),
	})
	if err != nil {
		return "", newRemoteError("create token", err)
	}
	if resp.TokenValue == "" {
		return "", &RemoteServiceError{Op: "create token", Message: "response did not include a token value"}
	}
	return resp.TokenValue, nil
}
