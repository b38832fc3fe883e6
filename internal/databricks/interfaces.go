/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"context"
	"time"

	"github.com/databricks/databricks-sdk-go/service/catalog"
	"github.com/databricks/databricks-sdk-go/service/settings"
	"github.com/databricks/databricks-sdk-go/service/sql"
	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/orien/satsetup/internal/model"
)

// SecretsAPI is the subset of the SDK secrets service used here
type SecretsAPI interface {
	ListScopesAll(ctx context.Context) ([]workspace.SecretScope, error)
	CreateScope(ctx context.Context, request workspace.CreateScope) error
	DeleteScope(ctx context.Context, request workspace.DeleteScope) error
	PutSecret(ctx context.Context, request workspace.PutSecret) error
}

// TokensAPI is the subset of the SDK tokens service used here
type TokensAPI interface {
	Create(ctx context.Context, request settings.CreateTokenRequest) (*settings.CreateTokenResponse, error)
}

// CatalogsAPI is the subset of the SDK Unity Catalog service used here
type CatalogsAPI interface {
	ListAll(ctx context.Context, request catalog.ListCatalogsRequest) ([]catalog.CatalogInfo, error)
}

// WarehousesAPI is the subset of the SDK SQL warehouses service used here
type WarehousesAPI interface {
	ListAll(ctx context.Context, request sql.ListWarehousesRequest) ([]sql.EndpointInfo, error)
}

// CloudConfig reports which cloud the workspace runs on
type CloudConfig interface {
	IsAws() bool
	IsAzure() bool
	IsGcp() bool
}

// Ensure that the SDK services implement our interfaces
var (
	_ SecretsAPI    = (workspace.SecretsInterface)(nil)
	_ TokensAPI     = (settings.TokensInterface)(nil)
	_ CatalogsAPI   = (catalog.CatalogsInterface)(nil)
	_ WarehousesAPI = (sql.WarehousesInterface)(nil)
)

// Ensure that Client implements Workspace
var _ Workspace = (*Client)(nil)

// Ensure that DefaultClientFactory implements ClientFactory
var _ ClientFactory = (*DefaultClientFactory)(nil)

// Workspace defines the remote operations the setup wizard needs
type Workspace interface {
	// Cloud returns the cloud provider hosting the workspace
	Cloud() (model.CloudType, error)
	// WorkspaceID returns the numeric workspace identifier
	WorkspaceID(ctx context.Context) (int64, error)
	// ListCatalogs returns Unity Catalog catalogs
	ListCatalogs(ctx context.Context) ([]model.Choice, error)
	// ListWarehouses returns SQL warehouses
	ListWarehouses(ctx context.Context) ([]model.Choice, error)
	ListScopes(ctx context.Context) ([]string, error)
	CreateScope(ctx context.Context, scope string) error
	DeleteScope(ctx context.Context, scope string) error
	PutSecret(ctx context.Context, scope, key, value string) error
	// CreateToken issues a personal access token and returns its value
	CreateToken(ctx context.Context, comment string, lifetime time.Duration) (string, error)
}

// ClientFactory creates Workspace clients from local profiles
type ClientFactory interface {
	NewWorkspace(ctx context.Context, profile string) (Workspace, error)
}

// ProfileStore lists the locally configured workspace profiles
type ProfileStore interface {
	ListProfiles() ([]string, error)
}
