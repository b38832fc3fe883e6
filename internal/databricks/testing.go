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
	"github.com/stretchr/testify/mock"
)

// MockWorkspace implements Workspace for testing
type MockWorkspace struct {
	mock.Mock
}

func (m *MockWorkspace) Cloud() (model.CloudType, error) {
	args := m.Called()
	return args.Get(0).(model.CloudType), args.Error(1)
}

func (m *MockWorkspace) WorkspaceID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkspace) ListCatalogs(ctx context.Context) ([]model.Choice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Choice), args.Error(1)
}

func (m *MockWorkspace) ListWarehouses(ctx context.Context) ([]model.Choice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Choice), args.Error(1)
}

func (m *MockWorkspace) ListScopes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWorkspace) CreateScope(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

func (m *MockWorkspace) DeleteScope(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

func (m *MockWorkspace) PutSecret(ctx context.Context, scope, key, value string) error {
	args := m.Called(ctx, scope, key, value)
	return args.Error(0)
}

func (m *MockWorkspace) CreateToken(ctx context.Context, comment string, lifetime time.Duration) (string, error) {
	args := m.Called(ctx, comment, lifetime)
	return args.String(0), args.Error(1)
}

// MockClientFactory implements ClientFactory for testing
type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) NewWorkspace(ctx context.Context, profile string) (Workspace, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Workspace), args.Error(1)
}

// MockProfileStore implements ProfileStore for testing
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) ListProfiles() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSecretsAPI implements SecretsAPI for testing
type MockSecretsAPI struct {
	mock.Mock
}

func (m *MockSecretsAPI) ListScopesAll(ctx context.Context) ([]workspace.SecretScope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspace.SecretScope), args.Error(1)
}

func (m *MockSecretsAPI) CreateScope(ctx context.Context, request workspace.CreateScope) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockSecretsAPI) DeleteScope(ctx context.Context, request workspace.DeleteScope) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockSecretsAPI) PutSecret(ctx context.Context, request workspace.PutSecret) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockTokensAPI implements TokensAPI for testing
type MockTokensAPI struct {
	mock.Mock
}

func (m *MockTokensAPI) Create(ctx context.Context, request settings.CreateTokenRequest) (*settings.CreateTokenResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.CreateTokenResponse), args.Error(1)
}

// MockCatalogsAPI implements CatalogsAPI for testing
type MockCatalogsAPI struct {
	mock.Mock
}

func (m *MockCatalogsAPI) ListAll(ctx context.Context, request catalog.ListCatalogsRequest) ([]catalog.CatalogInfo, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CatalogInfo), args.Error(1)
}

// MockWarehousesAPI implements WarehousesAPI for testing
type MockWarehousesAPI struct {
	mock.Mock
}

func (m *MockWarehousesAPI) ListAll(ctx context.Context, request sql.ListWarehousesRequest) ([]sql.EndpointInfo, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sql.EndpointInfo), args.Error(1)
}

// staticCloud implements CloudConfig for testing
type staticCloud struct {
	aws, azure, gcp bool
}

func (s staticCloud) IsAws() bool   { return s.aws }
func (s staticCloud) IsAzure() bool { return s.azure }
func (s staticCloud) IsGcp() bool   { return s.gcp }
