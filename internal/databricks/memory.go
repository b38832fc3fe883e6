/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/orien/satsetup/internal/model"
)

// MemoryWorkspace is a stateful in-memory Workspace used by tests
type MemoryWorkspace struct {
	ID         int64
	CloudType  model.CloudType
	Catalogs   []model.Choice
	Warehouses []model.Choice
	// Failures makes the named operation fail, e.g. "CreateToken"
	Failures map[string]error

	mu     sync.Mutex
	scopes map[string]map[string]string
	tokens []string
	calls  map[string]int
}

var _ Workspace = (*MemoryWorkspace)(nil)

// NewMemoryWorkspace creates an empty in-memory workspace
func NewMemoryWorkspace(id int64, cloud model.CloudType) *MemoryWorkspace {
	return &MemoryWorkspace{
		ID:        id,
		CloudType: cloud,
		Failures:  make(map[string]error),
		scopes:    make(map[string]map[string]string),
		calls:     make(map[string]int),
	}
}

func (m *MemoryWorkspace) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[op]++
	if err, ok := m.Failures[op]; ok {
		return &RemoteServiceError{Op: op, StatusCode: 500, ErrorCode: "INTERNAL_ERROR", Message: err.Error(), Err: err}
	}
	return nil
}

// Calls returns how many times op was invoked
func (m *MemoryWorkspace) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *MemoryWorkspace) Cloud() (model.CloudType, error) {
	if err := m.record("Cloud"); err != nil {
		return "", err
	}
	return m.CloudType, nil
}

func (m *MemoryWorkspace) WorkspaceID(ctx context.Context) (int64, error) {
	if err := m.record("WorkspaceID"); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (m *MemoryWorkspace) ListCatalogs(ctx context.Context) ([]model.Choice, error) {
	if err := m.record("ListCatalogs"); err != nil {
		return nil, err
	}
	return append([]model.Choice(nil), m.Catalogs...), nil
}

func (m *MemoryWorkspace) ListWarehouses(ctx context.Context) ([]model.Choice, error) {
	if err := m.record("ListWarehouses"); err != nil {
		return nil, err
	}
	return append([]model.Choice(nil), m.Warehouses...), nil
}

func (m *MemoryWorkspace) ListScopes(ctx context.Context) ([]string, error) {
	if err := m.record("ListScopes"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.scopes))
	for name := range m.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryWorkspace) CreateScope(ctx context.Context, scope string) error {
	if err := m.record("CreateScope"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.scopes[scope]; exists {
		return &RemoteServiceError{Op: "CreateScope", StatusCode: 400, ErrorCode: "RESOURCE_ALREADY_EXISTS", Message: fmt.Sprintf("Scope %s already exists!", scope)}
	}
	m.scopes[scope] = make(map[string]string)
	return nil
}

func (m *MemoryWorkspace) DeleteScope(ctx context.Context, scope string) error {
	if err := m.record("DeleteScope"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.scopes[scope]; !exists {
		return &RemoteServiceError{Op: "DeleteScope", StatusCode: 404, ErrorCode: "RESOURCE_DOES_NOT_EXIST", Message: fmt.Sprintf("Scope %s does not exist!", scope)}
	}
	delete(m.scopes, scope)
	return nil
}

func (m *MemoryWorkspace) PutSecret(ctx context.Context, scope, key, value string) error {
	if err := m.record("PutSecret"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	secrets, exists := m.scopes[scope]
	if !exists {
		return &RemoteServiceError{Op: "PutSecret", StatusCode: 404, ErrorCode: "RESOURCE_DOES_NOT_EXIST", Message: fmt.Sprintf("Scope %s does not exist!", scope)}
	}
	secrets[key] = value
	return nil
}

func (m *MemoryWorkspace) CreateToken(ctx context.Context, comment string, lifetime time.Duration) (string, error) {
	if err := m.record("CreateToken"); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	token := fmt.Sprintf("dapi-test-%d", len(m.tokens)+1)
	m.tokens = append(m.tokens, token)
	return token, nil
}

// SeedScope creates scope holding secrets, replacing any existing content
func (m *MemoryWorkspace) SeedScope(scope string, secrets map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(map[string]string, len(secrets))
	for k, v := range secrets {
		copied[k] = v
	}
	m.scopes[scope] = copied
}

// Secrets returns a copy of the secrets held in scope, and whether the scope exists
func (m *MemoryWorkspace) Secrets(scope string) (map[string]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	secrets, exists := m.scopes[scope]
	if !exists {
		return nil, false
	}
	copied := make(map[string]string, len(secrets))
	for k, v := range secrets {
		copied[k] = v
	}
	return copied, true
}

// Tokens returns the values of every token issued so far
func (m *MemoryWorkspace) Tokens() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.tokens...)
}
