/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSettingsProvider implements SettingsProvider for testing
type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) LoadSettings(ctx context.Context) (*Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func (m *MockSettingsProvider) Validate() error {
	args := m.Called()
	return args.Error(0)
}
