/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Input(title string, secret bool, validate func(string) error) (string, error) {
	args := m.Called(title, secret, validate)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	args := m.Called(title, defaultValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) Select(title string, options []Option) (string, error) {
	args := m.Called(title, options)
	return args.String(0), args.Error(1)
}

// Spin runs the action after recording the call, unless an error is configured
func (m *MockPrompter) Spin(title string, action func() error) error {
	args := m.Called(title)
	if err := args.Error(0); err != nil {
		return err
	}
	return action()
}
