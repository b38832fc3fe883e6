/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provision

import (
	"context"

	"github.com/orien/satsetup/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockProvisioner implements Provisioner for testing
type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Result, error) {
	args := m.Called(ctx, answers, cloud)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}

func (m *MockProvisioner) Preview(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Plan, error) {
	args := m.Called(ctx, answers, cloud)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}
