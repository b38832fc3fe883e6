/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provision

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/model"
)

// Provisioning steps named in errors
const (
	StepWorkspaceLookup = "workspace lookup"
	StepScopeListing    = "scope listing"
	StepScopeDeletion   = "scope deletion"
	StepScopeCreation   = "scope creation"
	StepTokenCreation   = "token creation"
	StepSecretWrite     = "secret write"
)

// StepError records which provisioning step failed
type StepError struct {
	Step string
	Key  string
	Err  error
}

func (e *StepError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s failed for '%s': %v", e.Step, e.Key, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result describes a completed provisioning run
type Result struct {
	Plan *Plan
	// Replaced is true when an existing scope was deleted first
	Replaced bool
	// Written lists the keys stored, in write order
	Written []string
}

// Provisioner defines the interface for secret provisioning
type Provisioner interface {
	// Provision replaces the secret scope with one holding the answers
	Provision(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Result, error)
	// Preview returns the plan Provision would execute without writing anything
	Preview(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Plan, error)
}

// Ensure that SecretProvisioner implements Provisioner
var _ Provisioner = (*SecretProvisioner)(nil)

// SecretProvisioner implements Provisioner against a Databricks workspace
type SecretProvisioner struct {
	ws     databricks.Workspace
	logger *log.Logger
}

// NewSecretProvisioner creates a new SecretProvisioner
func NewSecretProvisioner(ws databricks.Workspace, logger *log.Logger) *SecretProvisioner {
	if logger == nil {
		logger = log.Default()
	}
	return &SecretProvisioner{
		ws:     ws,
		logger: logger,
	}
}

// Preview looks up the workspace and builds the plan
func (p *SecretProvisioner) Preview(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Plan, error) {
	workspaceID, err := p.ws.WorkspaceID(ctx)
	if err != nil {
		return nil, &StepError{Step: StepWorkspaceLookup, Err: err}
	}
	return BuildPlan(answers, cloud, workspaceID)
}

// Provision deletes any existing scope, recreates it and writes every secret of the plan.
// Running it twice with the same answers leaves the same set of keys.
func (p *SecretProvisioner) Provision(ctx context.Context, answers model.AnswerSet, cloud model.CloudType) (*Result, error) {
	plan, err := p.Preview(ctx, answers, cloud)
	if err != nil {
		return nil, err
	}
	result := &Result{Plan: plan}

	scopes, err := p.ws.ListScopes(ctx)
	if err != nil {
		return nil, &StepError{Step: StepScopeListing, Err: err}
	}
	if slices.Contains(scopes, plan.Scope) {
		p.logger.Info("Deleting existing secret scope", "scope", plan.Scope)
		if err := p.ws.DeleteScope(ctx, plan.Scope); err != nil {
			return nil, &StepError{Step: StepScopeDeletion, Err: err}
		}
		result.Replaced = true
	}

	if err := p.ws.CreateScope(ctx, plan.Scope); err != nil {
		return nil, &StepError{Step: StepScopeCreation, Err: err}
	}
	p.logger.Info("Created secret scope", "scope", plan.Scope)

	token, err := p.ws.CreateToken(ctx, TokenComment, TokenLifetime)
	if err != nil {
		return nil, &StepError{Step: StepTokenCreation, Err: err}
	}
	if err := p.put(ctx, plan.Scope, plan.TokenKey(), token, result); err != nil {
		return nil, err
	}

	for _, s := range plan.Secrets {
		if err := p.put(ctx, plan.Scope, s.Key, s.Value, result); err != nil {
			return nil, err
		}
	}

	p.logger.Info("Provisioned secrets", "scope", plan.Scope, "count", len(result.Written))
	return result, nil
}

func (p *SecretProvisioner) put(ctx context.Context, scope, key, value string, result *Result) error {
	if err := p.ws.PutSecret(ctx, scope, key, value); err != nil {
		return &StepError{Step: StepSecretWrite, Key: key, Err: err}
	}
	p.logger.Debug("Wrote secret", "scope", scope, "key", key)
	result.Written = append(result.Written, key)
	return nil
}
