/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/env"
	"github.com/orien/satsetup/internal/model"
	"github.com/orien/satsetup/internal/prompt"
	"github.com/orien/satsetup/internal/provision"
	"github.com/orien/satsetup/internal/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type installFixture struct {
	prompter *prompt.MockPrompter
	factory  *databricks.MockClientFactory
	store    *databricks.MockProfileStore
	env      *env.MapEnvironment
	ws       *databricks.MemoryWorkspace
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	config   string
}

func newInstallFixture(t *testing.T, cloud model.CloudType, vars map[string]string) *installFixture {
	t.Helper()

	f := &installFixture{
		prompter: &prompt.MockPrompter{},
		factory:  &databricks.MockClientFactory{},
		store:    &databricks.MockProfileStore{},
		env:      env.NewMapEnvironment(vars),
		ws:       databricks.NewMemoryWorkspace(1234, cloud),
		config:   filepath.Join(t.TempDir(), "satsetup.yaml"),
	}
	f.ws.Warehouses = []model.Choice{{Name: model.TestWarehouseName, ID: model.TestWarehouseID}}
	f.ws.Catalogs = []model.Choice{{Name: "main", ID: "main"}}
	f.prompter.On("Spin", mock.Anything).Return(nil)

	oldPrompter := prompt.GetDefaultPrompter()
	prompt.SetPrompter(f.prompter)
	SetClientFactory(f.factory)
	SetProfileStore(f.store)
	SetEnvironment(f.env)
	t.Cleanup(func() {
		prompt.SetPrompter(oldPrompter)
		SetClientFactory(nil)
		SetProfileStore(nil)
		SetEnvironment(nil)
		SetProvisioner(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetOut(&f.stdout)
	rootCmd.SetErr(&f.stderr)
	return f
}

func (f *installFixture) run(extra ...string) error {
	args := append([]string{"install", "--config", f.config, "--dry-run=false", "--verbose=false"}, extra...)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func (f *installFixture) expectProfile(profile string) {
	f.store.On("ListProfiles").Return([]string{"DEFAULT", profile}, nil)
	f.prompter.On("Select", "Select profile", mock.Anything).Return(profile, nil)
	f.factory.On("NewWorkspace", mock.Anything, profile).Return(f.ws, nil)
}

func TestInstallCommand_ProvisionsAWSWorkspace(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, map[string]string{
		questions.EnvAccountID:       model.TestAccountID,
		questions.EnvAWSClientID:     "aws-sp-id",
		questions.EnvAWSClientSecret: "aws-sp-secret",
	})
	f.expectProfile("prod")
	f.prompter.On("Confirm", "Use Unity Catalog?", true).Return(false, nil)
	f.prompter.On("Select", "Select warehouse", mock.Anything).Return(model.TestWarehouseID, nil)

	err := f.run()

	require.NoError(t, err)
	secrets, ok := f.ws.Secrets(provision.ScopeName)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"sat-token-1234",
		"account-console-id",
		"sql-warehouse-id",
		"use-sp-auth",
		"client-id",
		"client-secret",
	}, keys(secrets))
	assert.Contains(t, f.stdout.String(), "Wrote 6 secrets to sat_scope")
	assert.NotContains(t, f.stdout.String(), "aws-sp-secret")
	assert.NotContains(t, f.stderr.String(), "aws-sp-secret")
	f.prompter.AssertNotCalled(t, "Input", mock.Anything, mock.Anything, mock.Anything)
	f.factory.AssertExpectations(t)
}

func TestInstallCommand_DryRunWritesNothing(t *testing.T) {
	f := newInstallFixture(t, model.CloudGCP, map[string]string{
		questions.EnvAccountID: model.TestAccountID,
	})
	f.expectProfile("gcp")
	f.prompter.On("Confirm", "Use Unity Catalog?", true).Return(true, nil)
	f.prompter.On("Select", "Select catalog", mock.Anything).Return("main", nil)
	f.prompter.On("Select", "Select warehouse", mock.Anything).Return(model.TestWarehouseID, nil)
	f.prompter.On("Input", "Path to JSON key file", false, mock.Anything).Return("/keys/sat.json", nil)
	f.prompter.On("Input", "Impersonate Service Account", false, mock.Anything).Return("sat@project.iam.gserviceaccount.com", nil)

	err := f.run("--dry-run")

	require.NoError(t, err)
	_, exists := f.ws.Secrets(provision.ScopeName)
	assert.False(t, exists)
	assert.Zero(t, f.ws.Calls("CreateToken"))
	assert.Contains(t, f.stdout.String(), "Dry run: nothing was written")
	assert.Contains(t, f.stdout.String(), "gs-path-to-json = /keys/sat.json")
	assert.Contains(t, f.stdout.String(), "Catalog:    main")

	stored, _ := f.env.Lookup(questions.EnvGCPPathToJSON)
	assert.Equal(t, "/keys/sat.json", stored)
}

func TestInstallCommand_AbortBeforeWorkspace(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, nil)
	f.store.On("ListProfiles").Return([]string{"DEFAULT"}, nil)
	f.prompter.On("Select", "Select profile", mock.Anything).Return("", prompt.ErrInputAborted)

	err := f.run()

	require.Error(t, err)
	assert.ErrorIs(t, err, prompt.ErrInputAborted)
	assert.Contains(t, err.Error(), "setup aborted")
	f.factory.AssertNotCalled(t, "NewWorkspace", mock.Anything, mock.Anything)
}

func TestInstallCommand_AbortDuringCollectionWritesNothing(t *testing.T) {
	f := newInstallFixture(t, model.CloudAzure, map[string]string{
		questions.EnvAccountID: model.TestAccountID,
	})
	f.ws.SeedScope(provision.ScopeName, map[string]string{"client-id": "previous"})
	f.expectProfile("azure")
	f.prompter.On("Confirm", "Use Unity Catalog?", true).Return(false, nil)
	f.prompter.On("Select", "Select warehouse", mock.Anything).Return(model.TestWarehouseID, nil)
	f.prompter.On("Input", "Azure Tenant ID", false, mock.Anything).Return("", prompt.ErrInputAborted)

	err := f.run()

	assert.ErrorIs(t, err, prompt.ErrInputAborted)
	secrets, _ := f.ws.Secrets(provision.ScopeName)
	assert.Equal(t, map[string]string{"client-id": "previous"}, secrets)
	_, set := f.env.Lookup(questions.EnvAzureTenantID)
	assert.False(t, set)
}

func TestInstallCommand_NoProfiles(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, nil)
	f.store.On("ListProfiles").Return([]string{}, nil)

	err := f.run()

	var noChoices *questions.NoChoicesError
	require.ErrorAs(t, err, &noChoices)
	assert.Equal(t, model.FieldProfile, noChoices.Field)
}

func TestInstallCommand_WorkspaceConnectionFailure(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, nil)
	f.store.On("ListProfiles").Return([]string{"broken"}, nil)
	f.prompter.On("Select", "Select profile", mock.Anything).Return("broken", nil)
	f.factory.On("NewWorkspace", mock.Anything, "broken").Return(nil, errors.New("no host configured"))

	err := f.run()

	assert.EqualError(t, err, "failed to connect to workspace: no host configured")
}

func TestInstallCommand_ProvisionFailureNamesStep(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, map[string]string{
		questions.EnvAccountID:       model.TestAccountID,
		questions.EnvAWSClientID:     "aws-sp-id",
		questions.EnvAWSClientSecret: "aws-sp-secret",
	})
	f.ws.Failures["CreateToken"] = errors.New("token quota exceeded")
	f.expectProfile("prod")
	f.prompter.On("Confirm", "Use Unity Catalog?", true).Return(false, nil)
	f.prompter.On("Select", "Select warehouse", mock.Anything).Return(model.TestWarehouseID, nil)

	err := f.run()

	var stepErr *provision.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, provision.StepTokenCreation, stepErr.Step)
	assert.True(t, databricks.IsRemoteServiceError(err))
}

func TestInstallCommand_UsesInjectedProvisioner(t *testing.T) {
	f := newInstallFixture(t, model.CloudAWS, map[string]string{
		questions.EnvAccountID:       model.TestAccountID,
		questions.EnvAWSClientID:     "aws-sp-id",
		questions.EnvAWSClientSecret: "aws-sp-secret",
	})
	f.expectProfile("prod")
	f.prompter.On("Confirm", "Use Unity Catalog?", true).Return(false, nil)
	f.prompter.On("Select", "Select warehouse", mock.Anything).Return(model.TestWarehouseID, nil)

	mockProvisioner := &provision.MockProvisioner{}
	mockProvisioner.On("Provision", mock.Anything, mock.MatchedBy(func(answers model.AnswerSet) bool {
		id, _ := answers.String(model.FieldAWSClientID)
		return id == "aws-sp-id"
	}), model.CloudAWS).Return(nil, errors.New("provisioning disabled"))
	SetProvisioner(mockProvisioner)

	err := f.run()

	assert.EqualError(t, err, "failed to provision secrets: provisioning disabled")
	mockProvisioner.AssertExpectations(t)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
