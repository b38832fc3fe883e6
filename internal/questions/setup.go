/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package questions

import (
	"regexp"

	"github.com/orien/satsetup/internal/model"
)

// Environment variables consulted before prompting
const (
	EnvAccountID                 = "DATABRICKS_ACCOUNT_ID"
	EnvAWSClientID               = "AWS_CLIENT_ID"
	EnvAWSClientSecret           = "AWS_CLIENT_SECRET"
	EnvAzureTenantID             = "AZURE_TENANT_ID"
	EnvAzureSubscriptionID       = "AZURE_SUBSCRIPTION_ID"
	EnvAzureClientID             = "AZURE_CLIENT_ID"
	EnvAzureClientSecret         = "AZURE_CLIENT_SECRET"
	EnvGCPPathToJSON             = "GCP_GS_PATH_TO_JSON"
	EnvGCPJSONPath               = "GCP_JSON_PATH"
	EnvGCPImpersonateSA          = "GCP_IMPERSONATE_SERVICE_ACCOUNT"
	EnvGCPImpersonateSAShortName = "GCP_IMPERSONATE_SA"
)

var accountIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateAccountID accepts only canonical lowercase UUIDs
func ValidateAccountID(value string) error {
	if !accountIDPattern.MatchString(value) {
		return &ValidationError{
			Field:  model.FieldAccountID,
			Reason: "expected a lowercase UUID such as 12345678-1234-1234-1234-123456789abc",
		}
	}
	return nil
}

// SetupModel declares the wizard's questions in evaluation order
func SetupModel(lookups *Lookups) (*Model, error) {
	fields := []Field{
		{
			Name:     model.FieldAccountID,
			Kind:     KindText,
			Prompt:   "Databricks Account ID",
			EnvVars:  []string{EnvAccountID},
			Validate: ValidateAccountID,
		},
		{
			Name:         model.FieldEnableUC,
			Kind:         KindConfirm,
			Prompt:       "Use Unity Catalog?",
			DefaultValue: true,
		},
		{
			Name:      model.FieldCatalog,
			Kind:      KindSelect,
			Prompt:    "Select catalog",
			Options:   lookups.Catalogs,
			DependsOn: []string{model.FieldEnableUC},
			Skip: func(answers model.AnswerSet) bool {
				return !answers.UnityCatalogEnabled()
			},
		},
		{
			Name:    model.FieldWarehouse,
			Kind:    KindSelect,
			Prompt:  "Select warehouse",
			Options: lookups.Warehouses,
		},
	}
	fields = append(fields, CloudFields()...)
	return NewModel(fields...)
}

// CloudFields declares the provider-specific credentials, AWS then Azure then GCP
func CloudFields() []Field {
	return []Field{
		{Name: model.FieldAWSClientID, Kind: KindText, Prompt: "Client ID", Cloud: model.CloudAWS, EnvVars: []string{EnvAWSClientID}},
		{Name: model.FieldAWSClientSecret, Kind: KindSecret, Prompt: "Client Secret", Cloud: model.CloudAWS, EnvVars: []string{EnvAWSClientSecret}},

		{Name: model.FieldAzureTenantID, Kind: KindText, Prompt: "Azure Tenant ID", Cloud: model.CloudAzure, EnvVars: []string{EnvAzureTenantID}},
		{Name: model.FieldAzureSubscriptionID, Kind: KindText, Prompt: "Azure Subscription ID", Cloud: model.CloudAzure, EnvVars: []string{EnvAzureSubscriptionID}},
		{Name: model.FieldAzureClientID, Kind: KindText, Prompt: "Client ID", Cloud: model.CloudAzure, EnvVars: []string{EnvAzureClientID}},
		{Name: model.FieldAzureClientSecret, Kind: KindSecret, Prompt: "Client Secret", Cloud: model.CloudAzure, EnvVars: []string{EnvAzureClientSecret}},

		{Name: model.FieldGCPPathToJSON, Kind: KindText, Prompt: "Path to JSON key file", Cloud: model.CloudGCP, EnvVars: []string{EnvGCPPathToJSON, EnvGCPJSONPath}},
		{Name: model.FieldGCPImpersonateServiceAcct, Kind: KindText, Prompt: "Impersonate Service Account", Cloud: model.CloudGCP, EnvVars: []string{EnvGCPImpersonateSA, EnvGCPImpersonateSAShortName}},
	}
}
