/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

// Test fixtures shared across packages
const (
	TestAccountID     = "12345678-1234-1234-1234-123456789abc"
	TestWarehouseID   = "wh-1"
	TestWarehouseName = "Serverless Starter Warehouse"
)

// NewTestAnswers creates an AnswerSet holding the common, cloud-agnostic answers
func NewTestAnswers(enableUC bool) AnswerSet {
	answers := NewAnswerSet()
	answers.Set(FieldAccountID, TestAccountID)
	answers.Set(FieldEnableUC, enableUC)
	if enableUC {
		answers.Set(FieldCatalog, Choice{Name: "main", ID: "main"})
	}
	answers.Set(FieldWarehouse, Choice{Name: TestWarehouseName, ID: TestWarehouseID})
	return answers
}

// NewTestAWSAnswers creates an AnswerSet for an AWS workspace
func NewTestAWSAnswers() AnswerSet {
	answers := NewTestAnswers(false)
	answers.Set(FieldAWSClientID, "aws-sp-id")
	answers.Set(FieldAWSClientSecret, "aws-sp-secret")
	return answers
}

// NewTestAzureAnswers creates an AnswerSet for an Azure workspace
func NewTestAzureAnswers() AnswerSet {
	answers := NewTestAnswers(true)
	answers.Set(FieldAzureTenantID, "tenant")
	answers.Set(FieldAzureSubscriptionID, "subscription")
	answers.Set(FieldAzureClientID, "azure-sp-id")
	answers.Set(FieldAzureClientSecret, "azure-sp-secret")
	return answers
}

// NewTestGCPAnswers creates an AnswerSet for a GCP workspace
func NewTestGCPAnswers() AnswerSet {
	answers := NewTestAnswers(true)
	answers.Set(FieldGCPPathToJSON, "/tmp/sa.json")
	answers.Set(FieldGCPImpersonateServiceAcct, "sat@project.iam.gserviceaccount.com")
	return answers
}
