/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"sort"
)

// Field names collected by the setup wizard
const (
	FieldProfile   = "profile"
	FieldAccountID = "account_id"
	FieldEnableUC  = "enable_uc"
	FieldCatalog   = "catalog"
	FieldWarehouse = "warehouse"

	FieldAWSClientID     = "aws-client-id"
	FieldAWSClientSecret = "aws-client-secret"

	FieldAzureTenantID       = "azure-tenant-id"
	FieldAzureSubscriptionID = "azure-subscription-id"
	FieldAzureClientID       = "azure-client-id"
	FieldAzureClientSecret   = "azure-client-secret"

	FieldGCPPathToJSON             = "gcp-gs-path-to-json"
	FieldGCPImpersonateServiceAcct = "gcp-impersonate-service-account"
)

// DefaultCatalog is used whenever Unity Catalog is disabled
const DefaultCatalog = "hive_metastore"

// Choice is the structured record stored for single-select answers
type Choice struct {
	Name string
	ID   string
}

func (c Choice) String() string {
	return c.Name
}

// AnswerSet maps field names to resolved values (string, bool or Choice).
// Skipped fields are absent rather than nil.
type AnswerSet map[string]any

// NewAnswerSet creates an empty answer set
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Set records the value for a field
func (a AnswerSet) Set(name string, value any) {
	a[name] = value
}

// Has reports whether the field was answered
func (a AnswerSet) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a text answer
func (a AnswerSet) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Bool returns a confirmation answer
func (a AnswerSet) Bool(name string) (bool, bool) {
	v, ok := a[name].(bool)
	return v, ok
}

// Choice returns a selection answer
func (a AnswerSet) Choice(name string) (Choice, bool) {
	v, ok := a[name].(Choice)
	return v, ok
}

// Keys returns the answered field names in sorted order
func (a AnswerSet) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnityCatalogEnabled reports the enable_uc answer, defaulting to false when absent
func (a AnswerSet) UnityCatalogEnabled() bool {
	enabled, _ := a.Bool(FieldEnableUC)
	return enabled
}

// Catalog returns the selected catalog name, or hive_metastore when none was collected
func (a AnswerSet) Catalog() string {
	if c, ok := a.Choice(FieldCatalog); ok && c.Name != "" {
		return c.Name
	}
	return DefaultCatalog
}
