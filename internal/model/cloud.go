/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"fmt"
	"slices"
	"strings"
)

// CloudType identifies the cloud provider hosting the Databricks workspace
type CloudType string

const (
	CloudAWS   CloudType = "aws"
	CloudAzure CloudType = "azure"
	CloudGCP   CloudType = "gcp"
)

// CloudTypes lists the supported providers in question order
var CloudTypes = []CloudType{CloudAWS, CloudAzure, CloudGCP}

// ParseCloudType converts a provider name into a CloudType
func ParseCloudType(s string) (CloudType, error) {
	c := CloudType(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(CloudTypes, c) {
		return "", fmt.Errorf("unsupported cloud type '%s'", s)
	}
	return c, nil
}

// Prefix returns the field-name prefix owned by this cloud, e.g. "aws-"
func (c CloudType) Prefix() string {
	return string(c) + "-"
}

func (c CloudType) String() string {
	return string(c)
}
