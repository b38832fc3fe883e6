/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package provision writes collected answers into the workspace secret scope
// read by the Security Analysis Tool job.
package provision

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orien/satsetup/internal/model"
)

const (
	// ScopeName is the secret scope the analysis job reads from
	ScopeName = "sat_scope"
	// TokenLifetime is the validity of the generated personal access token
	TokenLifetime = 90 * 24 * time.Hour
	// TokenComment labels the generated token in the workspace UI
	TokenComment = "Security Analysis Tool"
)

// Secret keys written to the scope
const (
	KeyTokenPrefix      = "sat-token-"
	KeyAccountConsoleID = "account-console-id"
	KeySQLWarehouseID   = "sql-warehouse-id"
	KeyUseSPAuth        = "use-sp-auth"
)

// Secret is a single key/value pair to store
type Secret struct {
	Key       string
	Value     string
	Sensitive bool
}

// Plan is the ordered list of writes a provisioning run performs.
// The token secret is not listed because its value only exists once the token is created.
type Plan struct {
	Scope       string
	Cloud       model.CloudType
	WorkspaceID int64
	Catalog     string
	Secrets     []Secret
}

// TokenKey returns the key holding the personal access token for a workspace
func TokenKey(workspaceID int64) string {
	return KeyTokenPrefix + strconv.FormatInt(workspaceID, 10)
}

// TokenKey returns the key the generated token is written under
func (p *Plan) TokenKey() string {
	return TokenKey(p.WorkspaceID)
}

// Keys returns every key the plan writes, token first
func (p *Plan) Keys() []string {
	keys := make([]string, 0, len(p.Secrets)+1)
	keys = append(keys, p.TokenKey())
	for _, s := range p.Secrets {
		keys = append(keys, s.Key)
	}
	return keys
}

// BuildPlan derives the secrets to write from the answers. It performs no I/O.
func BuildPlan(answers model.AnswerSet, cloud model.CloudType, workspaceID int64) (*Plan, error) {
	if _, err := model.ParseCloudType(string(cloud)); err != nil {
		return nil, err
	}

	accountID, ok := answers.String(model.FieldAccountID)
	if !ok || accountID == "" {
		return nil, fmt.Errorf("answer '%s' is required", model.FieldAccountID)
	}
	warehouse, ok := answers.Choice(model.FieldWarehouse)
	if !ok || warehouse.ID == "" {
		return nil, fmt.Errorf("answer '%s' is required", model.FieldWarehouse)
	}

	plan := &Plan{
		Scope:       ScopeName,
		Cloud:       cloud,
		WorkspaceID: workspaceID,
		Catalog:     answers.Catalog(),
		Secrets: []Secret{
			{Key: KeyAccountConsoleID, Value: accountID},
			{Key: KeySQLWarehouseID, Value: warehouse.ID},
		},
	}

	if cloud == model.CloudAWS {
		plan.Secrets = append(plan.Secrets, Secret{Key: KeyUseSPAuth, Value: "true"})
	}

	prefix := cloud.Prefix()
	for _, name := range answers.Keys() {
		if !strings.Contains(name, prefix) {
			continue
		}
		value, err := secretValue(answers[name])
		if err != nil {
			return nil, fmt.Errorf("answer '%s': %w", name, err)
		}
		plan.Secrets = append(plan.Secrets, Secret{
			Key:       strings.Replace(name, prefix, "", 1),
			Value:     value,
			Sensitive: strings.Contains(name, "secret"),
		})
	}

	return plan, nil
}

func secretValue(v any) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case model.Choice:
		return value.ID, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
