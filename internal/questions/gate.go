/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package questions

import (
	"github.com/orien/satsetup/internal/model"
)

// Gate decides per field whether it is asked or skipped
type Gate struct {
	cloud model.CloudType
}

// NewGate creates a gate for the workspace's cloud
func NewGate(cloud model.CloudType) *Gate {
	return &Gate{cloud: cloud}
}

// Cloud returns the cloud the gate admits
func (g *Gate) Cloud() model.CloudType {
	return g.cloud
}

// ShouldSkip is evaluated when the field is reached, so earlier answers are visible
func (g *Gate) ShouldSkip(f Field, answers model.AnswerSet) bool {
	if f.Cloud != "" && f.Cloud != g.cloud {
		return true
	}
	if f.Skip != nil && f.Skip(answers) {
		return true
	}
	return false
}
