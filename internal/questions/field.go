/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package questions declares the fields the setup wizard collects and drives
// them against the operator prompt.
package questions

import (
	"context"
	"fmt"
	"slices"

	"github.com/orien/satsetup/internal/model"
)

// Kind is the input type of a field
type Kind int

const (
	KindText Kind = iota
	KindSecret
	KindConfirm
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSecret:
		return "secret"
	case KindConfirm:
		return "confirm"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares one value to collect
type Field struct {
	Name   string
	Kind   Kind
	Prompt string

	// Cloud restricts the field to one provider; empty means every provider
	Cloud model.CloudType

	// EnvVars are consulted before prompting; the first entry is written back
	EnvVars []string

	// DefaultValue is the initial answer for confirm fields
	DefaultValue bool

	// Validate rejects malformed text input
	Validate func(string) error

	// Options loads the choices of a select field
	Options func(ctx context.Context) ([]model.Choice, error)

	// Skip is a pure predicate over the answers collected so far
	Skip func(answers model.AnswerSet) bool

	// DependsOn names earlier fields that Skip reads
	DependsOn []string
}

// Model is an ordered list of fields with unique names
type Model struct {
	fields []Field
}

// NewModel validates field names and dependency order
func NewModel(fields ...Field) (*Model, error) {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field '%s'", f.Name)
		}
		for _, dep := range f.DependsOn {
			if !seen[dep] {
				return nil, fmt.Errorf("field '%s' depends on '%s' which is not declared before it", f.Name, dep)
			}
		}
		if f.Kind == KindSelect && f.Options == nil {
			return nil, fmt.Errorf("select field '%s' has no options source", f.Name)
		}
		seen[f.Name] = true
	}
	return &Model{fields: slices.Clone(fields)}, nil
}

// Fields returns the fields in evaluation order
func (m *Model) Fields() []Field {
	return slices.Clone(m.fields)
}

// Names returns the field names in evaluation order
func (m *Model) Names() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.Name
	}
	return names
}
