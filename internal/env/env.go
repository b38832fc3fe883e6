/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package env resolves named configuration values from the environment,
// falling back to an operator prompt and caching the answer for the rest of the run.
package env

import (
	"os"
	"strings"
)

// Environment is a mutable set of named values
type Environment interface {
	Lookup(name string) (string, bool)
	Set(name, value string) error
}

// OSEnvironment reads and writes the process environment
type OSEnvironment struct{}

func (OSEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (OSEnvironment) Set(name, value string) error {
	return os.Setenv(name, value)
}

// MapEnvironment is an in-memory Environment
type MapEnvironment struct {
	values map[string]string
}

// NewMapEnvironment creates an in-memory environment seeded with a copy of values
func NewMapEnvironment(values map[string]string) *MapEnvironment {
	m := &MapEnvironment{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// SnapshotOS creates an in-memory environment seeded from the process environment
func SnapshotOS() *MapEnvironment {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok {
			values[name] = value
		}
	}
	return &MapEnvironment{values: values}
}

func (m *MapEnvironment) Lookup(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *MapEnvironment) Set(name, value string) error {
	m.values[name] = value
	return nil
}
