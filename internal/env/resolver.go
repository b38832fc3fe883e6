/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package env

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/orien/satsetup/internal/prompt"
)

// Resolver supplies a value for an environment variable, prompting only when it is unset
type Resolver struct {
	env      Environment
	prompter prompt.Prompter
	logger   *log.Logger
}

// NewResolver creates a Resolver over env. A nil logger falls back to the default logger.
func NewResolver(env Environment, prompter prompt.Prompter, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		env:      env,
		prompter: prompter,
		logger:   logger,
	}
}

// Resolve returns the value of name, prompting with promptText when it is unset.
// A prompted value is written back to the environment before it is returned.
func (r *Resolver) Resolve(name, promptText string, secret bool) (string, error) {
	return r.ResolveValid([]string{name}, promptText, secret, nil)
}

// ResolveValid resolves the first of names that is set and passes validate.
// names[0] is the primary variable: alias hits and prompted values are stored under it.
func (r *Resolver) ResolveValid(names []string, promptText string, secret bool, validate func(string) error) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no environment variable names given for '%s'", promptText)
	}
	primary := names[0]

	for _, name := range names {
		value, ok := r.env.Lookup(name)
		// An exported but empty variable is treated as unset and prompted for
		if !ok || value == "" {
			continue
		}
		if validate != nil {
			if err := validate(value); err != nil {
				r.logger.Warn("Ignoring invalid environment value", "name", name, "error", err)
				continue
			}
		}
		r.logger.Debug("Resolved from environment", "name", name)
		if name != primary {
			if err := r.env.Set(primary, value); err != nil {
				return "", fmt.Errorf("failed to set %s: %w", primary, err)
			}
		}
		return value, nil
	}

	value, err := prompt.InputUntilValid(r.prompter, promptText, secret, validate, func(err error) {
		r.logger.Warn("Invalid input", "name", primary, "error", err)
	})
	if err != nil {
		return "", err
	}

	if err := r.env.Set(primary, value); err != nil {
		return "", fmt.Errorf("failed to set %s: %w", primary, err)
	}
	r.logger.Debug("Resolved from prompt", "name", primary)
	return value, nil
}
