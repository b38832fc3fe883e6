/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"errors"
)

// ErrInputAborted is returned when the operator cancels a prompt
var ErrInputAborted = errors.New("input aborted by user")

// Option is a single entry in a selection list
type Option struct {
	Label string
	Value string
}

// Prompter asks the operator for values of a given kind
type Prompter interface {
	// Input asks for free text. Secret input is masked. validate may be nil.
	Input(title string, secret bool, validate func(string) error) (string, error)
	// Confirm asks a yes/no question
	Confirm(title string, defaultValue bool) (bool, error)
	// Select asks the operator to pick one option and returns its Value
	Select(title string, options []Option) (string, error)
	// Spin shows a progress indicator while action runs
	Spin(title string, action func() error) error
}

// InputUntilValid keeps asking until validate accepts the input.
// invalid, when set, is told about every rejected value.
func InputUntilValid(p Prompter, title string, secret bool, validate func(string) error, invalid func(error)) (string, error) {
	for {
		value, err := p.Input(title, secret, validate)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return value, nil
		}
		verr := validate(value)
		if verr == nil {
			return value, nil
		}
		if invalid != nil {
			invalid(verr)
		}
	}
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewHuhPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// GetDefaultPrompter returns the current default prompter
func GetDefaultPrompter() Prompter {
	return defaultPrompter
}
