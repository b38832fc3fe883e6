/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// forceAccessible switches every form to line-based accessible mode
var forceAccessible bool

// SetAccessible forces accessible (non-TUI) prompts, e.g. for screen readers
func SetAccessible(accessible bool) {
	forceAccessible = accessible
}

func accessible() bool {
	return forceAccessible || !IsTerminal(os.Stdin)
}

func runForm(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(accessible()).
		WithShowHelp(false).
		Run()
}

var runInputPrompt = func(title string, secret bool, validate func(string) error, value *string) error {
	field := huh.NewInput().Title(title).Value(value)
	if secret {
		field.EchoMode(huh.EchoModePassword)
	}
	if validate != nil {
		field.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}
	return runForm(field)
}

var runConfirmPrompt = func(title string, value *bool) error {
	return runForm(huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value))
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return runForm(huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected))
}

var runSpinner = func(title string, action func()) error {
	if !IsTerminal(os.Stdout) {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}

// HuhPrompter implements Prompter using the huh TUI library
type HuhPrompter struct{}

// NewHuhPrompter creates a prompter that renders huh forms on the terminal
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Input(title string, secret bool, validate func(string) error) (string, error) {
	var value string
	if err := runInputPrompt(title, secret, validate, &value); err != nil {
		return "", wrapError("input", err)
	}
	return strings.TrimSpace(value), nil
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	if err := runConfirmPrompt(title, &confirmed); err != nil {
		return false, wrapError("confirm", err)
	}
	return confirmed, nil
}

func (p *HuhPrompter) Select(title string, options []Option) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", wrapError("select", err)
	}
	return selected, nil
}

func (p *HuhPrompter) Spin(title string, action func() error) error {
	var actionErr error
	if err := runSpinner(title, func() { actionErr = action() }); err != nil {
		return fmt.Errorf("spinner: %w", err)
	}
	return actionErr
}

func wrapError(kind string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrInputAborted
	}
	return fmt.Errorf("prompt %s: %w", kind, err)
}
