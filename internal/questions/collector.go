/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package questions

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/orien/satsetup/internal/databricks"
	"github.com/orien/satsetup/internal/env"
	"github.com/orien/satsetup/internal/model"
	"github.com/orien/satsetup/internal/prompt"
)

// Collector asks the operator for every field of a Model
type Collector struct {
	prompter prompt.Prompter
	resolver *env.Resolver
	logger   *log.Logger
}

// NewCollector creates a Collector. Env-backed fields are resolved through resolver.
func NewCollector(prompter prompt.Prompter, resolver *env.Resolver, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.Default()
	}
	return &Collector{
		prompter: prompter,
		resolver: resolver,
		logger:   logger,
	}
}

// SelectProfile asks which local profile to use
func (c *Collector) SelectProfile(store databricks.ProfileStore) (string, error) {
	var profiles []string
	err := c.prompter.Spin("Loading profiles...", func() error {
		var err error
		profiles, err = store.ListProfiles()
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to load profiles: %w", err)
	}
	if len(profiles) == 0 {
		return "", &NoChoicesError{Field: model.FieldProfile}
	}

	options := make([]prompt.Option, len(profiles))
	for i, p := range profiles {
		options[i] = prompt.Option{Label: p, Value: p}
	}
	profile, err := c.prompter.Select("Select profile", options)
	if err != nil {
		return "", fieldError(model.FieldProfile, err)
	}
	c.logger.Debug("Selected profile", "profile", profile)
	return profile, nil
}

// Collect visits every field in order, asking or skipping it, and returns the answers.
// Collection stops at the first abort or unrecoverable error.
func (c *Collector) Collect(ctx context.Context, m *Model, gate *Gate) (model.AnswerSet, error) {
	answers := model.NewAnswerSet()

	for _, f := range m.Fields() {
		if gate.ShouldSkip(f, answers) {
			c.logger.Debug("Skipping field", "field", f.Name)
			continue
		}

		value, err := c.ask(ctx, f)
		if err != nil {
			return nil, err
		}
		answers.Set(f.Name, value)
	}

	return answers, nil
}

func (c *Collector) ask(ctx context.Context, f Field) (any, error) {
	switch f.Kind {
	case KindText, KindSecret:
		value, err := c.askText(f)
		if err != nil {
			return nil, fieldError(f.Name, err)
		}
		return value, nil

	case KindConfirm:
		confirmed, err := c.prompter.Confirm(f.Prompt, f.DefaultValue)
		if err != nil {
			return nil, fieldError(f.Name, err)
		}
		return confirmed, nil

	case KindSelect:
		return c.selectChoice(ctx, f)

	default:
		return nil, fmt.Errorf("field '%s' has unsupported kind %s", f.Name, f.Kind)
	}
}

func (c *Collector) askText(f Field) (string, error) {
	secret := f.Kind == KindSecret
	if len(f.EnvVars) > 0 {
		return c.resolver.ResolveValid(f.EnvVars, f.Prompt, secret, f.Validate)
	}
	return prompt.InputUntilValid(c.prompter, f.Prompt, secret, f.Validate, func(err error) {
		c.logger.Warn("Invalid input", "field", f.Name, "error", err)
	})
}

func (c *Collector) selectChoice(ctx context.Context, f Field) (model.Choice, error) {
	choices, err := f.Options(ctx)
	if err != nil {
		return model.Choice{}, fmt.Errorf("failed to load choices for %s: %w", f.Name, err)
	}
	if len(choices) == 0 {
		return model.Choice{}, &NoChoicesError{Field: f.Name}
	}

	options := make([]prompt.Option, len(choices))
	for i, choice := range choices {
		options[i] = prompt.Option{Label: choice.Name, Value: choice.ID}
	}

	selected, err := c.prompter.Select(f.Prompt, options)
	if err != nil {
		return model.Choice{}, fieldError(f.Name, err)
	}
	for _, choice := range choices {
		if choice.ID == selected {
			return choice, nil
		}
	}
	return model.Choice{}, fmt.Errorf("selection '%s' is not a valid choice for %s", selected, f.Name)
}

// fieldError names the field a prompt failure belongs to
func fieldError(name string, err error) error {
	return fmt.Errorf("field '%s': %w", name, err)
}
