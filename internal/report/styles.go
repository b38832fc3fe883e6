/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import (
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
)

// StyleSet contains the styles for the provisioning summary
type StyleSet struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style

	useColour bool
}

// NewStyleSet creates a style set from Fang's color scheme so the summary
// matches the command help output.
//
// Color Mapping from Fang ColorScheme:
//   - Title    -> summary title
//   - Argument -> secret keys
//   - Comment  -> masked values, labels
//   - Flag     -> success line
//   - Command  -> dry-run warning
func NewStyleSet(useColour bool) *StyleSet {
	s := &StyleSet{useColour: useColour}

	if !useColour {
		plain := lipgloss.NewStyle()
		s.Title = plain
		s.Label = plain
		s.Key = plain
		s.Value = plain
		s.Subtle = plain
		s.Success = plain
		s.Warning = plain
		s.Box = plain
		return s
	}

	hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	lightDark := lipgloss.LightDark(hasDark)
	scheme := fang.DefaultColorScheme(lightDark)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.Title)

	s.Label = lipgloss.NewStyle().
		Foreground(scheme.Comment)

	s.Key = lipgloss.NewStyle().
		Foreground(scheme.Argument)

	s.Value = lipgloss.NewStyle().
		Foreground(scheme.Base)

	s.Subtle = lipgloss.NewStyle().
		Foreground(scheme.Comment)

	s.Success = lipgloss.NewStyle().
		Foreground(scheme.Flag).
		Bold(true)

	s.Warning = lipgloss.NewStyle().
		Foreground(scheme.Command).
		Bold(true)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(scheme.DimmedArgument).
		Padding(0, 1)

	return s
}

// UseColour reports whether the set renders ANSI styling
func (s *StyleSet) UseColour() bool {
	return s.useColour
}
