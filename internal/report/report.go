/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package report renders the provisioning plan and its outcome for the operator.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/orien/satsetup/internal/provision"
)

const summaryTemplate = `{{ title "Security Analysis Tool secrets" }}
{{ label "Workspace" }}{{ .Plan.WorkspaceID }} ({{ .Plan.Cloud | upper }})
{{ label "Scope" }}{{ .Plan.Scope }}
{{ label "Catalog" }}{{ .Plan.Catalog }}

{{ key .Plan.TokenKey }} = {{ subtle "<generated token>" }}
{{- range .Plan.Secrets }}
{{ key .Key }} = {{ if .Sensitive }}{{ subtle (repeat 8 "*") }}{{ else }}{{ value .Value }}{{ end }}
{{- end }}
`

const outcomeTemplate = `{{- if .DryRun -}}
{{ warning "Dry run: nothing was written" }}
{{- else -}}
{{ if .Result.Replaced }}{{ subtle (printf "Replaced existing scope %s" .Plan.Scope) }}
{{ end -}}
{{ success (printf "Wrote %d %s to %s" (len .Result.Written) (ternary "secret" "secrets" (eq (len .Result.Written) 1)) .Plan.Scope) }}
{{- end }}
`

// Renderer produces the operator-facing summary
type Renderer struct {
	styles *StyleSet
	tmpl   *template.Template
}

type summaryData struct {
	Plan   *provision.Plan
	Result *provision.Result
	DryRun bool
}

// NewRenderer creates a Renderer with the given styles
func NewRenderer(styles *StyleSet) (*Renderer, error) {
	funcs := sprig.TxtFuncMap()
	funcs["title"] = styleFunc(styles.Title)
	funcs["label"] = func(s string) string { return styles.Label.Render(fmt.Sprintf("%-12s", s+":")) }
	funcs["key"] = styleFunc(styles.Key)
	funcs["value"] = styleFunc(styles.Value)
	funcs["subtle"] = styleFunc(styles.Subtle)
	funcs["success"] = styleFunc(styles.Success)
	funcs["warning"] = styleFunc(styles.Warning)

	tmpl, err := template.New("summary").Funcs(funcs).Parse(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary template: %w", err)
	}
	if _, err := tmpl.New("outcome").Parse(outcomeTemplate); err != nil {
		return nil, fmt.Errorf("failed to parse outcome template: %w", err)
	}

	return &Renderer{styles: styles, tmpl: tmpl}, nil
}

// RenderPlan describes what a dry run would write
func (r *Renderer) RenderPlan(plan *provision.Plan) (string, error) {
	return r.render(summaryData{Plan: plan, DryRun: true})
}

// RenderResult describes a completed provisioning run
func (r *Renderer) RenderResult(result *provision.Result) (string, error) {
	return r.render(summaryData{Plan: result.Plan, Result: result})
}

func (r *Renderer) render(data summaryData) (string, error) {
	var summary, outcome bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&summary, "summary", data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	if err := r.tmpl.ExecuteTemplate(&outcome, "outcome", data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}

	body := r.styles.Box.Render(strings.TrimRight(summary.String(), "\n"))
	return body + "\n" + strings.TrimRight(outcome.String(), "\n") + "\n", nil
}

func styleFunc(style lipgloss.Style) func(string) string {
	return func(s string) string {
		return style.Render(s)
	}
}
