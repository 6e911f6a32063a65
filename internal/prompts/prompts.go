// Package prompts holds the embedded prompt templates for recipe generation.
// The .tmpl files in this package are the source of truth; the generation
// service composes them into a single prompt per request.
package prompts

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// Request carries the user-facing inputs for a generation prompt.
type Request struct {
	Ingredients []string
	Preferences []string
	Units       string
}

// SystemPrompt returns the system prompt for recipe generation.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt for a generation request.
func UserPrompt(req Request) string {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, req); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}

// Build composes the full prompt sent to a provider that takes a single
// prompt string.
func Build(req Request) string {
	return SystemPrompt() + "\n" + UserPrompt(req)
}
