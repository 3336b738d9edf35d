package engine

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides sprig's utility functions to authored
// response templates.
var templateFuncs = sprig.TxtFuncMap()

// responseData is what authored interaction responses can reference.
type responseData struct {
	Name   string
	Room   string
	Sanity int
	Score  int
}

// expandResponse expands an authored response template. Authored data
// is trusted but not infallible; a bad template degrades to its raw
// text instead of dropping the turn.
func expandResponse(tmplStr string, data *responseData) string {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ExpandTemplate expands a template string against arbitrary data.
// Exposed for transports that template their own output.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
