// Package web holds the HTML views served by the handlers.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"statusLabel": func(approved bool) string {
		if approved {
			return "Approved"
		}
		return "Pending review"
	},
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
}

// Templates parses every view. Each page is addressed by its file name,
// e.g. "login.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is Templates for program setup, where a broken view is fatal.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
