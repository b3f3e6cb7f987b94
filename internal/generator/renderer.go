// Package generator renders the three kinds of project artifact: the main
// source file, the CMake build descriptor, and the VS Code integration
// files. All rendering is deterministic; for a fixed Config and catalog the
// output is byte-identical across runs.
package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// Sentinel errors for the generator package.
var (
	// ErrTemplateNotFound indicates a named template is missing from the
	// embedded set.
	ErrTemplateNotFound = errors.New("generator: template not found")

	// ErrInvalidDebugger indicates a debugger index outside the catalog's
	// fixed debugger list.
	ErrInvalidDebugger = errors.New("generator: invalid debugger index")
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// posixPath converts Windows backslash paths to forward-slash paths.
	// CMake and JSON are both happier with forward slashes on every host.
	"posixPath": func(s string) string {
		return strings.ReplaceAll(s, "\\", "/")
	},
	// escapeBackslash doubles backslashes for embedding in JSON strings.
	"escapeBackslash": func(s string) string {
		return strings.ReplaceAll(s, "\\", "\\\\")
	},
}

// renderTemplate parses the named embedded template and executes it with
// strict mode so a missing key fails loudly instead of rendering "<no value>".
func renderTemplate(name string, data any) ([]byte, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("template execute %q: %w", name, err)
	}
	return buf.Bytes(), nil
}
