// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores the built-in document template embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtinTemplateFile is the embedded document template path.
const builtinTemplateFile = "templates/document.md.gotmpl"

// documentView is the view model passed to the document template.
type documentView struct {
	Name        string
	Category    string
	Group       string
	Tags        string
	Deprecation string
	Description string
	Descriptors []string
	SpecifiedBy string
	Code        string
	Sections    []string
	Relations   string
}

// BuiltinTemplate returns the built-in document template text.
func BuiltinTemplate() (string, error) {
	data, err := templateFS.ReadFile(builtinTemplateFile)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}

	return string(data), nil
}

// resolveTemplate parses custom template text or falls back to the built-in one.
func resolveTemplate(templateText string) (*template.Template, error) {
	name := "custom"
	if strings.TrimSpace(templateText) == "" {
		builtin, err := BuiltinTemplate()
		if err != nil {
			return nil, err
		}

		name = "document"
		templateText = builtin
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// templateFuncs provides utility functions available inside document templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"slugify":      Slugify,
		"escapeInline": escapeInline,
		"join":         joinBlocks,
	}
}

// executeTemplate renders a view and normalizes markdown spacing.
func (r *Renderer) executeTemplate(view documentView) (string, error) {
	var out strings.Builder
	if err := r.template.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}
