// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"errors"
	"fmt"
)

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrLoadSchema is returned when SDL parsing or schema validation fails.
	ErrLoadSchema = errors.New("load schema")
	// ErrEmptySchema is returned when no schema source was provided.
	ErrEmptySchema = errors.New("schema has no sources")
	// ErrNilSchema is returned when renderer is built without a schema.
	ErrNilSchema = errors.New("schema is nil")
	// ErrInvalidOptions is returned when render options fail validation.
	ErrInvalidOptions = errors.New("invalid render options")
	// ErrUnknownDeprecationMode is returned when deprecation mode is not supported.
	ErrUnknownDeprecationMode = errors.New("unknown deprecation mode")
	// ErrUnknownExampleMode is returned when operation example mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrBuildExample is returned when an operation example cannot be built.
	ErrBuildExample = errors.New("build operation example")
	// ErrInvalidGroupByDirective is returned when group-by-directive expression cannot be parsed.
	ErrInvalidGroupByDirective = errors.New("invalid group-by-directive")
	// ErrInvalidCustomDirective is returned when custom directive registration is malformed.
	ErrInvalidCustomDirective = errors.New("invalid custom directive")
	// ErrParseTemplate is returned when document template parsing fails.
	ErrParseTemplate = errors.New("parse document template")
	// ErrExecuteTemplate is returned when document template execution fails.
	ErrExecuteTemplate = errors.New("execute document template")
	// ErrEncodeFrontMatter is returned when front matter YAML encoding fails.
	ErrEncodeFrontMatter = errors.New("encode front matter")
	// ErrDecodeFrontMatter is returned when front matter YAML decoding fails.
	ErrDecodeFrontMatter = errors.New("decode front matter")
	// ErrMissingFrontMatter is returned when content has no closing front matter delimiter.
	ErrMissingFrontMatter = errors.New("front matter closing delimiter is missing")
	// ErrRenderEntity is returned when one entity could not be assembled.
	ErrRenderEntity = errors.New("render entity")
	// ErrDirectiveResolver is returned by custom directive resolvers that panicked.
	ErrDirectiveResolver = errors.New("directive resolver")
)

// EntityError records one failed entity inside a batch render.
type EntityError struct {
	Name     string
	Category Category
	Err      error
}

// Error implements error.
func (e *EntityError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", ErrRenderEntity, e.Category.Singular(), e.Name, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *EntityError) Unwrap() []error {
	return []error{ErrRenderEntity, e.Err}
}
