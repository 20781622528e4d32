// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// WildcardDirective registers resolvers applied to every directive without its own entry.
const WildcardDirective = "*"

// DescriptorFunc turns an applied directive into descriptive text.
type DescriptorFunc func(directive *ast.Directive, node *Node) (string, error)

// TagFunc turns an applied directive into a badge.
type TagFunc func(directive *ast.Directive, node *Node) (Badge, error)

// CustomDirective holds optional resolvers of one directive.
type CustomDirective struct {
	// Definition is filled from the schema when left nil.
	Definition *ast.DirectiveDefinition
	Descriptor DescriptorFunc
	Tag        TagFunc
}

// CustomDirectiveMap registers custom directives by name.
type CustomDirectiveMap map[string]CustomDirective

// normalize validates registrations and returns a copy keyed by bare names.
func (m CustomDirectiveMap) normalize() (CustomDirectiveMap, error) {
	if len(m) == 0 {
		return nil, nil
	}

	out := make(CustomDirectiveMap, len(m))
	for name, item := range m {
		key := strings.TrimPrefix(strings.TrimSpace(name), "@")
		if key == "" {
			return nil, fmt.Errorf("%w: empty directive name", ErrInvalidCustomDirective)
		}

		if item.Descriptor == nil && item.Tag == nil {
			return nil, fmt.Errorf("%w %q: neither descriptor nor tag resolver", ErrInvalidCustomDirective, key)
		}

		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("%w %q: registered twice", ErrInvalidCustomDirective, key)
		}

		out[key] = item
	}

	return out, nil
}

// directiveRegistry resolves descriptors and tags of applied custom directives.
type directiveRegistry struct {
	items  CustomDirectiveMap
	logger *zap.Logger
}

// newDirectiveRegistry fills missing definitions from schema.
func newDirectiveRegistry(schema *Schema, items CustomDirectiveMap, logger *zap.Logger) *directiveRegistry {
	registry := &directiveRegistry{
		items:  make(CustomDirectiveMap, len(items)),
		logger: logger,
	}

	for name, item := range items {
		if item.Definition == nil {
			if def, ok := schema.DirectiveDefinition(name); ok {
				item.Definition = def
			}
		}

		registry.items[name] = item
	}

	return registry
}

// lookup returns registration of applied directive, falling back to wildcard.
func (r *directiveRegistry) lookup(name string) (CustomDirective, bool) {
	if item, ok := r.items[name]; ok {
		return item, true
	}

	if _, builtin := builtinDirectives[name]; builtin {
		return CustomDirective{}, false
	}

	item, ok := r.items[WildcardDirective]
	return item, ok
}

// descriptors returns descriptor text of every applied registered directive.
func (r *directiveRegistry) descriptors(node *Node) []string {
	if r == nil || len(r.items) == 0 || node == nil {
		return nil
	}

	var out []string
	for _, directive := range node.Directives {
		if directive == nil {
			continue
		}

		item, ok := r.lookup(directive.Name)
		if !ok || item.Descriptor == nil {
			continue
		}

		text, err := callDescriptor(item.Descriptor, directive, node)
		if err != nil {
			r.logger.Warn("directive descriptor failed",
				zap.String("directive", directive.Name),
				zap.String("entity", node.Name),
				zap.Error(err))
			continue
		}

		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}

	return out
}

// tags returns badges of every applied registered directive.
func (r *directiveRegistry) tags(node *Node) []Badge {
	if r == nil || len(r.items) == 0 || node == nil {
		return nil
	}

	var out []Badge
	for _, directive := range node.Directives {
		if directive == nil {
			continue
		}

		item, ok := r.lookup(directive.Name)
		if !ok || item.Tag == nil {
			continue
		}

		badge, err := callTag(item.Tag, directive, node)
		if err != nil {
			r.logger.Warn("directive tag failed",
				zap.String("directive", directive.Name),
				zap.String("entity", node.Name),
				zap.Error(err))
			continue
		}

		if strings.TrimSpace(badge.Text) != "" {
			out = append(out, badge)
		}
	}

	return out
}

// callDescriptor runs a descriptor inside a panic boundary.
func callDescriptor(fn DescriptorFunc, directive *ast.Directive, node *Node) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: panic: %v", ErrDirectiveResolver, recovered)
		}
	}()

	return fn(directive, node)
}

// callTag runs a tag resolver inside a panic boundary.
func callTag(fn TagFunc, directive *ast.Directive, node *Node) (badge Badge, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: panic: %v", ErrDirectiveResolver, recovered)
		}
	}()

	return fn(directive, node)
}

// DirectiveDescriptor builds a descriptor that expands "{arg}" placeholders with argument values.
func DirectiveDescriptor(format string) DescriptorFunc {
	return func(directive *ast.Directive, _ *Node) (string, error) {
		text := format
		for _, argument := range directive.Arguments {
			if argument == nil || argument.Value == nil {
				continue
			}

			text = strings.ReplaceAll(text, "{"+argument.Name+"}", argument.Value.Raw)
		}

		return text, nil
	}
}

// DirectiveTag builds a tag resolver labelling entities with the directive name.
func DirectiveTag(class string) TagFunc {
	return func(directive *ast.Directive, _ *Node) (Badge, error) {
		return Badge{Text: "@" + directive.Name, Class: class}, nil
	}
}
