// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultGroupFallback names the group of entities without the grouping directive.
const defaultGroupFallback = "Miscellaneous"

// groupByDirectivePattern matches "@directive(field)" and "@directive(field|=fallback)".
var groupByDirectivePattern = regexp.MustCompile(`^@?(\w+)\((\w+)(?:\|=([^)]*))?\)$`)

// GroupByDirective groups entities by an argument of an applied directive.
type GroupByDirective struct {
	Directive string
	Field     string
	Fallback  string
}

// ParseGroupByDirective parses "@directive(field|=fallback)" expressions.
func ParseGroupByDirective(expr string) (*GroupByDirective, error) {
	match := groupByDirectivePattern.FindStringSubmatch(strings.TrimSpace(expr))
	if match == nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidGroupByDirective, expr)
	}

	group := &GroupByDirective{
		Directive: match[1],
		Field:     match[2],
		Fallback:  strings.TrimSpace(match[3]),
	}

	if group.Fallback == "" {
		group.Fallback = defaultGroupFallback
	}

	return group, nil
}

// validate checks required fields and applies fallback default.
func (g *GroupByDirective) validate() error {
	g.Directive = strings.TrimPrefix(strings.TrimSpace(g.Directive), "@")
	g.Field = strings.TrimSpace(g.Field)
	g.Fallback = strings.TrimSpace(g.Fallback)

	if g.Directive == "" || g.Field == "" {
		return fmt.Errorf("%w: directive and field are required", ErrInvalidGroupByDirective)
	}

	if g.Fallback == "" {
		g.Fallback = defaultGroupFallback
	}

	return nil
}

// groupOf returns group name of one entity under this directive.
func (g *GroupByDirective) groupOf(node *Node) string {
	directive := node.Directives.ForName(g.Directive)
	if value := directiveArgument(directive, g.Field); value != "" {
		return value
	}

	return g.Fallback
}

// buildGroups computes group names of every documented entity.
func buildGroups(schema *Schema, group *GroupByDirective) map[Category]map[string]string {
	if group == nil {
		return nil
	}

	out := make(map[Category]map[string]string)
	for _, node := range schema.Entities() {
		category := schema.Classify(node)
		if category == CategoryUnknown {
			continue
		}

		if out[category] == nil {
			out[category] = make(map[string]string)
		}

		out[category][node.Name] = group.groupOf(node)
	}

	return out
}
