// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"path"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
)

// ResolveLink turns a node reference into display text and URL.
//
// Typed nodes (fields, arguments, type references) resolve to the page of
// their innermost named type. The result depends only on node identity and
// renderer options.
func (r *Renderer) ResolveLink(node *Node) LinkTarget {
	if node == nil {
		return LinkTarget{URL: "#"}
	}

	fallback := LinkTarget{Text: displayName(node), URL: "#"}
	if r.excluded(node) {
		return fallback
	}

	target := r.schema.target(node)
	if target == nil {
		return fallback
	}

	if target != node && !r.printable(target) {
		return fallback
	}

	if !r.selected(target) || r.schema.isRootType(target) {
		return fallback
	}

	category := r.schema.Classify(target)
	if category == CategoryUnknown {
		return fallback
	}

	if target.Kind == NodeOperation && !target.Operation.IsOperation() {
		return fallback
	}

	text := target.Name
	return LinkTarget{
		Text: text,
		URL:  r.linkPath(category, target, text),
	}
}

// linkPath prefixes the entity path with base path.
func (r *Renderer) linkPath(category Category, target *Node, name string) string {
	return path.Join(r.opt.BasePath, r.entityPath(category, target, name))
}

// entityPath joins deprecated and group segments, category and slug.
func (r *Renderer) entityPath(category Category, target *Node, name string) string {
	segments := make([]string, 0, 4)
	if r.opt.Deprecated == DeprecationGroup && target.Deprecated() {
		segments = append(segments, deprecatedSegment)
	}

	if group := r.groupOf(category, name); group != "" {
		segments = append(segments, Slugify(group))
	}

	segments = append(segments, category.Plural(), Slugify(name))
	return path.Join(segments...)
}

// groupOf returns configured group name of an entity.
func (r *Renderer) groupOf(category Category, name string) string {
	if len(r.groups) == 0 {
		return ""
	}

	return r.groups[category][name]
}

// displayName returns the name shown for a node.
func displayName(node *Node) string {
	if node.Name != "" {
		return node.Name
	}

	return node.NamedType()
}

// PrintLinkAttributes re-wraps text with list brackets and non-null marks of a type.
func PrintLinkAttributes(t *ast.Type, text string) string {
	if t == nil {
		return text
	}

	if t.Elem != nil {
		text = "[" + PrintLinkAttributes(t.Elem, text) + "]"
	}

	if t.NonNull {
		text += "!"
	}

	return text
}

// Slugify converts a display name to kebab case: "UserID" becomes "user-id".
func Slugify(value string) string {
	runes := []rune(strings.TrimSpace(value))
	var out strings.Builder
	out.Grow(len(runes) + 4)

	pendingDash := false
	for index, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = out.Len() > 0
			continue
		}

		if index > 0 && out.Len() > 0 && isWordBoundary(runes, index) {
			pendingDash = true
		}

		if pendingDash {
			out.WriteByte('-')
			pendingDash = false
		}

		out.WriteRune(unicode.ToLower(r))
	}

	return out.String()
}

// isWordBoundary reports whether a new word starts at runes[index].
func isWordBoundary(runes []rune, index int) bool {
	previous := runes[index-1]
	current := runes[index]

	switch {
	case unicode.IsLower(previous) && unicode.IsUpper(current):
		return true
	case unicode.IsDigit(previous) != unicode.IsDigit(current) && (unicode.IsLetter(previous) || unicode.IsDigit(previous)):
		return true
	case unicode.IsUpper(previous) && unicode.IsUpper(current) && index+1 < len(runes) && unicode.IsLower(runes[index+1]):
		return true
	default:
		return false
	}
}
