// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"strings"
)

// maxHeadingLevel caps markdown heading depth.
const maxHeadingLevel = 6

// sectionScope is the per-call rendering state; it is copied, never shared.
type sectionScope struct {
	level      int
	parentType string
}

// child returns scope one heading level deeper under a dotted parent path.
func (s sectionScope) child(name string) sectionScope {
	parent := name
	if s.parentType != "" {
		parent = s.parentType + "." + name
	}

	return sectionScope{level: s.level + 1, parentType: parent}
}

// heading returns markdown heading marker of scope level.
func (s sectionScope) heading(offset int) string {
	level := min(max(s.level+offset, 1), maxHeadingLevel)
	return strings.Repeat("#", level)
}

// RenderSection renders children under a titled heading at metadata section level.
func (r *Renderer) RenderSection(children []*Node, title string) string {
	return r.printSection(children, title, sectionScope{level: defaultSectionLevel})
}

// printSection renders a titled list; empty when no child survives filtering.
func (r *Renderer) printSection(children []*Node, title string, scope sectionScope) string {
	if len(children) == 0 {
		return ""
	}

	var live, deprecated []*Node
	for _, child := range children {
		if child == nil || !r.printable(child) {
			continue
		}

		if r.opt.Deprecated == DeprecationGroup && child.Deprecated() {
			deprecated = append(deprecated, child)
			continue
		}

		live = append(live, child)
	}

	if len(live) == 0 && len(deprecated) == 0 {
		return ""
	}

	blocks := make([]string, 0, 3)
	blocks = append(blocks, scope.heading(0)+" "+title)
	if items := r.printItems(live, scope); items != "" {
		blocks = append(blocks, items)
	}

	if items := r.printItems(deprecated, scope); items != "" {
		blocks = append(blocks, r.format.Details(Details{
			OpenLabel:  deprecatedShowLabel,
			CloseLabel: deprecatedHideLabel,
			Content:    items,
		}))
	}

	return strings.Join(blocks, "\n\n")
}

// printItems renders items separated by blank lines.
func (r *Renderer) printItems(items []*Node, scope sectionScope) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text := r.printItem(item, scope); text != "" {
			out = append(out, text)
		}
	}

	return strings.Join(out, "\n\n")
}

// printItem renders one child heading, description and nested parameters.
func (r *Renderer) printItem(node *Node, scope sectionScope) string {
	if !r.printable(node) {
		return ""
	}

	parts := make([]string, 0, 4)
	parts = append(parts, r.itemTitle(node, scope))
	if badges := r.printBadges(node); badges != "" {
		parts = append(parts, badges)
	}

	blocks := []string{scope.heading(1) + " " + strings.Join(parts, " ")}
	if description := r.printDescription(node); description != "" {
		blocks = append(blocks, description)
	}

	if params := node.Parameters(); len(params) > 0 && node.Kind != NodeDirective {
		nested := scope.child(node.Name)
		if items := r.printItems(r.orderParameters(params), nested); items != "" {
			blocks = append(blocks, items)
		}
	}

	return strings.Join(blocks, "\n\n")
}

// orderParameters moves deprecated parameters last in group deprecation mode.
func (r *Renderer) orderParameters(params []*Node) []*Node {
	if r.opt.Deprecated != DeprecationGroup {
		return params
	}

	live := make([]*Node, 0, len(params))
	var deprecated []*Node
	for _, param := range params {
		if param.Deprecated() {
			deprecated = append(deprecated, param)
			continue
		}

		live = append(live, param)
	}

	return append(live, deprecated...)
}

// itemTitle renders name label or link followed by the wrapped type link.
func (r *Renderer) itemTitle(node *Node, scope sectionScope) string {
	parent := ""
	if !r.opt.HideParentTypePrefix {
		parent = scope.parentType
	}

	switch node.Kind {
	case NodeTypeRef:
		link := r.ResolveLink(node)
		link.Text = PrintLinkAttributes(node.Type, link.Text)
		return r.format.Link(link)
	case NodeField, NodeArgument:
		link := r.ResolveLink(node)
		link.Text = PrintLinkAttributes(node.Type, link.Text)
		title := r.format.NameEntity(node.Name, parent)
		if node.DefaultValue != nil {
			title += " = `" + escapeInline(node.DefaultValue.String()) + "`"
		}

		return title + r.format.Bullet(r.format.Link(link))
	case NodeOperation, NodeType, NodeDirective:
		link := r.ResolveLink(node)
		return r.format.NameEntity(link.Text, parent) + r.format.Bullet(r.format.Link(link))
	case NodeEnumValue:
		return r.format.NameEntity(node.Name, parent)
	default:
		return r.format.NameEntity(displayName(node), parent)
	}
}

// itemBadges returns badges of a rendered child.
func (r *Renderer) itemBadges(node *Node) []Badge {
	badges := make([]Badge, 0, 6)
	if node.Deprecated() {
		badges = append(badges, Badge{Text: "deprecated", Class: "warning"})
	}

	if node.Type != nil && node.Kind != NodeType {
		if node.Type.NonNull {
			badges = append(badges, Badge{Text: "non-null", Class: "secondary"})
		}

		if node.Type.Elem != nil {
			badges = append(badges, Badge{Text: "list", Class: "secondary"})
		}
	}

	category := r.schema.Classify(node)
	if category != CategoryUnknown {
		badges = append(badges, Badge{Text: category.Singular(), Class: "secondary"})
		if target := r.schema.target(node); target != nil {
			if group := r.groupOf(category, target.Name); group != "" {
				badges = append(badges, Badge{Text: group, Class: "secondary"})
			}
		}
	}

	return append(badges, r.directives.tags(node)...)
}

// printBadges formats item badges when enabled.
func (r *Renderer) printBadges(node *Node) string {
	if r.opt.HideBadges {
		return ""
	}

	badges := r.itemBadges(node)
	if len(badges) == 0 {
		return ""
	}

	out := make([]string, 0, len(badges))
	for _, badge := range badges {
		out = append(out, r.format.Badge(badge))
	}

	return strings.Join(out, " ")
}

// printDescription renders deprecation notice, description and custom directive text.
func (r *Renderer) printDescription(node *Node) string {
	blocks := make([]string, 0, 3)
	if node.Deprecated() {
		blocks = append(blocks, r.format.Admonition(Admonition{
			Kind:  "warning",
			Icon:  "⚠️",
			Title: "DEPRECATED",
			Text:  node.DeprecationReason(),
		}))
	}

	if description := formatDescription(node.Description); description != "" {
		blocks = append(blocks, description)
	}

	blocks = append(blocks, r.directives.descriptors(node)...)
	return strings.Join(blocks, "\n\n")
}
