// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/inful/mdfp"
)

// Document is one rendered entity page.
type Document struct {
	// ID is the slug of the entity name.
	ID    string
	Title string

	Category Category
	// Group is the configured group name, empty when grouping is off.
	Group      string
	Deprecated bool
	// Path is the slash separated location relative to the output root, without extension.
	Path string

	FrontMatter map[string]any
	// Header is the formatted front matter block.
	Header string
	Body   string
}

// Content returns header and body as one markdown file.
func (d *Document) Content() string {
	if d.Header == "" {
		return d.Body
	}

	return d.Header + "\n\n" + d.Body
}

// assembleConfig holds per-call assemble switches.
type assembleConfig struct {
	force bool
}

// AssembleOption tunes one Assemble call.
type AssembleOption func(*assembleConfig)

// WithForcePrint assembles entities otherwise hidden by filters or skip deprecation mode.
func WithForcePrint() AssembleOption {
	return func(cfg *assembleConfig) {
		cfg.force = true
	}
}

// Assemble renders a complete page for one entity.
//
// It returns a nil document without error when name or node is empty, when
// the node has no documented category, or when the node is filtered out and
// force print is not requested.
func (r *Renderer) Assemble(name string, node *Node, opts ...AssembleOption) (*Document, error) {
	var cfg assembleConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	name = sanitizeText(name)
	if name == "" || node == nil {
		return nil, nil
	}

	if !cfg.force && (!r.printable(node) || !r.selected(node)) {
		return nil, nil
	}

	category := r.schema.Classify(node)
	if category == CategoryUnknown || (node.Kind != NodeType && node.Kind != NodeOperation && node.Kind != NodeDirective) {
		return nil, nil
	}

	body, err := r.executeTemplate(r.documentView(name, node, category))
	if err != nil {
		return nil, err
	}

	props, err := r.frontMatter(name, body)
	if err != nil {
		return nil, err
	}

	header, err := r.format.FrontMatter(props)
	if err != nil {
		if !errors.Is(err, ErrEncodeFrontMatter) {
			err = fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
		}

		return nil, err
	}

	return &Document{
		ID:          Slugify(name),
		Title:       name,
		Category:    category,
		Group:       r.groupOf(category, node.Name),
		Deprecated:  node.Deprecated(),
		Path:        r.entityPath(category, node, node.Name),
		FrontMatter: props,
		Header:      strings.TrimSpace(header),
		Body:        body,
	}, nil
}

// frontMatter returns id, title, extra props and the optional fingerprint.
func (r *Renderer) frontMatter(name, body string) (map[string]any, error) {
	props := make(map[string]any, len(r.opt.FrontMatter)+3)
	maps.Copy(props, r.opt.FrontMatter)
	props["id"] = Slugify(name)
	props["title"] = name

	if !r.opt.Fingerprint {
		return props, nil
	}

	delete(props, mdfp.FingerprintField)
	encoded, err := encodeFrontMatter(props)
	if err != nil {
		return nil, err
	}

	props[mdfp.FingerprintField] = mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(encoded, "\n"), body)
	return props, nil
}

// documentView collects every block of an entity page.
func (r *Renderer) documentView(name string, node *Node, category Category) documentView {
	view := documentView{
		Name:        name,
		Category:    category.Singular(),
		Group:       r.groupOf(category, node.Name),
		Description: formatDescription(node.Description),
		Descriptors: r.directives.descriptors(node),
		Code:        r.printCode(node),
		Sections:    r.metadataSections(node, category),
		Relations:   r.printRelations(node),
	}

	if !r.opt.HideBadges {
		tags := r.directives.tags(node)
		out := make([]string, 0, len(tags))
		for _, tag := range tags {
			out = append(out, r.format.Badge(tag))
		}

		view.Tags = strings.Join(out, " ")
	}

	if node.Deprecated() {
		view.Deprecation = r.format.Admonition(Admonition{
			Kind:  "warning",
			Icon:  "⚠️",
			Title: "DEPRECATED",
			Text:  node.DeprecationReason(),
		})
	}

	if category == CategoryScalar {
		if url := node.SpecifiedByURL(); url != "" {
			view.SpecifiedBy = r.format.SpecifiedBy(url)
		}
	}

	return view
}

// metadataSections renders the child lists of an entity by category.
func (r *Renderer) metadataSections(node *Node, category Category) []string {
	scope := sectionScope{level: defaultSectionLevel, parentType: node.Name}
	def := node.Definition

	var sections []string
	add := func(children []*Node, title string) {
		if section := r.printSection(children, title, scope); section != "" {
			sections = append(sections, section)
		}
	}

	switch category {
	case CategoryQuery, CategoryMutation, CategorySubscription:
		add(node.Parameters(), "Arguments")
		add([]*Node{NewTypeRefNode(node.Type)}, "Type")
		if example := r.printExample(node); example != "" {
			sections = append(sections, example)
		}
	case CategoryDirective:
		add(node.Parameters(), "Arguments")
	case CategoryEnum:
		add(enumValueNodes(def.EnumValues), "Values")
	case CategoryUnion:
		add(typeRefNodes(def.Types), "Possible Types")
	case CategoryObject, CategoryInterface:
		add(fieldNodes(def.Fields), "Fields")
		add(typeRefNodes(def.Interfaces), "Interfaces")
	case CategoryInput:
		add(fieldNodes(def.Fields), "Fields")
	case CategoryScalar, CategoryUnknown:
	}

	return sections
}
