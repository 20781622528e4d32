// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Renderer turns schema entities into markdown documents.
//
// A Renderer is immutable after New and safe for concurrent use; every render
// call keeps its state on the stack.
type Renderer struct {
	schema     *Schema
	opt        Options
	groups     map[Category]map[string]string
	relations  *relationIndex
	directives *directiveRegistry
	format     Formatter
	template   *template.Template
	logger     *zap.Logger
}

// New validates options and precomputes groups and the relation index.
func New(schema *Schema, opt Options) (*Renderer, error) {
	if schema == nil || schema.Raw() == nil {
		return nil, ErrNilSchema
	}

	normalized, err := normalizeOptions(opt)
	if err != nil {
		return nil, err
	}

	documentTemplate, err := resolveTemplate(normalized.TemplateText)
	if err != nil {
		return nil, err
	}

	groups := normalized.Groups
	if len(groups) == 0 && normalized.GroupByDirective != nil {
		groups = buildGroups(schema, normalized.GroupByDirective)
	}

	return &Renderer{
		schema:     schema,
		opt:        normalized,
		groups:     groups,
		relations:  buildRelationIndex(schema),
		directives: newDirectiveRegistry(schema, normalized.CustomDirectives, normalized.Logger),
		format:     NewFormatter(normalized.Formatter),
		template:   documentTemplate,
		logger:     normalized.Logger,
	}, nil
}

// Schema returns the indexed schema.
func (r *Renderer) Schema() *Schema {
	return r.schema
}

// Formatter returns the active formatter.
func (r *Renderer) Formatter() Formatter {
	return r.format
}

// Classify returns category of a node.
func (r *Renderer) Classify(node *Node) Category {
	return r.schema.Classify(node)
}

// Descriptors returns descriptor text of custom directives applied to node.
func (r *Renderer) Descriptors(node *Node) []string {
	return r.directives.descriptors(node)
}

// Tags returns badges of custom directives applied to node.
func (r *Renderer) Tags(node *Node) []Badge {
	return r.directives.tags(node)
}

// excluded reports whether the skip filter drops node.
func (r *Renderer) excluded(node *Node) bool {
	if node == nil {
		return true
	}

	return len(r.opt.SkipDirectives) > 0 && node.HasDirective(r.opt.SkipDirectives...)
}

// selected reports whether an entity passes the only filter and gets a page.
// Children and type references are never matched against it.
func (r *Renderer) selected(node *Node) bool {
	if len(r.opt.OnlyDirectives) == 0 {
		return true
	}

	return node.HasDirective(r.opt.OnlyDirectives...)
}

// printable reports whether node survives the skip filter and deprecation policy.
func (r *Renderer) printable(node *Node) bool {
	if r.excluded(node) {
		return false
	}

	return r.opt.Deprecated != DeprecationSkip || !node.Deprecated()
}

// RenderAll assembles a document for every printable entity.
//
// Entities render in parallel, bounded by Options.Workers. A failing entity is
// logged and reported through the joined error while the rest of the batch
// still renders; documents keep category and name order.
func (r *Renderer) RenderAll(ctx context.Context) ([]Document, error) {
	entities := r.schema.Entities()
	results := make([]*Document, len(entities))
	failures := make([]error, len(entities))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.opt.Workers)

	for index, node := range entities {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := r.assembleIsolated(node)
			if err != nil {
				r.logger.Error("render entity failed",
					zap.String("entity", node.Name),
					zap.Stringer("category", r.schema.Classify(node)),
					zap.Error(err))
				failures[index] = err
				return nil
			}

			results[index] = doc
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}

	r.logger.Debug("rendered schema", zap.Int("entities", len(entities)), zap.Int("documents", len(docs)))
	return docs, errors.Join(failures...)
}

// assembleIsolated assembles one entity and converts panics into EntityError.
func (r *Renderer) assembleIsolated(node *Node) (doc *Document, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			doc = nil
			err = &EntityError{
				Name:     node.Name,
				Category: r.schema.Classify(node),
				Err:      fmt.Errorf("panic: %v", recovered),
			}
		}
	}()

	doc, err = r.Assemble(node.Name, node)
	if err != nil {
		return nil, &EntityError{Name: node.Name, Category: r.schema.Classify(node), Err: err}
	}

	return doc, nil
}
