// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is the read-only index over a loaded GraphQL schema.
//
// All enumerations are sorted by name and computed once, so a Schema can be
// shared between concurrent renders.
type Schema struct {
	raw        *ast.Schema
	types      map[Category][]*Node
	operations map[Category][]*Node
	directives []*Node
}

// LoadSchemaFiles reads SDL files and builds a schema index.
func LoadSchemaFiles(paths ...string) (*Schema, error) {
	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
		}

		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}

	return LoadSchema(sources...)
}

// LoadSchema parses and validates SDL sources and builds a schema index.
func LoadSchema(sources ...*ast.Source) (*Schema, error) {
	if len(sources) == 0 {
		return nil, ErrEmptySchema
	}

	raw, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSchema, err)
	}

	return NewSchema(raw), nil
}

// NewSchema indexes an already parsed schema.
func NewSchema(raw *ast.Schema) *Schema {
	s := &Schema{
		raw:        raw,
		types:      make(map[Category][]*Node),
		operations: make(map[Category][]*Node),
	}

	if raw == nil {
		return s
	}

	roots := map[string]struct{}{}
	for category, def := range s.rootDefinitions() {
		roots[def.Name] = struct{}{}
		for _, field := range def.Fields {
			if strings.HasPrefix(field.Name, "__") {
				continue
			}

			s.operations[category] = append(s.operations[category], NewOperationNode(category, field))
		}

		sortNodes(s.operations[category])
	}

	for name, def := range raw.Types {
		if strings.HasPrefix(name, "__") {
			continue
		}

		if _, ok := roots[name]; ok {
			continue
		}

		category := ClassifyDefinition(def)
		if category == CategoryUnknown {
			continue
		}

		s.types[category] = append(s.types[category], NewTypeNode(def))
	}

	for category := range s.types {
		sortNodes(s.types[category])
	}

	for _, def := range raw.Directives {
		if def == nil || isBuiltinDirective(def) {
			continue
		}

		s.directives = append(s.directives, NewDirectiveNode(def))
	}

	sortNodes(s.directives)
	return s
}

// Raw returns the parsed gqlparser schema.
func (s *Schema) Raw() *ast.Schema {
	return s.raw
}

// Definition looks up a named type.
func (s *Schema) Definition(name string) (*ast.Definition, bool) {
	if s == nil || s.raw == nil {
		return nil, false
	}

	def, ok := s.raw.Types[name]
	return def, ok && def != nil
}

// DirectiveDefinition looks up a directive definition.
func (s *Schema) DirectiveDefinition(name string) (*ast.DirectiveDefinition, bool) {
	if s == nil || s.raw == nil {
		return nil, false
	}

	def, ok := s.raw.Directives[name]
	return def, ok && def != nil
}

// Types returns named types of one category.
func (s *Schema) Types(category Category) []*Node {
	if s == nil {
		return nil
	}

	return s.types[category]
}

// Operations returns root fields of one operation kind.
func (s *Schema) Operations(category Category) []*Node {
	if s == nil {
		return nil
	}

	return s.operations[category]
}

// Directives returns user declared directives.
func (s *Schema) Directives() []*Node {
	if s == nil {
		return nil
	}

	return s.directives
}

// Entities returns every documented entity in category order.
func (s *Schema) Entities() []*Node {
	out := make([]*Node, 0)
	for _, category := range Categories {
		switch {
		case category.IsOperation():
			out = append(out, s.Operations(category)...)
		case category == CategoryDirective:
			out = append(out, s.Directives()...)
		default:
			out = append(out, s.Types(category)...)
		}
	}

	return out
}

// Classify returns category of a node, unwrapping list and non-null modifiers.
func (s *Schema) Classify(node *Node) Category {
	if node == nil {
		return CategoryUnknown
	}

	switch node.Kind {
	case NodeType:
		return ClassifyDefinition(node.Definition)
	case NodeDirective:
		return CategoryDirective
	case NodeOperation:
		if node.Operation.IsOperation() {
			return node.Operation
		}

		return CategoryUnknown
	case NodeField, NodeArgument, NodeTypeRef:
		def, ok := s.Definition(node.NamedType())
		if !ok {
			return CategoryUnknown
		}

		return ClassifyDefinition(def)
	case NodeEnumValue:
		return CategoryUnknown
	default:
		return CategoryUnknown
	}
}

// target returns the node a link or relation lookup points at.
func (s *Schema) target(node *Node) *Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case NodeField, NodeArgument, NodeTypeRef:
		def, ok := s.Definition(node.NamedType())
		if !ok {
			return nil
		}

		return NewTypeNode(def)
	case NodeType, NodeDirective, NodeOperation, NodeEnumValue:
		return node
	default:
		return node
	}
}

// rootDefinitions returns root operation types keyed by operation category.
func (s *Schema) rootDefinitions() map[Category]*ast.Definition {
	out := make(map[Category]*ast.Definition, 3)
	if s.raw == nil {
		return out
	}

	if s.raw.Query != nil {
		out[CategoryQuery] = s.raw.Query
	}

	if s.raw.Mutation != nil {
		out[CategoryMutation] = s.raw.Mutation
	}

	if s.raw.Subscription != nil {
		out[CategorySubscription] = s.raw.Subscription
	}

	return out
}

// isRootType reports whether node is a root operation type, which has no page.
func (s *Schema) isRootType(node *Node) bool {
	if node == nil || node.Kind != NodeType {
		return false
	}

	for _, def := range s.rootDefinitions() {
		if def.Name == node.Name {
			return true
		}
	}

	return false
}

// builtinDirectives lists directives declared by the GraphQL prelude.
var builtinDirectives = map[string]struct{}{
	"deprecated":  {},
	"include":     {},
	"skip":        {},
	"specifiedBy": {},
	"oneOf":       {},
	"defer":       {},
}

// isBuiltinDirective reports whether directive comes from the prelude.
func isBuiltinDirective(def *ast.DirectiveDefinition) bool {
	if def.Position != nil && def.Position.Src != nil && def.Position.Src.BuiltIn {
		return true
	}

	_, ok := builtinDirectives[def.Name]
	return ok
}

// sortNodes orders nodes by name for deterministic output.
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Name < nodes[j].Name
	})
}
