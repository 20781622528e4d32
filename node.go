// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

const (
	// deprecatedDirectiveName is the built-in deprecation directive.
	deprecatedDirectiveName = "deprecated"
	// specifiedByDirectiveName is the built-in scalar specification directive.
	specifiedByDirectiveName = "specifiedBy"
	// defaultDeprecationReason matches the GraphQL specification default.
	defaultDeprecationReason = "No longer supported"
)

// NodeKind tells which schema element a Node views.
type NodeKind uint8

const (
	// NodeType is a named type definition.
	NodeType NodeKind = iota
	// NodeOperation is a root query, mutation or subscription field.
	NodeOperation
	// NodeDirective is a directive definition.
	NodeDirective
	// NodeField is an object, interface or input field.
	NodeField
	// NodeArgument is a field, operation or directive argument.
	NodeArgument
	// NodeEnumValue is one enum value.
	NodeEnumValue
	// NodeTypeRef is a bare reference to a named type through a wrapper chain.
	NodeTypeRef
)

// Node is a read-only view over one element of the schema graph.
type Node struct {
	Kind        NodeKind
	Name        string
	Description string

	// Type is the declared type with list/non-null wrappers for typed nodes.
	Type *ast.Type
	// Definition is set for NodeType.
	Definition *ast.Definition
	// DirectiveDefinition is set for NodeDirective.
	DirectiveDefinition *ast.DirectiveDefinition
	// Operation is the operation kind for NodeOperation.
	Operation Category

	Arguments    ast.ArgumentDefinitionList
	Directives   ast.DirectiveList
	DefaultValue *ast.Value
}

// NewTypeNode wraps a named type definition.
func NewTypeNode(def *ast.Definition) *Node {
	if def == nil {
		return nil
	}

	return &Node{
		Kind:        NodeType,
		Name:        def.Name,
		Description: def.Description,
		Definition:  def,
		Type:        ast.NamedType(def.Name, nil),
		Directives:  def.Directives,
	}
}

// NewOperationNode wraps a root field as an operation of selected kind.
func NewOperationNode(kind Category, field *ast.FieldDefinition) *Node {
	if field == nil {
		return nil
	}

	return &Node{
		Kind:        NodeOperation,
		Name:        field.Name,
		Description: field.Description,
		Type:        field.Type,
		Operation:   kind,
		Arguments:   field.Arguments,
		Directives:  field.Directives,
	}
}

// NewDirectiveNode wraps a directive definition.
func NewDirectiveNode(def *ast.DirectiveDefinition) *Node {
	if def == nil {
		return nil
	}

	return &Node{
		Kind:                NodeDirective,
		Name:                def.Name,
		Description:         def.Description,
		DirectiveDefinition: def,
		Arguments:           def.Arguments,
	}
}

// NewFieldNode wraps an object, interface or input field.
func NewFieldNode(field *ast.FieldDefinition) *Node {
	if field == nil {
		return nil
	}

	return &Node{
		Kind:         NodeField,
		Name:         field.Name,
		Description:  field.Description,
		Type:         field.Type,
		Arguments:    field.Arguments,
		Directives:   field.Directives,
		DefaultValue: field.DefaultValue,
	}
}

// NewArgumentNode wraps an argument definition.
func NewArgumentNode(arg *ast.ArgumentDefinition) *Node {
	if arg == nil {
		return nil
	}

	return &Node{
		Kind:         NodeArgument,
		Name:         arg.Name,
		Description:  arg.Description,
		Type:         arg.Type,
		Directives:   arg.Directives,
		DefaultValue: arg.DefaultValue,
	}
}

// NewEnumValueNode wraps an enum value.
func NewEnumValueNode(value *ast.EnumValueDefinition) *Node {
	if value == nil {
		return nil
	}

	return &Node{
		Kind:        NodeEnumValue,
		Name:        value.Name,
		Description: value.Description,
		Directives:  value.Directives,
	}
}

// NewTypeRefNode wraps a type reference such as a union member or operation return type.
func NewTypeRefNode(t *ast.Type) *Node {
	if t == nil {
		return nil
	}

	return &Node{
		Kind: NodeTypeRef,
		Name: t.Name(),
		Type: t,
	}
}

// NamedType returns the innermost named type for typed nodes.
func (n *Node) NamedType() string {
	if n == nil || n.Type == nil {
		return ""
	}

	return n.Type.Name()
}

// HasDirective reports whether any of the named directives is applied to node.
func (n *Node) HasDirective(names ...string) bool {
	if n == nil {
		return false
	}

	for _, directive := range n.Directives {
		if directive == nil {
			continue
		}

		if slices.Contains(names, directive.Name) {
			return true
		}
	}

	return false
}

// Deprecated reports whether @deprecated is applied.
func (n *Node) Deprecated() bool {
	return n.HasDirective(deprecatedDirectiveName)
}

// DeprecationReason returns @deprecated reason or the default one.
func (n *Node) DeprecationReason() string {
	if n == nil {
		return ""
	}

	directive := n.Directives.ForName(deprecatedDirectiveName)
	if directive == nil {
		return ""
	}

	if reason := directiveArgument(directive, "reason"); reason != "" {
		return reason
	}

	return defaultDeprecationReason
}

// SpecifiedByURL returns @specifiedBy url of scalar definitions.
func (n *Node) SpecifiedByURL() string {
	if n == nil {
		return ""
	}

	directive := n.Directives.ForName(specifiedByDirectiveName)
	if directive == nil {
		return ""
	}

	return directiveArgument(directive, "url")
}

// Parameters returns argument children.
func (n *Node) Parameters() []*Node {
	if n == nil || len(n.Arguments) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		if node := NewArgumentNode(arg); node != nil {
			out = append(out, node)
		}
	}

	return out
}

// directiveArgument returns raw argument value of an applied directive.
func directiveArgument(directive *ast.Directive, name string) string {
	if directive == nil {
		return ""
	}

	argument := directive.Arguments.ForName(name)
	if argument == nil || argument.Value == nil {
		return ""
	}

	return strings.TrimSpace(argument.Value.Raw)
}

// fieldNodes wraps a field list.
func fieldNodes(fields ast.FieldList) []*Node {
	out := make([]*Node, 0, len(fields))
	for _, field := range fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		out = append(out, NewFieldNode(field))
	}

	return out
}

// enumValueNodes wraps enum values.
func enumValueNodes(values ast.EnumValueList) []*Node {
	out := make([]*Node, 0, len(values))
	for _, value := range values {
		out = append(out, NewEnumValueNode(value))
	}

	return out
}

// typeRefNodes wraps a list of named types.
func typeRefNodes(names []string) []*Node {
	out := make([]*Node, 0, len(names))
	for _, name := range names {
		out = append(out, NewTypeRefNode(ast.NamedType(name, nil)))
	}

	return out
}
