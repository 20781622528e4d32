// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.uber.org/zap"
)

// ExampleMode configures operation example coverage.
type ExampleMode string

const (
	// ExampleModeNone disables operation examples.
	ExampleModeNone ExampleMode = ""
	// ExampleModeRequired selects non-null fields and required arguments only.
	ExampleModeRequired ExampleMode = "required"
	// ExampleModeAll selects every printable field and argument.
	ExampleModeAll ExampleMode = "all"
)

// maxExampleDepth bounds nested selections of composite fields.
const maxExampleDepth = 2

// exampleScalarPlaceholders provides variable values of built-in scalars.
var exampleScalarPlaceholders = map[string]any{
	"String":  "<string>",
	"ID":      "<id>",
	"Int":     0,
	"Float":   0.0,
	"Boolean": false,
}

// ParseExampleMode validates an example mode name; empty disables examples.
func ParseExampleMode(value string) (ExampleMode, error) {
	switch mode := ExampleMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ExampleModeNone, ExampleModeRequired, ExampleModeAll:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, value)
	}
}

// OperationExample is a sample request of one operation.
type OperationExample struct {
	// Query is the formatted GraphQL operation document.
	Query string
	// Variables is the pretty JSON variables payload, empty without variables.
	Variables string
}

// exampleBuilder converts operation signatures into sample requests.
type exampleBuilder struct {
	renderer   *Renderer
	mode       ExampleMode
	activeRefs map[string]int
}

// OperationExample builds a sample request of an operation node.
func (r *Renderer) OperationExample(node *Node) (OperationExample, error) {
	if node == nil || node.Kind != NodeOperation || !node.Operation.IsOperation() {
		return OperationExample{}, fmt.Errorf("%w: not an operation", ErrBuildExample)
	}

	mode := r.opt.Example
	if mode == ExampleModeNone {
		mode = ExampleModeAll
	}

	builder := exampleBuilder{
		renderer:   r,
		mode:       mode,
		activeRefs: make(map[string]int),
	}

	return builder.build(node)
}

// printExample renders the operation example section.
func (r *Renderer) printExample(node *Node) string {
	if r.opt.Example == ExampleModeNone {
		return ""
	}

	example, err := r.OperationExample(node)
	if err != nil {
		r.logger.Debug("skip operation example", zap.String("operation", node.Name), zap.Error(err))
		return ""
	}

	heading := strings.Repeat("#", defaultSectionLevel)
	return joinBlocks(
		heading+" Example",
		fencedBlock(codeLanguage, example.Query),
		fencedBlock("json", example.Variables),
	)
}

// build assembles operation definition and variables.
func (builder *exampleBuilder) build(node *Node) (OperationExample, error) {
	field := &ast.Field{Name: node.Name}

	variables := make(map[string]any)
	var definitions ast.VariableDefinitionList
	for _, arg := range node.Parameters() {
		if !builder.includeArgument(arg) {
			continue
		}

		definitions = append(definitions, &ast.VariableDefinition{Variable: arg.Name, Type: arg.Type})
		field.Arguments = append(field.Arguments, &ast.Argument{
			Name:  arg.Name,
			Value: &ast.Value{Kind: ast.Variable, Raw: arg.Name},
		})
		variables[arg.Name] = builder.value(arg.Type)
	}

	field.SelectionSet = builder.selection(node.NamedType(), 0)

	operation := &ast.OperationDefinition{
		Operation:           operationKind(node.Operation),
		Name:                node.Name,
		VariableDefinitions: definitions,
		SelectionSet:        ast.SelectionSet{field},
	}

	var query bytes.Buffer
	formatter.NewFormatter(&query, formatter.WithIndent(codeIndent)).
		FormatQueryDocument(&ast.QueryDocument{Operations: ast.OperationList{operation}})

	out := OperationExample{Query: strings.TrimSpace(query.String())}
	if len(variables) == 0 {
		return out, nil
	}

	var data bytes.Buffer
	encoder := json.NewEncoder(&data)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(variables); err != nil {
		return OperationExample{}, fmt.Errorf("%w: %w", ErrBuildExample, err)
	}

	out.Variables = strings.TrimRight(data.String(), "\n")
	return out, nil
}

// includeArgument reports whether argument becomes an example variable.
func (builder *exampleBuilder) includeArgument(arg *Node) bool {
	if !builder.renderer.printable(arg) {
		return false
	}

	if builder.mode == ExampleModeAll {
		return true
	}

	return isRequired(arg)
}

// selection builds a sub-selection of named type; nil for leaf types.
func (builder *exampleBuilder) selection(typeName string, depth int) ast.SelectionSet {
	def, ok := builder.renderer.schema.Definition(typeName)
	if !ok {
		return nil
	}

	switch def.Kind {
	case ast.Scalar, ast.Enum:
		return nil
	case ast.Object, ast.Interface:
	case ast.Union, ast.InputObject:
		return ast.SelectionSet{typenameField()}
	default:
		return ast.SelectionSet{typenameField()}
	}

	if builder.activeRefs[typeName] > 0 || depth > maxExampleDepth {
		return ast.SelectionSet{typenameField()}
	}

	builder.activeRefs[typeName]++
	defer func() { builder.activeRefs[typeName]-- }()

	var out ast.SelectionSet
	for _, field := range fieldNodes(def.Fields) {
		if !builder.includeField(field) {
			continue
		}

		selected := &ast.Field{Name: field.Name}
		if !isLeafType(builder.renderer.schema, field.NamedType()) {
			if depth+1 > maxExampleDepth {
				continue
			}

			selected.SelectionSet = builder.selection(field.NamedType(), depth+1)
		}

		out = append(out, selected)
	}

	if len(out) == 0 {
		return ast.SelectionSet{typenameField()}
	}

	return out
}

// includeField reports whether field is selected in example.
func (builder *exampleBuilder) includeField(field *Node) bool {
	if !builder.renderer.printable(field) {
		return false
	}

	for _, arg := range field.Parameters() {
		if isRequired(arg) {
			return false
		}
	}

	if builder.mode == ExampleModeAll {
		return true
	}

	return field.Type != nil && field.Type.NonNull
}

// value returns a placeholder variable value of a type.
func (builder *exampleBuilder) value(t *ast.Type) any {
	if t == nil {
		return nil
	}

	if t.Elem != nil {
		return []any{builder.value(t.Elem)}
	}

	if value, ok := exampleScalarPlaceholders[t.NamedType]; ok {
		return value
	}

	def, ok := builder.renderer.schema.Definition(t.NamedType)
	if !ok {
		return nil
	}

	switch def.Kind {
	case ast.Enum:
		if len(def.EnumValues) > 0 {
			return def.EnumValues[0].Name
		}

		return nil
	case ast.InputObject:
		return builder.inputValue(def)
	case ast.Scalar, ast.Object, ast.Interface, ast.Union:
		return "<" + def.Name + ">"
	default:
		return nil
	}
}

// inputValue builds an input object placeholder guarding recursive inputs.
func (builder *exampleBuilder) inputValue(def *ast.Definition) map[string]any {
	out := make(map[string]any)
	if builder.activeRefs[def.Name] > 0 {
		return out
	}

	builder.activeRefs[def.Name]++
	defer func() { builder.activeRefs[def.Name]-- }()

	for _, field := range fieldNodes(def.Fields) {
		if !builder.renderer.printable(field) {
			continue
		}

		if builder.mode == ExampleModeRequired && !isRequired(field) {
			continue
		}

		out[field.Name] = builder.value(field.Type)
	}

	return out
}

// isRequired reports whether a typed node is non-null without default value.
func isRequired(node *Node) bool {
	return node.Type != nil && node.Type.NonNull && node.DefaultValue == nil
}

// isLeafType reports whether named type needs no sub-selection.
func isLeafType(schema *Schema, name string) bool {
	def, ok := schema.Definition(name)
	if !ok {
		return true
	}

	return def.Kind == ast.Scalar || def.Kind == ast.Enum
}

// typenameField selects __typename.
func typenameField() *ast.Field {
	return &ast.Field{Name: "__typename"}
}

// operationKind maps operation category to GraphQL operation keyword.
func operationKind(category Category) ast.Operation {
	switch category {
	case CategoryMutation:
		return ast.Mutation
	case CategorySubscription:
		return ast.Subscription
	default:
		return ast.Query
	}
}
