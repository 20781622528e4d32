// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// codeLanguage tags declaration code fences.
const codeLanguage = "graphql"

// codeIndent is the SDL indentation of declaration blocks.
const codeIndent = "  "

// printCode renders the SDL declaration of an entity as a fenced block.
//
// Descriptions are dropped and members hidden by filters or skip deprecation
// mode are removed; applied directives stay visible.
func (r *Renderer) printCode(node *Node) string {
	if r.opt.HideCode || node == nil {
		return ""
	}

	doc := &ast.SchemaDocument{}
	switch node.Kind {
	case NodeType:
		doc.Definitions = ast.DefinitionList{r.declareDefinition(node.Definition)}
	case NodeOperation:
		root, ok := r.schema.rootDefinitions()[node.Operation]
		if !ok {
			return ""
		}

		doc.Definitions = ast.DefinitionList{{
			Kind: ast.Object,
			Name: root.Name,
			Fields: ast.FieldList{{
				Name:       node.Name,
				Arguments:  r.declareArguments(node.Arguments),
				Type:       node.Type,
				Directives: node.Directives,
			}},
		}}
	case NodeDirective:
		if node.DirectiveDefinition == nil {
			return ""
		}

		directive := *node.DirectiveDefinition
		directive.Description = ""
		directive.Arguments = r.declareArguments(directive.Arguments)
		doc.Directives = ast.DirectiveDefinitionList{&directive}
	case NodeField, NodeArgument, NodeEnumValue, NodeTypeRef:
		return ""
	default:
		return ""
	}

	var out bytes.Buffer
	formatter.NewFormatter(&out, formatter.WithIndent(codeIndent)).FormatSchemaDocument(doc)
	return fencedBlock(codeLanguage, strings.TrimSpace(out.String()))
}

// declareDefinition copies a type definition keeping printable members only.
func (r *Renderer) declareDefinition(def *ast.Definition) *ast.Definition {
	if def == nil {
		return &ast.Definition{}
	}

	out := *def
	out.Description = ""
	out.BuiltIn = false
	out.Fields = nil
	out.EnumValues = nil

	for _, field := range def.Fields {
		if field == nil || strings.HasPrefix(field.Name, "__") || !r.printable(NewFieldNode(field)) {
			continue
		}

		copied := *field
		copied.Description = ""
		copied.Arguments = r.declareArguments(field.Arguments)
		out.Fields = append(out.Fields, &copied)
	}

	for _, value := range def.EnumValues {
		if value == nil || !r.printable(NewEnumValueNode(value)) {
			continue
		}

		copied := *value
		copied.Description = ""
		out.EnumValues = append(out.EnumValues, &copied)
	}

	return &out
}

// declareArguments copies printable arguments without descriptions.
func (r *Renderer) declareArguments(args ast.ArgumentDefinitionList) ast.ArgumentDefinitionList {
	if len(args) == 0 {
		return nil
	}

	out := make(ast.ArgumentDefinitionList, 0, len(args))
	for _, arg := range args {
		if arg == nil || !r.printable(NewArgumentNode(arg)) {
			continue
		}

		copied := *arg
		copied.Description = ""
		out = append(out, &copied)
	}

	return out
}
