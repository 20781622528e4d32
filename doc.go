// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

/*
Package graphqldoc renders per-entity markdown documentation from GraphQL schemas.

Every named type, root operation and user declared directive becomes one
document with YAML front matter, a declaration code block, metadata sections
(fields, arguments, values, possible types) and cross references to the
entities that use it. Output is deterministic for a given schema and Options.

Render every entity:

	schema, err := graphqldoc.LoadSchemaFiles("schema.graphql")
	if err != nil {
		return err
	}

	renderer, err := graphqldoc.New(schema, graphqldoc.Options{
		BasePath:   "/api",
		Deprecated: graphqldoc.DeprecationGroup,
	})
	if err != nil {
		return err
	}

	docs, err := renderer.RenderAll(ctx)
	for _, doc := range docs {
		fmt.Println(doc.Path, len(doc.Content()))
	}

Render one entity, even when filters would hide it:

	for _, node := range schema.Types(graphqldoc.CategoryObject) {
		doc, err := renderer.Assemble(node.Name, node, graphqldoc.WithForcePrint())
		if err != nil {
			return err
		}

		fmt.Println(doc.Body)
	}

Custom directives contribute badges and text:

	opt := graphqldoc.Options{
		CustomDirectives: graphqldoc.CustomDirectiveMap{
			"auth":                       {Tag: graphqldoc.DirectiveTag("warning")},
			"cost":                       {Descriptor: graphqldoc.DirectiveDescriptor("Query cost: {weight}")},
			graphqldoc.WildcardDirective: {Tag: graphqldoc.DirectiveTag("secondary")},
		},
	}

Formatting primitives can be replaced one at a time:

	opt.Formatter = graphqldoc.FormatterOverrides{
		Badge: func(badge graphqldoc.Badge) string {
			return "`" + badge.Text + "`"
		},
	}

Use the built-in template as a starting point for Options.TemplateText:

	tpl, err := graphqldoc.BuiltinTemplate()
	if err != nil {
		return err
	}

	fmt.Println(tpl)
*/
package graphqldoc
