// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// fixturePath is the shared SDL fixture.
var fixturePath = filepath.Join("testdata", "schema.graphql")

func loadFixture(t testing.TB) *Schema {
	t.Helper()

	schema, err := LoadSchemaFiles(fixturePath)
	if err != nil {
		t.Fatalf("LoadSchemaFiles: %v", err)
	}

	return schema
}

func newTestRenderer(t testing.TB, opt Options) *Renderer {
	t.Helper()

	renderer, err := New(loadFixture(t), opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return renderer
}

func findNode(t testing.TB, nodes []*Node, name string) *Node {
	t.Helper()

	for _, node := range nodes {
		if node.Name == name {
			return node
		}
	}

	t.Fatalf("node %q not found", name)
	return nil
}

func nodeNames(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Name)
	}

	return out
}

func typeNode(t testing.TB, schema *Schema, name string) *Node {
	t.Helper()

	def, ok := schema.Definition(name)
	if !ok {
		t.Fatalf("type %q not found", name)
	}

	return NewTypeNode(def)
}

// markdownLinks returns destinations of every inline link in markdown.
func markdownLinks(markdown string) []string {
	source := []byte(markdown)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		if link, ok := n.(*gmast.Link); ok {
			out = append(out, string(link.Destination))
		}

		return gmast.WalkContinue, nil
	})

	return out
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
