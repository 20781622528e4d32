// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func TestResolveLinkPerCategory(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	schema := renderer.Schema()

	cases := []struct {
		node *Node
		want LinkTarget
	}{
		{typeNode(t, schema, "User"), LinkTarget{Text: "User", URL: "/objects/user"}},
		{typeNode(t, schema, "Node"), LinkTarget{Text: "Node", URL: "/interfaces/node"}},
		{typeNode(t, schema, "SearchResult"), LinkTarget{Text: "SearchResult", URL: "/unions/search-result"}},
		{typeNode(t, schema, "Role"), LinkTarget{Text: "Role", URL: "/enums/role"}},
		{typeNode(t, schema, "PostFilter"), LinkTarget{Text: "PostFilter", URL: "/inputs/post-filter"}},
		{typeNode(t, schema, "DateTime"), LinkTarget{Text: "DateTime", URL: "/scalars/date-time"}},
		{findNode(t, schema.Operations(CategoryQuery), "me"), LinkTarget{Text: "me", URL: "/queries/me"}},
		{findNode(t, schema.Operations(CategoryMutation), "createPost"), LinkTarget{Text: "createPost", URL: "/mutations/create-post"}},
		{findNode(t, schema.Directives(), "auth"), LinkTarget{Text: "auth", URL: "/directives/auth"}},
	}

	for _, tc := range cases {
		if got := renderer.ResolveLink(tc.node); got != tc.want {
			t.Fatalf("ResolveLink(%s) = %+v, want %+v", tc.node.Name, got, tc.want)
		}
	}
}

func TestResolveLinkBasePath(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{BasePath: "/docs/api/"})
	got := renderer.ResolveLink(typeNode(t, renderer.Schema(), "User"))
	if got.URL != "/docs/api/objects/user" {
		t.Fatalf("URL = %q", got.URL)
	}
}

func TestResolveLinkFallback(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{SkipDirectives: []string{"@internal"}})
	schema := renderer.Schema()

	cases := []struct {
		name string
		node *Node
		want LinkTarget
	}{
		{"dangling", NewTypeRefNode(ast.NamedType("Missing", nil)), LinkTarget{Text: "Missing", URL: "#"}},
		{"kindless operation", &Node{Kind: NodeOperation, Name: "orphan"}, LinkTarget{Text: "orphan", URL: "#"}},
		{"excluded", typeNode(t, schema, "AuditLog"), LinkTarget{Text: "AuditLog", URL: "#"}},
		{"excluded target", NewTypeRefNode(ast.NonNullNamedType("AuditLog", nil)), LinkTarget{Text: "AuditLog", URL: "#"}},
		{"enum value", NewEnumValueNode(&ast.EnumValueDefinition{Name: "ADMIN"}), LinkTarget{Text: "ADMIN", URL: "#"}},
	}

	for _, tc := range cases {
		if got := renderer.ResolveLink(tc.node); got != tc.want {
			t.Fatalf("%s: ResolveLink = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestResolveLinkDeterministic(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{Deprecated: DeprecationGroup})
	for _, node := range renderer.Schema().Entities() {
		first := renderer.ResolveLink(node)
		second := renderer.ResolveLink(node)
		if first != second {
			t.Fatalf("ResolveLink(%s) not deterministic: %+v vs %+v", node.Name, first, second)
		}
	}
}

func TestResolveLinkWrapperInvariance(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	wrapped := ast.NonNullListType(ast.NonNullNamedType("Post", nil), nil)

	plain := renderer.ResolveLink(NewTypeRefNode(ast.NamedType("Post", nil)))
	got := renderer.ResolveLink(NewTypeRefNode(wrapped))
	if got != plain {
		t.Fatalf("wrapped link = %+v, plain link = %+v", got, plain)
	}

	if text := PrintLinkAttributes(wrapped, got.Text); text != "[Post!]!" {
		t.Fatalf("PrintLinkAttributes = %q", text)
	}

	nested := ast.ListType(ast.ListType(ast.NamedType("Int", nil), nil), nil)
	if text := PrintLinkAttributes(nested, "Int"); text != "[[Int]]" {
		t.Fatalf("PrintLinkAttributes nested = %q", text)
	}
}

func TestResolveLinkGroupSegments(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{
		Deprecated: DeprecationGroup,
		Groups: map[Category]map[string]string{
			CategoryObject: {"User": "User Accounts"},
		},
	})
	schema := renderer.Schema()

	if got := renderer.ResolveLink(typeNode(t, schema, "User")).URL; got != "/user-accounts/objects/user" {
		t.Fatalf("grouped URL = %q", got)
	}

	legacy := findNode(t, schema.Operations(CategoryQuery), "legacyUsers")
	if got := renderer.ResolveLink(legacy).URL; got != "/deprecated/queries/legacy-users" {
		t.Fatalf("deprecated URL = %q", got)
	}
}

func TestResolveLinkSkippedDeprecatedTarget(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{Deprecated: DeprecationSkip})
	legacy := findNode(t, renderer.Schema().Operations(CategoryQuery), "legacyUsers")

	// An entity links to itself even when skip mode hides it from listings.
	if got := renderer.ResolveLink(legacy).URL; got != "/queries/legacy-users" {
		t.Fatalf("URL = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"User":        "user",
		"UserID":      "user-id",
		"HTTPServer":  "http-server",
		"createPost":  "create-post",
		"DateTime":    "date-time",
		"JSON":        "json",
		"Post Filter": "post-filter",
		"snake_case":  "snake-case",
		"  Trimmed  ": "trimmed",
	}

	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveLinkRootTypeFallsBack(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	for _, name := range []string{"Query", "Mutation"} {
		ref := NewTypeRefNode(ast.NonNullNamedType(name, nil))
		if got := renderer.ResolveLink(ref); got != (LinkTarget{Text: name, URL: "#"}) {
			t.Fatalf("ResolveLink(%s) = %+v, want fallback", name, got)
		}
	}
}
