// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"strings"
	"testing"
)

func userFields(t *testing.T, renderer *Renderer) []*Node {
	t.Helper()

	return fieldNodes(typeNode(t, renderer.Schema(), "User").Definition.Fields)
}

func TestRenderSectionEmpty(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{SkipDirectives: []string{"internal"}})
	if got := renderer.RenderSection(nil, "Fields"); got != "" {
		t.Fatalf("empty list rendered %q", got)
	}

	secret := findNode(t, userFields(t, renderer), "secret")
	if got := renderer.RenderSection([]*Node{secret}, "Fields"); got != "" {
		t.Fatalf("filtered list rendered %q", got)
	}
}

func TestRenderSectionDeprecationModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode       DeprecationMode
		contains   []string
		notContain []string
	}{
		{
			mode:       DeprecationDefault,
			contains:   []string{"<code>legacyName</code>", ">deprecated</mark>", "> **⚠️ DEPRECATED**\n>\n> No longer supported"},
			notContain: []string{"<details>"},
		},
		{
			mode:     DeprecationGroup,
			contains: []string{"<details>\n<summary data-close-label=\"Hide deprecated\">Show deprecated</summary>\n\n#### <code>legacyName</code>"},
		},
		{
			mode:       DeprecationSkip,
			contains:   []string{"<code>name</code>"},
			notContain: []string{"legacyName", "<details>"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			renderer := newTestRenderer(t, Options{Deprecated: tt.mode})
			fields := userFields(t, renderer)
			got := renderer.RenderSection([]*Node{
				findNode(t, fields, "name"),
				findNode(t, fields, "legacyName"),
			}, "Fields")

			if !strings.HasPrefix(got, "### Fields\n\n#### <code>name</code>") {
				t.Fatalf("unexpected section start:\n%s", got)
			}

			for _, want := range tt.contains {
				assertContains(t, got, want)
			}

			for _, unwanted := range tt.notContain {
				assertNotContains(t, got, unwanted)
			}
		})
	}
}

func TestRenderSectionNestedArguments(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	posts := findNode(t, userFields(t, renderer), "posts")
	got := renderer.RenderSection([]*Node{posts}, "Fields")

	assertContains(t, got, "#### <code>posts</code> ● [`[Post!]!`](/objects/post)")
	assertContains(t, got, "Posts written by the user.")
	assertContains(t, got, "##### <code>posts.<b>first</b></code> = `10` ● [`Int`](/scalars/int)")
	assertContains(t, got, "##### <code>posts.<b>after</b></code> ● [`String`](/scalars/string)")
}

func TestRenderSectionParentPrefix(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	user := typeNode(t, renderer.Schema(), "User")
	fields := []*Node{findNode(t, userFields(t, renderer), "posts")}

	withPrefix := renderer.printSection(fields, "Fields", sectionScope{level: defaultSectionLevel, parentType: user.Name})
	assertContains(t, withPrefix, "#### <code>User.<b>posts</b></code>")
	assertContains(t, withPrefix, "##### <code>User.posts.<b>first</b></code>")

	renderer = newTestRenderer(t, Options{HideParentTypePrefix: true})
	withoutPrefix := renderer.printSection(fields, "Fields", sectionScope{level: defaultSectionLevel, parentType: user.Name})
	assertContains(t, withoutPrefix, "#### <code>posts</code>")
	assertContains(t, withoutPrefix, "##### <code>first</code>")
	assertNotContains(t, withoutPrefix, "User.")
}

func TestRenderSectionBadges(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	posts := findNode(t, userFields(t, renderer), "posts")
	got := renderer.RenderSection([]*Node{posts}, "Fields")
	assertContains(t, got, ">non-null</mark>")
	assertContains(t, got, ">list</mark>")
	assertContains(t, got, ">type</mark>")

	renderer = newTestRenderer(t, Options{HideBadges: true})
	assertNotContains(t, renderer.RenderSection([]*Node{posts}, "Fields"), "<mark")
}

func TestRenderSectionEnumValues(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{Deprecated: DeprecationGroup})
	role := typeNode(t, renderer.Schema(), "Role")
	got := renderer.RenderSection(enumValueNodes(role.Definition.EnumValues), "Values")

	live, grouped, found := strings.Cut(got, "<details>")
	if !found {
		t.Fatalf("deprecated values not grouped:\n%s", got)
	}

	assertContains(t, live, "#### <code>ADMIN</code>")
	assertContains(t, live, "#### <code>USER</code>")
	assertContains(t, grouped, "#### <code>GUEST</code>")
	assertContains(t, grouped, "> Use USER")
}
