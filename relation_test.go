// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// relationNames flattens a relation set into names per kind.
func relationNames(set RelationSet) map[RelationKind][]string {
	out := make(map[RelationKind][]string, len(set))
	for kind, nodes := range set {
		out[kind] = nodeNames(nodes)
	}

	return out
}

func TestRelationsOf(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	schema := renderer.Schema()

	cases := []struct {
		name string
		want map[RelationKind][]string
	}{
		{"User", map[RelationKind][]string{
			RelationReturnedBy: {"legacyUsers", "me"},
			RelationMemberOf:   {"Post", "SearchResult"},
		}},
		{"Node", map[RelationKind][]string{
			RelationReturnedBy:    {"node"},
			RelationImplementedBy: {"Post", "User"},
		}},
		{"Post", map[RelationKind][]string{
			RelationReturnedBy: {"createPost"},
			RelationMemberOf:   {"SearchResult", "User"},
		}},
		{"Role", map[RelationKind][]string{
			RelationMemberOf: {"User"},
		}},
		{"String", map[RelationKind][]string{
			RelationMemberOf: {"Post", "PostFilter", "User"},
		}},
	}

	for _, tc := range cases {
		set, ok := renderer.RelationsOf(typeNode(t, schema, tc.name))
		if !ok {
			t.Fatalf("%s: no relations", tc.name)
		}

		if diff := cmp.Diff(tc.want, relationNames(set)); diff != "" {
			t.Fatalf("%s relations mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestRelationsOfOmitted(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	schema := renderer.Schema()

	cases := []struct {
		name string
		node *Node
	}{
		{"self reference only", typeNode(t, schema, "PostFilter")},
		{"operation", findNode(t, schema.Operations(CategoryQuery), "me")},
		{"directive", findNode(t, schema.Directives(), "auth")},
		{"nil", nil},
	}

	for _, tc := range cases {
		if set, ok := renderer.RelationsOf(tc.node); ok || set != nil {
			t.Fatalf("%s: RelationsOf = %v, %v", tc.name, set, ok)
		}
	}
}

func TestRelationSetEntriesSortedAcrossKinds(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	set, ok := renderer.RelationsOf(typeNode(t, renderer.Schema(), "User"))
	if !ok {
		t.Fatal("User has no relations")
	}

	type entry struct {
		Name string
		Kind RelationKind
	}

	var got []entry
	for _, relation := range set.Entries() {
		got = append(got, entry{Name: relation.Node.Name, Kind: relation.Kind})
	}

	want := []entry{
		{"Post", RelationMemberOf},
		{"SearchResult", RelationMemberOf},
		{"legacyUsers", RelationReturnedBy},
		{"me", RelationReturnedBy},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintRelations(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{})
	out := renderer.printRelations(typeNode(t, renderer.Schema(), "User"))

	assertContains(t, out, "### Relations")
	assertContains(t, out, "[`Post`](/objects/post)")
	assertContains(t, out, "[`me`](/queries/me)")
	assertContains(t, out, ">Member Of</mark>")
	assertContains(t, out, ">Returned By</mark>")
}

func TestPrintRelationsDropsHiddenEntries(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{SkipDirectives: []string{"internal"}})
	if out := renderer.printRelations(typeNode(t, renderer.Schema(), "AuditLog")); out != "" {
		t.Fatalf("expected no relations, got:\n%s", out)
	}

	hidden := newTestRenderer(t, Options{HideRelations: true})
	if out := hidden.printRelations(typeNode(t, hidden.Schema(), "User")); out != "" {
		t.Fatalf("expected relations disabled, got:\n%s", out)
	}
}

func TestRelationKindTitle(t *testing.T) {
	t.Parallel()

	if got := RelationImplementedBy.Title(); got != "Implemented By" {
		t.Fatalf("Title = %q", got)
	}
}
