// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func TestClassifyDefinition(t *testing.T) {
	t.Parallel()

	cases := map[ast.DefinitionKind]Category{
		ast.Enum:        CategoryEnum,
		ast.Union:       CategoryUnion,
		ast.Interface:   CategoryInterface,
		ast.Object:      CategoryObject,
		ast.InputObject: CategoryInput,
		ast.Scalar:      CategoryScalar,
	}

	for kind, want := range cases {
		if got := ClassifyDefinition(&ast.Definition{Kind: kind, Name: "X"}); got != want {
			t.Fatalf("ClassifyDefinition(%s) = %v, want %v", kind, got, want)
		}
	}

	if got := ClassifyDefinition(nil); got != CategoryUnknown {
		t.Fatalf("ClassifyDefinition(nil) = %v, want unknown", got)
	}
}

func TestCategoryLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category Category
		singular string
		plural   string
	}{
		{CategoryObject, "type", "objects"},
		{CategoryInput, "input", "inputs"},
		{CategoryQuery, "query", "queries"},
		{CategoryDirective, "directive", "directives"},
		{CategoryUnknown, "", ""},
	}

	for _, tc := range cases {
		if tc.category.Singular() != tc.singular || tc.category.Plural() != tc.plural {
			t.Fatalf("%d locale = %+v, want %s/%s", tc.category, tc.category.Locale(), tc.singular, tc.plural)
		}
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, category := range Categories {
		got, ok := ParseCategory(category.Plural())
		if !ok || got != category {
			t.Fatalf("ParseCategory(%q) = %v, %v", category.Plural(), got, ok)
		}

		got, ok = ParseCategory(category.Singular())
		if !ok || got != category {
			t.Fatalf("ParseCategory(%q) = %v, %v", category.Singular(), got, ok)
		}
	}

	if _, ok := ParseCategory("widget"); ok {
		t.Fatal("ParseCategory accepted unknown name")
	}
}

func TestCategoryIsOperation(t *testing.T) {
	t.Parallel()

	for _, category := range Categories {
		want := category == CategoryQuery || category == CategoryMutation || category == CategorySubscription
		if got := category.IsOperation(); got != want {
			t.Fatalf("%v.IsOperation() = %v, want %v", category, got, want)
		}
	}
}
