// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Category is the closed classification of a documented entity.
type Category uint8

const (
	// CategoryUnknown marks references that cannot be classified.
	CategoryUnknown Category = iota
	// CategoryEnum is an enum type.
	CategoryEnum
	// CategoryUnion is a union type.
	CategoryUnion
	// CategoryInterface is an interface type.
	CategoryInterface
	// CategoryObject is an object type.
	CategoryObject
	// CategoryInput is an input object type.
	CategoryInput
	// CategoryScalar is a scalar type.
	CategoryScalar
	// CategoryDirective is a directive definition.
	CategoryDirective
	// CategoryQuery is a query operation.
	CategoryQuery
	// CategoryMutation is a mutation operation.
	CategoryMutation
	// CategorySubscription is a subscription operation.
	CategorySubscription
)

// Categories lists every known category in document output order.
var Categories = []Category{
	CategoryQuery,
	CategoryMutation,
	CategorySubscription,
	CategoryObject,
	CategoryInterface,
	CategoryUnion,
	CategoryEnum,
	CategoryInput,
	CategoryScalar,
	CategoryDirective,
}

// Locale is the display pair of a category.
type Locale struct {
	Singular string
	Plural   string
}

// Locale returns singular and plural display names.
func (c Category) Locale() Locale {
	switch c {
	case CategoryEnum:
		return Locale{Singular: "enum", Plural: "enums"}
	case CategoryUnion:
		return Locale{Singular: "union", Plural: "unions"}
	case CategoryInterface:
		return Locale{Singular: "interface", Plural: "interfaces"}
	case CategoryObject:
		return Locale{Singular: "type", Plural: "objects"}
	case CategoryInput:
		return Locale{Singular: "input", Plural: "inputs"}
	case CategoryScalar:
		return Locale{Singular: "scalar", Plural: "scalars"}
	case CategoryDirective:
		return Locale{Singular: "directive", Plural: "directives"}
	case CategoryQuery:
		return Locale{Singular: "query", Plural: "queries"}
	case CategoryMutation:
		return Locale{Singular: "mutation", Plural: "mutations"}
	case CategorySubscription:
		return Locale{Singular: "subscription", Plural: "subscriptions"}
	case CategoryUnknown:
		return Locale{}
	default:
		return Locale{}
	}
}

// Singular returns singular display name.
func (c Category) Singular() string {
	return c.Locale().Singular
}

// Plural returns plural display name, also used as URL path segment.
func (c Category) Plural() string {
	return c.Locale().Plural
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if c == CategoryUnknown {
		return "unknown"
	}

	return c.Plural()
}

// IsOperation reports whether category is one of the operation kinds.
func (c Category) IsOperation() bool {
	switch c {
	case CategoryQuery, CategoryMutation, CategorySubscription:
		return true
	case CategoryUnknown, CategoryEnum, CategoryUnion, CategoryInterface, CategoryObject,
		CategoryInput, CategoryScalar, CategoryDirective:
		return false
	default:
		return false
	}
}

// ParseCategory resolves a singular or plural category name.
func ParseCategory(name string) (Category, bool) {
	for _, category := range Categories {
		locale := category.Locale()
		if name == locale.Singular || name == locale.Plural {
			return category, true
		}
	}

	return CategoryUnknown, false
}

// ClassifyDefinition maps a named type definition to its category.
func ClassifyDefinition(def *ast.Definition) Category {
	if def == nil {
		return CategoryUnknown
	}

	switch def.Kind {
	case ast.Enum:
		return CategoryEnum
	case ast.Union:
		return CategoryUnion
	case ast.Interface:
		return CategoryInterface
	case ast.Object:
		return CategoryObject
	case ast.InputObject:
		return CategoryInput
	case ast.Scalar:
		return CategoryScalar
	default:
		return CategoryUnknown
	}
}
