// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RelationKind is the direction of an incoming cross reference.
type RelationKind uint8

const (
	// RelationReturnedBy lists operations returning the target.
	RelationReturnedBy RelationKind = iota
	// RelationMemberOf lists types containing a field of the target or unions listing it.
	RelationMemberOf
	// RelationImplementedBy lists types implementing the target interface.
	RelationImplementedBy
)

// relationsTitle is the heading of the relations section.
const relationsTitle = "Relations"

// RelationKinds lists relation kinds in section order.
var RelationKinds = []RelationKind{
	RelationReturnedBy,
	RelationMemberOf,
	RelationImplementedBy,
}

// String implements fmt.Stringer.
func (k RelationKind) String() string {
	switch k {
	case RelationReturnedBy:
		return "returned by"
	case RelationMemberOf:
		return "member of"
	case RelationImplementedBy:
		return "implemented by"
	default:
		return ""
	}
}

// Title returns heading text of relation kind.
func (k RelationKind) Title() string {
	return cases.Title(language.English).String(k.String())
}

// Relation is one entry of the flattened relation view.
type Relation struct {
	Kind RelationKind
	Node *Node
}

// RelationSet maps relation kind to related entities sorted by name.
type RelationSet map[RelationKind][]*Node

// Empty reports whether no kind has entries.
func (s RelationSet) Empty() bool {
	for _, nodes := range s {
		if len(nodes) > 0 {
			return false
		}
	}

	return true
}

// Entries returns the union across kinds sorted by display name, then kind.
func (s RelationSet) Entries() []Relation {
	var out []Relation
	for _, kind := range RelationKinds {
		for _, node := range s[kind] {
			out = append(out, Relation{Kind: kind, Node: node})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Node.Name != out[j].Node.Name {
			return out[i].Node.Name < out[j].Node.Name
		}

		return out[i].Kind < out[j].Kind
	})

	return out
}

// relationIndex holds three reverse maps keyed by target type name.
type relationIndex struct {
	byKind map[RelationKind]map[string][]*Node
}

// buildRelationIndex scans the whole graph once.
func buildRelationIndex(schema *Schema) *relationIndex {
	index := &relationIndex{
		byKind: map[RelationKind]map[string][]*Node{
			RelationReturnedBy:    {},
			RelationMemberOf:      {},
			RelationImplementedBy: {},
		},
	}

	for _, category := range []Category{CategoryQuery, CategoryMutation, CategorySubscription} {
		for _, operation := range schema.Operations(category) {
			index.add(RelationReturnedBy, operation.NamedType(), operation)
		}
	}

	for _, category := range []Category{CategoryObject, CategoryInterface, CategoryInput} {
		for _, node := range schema.Types(category) {
			for _, field := range node.Definition.Fields {
				if strings.HasPrefix(field.Name, "__") || field.Type == nil {
					continue
				}

				target := field.Type.Name()
				if target == node.Name {
					continue
				}

				index.add(RelationMemberOf, target, node)
			}

			if category == CategoryInput {
				continue
			}

			for _, iface := range node.Definition.Interfaces {
				index.add(RelationImplementedBy, iface, node)
			}
		}
	}

	for _, union := range schema.Types(CategoryUnion) {
		for _, member := range union.Definition.Types {
			index.add(RelationMemberOf, member, union)
		}
	}

	for _, targets := range index.byKind {
		for name, nodes := range targets {
			targets[name] = uniqueSortedNodes(nodes)
		}
	}

	return index
}

// add stores one entry; entries of dangling targets are never looked up.
func (x *relationIndex) add(kind RelationKind, target string, node *Node) {
	if target == "" || node == nil {
		return
	}

	x.byKind[kind][target] = append(x.byKind[kind][target], node)
}

// lookup returns relations of a target name.
func (x *relationIndex) lookup(target *Node, category Category) RelationSet {
	out := RelationSet{}
	for _, kind := range RelationKinds {
		if kind == RelationImplementedBy && category != CategoryInterface {
			continue
		}

		if nodes := x.byKind[kind][target.Name]; len(nodes) > 0 {
			out[kind] = nodes
		}
	}

	return out
}

// uniqueSortedNodes sorts by name and drops duplicates of one entity.
func uniqueSortedNodes(nodes []*Node) []*Node {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Name != nodes[j].Name {
			return nodes[i].Name < nodes[j].Name
		}

		return nodes[i].Operation < nodes[j].Operation
	})

	return slices.CompactFunc(nodes, func(left, right *Node) bool {
		return left.Name == right.Name && left.Kind == right.Kind && left.Operation == right.Operation
	})
}

// RelationsOf returns incoming relations of a named type.
//
// Operations and directives have no incoming relations and report false, as
// does any target without entries.
func (r *Renderer) RelationsOf(node *Node) (RelationSet, bool) {
	target := r.schema.target(node)
	if target == nil {
		return nil, false
	}

	category := r.schema.Classify(target)
	switch category {
	case CategoryUnknown, CategoryDirective, CategoryQuery, CategoryMutation, CategorySubscription:
		return nil, false
	case CategoryEnum, CategoryUnion, CategoryInterface, CategoryObject, CategoryInput, CategoryScalar:
	}

	set := r.relations.lookup(target, category)
	if set.Empty() {
		return nil, false
	}

	return set, true
}

// printRelations renders the cross-kind union sorted by name, each entry
// tagged with its relation kind.
func (r *Renderer) printRelations(node *Node) string {
	if r.opt.HideRelations {
		return ""
	}

	set, ok := r.RelationsOf(node)
	if !ok {
		return ""
	}

	entries := set.Entries()
	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !r.printable(entry.Node) || !r.selected(entry.Node) {
			continue
		}

		item := r.format.Link(r.ResolveLink(entry.Node))
		if !r.opt.HideBadges {
			item += " " + r.format.Badge(Badge{Text: entry.Kind.Title(), Class: "info"})
			item += " " + r.format.Badge(Badge{Text: r.schema.Classify(entry.Node).Singular(), Class: "secondary"})
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return ""
	}

	heading := strings.Repeat("#", defaultSectionLevel)
	return heading + " " + relationsTitle + "\n\n" + strings.Join(items, "<br/>\n")
}
