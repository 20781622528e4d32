// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const (
	// defaultBasePath is used when caller does not provide link base path.
	defaultBasePath = "/"
	// defaultSectionLevel is heading depth of metadata sections.
	defaultSectionLevel = 3
	// deprecatedSegment is inserted into links and paths in group deprecation mode.
	deprecatedSegment = "deprecated"
)

// DeprecationMode controls how deprecated entities and children are rendered.
type DeprecationMode string

const (
	// DeprecationDefault renders deprecated items inline with a caution marker.
	DeprecationDefault DeprecationMode = "default"
	// DeprecationGroup moves deprecated items into a collapsible block and a deprecated path segment.
	DeprecationGroup DeprecationMode = "group"
	// DeprecationSkip removes deprecated items from output.
	DeprecationSkip DeprecationMode = "skip"
)

// ParseDeprecationMode validates a deprecation mode name; empty selects default.
func ParseDeprecationMode(value string) (DeprecationMode, error) {
	switch DeprecationMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", DeprecationDefault:
		return DeprecationDefault, nil
	case DeprecationGroup:
		return DeprecationGroup, nil
	case DeprecationSkip:
		return DeprecationSkip, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDeprecationMode, value)
	}
}

// Options configures one renderer. The zero value renders with defaults.
//
// Options is treated as immutable: New copies every map and slice it keeps.
type Options struct {
	// BasePath prefixes every generated link.
	BasePath string
	// Groups maps category to entity name to group name.
	Groups map[Category]map[string]string
	// GroupByDirective computes Groups from an applied directive when Groups is empty.
	GroupByDirective *GroupByDirective

	// HideParentTypePrefix drops the "Parent." breadcrumb in section items.
	HideParentTypePrefix bool
	// HideRelations disables the relations section.
	HideRelations bool
	// HideBadges disables item badges.
	HideBadges bool
	// HideCode disables the declaration code block.
	HideCode bool

	// SkipDirectives excludes entities carrying any of these directives.
	SkipDirectives []string
	// OnlyDirectives, when set, keeps only entities carrying one of these directives.
	OnlyDirectives []string
	// Deprecated selects the deprecation policy.
	Deprecated DeprecationMode
	// Example adds a sample request section to operation pages; empty disables it.
	Example ExampleMode

	// CustomDirectives registers descriptor and tag resolvers by directive name.
	CustomDirectives CustomDirectiveMap
	// Formatter overrides individual formatting primitives.
	Formatter FormatterOverrides

	// FrontMatter adds extra props to every document header.
	FrontMatter map[string]any
	// Fingerprint adds a content fingerprint prop to every document header.
	Fingerprint bool
	// TemplateText replaces the built-in document template.
	TemplateText string

	// Workers bounds parallel document assembly; zero uses GOMAXPROCS.
	Workers int
	// Logger receives resolver and per-entity failures; nil discards.
	Logger *zap.Logger
}

// normalizeOptions validates options and returns a private copy with defaults applied.
func normalizeOptions(opt Options) (Options, error) {
	out := opt

	out.BasePath = normalizeBasePath(opt.BasePath)

	mode, err := ParseDeprecationMode(string(opt.Deprecated))
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	out.Deprecated = mode

	example, err := ParseExampleMode(string(opt.Example))
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	out.Example = example
	out.SkipDirectives = normalizeDirectiveNames(opt.SkipDirectives)
	out.OnlyDirectives = normalizeDirectiveNames(opt.OnlyDirectives)

	if overlap := intersect(out.SkipDirectives, out.OnlyDirectives); len(overlap) > 0 {
		return Options{}, fmt.Errorf("%w: directives both skipped and required: %s", ErrInvalidOptions, strings.Join(overlap, ", "))
	}

	if opt.GroupByDirective != nil {
		group := *opt.GroupByDirective
		if err := group.validate(); err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}

		out.GroupByDirective = &group
	}

	customDirectives, err := opt.CustomDirectives.normalize()
	if err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	out.CustomDirectives = customDirectives
	out.Groups = cloneGroups(opt.Groups)
	out.FrontMatter = maps.Clone(opt.FrontMatter)
	out.Workers = normalizeWorkers(opt.Workers)
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	return out, nil
}

// normalizeBasePath trims base path and falls back to default.
func normalizeBasePath(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultBasePath
	}

	return value
}

// normalizeWorkers validates worker count and falls back to default.
func normalizeWorkers(value int) int {
	if value <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return value
}

// normalizeDirectiveNames trims "@" prefixes, drops blanks and sorts unique names.
func normalizeDirectiveNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		if name == "" {
			continue
		}

		out = append(out, name)
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// intersect returns names present in both sorted lists.
func intersect(left, right []string) []string {
	var out []string
	for _, name := range left {
		if slices.Contains(right, name) {
			out = append(out, name)
		}
	}

	return out
}

// cloneGroups deep copies the group map.
func cloneGroups(groups map[Category]map[string]string) map[Category]map[string]string {
	if len(groups) == 0 {
		return nil
	}

	out := make(map[Category]map[string]string, len(groups))
	for category, names := range groups {
		out[category] = maps.Clone(names)
	}

	return out
}
