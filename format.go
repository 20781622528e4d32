// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// frontMatterDelimiter opens and closes YAML front matter.
	frontMatterDelimiter = "---"
	// deprecatedShowLabel is the collapsed label of grouped deprecated items.
	deprecatedShowLabel = "Show deprecated"
	// deprecatedHideLabel is the expanded label of grouped deprecated items.
	deprecatedHideLabel = "Hide deprecated"
)

// Badge is a short decorated label attached to rendered items.
type Badge struct {
	Text  string
	Class string
}

// Details is a collapsible block; CloseLabel is exposed as a data attribute
// for themes that swap the summary text while the block is open.
type Details struct {
	OpenLabel  string
	CloseLabel string
	Content    string
}

// Admonition is a callout block such as a deprecation warning.
type Admonition struct {
	Kind  string
	Icon  string
	Title string
	Text  string
}

// LinkTarget is a resolved cross reference.
type LinkTarget struct {
	Text string
	URL  string
}

// Formatter renders every markdown primitive used by documents.
type Formatter interface {
	Badge(badge Badge) string
	Bullet(text string) string
	Details(details Details) string
	Admonition(admonition Admonition) string
	FrontMatter(props map[string]any) (string, error)
	Link(link LinkTarget) string
	NameEntity(name, parentType string) string
	SpecifiedBy(url string) string
}

// FormatterOverrides replaces selected primitives; nil fields keep defaults.
type FormatterOverrides struct {
	Badge       func(badge Badge) string
	Bullet      func(text string) string
	Details     func(details Details) string
	Admonition  func(admonition Admonition) string
	FrontMatter func(props map[string]any) (string, error)
	Link        func(link LinkTarget) string
	NameEntity  func(name, parentType string) string
	SpecifiedBy func(url string) string
}

// NewFormatter returns the default formatter with overrides applied.
func NewFormatter(overrides FormatterOverrides) Formatter {
	return overrideFormatter{base: DefaultFormatter{}, fn: overrides}
}

// DefaultFormatter renders plain CommonMark with a few inline HTML tags.
type DefaultFormatter struct{}

// Badge implements Formatter.
func (DefaultFormatter) Badge(badge Badge) string {
	class := strings.TrimSpace(badge.Class)
	if class == "" {
		class = "secondary"
	}

	return fmt.Sprintf(`<mark class="gqlmd-badge gqlmd-badge--%s">%s</mark>`, class, html.EscapeString(badge.Text))
}

// Bullet implements Formatter.
func (DefaultFormatter) Bullet(text string) string {
	return " ● " + text
}

// Details implements Formatter.
func (DefaultFormatter) Details(details Details) string {
	var out strings.Builder
	out.WriteString("<details>\n")
	if label := strings.TrimSpace(details.CloseLabel); label != "" {
		fmt.Fprintf(&out, "<summary data-close-label=\"%s\">%s</summary>\n\n",
			html.EscapeString(label), html.EscapeString(details.OpenLabel))
	} else {
		fmt.Fprintf(&out, "<summary>%s</summary>\n\n", html.EscapeString(details.OpenLabel))
	}
	out.WriteString(strings.TrimSpace(details.Content))
	out.WriteString("\n\n</details>")
	return out.String()
}

// Admonition implements Formatter.
func (DefaultFormatter) Admonition(admonition Admonition) string {
	title := strings.TrimSpace(strings.TrimSpace(admonition.Icon) + " " + admonition.Title)
	lines := []string{"> **" + title + "**"}
	text := normalizeLineEndings(strings.TrimSpace(admonition.Text))
	if text != "" {
		lines = append(lines, ">")
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimRight("> "+line, " "))
		}
	}

	return strings.Join(lines, "\n")
}

// FrontMatter implements Formatter.
func (DefaultFormatter) FrontMatter(props map[string]any) (string, error) {
	body, err := encodeFrontMatter(props)
	if err != nil {
		return "", err
	}

	return frontMatterDelimiter + "\n" + body + frontMatterDelimiter, nil
}

// Link implements Formatter.
func (DefaultFormatter) Link(link LinkTarget) string {
	return fmt.Sprintf("[`%s`](%s)", escapeInline(link.Text), link.URL)
}

// NameEntity implements Formatter.
func (DefaultFormatter) NameEntity(name, parentType string) string {
	if parentType == "" {
		return fmt.Sprintf("<code>%s</code>", html.EscapeString(name))
	}

	return fmt.Sprintf("<code>%s.<b>%s</b></code>", html.EscapeString(parentType), html.EscapeString(name))
}

// SpecifiedBy implements Formatter.
func (DefaultFormatter) SpecifiedBy(url string) string {
	return fmt.Sprintf("[Specification](%s)", url)
}

// overrideFormatter dispatches to overrides and falls back to base.
type overrideFormatter struct {
	base Formatter
	fn   FormatterOverrides
}

func (f overrideFormatter) Badge(badge Badge) string {
	if f.fn.Badge != nil {
		return f.fn.Badge(badge)
	}

	return f.base.Badge(badge)
}

func (f overrideFormatter) Bullet(text string) string {
	if f.fn.Bullet != nil {
		return f.fn.Bullet(text)
	}

	return f.base.Bullet(text)
}

func (f overrideFormatter) Details(details Details) string {
	if f.fn.Details != nil {
		return f.fn.Details(details)
	}

	return f.base.Details(details)
}

func (f overrideFormatter) Admonition(admonition Admonition) string {
	if f.fn.Admonition != nil {
		return f.fn.Admonition(admonition)
	}

	return f.base.Admonition(admonition)
}

func (f overrideFormatter) FrontMatter(props map[string]any) (string, error) {
	if f.fn.FrontMatter != nil {
		return f.fn.FrontMatter(props)
	}

	return f.base.FrontMatter(props)
}

func (f overrideFormatter) Link(link LinkTarget) string {
	if f.fn.Link != nil {
		return f.fn.Link(link)
	}

	return f.base.Link(link)
}

func (f overrideFormatter) NameEntity(name, parentType string) string {
	if f.fn.NameEntity != nil {
		return f.fn.NameEntity(name, parentType)
	}

	return f.base.NameEntity(name, parentType)
}

func (f overrideFormatter) SpecifiedBy(url string) string {
	if f.fn.SpecifiedBy != nil {
		return f.fn.SpecifiedBy(url)
	}

	return f.base.SpecifiedBy(url)
}

// frontMatterKeyOrder lists keys emitted before the sorted remainder.
var frontMatterKeyOrder = []string{"id", "title"}

// encodeFrontMatter serializes props as YAML with id and title first and other keys sorted.
func encodeFrontMatter(props map[string]any) (string, error) {
	if len(props) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return frontMatterKeyRank(keys[i], keys[j])
	})

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keys {
		var value yaml.Node
		if err := value.Encode(props[key]); err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrEncodeFrontMatter, key, err)
		}

		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(mapping); err != nil {
		_ = encoder.Close()
		return "", fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
	}

	return out.String(), nil
}

// frontMatterKeyRank orders fixed keys first, then alphabetical.
func frontMatterKeyRank(left, right string) bool {
	leftRank := keyRank(left)
	rightRank := keyRank(right)
	if leftRank != rightRank {
		return leftRank < rightRank
	}

	return left < right
}

// keyRank returns fixed position of a key or a rank after all fixed keys.
func keyRank(key string) int {
	for index, fixed := range frontMatterKeyOrder {
		if key == fixed {
			return index
		}
	}

	return len(frontMatterKeyOrder)
}

// ParseFrontMatter splits YAML front matter from content and decodes it.
//
// Content without an opening delimiter returns nil props and the full content as body.
func ParseFrontMatter(content string) (map[string]any, string, error) {
	content = normalizeLineEndings(content)
	open := frontMatterDelimiter + "\n"
	if !strings.HasPrefix(content, open) {
		return nil, content, nil
	}

	rest := content[len(open):]
	var raw, body string
	switch {
	case strings.HasPrefix(rest, open):
		body = strings.TrimLeft(rest[len(open):], "\n")
	case rest == frontMatterDelimiter:
		body = ""
	default:
		index := strings.Index(rest, "\n"+frontMatterDelimiter)
		if index < 0 {
			return nil, "", ErrMissingFrontMatter
		}

		raw = rest[:index+1]
		body = strings.TrimLeft(rest[index+1+len(frontMatterDelimiter):], "\n")
	}

	props := map[string]any{}
	if strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &props); err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrDecodeFrontMatter, err)
		}
	}

	return props, body, nil
}
