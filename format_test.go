// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultFormatterPrimitives(t *testing.T) {
	t.Parallel()

	format := NewFormatter(FormatterOverrides{})
	cases := map[string]struct {
		got  string
		want string
	}{
		"badge": {
			got:  format.Badge(Badge{Text: "non-null", Class: "secondary"}),
			want: `<mark class="gqlmd-badge gqlmd-badge--secondary">non-null</mark>`,
		},
		"badge default class": {
			got:  format.Badge(Badge{Text: "<b>"}),
			want: `<mark class="gqlmd-badge gqlmd-badge--secondary">&lt;b&gt;</mark>`,
		},
		"bullet": {
			got:  format.Bullet("x"),
			want: " ● x",
		},
		"link": {
			got:  format.Link(LinkTarget{Text: "[User!]", URL: "/objects/user"}),
			want: "[`[User!]`](/objects/user)",
		},
		"name": {
			got:  format.NameEntity("id", ""),
			want: "<code>id</code>",
		},
		"name with parent": {
			got:  format.NameEntity("id", "User"),
			want: "<code>User.<b>id</b></code>",
		},
		"specified by": {
			got:  format.SpecifiedBy("https://example.com/spec"),
			want: "[Specification](https://example.com/spec)",
		},
		"admonition": {
			got:  format.Admonition(Admonition{Icon: "⚠️", Title: "DEPRECATED", Text: "Use USER\nsoon"}),
			want: "> **⚠️ DEPRECATED**\n>\n> Use USER\n> soon",
		},
		"details with close label": {
			got:  format.Details(Details{OpenLabel: "Show deprecated", CloseLabel: "Hide deprecated", Content: "item"}),
			want: "<details>\n<summary data-close-label=\"Hide deprecated\">Show deprecated</summary>\n\nitem\n\n</details>",
		},
		"details": {
			got:  format.Details(Details{OpenLabel: "Show deprecated", Content: "\nitem\n"}),
			want: "<details>\n<summary>Show deprecated</summary>\n\nitem\n\n</details>",
		},
	}

	for name, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q, want %q", name, tc.got, tc.want)
		}
	}
}

func TestFormatterOverridesFallBack(t *testing.T) {
	t.Parallel()

	format := NewFormatter(FormatterOverrides{
		Badge: func(badge Badge) string {
			return "`" + badge.Text + "`"
		},
	})

	if got := format.Badge(Badge{Text: "list"}); got != "`list`" {
		t.Fatalf("override not applied: %q", got)
	}

	if got := format.Bullet("x"); got != (DefaultFormatter{}).Bullet("x") {
		t.Fatalf("unset primitive did not fall back: %q", got)
	}

	if got := format.Link(LinkTarget{Text: "User", URL: "/u"}); got != "[`User`](/u)" {
		t.Fatalf("unset link did not fall back: %q", got)
	}
}

func TestFrontMatterKeyOrder(t *testing.T) {
	t.Parallel()

	header, err := DefaultFormatter{}.FrontMatter(map[string]any{
		"tags":  []string{"api"},
		"title": "User",
		"id":    "user",
		"draft": false,
	})
	if err != nil {
		t.Fatalf("FrontMatter: %v", err)
	}

	want := "---\nid: user\ntitle: User\ndraft: false\ntags:\n  - api\n---"
	if header != want {
		t.Fatalf("header mismatch:\n%s\nwant:\n%s", header, want)
	}
}

func TestParseFrontMatterRoundTrip(t *testing.T) {
	t.Parallel()

	props := map[string]any{"id": "user", "title": "User", "weight": 3}
	header, err := DefaultFormatter{}.FrontMatter(props)
	if err != nil {
		t.Fatalf("FrontMatter: %v", err)
	}

	doc := Document{Header: header, Body: "# User\n"}
	got, body, err := ParseFrontMatter(doc.Content())
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if diff := cmp.Diff(props, got); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}

	if body != doc.Body {
		t.Fatalf("body = %q, want %q", body, doc.Body)
	}
}

func TestParseFrontMatterEdgeCases(t *testing.T) {
	t.Parallel()

	props, body, err := ParseFrontMatter("# Plain\r\n")
	if err != nil || props != nil || body != "# Plain\n" {
		t.Fatalf("plain content: props=%v body=%q err=%v", props, body, err)
	}

	if _, _, err := ParseFrontMatter("---\nid: user\n# never closed\n"); !errors.Is(err, ErrMissingFrontMatter) {
		t.Fatalf("unclosed front matter error = %v", err)
	}

	if _, _, err := ParseFrontMatter("---\nid: [\n---\nbody\n"); !errors.Is(err, ErrDecodeFrontMatter) {
		t.Fatalf("invalid YAML error = %v", err)
	}

	props, body, err = ParseFrontMatter("---\n---\n\nbody\n")
	if err != nil || len(props) != 0 || body != "body\n" {
		t.Fatalf("empty front matter: props=%v body=%q err=%v", props, body, err)
	}
}

func TestFrontMatterEncodeFailureIsWrapped(t *testing.T) {
	t.Parallel()

	renderer := newTestRenderer(t, Options{
		Formatter: FormatterOverrides{
			FrontMatter: func(map[string]any) (string, error) {
				return "", errors.New("disk full")
			},
		},
	})

	_, err := renderer.Assemble("User", typeNode(t, renderer.Schema(), "User"))
	if !errors.Is(err, ErrEncodeFrontMatter) || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("error = %v", err)
	}
}
