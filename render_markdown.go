// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"strings"
)

// codeFence opens and closes fenced code blocks.
const codeFence = "```"

// formatDescription normalizes schema description markdown.
//
// SDL block strings keep their own indentation, so the common indent is
// stripped outside fences and runs of blank lines are collapsed.
func formatDescription(text string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	indent := commonIndent(lines[1:])

	out := make([]string, 0, len(lines))
	inFence := false
	for index, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if index > 0 && len(line) >= indent {
			line = line[indent:]
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, codeFence) {
			inFence = !inFence
			out = append(out, line)
			continue
		}

		if !inFence && trimmed == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}

		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

// commonIndent returns the smallest leading space count of non-blank lines.
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		current := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || current < indent {
			indent = current
		}
	}

	return max(indent, 0)
}

// fencedBlock wraps code into a fenced block with language tag.
func fencedBlock(language, code string) string {
	code = strings.TrimRight(normalizeLineEndings(code), "\n")
	if code == "" {
		return ""
	}

	return codeFence + language + "\n" + code + "\n" + codeFence
}

// joinBlocks joins non-empty markdown blocks with blank lines.
func joinBlocks(blocks ...string) string {
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block = strings.TrimSpace(block); block != "" {
			out = append(out, block)
		}
	}

	return strings.Join(out, "\n\n")
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, codeFence) {
			inFence = !inFence
			out = append(out, line)
			blankCount = 0
			continue
		}

		if !inFence && trimmed == "" {
			if blankCount == 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
