// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/graphqldoc"
)

// writeDocuments writes every document under root and returns written file paths.
func writeDocuments(root, ext string, docs []graphqldoc.Document) ([]string, error) {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = defaultExt
	}

	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Path == "" {
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(doc.Path)+"."+ext)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return written, fmt.Errorf("create output directory %q: %w", filepath.Dir(path), err)
		}

		if err := os.WriteFile(path, []byte(doc.Content()), 0o600); err != nil {
			return written, fmt.Errorf("write markdown file %q: %w", path, err)
		}

		written = append(written, path)
	}

	return written, nil
}
