// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


// Package preview renders transpiled Markdown for clients
// that cannot display Markdown themselves.
package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DefaultWidth is the word wrap width used by [Terminal]
// when given a non-positive width.
const DefaultWidth = 80

var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HTML writes the HTML rendering of markdown to w
// using GitHub Flavored Markdown.
// Admonitions are rendered as block quotes
// whose first paragraph starts with the alert marker.
func HTML(w io.Writer, markdown []byte) error {
	if err := htmlRenderer.Convert(markdown, w); err != nil {
		return fmt.Errorf("render html preview: %w", err)
	}
	return nil
}

// Terminal renders markdown as text for a terminal without color support,
// wrapping lines at width columns.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render terminal preview: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render terminal preview: %w", err)
	}
	return out, nil
}
