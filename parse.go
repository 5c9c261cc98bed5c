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


// Package wikimark converts wiki markup to Markdown.
//
// The supported subset of the markup dialect is:
//
//   - Headings: "h1. Title" through "h6. Title".
//   - Code blocks: "{code:language=go}...{code}".
//     The title, linenumbers, firstline, and collapse options
//     are validated but do not affect the output.
//   - Admonitions: "{info}...{info}", "{tip}...{tip}",
//     "{warning}...{warning}", and "{note}...{note}",
//     with optional title and show_icon options.
//
// Everything else is passed through as plain text, one line at a time.
// Admonitions are rendered as [GitHub alerts].
//
// [GitHub alerts]: https://docs.github.com/en/get-started/writing-on-github/getting-started-with-writing-and-formatting-on-github/basic-writing-and-formatting-syntax#alerts
package wikimark

// Parse splits markup source into a sequence of nodes.
// The returned document references source
// and so source must not be modified while the document is in use.
// If a block is malformed, Parse returns a [*ParseError]
// and no document.
func Parse(source []byte) (*Document, error) {
	doc := &Document{Source: source}
	for pos := 0; pos < len(source); {
		n, err := parseNode(source, pos)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
		pos = n.span.End
	}
	return doc, nil
}

// parseNode parses the node starting at source[pos:],
// trying each of the block parsers in turn
// before falling back to a line of plain text.
func parseNode(source []byte, pos int) (*Node, error) {
	for _, start := range blockStarts {
		n, err := start(source, pos)
		if err != nil {
			return nil, err
		}
		if n != nil {
			return n, nil
		}
	}
	return parsePlainText(source, pos), nil
}

// Transpile converts markup to Markdown.
// If the markup contains a malformed block,
// Transpile returns a [*ParseError] and no output.
func Transpile(markup string) (string, error) {
	doc, err := Parse([]byte(markup))
	if err != nil {
		return "", err
	}
	buf := make([]byte, 0, 2*len(markup))
	return string(AppendMarkdown(buf, doc)), nil
}
