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


package wikimark

import (
	"fmt"
	"io"
)

// RenderMarkdown writes the parsed document to the given writer as Markdown.
// It will return the first error encountered, if any.
func RenderMarkdown(w io.Writer, doc *Document) error {
	var buf []byte
	for _, n := range doc.Nodes {
		buf = AppendNode(buf[:0], doc.Source, n)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("render markup to markdown: %w", err)
		}
	}
	return nil
}

// AppendMarkdown appends the rendered Markdown of every node in the document
// to dst and returns the resulting byte slice.
func AppendMarkdown(dst []byte, doc *Document) []byte {
	for _, n := range doc.Nodes {
		dst = AppendNode(dst, doc.Source, n)
	}
	return dst
}

// AppendNode appends the rendered Markdown of a single node to dst
// and returns the resulting byte slice.
// Every node is followed by exactly one newline.
func AppendNode(dst []byte, source []byte, n *Node) []byte {
	switch n.Kind() {
	case PlainTextKind:
		dst = append(dst, spanSlice(source, n.text)...)
	case HeadingKind:
		for i := 0; i < n.level; i++ {
			dst = append(dst, '#')
		}
		dst = append(dst, ' ')
		dst = append(dst, spanSlice(source, n.text)...)
	case CodeBlockKind:
		dst = append(dst, "```"...)
		if n.language.IsValid() {
			dst = append(dst, spanSlice(source, n.language)...)
		}
		dst = append(dst, '\n')
		dst = append(dst, spanSlice(source, n.text)...)
		dst = append(dst, "```"...)
	case AdmonitionKind:
		// show_icon does not change the output.
		dst = append(dst, "> [!"...)
		dst = append(dst, n.admonition.Label()...)
		dst = append(dst, ']')
		if n.title.IsValid() {
			dst = append(dst, "**"...)
			dst = append(dst, spanSlice(source, n.title)...)
			dst = append(dst, "**"...)
		}
		dst = append(dst, spanSlice(source, n.text)...)
	}
	return append(dst, '\n')
}
