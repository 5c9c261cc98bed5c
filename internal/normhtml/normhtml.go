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


// Package normhtml normalizes HTML so that rendered previews
// can be compared without regard to insignificant whitespace,
// attribute order, or entity spelling.
package normhtml

import (
	"bytes"
	"slices"
	"strings"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML returns b with insignificant differences removed:
// runs of whitespace outside <pre> collapse to a single space,
// whitespace around block-level elements is dropped,
// attributes are sorted by name,
// and character references are decoded and re-escaped uniformly.
func NormalizeHTML(b []byte) []byte {
	n := &normalizer{
		tok:  html.NewTokenizerFragment(bytes.NewReader(b), "div"),
		prev: html.StartTagToken,
	}
	for n.next() {
	}
	return n.out
}

type normalizer struct {
	tok *html.Tokenizer
	out []byte

	prev     html.TokenType
	prevTag  atom.Atom
	preDepth int
}

func (n *normalizer) next() bool {
	tt := n.tok.Next()
	switch tt {
	case html.ErrorToken:
		return false
	case html.TextToken:
		n.text(n.tok.Text())
	case html.StartTagToken, html.SelfClosingTagToken:
		n.startTag()
	case html.EndTagToken:
		n.endTag()
	case html.CommentToken:
		n.out = append(n.out, n.tok.Raw()...)
	}
	n.prev = tt
	if tt == html.SelfClosingTagToken {
		n.prev = html.EndTagToken
	}
	return true
}

func (n *normalizer) text(data []byte) {
	if n.preDepth > 0 {
		n.out = append(n.out, textEscaper.Replace(bytes.Clone(data))...)
		return
	}
	data = collapseSpace(data)
	if n.prevTag == atom.Br {
		data = bytes.TrimLeftFunc(data, unicode.IsSpace)
	}
	if isBlock(n.prevTag) {
		switch n.prev {
		case html.StartTagToken:
			data = bytes.TrimLeftFunc(data, unicode.IsSpace)
		case html.EndTagToken:
			data = bytes.TrimSpace(data)
		}
	}
	n.out = append(n.out, textEscaper.Replace(data)...)
}

func (n *normalizer) startTag() {
	name, hasAttr := n.tok.TagName()
	tag := atom.Lookup(name)
	if tag == atom.Pre {
		n.preDepth++
	}
	if isBlock(tag) {
		n.out = bytes.TrimRightFunc(n.out, unicode.IsSpace)
	}
	n.out = append(n.out, '<')
	n.out = append(n.out, name...)
	if hasAttr {
		n.attrs()
	}
	n.out = append(n.out, '>')
	n.prevTag = tag
}

func (n *normalizer) attrs() {
	var attrs []html.Attribute
	for {
		k, v, more := n.tok.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(k), Val: string(v)})
		if !more {
			break
		}
	}
	slices.SortFunc(attrs, func(a, b html.Attribute) int {
		return strings.Compare(a.Key, b.Key)
	})
	for _, attr := range attrs {
		n.out = append(n.out, ' ')
		n.out = append(n.out, attr.Key...)
		if attr.Val != "" {
			n.out = append(n.out, `="`...)
			n.out = append(n.out, html.EscapeString(attr.Val)...)
			n.out = append(n.out, '"')
		}
	}
}

func (n *normalizer) endTag() {
	name, _ := n.tok.TagName()
	tag := atom.Lookup(name)
	switch {
	case tag == atom.Pre:
		if n.preDepth > 0 {
			n.preDepth--
		}
	case isBlock(tag) && n.preDepth == 0:
		n.out = bytes.TrimRightFunc(n.out, unicode.IsSpace)
	}
	n.out = append(n.out, "</"...)
	n.out = append(n.out, name...)
	n.out = append(n.out, '>')
	n.prevTag = tag
}

// collapseSpace replaces every run of whitespace in b with a single space.
func collapseSpace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	inSpace := false
	for _, c := range b {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			if !inSpace {
				out = append(out, ' ')
			}
			inSpace = true
			continue
		}
		out = append(out, c)
		inSpace = false
	}
	return out
}

// isBlock reports whether tag is a block-level element
// that the Markdown renderers emit.
func isBlock(tag atom.Atom) bool {
	switch tag {
	case atom.P, atom.Div, atom.Blockquote, atom.Pre, atom.Hr,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Li,
		atom.Table, atom.Thead, atom.Tbody, atom.Tr, atom.Th, atom.Td:
		return true
	default:
		return false
	}
}
