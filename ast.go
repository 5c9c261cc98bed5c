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

import "strconv"

// Document is a fully parsed markup document.
// All position information in the tree
// is relative to the beginning of Source.
type Document struct {
	Source []byte
	Nodes  []*Node
}

// A Node is a top-level structural element in a markup document.
type Node struct {
	kind NodeKind
	span Span
	text Span

	level      int
	language   Span
	admonition AdmonitionType
	title      Span
	showIcon   bool
}

func (n *Node) Kind() NodeKind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Span returns the extent of the node in the source,
// including its delimiters and any whitespace skipped around them.
func (n *Node) Span() Span {
	if n == nil {
		return NullSpan()
	}
	return n.span
}

// TextSpan returns the span of the node's text.
func (n *Node) TextSpan() Span {
	if n == nil {
		return NullSpan()
	}
	return n.text
}

// Text returns the node's text:
// the line of a plain text node (without its line terminator),
// the title of a heading,
// or the verbatim content of a code block or admonition.
func (n *Node) Text(source []byte) string {
	if !n.TextSpan().IsValid() {
		return ""
	}
	return string(spanSlice(source, n.text))
}

// HeadingLevel returns the 1-based level of a [HeadingKind] node
// or zero for any other kind.
func (n *Node) HeadingLevel() int {
	if n.Kind() != HeadingKind {
		return 0
	}
	return n.level
}

// Language returns the language option of a [CodeBlockKind] node.
func (n *Node) Language(source []byte) (lang string, ok bool) {
	if n.Kind() != CodeBlockKind || !n.language.IsValid() {
		return "", false
	}
	return string(spanSlice(source, n.language)), true
}

// AdmonitionType returns the type of an [AdmonitionKind] node
// or zero for any other kind.
func (n *Node) AdmonitionType() AdmonitionType {
	if n.Kind() != AdmonitionKind {
		return 0
	}
	return n.admonition
}

// Title returns the title option of an [AdmonitionKind] node.
func (n *Node) Title(source []byte) (title string, ok bool) {
	if n.Kind() != AdmonitionKind || !n.title.IsValid() {
		return "", false
	}
	return string(spanSlice(source, n.title)), true
}

// ShowIcon reports the show_icon option of an [AdmonitionKind] node.
// It defaults to true if the option was not given.
// Rendering does not currently depend on it.
func (n *Node) ShowIcon() bool {
	return n.Kind() == AdmonitionKind && n.showIcon
}

//go:generate stringer -type=NodeKind,ErrorKind -output=kind_string.go

type NodeKind uint16

const (
	PlainTextKind NodeKind = 1 + iota
	HeadingKind
	CodeBlockKind
	AdmonitionKind
)

// AdmonitionType is the kind of callout of an [AdmonitionKind] node.
type AdmonitionType uint8

const (
	InfoAdmonition AdmonitionType = 1 + iota
	TipAdmonition
	WarningAdmonition
	NoteAdmonition
)

// admonitionTypes lists the admonition types in the order the parser tries them.
var admonitionTypes = [...]AdmonitionType{
	InfoAdmonition,
	TipAdmonition,
	WarningAdmonition,
	NoteAdmonition,
}

// Keyword returns the tag name used to open and close the admonition,
// like "info".
func (typ AdmonitionType) Keyword() string {
	switch typ {
	case InfoAdmonition:
		return "info"
	case TipAdmonition:
		return "tip"
	case WarningAdmonition:
		return "warning"
	case NoteAdmonition:
		return "note"
	default:
		return ""
	}
}

// Label returns the Markdown alert label for the admonition, like "INFO".
func (typ AdmonitionType) Label() string {
	switch typ {
	case InfoAdmonition:
		return "INFO"
	case TipAdmonition:
		return "TIP"
	case WarningAdmonition:
		return "WARNING"
	case NoteAdmonition:
		return "NOTE"
	default:
		return ""
	}
}

func (typ AdmonitionType) String() string {
	if kw := typ.Keyword(); kw != "" {
		return kw
	}
	return "AdmonitionType(" + strconv.Itoa(int(typ)) + ")"
}

// Span is a contiguous range of bytes in a [Document.Source].
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span.
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span has non-negative bounds
// and Start is not after End.
func (span Span) IsValid() bool {
	return span.Start >= 0 && span.End >= 0 && span.Start <= span.End
}

// Len returns the number of bytes in the span
// or zero if the span is invalid.
func (span Span) Len() int {
	if !span.IsValid() {
		return 0
	}
	return span.End - span.Start
}

func spanSlice(b []byte, span Span) []byte {
	return b[span.Start:span.End]
}
