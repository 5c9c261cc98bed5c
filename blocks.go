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
	"bytes"
	"strings"
)

// A blockStart attempts to parse a block at source[pos:].
// It returns a nil node and a nil error
// if the text at pos does not start the block.
// A blockStart must not retain or modify source.
type blockStart func(source []byte, pos int) (*Node, error)

// blockStarts is the list of block parsers in priority order.
// Text that doesn't match any of them is plain text.
var blockStarts = []blockStart{
	parseHeading,
	parseCodeBlock,
	admonitionStart(InfoAdmonition),
	admonitionStart(TipAdmonition),
	admonitionStart(WarningAdmonition),
	admonitionStart(NoteAdmonition),
}

func newNode(kind NodeKind, span, text Span) *Node {
	return &Node{
		kind:     kind,
		span:     span,
		text:     text,
		language: NullSpan(),
		title:    NullSpan(),
	}
}

// headingDigits is the set of level digits accepted after "h".
const headingDigits = "123456"

// parseHeading attempts to parse a heading line like "h2. Title\n".
// The line terminator is required and consumed.
func parseHeading(source []byte, pos int) (*Node, error) {
	line := source[pos:]
	if len(line) < 3 || line[0] != 'h' || strings.IndexByte(headingDigits, line[1]) < 0 || line[2] != '.' {
		return nil, nil
	}
	i := 3
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	eol := bytes.IndexByte(line[i:], '\n')
	if eol < 0 {
		return nil, nil
	}
	text := Span{Start: pos + i, End: pos + i + eol}
	return newHeading(source, pos, int(line[1]-'0'), text, text.End+1)
}

func newHeading(source []byte, start, level int, text Span, end int) (*Node, error) {
	if level < 1 || level > 6 {
		return nil, newParseError(source, start+1, IllegalHeadingLevel, "heading", "")
	}
	n := newNode(HeadingKind, Span{Start: start, End: end}, text)
	n.level = level
	return n, nil
}

// parseCodeBlock attempts to parse a "{code}" block.
// Only the language option is kept.
func parseCodeBlock(source []byte, pos int) (*Node, error) {
	const keyword = "code"
	const block = "code block"
	tag, ok, err := parseOpenTag(source, pos, keyword, codeBlockOptions, block)
	if !ok || err != nil {
		return nil, err
	}
	content, end, err := parseBlockBody(source, pos, tag.end, keyword, block)
	if err != nil {
		return nil, err
	}
	n := newNode(CodeBlockKind, Span{Start: pos, End: end}, content)
	if lang, ok := firstOption(tag.options, languageOption); ok {
		n.language = lang.value
	}
	return n, nil
}

// admonitionStart returns a parser for admonitions of the given type.
func admonitionStart(typ AdmonitionType) blockStart {
	keyword := typ.Keyword()
	block := keyword + " admonition"
	return func(source []byte, pos int) (*Node, error) {
		tag, ok, err := parseOpenTag(source, pos, keyword, admonitionOptions, block)
		if !ok || err != nil {
			return nil, err
		}
		content, end, err := parseBlockBody(source, pos, tag.end, keyword, block)
		if err != nil {
			return nil, err
		}
		n := newNode(AdmonitionKind, Span{Start: pos, End: end}, content)
		n.admonition = typ
		n.showIcon = true
		if title, ok := firstOption(tag.options, titleOption); ok {
			n.title = title.value
		}
		if showIcon, ok := firstOption(tag.options, showIconOption); ok {
			n.showIcon = showIcon.flag
		}
		return n, nil
	}
}

// parseBlockBody finds the closing "{keyword}" tag
// for a block whose content starts at contentStart.
// It returns the content span and the position just after the closing tag
// and any whitespace that follows it.
// The content is not scanned for nested blocks.
func parseBlockBody(source []byte, tagStart, contentStart int, keyword, block string) (content Span, end int, err error) {
	closeTag := "{" + keyword + "}"
	n := bytes.Index(source[contentStart:], []byte(closeTag))
	if n < 0 {
		return NullSpan(), -1, newParseError(source, tagStart, UnterminatedBlock, block, "")
	}
	content = Span{Start: contentStart, End: contentStart + n}
	return content, skipSpace(source, content.End+len(closeTag)), nil
}

// parsePlainText consumes the line at source[pos:],
// including its terminator, if present.
func parsePlainText(source []byte, pos int) *Node {
	end := len(source)
	textEnd := len(source)
	if eol := bytes.IndexByte(source[pos:], '\n'); eol >= 0 {
		textEnd = pos + eol
		end = textEnd + 1
	}
	return newNode(PlainTextKind, Span{Start: pos, End: end}, Span{Start: pos, End: textEnd})
}
