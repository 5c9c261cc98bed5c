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
	"fmt"
)

// ErrorKind is the category of a [*ParseError].
type ErrorKind uint8

const (
	// UnterminatedBlock indicates that an opening tag was found
	// without a matching closing tag (or closing brace) before the end of input.
	UnterminatedBlock ErrorKind = 1 + iota
	// UnknownOption indicates an option key
	// that is not part of the block's grammar.
	UnknownOption
	// MalformedOptionValue indicates a known option key
	// whose value does not have the expected form.
	MalformedOptionValue
	// IllegalHeadingLevel indicates a heading level outside 1-6.
	IllegalHeadingLevel
)

// ParseError describes a failure to parse a block.
// Position information is relative to the beginning of the parsed source.
type ParseError struct {
	Kind ErrorKind
	// Offset is the byte offset at which the failure was detected.
	Offset int
	// Line is the 1-based line number of Offset.
	Line int
	// Column is the 1-based byte column of Offset.
	Column int
	// Block describes the construct being parsed, like "code block".
	Block string
	// Option is the option key involved, if any.
	Option string
}

func newParseError(source []byte, offset int, kind ErrorKind, block, option string) *ParseError {
	line, col := lineColumn(source, offset)
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Line:   line,
		Column: col,
		Block:  block,
		Option: option,
	}
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case UnterminatedBlock:
		msg = "unterminated block"
	case UnknownOption:
		msg = fmt.Sprintf("unknown option %q", e.Option)
	case MalformedOptionValue:
		msg = fmt.Sprintf("malformed value for option %q", e.Option)
	case IllegalHeadingLevel:
		msg = "illegal heading level"
	default:
		msg = e.Kind.String()
	}
	if e.Block != "" {
		msg = e.Block + ": " + msg
	}
	return fmt.Sprintf("wikimark: line %d, column %d: %s", e.Line, e.Column, msg)
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(source []byte, offset int) (line, col int) {
	if offset > len(source) {
		offset = len(source)
	}
	before := source[:offset]
	line = 1 + bytes.Count(before, []byte("\n"))
	col = 1 + offset - (bytes.LastIndexByte(before, '\n') + 1)
	return line, col
}
