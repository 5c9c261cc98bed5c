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
	"strconv"
)

type optionKind uint8

const (
	titleOption optionKind = 1 + iota
	lineNumbersOption
	languageOption
	firstLineOption
	collapseOption
	showIconOption
)

// valueForm is the syntax of an option's value.
type valueForm uint8

const (
	// textValue is any run of characters up to the next "|" or "}".
	textValue valueForm = 1 + iota
	// boolValue is "true" or "false".
	boolValue
	// identValue is an ASCII identifier.
	identValue
	// uintValue is a base-10 unsigned 64-bit integer.
	uintValue
)

type optionSyntax struct {
	key  string
	kind optionKind
	form valueForm
}

var codeBlockOptions = []optionSyntax{
	{key: "title", kind: titleOption, form: textValue},
	{key: "linenumbers", kind: lineNumbersOption, form: boolValue},
	{key: "language", kind: languageOption, form: identValue},
	{key: "firstline", kind: firstLineOption, form: uintValue},
	{key: "collapse", kind: collapseOption, form: boolValue},
}

var admonitionOptions = []optionSyntax{
	{key: "title", kind: titleOption, form: textValue},
	{key: "show_icon", kind: showIconOption, form: boolValue},
}

func lookupOptionSyntax(table []optionSyntax, key []byte) (optionSyntax, bool) {
	for _, syn := range table {
		if string(key) == syn.key {
			return syn, true
		}
	}
	return optionSyntax{}, false
}

// An option is a single key=value pair from a block's opening tag.
// Options only exist while parsing.
// Block parsers copy what they need into the [Node].
type option struct {
	kind   optionKind
	value  Span
	flag   bool   // for boolValue
	number uint64 // for uintValue
}

// firstOption returns the first option of the given kind in declaration order.
// Later options of the same kind are ignored.
func firstOption(opts []option, kind optionKind) (option, bool) {
	for _, opt := range opts {
		if opt.kind == kind {
			return opt, true
		}
	}
	return option{}, false
}

// openTag is the result of parsing a block's opening tag.
type openTag struct {
	options []option
	// end is the position just after the closing "}"
	// and any whitespace that follows it.
	end int
}

// parseOpenTag attempts to parse an opening tag of the form
// "{keyword}" or "{keyword:key=value|key=value}" at source[start:].
// matched is false if the text at start is not such a tag.
// Once the keyword is followed by a ":" or a "}",
// any failure is reported as an error.
func parseOpenTag(source []byte, start int, keyword string, table []optionSyntax, block string) (tag openTag, matched bool, err error) {
	i := start
	if i >= len(source) || source[i] != '{' || !bytes.HasPrefix(source[i+1:], []byte(keyword)) {
		return openTag{}, false, nil
	}
	i += 1 + len(keyword)
	if i < len(source) && source[i] == ':' {
		tag.options, i, err = parseOptions(source, start, i+1, table, block)
		if err != nil {
			return openTag{}, true, err
		}
	} else {
		i = skipSpace(source, i)
		if i >= len(source) || source[i] != '}' {
			return openTag{}, false, nil
		}
	}
	tag.end = skipSpace(source, i+1)
	return tag, true, nil
}

// parseOptions parses a "|"-separated option list starting at source[i:].
// It returns the position of the "}" that ends the list.
// tagStart is the position of the tag's "{", used for error reporting.
func parseOptions(source []byte, tagStart, i int, table []optionSyntax, block string) (opts []option, end int, err error) {
	if j := skipSpace(source, i); j < len(source) && source[j] == '}' {
		return nil, j, nil
	}
	for {
		keyStart := i
		for i < len(source) && source[i] != '=' && source[i] != '|' && source[i] != '}' {
			i++
		}
		if i >= len(source) {
			return nil, -1, newParseError(source, tagStart, UnterminatedBlock, block, "")
		}
		key := source[keyStart:i]
		syn, ok := lookupOptionSyntax(table, key)
		if !ok {
			return nil, -1, newParseError(source, keyStart, UnknownOption, block, string(key))
		}
		if source[i] != '=' {
			return nil, -1, newParseError(source, i, MalformedOptionValue, block, syn.key)
		}
		i++

		valueStart := i
		opt, valueEnd, ok := parseOptionValue(source, i, syn)
		if !ok {
			return nil, -1, newParseError(source, valueStart, MalformedOptionValue, block, syn.key)
		}
		opts = append(opts, opt)

		i = skipSpace(source, valueEnd)
		switch {
		case i >= len(source):
			return nil, -1, newParseError(source, tagStart, UnterminatedBlock, block, "")
		case source[i] == '|':
			i++
		case source[i] == '}':
			return opts, i, nil
		default:
			return nil, -1, newParseError(source, valueStart, MalformedOptionValue, block, syn.key)
		}
	}
}

// parseOptionValue parses the value of an option at source[i:].
// It does not check what follows the value.
func parseOptionValue(source []byte, i int, syn optionSyntax) (opt option, end int, ok bool) {
	opt.kind = syn.kind
	end = i
	switch syn.form {
	case textValue:
		for end < len(source) && source[end] != '|' && source[end] != '}' {
			end++
		}
	case boolValue:
		switch {
		case bytes.HasPrefix(source[i:], []byte("true")):
			opt.flag = true
			end += len("true")
		case bytes.HasPrefix(source[i:], []byte("false")):
			end += len("false")
		default:
			return option{}, -1, false
		}
	case identValue:
		if end >= len(source) || !isIdentStart(source[end]) {
			return option{}, -1, false
		}
		end++
		for end < len(source) && isIdentContinue(source[end]) {
			end++
		}
	case uintValue:
		for end < len(source) && isDigit(source[end]) {
			end++
		}
		if end == i {
			return option{}, -1, false
		}
		n, err := strconv.ParseUint(string(source[i:end]), 10, 64)
		if err != nil {
			return option{}, -1, false
		}
		opt.number = n
	default:
		return option{}, -1, false
	}
	opt.value = Span{Start: i, End: end}
	return opt, end, true
}

func skipSpace(source []byte, i int) int {
	for i < len(source) && isSpace(source[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
