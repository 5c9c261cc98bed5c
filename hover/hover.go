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


// Package hover formats issue tracker tickets as Markdown hover text.
//
// Ticket descriptions are written in wiki markup
// and are converted with [wikimark.Transpile].
// A description that fails to convert never fails the hover:
// the [Formatter] substitutes the raw text or a placeholder instead,
// unless configured with [FallbackFail].
package hover

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"go4.org/bytereplacer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"zombiezen.com/go/wikimark"
)

// Ticket is the subset of an issue tracker ticket shown in a hover.
type Ticket struct {
	Key         string
	Title       string
	Status      string
	Assignee    string
	Description string
	// Updated is the time the ticket was last changed.
	// The zero time omits it from the hover.
	Updated time.Time
}

// Text used in place of missing ticket fields.
const (
	DefaultPlaceholder = "_Description could not be displayed._"

	noTitle       = "No title"
	noDescription = "No description"
	unassigned    = "Unassigned"
)

// FallbackMode determines what a [Formatter] does
// when a description fails to convert.
type FallbackMode int

const (
	// FallbackRaw substitutes the raw description text.
	FallbackRaw FallbackMode = iota
	// FallbackPlaceholder substitutes [Formatter.Placeholder].
	FallbackPlaceholder
	// FallbackFail returns the conversion error.
	FallbackFail
)

// ParseFallbackMode parses the string form of a [FallbackMode]:
// "raw", "placeholder", or "fail".
func ParseFallbackMode(s string) (FallbackMode, error) {
	switch strings.ToLower(s) {
	case "raw", "":
		return FallbackRaw, nil
	case "placeholder":
		return FallbackPlaceholder, nil
	case "fail":
		return FallbackFail, nil
	default:
		return 0, fmt.Errorf("unknown fallback mode %q", s)
	}
}

func (mode FallbackMode) String() string {
	switch mode {
	case FallbackRaw:
		return "raw"
	case FallbackPlaceholder:
		return "placeholder"
	case FallbackFail:
		return "fail"
	default:
		return fmt.Sprintf("FallbackMode(%d)", int(mode))
	}
}

// A Formatter converts tickets into hover text.
// The zero value substitutes raw text on errors and does not log.
type Formatter struct {
	// OnError determines how descriptions that fail to convert are handled.
	OnError FallbackMode
	// Placeholder is used by [FallbackPlaceholder].
	// If empty, DefaultPlaceholder is used.
	Placeholder string
	// Logger receives a warning for every description that fails to convert.
	// If nil, nothing is logged.
	Logger *zerolog.Logger
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// newlineReplacer normalizes untrusted description text
// before it is handed to the transpiler.
var newlineReplacer = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
	"\x00", "\ufffd",
)

// Description converts a ticket's wiki markup description to Markdown.
// key identifies the ticket in log messages.
func (f *Formatter) Description(key, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return noDescription + "\n", nil
	}
	text := string(newlineReplacer.Replace([]byte(raw)))
	md, err := wikimark.Transpile(text)
	if err == nil {
		return md, nil
	}

	f.logger().Warn().
		Err(err).
		Str("ticket", key).
		Stringer("fallback", f.OnError).
		Msg("Could not convert ticket description")
	var perr *wikimark.ParseError
	if f.OnError == FallbackFail || !errors.As(err, &perr) {
		return "", fmt.Errorf("ticket %s: description: %w", key, err)
	}
	if f.OnError == FallbackPlaceholder {
		placeholder := f.Placeholder
		if placeholder == "" {
			placeholder = DefaultPlaceholder
		}
		return placeholder + "\n", nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// Format returns the Markdown hover text for a ticket.
// It only returns an error if f.OnError is [FallbackFail]
// and the description fails to convert.
func (f *Formatter) Format(t *Ticket) (string, error) {
	desc, err := f.Description(t.Key, t.Description)
	if err != nil {
		return "", err
	}

	sb := new(strings.Builder)
	sb.WriteString("# ")
	if t.Key != "" {
		sb.WriteString(t.Key)
		sb.WriteString(": ")
	}
	if t.Title != "" {
		sb.WriteString(t.Title)
	} else {
		sb.WriteString(noTitle)
	}
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(f.metadata(t))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(desc)
	return sb.String(), nil
}

// metadata returns the status line of a ticket,
// like "In Progress | updated 3 days ago | Jane Doe".
func (f *Formatter) metadata(t *Ticket) string {
	var parts []string
	if t.Status != "" {
		parts = append(parts, cases.Title(language.English).String(t.Status))
	}
	if !t.Updated.IsZero() {
		parts = append(parts, "updated "+humanize.RelTime(t.Updated, f.now(), "ago", "from now"))
	}
	if t.Assignee != "" {
		parts = append(parts, t.Assignee)
	} else {
		parts = append(parts, unassigned)
	}
	return strings.Join(parts, " | ")
}

func (f *Formatter) logger() *zerolog.Logger {
	if f.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return f.Logger
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
