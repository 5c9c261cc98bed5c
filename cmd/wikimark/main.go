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


// wikimark converts wiki markup to Markdown.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"zombiezen.com/go/wikimark"
	"zombiezen.com/go/wikimark/hover"
	"zombiezen.com/go/wikimark/internal/config"
	"zombiezen.com/go/wikimark/preview"
)

type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := new(app)
	rootCmd := &cobra.Command{
		Use:               "wikimark [flags] [FILE]",
		Short:             "Convert wiki markup to Markdown",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.transpile,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file path (default $XDG_CONFIG_HOME/wikimark/config.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	flags.String("format", "", "output `format`: markdown, html, or terminal")
	flags.Int("width", 0, "word wrap width for terminal output")
	flags.String("on-error", "", "hover fallback `mode`: raw, placeholder, or fail")
	flags.String("placeholder", "", "hover text used for descriptions that fail to convert")

	rootCmd.AddCommand(a.hoverCommand(), a.dumpCommand())
	return rootCmd
}

// setup loads the configuration and sets up logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("on-error") {
		cfg.OnError, _ = flags.GetString("on-error")
	}
	if flags.Changed("placeholder") {
		cfg.Placeholder, _ = flags.GetString("placeholder")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()
	a.logger.Debug().
		Str("format", cfg.Format).
		Str("on_error", cfg.OnError).
		Msg("Loaded configuration")
	return nil
}

func (a *app) transpile(cmd *cobra.Command, args []string) error {
	source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	md, err := wikimark.Transpile(string(source))
	if err != nil {
		return err
	}
	return a.write(cmd.OutOrStdout(), md)
}

func (a *app) hoverCommand() *cobra.Command {
	var t hover.Ticket
	var updated string
	cmd := &cobra.Command{
		Use:   "hover [flags] [FILE]",
		Short: "Format a ticket as hover text",
		Long: "Format a ticket as hover text.\n\n" +
			"The ticket description is read from FILE or standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			t.Description = string(desc)
			if updated != "" {
				t.Updated, err = time.Parse(time.RFC3339, updated)
				if err != nil {
					return fmt.Errorf("--updated: %w", err)
				}
			}
			f := &hover.Formatter{
				OnError:     a.cfg.FallbackMode(),
				Placeholder: a.cfg.Placeholder,
				Logger:      &a.logger,
			}
			md, err := f.Format(&t)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), md)
		},
	}
	cmd.Flags().StringVar(&t.Key, "key", "", "ticket key")
	cmd.Flags().StringVar(&t.Title, "title", "", "ticket title")
	cmd.Flags().StringVar(&t.Status, "status", "", "ticket status")
	cmd.Flags().StringVar(&t.Assignee, "assignee", "", "ticket assignee")
	cmd.Flags().StringVar(&updated, "updated", "", "RFC 3339 `time` the ticket was last updated")
	return cmd
}

func (a *app) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Print the parsed nodes of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := wikimark.Parse(source)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, n := range doc.Nodes {
				if _, err := fmt.Fprintln(w, describeNode(doc.Source, n)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// describeNode returns a single line summary of n,
// like "CodeBlockKind 0:24 language=go".
func describeNode(source []byte, n *wikimark.Node) string {
	span := n.Span()
	s := fmt.Sprintf("%v %d:%d", n.Kind(), span.Start, span.End)
	switch n.Kind() {
	case wikimark.HeadingKind:
		s += fmt.Sprintf(" level=%d", n.HeadingLevel())
	case wikimark.CodeBlockKind:
		if lang, ok := n.Language(source); ok {
			s += " language=" + lang
		}
	case wikimark.AdmonitionKind:
		s += " type=" + n.AdmonitionType().Keyword()
		if title, ok := n.Title(source); ok {
			s += fmt.Sprintf(" title=%q", title)
		}
		s += fmt.Sprintf(" show_icon=%t", n.ShowIcon())
	}
	return s + fmt.Sprintf(" %q", n.Text(source))
}

// write writes md to w in the configured output format.
func (a *app) write(w io.Writer, md string) error {
	switch a.cfg.Format {
	case config.FormatHTML:
		return preview.HTML(w, []byte(md))
	case config.FormatTerminal:
		out, err := preview.Terminal(md, a.cfg.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, md)
		return err
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}
	return os.ReadFile(args[0])
}
