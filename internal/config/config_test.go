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


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"zombiezen.com/go/wikimark/hover"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(\"\") (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	const data = "format = \"terminal\"\n" +
		"width = 60\n" +
		"on_error = \"placeholder\"\n" +
		"placeholder = \"(hidden)\"\n"
	if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WIKIMARK_LOG_LEVEL", "debug")

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Format:      FormatTerminal,
		Width:       60,
		OnError:     "placeholder",
		Placeholder: "(hidden)",
		LogLevel:    "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(%q) (-want +got):\n%s", path, diff)
	}
	if mode := got.FallbackMode(); mode != hover.FallbackPlaceholder {
		t.Errorf("FallbackMode() = %v; want %v", mode, hover.FallbackPlaceholder)
	}
	if level := got.Level(); level != zerolog.DebugLevel {
		t.Errorf("Level() = %v; want %v", level, zerolog.DebugLevel)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.Mkdir(filepath.Join(dir, "wikimark"), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wikimark", "config.toml"), []byte("format = \"html\"\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WIKIMARK_WIDTH", "120")

	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if got.Format != FormatHTML || got.Width != 120 {
		t.Errorf("Load(\"\") = %+v; want format=html width=120", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	if cfg, err := Load(path); err == nil {
		t.Errorf("Load(%q) = %+v, <nil>; want error", path, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(cfg *Config)
	}{
		{"Format", func(cfg *Config) { cfg.Format = "pdf" }},
		{"Width", func(cfg *Config) { cfg.Width = -1 }},
		{"OnError", func(cfg *Config) { cfg.OnError = "ignore" }},
		{"LogLevel", func(cfg *Config) { cfg.LogLevel = "loud" }},
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.edit(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() on %+v = <nil>; want error", cfg)
			}
		})
	}
}
