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


// Package config loads the wikimark command's settings
// from a TOML file and WIKIMARK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"zombiezen.com/go/wikimark/hover"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatTerminal = "terminal"
)

// Config is the set of wikimark command settings.
type Config struct {
	// Format is the output format: markdown, html, or terminal.
	Format string `mapstructure:"format"`
	// Width is the word wrap width for terminal output.
	Width int `mapstructure:"width"`
	// OnError is the hover fallback mode: raw, placeholder, or fail.
	OnError     string `mapstructure:"on_error"`
	Placeholder string `mapstructure:"placeholder"`
	LogLevel    string `mapstructure:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Format:      FormatMarkdown,
		Width:       80,
		OnError:     hover.FallbackRaw.String(),
		Placeholder: hover.DefaultPlaceholder,
		LogLevel:    zerolog.InfoLevel.String(),
	}
}

// Load reads the configuration.
// If path is empty, Load reads wikimark/config.toml
// from the user's configuration directory if it exists.
// Environment variables like WIKIMARK_FORMAT override file settings.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("WIKIMARK")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wikimark"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("width", d.Width)
	v.SetDefault("on_error", d.OnError)
	v.SetDefault("placeholder", d.Placeholder)
	v.SetDefault("log_level", d.LogLevel)
}

// Validate reports the first invalid setting in cfg.
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case FormatMarkdown, FormatHTML, FormatTerminal:
	default:
		return fmt.Errorf("config: format %q is not one of markdown, html, or terminal", cfg.Format)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("config: negative width %d", cfg.Width)
	}
	if _, err := hover.ParseFallbackMode(cfg.OnError); err != nil {
		return fmt.Errorf("config: on_error: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// FallbackMode returns the parsed OnError setting.
// It returns [hover.FallbackRaw] if the setting is invalid.
func (cfg *Config) FallbackMode() hover.FallbackMode {
	mode, err := hover.ParseFallbackMode(cfg.OnError)
	if err != nil {
		return hover.FallbackRaw
	}
	return mode
}

// Level returns the parsed LogLevel setting.
// It returns [zerolog.InfoLevel] if the setting is invalid.
func (cfg *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
