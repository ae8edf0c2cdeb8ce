// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the pyhl tool.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cogentcore.org/highlight/base/errors"
	"cogentcore.org/highlight/text/highlighting"
	"cogentcore.org/highlight/text/parse/languages"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file read when none is given and it exists
// in the current directory. A dot-prefixed copy in the home directory
// is used as a fallback.
const DefaultFile = "pyhl.toml"

// Find returns the first existing default config file: [DefaultFile]
// in the current directory, then ~/.pyhl.toml. It returns "" if there
// is none.
func Find() string {
	files := []string{DefaultFile}
	if home := errors.Log1(homedir.Expand("~/." + DefaultFile)); home != "" {
		files = append(files, home)
	}
	for _, f := range files {
		if st, err := os.Stat(f); err == nil && !st.IsDir() {
			return f
		}
	}
	return ""
}

// Config is the main config struct
// that contains all of the configuration
// options for the pyhl tool
type Config struct {

	// the language to highlight with, or auto to detect it
	Language string `toml:"language"`

	// the output format, one of [highlighting.Formats]
	Format string `toml:"format"`

	// write the style sheet of the style before html output
	CSS bool `toml:"css"`

	// the highlighting options
	Highlight highlighting.Config `toml:"highlight"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Language:  "auto",
		Format:    "terminal",
		Highlight: highlighting.DefaultConfig(),
	}
}

// Open returns the default configuration overridden by the given TOML
// file. Unknown keys are an error.
func Open(file string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := Read(cfg, f); err != nil {
		return nil, fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return cfg, nil
}

// Read decodes TOML from r into cfg, keeping the values of fields that
// are not set.
func Read(cfg *Config, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Write encodes cfg as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the format, the style, and the language names.
func (c *Config) Validate() error {
	if !slices.Contains(highlighting.Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q (one of %s)", c.Format, strings.Join(highlighting.Formats, ", "))
	}
	if st := string(c.Highlight.StyleName); st != "" && !slices.Contains(highlighting.StyleNames(), st) {
		return fmt.Errorf("config: unknown style %q%s", st, hint(st, highlighting.StyleNames()))
	}
	if c.Language != "" && !strings.EqualFold(c.Language, "auto") {
		if _, err := languages.Get(c.Language); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, nm := range c.Highlight.Languages {
		if _, err := languages.Get(nm); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

func hint(name string, candidates []string) string {
	ts := languages.Suggest(name, candidates)
	if len(ts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(ts, ", "))
}
