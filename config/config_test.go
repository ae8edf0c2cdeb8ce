// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/highlight/text/highlighting"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `format = "html"
css = true

[highlight]
languages = ["py"]
style = "monokai"
ignore-unescaped-html = true
`

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, "terminal", cfg.Format)
	assert.Equal(t, "hljs-", cfg.Highlight.ClassPrefix)
	assert.Equal(t, highlighting.DefaultStyle, cfg.Highlight.StyleName)
	assert.NoError(t, cfg.Validate())
}

func TestRead(t *testing.T) {
	cfg := Default()
	require.NoError(t, Read(cfg, strings.NewReader(sample)))
	assert.Equal(t, "html", cfg.Format)
	assert.True(t, cfg.CSS)
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, []string{"py"}, cfg.Highlight.Languages)
	assert.Equal(t, highlighting.HighlightingName("monokai"), cfg.Highlight.StyleName)
	assert.True(t, cfg.Highlight.IgnoreUnescapedHTML)
	assert.Equal(t, "hljs-", cfg.Highlight.ClassPrefix)
	assert.Equal(t, 4, cfg.Highlight.TabSize)
	assert.NoError(t, cfg.Validate())

	err := Read(Default(), strings.NewReader("colour = \"red\"\n"))
	var strict *toml.StrictMissingError
	assert.ErrorAs(t, err, &strict)
}

func TestOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(file, []byte(sample), 0644))
	cfg, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(file, []byte("format = \n"), 0644))
	_, err = Open(file)
	assert.ErrorContains(t, err, file)
}

func TestWrite(t *testing.T) {
	cfg := Default()
	cfg.Highlight.Languages = []string{"python"}
	var b bytes.Buffer
	require.NoError(t, cfg.Write(&b))
	assert.Contains(t, b.String(), "[highlight]")

	got := &Config{}
	require.NoError(t, Read(got, &b))
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Format = "pdf"
	assert.ErrorContains(t, cfg.Validate(), "unknown format")

	cfg = Default()
	cfg.Highlight.StyleName = "monoka"
	assert.ErrorContains(t, cfg.Validate(), "monokai")

	cfg = Default()
	cfg.Language = "pyton"
	assert.ErrorContains(t, cfg.Validate(), "did you mean python")

	cfg = Default()
	cfg.Language = "Python"
	cfg.Highlight.Languages = []string{"gyp", "cobol"}
	assert.ErrorContains(t, cfg.Validate(), "cobol")
}

func TestFind(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	assert.Equal(t, "", Find())

	hfile := filepath.Join(home, "."+DefaultFile)
	require.NoError(t, os.WriteFile(hfile, []byte(sample), 0644))
	assert.Equal(t, hfile, Find())

	require.NoError(t, os.WriteFile(DefaultFile, []byte(sample), 0644))
	assert.Equal(t, DefaultFile, Find())
}
