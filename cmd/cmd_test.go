// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/highlight/base/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the pyhl command with the given arguments and standard
// input, returning its standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestHighlightStdin(t *testing.T) {
	out, err := run(t, "x = 1", "--format", "html", "--language", "py")
	require.NoError(t, err)
	assert.Equal(t, `x = <span class="hljs-number">1</span>`, out)

	out, err = run(t, "x = 1", "-f", "html", "-l", "py", "--css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<style>\n.hljs {"))
	assert.True(t, strings.HasSuffix(out, `</style>
x = <span class="hljs-number">1</span>`))
}

func TestHighlightFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(file, []byte("# coding: latin-1\nx = '\xe9'\n"), 0644))
	out, err := run(t, "", "--format", "html", file)
	require.NoError(t, err)
	assert.Equal(t, "<span class=\"hljs-comment\"># coding: latin-1</span>\nx = <span class=\"hljs-string\">&#39;é&#39;</span>\n", out)

	_, err = run(t, "", filepath.Join(dir, "missing.py"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlagErrors(t *testing.T) {
	_, err := run(t, "x", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "x", "--language", "pyton")
	assert.ErrorContains(t, err, "did you mean python")

	_, err = run(t, "x", "--languages", "py,cobol")
	assert.ErrorContains(t, err, "cobol")
}

func TestVerbosity(t *testing.T) {
	_, err := run(t, "x", "-q", "-f", "tokens")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, logx.UserLevel)

	_, err = run(t, "x", "--vv", "-f", "tokens")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pyhl.toml")
	require.NoError(t, os.WriteFile(file, []byte("format = \"yaml\"\n[highlight]\nstyle = \"monokai\"\n"), 0644))

	out, err := run(t, "", "config", "--config", file)
	require.NoError(t, err)
	assert.Contains(t, out, "yaml")
	assert.Contains(t, out, "monokai")

	out, err = run(t, "", "config", "--config", file, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "json")
	assert.NotContains(t, out, "yaml")

	out, err = run(t, "x = 1", "--config", file, "--language", "python")
	require.NoError(t, err)
	assert.Contains(t, out, "language: Python")
}

func TestSubcommands(t *testing.T) {
	out, err := run(t, "", "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "py, gyp, ipython")
	assert.Contains(t, out, "*.py")

	out, err = run(t, "", "styles")
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "emacs")

	out, err = run(t, "def f(): pass", "detect")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"-", "Python"}, strings.Fields(lines[1])[:2])
	assert.Equal(t, "false", strings.Fields(lines[1])[3])
}

func TestArgs(t *testing.T) {
	t.Setenv(OptsEnv, "")
	args, err := Args([]string{"a.py"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, args)

	t.Setenv(OptsEnv, `-f html --style 'github dark'`)
	args, err = Args([]string{"a.py"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-f", "html", "--style", "github dark", "a.py"}, args)

	t.Setenv(OptsEnv, `-f "html`)
	_, err = Args(nil)
	assert.ErrorContains(t, err, OptsEnv)
}

func TestStripHTML(t *testing.T) {
	out, err := run(t, "<pre>x = 1</pre>", "-f", "html", "-l", "py", "--strip-html")
	require.NoError(t, err)
	assert.Equal(t, `x = <span class="hljs-number">1</span>`, out)
}

func TestMarkdown(t *testing.T) {
	out, err := run(t, "Some code:\n\n```py\nx = 1\n```\n", "markdown", "--css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<style>\n.hljs {"))
	assert.Contains(t, out, "<p>Some code:</p>")
	assert.Contains(t, out, `<code class="hljs language-python">x = <span class="hljs-number">1</span>`)
}
