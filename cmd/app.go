// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the pyhl tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/highlight/config"
	"cogentcore.org/highlight/text/highlighting"
	"cogentcore.org/highlight/text/parse/languages"
	"cogentcore.org/highlight/text/parse/languages/python"
)

// App is the main app type that handles
// the logic for the pyhl tool
type App struct {
	*config.Config

	// Out receives the command output.
	Out io.Writer

	// In is read when no files are given.
	In io.Reader
}

// NewApp returns a new [App] with the given configuration and streams.
func NewApp(cfg *config.Config, out io.Writer, in io.Reader) *App {
	return &App{Config: cfg, Out: out, In: in}
}

// input is one source to highlight; name is empty for standard input.
type input struct {
	name string
	src  string
}

// inputs reads and decodes the given files, or standard input if none.
func (a *App) inputs(files []string) ([]input, error) {
	if len(files) == 0 {
		b, err := io.ReadAll(a.In)
		if err != nil {
			return nil, err
		}
		src, err := python.DecodeSource(b)
		if err != nil {
			return nil, err
		}
		return []input{{src: src}}, nil
	}
	ins := make([]input, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		src, err := python.DecodeSource(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		ins = append(ins, input{name: f, src: src})
	}
	return ins, nil
}

// language returns the language to highlight the named input with:
// the configured one, or the one matching the file name, or auto.
func (a *App) language(name string) string {
	if a.Language != "" && !strings.EqualFold(a.Language, "auto") {
		return a.Language
	}
	if name != "" {
		if gr := languages.Match(name); gr != nil {
			return gr.Name
		}
	}
	return "auto"
}

// HighlightCmd highlights the given files, or standard input,
// in the configured format.
func (a *App) HighlightCmd(files []string) error {
	ins, err := a.inputs(files)
	if err != nil {
		return err
	}
	hi := highlighting.New(a.Highlight)
	if a.Format == "html" {
		if err := a.writeCSS(); err != nil {
			return err
		}
	}
	for _, in := range ins {
		res, err := hi.Highlight(in.src, a.language(in.name))
		if err != nil {
			return err
		}
		slog.Info("highlighted", "file", in.name, "language", res.Language, "relevance", res.Relevance)
		if err := hi.Format(a.Out, res, a.Format); err != nil {
			return err
		}
	}
	return nil
}

// MarkdownCmd renders the given markdown files, or standard input,
// as HTML with their code blocks highlighted.
func (a *App) MarkdownCmd(files []string) error {
	ins, err := a.inputs(files)
	if err != nil {
		return err
	}
	if err := a.writeCSS(); err != nil {
		return err
	}
	hi := highlighting.New(a.Highlight)
	for _, in := range ins {
		if _, err := a.Out.Write(hi.Markdown([]byte(in.src))); err != nil {
			return err
		}
		slog.Info("rendered", "file", in.name)
	}
	return nil
}

// writeCSS writes the style sheet of the configured style if
// [config.Config.CSS] is set.
func (a *App) writeCSS() error {
	if !a.CSS {
		return nil
	}
	css := highlighting.StyleCSS(highlighting.AvailableStyle(a.Highlight.StyleName), a.Highlight.ClassPrefix)
	_, err := fmt.Fprintf(a.Out, "<style>\n%s</style>\n", css)
	return err
}

// ConfigCmd prints the effective configuration as TOML.
func (a *App) ConfigCmd() error {
	return a.Config.Write(a.Out)
}
