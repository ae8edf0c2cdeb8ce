// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/highlight/text/parse/lexer"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Formats are the output formats accepted by [Highlighter.Format].
var Formats = []string{"html", "chroma-html", "terminal", "tokens", "json", "yaml"}

// Format writes the result to w in the given format:
//   - html: nested span markup from [MarkupHTML]
//   - chroma-html: chroma's HTML formatter with inline styles
//   - terminal: ANSI colors for the color profile of w
//   - tokens: chroma's token listing
//   - json, yaml: the classification tree
func (hi *Highlighter) Format(w io.Writer, res *lexer.Result, format string) error {
	var err error
	switch format {
	case "html":
		_, err = io.WriteString(w, hi.MarkupHTML(res))
	case "chroma-html":
		var opts []chtml.Option
		if hi.TabSize > 0 {
			opts = append(opts, chtml.TabWidth(hi.TabSize))
		}
		err = chtml.New(opts...).Format(w, hi.style(), chroma.Literator(Tokens(res)...))
	case "terminal":
		p := termenv.NewOutput(w).EnvColorProfile()
		f := formatters.Get(TerminalFormatter(p))
		err = f.Format(w, hi.style(), chroma.Literator(Tokens(res)...))
	case "tokens":
		err = formatters.Tokens.Format(w, hi.style(), chroma.Literator(Tokens(res)...))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(res)
		if err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("highlighting.Format: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("highlighting.Format: %s: %w", format, err)
	}
	return nil
}

func (hi *Highlighter) style() *chroma.Style {
	return AvailableStyle(hi.StyleName)
}

// TerminalFormatter returns the name of the chroma terminal formatter
// for the color profile.
func TerminalFormatter(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	}
	return "noop"
}
