// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/highlight/text/parse/languages"
	"cogentcore.org/highlight/text/parse/lexer"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/net/html"
)

// Markdown renders a markdown document as HTML with its code blocks
// highlighted. The language of a fenced block is the first word of its
// info string. Blocks without one are auto-detected, and blocks in
// unknown languages are escaped without highlighting.
func (hi *Highlighter) Markdown(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags, RenderNodeHook: hi.renderCodeBlock})
	return markdown.ToHTML(md, p, r)
}

func (hi *Highlighter) renderCodeBlock(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	cb, ok := node.(*ast.CodeBlock)
	if !ok {
		return ast.GoToNext, false
	}
	res := hi.codeBlock(string(cb.Info), string(cb.Literal))
	fmt.Fprintf(w, "<pre><code class=\"hljs language-%s\">%s</code></pre>\n", html.EscapeString(strings.ToLower(res.Language)), hi.MarkupHTML(res))
	return ast.GoToNext, true
}

func (hi *Highlighter) codeBlock(info, src string) *lexer.Result {
	f := strings.Fields(info)
	if len(f) == 0 {
		return hi.detect(src)
	}
	gr, err := languages.Get(f[0])
	if err != nil {
		slog.Debug("highlighting: code block not highlighted", "language", f[0])
		return plainResult(f[0], src)
	}
	return gr.Scan(src)
}
