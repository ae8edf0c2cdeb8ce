// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"

	"cogentcore.org/highlight/text/parse/lexer"
	"golang.org/x/net/html"
)

// MarkupHTML returns the result as escaped HTML with a nested span
// element for each classified node, using [Config.ClassPrefix].
func (hi *Highlighter) MarkupHTML(res *lexer.Result) string {
	return MarkupHTML(res, hi.ClassPrefix)
}

// MarkupHTML returns the result as escaped HTML with a nested span
// element for each classified node. Multi-segment scopes such as
// "title.function" become "hljs-title function_".
func MarkupHTML(res *lexer.Result, prefix string) string {
	if res.Root == nil {
		return html.EscapeString(res.Source)
	}
	var b strings.Builder
	b.Grow(len(res.Source) * 2)
	markupNode(&b, res.Source, res.Root, prefix)
	return b.String()
}

func markupNode(b *strings.Builder, src string, n *lexer.Node, prefix string) {
	cls := n.Category.ClassName(prefix)
	if cls != "" {
		b.WriteString(`<span class="`)
		b.WriteString(cls)
		b.WriteString(`">`)
	}
	cp := n.Start
	for _, c := range n.Children {
		b.WriteString(html.EscapeString(src[cp:c.Start]))
		markupNode(b, src, c, prefix)
		cp = c.End
	}
	b.WriteString(html.EscapeString(src[cp:n.End]))
	if cls != "" {
		b.WriteString("</span>")
	}
}
