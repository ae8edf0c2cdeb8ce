// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/highlight/text/token"
	"github.com/alecthomas/chroma/v2"
	cssparser "github.com/aymerick/douceur/parser"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = "def foo(a, b=1):"

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestMarkup(t *testing.T) {
	hi := New(DefaultConfig())
	res, err := hi.Highlight(src, "py")
	require.NoError(t, err)
	assert.Equal(t, "Python", res.Language)

	rht := `<span class="hljs-keyword">def</span> <span class="hljs-title function_">foo</span>(<span class="hljs-params">a, b=<span class="hljs-number">1</span></span>):`
	assert.Equal(t, rht, hi.MarkupHTML(res))

	assert.True(t, strings.HasPrefix(MarkupHTML(res, ""), `<span class="keyword">def</span>`))

	res, err = hi.Highlight(`x = '<a>' & y`, "python")
	require.NoError(t, err)
	assert.Equal(t, `x = <span class="hljs-string">&#39;&lt;a&gt;&#39;</span> &amp; y`, hi.MarkupHTML(res))
}

func TestHighlightUnknown(t *testing.T) {
	hi := New(DefaultConfig())
	_, err := hi.Highlight(src, "pyton")
	assert.ErrorContains(t, err, "did you mean python")
}

func TestHighlightAuto(t *testing.T) {
	hi := New(DefaultConfig())

	res := hi.HighlightAuto(src)
	assert.Equal(t, "Python", res.Language)
	assert.Greater(t, res.Relevance, 0)

	res, err := hi.Highlight(src, "auto")
	require.NoError(t, err)
	assert.Equal(t, "Python", res.Language)

	for _, s := range []string{"", "hello", "a ? b", "</div>"} {
		res := hi.HighlightAuto(s)
		assert.Equal(t, PlainText, res.Language, s)
		assert.Equal(t, s, res.Source)
		assert.Empty(t, res.Root.Children)
	}
}

func TestCandidates(t *testing.T) {
	captureLog(t)
	hi := New(DefaultConfig())
	hi.Languages = []string{"PY", "python", "ipython"}
	cands := hi.Candidates()
	require.Len(t, cands, 1)
	assert.Equal(t, "Python", cands[0].Name)

	hi.Languages = []string{"cobol"}
	assert.Empty(t, hi.Candidates())
	assert.Equal(t, PlainText, hi.HighlightAuto(src).Language)

	hi.Languages = nil
	ranked := hi.Rank(src)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Python", ranked[0].Language)
}

func TestUnescapedHTML(t *testing.T) {
	assert.Equal(t, "div", unescapedTag("<div>x</div>"))
	assert.Equal(t, "b", unescapedTag("x </b> y"))
	assert.Equal(t, "", unescapedTag("a < b"))
	assert.Equal(t, "", unescapedTag("x = 1"))

	buf := captureLog(t)
	hi := New(DefaultConfig())
	hi.HighlightAuto("<div>x</div>")
	assert.Contains(t, buf.String(), "unescaped HTML")
	assert.Contains(t, buf.String(), "tag=div")

	buf.Reset()
	hi.IgnoreUnescapedHTML = true
	hi.HighlightAuto("<div>x</div>")
	assert.Empty(t, buf.String())
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "def f(): <x>", TextContent("<b>def</b> f(): &lt;x&gt;"))

	buf := captureLog(t)
	hi := New(DefaultConfig())
	hi.StripHTML = true
	res, err := hi.Highlight(`<code>x = "a &amp; b"</code>`, "py")
	require.NoError(t, err)
	assert.Equal(t, `x = "a & b"`, res.Source)
	assert.Equal(t, `x = <span class="hljs-string">&#34;a &amp; b&#34;</span>`, hi.MarkupHTML(res))
	assert.Empty(t, buf.String())

	res, err = hi.Highlight("a &lt; b", "py")
	require.NoError(t, err)
	assert.Equal(t, "a &lt; b", res.Source)
}

func TestTokens(t *testing.T) {
	hi := New(DefaultConfig())
	res, err := hi.Highlight(src, "python")
	require.NoError(t, err)
	toks := Tokens(res)
	require.Len(t, toks, len(res.Spans()))
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Value)
	}
	assert.Equal(t, src, b.String())
	assert.Equal(t, chroma.Token{Type: chroma.Keyword, Value: "def"}, toks[0])
	assert.Equal(t, chroma.Token{Type: chroma.NameFunction, Value: "foo"}, toks[2])
}

func TestChromaLexer(t *testing.T) {
	reg := Registry()
	lex := reg.Get("py")
	require.NotNil(t, lex)
	assert.Equal(t, "Python", lex.Config().Name)
	assert.Contains(t, lex.Config().Filenames, "*.py")

	it, err := lex.Tokenise(nil, "x = 1\r\ny = 2")
	require.NoError(t, err)
	var b strings.Builder
	for _, tok := range it.Tokens() {
		b.WriteString(tok.Value)
	}
	assert.Equal(t, "x = 1\ny = 2", b.String())

	score := lex.AnalyseText(src)
	assert.Greater(t, score, float32(0))
	assert.Less(t, score, float32(1))
	assert.Equal(t, float32(0), lex.AnalyseText("a ? b"))
	assert.Same(t, lex, reg.Analyse(src))

	lex.SetAnalyser(func(string) float32 { return 0.5 })
	assert.Equal(t, float32(0.5), lex.AnalyseText("a ? b"))
}

func TestStyleCSS(t *testing.T) {
	assert.Equal(t, "emacs", AvailableStyle("nope").Name)
	assert.Equal(t, "monokai", AvailableStyle("monokai").Name)
	assert.Contains(t, StyleNames(), "emacs")

	css := StyleCSS(AvailableStyle("emacs"), "hljs-")
	assert.Contains(t, css, ".hljs { background-color: #f8f8f8 }\n")
	assert.Contains(t, css, ".hljs-keyword { color: #aa22ff; font-weight: bold }\n")
	assert.Contains(t, css, ".hljs-comment { color: #008800; font-style: italic }\n")
	assert.Contains(t, css, ".hljs-title.function_ {")
	assert.NotContains(t, css, "background-color: #f8f8f8; ")

	css = StyleCSS(AvailableStyle("emacs"), "")
	assert.True(t, strings.HasPrefix(css, ".keyword {"))
}

func TestStyleCSSParses(t *testing.T) {
	for _, nm := range []string{"emacs", "monokai", "github"} {
		sheet, err := cssparser.Parse(StyleCSS(AvailableStyle(HighlightingName(nm)), "hljs-"))
		require.NoError(t, err, nm)
		require.NotEmpty(t, sheet.Rules, nm)
		assert.Equal(t, []string{".hljs"}, sheet.Rules[0].Selectors, nm)
		for _, r := range sheet.Rules {
			require.Len(t, r.Selectors, 1, nm)
			assert.True(t, strings.HasPrefix(r.Selectors[0], ".hljs"), r.Selectors[0])
			for _, d := range r.Declarations {
				assert.Contains(t, []string{"color", "background-color", "font-weight", "font-style", "text-decoration"}, d.Property)
				assert.NotEmpty(t, d.Value)
			}
		}
	}
}

func TestMarkdown(t *testing.T) {
	hi := New(DefaultConfig())
	md := "# Title\n\n```python\nx = 1\n```\n\n```cobol\na < b\n```\n"
	out := string(hi.Markdown([]byte(md)))
	assert.Contains(t, out, "Title</h1>")
	assert.Contains(t, out, "<pre><code class=\"hljs language-python\">x = <span class=\"hljs-number\">1</span>\n</code></pre>")
	assert.Contains(t, out, "<pre><code class=\"hljs language-cobol\">a &lt; b\n</code></pre>")

	out = string(hi.Markdown([]byte("```\ndef f(): pass\n```\n")))
	assert.Contains(t, out, `<code class="hljs language-python"><span class="hljs-keyword">def</span>`)
}

func TestFormat(t *testing.T) {
	hi := New(DefaultConfig())
	res, err := hi.Highlight(src, "python")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, hi.Format(&b, res, "html"))
	assert.Equal(t, hi.MarkupHTML(res), b.String())

	b.Reset()
	require.NoError(t, hi.Format(&b, res, "tokens"))
	assert.Contains(t, b.String(), `&Token{Keyword, "def"}`)

	b.Reset()
	require.NoError(t, hi.Format(&b, res, "chroma-html"))
	assert.Contains(t, b.String(), "<pre")
	assert.Contains(t, b.String(), "foo")

	b.Reset()
	require.NoError(t, hi.Format(&b, res, "terminal"))
	assert.Contains(t, b.String(), "foo")

	b.Reset()
	require.NoError(t, hi.Format(&b, res, "json"))
	var tree struct {
		Language string
		Root     struct {
			Children []struct {
				Category token.Category
			}
		}
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &tree))
	assert.Equal(t, "Python", tree.Language)
	require.Len(t, tree.Root.Children, 3)
	assert.Equal(t, token.Params, tree.Root.Children[2].Category)

	b.Reset()
	require.NoError(t, hi.Format(&b, res, "yaml"))
	assert.Contains(t, b.String(), "language: Python")
	assert.Contains(t, b.String(), "category: title.function")

	assert.Error(t, hi.Format(&b, res, "pdf"))
}

func TestTerminalFormatter(t *testing.T) {
	assert.Equal(t, "terminal16m", TerminalFormatter(termenv.TrueColor))
	assert.Equal(t, "terminal256", TerminalFormatter(termenv.ANSI256))
	assert.Equal(t, "terminal16", TerminalFormatter(termenv.ANSI))
	assert.Equal(t, "noop", TerminalFormatter(termenv.Ascii))
}
