// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/highlight/base/errors"
	"cogentcore.org/highlight/text/parse/languages"
	"cogentcore.org/highlight/text/parse/lexer"
	_ "cogentcore.org/highlight/text/parse/supportedlanguages"
	strip "github.com/grokify/html-strip-tags-go"
	"golang.org/x/net/html"
)

// PlainText is the language name of results that no grammar claimed.
const PlainText = "plaintext"

// Config holds the options recognized when highlighting.
type Config struct {

	// Languages restricts auto-detection to these language names or
	// aliases. Empty means all registered languages.
	Languages []string `toml:"languages"`

	// IgnoreUnescapedHTML suppresses the warning logged when the
	// input contains what looks like raw HTML markup.
	IgnoreUnescapedHTML bool `toml:"ignore-unescaped-html"`

	// StripHTML highlights the text content of input that contains
	// HTML markup instead of the markup itself.
	StripHTML bool `toml:"strip-html"`

	// ClassPrefix is prepended to the first scope segment of each
	// class name in HTML markup.
	ClassPrefix string `toml:"class-prefix"`

	// StyleName is the chroma style used for CSS and terminal output.
	StyleName HighlightingName `toml:"style"`

	// tab size, in chars
	TabSize int `toml:"tab-size"`
}

// DefaultConfig returns the default highlighting options.
func DefaultConfig() Config {
	return Config{ClassPrefix: "hljs-", StyleName: DefaultStyle, TabSize: 4}
}

// Highlighter performs syntax highlighting with the registered
// grammars. It holds no scan state and can be shared between
// goroutines once configured.
type Highlighter struct {
	Config
}

// New returns a new [Highlighter] with the given options.
func New(cfg Config) *Highlighter {
	return &Highlighter{Config: cfg}
}

// Highlight scans src with the named language. An empty name or
// "auto" selects the language with [Highlighter.HighlightAuto].
func (hi *Highlighter) Highlight(src, language string) (*lexer.Result, error) {
	src = hi.prepare(src)
	if language == "" || strings.EqualFold(language, "auto") {
		return hi.detect(src), nil
	}
	gr, err := languages.Get(language)
	if err != nil {
		return nil, fmt.Errorf("highlighting.Highlight: %w", err)
	}
	return gr.Scan(src), nil
}

// HighlightAuto scans src with every candidate language and returns
// the result with the highest relevance. If no candidate scores above
// zero the result is unclassified and named [PlainText].
func (hi *Highlighter) HighlightAuto(src string) *lexer.Result {
	src = hi.prepare(src)
	return hi.detect(src)
}

func (hi *Highlighter) detect(src string) *lexer.Result {
	ranked := hi.Rank(src)
	if len(ranked) == 0 || ranked[0].Relevance <= 0 {
		return plainResult(PlainText, src)
	}
	return ranked[0]
}

// plainResult returns an unclassified result for src.
func plainResult(language, src string) *lexer.Result {
	return &lexer.Result{Language: language, Source: src, Root: &lexer.Node{End: len(src)}}
}

// Rank returns the strict scans of src by each candidate language,
// ordered by decreasing relevance. Ties keep candidate order.
func (hi *Highlighter) Rank(src string) []*lexer.Result {
	cands := hi.Candidates()
	res := make([]*lexer.Result, len(cands))
	for i, gr := range cands {
		res[i] = gr.ScanStrict(src)
	}
	slices.SortStableFunc(res, func(a, b *lexer.Result) int {
		return cmp.Compare(b.Relevance, a.Relevance)
	})
	return res
}

// Candidates returns the grammars considered by auto-detection.
// Unknown names in [Config.Languages] are logged and skipped.
func (hi *Highlighter) Candidates() []*lexer.Grammar {
	if len(hi.Languages) == 0 {
		return languages.All()
	}
	var cands []*lexer.Grammar
	for _, nm := range hi.Languages {
		gr, err := languages.Get(nm)
		if errors.Log(err) != nil {
			continue
		}
		if !slices.Contains(cands, gr) {
			cands = append(cands, gr)
		}
	}
	return cands
}

// prepare returns the text to scan: src itself, or its text content
// if it contains HTML tags and [Config.StripHTML] is set. Otherwise
// HTML tags are reported unless [Config.IgnoreUnescapedHTML] is set.
func (hi *Highlighter) prepare(src string) string {
	tag := unescapedTag(src)
	switch {
	case tag == "":
	case hi.StripHTML:
		slog.Debug("highlighting: stripping HTML", "tag", tag)
		return TextContent(src)
	case !hi.IgnoreUnescapedHTML:
		slog.Warn("highlighting: input contains unescaped HTML; escape it or set ignore-unescaped-html", "tag", tag)
	}
	return src
}

// TextContent returns src with HTML tags removed and character
// references decoded.
func TextContent(src string) string {
	return html.UnescapeString(strip.StripTags(src))
}

// unescapedTag returns the name of the first HTML tag in src, or "".
func unescapedTag(src string) string {
	if !strings.Contains(src, "<") {
		return ""
	}
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			return string(name)
		}
	}
}
