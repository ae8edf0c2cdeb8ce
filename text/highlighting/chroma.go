// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"

	"cogentcore.org/highlight/text/parse/languages"
	"cogentcore.org/highlight/text/parse/lexer"
	"github.com/alecthomas/chroma/v2"
)

// Tokens returns the spans of the result as chroma tokens, one token
// per span, so that any chroma formatter can render it.
func Tokens(res *lexer.Result) []chroma.Token {
	spans := res.Spans()
	toks := make([]chroma.Token, len(spans))
	for i, sp := range spans {
		toks[i] = chroma.Token{Type: sp.Category.Chroma(), Value: sp.Text(res.Source)}
	}
	return toks
}

// ChromaLexer makes a [lexer.Grammar] usable as a [chroma.Lexer].
type ChromaLexer struct {
	grammar  *lexer.Grammar
	config   *chroma.Config
	analyser func(text string) float32
}

// NewChromaLexer returns a chroma lexer that scans with the grammar.
func NewChromaLexer(gr *lexer.Grammar) *ChromaLexer {
	return &ChromaLexer{
		grammar: gr,
		config: &chroma.Config{
			Name:      gr.Name,
			Aliases:   gr.Aliases,
			Filenames: gr.Filenames,
			MimeTypes: gr.MimeTypes,
		},
	}
}

// Grammar returns the grammar the lexer scans with.
func (cl *ChromaLexer) Grammar() *lexer.Grammar {
	return cl.grammar
}

func (cl *ChromaLexer) Config() *chroma.Config {
	return cl.config
}

// Tokenise scans the whole text with a forced scan. Options other
// than EnsureLF are ignored.
func (cl *ChromaLexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	if options == nil || options.EnsureLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return chroma.Literator(Tokens(cl.grammar.Scan(text))...), nil
}

// SetRegistry does nothing: grammars never delegate to other lexers.
func (cl *ChromaLexer) SetRegistry(*chroma.LexerRegistry) chroma.Lexer {
	return cl
}

func (cl *ChromaLexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	cl.analyser = analyser
	return cl
}

// AnalyseText scores the text by the relevance of a strict scan,
// mapped into [0, 1).
func (cl *ChromaLexer) AnalyseText(text string) float32 {
	if cl.analyser != nil {
		return cl.analyser(text)
	}
	res := cl.grammar.ScanStrict(text)
	if res.Illegal || res.Relevance <= 0 {
		return 0
	}
	rel := float32(res.Relevance)
	return rel / (rel + 10)
}

// Registry returns a chroma lexer registry holding every registered
// language.
func Registry() *chroma.LexerRegistry {
	reg := chroma.NewLexerRegistry()
	for _, gr := range languages.All() {
		reg.Register(NewChromaLexer(gr))
	}
	return reg
}
