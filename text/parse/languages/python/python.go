// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package python is the Python grammar: symbol tables, a library of
// token patterns, and the mode graph that the lexer scans with.
// Importing the package registers the grammar with [languages].
package python

import (
	"fmt"

	"cogentcore.org/highlight/base/errors"
	"cogentcore.org/highlight/text/parse/languages"
	"cogentcore.org/highlight/text/parse/lexer"
	"cogentcore.org/highlight/text/token"
)

// Grammar is the compiled Python grammar.
var Grammar = errors.Must1(New())

func init() {
	errors.Must(languages.Register(Grammar))
}

// New builds and compiles the Python grammar.
func New() (*lexer.Grammar, error) {
	kw, err := newKeywords()
	if err != nil {
		return nil, fmt.Errorf("python: %w", err)
	}
	ifKw, err := lexer.NewKeywords("", lexer.Table{Category: token.Keyword, Words: []string{"if"}})
	if err != nil {
		return nil, fmt.Errorf("python: %w", err)
	}
	cl := &classifier{keywords: kw}
	g := lexer.NewGraph()

	root := g.Add(&lexer.Mode{Name: "python", Keywords: kw, Illegal: `(?:<\/|\?)|=>`})

	prompt := g.Add(&lexer.Mode{Name: "prompt", Category: token.Meta, Begin: promptPattern, Relevance: 1})

	var numbers []lexer.ModeID
	for _, p := range numberPatterns() {
		numbers = append(numbers, g.Add(&lexer.Mode{Name: "number", Category: token.Number, Begin: p}))
	}

	escape := g.Add(&lexer.Mode{Name: "escape", Begin: `\\[\s\S]`})
	literalBracket := g.Add(&lexer.Mode{Name: "literal-bracket", Begin: `\{\{`})
	subst := g.Add(&lexer.Mode{Name: "subst", Category: token.Subst, Begin: `\{`, End: `\}`,
		Keywords: kw, Illegal: `#`, Relevance: 1})

	var strs []lexer.ModeID
	for _, d := range stringDelimiters() {
		m := &lexer.Mode{Name: d.name + "-string", Category: token.String, Begin: d.begin, End: d.end, Relevance: d.relevance}
		switch d.escapes {
		case plainEscapes:
			m.Contains = []lexer.ModeID{escape}
		case promptEscapes:
			m.Contains = []lexer.ModeID{escape, prompt}
		case formatEscapes:
			m.Contains = []lexer.ModeID{escape, literalBracket, subst}
		case formatPromptEscapes:
			m.Contains = []lexer.ModeID{escape, prompt, literalBracket, subst}
		}
		if d.illegalNewline {
			m.Illegal = `\n`
		}
		strs = append(strs, g.Add(m))
	}
	g.Mode(subst).Contains = concat(strs, numbers, []lexer.ModeID{prompt})

	comment := g.Add(&lexer.Mode{Name: "comment", Category: token.Comment, Begin: `#`, End: `$`, Relevance: 1})
	typeCommentGuard := g.Add(&lexer.Mode{Name: "type-comment-guard", Begin: `# type:`, Relevance: 1})
	typeCommentRest := g.Add(&lexer.Mode{Name: "type-comment-rest", Begin: `#`, End: `\b\B`, EndsWithParent: true, Relevance: 1})
	typeComment := g.Add(&lexer.Mode{Name: "type-comment", Category: token.Comment, Begin: `(?=# type:)`, End: `$`,
		Keywords: kw, Contains: []lexer.ModeID{typeCommentGuard, typeCommentRest}, Relevance: 1})

	self := g.Add(&lexer.Mode{Name: "self", Category: token.VariableLanguage, Begin: `\bself\b`, Relevance: 1})
	emptyParams := g.Add(&lexer.Mode{Name: "empty-params", Begin: `\(\s*\)`, Skip: true})
	params := g.Add(&lexer.Mode{Name: "params", Category: token.Params, Begin: `\(`, End: `\)`,
		ExcludeBegin: true, ExcludeEnd: true, Keywords: kw, Relevance: 1})
	g.Mode(params).Contains = concat([]lexer.ModeID{self, params, prompt}, numbers, strs, []lexer.ModeID{comment})

	def := g.Add(&lexer.Mode{Name: "def", Relevance: 1, BeginParts: []lexer.Part{
		{Pattern: `\bdef`, Category: token.Keyword},
		{Pattern: `\s+`},
		{Pattern: identPattern, Category: token.TitleFunction},
	}, Contains: []lexer.ModeID{emptyParams, params}})

	classBase := g.Add(&lexer.Mode{Name: "class-base", Relevance: 1, BeginParts: []lexer.Part{
		{Pattern: `\bclass`, Category: token.Keyword},
		{Pattern: `\s+`},
		{Pattern: identPattern, Category: token.TitleClass},
		{Pattern: `\s*`},
		{Pattern: `\(\s*`},
		{Pattern: identPattern, Category: token.TitleClassInherited},
		{Pattern: `\s*\)`},
	}})
	class := g.Add(&lexer.Mode{Name: "class", Relevance: 1, BeginParts: []lexer.Part{
		{Pattern: `\bclass`, Category: token.Keyword},
		{Pattern: `\s+`},
		{Pattern: identPattern, Category: token.TitleClass},
	}})

	decorator := g.Add(&lexer.Mode{Name: "decorator", Category: token.Meta, Begin: `^[\t ]*@`, End: `(?=#)|$`,
		Contains: concat(numbers, []lexer.ModeID{emptyParams, params}, strs), Relevance: 1})

	typeName := g.Add(&lexer.Mode{Name: "type", Category: token.Type, Begin: typeNamePattern, Guard: notLiteralName, Relevance: 1})

	methodCall := g.Add(&lexer.Mode{Name: "method-call", Relevance: 1, BeginParts: []lexer.Part{
		{Pattern: `\.`},
		{Pattern: identPattern, Category: token.TitleFunction},
		{Pattern: `\s*\(`},
	}})
	constructorCall := g.Add(&lexer.Mode{Name: "constructor-call", Relevance: 1, BeginParts: []lexer.Part{
		{Pattern: `\b[A-Z][a-zA-Z0-9_]*`, Category: token.TitleFunction},
		{Pattern: `\s*\(`},
	}})
	call := g.Add(&lexer.Mode{Name: "call", Relevance: 1, Guard: cl.notBuiltinCall, BeginParts: []lexer.Part{
		{Pattern: `\b` + identPattern, Category: token.TitleFunction},
		{Pattern: `\(\s*`},
	}})

	ifMode := g.Add(&lexer.Mode{Name: "if", Begin: `(?<!\.)\bif\b(?!\.)`, Keywords: ifKw})
	or := g.Add(&lexer.Mode{Name: "or", Category: token.Keyword, Begin: `\bor\b`, Relevance: 1})

	g.Mode(root).Contains = concat(
		[]lexer.ModeID{prompt},
		numbers,
		[]lexer.ModeID{self, ifMode, or, typeComment, comment, def, classBase, class, decorator,
			typeName, methodCall, constructorCall, call},
		strs)

	if err := g.Compile(root); err != nil {
		return nil, fmt.Errorf("python: %w", err)
	}
	return &lexer.Grammar{
		Name:         "Python",
		Aliases:      []string{"py", "gyp", "ipython"},
		Filenames:    []string{"*.py", "*.pyw", "*.pyi", "*.gyp", "*.gypi"},
		MimeTypes:    []string{"text/x-python", "application/x-python"},
		UnicodeRegex: true,
		Graph:        g,
	}, nil
}

func concat(lists ...[]lexer.ModeID) []lexer.ModeID {
	var ids []lexer.ModeID
	for _, l := range lists {
		ids = append(ids, l...)
	}
	return ids
}
