// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer is a mode-based scanning engine for syntax
// highlighting. A [Grammar] is a [Graph] of modes, each entered and
// left by regular expressions and classifying the words in its
// unmatched text with [Keywords]. Scanning a text yields a [Result]:
// a tree of categorized nodes that can be flattened into [Span]s
// which reproduce the input exactly.
package lexer

import (
	"fmt"

	"cogentcore.org/highlight/base/errors"
)

// Grammar is a compiled language definition.
type Grammar struct {

	// Name is the display name of the language.
	Name string

	// Aliases are alternative lookup names.
	Aliases []string

	// Filenames are glob patterns of files in the language.
	Filenames []string

	// MimeTypes of source in the language.
	MimeTypes []string

	// UnicodeRegex records that identifier patterns use Unicode classes.
	UnicodeRegex bool

	// Graph holds the modes; its root is the top-level mode.
	Graph *Graph
}

// Scan classifies the given text. Illegal lexemes are treated as plain
// text, so the result is always a full classification.
func (gr *Grammar) Scan(text string) *Result {
	return gr.scan(text, false)
}

// ScanStrict classifies the given text, aborting on the first illegal
// lexeme with an unclassified result marked Illegal. It is used to
// rank candidate grammars in auto-detection.
func (gr *Grammar) ScanStrict(text string) *Result {
	return gr.scan(text, true)
}

func (gr *Grammar) scan(text string, strict bool) *Result {
	if gr.Graph == nil || !gr.Graph.ready {
		errors.Log(fmt.Errorf("lexer: grammar %q is not compiled", gr.Name))
		res := plainResult(gr.Name, text)
		res.Illegal = strict
		return res
	}
	return NewState(gr, text, strict).Run()
}
