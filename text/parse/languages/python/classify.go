// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package python

import (
	"cogentcore.org/highlight/text/parse/lexer"
	"cogentcore.org/highlight/text/token"
)

// classifier decides the matches that patterns alone cannot,
// using the symbol tables.
type classifier struct {
	keywords *lexer.Keywords
}

// classify returns the category of a single word by table
// membership, or [token.None].
func (cl *classifier) classify(word string) token.Category {
	if k, ok := cl.keywords.Lookup(word); ok {
		return k.Category
	}
	return token.None
}

// notBuiltinCall rejects calls of builtins, as in print(x): the name
// keeps its builtin category instead of becoming a function title.
func (cl *classifier) notBuiltinCall(m *lexer.Match) bool {
	return cl.classify(m.Part(0)) != token.BuiltIn
}

// notLiteralName rejects the constants that look like type names.
func notLiteralName(m *lexer.Match) bool {
	switch m.Text() {
	case "True", "False", "None":
		return false
	}
	return true
}
