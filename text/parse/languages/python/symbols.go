// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package python

import (
	"strings"

	"cogentcore.org/highlight/text/parse/lexer"
	"cogentcore.org/highlight/text/token"
)

// ReservedWords are the keywords, including the soft keywords
// match and case.
var ReservedWords = []string{
	"and", "as", "assert", "async", "await", "break", "case", "class",
	"continue", "def", "del", "elif", "else", "except", "finally", "for",
	"from", "global", "if", "import", "in", "is", "lambda", "match",
	"nonlocal|10", "not", "or", "pass", "raise", "return", "try", "while",
	"with", "yield",
}

// BuiltIns are the builtin functions and types.
var BuiltIns = []string{
	"__import__", "abs", "all", "any", "ascii", "bin", "bool", "breakpoint",
	"bytearray", "bytes", "callable", "chr", "classmethod", "compile",
	"complex", "delattr", "dict", "dir", "divmod", "enumerate", "eval",
	"exec", "filter", "float", "format", "frozenset", "getattr", "globals",
	"hasattr", "hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow",
	"print", "property", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "staticmethod", "str", "sum", "super",
	"tuple", "type", "vars", "zip",
}

// Literals are the builtin constants.
var Literals = []string{
	"__debug__", "Ellipsis", "False", "None", "NotImplemented", "True",
}

// reservedNames returns ReservedWords without relevance suffixes.
func reservedNames() []string {
	ns := make([]string, len(ReservedWords))
	for i, w := range ReservedWords {
		ns[i], _, _ = strings.Cut(w, "|")
	}
	return ns
}

// newKeywords compiles the symbol tables with the keyword word pattern.
// It fails if the tables overlap.
func newKeywords() (*lexer.Keywords, error) {
	return lexer.NewKeywords(keywordPattern,
		lexer.Table{Category: token.Keyword, Words: ReservedWords},
		lexer.Table{Category: token.BuiltIn, Words: BuiltIns},
		lexer.Table{Category: token.Literal, Words: Literals})
}
