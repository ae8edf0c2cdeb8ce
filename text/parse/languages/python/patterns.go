// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package python

import (
	"strings"
)

const (
	// identStart and identContinue are the XID_Start and XID_Continue
	// classes, approximated by general category plus the Other_ID_Start
	// and Other_ID_Continue characters.
	identStart    = `\p{L}\p{Nl}_\u1885\u1886\u2118\u212E\u309B\u309C`
	identContinue = identStart + `\p{Mn}\p{Mc}\p{Nd}\p{Pc}\u00B7\u0387\u1369-\u1371\u19DA\u200C\u200D\u30FB\uFF65`

	// identPattern matches a Unicode identifier.
	identPattern = `[` + identStart + `][` + identContinue + `]*`

	// keywordPattern finds words to look up in the symbol tables.
	// A word directly followed by = (an assignment or keyword
	// argument, but not ==) is never classified. Only whole words are
	// looked up, never a prefix of a longer word.
	keywordPattern = `(?<!\w)(?>[A-Za-z]\w*|__\w+__)(?!\w)(?!=(?!=))`

	// promptPattern is an interactive interpreter prompt.
	promptPattern = `^(?:>>>|\.\.\.) `

	// digitPart is a run of digits with single underscores between them.
	digitPart = `[0-9](?:_?[0-9])*`

	// pointFloat is a decimal number with a point.
	pointFloat = `(?:\b` + digitPart + `)?\.` + digitPart + `|\b` + digitPart + `\.`

	// typeNamePattern is a CamelCase name, optionally with a leading
	// underscore, that is not called.
	typeNamePattern = `\b(?:[A-Z][a-zA-Z0-9]*|_[A-Z][a-zA-Z0-9]*)\b(?!\s*\()`
)

// numberLookahead is what may follow a number: a word boundary or a
// reserved word, as in 1if x else 2.
func numberLookahead() string {
	return `(?=\b|` + strings.Join(reservedNames(), "|") + `)`
}

// numberPatterns returns the numeric literal patterns, in priority order.
func numberPatterns() []string {
	la := numberLookahead()
	return []string{
		// exponent float, with optional imaginary suffix
		`(?:\b` + digitPart + `|(?:` + pointFloat + `))[eE][+-]?` + digitPart + `[jJ]?` + la,
		// point float, with optional imaginary suffix
		`(?:` + pointFloat + `)[jJ]?`,
		// decimal integer, with legacy long or imaginary suffix
		`\b(?:[1-9](?:_?[0-9])*|0+(?:_?0)*)[lLjJ]?` + la,
		`\b0[bB](?:_?[01])+[lL]?` + la,
		`\b0[oO](?:_?[0-7])+[lL]?` + la,
		`\b0[xX](?:_?[0-9a-fA-F])+[lL]?` + la,
		// imaginary literal made of digits only
		`\b` + digitPart + `[jJ]` + la,
	}
}

// stringDelimiter is one string opening and its closing quote.
type stringDelimiter struct {
	name, begin, end string
	relevance        int
	escapes          stringEscapes
	illegalNewline   bool
}

type stringEscapes int

const (
	plainEscapes stringEscapes = iota
	promptEscapes
	formatEscapes
	formatPromptEscapes
)

// stringDelimiters returns the string openings, in priority order:
// triple quoted before single quoted, and prefixed before bare.
func stringDelimiters() []stringDelimiter {
	var ds []stringDelimiter
	add := func(name, prefix string, triple bool, rel int, esc stringEscapes) {
		for _, q := range []string{"'", `"`} {
			qs := q
			if triple {
				qs = q + q + q
			}
			ds = append(ds, stringDelimiter{name: name, begin: prefix + qs, end: qs, relevance: rel, escapes: esc})
		}
	}
	add("triple", `(?:[uU]|[bB]|[rR]|[bB][rR]|[rR][bB])?`, true, 10, promptEscapes)
	add("ftriple", `(?:[fF][rR]|[rR][fF]|[fF])`, true, 1, formatPromptEscapes)
	add("unicode", `(?:[uU]|[rR])`, false, 10, plainEscapes)
	add("bytes", `(?:[bB]|[bB][rR]|[rR][bB])`, false, 1, plainEscapes)
	add("format", `(?:[fF][rR]|[rR][fF]|[fF])`, false, 1, formatEscapes)
	for _, q := range []string{"'", `"`} {
		ds = append(ds, stringDelimiter{name: "bare", begin: q, end: q, relevance: 1, escapes: plainEscapes, illegalNewline: true})
	}
	return ds
}
