// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "cogentcore.org/highlight/text/token"

// ModeID addresses a [Mode] within its [Graph].
type ModeID int32

// Part is one consecutive piece of a multi-part begin pattern.
// Parts with a category are emitted as a span of that category;
// the others are classified with the enclosing keywords.
type Part struct {
	Pattern  string
	Category token.Category
}

// Mode is one state of the scanner: the pattern that enters it, the
// pattern that leaves it, and the modes that may nest inside it.
// Patterns use regexp2 syntax with ^ and $ anchored at line boundaries.
type Mode struct {

	// Name is used in error messages and debug output.
	Name string

	// Category of the span covering the mode. A mode with category
	// [token.None] groups its contents without producing a node.
	Category token.Category

	// Begin is the pattern that enters the mode. Exactly one of
	// Begin and BeginParts is set, except on the root mode.
	Begin string

	// BeginParts is a begin pattern made of consecutive parts,
	// each with its own category.
	BeginParts []Part

	// End is the pattern that leaves the mode. If empty, the mode
	// ends as soon as nothing it contains begins at the current
	// position, unless EndsWithParent is set.
	End string

	// Illegal is a pattern that must not occur while the mode is on top.
	Illegal string

	// Contains lists the modes that may begin inside this one,
	// in priority order.
	Contains []ModeID

	// Keywords classifies words in the unmatched text of the mode.
	Keywords *Keywords

	// Relevance is added to the scan score each time the mode ends.
	Relevance int

	// Skip keeps the text of the mode in the enclosing buffer and
	// produces no node or relevance.
	Skip bool

	// ExcludeBegin leaves the begin lexeme outside the mode's span.
	ExcludeBegin bool

	// ExcludeEnd leaves the end lexeme outside the mode's span.
	ExcludeEnd bool

	// EndsWithParent closes the mode, together with its parent,
	// when the parent's end matches.
	EndsWithParent bool

	// Guard, if set, is called for each begin match; returning
	// false rejects the match at that position.
	Guard func(m *Match) bool
}

// Match is a match of a pattern over the source runes.
type Match struct {

	// Start and End are rune offsets.
	Start, End int

	src   []rune
	parts [][2]int
}

// Len returns the number of runes matched.
func (m *Match) Len() int {
	return m.End - m.Start
}

// Text returns the matched text.
func (m *Match) Text() string {
	return string(m.src[m.Start:m.End])
}

// NumParts returns the number of begin parts of the match.
func (m *Match) NumParts() int {
	return len(m.parts)
}

// Part returns the text matched by the i'th begin part,
// or "" if there is no such part.
func (m *Match) Part(i int) string {
	if i < 0 || i >= len(m.parts) || m.parts[i][0] < 0 {
		return ""
	}
	return string(m.src[m.parts[i][0]:m.parts[i][1]])
}
