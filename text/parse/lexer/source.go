// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "unicode/utf8"

// Source is the immutable input of a scan: the original text, its
// decoded runes, and the byte offset of every rune. Patterns run over
// the runes; results are reported in byte offsets of Text.
type Source struct {

	// Text is the original input.
	Text string

	// Runes are the decoded runes of Text. Invalid UTF-8 bytes
	// decode to [utf8.RuneError], one per byte.
	Runes []rune

	// offs[i] is the byte offset of Runes[i]; offs[len(Runes)] is len(Text).
	offs []int
}

// NewSource decodes the given text.
func NewSource(text string) *Source {
	src := &Source{Text: text}
	src.Runes = make([]rune, 0, utf8.RuneCountInString(text))
	src.offs = make([]int, 0, cap(src.Runes)+1)
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		src.Runes = append(src.Runes, r)
		src.offs = append(src.offs, i)
		i += w
	}
	src.offs = append(src.offs, len(text))
	return src
}

// Len returns the number of runes.
func (src *Source) Len() int {
	return len(src.Runes)
}

// ByteOffset returns the byte offset in Text of the given rune index.
func (src *Source) ByteOffset(ri int) int {
	return src.offs[ri]
}
