// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cogentcore.org/highlight/text/token"
	"github.com/dlclark/regexp2"
)

// maxKeywordHits is the number of times a single word
// contributes its relevance in one scan.
const maxKeywordHits = 7

// commonKeywords score no relevance unless given an explicit one,
// as they appear in too many languages to identify any of them.
var commonKeywords = map[string]bool{
	"of": true, "and": true, "for": true, "in": true, "not": true, "or": true,
	"if": true, "then": true, "parent": true, "list": true, "value": true,
}

// Keyword is the classification of one word.
type Keyword struct {
	Category  token.Category
	Relevance int
}

// Table is a list of words sharing a category. A word may carry an
// explicit relevance as a "|N" suffix, e.g. "nonlocal|10".
type Table struct {
	Category token.Category
	Words    []string
}

// Keywords is a compiled set of symbol tables: a word pattern that
// finds candidate words in unmatched text, and the classification
// of each word. The tables are guaranteed disjoint.
type Keywords struct {

	// Pattern is the source of the word pattern.
	Pattern string

	re    *regexp2.Regexp
	words map[string]Keyword
}

// NewKeywords compiles the given word pattern (default `\w+`) and
// tables. It returns an error if the pattern is invalid, a relevance
// suffix is malformed, or a word appears in more than one table.
func NewKeywords(pattern string, tables ...Table) (*Keywords, error) {
	if pattern == "" {
		pattern = `\w+`
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("lexer.NewKeywords: pattern %q: %w", pattern, err)
	}
	kw := &Keywords{Pattern: pattern, re: re, words: map[string]Keyword{}}
	for _, t := range tables {
		if t.Category == token.None || !t.Category.IsValid() {
			return nil, fmt.Errorf("lexer.NewKeywords: invalid table category %v", t.Category)
		}
		for _, w := range t.Words {
			name, rel, err := parseWord(w)
			if err != nil {
				return nil, err
			}
			if prev, has := kw.words[name]; has {
				return nil, fmt.Errorf("lexer.NewKeywords: %q is in both %v and %v", name, prev.Category, t.Category)
			}
			kw.words[name] = Keyword{Category: t.Category, Relevance: rel}
		}
	}
	return kw, nil
}

func parseWord(w string) (string, int, error) {
	name, rs, explicit := strings.Cut(w, "|")
	if name == "" {
		return "", 0, fmt.Errorf("lexer.NewKeywords: empty word in %q", w)
	}
	if explicit {
		rel, err := strconv.Atoi(rs)
		if err != nil {
			return "", 0, fmt.Errorf("lexer.NewKeywords: relevance of %q: %w", name, err)
		}
		return name, rel, nil
	}
	if commonKeywords[name] {
		return name, 0, nil
	}
	return name, 1, nil
}

// Lookup returns the classification of the given word.
func (kw *Keywords) Lookup(word string) (Keyword, bool) {
	k, ok := kw.words[word]
	return k, ok
}

// Words returns the sorted words of the given category.
func (kw *Keywords) Words(cat token.Category) []string {
	var ws []string
	for w, k := range kw.words {
		if k.Category == cat {
			ws = append(ws, w)
		}
	}
	sort.Strings(ws)
	return ws
}

// Len returns the total number of words.
func (kw *Keywords) Len() int {
	return len(kw.words)
}
