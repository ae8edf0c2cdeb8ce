// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package languages is the registry of grammars. Grammar packages
// register themselves in their init function; import
// supportedlanguages to get all of them.
package languages

import (
	"fmt"
	"log/slog"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"

	"cogentcore.org/highlight/text/parse/lexer"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/gobwas/glob"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	mu       sync.RWMutex
	grammars []*lexer.Grammar
	byName   = map[string]*lexer.Grammar{}
	globs    = map[*lexer.Grammar][]glob.Glob{}
)

// Register adds a grammar under its name and aliases, case-insensitively.
// It returns an error if any of them is already taken or if one of its
// filename patterns is not a valid glob.
func Register(gr *lexer.Grammar) error {
	mu.Lock()
	defer mu.Unlock()
	keys := append([]string{gr.Name}, gr.Aliases...)
	for _, k := range keys {
		if prev, has := byName[strings.ToLower(k)]; has {
			return fmt.Errorf("languages.Register: %q of %s is already registered by %s", k, gr.Name, prev.Name)
		}
	}
	var gs []glob.Glob
	for _, pat := range gr.Filenames {
		g, err := glob.Compile(pat)
		if err != nil {
			return fmt.Errorf("languages.Register: %s: filename pattern %q: %w", gr.Name, pat, err)
		}
		gs = append(gs, g)
	}
	globs[gr] = gs
	for _, k := range keys {
		byName[strings.ToLower(k)] = gr
	}
	grammars = append(grammars, gr)
	slog.Debug("registered language", "name", gr.Name, "aliases", gr.Aliases)
	return nil
}

// Get returns the grammar with the given name or alias. For unknown
// names the error suggests the closest registered names.
func Get(name string) (*lexer.Grammar, error) {
	mu.RLock()
	defer mu.RUnlock()
	if gr, ok := byName[strings.ToLower(name)]; ok {
		return gr, nil
	}
	return nil, fmt.Errorf("languages.Get: unknown language %q%s", name, suggestion(name, names()))
}

// Match returns the grammar whose filename patterns match the base
// name of the given file, or nil. Patterns may use alternation,
// as in "*.{py,pyw}".
func Match(filename string) *lexer.Grammar {
	mu.RLock()
	defer mu.RUnlock()
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	for _, gr := range grammars {
		for _, g := range globs[gr] {
			if g.Match(base) {
				return gr
			}
		}
	}
	return nil
}

// All returns the registered grammars in registration order.
func All() []*lexer.Grammar {
	mu.RLock()
	defer mu.RUnlock()
	return append([]*lexer.Grammar(nil), grammars...)
}

// Names returns the registered names and aliases, lower-cased.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return names()
}

func names() []string {
	var ns []string
	for _, gr := range grammars {
		ns = append(ns, strings.ToLower(gr.Name))
		for _, a := range gr.Aliases {
			ns = append(ns, strings.ToLower(a))
		}
	}
	return ns
}

// minSimilarity is the edit similarity above which a candidate that
// does not fuzzy match is still suggested.
const minSimilarity = 0.6

// Suggest returns the candidates closest to name, best first. A
// candidate matches if its letters appear in order in name or the
// other way around, or failing that, if it is within a few edits
// of name, as with transposed letters.
func Suggest(name string, candidates []string) []string {
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		for i, c := range candidates {
			if fuzzy.MatchFold(c, name) {
				ranks = append(ranks, fuzzy.Rank{Source: c, Target: c, Distance: len(name) - len(c), OriginalIndex: i})
			}
		}
	}
	if len(ranks) == 0 {
		lev := metrics.NewLevenshtein()
		lev.CaseSensitive = false
		for i, c := range candidates {
			if strutil.Similarity(name, c, lev) >= minSimilarity {
				ranks = append(ranks, fuzzy.Rank{Source: name, Target: c, Distance: lev.Distance(name, c), OriginalIndex: i})
			}
		}
	}
	sort.Sort(ranks)
	var ts []string
	for _, r := range ranks {
		if !slices.Contains(ts, r.Target) {
			ts = append(ts, r.Target)
		}
	}
	return ts
}

// suggestion formats the [Suggest] results as an error message hint.
func suggestion(name string, candidates []string) string {
	ts := Suggest(name, candidates)
	if len(ts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(ts, ", "))
}
