// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"log/slog"

	"cogentcore.org/highlight/base/errors"
	"cogentcore.org/highlight/text/token"
)

// maxStalls is the number of consecutive steps allowed to change the
// stack without consuming input before a character is stepped over.
const maxStalls = 1000

type matchKind int

const (
	beginMatch matchKind = iota
	endMatch
	illegalMatch
)

// candidate is one entry of the pattern table of the top frame.
type candidate struct {
	kind matchKind
	pat  *pattern

	// mode is the mode entered by a begin match.
	mode ModeID

	// depth is the stack index of the frame closed by an end match.
	depth int
}

type cacheEntry struct {
	from int
	m    *Match
}

// State is the state of one scan: a stack automaton over the modes of
// a [Graph]. At each step the candidates of the top frame are searched
// and the leftmost match wins, with ties going to the earlier candidate:
// contained begins in order, then the own end, then inherited parent
// ends, then the illegal pattern. Text between matches accumulates in a
// buffer that is classified with the keywords of whichever frame is on
// top when it is flushed.
type State struct {

	// Grammar being scanned.
	Grammar *Grammar

	// Src is the input.
	Src *Source

	// Stack of open modes.
	Stack Stack

	// Pos is the current rune offset.
	Pos int

	// Strict aborts the scan on an illegal lexeme instead of
	// treating it as plain text.
	Strict bool

	// Relevance accumulated so far.
	Relevance int

	// Illegal is set when a strict scan hit an illegal lexeme.
	Illegal bool

	graph *Graph

	// buf is the start of the text not yet classified.
	buf int

	hits   map[string]int
	cache  []cacheEntry
	cands  []candidate
	root   *Node
	nodes  []*Node
	last   matchKind
	lastAt int
	stalls int
}

// NewState returns a scan state for the given source text.
func NewState(gr *Grammar, text string, strict bool) *State {
	st := &State{Grammar: gr, Src: NewSource(text), Strict: strict, graph: gr.Graph}
	st.hits = map[string]int{}
	st.cache = make([]cacheEntry, gr.Graph.npats)
	for i := range st.cache {
		st.cache[i].from = -1
	}
	st.root = &Node{End: len(text)}
	st.nodes = []*Node{st.root}
	st.Stack.Push(Frame{Mode: gr.Graph.root})
	st.lastAt = -1
	return st
}

// Run scans the whole input and returns the result.
func (st *State) Run() *Result {
	for st.step() {
		if st.Illegal {
			res := plainResult(st.Grammar.Name, st.Src.Text)
			res.Illegal = true
			return res
		}
	}
	n := st.Src.Len()
	st.Pos = n
	st.flush(n)
	for len(st.nodes) > 1 {
		st.close(n)
	}
	return &Result{Language: st.Grammar.Name, Source: st.Src.Text, Root: st.root, Relevance: st.Relevance}
}

// candidates returns the pattern table of the top frame.
func (st *State) candidates() []candidate {
	cs := st.cands[:0]
	top := len(st.Stack) - 1
	mode := st.graph.modes[st.Stack[top].Mode]
	for _, id := range mode.Contains {
		cs = append(cs, candidate{kind: beginMatch, pat: st.graph.compiled[id].begin, mode: id})
	}
	for d := top; d > 0; d-- {
		if e := st.graph.compiled[st.Stack[d].Mode].end; e != nil {
			cs = append(cs, candidate{kind: endMatch, pat: e, depth: d})
		}
		if !st.graph.modes[st.Stack[d].Mode].EndsWithParent {
			break
		}
	}
	if il := st.graph.compiled[st.Stack[top].Mode].illegal; il != nil {
		cs = append(cs, candidate{kind: illegalMatch, pat: il})
	}
	st.cands = cs
	return cs
}

// find returns the leftmost match of p at or after Pos. Results are
// cached per pattern: a match found from an earlier offset is still the
// leftmost one as long as it does not start before Pos.
func (st *State) find(p *pattern) *Match {
	e := &st.cache[p.id]
	if e.from >= 0 && e.from <= st.Pos && (e.m == nil || e.m.Start >= st.Pos) {
		return e.m
	}
	m, err := p.find(st.Src.Runes, st.Pos)
	if err != nil {
		errors.Log(fmt.Errorf("lexer: %s: pattern %q: %w", st.Grammar.Name, p.src, err))
		m = nil
	}
	e.from, e.m = st.Pos, m
	return m
}

// step processes the next match and reports whether there was one.
func (st *State) step() bool {
	var best candidate
	var bm *Match
	for _, c := range st.candidates() {
		m := st.find(c.pat)
		if m != nil && (bm == nil || m.Start < bm.Start) {
			best, bm = c, m
		}
	}
	if bm == nil {
		return false
	}
	from := st.Pos
	switch best.kind {
	case beginMatch:
		st.begin(best, bm)
	case endMatch:
		st.end(best, bm)
	case illegalMatch:
		st.illegal(bm)
	}
	st.last, st.lastAt = best.kind, bm.Start
	if st.Pos > from {
		st.stalls = 0
		return true
	}
	st.stalls++
	if st.stalls > maxStalls {
		st.stalls = 0
		if st.Pos >= st.Src.Len() {
			return false
		}
		st.Pos++
	}
	return true
}

func (st *State) begin(c candidate, m *Match) {
	mode := st.graph.modes[c.mode]
	parent := st.graph.modes[st.Stack.Top().Mode]
	switch {
	case mode.Skip:
	case mode.ExcludeBegin:
		st.flush(m.End)
	default:
		st.flush(m.Start)
	}
	f := Frame{Mode: c.mode, Start: m.Start}
	if mode.Category != token.None {
		f.node = st.open(mode.Category)
	}
	st.Stack.Push(f)
	if len(mode.BeginParts) > 0 && !mode.Skip {
		for i, part := range mode.BeginParts {
			r := m.parts[i]
			if r[0] < 0 || r[0] == r[1] {
				continue
			}
			if part.Category != token.None {
				st.leaf(part.Category, r[0], r[1])
			} else if parent.Keywords != nil {
				st.keywords(parent.Keywords, r[0], r[1])
			}
		}
		st.buf = m.End
	}
	st.Pos = m.End
}

func (st *State) end(c candidate, m *Match) {
	if st.last == beginMatch && st.lastAt == m.Start && m.Len() == 0 {
		// a zero-width begin ended at once: step over one character
		if st.Pos < st.Src.Len() {
			st.Pos++
		}
		return
	}
	origin := st.graph.modes[st.Stack.Top().Mode]
	switch {
	case origin.Skip:
	case origin.ExcludeEnd:
		st.flush(m.Start)
	default:
		st.flush(m.End)
	}
	for len(st.Stack)-1 >= c.depth {
		f := st.Stack.Pop()
		if f.node != nil {
			st.close(st.buf)
		}
		if mode := st.graph.modes[f.Mode]; !mode.Skip {
			st.Relevance += mode.Relevance
		}
	}
	st.Pos = m.End
}

func (st *State) illegal(m *Match) {
	if st.Strict {
		slog.Debug("illegal lexeme", "language", st.Grammar.Name, "offset", st.Src.ByteOffset(m.Start), "lexeme", m.Text(), "stack", st.Stack.Names(st.graph))
		st.Illegal = true
		st.Relevance = 0
		return
	}
	if m.Len() > 0 {
		st.Pos = m.End
	} else if st.Pos < st.Src.Len() {
		st.Pos++
	}
}

// flush classifies the buffered text up to rune offset upto
// with the keywords of the top frame.
func (st *State) flush(upto int) {
	if upto <= st.buf {
		return
	}
	if kw := st.graph.modes[st.Stack.Top().Mode].Keywords; kw != nil {
		st.keywords(kw, st.buf, upto)
	}
	st.buf = upto
}

// keywords emits a span for each classified word in [from, to).
// The word pattern only sees the text of the range.
func (st *State) keywords(kw *Keywords, from, to int) {
	text := st.Src.Runes[from:to]
	for i := 0; i <= len(text); {
		rm, err := kw.re.FindRunesMatchStartingAt(text, i)
		if err != nil {
			errors.Log(fmt.Errorf("lexer: %s: keyword pattern %q: %w", st.Grammar.Name, kw.Pattern, err))
			return
		}
		if rm == nil {
			return
		}
		if rm.Length == 0 {
			i = rm.Index + 1
			continue
		}
		word := string(text[rm.Index : rm.Index+rm.Length])
		if k, ok := kw.words[word]; ok {
			st.leaf(k.Category, from+rm.Index, from+rm.Index+rm.Length)
			st.hits[word]++
			if st.hits[word] <= maxKeywordHits {
				st.Relevance += k.Relevance
			}
		}
		i = rm.Index + rm.Length
	}
}

// open starts a node at the classification frontier.
func (st *State) open(cat token.Category) *Node {
	parent := st.nodes[len(st.nodes)-1]
	n := &Node{Category: cat, Start: st.Src.ByteOffset(st.buf)}
	parent.Children = append(parent.Children, n)
	st.nodes = append(st.nodes, n)
	return n
}

// close ends the innermost open node at the given rune offset.
func (st *State) close(at int) {
	n := st.nodes[len(st.nodes)-1]
	n.End = st.Src.ByteOffset(at)
	st.nodes = st.nodes[:len(st.nodes)-1]
}

// leaf adds a childless node for the rune range [from, to).
func (st *State) leaf(cat token.Category, from, to int) {
	if to <= from {
		return
	}
	parent := st.nodes[len(st.nodes)-1]
	n := &Node{Category: cat, Start: st.Src.ByteOffset(from), End: st.Src.ByteOffset(to)}
	parent.Children = append(parent.Children, n)
}
