// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"strings"

	"cogentcore.org/highlight/text/token"
	"github.com/dlclark/regexp2"
)

// immediateEnd matches the empty string everywhere.
const immediateEnd = `\B|\b`

// Graph is an arena of modes referring to one another by [ModeID].
// Shared sub-modes are listed by id in each container, and containment
// may be recursive. After [Graph.Compile] the graph is read-only and
// may be used by concurrent scans.
type Graph struct {
	modes    []*Mode
	compiled []compiledMode
	root     ModeID
	npats    int
	ready    bool
}

type compiledMode struct {
	begin, end, illegal *pattern
}

// pattern is a compiled regular expression with a scan-local cache slot.
type pattern struct {
	id     int
	src    string
	re     *regexp2.Regexp
	nparts int
	guard  func(m *Match) bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add adds a mode and returns its id.
func (g *Graph) Add(m *Mode) ModeID {
	g.modes = append(g.modes, m)
	return ModeID(len(g.modes) - 1)
}

// Mode returns the mode with the given id.
func (g *Graph) Mode(id ModeID) *Mode {
	return g.modes[id]
}

// Len returns the number of modes.
func (g *Graph) Len() int {
	return len(g.modes)
}

// Root returns the id of the root mode.
func (g *Graph) Root() ModeID {
	return g.root
}

// Compile validates the graph with the given root and compiles
// every pattern. Modes must not be modified afterwards.
func (g *Graph) Compile(root ModeID) error {
	if root < 0 || int(root) >= len(g.modes) {
		return fmt.Errorf("lexer.Graph.Compile: root %d out of range", root)
	}
	g.root = root
	g.npats = 0
	g.compiled = make([]compiledMode, len(g.modes))
	shared := map[string]*pattern{}
	for i, m := range g.modes {
		id := ModeID(i)
		if err := g.validate(id, m); err != nil {
			return fmt.Errorf("lexer.Graph.Compile: mode %d %q: %w", i, m.Name, err)
		}
		cm := &g.compiled[i]
		var err error
		if id != root {
			if len(m.BeginParts) > 0 {
				cm.begin, err = g.partsPattern(m.BeginParts, m.Guard)
			} else {
				cm.begin, err = g.pattern(shared, m.Begin, m.Guard)
			}
			if err != nil {
				return fmt.Errorf("lexer.Graph.Compile: mode %d %q: begin: %w", i, m.Name, err)
			}
			end := m.End
			if end == "" && !m.EndsWithParent {
				end = immediateEnd
			}
			if end != "" {
				if cm.end, err = g.pattern(shared, end, nil); err != nil {
					return fmt.Errorf("lexer.Graph.Compile: mode %d %q: end: %w", i, m.Name, err)
				}
			}
		}
		if m.Illegal != "" {
			if cm.illegal, err = g.pattern(shared, m.Illegal, nil); err != nil {
				return fmt.Errorf("lexer.Graph.Compile: mode %d %q: illegal: %w", i, m.Name, err)
			}
		}
	}
	g.ready = true
	return nil
}

func (g *Graph) validate(id ModeID, m *Mode) error {
	if !m.Category.IsValid() {
		return fmt.Errorf("invalid category %d", m.Category)
	}
	if id == g.root {
		if m.Begin != "" || len(m.BeginParts) > 0 || m.End != "" || m.EndsWithParent {
			return fmt.Errorf("root mode cannot begin or end")
		}
	} else if (m.Begin == "") == (len(m.BeginParts) == 0) {
		return fmt.Errorf("exactly one of Begin and BeginParts must be set")
	}
	if m.Skip && m.Category != token.None {
		return fmt.Errorf("skip mode cannot have a category")
	}
	for _, p := range m.BeginParts {
		if p.Pattern == "" || !p.Category.IsValid() {
			return fmt.Errorf("invalid begin part %q", p.Pattern)
		}
	}
	for _, c := range m.Contains {
		if c < 0 || int(c) >= len(g.modes) {
			return fmt.Errorf("contains unknown mode %d", c)
		}
		if c == g.root {
			return fmt.Errorf("contains the root mode")
		}
	}
	return nil
}

// pattern compiles src, sharing the result with identical unguarded
// patterns when shared is non-nil.
func (g *Graph) pattern(shared map[string]*pattern, src string, guard func(*Match) bool) (*pattern, error) {
	if guard == nil {
		if p, ok := shared[src]; ok {
			return p, nil
		}
	}
	re, err := regexp2.Compile(src, regexp2.Multiline)
	if err != nil {
		return nil, err
	}
	p := &pattern{id: g.npats, src: src, re: re, guard: guard}
	g.npats++
	if guard == nil && shared != nil {
		shared[src] = p
	}
	return p, nil
}

func (g *Graph) partsPattern(parts []Part, guard func(*Match) bool) (*pattern, error) {
	var b strings.Builder
	for i, p := range parts {
		fmt.Fprintf(&b, "(?<p%d>%s)", i, p.Pattern)
	}
	p, err := g.pattern(nil, b.String(), guard)
	if err != nil {
		return nil, err
	}
	p.nparts = len(parts)
	return p, nil
}

// find returns the leftmost accepted match at or after rune offset from.
func (p *pattern) find(src []rune, from int) (*Match, error) {
	for from <= len(src) {
		rm, err := p.re.FindRunesMatchStartingAt(src, from)
		if err != nil || rm == nil {
			return nil, err
		}
		m := &Match{Start: rm.Index, End: rm.Index + rm.Length, src: src}
		if p.nparts > 0 {
			m.parts = make([][2]int, p.nparts)
			for i := range m.parts {
				gr := rm.GroupByName(fmt.Sprintf("p%d", i))
				if gr == nil || len(gr.Captures) == 0 {
					m.parts[i] = [2]int{-1, -1}
					continue
				}
				m.parts[i] = [2]int{gr.Index, gr.Index + gr.Length}
			}
		}
		if p.guard == nil || p.guard(m) {
			return m, nil
		}
		from = rm.Index + 1
	}
	return nil, nil
}
