// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"cogentcore.org/highlight/text/token"
)

// Node is a node of the classification tree. Start and End are byte
// offsets; text within a node not covered by a child belongs to the
// node itself.
type Node struct {
	Category token.Category `json:"category" yaml:"category"`
	Start    int            `json:"start" yaml:"start"`
	End      int            `json:"end" yaml:"end"`
	Children []*Node        `json:"children,omitempty" yaml:"children,omitempty"`
}

// Span is a maximal run of text with a single innermost category.
// Start and End are byte offsets; Depth is the nesting depth of the
// node the span belongs to, with 0 for unclassified top-level text.
type Span struct {
	Start    int            `json:"start" yaml:"start"`
	End      int            `json:"end" yaml:"end"`
	Category token.Category `json:"category" yaml:"category"`
	Depth    int            `json:"depth" yaml:"depth"`
}

// Text returns the text of the span within src.
func (sp Span) Text(src string) string {
	return src[sp.Start:sp.End]
}

// Result is the outcome of scanning one input.
type Result struct {

	// Language is the name of the grammar that produced the result.
	Language string `json:"language" yaml:"language"`

	// Source is the scanned text.
	Source string `json:"-" yaml:"-"`

	// Root spans the whole input with category [token.None].
	Root *Node `json:"root" yaml:"root"`

	// Relevance is the score accumulated during the scan,
	// used to compare grammars in auto-detection.
	Relevance int `json:"relevance" yaml:"relevance"`

	// Illegal is set when a strict scan was aborted on an illegal
	// lexeme; Root then has no children.
	Illegal bool `json:"illegal,omitempty" yaml:"illegal,omitempty"`
}

// plainResult returns an unclassified result for the given text.
func plainResult(language, text string) *Result {
	return &Result{Language: language, Source: text, Root: &Node{End: len(text)}}
}

// Spans returns the flattened classification: ordered, non-overlapping
// spans that together cover the whole input.
func (r *Result) Spans() []Span {
	var spans []Span
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		cp := n.Start
		for _, c := range n.Children {
			if c.Start > cp {
				spans = append(spans, Span{Start: cp, End: c.Start, Category: n.Category, Depth: depth})
			}
			walk(c, depth+1)
			cp = c.End
		}
		if n.End > cp {
			spans = append(spans, Span{Start: cp, End: n.End, Category: n.Category, Depth: depth})
		}
	}
	if r.Root != nil {
		walk(r.Root, 0)
	}
	return spans
}

// Walk calls enter for each node in depth-first order and exit after
// its children, starting with the root.
func (r *Result) Walk(enter, exit func(n *Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if enter != nil {
			enter(n)
		}
		for _, c := range n.Children {
			walk(c)
		}
		if exit != nil {
			exit(n)
		}
	}
	if r.Root != nil {
		walk(r.Root)
	}
}
