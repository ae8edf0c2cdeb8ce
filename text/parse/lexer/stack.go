// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "strings"

// Frame is one open mode on the scanner stack.
type Frame struct {

	// Mode is the open mode.
	Mode ModeID

	// Start is the rune offset where the mode began.
	Start int

	// node is the output node of the mode, if it has a category.
	node *Node
}

// Stack is the stack of open modes. The root mode is at index 0.
type Stack []Frame

// Top returns the frame at the top of the stack, or nil if empty.
func (ss *Stack) Top() *Frame {
	sz := len(*ss)
	if sz == 0 {
		return nil
	}
	return &(*ss)[sz-1]
}

// Push appends a frame to the stack.
func (ss *Stack) Push(f Frame) {
	*ss = append(*ss, f)
}

// Pop takes the top frame off the stack and returns it.
func (ss *Stack) Pop() Frame {
	sz := len(*ss)
	if sz == 0 {
		return Frame{}
	}
	f := (*ss)[sz-1]
	*ss = (*ss)[:sz-1]
	return f
}

// Names returns the stack as a path of mode names, for debugging.
func (ss *Stack) Names(g *Graph) string {
	names := make([]string, len(*ss))
	for i, f := range *ss {
		names[i] = g.Mode(f.Mode).Name
	}
	return strings.Join(names, "/")
}
