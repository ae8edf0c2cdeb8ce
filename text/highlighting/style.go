// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting drives the registered grammars over source
// text and renders the results: nested HTML markup with hljs-style
// class names, stylesheets derived from chroma styles, and any chroma
// formatter through a chroma lexer adapter.
package highlighting

import (
	"fmt"
	"strings"

	"cogentcore.org/highlight/text/token"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightingName is the name of a chroma style.
type HighlightingName string

// DefaultStyle is the initial default style.
var DefaultStyle = HighlightingName("emacs")

// AvailableStyle returns a style by name from the chroma styles; if not
// found, [DefaultStyle] is used as a fallback.
func AvailableStyle(nm HighlightingName) *chroma.Style {
	if st, ok := styles.Registry[string(nm)]; ok {
		return st
	}
	return styles.Get(string(DefaultStyle))
}

// StyleNames returns the sorted names of all available styles.
func StyleNames() []string {
	return styles.Names()
}

// StyleCSS generates a CSS style sheet for the style with one rule per
// category, selecting the class names produced by [MarkupHTML] with
// the given prefix. The background of the style applies to the
// container, selected by the prefix without its trailing dash.
func StyleCSS(st *chroma.Style, prefix string) string {
	var b strings.Builder
	bg := st.Get(chroma.Background)
	if base := strings.TrimSuffix(prefix, "-"); base != "" {
		if css := entryCSS(bg); css != "" {
			fmt.Fprintf(&b, ".%s { %s }\n", base, css)
		}
	}
	for _, c := range token.Categories() {
		if c == token.None {
			continue
		}
		css := entryCSS(st.Get(c.Chroma()).Sub(bg))
		if css == "" {
			continue
		}
		fmt.Fprintf(&b, "%s { %s }\n", c.Selector(prefix), css)
	}
	return b.String()
}

// entryCSS converts a chroma style entry to CSS attributes.
func entryCSS(se chroma.StyleEntry) string {
	props := []string{}
	if se.Colour.IsSet() {
		props = append(props, "color: "+se.Colour.String())
	}
	if se.Background.IsSet() {
		props = append(props, "background-color: "+se.Background.String())
	}
	if se.Bold == chroma.Yes {
		props = append(props, "font-weight: bold")
	}
	if se.Italic == chroma.Yes {
		props = append(props, "font-style: italic")
	}
	if se.Underline == chroma.Yes {
		props = append(props, "text-decoration: underline")
	}
	return strings.Join(props, "; ")
}
