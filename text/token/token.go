// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the closed set of lexical categories that
// grammars assign to spans of source text, along with their scope
// names, CSS class names and the corresponding chroma token types.
package token

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Category is a semantic lexical category. The zero value [None] is
// used for text that no mode or keyword classified.
type Category int32

const (
	// None is unclassified text.
	None Category = iota

	// Keyword is a reserved word.
	Keyword

	// BuiltIn is a builtin function or type name.
	BuiltIn

	// Literal is a builtin constant such as True or None.
	Literal

	// String is a string literal, including its prefix and quotes.
	String

	// Number is a numeric literal.
	Number

	// Comment is a line comment.
	Comment

	// Meta is a decorator or an interactive prompt.
	Meta

	// Params is the inside of a parameter or argument list.
	Params

	// TitleFunction is the name of a defined or called function.
	TitleFunction

	// TitleClass is the name of a defined class.
	TitleClass

	// TitleClassInherited is the name of a base class in a class header.
	TitleClassInherited

	// Type is a CamelCase name used as a type reference.
	Type

	// VariableLanguage is a language-defined variable, i.e. self.
	VariableLanguage

	// Subst is an interpolation inside a formatted string.
	Subst

	// CategoriesN is the number of categories.
	CategoriesN
)

// scopes are the dotted scope names of each category.
var scopes = [CategoriesN]string{
	None:                "",
	Keyword:             "keyword",
	BuiltIn:             "built_in",
	Literal:             "literal",
	String:              "string",
	Number:              "number",
	Comment:             "comment",
	Meta:                "meta",
	Params:              "params",
	TitleFunction:       "title.function",
	TitleClass:          "title.class",
	TitleClassInherited: "title.class.inherited",
	Type:                "type",
	VariableLanguage:    "variable.language",
	Subst:               "subst",
}

// chromaTypes maps each category onto the closest chroma token type.
var chromaTypes = [CategoriesN]chroma.TokenType{
	None:                chroma.Text,
	Keyword:             chroma.Keyword,
	BuiltIn:             chroma.NameBuiltin,
	Literal:             chroma.KeywordConstant,
	String:              chroma.LiteralString,
	Number:              chroma.LiteralNumber,
	Comment:             chroma.CommentSingle,
	Meta:                chroma.NameDecorator,
	Params:              chroma.Name,
	TitleFunction:       chroma.NameFunction,
	TitleClass:          chroma.NameClass,
	TitleClassInherited: chroma.NameClass,
	Type:                chroma.KeywordType,
	VariableLanguage:    chroma.NameBuiltinPseudo,
	Subst:               chroma.LiteralStringInterpol,
}

// Categories returns all classified categories, in declaration order.
func Categories() []Category {
	cs := make([]Category, 0, CategoriesN-1)
	for c := Keyword; c < CategoriesN; c++ {
		cs = append(cs, c)
	}
	return cs
}

// IsValid returns whether the category is a member of the enumeration.
func (c Category) IsValid() bool {
	return c >= None && c < CategoriesN
}

// String returns the dotted scope name, e.g. "title.function",
// or "none" for [None].
func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int32(c))
	}
	if c == None {
		return "none"
	}
	return scopes[c]
}

// Scope returns the dotted scope name, which is empty for [None].
func (c Category) Scope() string {
	if !c.IsValid() {
		return ""
	}
	return scopes[c]
}

// ClassName returns the CSS class attribute value for the category,
// using the given prefix on the first scope segment and marking each
// further segment with an increasing number of trailing underscores:
// "title.class.inherited" with prefix "hljs-" is
// "hljs-title class_ inherited__".
func (c Category) ClassName(prefix string) string {
	scope := c.Scope()
	if scope == "" {
		return ""
	}
	pieces := strings.Split(scope, ".")
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(pieces[0])
	for i, p := range pieces[1:] {
		b.WriteByte(' ')
		b.WriteString(p)
		b.WriteString(strings.Repeat("_", i+1))
	}
	return b.String()
}

// Selector returns the CSS selector matching [Category.ClassName].
func (c Category) Selector(prefix string) string {
	cn := c.ClassName(prefix)
	if cn == "" {
		return ""
	}
	return "." + strings.ReplaceAll(cn, " ", ".")
}

// Chroma returns the chroma token type used to render the category.
func (c Category) Chroma() chroma.TokenType {
	if !c.IsValid() {
		return chroma.Text
	}
	return chromaTypes[c]
}

// Parse returns the category with the given scope name.
// Both "none" and the empty string parse as [None].
func Parse(s string) (Category, error) {
	if s == "none" || s == "" {
		return None, nil
	}
	for c := Keyword; c < CategoriesN; c++ {
		if scopes[c] == s {
			return c, nil
		}
	}
	return None, fmt.Errorf("token.Parse: unknown category %q", s)
}

// MarshalText encodes the category as its scope name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a scope name.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
