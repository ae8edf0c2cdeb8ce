// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassName(t *testing.T) {
	assert.Equal(t, "hljs-keyword", Keyword.ClassName("hljs-"))
	assert.Equal(t, "hljs-built_in", BuiltIn.ClassName("hljs-"))
	assert.Equal(t, "hljs-title function_", TitleFunction.ClassName("hljs-"))
	assert.Equal(t, "hljs-title class_ inherited__", TitleClassInherited.ClassName("hljs-"))
	assert.Equal(t, "variable language_", VariableLanguage.ClassName(""))
	assert.Equal(t, "", None.ClassName("hljs-"))

	assert.Equal(t, ".hljs-title.class_.inherited__", TitleClassInherited.Selector("hljs-"))
	assert.Equal(t, "", None.Selector("hljs-"))
}

func TestParse(t *testing.T) {
	for _, c := range Categories() {
		p, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, p)
	}
	c, err := Parse("none")
	require.NoError(t, err)
	assert.Equal(t, None, c)

	_, err = Parse("doctag")
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Category{"a": TitleClass})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"title.class"}`, string(b))

	var m map[string]Category
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, TitleClass, m["a"])
}

func TestChroma(t *testing.T) {
	assert.Equal(t, chroma.Text, None.Chroma())
	assert.Equal(t, chroma.NameBuiltin, BuiltIn.Chroma())
	assert.Equal(t, chroma.Text, Category(99).Chroma())
	assert.Len(t, Categories(), int(CategoriesN)-1)
	for _, c := range Categories() {
		assert.True(t, c.IsValid())
		assert.NotEqual(t, chroma.Text, c.Chroma(), c.String())
	}
}
