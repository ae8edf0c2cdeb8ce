// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package python

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// codingPattern is a coding declaration comment (PEP 263).
var codingPattern = regexp2.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-\w.]+)`, regexp2.None)

// codecAliases maps Python codec names that the WHATWG and IANA
// indexes do not know to names that they do.
var codecAliases = map[string]string{
	"latin-1":      "latin1",
	"utf-8-sig":    "utf-8",
	"u8":           "utf-8",
	"cp932":        "shift_jis",
	"euc-jis-2004": "euc-jp",
}

// DeclaredEncoding returns the encoding named by a coding declaration
// on the first line, or on the second line if the first is blank or a
// comment, or "" if there is none.
func DeclaredEncoding(b []byte) string {
	lines := bytes.SplitN(b, []byte("\n"), 3)
	for i := 0; i < len(lines) && i < 2; i++ {
		line := lines[i]
		if i == 0 {
			line = bytes.TrimPrefix(line, []byte("\xef\xbb\xbf"))
		}
		m, err := codingPattern.FindStringMatch(string(line))
		if err == nil && m != nil {
			return m.GroupByNumber(1).String()
		}
		trimmed := bytes.TrimLeft(line, " \t\f\r")
		if len(trimmed) > 0 && trimmed[0] != '#' {
			break
		}
	}
	return ""
}

// DecodeSource returns Python source bytes as text. A byte order mark
// selects UTF-8 or UTF-16 and is removed; otherwise a declared encoding
// is decoded, and undeclared source is returned unchanged.
func DecodeSource(b []byte) (string, error) {
	dec := encoding.Nop.NewDecoder()
	if name := DeclaredEncoding(b); name != "" {
		enc, err := lookupEncoding(name)
		if err != nil {
			return "", err
		}
		dec = enc.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(dec), b)
	if err != nil {
		return "", fmt.Errorf("python.DecodeSource: %w", err)
	}
	return string(out), nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	n := strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	if alias, ok := codecAliases[n]; ok {
		n = alias
	}
	if n == "utf-8" || n == "utf8" {
		return encoding.Nop, nil
	}
	if enc, err := htmlindex.Get(n); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(n); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("python.DecodeSource: unknown source encoding %q", name)
}
