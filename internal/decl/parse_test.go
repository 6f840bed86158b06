// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package decl_test

import (
	"testing"

	"github.com/db47h/rtlgen/internal/decl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	td := []struct {
		in  string
		out []decl.Port
		err string
	}{
		{"", nil, ""},
		{"   ", nil, ""},
		{"a", []decl.Port{{"a", 1, 0}}, ""},
		{"clk, data[8]", []decl.Port{{"clk", 1, 0}, {"data", 8, 5}}, ""},
		{" a_0 ,b[16],c ", []decl.Port{{"a_0", 1, 1}, {"b", 16, 6}, {"c", 1, 12}}, ""},
		{"a,", nil, `in "a," at pos 3: expected signal name, got end of input`},
		{",a", nil, `in ",a" at pos 1: expected signal name, got ','`},
		{"a b", nil, `in "a b" at pos 3: expected width specification or comma`},
		{"a[", nil, `in "a[" at pos 3: missing width`},
		{"a[x]", nil, `in "a[x]" at pos 3: missing width`},
		{"a[0]", nil, `in "a[0]" at pos 3: invalid width`},
		{"a[2", nil, `in "a[2" at pos 4: missing close bracket`},
		{"a[2]]", nil, `in "a[2]]" at pos 5: expected width specification or comma`},
		{"a-b", nil, `in "a-b" at pos 2: expected width specification or comma`},
		{"9a", nil, `in "9a" at pos 1: expected signal name, got integer 9`},
		{"a[99999999999999999999]", nil, `in "a[99999999999999999999]" at pos 3: missing width`},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			out, err := decl.Parse(d.in)
			if d.err != "" {
				require.Error(t, err)
				assert.Equal(t, d.err, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.out, out)
		})
	}
}

func TestLexer(t *testing.T) {
	l := decl.NewLexer("x[3], é")
	var types []decl.Type
	for i := l.Lex(); i.Type != decl.EOF; i = l.Lex() {
		types = append(types, i.Type)
	}
	assert.Equal(t, []decl.Type{decl.Ident, decl.BracketOpen, decl.Int, decl.BracketClose, decl.Comma, decl.Ident}, types)
	// EOF is sticky
	assert.Equal(t, decl.EOF, l.Lex().Type)
}

func TestIsIdent(t *testing.T) {
	for s, ok := range map[string]bool{
		"a": true, "_": true, "a_b9": true, "Data": true,
		"": false, "9": false, "a.b": false, "a[0]": false, "a b": false,
	} {
		assert.Equal(t, ok, decl.IsIdent(s), "%q", s)
	}
}
