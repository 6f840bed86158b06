// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package decl

import (
	"github.com/pkg/errors"
)

// Port is a declared signal name with its width in bits.
//
type Port struct {
	Name  string
	Width int
	Pos   Pos
}

// Parse parses a comma separated list of signal declarations. Each declaration
// is a name optionally followed by a width in brackets. The default width is 1.
// For example:
//
//	Parse("clk, data[8]") // returns []Port{{"clk", 1, 0}, {"data", 8, 5}}
//
func Parse(input string) ([]Port, error) {
	var out []Port

	l := NewLexer(input)

	i := l.Lex()
	if i.Type == EOF {
		return nil, nil
	}
	for {
		if i.Type != Ident {
			return nil, parseError(input, i.Pos, "expected signal name, got "+i.String())
		}
		p := Port{Name: i.Value.(string), Width: 1, Pos: i.Pos}
		// after ident, expect comma, [ or EOF
		i = l.Lex()
		if i.Type == BracketOpen {
			i = l.Lex()
			if i.Type != Int {
				return nil, parseError(input, i.Pos, "missing width")
			}
			if p.Width = i.Value.(int); p.Width < 1 {
				return nil, parseError(input, i.Pos, "invalid width")
			}
			i = l.Lex()
			if i.Type != BracketClose {
				return nil, parseError(input, i.Pos, "missing close bracket")
			}
			i = l.Lex()
		}
		out = append(out, p)
		switch i.Type {
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, parseError(input, i.Pos, "expected width specification or comma")
		}
	}
}

func parseError(in string, pos Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
