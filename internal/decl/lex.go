// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package decl parses signal declaration specs like "clk, rst, data[8]".
//
package decl

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	BracketOpen:  "'['",
	BracketClose: "']'",
	Comma:        "','",
	Int:          "integer",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "token(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Pos is a byte offset in the input.
//
type Pos int

// Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Int:
		return "integer " + strconv.Itoa(i.Value.(int))
	case Raw:
		return "character " + strconv.QuoteRune(i.Value.(rune))
	}
	return i.Type.String()
}

const eof = -1

type stateFn func(l *Lexer) stateFn

// Lexer is a lexer for declaration specs.
//
type Lexer struct {
	input string
	start int // start of the current token
	pos   int // next read offset
	width int // width of the last rune read
	cur   rune
	state stateFn
	items []Item
}

// NewLexer returns a new lexer reading from input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex returns the next token.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = lexInit
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

// next reads the next rune.
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		l.cur = eof
		return eof
	}
	l.cur, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return l.cur
}

// backup unreads the last rune. Can be called only once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) emit(t Type, v interface{}) {
	l.items = append(l.items, Item{t, Pos(l.start), v})
}

func (l *Lexer) acceptWhile(f func(r rune) bool) {
	for r := l.next(); r != eof && f(r); r = l.next() {
	}
	l.backup()
}

func lexInit(l *Lexer) stateFn {
	l.start = l.pos
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		l.acceptWhile(unicode.IsSpace)
	case isIdentStart(r):
		return lexIdent
	case r == '[':
		l.emit(BracketOpen, "[")
	case r == ']':
		l.emit(BracketClose, "]")
	case r == ',':
		l.emit(Comma, ",")
	case '0' <= r && r <= '9':
		return lexNumber
	default:
		l.emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *Lexer) stateFn {
	l.acceptWhile(func(r rune) bool { return '0' <= r && r <= '9' })
	n, err := strconv.Atoi(l.input[l.start:l.pos])
	if err != nil {
		// out of range
		l.emit(Raw, rune(l.input[l.start]))
		return lexEOF
	}
	l.emit(Int, n)
	return nil
}

func lexIdent(l *Lexer) stateFn {
	l.acceptWhile(isIdentRune)
	l.emit(Ident, l.input[l.start:l.pos])
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) stateFn {
	l.start = l.pos
	l.emit(EOF, nil)
	return lexEOF
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// IsIdent returns true if s is a valid signal name.
//
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) || !isIdentRune(r) {
			return false
		}
	}
	return true
}
