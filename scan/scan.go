// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits a line of minimat input into tokens.
package scan // import "minimat/scan"

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  int    // The byte offset of the token in the line.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // zero value, end of line
	Error                  // error occurred; value is text of error
	Assign                 // '='
	Char                   // printable character; grab bag for punctuation
	Identifier             // alphanumeric word starting with a letter
	Number                 // floating-point number, possibly signed
	Operator               // + - * .
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Assign:     "Assign",
	Char:       "Char",
	Identifier: "Identifier",
	Number:     "Number",
	Operator:   "Operator",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	input     string // the line of text being scanned.
	lastWidth int    // size of most recent rune from next()
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner for the line.
func New(line string) *Scanner {
	return &Scanner{input: line}
}

// Next returns the next token. After the end of the line or an
// Error token it returns EOF.
func (l *Scanner) Next() Token {
	l.lastWidth = 0
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// All scans the rest of the line. It stops at the first error,
// returning the tokens before it.
func (l *Scanner) All() ([]Token, error) {
	var toks []Token
	for {
		tok := l.Next()
		switch tok.Type {
		case EOF:
			return toks, nil
		case Error:
			return toks, fmt.Errorf("%d: %s", tok.Pos, tok.Text)
		}
		toks = append(toks, tok)
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.lastWidth = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peek2 returns the next two runes ahead, but does not consume anything.
func (l *Scanner) peek2() (rune, rune) {
	pos := l.pos
	r1 := l.next()
	r2 := l.next()
	l.pos = pos
	l.lastWidth = 0
	return r1, r2
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// restart moves back to the start of the current item.
func (l *Scanner) restart() {
	l.pos = l.start
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and discards the rest of the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case r == '=':
		return l.emit(Assign)
	case r == '-' || r == '+':
		// It's an operator if it's preceded immediately (no spaces) by an operand.
		// Otherwise it could be a signed number.
		if l.start > 0 {
			rr, _ := utf8.DecodeLastRuneInString(l.input[:l.start])
			if isAlphaNumeric(rr) {
				return l.emit(Operator)
			}
		}
		if r1, r2 := l.peek2(); isDigit(r1) || r1 == '.' && isDigit(r2) {
			l.restart()
			return lexNumber
		}
		return l.emit(Operator)
	case r == '.':
		if isDigit(l.peek()) {
			l.restart()
			return lexNumber
		}
		return l.emit(Operator)
	case r == '*':
		return l.emit(Operator)
	case isDigit(r):
		l.restart()
		return lexNumber
	case unicode.IsLetter(r):
		return lexIdentifier
	case unicode.IsPrint(r):
		return l.emit(Char)
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexIdentifier scans an alphanumeric word. The first letter has been consumed.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// lexNumber scans a decimal floating-point number with optional sign,
// fraction and exponent. It must not run into a letter or another period.
func lexNumber(l *Scanner) stateFn {
	l.accept("+-")
	l.acceptRun(decimal)
	if l.accept(".") {
		l.acceptRun(decimal)
	}
	if l.accept("eE") {
		l.accept("+-")
		l.acceptRun(decimal)
	}
	if r := l.peek(); isAlphaNumeric(r) || r == '.' {
		l.next()
		return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
	}
	text := l.input[l.start:l.pos]
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return l.errorf("bad number syntax: %s", text)
	}
	return l.emit(Number)
}

const decimal = "0123456789"

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
