// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse interprets lines of minimat input. Each line is matched
// against a fixed list of command shapes; the first shape that matches
// is executed against the context.
package parse // import "minimat/parse"

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"minimat/exec"
	"minimat/scan"
	"minimat/value"
)

// Parser stores the state for the minimat interpreter.
// All persistent state lives in the context.
type Parser struct {
	context *exec.Context
}

// NewParser returns a new parser that executes lines against the context.
func NewParser(context *exec.Context) *Parser {
	return &Parser{
		context: context,
	}
}

// Context returns the parser's execution context.
func (p *Parser) Context() *exec.Context {
	return p.context
}

// Printf formats the args and writes them to the configured output writer.
func (p *Parser) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.context.Config().Output(), format, args...)
}

// Println prints the args and writes them to the configured output writer.
func (p *Parser) Println(args ...interface{}) {
	fmt.Fprintln(p.context.Config().Output(), args...)
}

func (p *Parser) logger() *zap.Logger {
	return p.context.Config().Logger()
}

// Line executes one line of input. The boolean reports whether the
// session should continue; it is false only after quit.
// An error of type value.Error describes a command that failed and
// left the store unchanged. Any other error is fatal.
//
// Commas are equivalent to spaces. Shapes are tried in order:
//
//	quit | clear | list | load file | save file
//	L = n n n
//	L = n n
//	L = A + B | L = A - B | L = A x B
//	L = A * n | L = n * A
//	A + B | A - B | A . B | A x B
//	A
//
// Anything else prints the usage message.
func (p *Parser) Line(line string) (bool, error) {
	line = strings.ReplaceAll(line, ",", " ")
	if handled, more, err := p.special(line); handled {
		return more, err
	}
	toks, err := scan.New(line).All()
	if err != nil {
		p.logger().Debug("scan", zap.String("line", line), zap.Error(err))
		p.Usage()
		return true, nil
	}
	if p.context.Config().Debug("tokens") {
		for _, tok := range toks {
			p.Println(tok)
		}
	}
	for _, s := range shapes {
		if s.match(toks) {
			p.logger().Debug("dispatch", zap.String("shape", s.name))
			return true, s.exec(p, toks)
		}
	}
	p.Usage()
	return true, nil
}

// elem is one element of a shape's pattern.
type elem struct {
	kind kind
	text string // for kind word, the required text
}

type kind int

const (
	name   kind = iota // a one-character operand
	number             // a numeric literal
	assign             // '='
	word               // an operator or keyword spelled by text
)

var (
	nameElem   = elem{kind: name}
	numberElem = elem{kind: number}
	assignElem = elem{kind: assign}
)

func op(text string) elem {
	return elem{kind: word, text: text}
}

func (e elem) match(tok scan.Token) bool {
	switch e.kind {
	case name:
		switch tok.Type {
		case scan.Identifier, scan.Char, scan.Number:
			return utf8.RuneCountInString(tok.Text) == 1
		}
	case number:
		return tok.Type == scan.Number
	case assign:
		return tok.Type == scan.Assign
	case word:
		return (tok.Type == scan.Operator || tok.Type == scan.Identifier) && tok.Text == e.text
	}
	return false
}

// shape is a form of command and the function that executes it.
// The function is called with the tokens of the line, which match
// the pattern one for one.
type shape struct {
	name    string
	pattern []elem
	exec    func(p *Parser, toks []scan.Token) error
}

func (s *shape) match(toks []scan.Token) bool {
	if len(toks) != len(s.pattern) {
		return false
	}
	for i, e := range s.pattern {
		if !e.match(toks[i]) {
			return false
		}
	}
	return true
}

// shapes lists the command forms in priority order; the first match wins.
// The keyword commands come earlier still, in special.
var shapes []shape

func init() {
	shapes = []shape{
		{"literal3", []elem{nameElem, assignElem, numberElem, numberElem, numberElem}, (*Parser).assignLiteral},
		{"literal2", []elem{nameElem, assignElem, numberElem, numberElem}, (*Parser).assignLiteral},
		{"assign add", []elem{nameElem, assignElem, nameElem, op("+"), nameElem}, assignBinary(value.Add)},
		{"assign sub", []elem{nameElem, assignElem, nameElem, op("-"), nameElem}, assignBinary(value.Sub)},
		{"assign cross", []elem{nameElem, assignElem, nameElem, op("x"), nameElem}, assignBinary(value.Cross)},
		{"assign scale", []elem{nameElem, assignElem, nameElem, op("*"), numberElem}, assignScale(2, 4)},
		{"assign scale left", []elem{nameElem, assignElem, numberElem, op("*"), nameElem}, assignScale(4, 2)},
		{"add", []elem{nameElem, op("+"), nameElem}, binary(value.Add)},
		{"sub", []elem{nameElem, op("-"), nameElem}, binary(value.Sub)},
		{"dot", []elem{nameElem, op("."), nameElem}, (*Parser).dot},
		{"cross", []elem{nameElem, op("x"), nameElem}, binary(value.Cross)},
		{"show", []elem{nameElem}, (*Parser).show},
	}
}

// parseNumber returns the value of a Number token. The scanner has
// already checked the syntax.
func parseNumber(tok scan.Token) float64 {
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		panic(fmt.Sprintf("internal error: bad number %q: %v", tok.Text, err))
	}
	return f
}
