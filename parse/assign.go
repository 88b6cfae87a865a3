// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

// Execution of the assignment and expression shapes.
// Every name on the line is checked before any operand is read,
// and no operand is read until all of them are known to be defined,
// so a failing command never writes to the store.

import (
	"fmt"

	"minimat/scan"
	"minimat/value"
)

// operands validates the destination name, if any, and returns the
// values of the named operands.
func (p *Parser) operands(dest string, names ...string) ([]value.Vector, error) {
	if dest != "" {
		if _, err := p.context.Index(dest); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		if _, err := p.context.Index(name); err != nil {
			return nil, err
		}
	}
	vals := make([]value.Vector, len(names))
	for i, name := range names {
		v, err := p.context.Lookup(name)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// assign stores v under name and echoes the result using the name as typed.
func (p *Parser) assign(name string, v value.Vector) error {
	if err := p.context.Assign(name, v); err != nil {
		return err
	}
	p.printNamed(name, v)
	return nil
}

func (p *Parser) printNamed(name string, v value.Vector) {
	p.Printf("%s = %s\n", name, v.Format(p.context.Config().Format()))
}

// L = n n n or L = n n, with z zero in the second form.
func (p *Parser) assignLiteral(toks []scan.Token) error {
	var xyz [3]float64
	for i, tok := range toks[2:] {
		xyz[i] = parseNumber(tok)
	}
	return p.assign(toks[0].Text, value.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]})
}

// assignBinary returns the executor for L = A op B.
func assignBinary(fn func(a, b value.Vector) value.Vector) func(*Parser, []scan.Token) error {
	return func(p *Parser, toks []scan.Token) error {
		vals, err := p.operands(toks[0].Text, toks[2].Text, toks[4].Text)
		if err != nil {
			return err
		}
		return p.assign(toks[0].Text, fn(vals[0], vals[1]))
	}
}

// assignScale returns the executor for L = A * n or L = n * A,
// given the token positions of the operand and the scalar.
func assignScale(operand, scalar int) func(*Parser, []scan.Token) error {
	return func(p *Parser, toks []scan.Token) error {
		vals, err := p.operands(toks[0].Text, toks[operand].Text)
		if err != nil {
			return err
		}
		return p.assign(toks[0].Text, value.Scale(vals[0], parseNumber(toks[scalar])))
	}
}

// binary returns the executor for A op B, which prints the result as ans.
func binary(fn func(a, b value.Vector) value.Vector) func(*Parser, []scan.Token) error {
	return func(p *Parser, toks []scan.Token) error {
		vals, err := p.operands("", toks[0].Text, toks[2].Text)
		if err != nil {
			return err
		}
		p.printNamed("ans", fn(vals[0], vals[1]))
		return nil
	}
}

// A . B prints the scalar inner product as ans.
func (p *Parser) dot(toks []scan.Token) error {
	vals, err := p.operands("", toks[0].Text, toks[2].Text)
	if err != nil {
		return err
	}
	p.Printf("ans = %s\n", fmt.Sprintf(p.context.Config().Format(), value.Dot(vals[0], vals[1])))
	return nil
}

// A alone prints the vector, or (unset).
func (p *Parser) show(toks []scan.Token) error {
	name := toks[0].Text
	defined, err := p.context.Defined(name)
	if err != nil {
		return err
	}
	if !defined {
		p.Printf("%s = (unset)\n", name)
		return nil
	}
	v, err := p.context.Lookup(name)
	if err != nil {
		return err
	}
	p.printNamed(name, v)
	return nil
}

// list prints every addressable slot in index order.
func (p *Parser) list() {
	c := p.context
	for i, slot := range c.Store().All() {
		name := c.Name(i)
		if name == "" {
			continue
		}
		if !slot.Defined {
			p.Printf("%s = (unset)\n", name)
			continue
		}
		p.printNamed(name, slot.Value)
	}
}
