// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Minimat is an interactive calculator for vectors of three floating-point
components. Vectors are named by single letters, a through z, in either
case; A and a are the same vector.

Usage:

	minimat [-h]

Each line of input is one command. Commas may be used in place of spaces.
The commands, in the order they are tried, are

	quit                  End the session. End of input does the same.
	clear                 Unset every vector.
	list                  Print every vector, or (unset).
	load file             Read vectors from a saved file.
	save file             Write the defined vectors to a file.
	a = 1 2 3             Assign a vector.
	a = 1 2               Assign a vector with zero z component.
	c = a + b             Assign the sum, difference or cross product.
	c = a - b
	c = a x b
	c = a * 2             Assign a scaled vector; the scalar may come first.
	c = 2 * a
	a + b                 Print the sum, difference, inner product or
	a - b                 cross product as ans, storing nothing.
	a . b
	a x b
	a                     Print a single vector.

Any other line, including a blank one, prints a summary of the commands.
Operands must have been assigned; otherwise the command fails with
"unset operand" and nothing changes. An operand that is not a single
letter fails with "invalid name".

Saved files hold one line per defined vector, in the form

	a,1,2,3

When loading, lines not of that form are ignored, and vectors not in the
file keep their values.

The prompt is printed only when the input is a terminal.
*/
package main
