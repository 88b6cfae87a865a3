// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"io"
)

const usageMessage = `usage (spaces required):
  a = 1 2 3 | a = 1,2,3 | a = 1 2 (z=0)
  c = a + b | c = a - b | c = a x b
  c = a * 2 | c = 2 * a | a . b
  list | load <file> | save <file> | clear | quit
`

// Usage writes the usage message to w.
func Usage(w io.Writer) {
	io.WriteString(w, usageMessage)
}

// Usage writes the usage message to the configured output.
func (p *Parser) Usage() {
	Usage(p.context.Config().Output())
}
