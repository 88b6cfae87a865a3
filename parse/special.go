// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"

	"go.uber.org/zap"
)

// special executes the keyword commands, which must make up the whole line.
// It reports whether the line was a keyword command and, if so, whether
// the session should continue.
func (p *Parser) special(line string) (handled, more bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, true, nil
	}
	switch fields[0] {
	case "quit":
		if len(fields) == 1 {
			return true, false, nil
		}
	case "clear":
		if len(fields) == 1 {
			p.context.Clear()
			p.Println("cleared: all vectors unset")
			return true, true, nil
		}
	case "list":
		if len(fields) == 1 {
			p.list()
			return true, true, nil
		}
	case "load":
		if len(fields) == 2 {
			n, err := p.context.Load(fields[1])
			if err != nil {
				return true, true, err
			}
			p.logger().Debug("loaded", zap.String("file", fields[1]), zap.Int("records", n))
			p.Printf("Loaded vectors from '%s'\n", fields[1])
			return true, true, nil
		}
	case "save":
		if len(fields) == 2 {
			if err := p.context.Save(fields[1]); err != nil {
				return true, true, err
			}
			p.Printf("Saved vectors to '%s'\n", fields[1])
			return true, true, nil
		}
	}
	return false, true, nil
}
