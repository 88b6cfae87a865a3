// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to minimat,
// suitable for wrapping in a UI. It exposes only primitive types.
// It's also handy for testing.
package mobile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"minimat/config"
	"minimat/exec"
	"minimat/parse"
	"minimat/run"
)

// Session is one calculator session with its own store.
// A Session must not be used by more than one goroutine at a time.
type Session struct {
	conf    config.Config
	context *exec.Context
}

// NewSession returns a session with an empty store.
func NewSession() *Session {
	s := new(Session)
	s.Reset()
	return s
}

// Eval evaluates the input string and returns its output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned.
func (s *Session) Eval(expr string) (result string, errors error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if err := run.Minimat(s.context, expr, stdout, stderr); err != nil {
		return stdout.String(), err
	}
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Reset clears all state to the initial value.
func (s *Session) Reset() {
	s.conf = config.Config{}
	s.context = exec.NewContext(&s.conf)
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	session *Session
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo, with a fresh session, that will scan the input text line by line.
func NewDemo(input string) *Demo {
	return &Demo{
		session: NewSession(),
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.session.Eval(d.scanner.Text())
}

// Help returns the usage message.
func Help() string {
	var b strings.Builder
	parse.Usage(&b)
	return b.String()
}
