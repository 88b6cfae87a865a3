// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for minimat.
// It is factored out of main so it can be used for tests.
package run // import "minimat/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"minimat/config"
	"minimat/exec"
	"minimat/parse"
	"minimat/value"
)

// interpreter executes one line of input; *parse.Parser is the real one.
type interpreter interface {
	Line(line string) (bool, error)
}

// Run reads lines from input and executes them until quit or EOF.
// Errors in individual commands are reported to the configured error
// output and do not stop the loop. The returned error is non-nil only
// for a failure reading input or a fatal execution error, such as the
// store being unable to grow.
func Run(p *parse.Parser, input io.Reader, interactive bool) error {
	return loop(p.Context().Config(), p, input, interactive)
}

func loop(conf *config.Config, p interpreter, input io.Reader, interactive bool) error {
	writer := conf.Output()
	reader := bufio.NewReader(input)
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if interactive {
				fmt.Fprintln(writer)
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		more, lerr := p.Line(line)
		if lerr != nil {
			var verr value.Error
			if !errors.As(lerr, &verr) {
				return lerr
			}
			fmt.Fprintf(conf.ErrOutput(), "error: %s\n", lerr)
		}
		if !more {
			return nil
		}
	}
}

// Minimat runs the input text non-interactively on the context, with output
// to stdout and errors to stderr.
func Minimat(context *exec.Context, input string, stdout, stderr io.Writer) error {
	conf := context.Config()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	return Run(parse.NewParser(context), strings.NewReader(input), false)
}
