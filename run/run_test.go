// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"go.uber.org/goleak"

	"minimat/config"
	"minimat/exec"
	"minimat/parse"
	"minimat/store"
	"minimat/value"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMinimat(t *testing.T) {
	var tests = []struct {
		input  string
		output string
		errors string
	}{
		{"", "", ""},
		{"a = 1 2 3\nb = 4,5,6\nc = a + b\n", "a = 1 2 3\nb = 4 5 6\nc = 5 7 9\n", ""},
		{"a = 1 2 3\nb = 2 0 0\na x b", "a = 1 2 3\nb = 2 0 0\nans = 0 6 -4\n", ""},
		{"c = a + b\nc\n", "c = (unset)\n", "error: unset operand\n"},
		{"a = 1 2 3\nquit\nb = 1 1 1\n", "a = 1 2 3\n", ""},
		{"c = a + b\n1 = 2 3\na = 1 1 1\n", "a = 1 1 1\n", "error: unset operand\nerror: invalid name '1'\n"},
	}
	for _, test := range tests {
		var conf config.Config
		var stdout, stderr bytes.Buffer
		err := Minimat(exec.NewContext(&conf), test.input, &stdout, &stderr)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if stdout.String() != test.output {
			t.Errorf("%q: output\ngot  %q\nwant %q", test.input, stdout.String(), test.output)
		}
		if stderr.String() != test.errors {
			t.Errorf("%q: errors\ngot  %q\nwant %q", test.input, stderr.String(), test.errors)
		}
	}
}

func TestInteractivePrompt(t *testing.T) {
	var conf config.Config
	var stdout bytes.Buffer
	conf.SetOutput(&stdout)
	conf.SetPrompt("minimat> ")
	p := parse.NewParser(exec.NewContext(&conf))
	if err := Run(p, strings.NewReader("a = 1 2 3\n"), true); err != nil {
		t.Fatal(err)
	}
	want := "minimat> a = 1 2 3\nminimat> \n"
	if stdout.String() != want {
		t.Errorf("got %q; want %q", stdout.String(), want)
	}
}

func TestReadError(t *testing.T) {
	var conf config.Config
	conf.SetOutput(new(bytes.Buffer))
	p := parse.NewParser(exec.NewContext(&conf))
	errRead := errors.New("read failed")
	err := Run(p, iotest.ErrReader(errRead), false)
	if !errors.Is(err, errRead) {
		t.Errorf("got %v; want %v", err, errRead)
	}
}

func TestLongLine(t *testing.T) {
	var conf config.Config
	var stdout, stderr bytes.Buffer
	input := strings.Repeat("z", 70000) + "\na = 1 2 3\n"
	if err := Minimat(exec.NewContext(&conf), input, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	parse.Usage(&want)
	want.WriteString("a = 1 2 3\n")
	if stdout.String() != want.String() {
		t.Errorf("output\ngot  %q\nwant %q", stdout.String(), want.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected errors %q", stderr.String())
	}
}

func TestCRLF(t *testing.T) {
	var conf config.Config
	var stdout, stderr bytes.Buffer
	if err := Minimat(exec.NewContext(&conf), "a = 1 2 3\r\na\r\n", &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	want := "a = 1 2 3\na = 1 2 3\n"
	if stdout.String() != want {
		t.Errorf("got %q; want %q", stdout.String(), want)
	}
}

// script is an interpreter that returns a fixed result for each line.
type script struct {
	results map[string]error
	lines   []string
}

func (s *script) Line(line string) (bool, error) {
	s.lines = append(s.lines, line)
	return true, s.results[line]
}

func TestFatalError(t *testing.T) {
	var conf config.Config
	var stderr bytes.Buffer
	conf.SetOutput(new(bytes.Buffer))
	conf.SetErrOutput(&stderr)
	s := &script{results: map[string]error{
		"bad":  value.Error("unset operand"),
		"full": fmt.Errorf("assign z: %w", store.ErrCapacity),
	}}
	err := loop(&conf, s, strings.NewReader("bad\nok\nfull\nafter\n"), false)
	if !errors.Is(err, store.ErrCapacity) {
		t.Fatalf("got %v; want %v", err, store.ErrCapacity)
	}
	if got, want := strings.Join(s.lines, " "), "bad ok full"; got != want {
		t.Errorf("ran %q; want %q", got, want)
	}
	if got, want := stderr.String(), "error: unset operand\n"; got != want {
		t.Errorf("errors %q; want %q", got, want)
	}
}
