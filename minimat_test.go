// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"minimat/config"
	"minimat/exec"
	"minimat/parse"
	"minimat/run"
)

// TestAll runs the scripts in testdata. Each example is a group of input
// lines followed by the expected output, indented by a tab, with error
// messages appearing in line. Every example starts with a fresh session.
func TestAll(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("testdata", "*.mm"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no test scripts")
	}
	for _, path := range names {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			for lineNum := 1; len(lines) > 0; {
				input, output, length := getText(lines)
				if input == nil {
					break
				}
				runTest(t, path, lineNum, input, output)
				lines = lines[length:]
				lineNum += length
			}
		})
	}
}

func runTest(t *testing.T, name string, lineNum int, input, output []string) {
	var conf config.Config
	in := strings.Join(input, "\n")
	out := new(bytes.Buffer)
	if err := run.Minimat(exec.NewContext(&conf), in, out, out); err != nil {
		t.Fatalf("\nexecution failure (%s) at %s:%d:\n%s", err, name, lineNum, in)
	}
	result := strings.Split(out.String(), "\n")
	if !equal(result, output) {
		t.Errorf("\n%s:%d:\n\t%s\ngot:\n\t%s\nwant:\n\t%s",
			name, lineNum,
			strings.Join(input, "\n\t"),
			strings.Join(result, "\n\t"),
			strings.Join(output, "\n\t"))
	}
}

func equal(a, b []string) bool {
	// Split leaves an empty trailing line.
	if len(a) > 0 && a[len(a)-1] == "" {
		a = a[:len(a)-1]
	}
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if strings.TrimSpace(s) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

func getText(lines []string) (input, output []string, length int) {
	// Skip blank and initial comment lines.
	for _, line := range lines {
		if len(line) > 0 && !strings.HasPrefix(line, "#") {
			break
		}
		length++
	}

	// Input ends at tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "\t") {
			break
		}
		input = append(input, line)
		length++
	}

	// Output ends at non-blank, non-tab-indented line.
	for _, line := range lines[length:] {
		line = strings.TrimRight(line, " \t")
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		output = append(output, strings.TrimPrefix(line, "\t"))
		length++
	}
	for len(output) > 0 && output[len(output)-1] == "" {
		output = output[:len(output)-1]
	}

	return // Will return nil if no more tests exist.
}

func TestHelpFlag(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		cmd := newRootCmd(zap.NewNop(), strings.NewReader("a = 1 2 3\n"), false)
		out := new(bytes.Buffer)
		cmd.SetOut(out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		var usage bytes.Buffer
		parse.Usage(&usage)
		if out.String() != usage.String() {
			t.Errorf("%v: got %q; want usage", args, out)
		}
	}
}

func TestRootCmd(t *testing.T) {
	var tests = []struct {
		args        []string
		interactive bool
		output      string
	}{
		{[]string{}, false, "a = 1 2 3\nans = 14\n"},
		{[]string{"extra", "-q"}, false, "a = 1 2 3\nans = 14\n"},
		{[]string{}, true, "minimat> a = 1 2 3\nminimat> ans = 14\nminimat> \n"},
	}
	for _, test := range tests {
		cmd := newRootCmd(zap.NewNop(), strings.NewReader("a = 1 2 3\na . a\n"), test.interactive)
		out := new(bytes.Buffer)
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs(test.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if out.String() != test.output {
			t.Errorf("%v: got %q; want %q", test.args, out, test.output)
		}
	}
}
