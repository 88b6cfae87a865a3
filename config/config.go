// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a minimat session.
// The zero value is ready to use.
package config // import "minimat/config"

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Alphabet is the number of letters usable as vector names.
const Alphabet = 26

type Config struct {
	prompt    string
	format    string
	maxNames  int
	output    io.Writer
	errOutput io.Writer
	logger    *zap.Logger
	debug     map[string]bool
}

// Format returns the fmt verb used to print vector components.
func (c *Config) Format() string {
	if c.format == "" {
		return "%g"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// MaxNames returns how many letters, starting at a, are valid names.
func (c *Config) MaxNames() int {
	if c.maxNames <= 0 || c.maxNames > Alphabet {
		return Alphabet
	}
	return c.maxNames
}

// SetMaxNames restricts the valid names to the first n letters.
// Zero restores the full alphabet.
func (c *Config) SetMaxNames(n int) {
	c.maxNames = n
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer for results. The default is os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer for error messages. The default is os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

// Logger returns the diagnostic logger. It discards everything unless set.
func (c *Config) Logger() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

func (c *Config) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}
