// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec holds the execution state of a minimat session: the
// configuration and the store of named vectors.
package exec // import "minimat/exec"

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"minimat/config"
	"minimat/store"
	"minimat/value"
)

// ErrUnset is reported when an operand names a slot that has no value.
const ErrUnset = value.Error("unset operand")

// Context binds vector names to the slots of a store.
// A Context belongs to one session and is not safe for concurrent use.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	config *config.Config
	store  *store.Store
}

// NewContext returns a new execution context with an empty store.
func NewContext(conf *config.Config) *Context {
	s := store.New(min(store.DefaultSlots, conf.MaxNames()))
	s.SetLogger(conf.Logger())
	return &Context{
		config: conf,
		store:  s,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

func (c *Context) Store() *store.Store {
	return c.store
}

func (c *Context) logger() *zap.Logger {
	return c.config.Logger()
}

// Index returns the store index for a vector name: a single letter,
// either case, within the configured alphabet.
func (c *Context) Index(name string) (int, error) {
	r, w := utf8.DecodeRuneInString(name)
	if w == 0 || w != len(name) || r >= utf8.RuneSelf {
		return 0, value.Errorf("invalid name '%s'", name)
	}
	r = unicode.ToLower(r)
	if r < 'a' || 'a'+rune(c.config.MaxNames()) <= r {
		return 0, value.Errorf("invalid name '%s'", name)
	}
	return int(r - 'a'), nil
}

// Name returns the lower-case name of the slot at index i,
// or the empty string if the index has no name.
func (c *Context) Name(i int) string {
	if i < 0 || i >= c.config.MaxNames() {
		return ""
	}
	return string(rune('a' + i))
}

// Lookup returns the value of the named vector, which must be defined.
func (c *Context) Lookup(name string) (value.Vector, error) {
	i, err := c.Index(name)
	if err != nil {
		return value.Zero, err
	}
	if !c.store.IsDefined(i) {
		return value.Zero, ErrUnset
	}
	return c.store.Get(i), nil
}

// Defined reports whether the named vector has a value.
// The name must be valid.
func (c *Context) Defined(name string) (bool, error) {
	i, err := c.Index(name)
	if err != nil {
		return false, err
	}
	return c.store.IsDefined(i), nil
}

// Assign binds the named vector to v. An invalid name yields a value.Error;
// any other error means the store could not grow and is fatal.
func (c *Context) Assign(name string, v value.Vector) error {
	i, err := c.Index(name)
	if err != nil {
		return err
	}
	if err := c.store.Set(i, v); err != nil {
		return fmt.Errorf("assign %s: %w", name, err)
	}
	return nil
}

// Clear unsets every vector.
func (c *Context) Clear() {
	c.store.Clear()
	c.logger().Debug("store cleared", zap.Int("slots", c.store.Len()))
}
