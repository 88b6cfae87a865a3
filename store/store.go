// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store holds the named vectors of a session. Slots are
// addressed by small non-negative integers; each holds a vector and
// a flag recording whether it has been assigned since creation or the
// last Clear.
package store // import "minimat/store"

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"minimat/value"
)

// DefaultSlots is the number of addressable slots in a new store.
const DefaultSlots = 10

// MaxSlots bounds the capacity of a store. Growing beyond it fails with ErrCapacity.
const MaxSlots = 1 << 24

// ErrCapacity is returned by Set when the store cannot grow to hold the index.
var ErrCapacity = errors.New("store: capacity exhausted")

// Slot is one storage location.
type Slot struct {
	Value   value.Vector
	Defined bool
}

// Store is a growable sequence of slots. The zero value is an empty
// store with no addressable slots.
type Store struct {
	slots []Slot // len(slots) is the capacity; only slots[:n] are addressable.
	n     int
	log   *zap.Logger
}

// New returns a store with the given number of addressable, unset slots.
func New(initial int) *Store {
	if initial < 0 {
		initial = 0
	}
	return &Store{
		slots: make([]Slot, initial),
		n:     initial,
		log:   zap.NewNop(),
	}
}

// SetLogger attaches a logger for growth diagnostics.
func (s *Store) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

func (s *Store) logger() *zap.Logger {
	if s.log == nil {
		return zap.NewNop()
	}
	return s.log
}

// Len returns the number of addressable slots.
func (s *Store) Len() int {
	return s.n
}

// Cap returns the number of allocated slots.
func (s *Store) Cap() int {
	return len(s.slots)
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("store: negative index %d", i))
	}
}

// Get returns the vector in slot i. Slots never assigned, including
// those beyond Len, hold the zero vector.
func (s *Store) Get(i int) value.Vector {
	checkIndex(i)
	if i >= s.n {
		return value.Zero
	}
	return s.slots[i].Value
}

// IsDefined reports whether slot i has been set since creation or the last Clear.
func (s *Store) IsDefined(i int) bool {
	checkIndex(i)
	return i < s.n && s.slots[i].Defined
}

// Set stores v in slot i and marks it defined, growing the store if needed.
// The store is unchanged if the growth fails.
func (s *Store) Set(i int, v value.Vector) error {
	checkIndex(i)
	if err := s.grow(i); err != nil {
		return err
	}
	s.slots[i] = Slot{Value: v, Defined: true}
	if i >= s.n {
		s.n = i + 1
	}
	return nil
}

// grow makes slot i allocated. Capacity at least doubles on each growth.
func (s *Store) grow(i int) error {
	if i < len(s.slots) {
		return nil
	}
	if i >= MaxSlots {
		return fmt.Errorf("slot %d: %w", i, ErrCapacity)
	}
	newCap := max(2*len(s.slots), DefaultSlots)
	for newCap <= i {
		newCap *= 2
	}
	newCap = min(newCap, MaxSlots)
	slots := make([]Slot, newCap)
	copy(slots, s.slots)
	s.logger().Debug("store grow", zap.Int("from", len(s.slots)), zap.Int("to", newCap), zap.Int("index", i))
	s.slots = slots
	return nil
}

// Clear unsets every slot. The number of addressable slots and the
// capacity are unchanged.
func (s *Store) Clear() {
	clear(s.slots)
}

// All iterates over the addressable slots in index order.
func (s *Store) All() iter.Seq2[int, Slot] {
	return func(yield func(int, Slot) bool) {
		for i := range s.n {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}

// Defined iterates over the defined slots in index order.
func (s *Store) Defined() iter.Seq2[int, value.Vector] {
	return func(yield func(int, value.Vector) bool) {
		for i, slot := range s.All() {
			if slot.Defined && !yield(i, slot.Value) {
				return
			}
		}
	}
}
