// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

// DefaultFormat is the verb used to print a component when no format is configured.
const DefaultFormat = "%g"

// Vector is a triple of float64 components. It is a value type;
// every operation returns a new Vector.
type Vector struct {
	X, Y, Z float64
}

// Zero is the zero vector, the value of every unset slot.
var Zero Vector

func (v Vector) String() string {
	return v.Format(DefaultFormat)
}

// Format prints each component using the fmt verb, separated by single spaces.
func (v Vector) Format(format string) string {
	if format == "" {
		format = DefaultFormat
	}
	var b strings.Builder
	for i, x := range v.Components() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, format, x)
	}
	return b.String()
}

// Components returns the components in order.
func (v Vector) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func Add(a, b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func Cross(a, b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Scale multiplies each component of a by s.
func Scale(a Vector, s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}
