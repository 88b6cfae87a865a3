// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/rand"
	"testing"
)

func randomVector(r *rand.Rand) Vector {
	return Vector{r.NormFloat64() * 100, r.NormFloat64() * 100, r.NormFloat64() * 100}
}

func TestArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	var tests = []struct {
		name string
		got  Vector
		want Vector
	}{
		{"add", Add(a, b), Vector{5, 7, 9}},
		{"sub", Sub(a, b), Vector{-3, -3, -3}},
		{"cross", Cross(a, b), Vector{-3, 6, -3}},
		{"cross x", Cross(Vector{1, 2, 3}, Vector{2, 0, 0}), Vector{0, 6, -4}},
		{"scale", Scale(a, 2), Vector{2, 4, 6}},
		{"scale zero", Scale(a, 0), Zero},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v; want %v", test.name, test.got, test.want)
		}
	}
	if d := Dot(a, b); d != 32 {
		t.Errorf("dot: got %v; want 32", d)
	}
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		a, b := randomVector(r), randomVector(r)
		if Add(a, b) != Add(b, a) {
			t.Fatalf("add not commutative for %v, %v", a, b)
		}
		if Sub(a, b) != Scale(Sub(b, a), -1) {
			t.Fatalf("sub not antisymmetric for %v, %v", a, b)
		}
		if Dot(a, b) != Dot(b, a) {
			t.Fatalf("dot not commutative for %v, %v", a, b)
		}
		if Cross(a, b) != Scale(Cross(b, a), -1) {
			t.Fatalf("cross not anticommutative for %v, %v", a, b)
		}
		if Cross(a, a) != Zero {
			t.Fatalf("cross(a, a) = %v for %v", Cross(a, a), a)
		}
	}
}

func TestFormat(t *testing.T) {
	var tests = []struct {
		v      Vector
		format string
		want   string
	}{
		{Vector{5, 7, 9}, "", "5 7 9"},
		{Vector{0, 6, -4}, "%g", "0 6 -4"},
		{Vector{0.5, 1e21, -1.25}, "", "0.5 1e+21 -1.25"},
		{Vector{1, 2, 3}, "%.2f", "1.00 2.00 3.00"},
	}
	for _, test := range tests {
		if got := test.v.Format(test.format); got != test.want {
			t.Errorf("%v.Format(%q) = %q; want %q", test.v.Components(), test.format, got, test.want)
		}
	}
}
