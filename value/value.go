// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the vector type of minimat and its arithmetic.
package value // import "minimat/value"

import "fmt"

// Error is the type of errors reported to the user. An Error never
// ends the session; it is printed and the next line is read.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf returns an Error formatted in the manner of fmt.Sprintf.
func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}
