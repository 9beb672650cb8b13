// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for handling errors in
// one line (logging or panicking) and re-exports the standard
// library errors functions so that only one errors package is needed.
package errors

import (
	"log/slog"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns the value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
