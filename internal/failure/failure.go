// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package failure defines the errors that end work on one catalog
// entry, method, or file.
//
// A structural mismatch between two methods is not a failure; it is
// reported as a boolean or a stage and the search moves on.
package failure

import "fmt"

// A Kind classifies a failure.
type Kind int

const (
	_ Kind = iota

	// MalformedCatalogEntry: a catalog directory lacks its Recursive
	// or Iterative file. Matching against that entry is abandoned.
	MalformedCatalogEntry

	// MethodlessFile: a catalog or user file declares no method.
	MethodlessFile

	// AbsentMethodBody: a method declaration has no block body.
	// Comparison of that method pair is abandoned.
	AbsentMethodBody

	// ParseFailure: source text could not be parsed. Processing of
	// that file is abandoned.
	ParseFailure

	// ReadFailure: a source file could not be read.
	ReadFailure

	// WriteFailure: an output file could not be written. The in-memory
	// transformation is kept.
	WriteFailure
)

var kindNames = [...]string{
	MalformedCatalogEntry: "malformed catalog entry",
	MethodlessFile:        "methodless file",
	AbsentMethodBody:      "absent method body",
	ParseFailure:          "parse failure",
	ReadFailure:           "read failure",
	WriteFailure:          "write failure",
}

func (k Kind) String() string {
	if 0 < k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Error is a failure of a given kind affecting Path.
type Error struct {
	Kind Kind
	Path string // file or directory; may be empty
	Err  error  // underlying cause; may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, failure.ErrParse) matches any parse failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrMalformedCatalogEntry = &Error{Kind: MalformedCatalogEntry}
	ErrMethodlessFile        = &Error{Kind: MethodlessFile}
	ErrAbsentMethodBody      = &Error{Kind: AbsentMethodBody}
	ErrParse                 = &Error{Kind: ParseFailure}
	ErrRead                  = &Error{Kind: ReadFailure}
	ErrWrite                 = &Error{Kind: WriteFailure}
)

// New returns a failure of kind k for path caused by err.
func New(k Kind, path string, err error) error {
	return &Error{Kind: k, Path: path, Err: err}
}

// Errorf returns a failure of kind k for path with a formatted cause.
func Errorf(k Kind, path, format string, args ...any) error {
	return &Error{Kind: k, Path: path, Err: fmt.Errorf(format, args...)}
}
