// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package construct compares the control-flow statements of two
// methods, kind by kind.
//
// Comparison happens in two phases. The count gate (CountMismatch)
// requires both methods to contain the same number of statements of
// each kind. The analyzers (Reject) then compare the statements of
// each kind pairwise, in source order.
package construct

import (
	"fmt"

	"github.com/recursion-tools/unrecurse/java/ast"
)

// A Kind is a statement kind tracked by the count gate.
type Kind int

const (
	If Kind = iota
	For
	ForEach
	While
	DoWhile
	Switch
	Break
	Continue

	numKinds
)

var kindNames = [...]string{
	If:       "if",
	For:      "for",
	ForEach:  "foreach",
	While:    "while",
	DoWhile:  "do-while",
	Switch:   "switch",
	Break:    "break",
	Continue: "continue",
}

func (k Kind) String() string {
	if 0 <= k && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// kindOf returns the kind of s, if it is tracked.
func kindOf(s ast.Stmt) (Kind, bool) {
	switch s.(type) {
	case *ast.If:
		return If, true
	case *ast.For:
		return For, true
	case *ast.ForEach:
		return ForEach, true
	case *ast.While:
		return While, true
	case *ast.DoWhile:
		return DoWhile, true
	case *ast.Switch:
		return Switch, true
	case *ast.Break:
		return Break, true
	case *ast.Continue:
		return Continue, true
	}
	return 0, false
}

// Counts holds the number of statements of each kind in a method.
type Counts [numKinds]int

// Count counts the tracked statements in the body of m.
func Count(m *ast.Method) Counts {
	var counts Counts
	if m.Body == nil {
		return counts
	}
	for n := range ast.Preorder(m.Body) {
		if s, ok := n.(ast.Stmt); ok {
			if k, ok := kindOf(s); ok {
				counts[k]++
			}
		}
	}
	return counts
}

// CountMismatch returns the first kind whose statement count differs
// between a and b.
func CountMismatch(a, b *ast.Method) (Kind, bool) {
	ca, cb := Count(a), Count(b)
	for k := range numKinds {
		if ca[k] != cb[k] {
			return k, true
		}
	}
	return 0, false
}

// statements returns the statements of type T in the body of m, in
// source order.
func statements[T ast.Stmt](m *ast.Method) []T {
	var list []T
	if m.Body == nil {
		return nil
	}
	for n := range ast.Preorder(m.Body) {
		if s, ok := n.(T); ok {
			list = append(list, s)
		}
	}
	return list
}
