// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recursion finds the self-recursive call of a method.
package recursion

import (
	"github.com/recursion-tools/unrecurse/internal/equiv"
	"github.com/recursion-tools/unrecurse/java/ast"
)

// FindCall returns the first call in the body of m, in source order,
// that invokes m itself, or nil if there is none.
//
// A call invokes m if it is unqualified or qualified by this, names m,
// and passes one argument per parameter whose type, as inferred by
// ArgType, is the declared type of that parameter.
func FindCall(m *ast.Method) *ast.Call {
	if m.Body == nil {
		return nil
	}
	for n := range ast.Preorder(m.Body) {
		call, ok := n.(*ast.Call)
		if !ok || call.Name != m.Name || len(call.Args) != len(m.Params) {
			continue
		}
		if call.X != nil && !isThis(call.X) {
			continue
		}
		if argumentsMatch(m, call) {
			return call
		}
	}
	return nil
}

// IsRecursive reports whether m calls itself.
func IsRecursive(m *ast.Method) bool {
	return FindCall(m) != nil
}

func isThis(x ast.Expr) bool {
	lit, ok := equiv.Unparen(x).(*ast.Literal)
	return ok && lit.Value == "this"
}

func argumentsMatch(m *ast.Method, call *ast.Call) bool {
	for i, arg := range call.Args {
		typ, ok := ArgType(m, arg)
		if !ok || typ != m.Params[i].Type {
			return false
		}
	}
	return true
}

// ArgType infers the type of an argument passed within m from the
// name it starts with: a parameter or local of m, looked through
// parentheses and, for a binary expression, its left operand (or its
// right operand if the left has no type). Arguments of any other form,
// including literals, have no type.
func ArgType(m *ast.Method, arg ast.Expr) (string, bool) {
	switch x := equiv.Unparen(arg).(type) {
	case *ast.Name:
		b := equiv.Resolve(m, x.ID)
		if b.Kind == equiv.Unbound {
			return "", false
		}
		return b.Type, true

	case *ast.Binary:
		if typ, ok := ArgType(m, x.X); ok {
			return typ, true
		}
		return ArgType(m, x.Y)
	}
	return "", false
}

// ArgumentsDiffer reports whether the recursive calls of user and tpl
// pass non-equivalent arguments. A method with no recursive call
// differs from every other.
func ArgumentsDiffer(user, tpl *ast.Method) bool {
	cu, ct := FindCall(user), FindCall(tpl)
	if cu == nil || ct == nil || len(cu.Args) != len(ct.Args) {
		return true
	}
	c := equiv.NewComparer(user, tpl)
	for i := range cu.Args {
		if !c.Expr(cu.Args[i], ct.Args[i]) {
			return true
		}
	}
	return false
}
