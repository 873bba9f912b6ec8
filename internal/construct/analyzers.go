// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	"github.com/recursion-tools/unrecurse/internal/equiv"
	"github.com/recursion-tools/unrecurse/java/ast"
)

// An Analyzer compares the statements of one kind.
type Analyzer struct {
	Kind Kind

	// Differ reports whether the statements of Kind in a and b
	// disagree in a way that blocks conversion. It is called only
	// when both methods contain at least one such statement.
	Differ func(c *equiv.Comparer, a, b *ast.Method) bool
}

// Analyzers lists the analyzers in the order Reject applies them.
var Analyzers = [...]Analyzer{
	{If, differIf},
	{While, differWhile},
	{DoWhile, differDoWhile},
	{ForEach, differForEach},
	{Switch, differSwitch},
	{For, differFor},
}

// Reject applies each analyzer to a and b and returns the kind of the
// first one that reports a disagreement.
func Reject(a, b *ast.Method) (Kind, bool) {
	c := equiv.NewComparer(a, b)
	for _, an := range Analyzers {
		if an.Differ(c, a, b) {
			return an.Kind, true
		}
	}
	return 0, false
}

// anyDiffer reports whether some pair of xs and ys, matched by
// position, differs. Lists that are empty on either side are not
// compared; lists of unequal length differ.
func anyDiffer[T any](xs, ys []T, differ func(x, y T) bool) bool {
	if len(xs) == 0 || len(ys) == 0 {
		return false
	}
	if len(xs) != len(ys) {
		return true
	}
	for i := range xs {
		if differ(xs[i], ys[i]) {
			return true
		}
	}
	return false
}

func differIf(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.If](a), statements[*ast.If](b), func(x, y *ast.If) bool {
		return !c.Condition(x.Cond, y.Cond)
	})
}

func differWhile(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.While](a), statements[*ast.While](b), func(x, y *ast.While) bool {
		return !c.Condition(x.Cond, y.Cond)
	})
}

func differDoWhile(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.DoWhile](a), statements[*ast.DoWhile](b), func(x, y *ast.DoWhile) bool {
		return !c.Condition(x.Cond, y.Cond)
	})
}

// differForEach compares the iterables of two enhanced for loops only
// when their element types differ.
func differForEach(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.ForEach](a), statements[*ast.ForEach](b), func(x, y *ast.ForEach) bool {
		if x.Var.Type == y.Var.Type {
			return false
		}
		return !c.Expr(x.X, y.X)
	})
}

func differSwitch(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.Switch](a), statements[*ast.Switch](b), func(x, y *ast.Switch) bool {
		return !sameSwitch(c, x, y)
	})
}

// sameSwitch reports whether two switches have equivalent selectors
// and case labels. A trailing default entry must be present in both or
// neither; when present it is not compared further.
func sameSwitch(c *equiv.Comparer, x, y *ast.Switch) bool {
	if !c.Expr(x.Tag, y.Tag) || len(x.Entries) != len(y.Entries) {
		return false
	}
	n := len(x.Entries)
	if n == 0 {
		return true
	}
	defX, defY := x.Entries[n-1].IsDefault(), y.Entries[n-1].IsDefault()
	if defX != defY {
		return false
	}
	if defX {
		n--
	}
	for i := range n {
		lx, ly := x.Entries[i].Labels, y.Entries[i].Labels
		if len(lx) != len(ly) {
			return false
		}
		for j := range lx {
			if !c.Expr(lx[j], ly[j]) {
				return false
			}
		}
	}
	return true
}

func differFor(c *equiv.Comparer, a, b *ast.Method) bool {
	return anyDiffer(statements[*ast.For](a), statements[*ast.For](b), func(x, y *ast.For) bool {
		return !sameFor(c, x, y)
	})
}

// sameFor compares the three clauses of two basic for loops. A clause
// present on one side must be present on the other.
func sameFor(c *equiv.Comparer, x, y *ast.For) bool {
	initX, initY := initValues(x), initValues(y)
	if (len(initX) == 0) != (len(initY) == 0) ||
		(x.Cond == nil) != (y.Cond == nil) ||
		(len(x.Update) == 0) != (len(y.Update) == 0) {
		return false
	}

	if x.Cond != nil && !c.Condition(x.Cond, y.Cond) {
		return false
	}

	if len(initX) != len(initY) {
		return false
	}
	for i := range initX {
		if !c.Expr(initX[i], initY[i]) {
			return false
		}
	}

	if len(x.Update) != len(y.Update) {
		return false
	}
	for i := range x.Update {
		if !sameUpdate(c, x.Update[i], y.Update[i]) {
			return false
		}
	}
	return true
}

// initValues returns the values assigned by the initialization clause
// of a for loop, one per declarator or expression. A declarator
// without initializer contributes nil.
func initValues(s *ast.For) []ast.Expr {
	var values []ast.Expr
	if s.Decl != nil {
		for _, v := range s.Decl.Vars {
			values = append(values, v.Value)
		}
	}
	for _, x := range s.Init {
		if assign, ok := equiv.Unparen(x).(*ast.Assign); ok {
			values = append(values, assign.Y)
		} else {
			values = append(values, x)
		}
	}
	return values
}

// sameUpdate compares two update expressions: both increments or
// decrements in the same position, both assignments with the same
// operator, or otherwise equivalent expressions.
func sameUpdate(c *equiv.Comparer, x, y ast.Expr) bool {
	x, y = equiv.Unparen(x), equiv.Unparen(y)
	switch x := x.(type) {
	case *ast.Unary:
		y, ok := y.(*ast.Unary)
		return ok && x.Op == y.Op && x.Postfix == y.Postfix && c.Expr(x.X, y.X)
	case *ast.Assign:
		y, ok := y.(*ast.Assign)
		return ok && x.Op == y.Op && c.Expr(x.X, y.X) && c.Expr(x.Y, y.Y)
	}
	return c.Expr(x, y)
}
