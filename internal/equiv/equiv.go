// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equiv decides whether expressions drawn from two different
// methods denote the same computation, up to a consistent renaming of
// parameters and locals.
//
// Names correspond when they resolve to the same kind of binding:
// parameters at the same position, locals of the same type whose
// initializers are themselves equivalent, or unbound names with
// identical text. Everything else is compared structurally; there is
// no equivalence by default.
package equiv

import (
	"fmt"
	"strings"

	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

// A Comparer compares expressions of method A against expressions of
// method B. The zero value is not usable; use NewComparer.
type Comparer struct {
	a, b *ast.Method

	// active holds the local pairs whose initializers are being
	// compared, to cut cycles.
	active map[[2]*ast.VarDecl]bool
}

// NewComparer returns a Comparer whose left operands come from a and
// right operands from b.
func NewComparer(a, b *ast.Method) *Comparer {
	return &Comparer{a: a, b: b, active: make(map[[2]*ast.VarDecl]bool)}
}

// Equivalent reports whether x in method a and y in method b denote
// the same computation.
func Equivalent(a, b *ast.Method, x, y ast.Expr) bool {
	return NewComparer(a, b).Expr(x, y)
}

// EquivalentText is like Equivalent but parses its operands first.
func EquivalentText(a, b *ast.Method, x, y string) bool {
	return NewComparer(a, b).Text(x, y)
}

// Expr reports whether x (from A) and y (from B) are equivalent.
func (c *Comparer) Expr(x, y ast.Expr) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	x, y = Unparen(x), Unparen(y)

	switch x := x.(type) {
	case *ast.Name:
		y, ok := y.(*ast.Name)
		return ok && c.Names(x.ID, y.ID)

	case *ast.ArrayAccess:
		y, ok := y.(*ast.ArrayAccess)
		return ok && c.Expr(x.X, y.X) && c.Expr(x.Index, y.Index)

	case *ast.FieldAccess:
		y, ok := y.(*ast.FieldAccess)
		return ok && c.Expr(x.X, y.X) && c.Names(x.Field, y.Field)

	case *ast.Call:
		y, ok := y.(*ast.Call)
		if !ok || (x.X == nil) != (y.X == nil) {
			return false
		}
		if x.X != nil && !c.Expr(x.X, y.X) {
			return false
		}
		if x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !c.Expr(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true

	case *ast.Binary:
		y, ok := y.(*ast.Binary)
		return ok && x.Op == y.Op && c.Expr(x.X, y.X) && c.Expr(x.Y, y.Y)

	case *ast.Unary:
		y, ok := y.(*ast.Unary)
		return ok && x.Op == y.Op && x.Postfix == y.Postfix && c.Expr(x.X, y.X)

	case *ast.Assign:
		y, ok := y.(*ast.Assign)
		return ok && x.Op == y.Op && c.Expr(x.X, y.X) && c.Expr(x.Y, y.Y)

	case *ast.Literal:
		return Classify(y) == Value && x.Value == ast.Format(y)

	case *ast.Opaque:
		switch y := y.(type) {
		case *ast.Literal:
			return x.Text == y.Value
		case *ast.Opaque:
			return c.opaque(x, y)
		}
		return false
	}
	return false
}

// opaque compares two uninterpreted expressions. They must be of the
// same kind with children corresponding pairwise; only leaves, such as
// type names, are compared by text.
func (c *Comparer) opaque(x, y *ast.Opaque) bool {
	if x.Kind != y.Kind || len(x.Nodes) != len(y.Nodes) {
		return false
	}
	if len(x.Nodes) == 0 {
		return x.Text == y.Text
	}
	for i := range x.Nodes {
		if !c.node(x.Nodes[i], y.Nodes[i]) {
			return false
		}
	}
	return true
}

// node compares two children of opaque expressions. Statements, as in
// lambda bodies, must have the same shape and equivalent expressions.
func (c *Comparer) node(x, y ast.Node) bool {
	if ex, ok := x.(ast.Expr); ok {
		ey, ok := y.(ast.Expr)
		return ok && c.Expr(ex, ey)
	}
	sx, sy := shape(x), shape(y)
	if len(sx) != len(sy) {
		return false
	}
	for i := range sx {
		switch ix := sx[i].(type) {
		case string:
			if iy, ok := sy[i].(string); !ok || ix != iy {
				return false
			}
		case ast.Expr:
			if iy, ok := sy[i].(ast.Expr); !ok || !c.Expr(ix, iy) {
				return false
			}
		}
	}
	return true
}

// shape flattens n into the preorder sequence of its non-expression
// nodes, each described by its type and arity, and its outermost
// expressions. Declared names are omitted: references to them are
// resolved when the expressions are compared.
func shape(n ast.Node) []any {
	var items []any
	ast.Inspect(n, func(n ast.Node) bool {
		if n == nil {
			items = append(items, "end")
			return false
		}
		var desc string
		switch n := n.(type) {
		case ast.Expr:
			items = append(items, n)
			return false
		case *ast.Block:
			desc = fmt.Sprint(len(n.List))
		case *ast.LocalVar:
			desc = fmt.Sprint(len(n.Vars))
		case *ast.VarDecl:
			desc = fmt.Sprintf("%s %t", n.Type, n.Value != nil)
		case *ast.If:
			desc = fmt.Sprint(n.Else != nil)
		case *ast.For:
			desc = fmt.Sprint(n.Decl != nil, len(n.Init), n.Cond != nil, len(n.Update))
		case *ast.Switch:
			desc = fmt.Sprint(len(n.Entries))
		case *ast.SwitchEntry:
			desc = fmt.Sprint(len(n.Labels), len(n.Body))
		case *ast.Break:
			desc = n.Label
		case *ast.Continue:
			desc = n.Label
		case *ast.Return:
			desc = fmt.Sprint(n.Result != nil)
		case *ast.Other:
			desc = fmt.Sprintf("%s %d", n.Kind, len(n.Nodes))
		}
		items = append(items, fmt.Sprintf("%T %s", n, desc))
		return true
	})
	return items
}

// Names reports whether name x in A and name y in B correspond.
func (c *Comparer) Names(x, y string) bool {
	bx, by := Resolve(c.a, x), Resolve(c.b, y)
	if bx.Kind != by.Kind {
		return false
	}
	switch bx.Kind {
	case Parameter:
		return bx.Index == by.Index
	case Local:
		return bx.Type == by.Type && c.locals(bx.Decl, by.Decl)
	case Unbound:
		return x == y
	}
	return false
}

// locals compares the initializers of two local declarations.
func (c *Comparer) locals(x, y *ast.VarDecl) bool {
	key := [2]*ast.VarDecl{x, y}
	if c.active[key] {
		return true
	}
	c.active[key] = true
	defer delete(c.active, key)
	return c.Expr(x.Value, y.Value)
}

// Text reports whether the expressions x (from A) and y (from B) are
// equivalent. If neither parses, they are equivalent only if their
// texts agree up to whitespace; if just one parses, they are not.
func (c *Comparer) Text(x, y string) bool {
	ex, errx := parser.ParseExpr(x)
	ey, erry := parser.ParseExpr(y)
	switch {
	case errx != nil && erry != nil:
		return compact(x) == compact(y)
	case errx != nil || erry != nil:
		return false
	}
	return c.Expr(ex, ey)
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
