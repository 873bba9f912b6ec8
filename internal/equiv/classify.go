// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"

	"github.com/recursion-tools/unrecurse/java/ast"
)

// A Variant is the shape of an expression as seen by the comparer.
type Variant int

const (
	Value       Variant = iota // literal or other expression, compared by text
	NameRef                    // simple name
	ArrayAccess                // a[i]
	FieldAccess                // x.f
	MethodCall                 // [x.]f(args)
	BinaryOp                   // x op y
	UnaryOp                    // op x, x op
	AssignOp                   // x op= y
)

var variantNames = [...]string{
	Value:       "Value",
	NameRef:     "NameRef",
	ArrayAccess: "ArrayAccess",
	FieldAccess: "FieldAccess",
	MethodCall:  "MethodCall",
	BinaryOp:    "BinaryOp",
	UnaryOp:     "UnaryOp",
	AssignOp:    "AssignOp",
}

func (v Variant) String() string {
	if 0 <= v && int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Classify returns the variant of x. Parentheses are transparent.
func Classify(x ast.Expr) Variant {
	switch x := Unparen(x).(type) {
	case *ast.Name:
		return NameRef
	case *ast.ArrayAccess:
		return ArrayAccess
	case *ast.FieldAccess:
		return FieldAccess
	case *ast.Call:
		return MethodCall
	case *ast.Binary:
		return BinaryOp
	case *ast.Unary:
		return UnaryOp
	case *ast.Assign:
		return AssignOp
	case *ast.Literal, *ast.Opaque:
		return Value
	default:
		panic(fmt.Sprintf("unexpected expression %T", x))
	}
}

// Unparen returns x with any enclosing parentheses removed.
func Unparen(x ast.Expr) ast.Expr {
	for {
		p, ok := x.(*ast.Paren)
		if !ok {
			return x
		}
		x = p.X
	}
}
