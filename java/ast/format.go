// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "strings"

// Format returns the canonical source text of x: single spaces
// around binary and assignment operators, none inside parentheses,
// brackets, or argument lists. Two expressions that differ only in
// layout or comments format identically.
func Format(x Expr) string {
	var buf strings.Builder
	format(&buf, x)
	return buf.String()
}

func format(buf *strings.Builder, x Expr) {
	switch x := x.(type) {
	case *Name:
		buf.WriteString(x.ID)

	case *Literal:
		buf.WriteString(x.Value)

	case *ArrayAccess:
		format(buf, x.X)
		buf.WriteByte('[')
		format(buf, x.Index)
		buf.WriteByte(']')

	case *FieldAccess:
		format(buf, x.X)
		buf.WriteByte('.')
		buf.WriteString(x.Field)

	case *Call:
		if x.X != nil {
			format(buf, x.X)
			buf.WriteByte('.')
		}
		buf.WriteString(x.Name)
		buf.WriteByte('(')
		for i, arg := range x.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			format(buf, arg)
		}
		buf.WriteByte(')')

	case *Binary:
		format(buf, x.X)
		buf.WriteByte(' ')
		buf.WriteString(x.Op)
		buf.WriteByte(' ')
		format(buf, x.Y)

	case *Unary:
		if x.Postfix {
			format(buf, x.X)
			buf.WriteString(x.Op)
			break
		}
		buf.WriteString(x.Op)
		operand := Format(x.X)
		// - -x and + +x must not fuse into a decrement or increment.
		if operand != "" && (x.Op[len(x.Op)-1] == '-' || x.Op[len(x.Op)-1] == '+') && operand[0] == x.Op[len(x.Op)-1] {
			buf.WriteByte(' ')
		}
		buf.WriteString(operand)

	case *Assign:
		format(buf, x.X)
		buf.WriteByte(' ')
		buf.WriteString(x.Op)
		buf.WriteByte(' ')
		format(buf, x.Y)

	case *Paren:
		buf.WriteByte('(')
		format(buf, x.X)
		buf.WriteByte(')')

	case *Opaque:
		buf.WriteString(x.Text)

	case nil:
		// nothing to do

	default:
		panic("ast.Format: unexpected expression type")
	}
}
