// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"iter"
)

// Inspect traverses the tree rooted at node in depth-first order. It
// starts by calling f(node); if f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	walk(inspector(f), node)
}

// Preorder returns an iterator over the nodes of the tree rooted at
// root, in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(root, func(n Node) bool {
			if n != nil {
				ok = ok && yield(n)
			}
			return ok
		})
	}
}

type inspector func(Node) bool

func walkList[N Node](f inspector, list []N) {
	for _, node := range list {
		walk(f, node)
	}
}

func walk(f inspector, node Node) {
	if !f(node) {
		return
	}

	// (the order of the cases matches the order
	// of the corresponding node types in ast.go)
	switch n := node.(type) {
	// Expressions
	case *Name, *Literal:
		// nothing to do

	case *ArrayAccess:
		walk(f, n.X)
		walk(f, n.Index)

	case *FieldAccess:
		walk(f, n.X)

	case *Call:
		if n.X != nil {
			walk(f, n.X)
		}
		walkList(f, n.Args)

	case *Binary:
		walk(f, n.X)
		walk(f, n.Y)

	case *Unary:
		walk(f, n.X)

	case *Assign:
		walk(f, n.X)
		walk(f, n.Y)

	case *Paren:
		walk(f, n.X)

	case *Opaque:
		walkList(f, n.Nodes)

	// Statements
	case *Block:
		walkList(f, n.List)

	case *LocalVar:
		walkList(f, n.Vars)

	case *ExprStmt:
		walk(f, n.X)

	case *If:
		walk(f, n.Cond)
		walk(f, n.Then)
		if n.Else != nil {
			walk(f, n.Else)
		}

	case *While:
		walk(f, n.Cond)
		walk(f, n.Body)

	case *DoWhile:
		walk(f, n.Body)
		walk(f, n.Cond)

	case *For:
		if n.Decl != nil {
			walk(f, n.Decl)
		}
		walkList(f, n.Init)
		if n.Cond != nil {
			walk(f, n.Cond)
		}
		walkList(f, n.Update)
		walk(f, n.Body)

	case *ForEach:
		walk(f, n.Var)
		walk(f, n.X)
		walk(f, n.Body)

	case *Switch:
		walk(f, n.Tag)
		walkList(f, n.Entries)

	case *Break, *Continue:
		// nothing to do

	case *Return:
		if n.Result != nil {
			walk(f, n.Result)
		}

	case *Other:
		walkList(f, n.Nodes)

	// Other nodes
	case *SwitchEntry:
		walkList(f, n.Labels)
		walkList(f, n.Body)

	case *VarDecl:
		if n.Value != nil {
			walk(f, n.Value)
		}

	case *Param:
		// nothing to do

	case *Method:
		walkList(f, n.Params)
		if n.Body != nil {
			walk(f, n.Body)
		}

	default:
		panic(fmt.Sprintf("ast.walk: unexpected node type %T", n))
	}

	f(nil)
}
