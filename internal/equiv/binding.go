// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"

	"github.com/recursion-tools/unrecurse/java/ast"
)

// A BindingKind says what a name refers to within a method.
type BindingKind int

const (
	Unbound   BindingKind = iota // neither parameter nor local; compared as text
	Parameter                    // formal parameter
	Local                        // local variable, including loop variables
)

func (k BindingKind) String() string {
	switch k {
	case Unbound:
		return "Unbound"
	case Parameter:
		return "Parameter"
	case Local:
		return "Local"
	}
	return fmt.Sprintf("BindingKind(%d)", int(k))
}

// A Binding is the resolution of a name within a method.
type Binding struct {
	Kind  BindingKind
	Name  string
	Index int          // Parameter: ordinal position
	Type  string       // Parameter, Local: declared type
	Decl  *ast.VarDecl // Local: the declarator
}

// Value returns the initializer of a Local binding, or nil.
func (b Binding) Value() ast.Expr {
	if b.Decl == nil {
		return nil
	}
	return b.Decl.Value
}

// Resolve determines what name refers to in m.
//
// Parameters are matched by name first. Otherwise the last declarator
// of that name anywhere in the body wins; block scoping and shadowing
// are not modeled.
func Resolve(m *ast.Method, name string) Binding {
	for i, p := range m.Params {
		if p.Name == name {
			return Binding{Kind: Parameter, Name: name, Index: i, Type: p.Type}
		}
	}
	var decl *ast.VarDecl
	if m.Body != nil {
		for n := range ast.Preorder(m.Body) {
			if v, ok := n.(*ast.VarDecl); ok && v.Name == name {
				decl = v
			}
		}
	}
	if decl != nil {
		return Binding{Kind: Local, Name: name, Type: decl.Type, Decl: decl}
	}
	return Binding{Kind: Unbound, Name: name}
}
