// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast declares the types used to represent the methods of a
// Java compilation unit.
//
// The tree is deliberately small: it models the expressions and
// statements that recursive-to-iterative matching inspects, and folds
// every other construct into an Opaque expression or Other statement
// that retains its canonical text and its children. All nodes record
// the byte range they were parsed from, so that edits can be spliced
// back into the original source.
package ast

// A Span is a half-open byte range [Start, End) of the source a node
// was parsed from.
type Span struct {
	Start, End int
}

// Pos returns the span itself; embedding Span gives every node a Pos method.
func (s Span) Pos() Span { return s }

// Node is implemented by all nodes.
type Node interface {
	Pos() Span
}

// An Expr is one of *Name, *Literal, *ArrayAccess, *FieldAccess, *Call,
// *Binary, *Unary, *Assign, *Paren, or *Opaque.
type Expr interface {
	Node
	exprNode()
}

// A Stmt is one of *Block, *LocalVar, *ExprStmt, *If, *While, *DoWhile,
// *For, *ForEach, *Switch, *Break, *Continue, *Return, or *Other.
type Stmt interface {
	Node
	stmtNode()
}

// ----------------------------------------------------------------------------
// Expressions

type (
	// A Name is a reference to a variable, parameter, or other simple name.
	Name struct {
		Span
		ID string
	}

	// A Literal is a literal value, or the keywords this and super.
	Literal struct {
		Span
		Kind  string // tree-sitter node kind, e.g. "decimal_integer_literal"
		Value string // source text
	}

	// An ArrayAccess is an expression X[Index].
	ArrayAccess struct {
		Span
		X     Expr
		Index Expr
	}

	// A FieldAccess is an expression X.Field.
	FieldAccess struct {
		Span
		X     Expr
		Field string
	}

	// A Call is a method invocation. X is nil for an unqualified call.
	Call struct {
		Span
		X    Expr
		Name string
		Args []Expr
	}

	// A Binary is an infix expression X Op Y.
	Binary struct {
		Span
		Op   string
		X, Y Expr
	}

	// A Unary is a prefix (Op X) or postfix (X Op) expression.
	// Increment and decrement are Unary with Op "++" or "--".
	Unary struct {
		Span
		Op      string
		Postfix bool
		X       Expr
	}

	// An Assign is an assignment X Op Y, where Op is "=" or a
	// compound assignment operator such as "*=".
	Assign struct {
		Span
		Op   string
		X, Y Expr
	}

	// A Paren is a parenthesized expression.
	Paren struct {
		Span
		X Expr
	}

	// An Opaque is any other expression (conditional, cast, object or
	// array creation, lambda, instanceof, ...). Text is the
	// whitespace-normalized source text and Nodes holds its children.
	Opaque struct {
		Span
		Kind  string
		Text  string
		Nodes []Node
	}
)

func (*Name) exprNode()        {}
func (*Literal) exprNode()     {}
func (*ArrayAccess) exprNode() {}
func (*FieldAccess) exprNode() {}
func (*Call) exprNode()        {}
func (*Binary) exprNode()      {}
func (*Unary) exprNode()       {}
func (*Assign) exprNode()      {}
func (*Paren) exprNode()       {}
func (*Opaque) exprNode()      {}

// ----------------------------------------------------------------------------
// Statements

type (
	// A Block is a braced statement list.
	Block struct {
		Span
		List []Stmt
	}

	// A LocalVar declares one or more local variables.
	LocalVar struct {
		Span
		Vars []*VarDecl
	}

	// An ExprStmt is an expression used as a statement.
	ExprStmt struct {
		Span
		X Expr
	}

	// An If statement. Else is nil when absent.
	If struct {
		Span
		Cond Expr
		Then Stmt
		Else Stmt
	}

	// A While statement.
	While struct {
		Span
		Cond Expr
		Body Stmt
	}

	// A DoWhile statement.
	DoWhile struct {
		Span
		Body Stmt
		Cond Expr
	}

	// A For is a basic for statement. The initialization is either a
	// declaration (Decl) or a list of expressions (Init); both are
	// empty for "for (;...)". Cond is nil when the compare clause is
	// absent.
	For struct {
		Span
		Decl   *LocalVar
		Init   []Expr
		Cond   Expr
		Update []Expr
		Body   Stmt
	}

	// A ForEach is an enhanced for statement "for (Type Name : X)".
	ForEach struct {
		Span
		Var  *VarDecl
		X    Expr
		Body Stmt
	}

	// A Switch statement.
	Switch struct {
		Span
		Tag     Expr
		Entries []*SwitchEntry
	}

	// A Break statement; Label is empty when absent.
	Break struct {
		Span
		Label string
	}

	// A Continue statement; Label is empty when absent.
	Continue struct {
		Span
		Label string
	}

	// A Return statement; Result is nil when absent.
	Return struct {
		Span
		Result Expr
	}

	// An Other is any other statement (try, throw, synchronized,
	// labeled, local class, ...).
	Other struct {
		Span
		Kind  string
		Nodes []Node
	}
)

func (*Block) stmtNode()    {}
func (*LocalVar) stmtNode() {}
func (*ExprStmt) stmtNode() {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*DoWhile) stmtNode()  {}
func (*For) stmtNode()      {}
func (*ForEach) stmtNode()  {}
func (*Switch) stmtNode()   {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
func (*Other) stmtNode()    {}

// A SwitchEntry is one case of a switch. Labels is empty for the
// default entry. Consecutive labels sharing a statement group produce
// one entry each; the statements belong to the last of them.
type SwitchEntry struct {
	Span
	Labels []Expr
	Body   []Stmt
}

// IsDefault reports whether e is the default entry.
func (e *SwitchEntry) IsDefault() bool { return len(e.Labels) == 0 }

// A VarDecl declares a single variable. Type includes any dimensions
// written after the name, so "int a[]" has Type "int[]".
type VarDecl struct {
	Span
	Type  string
	Name  string
	Value Expr // nil when there is no initializer
}

// ----------------------------------------------------------------------------
// Declarations

// A Param is a formal parameter.
type Param struct {
	Span
	Type     string
	Name     string
	NameSpan Span
}

// A Method is a method declaration.
type Method struct {
	Span
	File       *File
	Name       string
	ReturnType string
	Params     []*Param
	ParamsSpan Span   // the parenthesized parameter list
	Body       *Block // nil for abstract and native methods
}

// Text returns the source text of the method declaration.
func (m *Method) Text() string {
	return string(m.File.Src[m.Start:m.End])
}

// Slice returns the source text of the span s of m's file.
func (m *Method) Slice(s Span) string {
	return string(m.File.Src[s.Start:s.End])
}

// A File is a parsed compilation unit.
type File struct {
	Name    string
	Src     []byte
	Methods []*Method // in source order, including those of nested classes
}
