// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser builds java/ast trees from Java source text using the
// tree-sitter Java grammar.
//
// Only method declarations are retained from a compilation unit. The
// parser entry points are ParseFile for whole files, ParseMethod for a
// single method declaration, and ParseExpr for a single expression.
package parser

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/recursion-tools/unrecurse/java/ast"
)

// ErrNoMethod is returned by ParseMethod when its input contains no
// method declaration.
var ErrNoMethod = errors.New("no method declaration")

// An Error describes the first syntax error in a source text.
type Error struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based, in bytes
	Msg      string
}

func (e *Error) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
}

// ParseFile parses the Java compilation unit src and returns its
// method declarations. The filename is used only in error messages
// and is recorded in the result.
func ParseFile(filename string, src []byte) (*ast.File, error) {
	tree, err := parse(src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(filename, root, 0, 0)
	}
	return newFile(filename, src, root), nil
}

// newFile collects the method declarations below root, in source order.
func newFile(filename string, src []byte, root *sitter.Node) *ast.File {
	file := &ast.File{Name: filename, Src: src}
	c := &converter{src: src}
	for n := range preorder(root) {
		if n.Kind() == "method_declaration" {
			m := c.method(n)
			m.File = file
			file.Methods = append(file.Methods, m)
		}
	}
	return file
}

const (
	methodPrefix = "class Fragment {\n"
	methodSuffix = "\n}\n"
)

// ParseMethod parses a single method declaration. The returned
// method's File holds a synthetic wrapper class, so its spans are
// relative to that wrapper; use Method.Text and Method.Slice to
// recover source text.
func ParseMethod(src string) (*ast.Method, error) {
	wrapped := []byte(methodPrefix + src + methodSuffix)
	file, err := parseFragment(wrapped, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Methods) == 0 {
		return nil, ErrNoMethod
	}
	return file.Methods[0], nil
}

const (
	exprPrefix = "class Fragment { Object fragment() { return "
	exprSuffix = "\n; } }\n"
)

// ParseExpr parses a single Java expression.
func ParseExpr(x string) (ast.Expr, error) {
	wrapped := []byte(exprPrefix + x + exprSuffix)
	file, err := parseFragment(wrapped, 0, len(exprPrefix))
	if err != nil {
		return nil, err
	}
	if len(file.Methods) != 1 || file.Methods[0].Body == nil {
		return nil, fmt.Errorf("invalid expression %q", x)
	}
	list := file.Methods[0].Body.List
	if len(list) != 1 {
		return nil, fmt.Errorf("invalid expression %q", x)
	}
	ret, ok := list[0].(*ast.Return)
	if !ok || ret.Result == nil {
		return nil, fmt.Errorf("invalid expression %q", x)
	}
	return ret.Result, nil
}

// parseFragment parses a wrapped fragment, reporting error positions
// relative to the unwrapped text.
func parseFragment(src []byte, lineOffset, columnOffset int) (*ast.File, error) {
	tree, err := parse(src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError("", root, lineOffset, columnOffset)
	}
	return newFile("fragment", src, root), nil
}

// parse runs the tree-sitter Java parser over src.
// Parsers are not safe for concurrent use, so each call gets its own.
func parse(src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	defer p.Close()
	if err := p.SetLanguage(sitter.NewLanguage(java.Language())); err != nil {
		return nil, fmt.Errorf("loading Java grammar: %w", err)
	}
	tree := p.Parse(src, nil)
	if tree == nil {
		return nil, errors.New("parse cancelled")
	}
	return tree, nil
}

// syntaxError locates the first error or missing node below root.
func syntaxError(filename string, root *sitter.Node, lineOffset, columnOffset int) *Error {
	e := &Error{Filename: filename, Line: 1, Column: 1, Msg: "syntax error"}
	for n := range preorder(root) {
		if !n.IsError() && !n.IsMissing() {
			continue
		}
		pos := n.StartPosition()
		e.Line = int(pos.Row) + 1 - lineOffset
		e.Column = int(pos.Column) + 1
		if e.Line == 1 {
			e.Column -= columnOffset
		}
		if e.Line < 1 {
			e.Line = 1
		}
		if e.Column < 1 {
			e.Column = 1
		}
		if n.IsMissing() {
			e.Msg = fmt.Sprintf("missing %s", n.Kind())
		}
		break
	}
	return e
}

// preorder visits the concrete syntax tree rooted at root.
func preorder(root *sitter.Node) func(yield func(*sitter.Node) bool) {
	return func(yield func(*sitter.Node) bool) {
		var visit func(n *sitter.Node) bool
		visit = func(n *sitter.Node) bool {
			if !yield(n) {
				return false
			}
			for i := uint(0); i < n.ChildCount(); i++ {
				if child := n.Child(i); child != nil && !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// isComment reports whether n is a comment, which tree-sitter
// attaches as an extra node anywhere in the tree.
func isComment(n *sitter.Node) bool {
	switch n.Kind() {
	case "line_comment", "block_comment":
		return true
	}
	return false
}

// namedChildren returns the named, non-comment children of n.
func namedChildren(n *sitter.Node) []*sitter.Node {
	var children []*sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil || isComment(child) {
			continue
		}
		children = append(children, child)
	}
	return children
}

// fieldChildren returns all children of n with the given field name.
func fieldChildren(n *sitter.Node, name string) []*sitter.Node {
	cursor := n.Walk()
	defer cursor.Close()
	nodes := n.ChildrenByFieldName(name, cursor)
	children := make([]*sitter.Node, 0, len(nodes))
	for i := range nodes {
		if !isComment(&nodes[i]) {
			children = append(children, &nodes[i])
		}
	}
	return children
}

// compact removes all whitespace from a type or dimensions string, so
// that "int [ ]" and "int[]" compare equal.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
