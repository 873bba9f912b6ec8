// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/recursion-tools/unrecurse/java/ast"
)

// A converter translates tree-sitter nodes over src into java/ast nodes.
type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	return n.Utf8Text(c.src)
}

func span(n *sitter.Node) ast.Span {
	return ast.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// literalKinds are the node kinds converted to *ast.Literal.
var literalKinds = map[string]bool{
	"decimal_integer_literal":        true,
	"hex_integer_literal":            true,
	"octal_integer_literal":          true,
	"binary_integer_literal":         true,
	"decimal_floating_point_literal": true,
	"hex_floating_point_literal":     true,
	"character_literal":              true,
	"string_literal":                 true,
	"text_block":                     true,
	"null_literal":                   true,
	"true":                           true,
	"false":                          true,
	"this":                           true,
	"super":                          true,
}

// statementKinds are the node kinds converted to an ast.Stmt.
var statementKinds = map[string]bool{
	"block":                           true,
	"local_variable_declaration":      true,
	"expression_statement":            true,
	"if_statement":                    true,
	"while_statement":                 true,
	"do_statement":                    true,
	"for_statement":                   true,
	"enhanced_for_statement":          true,
	"break_statement":                 true,
	"continue_statement":              true,
	"return_statement":                true,
	"labeled_statement":               true,
	"try_statement":                   true,
	"try_with_resources_statement":    true,
	"throw_statement":                 true,
	"synchronized_statement":          true,
	"assert_statement":                true,
	"yield_statement":                 true,
	"local_class_declaration":         true,
	"class_declaration":               true,
	"explicit_constructor_invocation": true,
}

// method converts a method_declaration node.
func (c *converter) method(n *sitter.Node) *ast.Method {
	m := &ast.Method{
		Span: span(n),
		Name: c.text(n.ChildByFieldName("name")),
	}
	if t := n.ChildByFieldName("type"); t != nil {
		m.ReturnType = compact(c.text(t))
	}
	if d := n.ChildByFieldName("dimensions"); d != nil {
		m.ReturnType += compact(c.text(d))
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		m.ParamsSpan = span(params)
		for _, p := range namedChildren(params) {
			if param := c.param(p); param != nil {
				m.Params = append(m.Params, param)
			}
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		m.Body = c.block(body)
	}
	return m
}

// param converts a formal_parameter or spread_parameter node. It
// returns nil for receiver parameters and modifiers.
func (c *converter) param(n *sitter.Node) *ast.Param {
	switch n.Kind() {
	case "formal_parameter":
		name := n.ChildByFieldName("name")
		p := &ast.Param{
			Span:     span(n),
			Type:     compact(c.text(n.ChildByFieldName("type"))),
			Name:     c.text(name),
			NameSpan: span(name),
		}
		if d := n.ChildByFieldName("dimensions"); d != nil {
			p.Type += compact(c.text(d))
		}
		return p

	case "spread_parameter":
		p := &ast.Param{Span: span(n)}
		for _, child := range namedChildren(n) {
			switch child.Kind() {
			case "modifiers":
			case "variable_declarator":
				name := child.ChildByFieldName("name")
				p.Name = c.text(name)
				p.NameSpan = span(name)
				if d := child.ChildByFieldName("dimensions"); d != nil {
					p.Type += compact(c.text(d))
				}
			default:
				if p.Type == "" {
					p.Type = compact(c.text(child)) + "..."
				}
			}
		}
		return p
	}
	return nil
}

// node converts n to a statement when it is one, and to an expression
// otherwise.
func (c *converter) node(n *sitter.Node) ast.Node {
	if statementKinds[n.Kind()] {
		return c.stmt(n)
	}
	return c.expr(n)
}

func (c *converter) block(n *sitter.Node) *ast.Block {
	b := &ast.Block{Span: span(n)}
	for _, child := range namedChildren(n) {
		b.List = append(b.List, c.stmt(child))
	}
	return b
}

func (c *converter) stmt(n *sitter.Node) ast.Stmt {
	switch n.Kind() {
	case "block":
		return c.block(n)

	case "local_variable_declaration":
		return c.localVar(n)

	case "expression_statement":
		s := &ast.ExprStmt{Span: span(n)}
		if children := namedChildren(n); len(children) > 0 {
			s.X = c.expr(children[0])
		}
		return s

	case "if_statement":
		s := &ast.If{
			Span: span(n),
			Cond: c.cond(n.ChildByFieldName("condition")),
			Then: c.stmt(n.ChildByFieldName("consequence")),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			s.Else = c.stmt(alt)
		}
		return s

	case "while_statement":
		return &ast.While{
			Span: span(n),
			Cond: c.cond(n.ChildByFieldName("condition")),
			Body: c.stmt(n.ChildByFieldName("body")),
		}

	case "do_statement":
		return &ast.DoWhile{
			Span: span(n),
			Body: c.stmt(n.ChildByFieldName("body")),
			Cond: c.cond(n.ChildByFieldName("condition")),
		}

	case "for_statement":
		return c.forStmt(n)

	case "enhanced_for_statement":
		name := n.ChildByFieldName("name")
		v := &ast.VarDecl{
			Span: span(name),
			Type: compact(c.text(n.ChildByFieldName("type"))),
			Name: c.text(name),
		}
		if d := n.ChildByFieldName("dimensions"); d != nil {
			v.Type += compact(c.text(d))
		}
		return &ast.ForEach{
			Span: span(n),
			Var:  v,
			X:    c.expr(n.ChildByFieldName("value")),
			Body: c.stmt(n.ChildByFieldName("body")),
		}

	case "switch_expression":
		return c.switchStmt(n)

	case "break_statement":
		s := &ast.Break{Span: span(n)}
		if children := namedChildren(n); len(children) > 0 {
			s.Label = c.text(children[0])
		}
		return s

	case "continue_statement":
		s := &ast.Continue{Span: span(n)}
		if children := namedChildren(n); len(children) > 0 {
			s.Label = c.text(children[0])
		}
		return s

	case "return_statement":
		s := &ast.Return{Span: span(n)}
		if children := namedChildren(n); len(children) > 0 {
			s.Result = c.expr(children[0])
		}
		return s
	}

	s := &ast.Other{Span: span(n), Kind: n.Kind()}
	for _, child := range namedChildren(n) {
		if child.Kind() == "switch_expression" {
			s.Nodes = append(s.Nodes, c.stmt(child))
			continue
		}
		s.Nodes = append(s.Nodes, c.node(child))
	}
	return s
}

// cond converts the parenthesized condition of an if, while, do, or
// switch statement, dropping the mandatory parentheses.
func (c *converter) cond(n *sitter.Node) ast.Expr {
	if n.Kind() == "parenthesized_expression" {
		if children := namedChildren(n); len(children) == 1 {
			return c.expr(children[0])
		}
	}
	return c.expr(n)
}

func (c *converter) localVar(n *sitter.Node) *ast.LocalVar {
	s := &ast.LocalVar{Span: span(n)}
	typ := compact(c.text(n.ChildByFieldName("type")))
	for _, d := range fieldChildren(n, "declarator") {
		v := &ast.VarDecl{
			Span: span(d),
			Type: typ,
			Name: c.text(d.ChildByFieldName("name")),
		}
		if dims := d.ChildByFieldName("dimensions"); dims != nil {
			v.Type += compact(c.text(dims))
		}
		if value := d.ChildByFieldName("value"); value != nil {
			v.Value = c.expr(value)
		}
		s.Vars = append(s.Vars, v)
	}
	return s
}

func (c *converter) forStmt(n *sitter.Node) *ast.For {
	s := &ast.For{Span: span(n)}
	for _, init := range fieldChildren(n, "init") {
		if init.Kind() == "local_variable_declaration" {
			s.Decl = c.localVar(init)
			continue
		}
		s.Init = append(s.Init, c.expr(init))
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		s.Cond = c.expr(cond)
	}
	for _, update := range fieldChildren(n, "update") {
		s.Update = append(s.Update, c.expr(update))
	}
	s.Body = c.stmt(n.ChildByFieldName("body"))
	return s
}

// switchStmt converts a switch in statement position. Each case label
// yields its own entry; the statements of a group belong to the
// group's last label.
func (c *converter) switchStmt(n *sitter.Node) *ast.Switch {
	s := &ast.Switch{
		Span: span(n),
		Tag:  c.cond(n.ChildByFieldName("condition")),
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return s
	}
	for _, group := range namedChildren(body) {
		var entries []*ast.SwitchEntry
		var stmts []ast.Stmt
		for _, child := range namedChildren(group) {
			if child.Kind() == "switch_label" {
				entries = append(entries, &ast.SwitchEntry{
					Span:   span(child),
					Labels: c.labels(child),
				})
				continue
			}
			if child.Kind() == "switch_expression" || statementKinds[child.Kind()] {
				stmts = append(stmts, c.stmt(child))
			} else {
				// The body of a "case X -> expr;" rule.
				stmts = append(stmts, &ast.ExprStmt{Span: span(child), X: c.expr(child)})
			}
		}
		if len(entries) == 0 {
			continue
		}
		last := entries[len(entries)-1]
		last.Span.End = int(group.EndByte())
		last.Body = stmts
		s.Entries = append(s.Entries, entries...)
	}
	return s
}

// labels returns the expressions of a switch_label; default has none.
func (c *converter) labels(n *sitter.Node) []ast.Expr {
	var labels []ast.Expr
	for _, child := range namedChildren(n) {
		labels = append(labels, c.expr(child))
	}
	return labels
}

func (c *converter) expr(n *sitter.Node) ast.Expr {
	kind := n.Kind()
	if literalKinds[kind] {
		return &ast.Literal{Span: span(n), Kind: kind, Value: c.text(n)}
	}
	switch kind {
	case "identifier":
		return &ast.Name{Span: span(n), ID: c.text(n)}

	case "array_access":
		return &ast.ArrayAccess{
			Span:  span(n),
			X:     c.expr(n.ChildByFieldName("array")),
			Index: c.expr(n.ChildByFieldName("index")),
		}

	case "field_access":
		return &ast.FieldAccess{
			Span:  span(n),
			X:     c.expr(n.ChildByFieldName("object")),
			Field: c.text(n.ChildByFieldName("field")),
		}

	case "method_invocation":
		call := &ast.Call{
			Span: span(n),
			Name: c.text(n.ChildByFieldName("name")),
		}
		if obj := n.ChildByFieldName("object"); obj != nil {
			call.X = c.expr(obj)
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for _, arg := range namedChildren(args) {
				call.Args = append(call.Args, c.expr(arg))
			}
		}
		return call

	case "binary_expression":
		return &ast.Binary{
			Span: span(n),
			Op:   n.ChildByFieldName("operator").Kind(),
			X:    c.expr(n.ChildByFieldName("left")),
			Y:    c.expr(n.ChildByFieldName("right")),
		}

	case "unary_expression":
		return &ast.Unary{
			Span: span(n),
			Op:   n.ChildByFieldName("operator").Kind(),
			X:    c.expr(n.ChildByFieldName("operand")),
		}

	case "update_expression":
		u := &ast.Unary{Span: span(n)}
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child == nil || isComment(child) {
				continue
			}
			if child.IsNamed() {
				u.X = c.expr(child)
				u.Postfix = u.Op == ""
			} else {
				u.Op = child.Kind()
			}
		}
		return u

	case "assignment_expression":
		return &ast.Assign{
			Span: span(n),
			Op:   n.ChildByFieldName("operator").Kind(),
			X:    c.expr(n.ChildByFieldName("left")),
			Y:    c.expr(n.ChildByFieldName("right")),
		}

	case "parenthesized_expression":
		if children := namedChildren(n); len(children) == 1 {
			return &ast.Paren{Span: span(n), X: c.expr(children[0])}
		}
	}

	x := &ast.Opaque{Span: span(n), Kind: kind, Text: c.canonical(n)}
	for _, child := range namedChildren(n) {
		x.Nodes = append(x.Nodes, c.node(child))
	}
	return x
}

// canonical returns the tokens of n separated by single spaces.
func (c *converter) canonical(n *sitter.Node) string {
	var tokens []string
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if isComment(n) {
			return
		}
		if n.ChildCount() == 0 || literalKinds[n.Kind()] {
			tokens = append(tokens, c.text(n))
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			if child := n.Child(i); child != nil {
				visit(child)
			}
		}
	}
	visit(n)
	return strings.Join(tokens, " ")
}
