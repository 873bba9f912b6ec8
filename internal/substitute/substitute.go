// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package substitute replaces the parameters and body of a method with
// those of a template method, renaming the template's parameters to
// the names used by the method being replaced.
package substitute

import (
	"fmt"
	"strings"

	"github.com/recursion-tools/unrecurse/internal/diff"
	"github.com/recursion-tools/unrecurse/internal/equiv"
	"github.com/recursion-tools/unrecurse/internal/failure"
	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

// A CaptureError reports that renaming a template parameter would
// make it refer to a different variable, field, or class of the template.
type CaptureError struct {
	From, To string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("renaming %s to %s would capture the template's own %s", e.From, e.To, e.To)
}

// Renames returns the parameter renaming from tpl to user: each
// template parameter maps to the user's parameter at the same position
// when their declared types are equal. Parameters whose names already
// agree are omitted.
func Renames(tpl, user *ast.Method) map[string]string {
	renames := make(map[string]string)
	for i, p := range tpl.Params {
		if i >= len(user.Params) {
			break
		}
		u := user.Params[i]
		if p.Type == u.Type && p.Name != u.Name {
			renames[p.Name] = u.Name
		}
	}
	return renames
}

// Rename returns the source text of tpl after applying Renames(tpl,
// user) to its parameter declarations and to every name in its body
// that refers to them. All renames happen at once, so parameters may
// trade names.
func Rename(tpl, user *ast.Method) (string, error) {
	renames := Renames(tpl, user)
	if len(renames) == 0 {
		return tpl.Text(), nil
	}
	for from, to := range renames {
		if _, renamed := renames[to]; renamed {
			continue
		}
		if captures(tpl, to) {
			return "", &CaptureError{From: from, To: to}
		}
	}

	var edits []diff.Edit
	rename := func(span ast.Span, to string) {
		edits = append(edits, diff.Edit{
			Start: span.Start - tpl.Start,
			End:   span.End - tpl.Start,
			New:   to,
		})
	}
	for _, p := range tpl.Params {
		if to, ok := renames[p.Name]; ok {
			rename(p.NameSpan, to)
		}
	}
	if tpl.Body != nil {
		for n := range ast.Preorder(tpl.Body) {
			if id, ok := n.(*ast.Name); ok {
				if to, ok := renames[id.ID]; ok {
					rename(id.Span, to)
				}
			}
		}
	}
	return diff.Apply(tpl.Text(), edits)
}

// captures reports whether name already has a meaning in tpl: a
// parameter or local, or any other name its body refers to, such as a
// field or class.
func captures(tpl *ast.Method, name string) bool {
	if equiv.Resolve(tpl, name).Kind != equiv.Unbound {
		return true
	}
	if tpl.Body == nil {
		return false
	}
	for n := range ast.Preorder(tpl.Body) {
		if id, ok := n.(*ast.Name); ok && id.ID == name {
			return true
		}
	}
	return false
}

// Substitute returns the edits to user's file that replace its
// parameter list and body with those of tpl, renamed by Rename. The
// rest of the file is left untouched.
func Substitute(tpl, user *ast.Method) ([]diff.Edit, error) {
	if user.Body == nil {
		return nil, failure.Errorf(failure.AbsentMethodBody, user.File.Name, "method %s", user.Name)
	}
	if tpl.Body == nil {
		return nil, failure.Errorf(failure.AbsentMethodBody, tpl.File.Name, "method %s", tpl.Name)
	}
	text, err := Rename(tpl, user)
	if err != nil {
		return nil, err
	}
	m, err := parser.ParseMethod(text)
	if err != nil {
		return nil, failure.New(failure.ParseFailure, tpl.File.Name, err)
	}
	if m.Body == nil {
		return nil, failure.Errorf(failure.AbsentMethodBody, tpl.File.Name, "method %s", tpl.Name)
	}

	from, to := indent(tpl.File.Src, tpl.Start), indent(user.File.Src, user.Start)
	return []diff.Edit{
		{Start: user.ParamsSpan.Start, End: user.ParamsSpan.End, New: reindent(m.Slice(m.ParamsSpan), from, to)},
		{Start: user.Body.Start, End: user.Body.End, New: reindent(m.Slice(m.Body.Span), from, to)},
	}, nil
}

// indent returns the leading whitespace of the line containing offset.
func indent(src []byte, offset int) string {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := start
	for end < offset && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

// reindent replaces the prefix from with to on every line of s but the first.
func reindent(s, from, to string) string {
	if from == to {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if rest, ok := strings.CutPrefix(lines[i], from); ok {
			lines[i] = to + rest
		}
	}
	return strings.Join(lines, "\n")
}
