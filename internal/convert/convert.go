// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert replaces recursive Java methods with iterative
// equivalents drawn from a catalog.
//
// For each recursive method of a source file, the catalog entries are
// tried in order. An entry matches when its recursive reference
// implementation has the same signature as the method, the same number
// of control-flow statements of each kind, pairwise equivalent
// control-flow statements, and equivalent arguments in its recursive
// call. The first matching entry's iterative implementation then
// replaces the method's parameter list and body.
package convert

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"

	"github.com/recursion-tools/unrecurse/internal/catalog"
	"github.com/recursion-tools/unrecurse/internal/construct"
	"github.com/recursion-tools/unrecurse/internal/diff"
	"github.com/recursion-tools/unrecurse/internal/failure"
	"github.com/recursion-tools/unrecurse/internal/recursion"
	"github.com/recursion-tools/unrecurse/internal/substitute"
	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

// A Converter converts source files against a catalog.
type Converter struct {
	Catalog  *catalog.Catalog
	Log      logrus.FieldLogger // if nil, the standard logger is used
	Encoding encoding.Encoding  // of source files read and written; nil means UTF-8
}

// A MethodResult records the attempts made for one recursive method.
type MethodResult struct {
	Name     string
	Attempts []Attempt // in catalog order, ending at the first success
}

// Converted returns the name of the entry that replaced the method, or "".
func (r *MethodResult) Converted() string {
	if n := len(r.Attempts); n > 0 && r.Attempts[n-1].Converted() {
		return r.Attempts[n-1].Entry
	}
	return ""
}

// A FileResult is the outcome of converting one file.
type FileResult struct {
	Path    string // relative to the input directory
	Output  string // the output file, once written
	Methods []*MethodResult
	Src     []byte // the original source, as UTF-8
	Result  []byte // the converted source as UTF-8; equal to Src if nothing matched
	Err     error  // a failure that ended processing of the file
}

// Changed reports whether any method of the file was converted.
func (r *FileResult) Changed() bool {
	return slices.ContainsFunc(r.Methods, func(m *MethodResult) bool { return m.Converted() != "" })
}

// fileContext is the state of the conversion of one file.
type fileContext struct {
	file  *ast.File
	log   logrus.FieldLogger
	edits []diff.Edit // accepted so far
}

func (c *Converter) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// ConvertSource converts the Java source src, whose name is used in
// results and messages. Mismatches are recorded in the result; the
// error reports a failure that prevented conversion of the whole file.
func (c *Converter) ConvertSource(name string, src []byte) (*FileResult, error) {
	res := &FileResult{Path: name, Src: src, Result: src}
	file, err := parser.ParseFile(name, src)
	if err != nil {
		return res, failure.New(failure.ParseFailure, name, err)
	}
	if len(file.Methods) == 0 {
		return res, failure.New(failure.MethodlessFile, name, errors.New("no method declaration"))
	}

	fc := &fileContext{file: file, log: c.logger().WithField("file", name)}
	for _, m := range file.Methods {
		if m.Body == nil || !recursion.IsRecursive(m) {
			continue
		}
		res.Methods = append(res.Methods, c.convertMethod(fc, m))
	}

	out, err := apply(name, src, fc.edits)
	if err != nil {
		return res, err
	}
	res.Result = out
	return res, nil
}

// apply applies the accepted edits to the source of file name.
func apply(name string, src []byte, edits []diff.Edit) ([]byte, error) {
	out, err := diff.ApplyBytes(src, edits)
	if err != nil {
		return nil, failure.New(failure.WriteFailure, name, fmt.Errorf("applying edits: %w", err))
	}
	return out, nil
}

// convertMethod tries each catalog entry in turn against m.
func (c *Converter) convertMethod(fc *fileContext, m *ast.Method) *MethodResult {
	res := &MethodResult{Name: m.Name}
	log := fc.log.WithField("method", m.Name)
	for _, e := range c.Catalog.Entries {
		a, edits := c.try(fc, m, e)
		res.Attempts = append(res.Attempts, a)

		entryLog := log.WithFields(logrus.Fields{"entry": e.Name, "stage": a.Reason()})
		if a.Err != nil {
			entryLog = entryLog.WithError(a.Err)
		}
		if a.Converted() {
			fc.edits = append(fc.edits, edits...)
			entryLog.Info("converted")
			break
		}
		entryLog.Debug("no match")
	}
	return res
}

// try matches m against e. On success it returns the edits that
// substitute e's iterative implementation.
func (c *Converter) try(fc *fileContext, m *ast.Method, e *catalog.Entry) (Attempt, []diff.Edit) {
	a := Attempt{Entry: e.Name}
	rec, err := e.RecursiveMethod()
	if err != nil {
		a.Stage, a.Err = StageCatalog, err
		return a, nil
	}

	if !SameSignature(m, rec) {
		a.Stage = StageSignature
		return a, nil
	}
	if rec.Body == nil {
		a.Stage = StageBody
		a.Err = failure.Errorf(failure.AbsentMethodBody, rec.File.Name, "method %s", rec.Name)
		return a, nil
	}
	if k, ok := construct.CountMismatch(m, rec); ok {
		a.Stage, a.Kind = StageConstructCount, k
		return a, nil
	}
	if k, ok := construct.Reject(m, rec); ok {
		a.Stage, a.Kind = StageConstruct, k
		return a, nil
	}
	if recursion.ArgumentsDiffer(m, rec) {
		a.Stage = StageRecursiveCall
		return a, nil
	}

	iterative, err := e.IterativeMethod()
	if err != nil {
		a.Stage, a.Err = StageCatalog, err
		return a, nil
	}
	edits, err := substitute.Substitute(iterative, m)
	if err == nil && overlaps(fc.edits, edits) {
		err = fmt.Errorf("method %s overlaps a method already converted", m.Name)
	}
	if err != nil {
		a.Stage, a.Err = StageSubstitute, err
		return a, nil
	}
	a.Stage = StageConverted
	return a, edits
}

// SameSignature reports whether a and b have the same return type and
// the same parameter types, position by position. Names are ignored.
func SameSignature(a, b *ast.Method) bool {
	if a.ReturnType != b.ReturnType || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].Type != b.Params[i].Type {
			return false
		}
	}
	return true
}

// overlaps reports whether any edit of ys overlaps any edit of xs.
func overlaps(xs, ys []diff.Edit) bool {
	for _, x := range xs {
		for _, y := range ys {
			if x.Start < y.End && y.Start < x.End {
				return true
			}
		}
	}
	return false
}
