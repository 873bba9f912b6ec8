// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog reads the catalog of known recursive algorithms.
//
// A catalog is a directory with one subdirectory per algorithm. Each
// subdirectory holds the recursive reference implementation, in a
// file whose name contains "Recursive", and its iterative rewrite, in
// a file whose name contains "Iterative". The method of interest is
// the first method declared in each file; any further methods are
// helpers.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/sumdb/dirhash"

	"github.com/recursion-tools/unrecurse/internal/failure"
	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

// Substrings identifying the files of an entry.
const (
	RecursiveMarker = "Recursive"
	IterativeMarker = "Iterative"
)

// A Catalog is a loaded catalog directory.
type Catalog struct {
	Dir     string
	Entries []*Entry // in lexical order of directory name

	// Fingerprint is the dirhash of the catalog's contents, identifying
	// the catalog a run used.
	Fingerprint string
}

// An Entry is one algorithm of the catalog. Its files are read and
// parsed anew on each call to RecursiveMethod or IterativeMethod.
type Entry struct {
	Name          string
	Dir           string
	RecursiveFile string // empty if missing
	IterativeFile string // empty if missing
}

// Load reads the catalog in dir. Entries missing one of their files
// are retained; their methods report MalformedCatalogEntry.
func Load(dir string) (*Catalog, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, failure.New(failure.ReadFailure, dir, err)
	}
	cat := &Catalog{Dir: dir}
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		e, err := loadEntry(filepath.Join(dir, d.Name()))
		if err != nil {
			return nil, err
		}
		cat.Entries = append(cat.Entries, e)
	}

	hash, err := dirhash.HashDir(dir, "catalog", dirhash.Hash1)
	if err != nil {
		return nil, failure.New(failure.ReadFailure, dir, err)
	}
	cat.Fingerprint = hash
	return cat, nil
}

func loadEntry(dir string) (*Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, failure.New(failure.ReadFailure, dir, err)
	}
	e := &Entry{Name: filepath.Base(dir), Dir: dir}
	// os.ReadDir sorts by name, so the first match wins deterministically.
	for _, d := range dirents {
		if !d.Type().IsRegular() {
			continue
		}
		name := d.Name()
		switch {
		case e.RecursiveFile == "" && strings.Contains(name, RecursiveMarker):
			e.RecursiveFile = filepath.Join(dir, name)
		case e.IterativeFile == "" && strings.Contains(name, IterativeMarker):
			e.IterativeFile = filepath.Join(dir, name)
		}
	}
	return e, nil
}

// Lookup returns the entry with the given name, or nil.
func (c *Catalog) Lookup(name string) *Entry {
	i := slices.IndexFunc(c.Entries, func(e *Entry) bool { return e.Name == name })
	if i < 0 {
		return nil
	}
	return c.Entries[i]
}

// Check reports a MalformedCatalogEntry failure if e lacks a file.
func (e *Entry) Check() error {
	switch {
	case e.RecursiveFile == "":
		return failure.Errorf(failure.MalformedCatalogEntry, e.Dir, "no file named *%s*", RecursiveMarker)
	case e.IterativeFile == "":
		return failure.Errorf(failure.MalformedCatalogEntry, e.Dir, "no file named *%s*", IterativeMarker)
	}
	return nil
}

// RecursiveMethod parses the recursive reference implementation of e.
func (e *Entry) RecursiveMethod() (*ast.Method, error) {
	if err := e.Check(); err != nil {
		return nil, err
	}
	return firstMethod(e.RecursiveFile)
}

// IterativeMethod parses the iterative rewrite of e.
func (e *Entry) IterativeMethod() (*ast.Method, error) {
	if err := e.Check(); err != nil {
		return nil, err
	}
	return firstMethod(e.IterativeFile)
}

func (e *Entry) String() string { return e.Name }

func firstMethod(filename string) (*ast.Method, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, failure.New(failure.ReadFailure, filename, err)
	}
	file, err := parser.ParseFile(filename, src)
	if err != nil {
		return nil, failure.New(failure.ParseFailure, filename, err)
	}
	if len(file.Methods) == 0 {
		return nil, failure.New(failure.MethodlessFile, filename, fmt.Errorf("no method declaration"))
	}
	return file.Methods[0], nil
}
