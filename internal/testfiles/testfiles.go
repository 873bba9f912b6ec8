// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testfiles provides utilities for writing tests with Java
// source trees described by txtar archives.
package testfiles

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// ExtractTxtar writes each archive file to the corresponding location beneath dir.
func ExtractTxtar(dstdir string, ar *txtar.Archive) error {
	for _, file := range ar.Files {
		name := filepath.Join(dstdir, file.Name)
		if err := os.MkdirAll(filepath.Dir(name), 0777); err != nil {
			return err
		}
		if err := os.WriteFile(name, file.Data, 0666); err != nil {
			return err
		}
	}
	return nil
}

// ExtractTxtarFileToTmp reads a txtar archive on a given path,
// extracts it to a temporary directory, and returns the
// temporary directory.
func ExtractTxtarFileToTmp(t testing.TB, archiveFile string) string {
	ar, err := txtar.ParseFile(archiveFile)
	if err != nil {
		t.Fatal(err)
	}
	return ExtractTxtarToTmp(t, ar)
}

// ExtractTxtarToTmp extracts the given archive to a temporary
// directory, and returns that temporary directory.
func ExtractTxtarToTmp(t testing.TB, ar *txtar.Archive) string {
	dir := t.TempDir()
	if err := ExtractTxtar(dir, ar); err != nil {
		t.Fatal(err)
	}
	return dir
}

// Archive returns the regular files beneath dir as an archive, in
// lexical order of their slash-separated relative paths. It is the
// inverse of ExtractTxtar, for comparing a tree against expectations.
func Archive(t testing.TB, dir string) *txtar.Archive {
	ar := new(txtar.Archive)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		ar.Files = append(ar.Files, txtar.File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return ar
}

// Files returns the contents of the archive's files keyed by name.
func Files(ar *txtar.Archive) map[string]string {
	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}
	return files
}
