// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package substitute_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recursion-tools/unrecurse/internal/diff"
	"github.com/recursion-tools/unrecurse/internal/failure"
	"github.com/recursion-tools/unrecurse/internal/substitute"
	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

func method(t *testing.T, src string) *ast.Method {
	t.Helper()
	m, err := parser.ParseMethod(src)
	require.NoError(t, err)
	return m
}

func TestRename(t *testing.T) {
	for _, test := range []struct {
		name      string
		tpl, user string
		want      string
	}{
		{
			"factorial",
			"int fact(int dim){ int r=1; for(int i=1;i<=dim;i++) r*=i; return r; }",
			"int fact(int n){ if(n==0) return 1; return n*fact(n-1); }",
			"int fact(int n){ int r=1; for(int i=1;i<=n;i++) r*=i; return r; }",
		},
		{
			"whole names only",
			"int f(int dim) { int dimension = dim; return dimension + this.dim + dim(dim); }",
			"int f(int n) { return f(n - 1); }",
			"int f(int n) { int dimension = n; return dimension + this.dim + dim(n); }",
		},
		{
			"simultaneous swap",
			"int f(int a, int b) { return a - b; }",
			"int f(int b, int a) { return f(b, a); }",
			"int f(int b, int a) { return b - a; }",
		},
		{
			"type mismatch keeps name",
			"int f(int[] arr, long k) { return arr[(int) k]; }",
			"int f(int[] a, int k2) { return f(a, k2); }",
			"int f(int[] a, long k) { return a[(int) k]; }",
		},
		{
			"same names",
			"int f(int n) { return n; }",
			"int f(int n) { return f(n); }",
			"int f(int n) { return n; }",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := substitute.Rename(method(t, test.tpl), method(t, test.user))
			require.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Rename mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenameCapture(t *testing.T) {
	tpl := method(t, "int f(int dim) { int n = 0; return dim + n; }")
	user := method(t, "int f(int n) { return f(n); }")
	_, err := substitute.Rename(tpl, user)
	var cerr *substitute.CaptureError
	require.True(t, errors.As(err, &cerr), "err = %v", err)
	assert.Equal(t, "dim", cerr.From)
	assert.Equal(t, "n", cerr.To)

	// size is a field of the template's class, not a local.
	tpl = method(t, "int f(int dim) { return dim + size; }")
	user = method(t, "int f(int size) { return f(size); }")
	_, err = substitute.Rename(tpl, user)
	require.True(t, errors.As(err, &cerr), "err = %v", err)
	assert.Equal(t, "dim", cerr.From)
	assert.Equal(t, "size", cerr.To)

	// Names used only as fields or methods of other values are not captured.
	tpl = method(t, "int f(int[] a) { return a.length + Math.max(a[0], 1); }")
	user = method(t, "int f(int[] length) { return f(length); }")
	got, err := substitute.Rename(tpl, user)
	require.NoError(t, err)
	assert.Equal(t, "int f(int[] length) { return length.length + Math.max(length[0], 1); }", got)
}

func TestSubstitute(t *testing.T) {
	tplSrc := `public class FactorialIterative {
    int fact(int dim) {
        int r = 1;
        for (int i = 1; i <= dim; i++)
            r *= i;
        return r;
    }
}
`
	userSrc := `class Maths {
	// fact computes n!.
	int fact(int n) {
		if (n == 0) return 1;
		return n * fact(n - 1);
	}

	int other() { return 0; }
}
`
	tplFile, err := parser.ParseFile("FactorialIterative.java", []byte(tplSrc))
	require.NoError(t, err)
	userFile, err := parser.ParseFile("Maths.java", []byte(userSrc))
	require.NoError(t, err)

	edits, err := substitute.Substitute(tplFile.Methods[0], userFile.Methods[0])
	require.NoError(t, err)
	got, err := diff.Apply(userSrc, edits)
	require.NoError(t, err)

	want := `class Maths {
	// fact computes n!.
	int fact(int n) {
	    int r = 1;
	    for (int i = 1; i <= n; i++)
	        r *= i;
	    return r;
	}

	int other() { return 0; }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteAbsentBody(t *testing.T) {
	tpl := method(t, "int f(int n) { return n; }")
	user := method(t, "abstract int f(int n);")
	_, err := substitute.Substitute(tpl, user)
	assert.ErrorIs(t, err, failure.ErrAbsentMethodBody)
}
