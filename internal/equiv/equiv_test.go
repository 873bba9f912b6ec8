// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recursion-tools/unrecurse/internal/equiv"
	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

func method(t *testing.T, src string) *ast.Method {
	t.Helper()
	m, err := parser.ParseMethod(src)
	require.NoError(t, err)
	return m
}

func expr(t *testing.T, src string) ast.Expr {
	t.Helper()
	x, err := parser.ParseExpr(src)
	require.NoError(t, err)
	return x
}

const (
	// user and template differ only in parameter and local names.
	user = `int search(int[] a, int i, int j, int key) {
		int mid = (i + j) / 2;
		int[] copy = a;
		for (int x : a) { }
		return mid;
	}`
	template = `int search(int[] arr, int lo, int hi, int key) {
		int m = (lo + hi) / 2;
		int[] copy = arr;
		for (int y : arr) { }
		return m;
	}`
)

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		src  string
		want equiv.Variant
	}{
		{"n", equiv.NameRef},
		{"((n))", equiv.NameRef},
		{"1", equiv.Value},
		{`"s"`, equiv.Value},
		{"a < b ? a : b", equiv.Value},
		{"a[i]", equiv.ArrayAccess},
		{"a.length", equiv.FieldAccess},
		{"f(x)", equiv.MethodCall},
		{"this.f(x)", equiv.MethodCall},
		{"x + 1", equiv.BinaryOp},
		{"!x", equiv.UnaryOp},
		{"i++", equiv.UnaryOp},
		{"r *= i", equiv.AssignOp},
	} {
		assert.Equal(t, test.want, equiv.Classify(expr(t, test.src)), test.src)
	}
}

func TestResolve(t *testing.T) {
	m := method(t, `void f(int n, String s) {
		int k = 1;
		{ long k = 2; }
		for (char c : s.toCharArray()) { }
	}`)

	b := equiv.Resolve(m, "s")
	assert.Equal(t, equiv.Parameter, b.Kind)
	assert.Equal(t, 1, b.Index)
	assert.Equal(t, "String", b.Type)

	// The last declarator wins.
	b = equiv.Resolve(m, "k")
	assert.Equal(t, equiv.Local, b.Kind)
	assert.Equal(t, "long", b.Type)
	assert.Equal(t, "2", ast.Format(b.Value()))

	b = equiv.Resolve(m, "c")
	assert.Equal(t, equiv.Local, b.Kind)
	assert.Equal(t, "char", b.Type)
	assert.Nil(t, b.Value())

	b = equiv.Resolve(m, "System")
	assert.Equal(t, equiv.Unbound, b.Kind)
}

func TestEquivalent(t *testing.T) {
	u, tpl := method(t, user), method(t, template)

	for _, test := range []struct {
		x, y string
		want bool
	}{
		// Parameters correspond by position.
		{"i", "lo", true},
		{"i", "hi", false},
		{"key", "key", true},
		{"a[i]", "arr[lo]", true},
		{"a[i]", "arr[hi]", false},
		{"a.length", "arr.length", true},
		// Locals correspond by type and initializer.
		{"mid", "m", true},
		{"copy", "copy", true},
		{"x", "y", true},
		{"mid", "lo", false},
		// Unbound names and values compare by text.
		{"Integer.MAX_VALUE", "Integer.MAX_VALUE", true},
		{"System.out", "System.err", false},
		{"0", "0", true},
		{"0", "1", false},
		{"(i + j) / 2", "(lo + hi) / 2", true},
		{"(i + j) / 2", "(lo + hi) * 2", false},
		{"i + j", "hi + lo", false},
		{"i - 1", "lo - 1", true},
		{"-i", "-lo", true},
		{"i++", "++lo", false},
		{"i += 1", "lo += 1", true},
		{"i += 1", "lo -= 1", false},
		// Calls.
		{"search(a, i, mid - 1, key)", "search(arr, lo, m - 1, key)", true},
		{"search(a, i, mid - 1, key)", "search(arr, lo, m + 1, key)", false},
		{"search(a, i, key)", "search(arr, lo, m, key)", false},
		{"this.search(a)", "search(arr)", false},
		{"Math.max(i, j)", "Math.max(lo, hi)", true},
		{"Math.max(i, j)", "Math.min(lo, hi)", false},
		// Variant mismatch.
		{"i", "a[i]", false},
		{"i", "1", false},
		// Uninterpreted expressions compare their children.
		{"i < j ? i : j", "lo < hi ? lo : hi", true},
		{"i < j ? i : j", "lo < hi ? hi : lo", false},
		{"new int[i]", "new int[lo]", true},
		{"(long) i", "(int) lo", false},
	} {
		got := equiv.EquivalentText(u, tpl, test.x, test.y)
		assert.Equal(t, test.want, got, "EquivalentText(%q, %q)", test.x, test.y)
	}
}

func TestReflexive(t *testing.T) {
	m := method(t, user)
	for _, src := range []string{
		"i", "a[i + 1]", "a.length", "search(a, i, mid - 1, key)", "-(-i)",
		"i < j ? i : j", "mid", "x", `"text"`, "r *= i", "Foo::bar",
		"(long) (i - j)", "x -> { int k = x + i; return k; }",
	} {
		x := expr(t, src)
		assert.True(t, equiv.Equivalent(m, m, x, x), src)
	}
}

// TestSwappedParameters checks that names inside uninterpreted
// expressions are resolved: identical text over swapped parameters is
// not equivalent, and a consistent renaming does not change outcomes.
func TestSwappedParameters(t *testing.T) {
	u := method(t, "int f(int a, int b) { return 0; }")
	swapped := method(t, "int f(int b, int a) { return 0; }")
	renamed := method(t, "int f(int x, int y) { return 0; }")

	for _, test := range []struct {
		src        string
		swapped    string // src with the parameters of swapped renamed to x, y
		positional string // src with a, b renamed to x, y
	}{
		{"a - b", "y - x", "x - y"},
		{"a > 0 ? a - b : 0", "y > 0 ? y - x : 0", "x > 0 ? x - y : 0"},
		{"(long) (a - b)", "(long) (y - x)", "(long) (x - y)"},
		{"new int[a - b]", "new int[y - x]", "new int[x - y]"},
		{"() -> { int d = a - b; return d; }", "() -> { int d = y - x; return d; }", "() -> { int d = x - y; return d; }"},
	} {
		assert.False(t, equiv.EquivalentText(u, swapped, test.src, test.src), "swapped %q", test.src)
		assert.False(t, equiv.EquivalentText(u, renamed, test.src, test.swapped), "renamed %q", test.swapped)
		assert.True(t, equiv.EquivalentText(u, renamed, test.src, test.positional), "positional %q", test.positional)
	}
}

// TestNamesVerbatim checks that identifiers are not normalized: the
// precomposed and decomposed spellings of "café" are different names.
func TestNamesVerbatim(t *testing.T) {
	m := method(t, "void f() { }")
	const composed, decomposed = "caf\u00e9", "cafe\u0301"
	assert.True(t, equiv.EquivalentText(m, m, composed, composed))
	assert.False(t, equiv.EquivalentText(m, m, composed, decomposed))
	assert.False(t, equiv.EquivalentText(m, m, composed+"(1)", decomposed+"(1)"))
}

func TestUnparseable(t *testing.T) {
	m := method(t, user)
	assert.True(t, equiv.EquivalentText(m, m, "i <", "i  <"))
	assert.False(t, equiv.EquivalentText(m, m, "i <", "i < j"))
}

func TestLocalCycle(t *testing.T) {
	// Each local's initializer refers to the other local.
	a := method(t, "void f() { int x = y; int y = x; }")
	b := method(t, "void g() { int p = q; int q = p; }")
	assert.True(t, equiv.EquivalentText(a, b, "x", "p"))
}
