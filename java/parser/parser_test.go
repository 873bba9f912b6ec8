// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recursion-tools/unrecurse/java/ast"
	"github.com/recursion-tools/unrecurse/java/parser"
)

const sortSrc = `package demo;

public class Sorts {
    // recurSelectionSort sorts a[index:].
    static void recurSelectionSort(int a[], int n, int index) {
        if (index == n)
            return;
        int k = minIndex(a, index, n - 1);
        if (k != index) {
            int temp = a[k];
            a[k] = a[index];
            a[index] = temp;
        }
        recurSelectionSort(a, n, index + 1);
    }

    static int minIndex(int[] a, int i, int j) {
        if (i == j) return i;
        int k = minIndex(a, i + 1, j);
        return (a[i] < a[k]) ? i : k;
    }

    abstract int size();
}
`

func TestParseFile(t *testing.T) {
	file, err := parser.ParseFile("Sorts.java", []byte(sortSrc))
	require.NoError(t, err)
	require.Len(t, file.Methods, 3)

	m := file.Methods[0]
	assert.Equal(t, "recurSelectionSort", m.Name)
	assert.Equal(t, "void", m.ReturnType)
	require.Len(t, m.Params, 3)
	// C-style array dimensions belong to the type.
	assert.Equal(t, "int[]", m.Params[0].Type)
	assert.Equal(t, "a", m.Params[0].Name)
	assert.Equal(t, "a", m.Slice(m.Params[0].NameSpan))
	assert.Equal(t, "(int a[], int n, int index)", m.Slice(m.ParamsSpan))
	require.NotNil(t, m.Body)
	assert.Len(t, m.Body.List, 4)

	assert.Equal(t, "int[]", file.Methods[1].Params[0].Type)
	assert.Nil(t, file.Methods[2].Body, "abstract method has no body")
	assert.Equal(t, file, m.File)
}

func TestParseFileSyntaxError(t *testing.T) {
	_, err := parser.ParseFile("Bad.java", []byte("class Bad {\n  int f( { return 1; }\n}\n"))
	require.Error(t, err)
	var perr *parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Bad.java", perr.Filename)
	assert.GreaterOrEqual(t, perr.Line, 1)
}

func TestParseMethod(t *testing.T) {
	m, err := parser.ParseMethod("int fact(int n){ if(n==0) return 1; return n*fact(n-1); }")
	require.NoError(t, err)
	assert.Equal(t, "fact", m.Name)
	assert.Equal(t, "int fact(int n){ if(n==0) return 1; return n*fact(n-1); }", m.Text())

	require.Len(t, m.Body.List, 2)
	ifStmt, ok := m.Body.List[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "n == 0", ast.Format(ifStmt.Cond))

	_, err = parser.ParseMethod("int x = 1;")
	assert.ErrorIs(t, err, parser.ErrNoMethod)
}

func TestParseExpr(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{"a", "a"},
		{"a[i+1]", "a[i + 1]"},
		{"this.size", "this.size"},
		{"fact(n-1)", "fact(n - 1)"},
		{"Math.max( a ,b )", "Math.max(a, b)"},
		{"(lo+hi)/2", "(lo + hi) / 2"},
		{"i++", "i++"},
		{"--i", "--i"},
		{"-(-x)", "-(-x)"},
		{"- -x", "- -x"},
		{"r *= i", "r *= i"},
		{"!done", "!done"},
		{"a < b ? a : b", "a < b ? a : b"},
		{"new int[n]", "new int [ n ]"},
		{`"a b"`, `"a b"`},
	} {
		x, err := parser.ParseExpr(test.src)
		if !assert.NoError(t, err, test.src) {
			continue
		}
		assert.Equal(t, test.want, ast.Format(x), test.src)
	}

	for _, bad := range []string{"", "i <", "a; b", "(i < n"} {
		_, err := parser.ParseExpr(bad)
		assert.Error(t, err, bad)
	}
}

func TestStatements(t *testing.T) {
	m, err := parser.ParseMethod(`void f(int n, int[] xs) {
		for (int i = 0, j = n; i < j; i++, j--) {}
		for (;;) { break; }
		for (String s : names) { continue; }
		while (n > 0) n--;
		do { n++; } while (n < 10);
		switch (n) {
		case 1:
		case 2:
			n = 0;
			break;
		default:
			n = 1;
		}
		label: for (int k : xs) { continue label; }
	}`)
	require.NoError(t, err)
	list := m.Body.List
	require.Len(t, list, 7)

	f := list[0].(*ast.For)
	require.NotNil(t, f.Decl)
	require.Len(t, f.Decl.Vars, 2)
	assert.Equal(t, "j", f.Decl.Vars[1].Name)
	assert.Equal(t, "n", ast.Format(f.Decl.Vars[1].Value))
	assert.Equal(t, "i < j", ast.Format(f.Cond))
	require.Len(t, f.Update, 2)
	assert.True(t, f.Update[1].(*ast.Unary).Postfix)

	empty := list[1].(*ast.For)
	assert.Nil(t, empty.Decl)
	assert.Empty(t, empty.Init)
	assert.Nil(t, empty.Cond)
	assert.Empty(t, empty.Update)

	each := list[2].(*ast.ForEach)
	assert.Equal(t, "String", each.Var.Type)
	assert.Equal(t, "s", each.Var.Name)
	assert.Equal(t, "names", ast.Format(each.X))

	assert.IsType(t, &ast.While{}, list[3])
	assert.IsType(t, &ast.DoWhile{}, list[4])

	sw := list[5].(*ast.Switch)
	assert.Equal(t, "n", ast.Format(sw.Tag))
	require.Len(t, sw.Entries, 3)
	assert.Empty(t, sw.Entries[0].Body)
	assert.Len(t, sw.Entries[1].Body, 2)
	assert.True(t, sw.Entries[2].IsDefault())

	other := list[6].(*ast.Other)
	assert.Equal(t, "labeled_statement", other.Kind)
	var labeled *ast.Continue
	for n := range ast.Preorder(other) {
		if c, ok := n.(*ast.Continue); ok {
			labeled = c
		}
	}
	require.NotNil(t, labeled)
	assert.Equal(t, "label", labeled.Label)
}

func TestCommentsIgnored(t *testing.T) {
	a, err := parser.ParseExpr("a /* left */ + /* right */ b")
	require.NoError(t, err)
	b, err := parser.ParseExpr("a+b")
	require.NoError(t, err)
	assert.Equal(t, ast.Format(a), ast.Format(b))
}
