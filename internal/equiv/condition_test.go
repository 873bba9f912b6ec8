// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recursion-tools/unrecurse/internal/equiv"
)

func TestConditionsEquivalent(t *testing.T) {
	u := method(t, `void bubble(int[] arr, int n) {
		for (int i = 0; i < n - 1; i++) { }
	}`)
	tpl := method(t, `void bubble(int[] a, int dim) {
		for (int i = 0; i < dim - 1; i++) { }
	}`)

	for _, test := range []struct {
		x, y string
		want bool
	}{
		{"i < n - 1", "i < dim - 1", true},
		{"n == 1", "dim == 1", true},
		{"n == 1", "dim == 0", false},
		{"n > 0 && arr[n - 1] > 0", "dim > 0 && a[dim - 1] > 0", true},
		// Every atom must match, not just one.
		{"n > 0 && arr[n - 1] > 0", "dim > 0 && a[dim - 2] > 0", false},
		// Operator counts must agree.
		{"n > 0 && n < 9", "dim > 0 || dim < 9", false},
		{"n > 0 && n < 9", "dim > 0 && dim < 9 && i > 0", false},
		// Parentheses left over by splitting are trimmed.
		{"(n > 0 && n < 9) || i == 0", "(dim > 0 && dim < 9) || i == 0", true},
		{"(n > 0 && n < 9) || i == 0", "(dim > 0 && dim < 9) || i == 1", false},
		{"!(n > 0 || i > 0)", "!(dim > 0 || i > 0)", true},
	} {
		got := equiv.ConditionsEquivalent(u, tpl, test.x, test.y)
		assert.Equal(t, test.want, got, "ConditionsEquivalent(%q, %q)", test.x, test.y)
	}
}

func TestCondition(t *testing.T) {
	m := method(t, user)
	c := equiv.NewComparer(m, m)
	assert.True(t, c.Condition(nil, nil))
	assert.False(t, c.Condition(expr(t, "i < j"), nil))
	assert.True(t, c.Condition(expr(t, "i < j && j > 0"), expr(t, "i<j&&j>0")))
}
