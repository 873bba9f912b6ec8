// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"regexp"
	"strings"

	"github.com/recursion-tools/unrecurse/java/ast"
)

var logicalOp = regexp.MustCompile(`&&|\|\|`)

// ConditionsEquivalent reports whether the boolean conditions x (from
// method a) and y (from method b) are equivalent.
func ConditionsEquivalent(a, b *ast.Method, x, y string) bool {
	return NewComparer(a, b).ConditionText(x, y)
}

// Condition compares two condition expressions; see ConditionText.
func (c *Comparer) Condition(x, y ast.Expr) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return c.ConditionText(ast.Format(x), ast.Format(y))
}

// ConditionText compares two conditions by their text.
//
// The conditions must contain the same number of && and of ||
// operators. They are then split on those operators into ordered
// atoms, and every atom of x must be equivalent to the atom of y at
// the same position. Operator precedence is not considered.
func (c *Comparer) ConditionText(x, y string) bool {
	andX, orX := strings.Count(x, "&&"), strings.Count(x, "||")
	andY, orY := strings.Count(y, "&&"), strings.Count(y, "||")
	if andX != andY || orX != orY {
		return false
	}
	if andX == 0 && orX == 0 {
		return c.Text(x, y)
	}

	n := andX + 2*orX + 1
	atomsX, atomsY := atoms(x, n), atoms(y, n)
	if len(atomsX) != len(atomsY) {
		return false
	}
	for i := range atomsX {
		if !c.Text(atomsX[i], atomsY[i]) {
			return false
		}
	}
	return true
}

// atoms splits cond into at most n non-blank operands of && and ||.
// Parentheses left unbalanced by the split are repaired.
func atoms(cond string, n int) []string {
	var atoms []string
	for _, atom := range logicalOp.Split(cond, n) {
		atom = trimParens(strings.TrimSpace(atom))
		if atom != "" {
			atoms = append(atoms, atom)
		}
	}
	return atoms
}

// trimParens removes surplus leading '(' and trailing ')' characters,
// then closes or opens any parentheses still unbalanced, as in "!(a".
func trimParens(s string) string {
	opens, closes := strings.Count(s, "("), strings.Count(s, ")")
	for opens > closes && strings.HasPrefix(s, "(") {
		s = strings.TrimSpace(s[1:])
		opens--
	}
	for closes > opens && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[:len(s)-1])
		closes--
	}
	switch {
	case opens > closes:
		s += strings.Repeat(")", opens-closes)
	case closes > opens:
		s = strings.Repeat("(", closes-opens) + s
	}
	return s
}
