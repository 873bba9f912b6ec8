// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recursion-tools/unrecurse/internal/diff"
	"github.com/recursion-tools/unrecurse/internal/failure"
)

func TestApply(t *testing.T) {
	src := []byte("int f(int n) { return n; }")

	out, err := apply("A.java", src, []diff.Edit{{Start: 10, End: 11, New: "k"}})
	require.NoError(t, err)
	assert.Equal(t, "int f(int k) { return n; }", string(out))

	_, err = apply("A.java", src, []diff.Edit{
		{Start: 4, End: 12, New: "g(int k)"},
		{Start: 10, End: 11, New: "m"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrWrite)
	assert.Contains(t, err.Error(), "A.java: write failure: applying edits")

	_, err = apply("A.java", src, []diff.Edit{{Start: 20, End: 40, New: ""}})
	assert.ErrorIs(t, err, failure.ErrWrite)
}
