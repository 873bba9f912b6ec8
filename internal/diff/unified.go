// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContextLines is the number of unchanged lines of surrounding
// context displayed by Unified.
const DefaultContextLines = 3

// Unified returns a unified diff of the old and new strings.
// The old and new labels are the names of the old and new files.
// If the strings are equal, it returns the empty string.
func Unified(oldLabel, newLabel, old, new string) string {
	if old == new {
		return ""
	}
	ud := difflib.UnifiedDiff{
		A:        lines(ensureNewline(old)),
		B:        lines(ensureNewline(new)),
		FromFile: oldLabel,
		ToFile:   newLabel,
		Context:  DefaultContextLines,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		// The writer is a strings.Builder, which never fails.
		panic(err)
	}
	return text
}

func ensureNewline(s string) string {
	if s != "" && !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}
