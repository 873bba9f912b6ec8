// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/tools/txtar"

	"github.com/recursion-tools/unrecurse/internal/testfiles"
)

// Test runs the unrecurse command on each scenario
// described by a testdata/*.txtar file.
func Test(t *testing.T) {
	for _, name := range []string{"UNRECURSE_INPUT", "UNRECURSE_CATALOG", "UNRECURSE_OUTPUT", "UNRECURSE_JOBS", "UNRECURSE_ENCODING"} {
		t.Setenv(name, "")
	}
	defer func(old bool) { color.NoColor = old }(color.NoColor)
	color.NoColor = true

	matches, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	for _, filename := range matches {
		t.Run(filename, func(t *testing.T) {
			ar, err := txtar.ParseFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			tmpdir := testfiles.ExtractTxtarToTmp(t, ar)

			// Parse archive comment as directives of these forms:
			//
			//  [!]unrecurse args...	command-line arguments
			//  [!]want arg		expected/unwanted string in stdout
			//  stderr arg		expected string in stderr
			//  [!]exists file	file expected/unexpected after the command
			//
			// Args may be Go-quoted strings.
			type testcase struct {
				linenum int
				args    []string
				wantErr bool
				want    map[string]bool // string -> sense
				stderr  []string
				exists  map[string]bool // file -> sense
			}
			var cases []*testcase
			var current *testcase
			for i, line := range strings.Split(string(ar.Comment), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || line[0] == '#' {
					continue // skip blanks and comments
				}

				words, err := words(line)
				if err != nil {
					t.Fatalf("cannot break line into words: %v (%s)", err, line)
				}
				kind := words[0]
				if kind != "unrecurse" && kind != "!unrecurse" && current == nil {
					t.Fatalf("%q directive must be after 'unrecurse'", kind)
				}
				switch kind {
				case "unrecurse", "!unrecurse":
					current = &testcase{
						linenum: i + 1,
						want:    make(map[string]bool),
						exists:  make(map[string]bool),
						args:    words[1:],
						wantErr: kind[0] == '!',
					}
					cases = append(cases, current)
				case "want", "!want":
					if len(words) != 2 {
						t.Fatalf("'want' directive needs argument <<%s>>", line)
					}
					current.want[words[1]] = kind[0] != '!'
				case "stderr":
					current.stderr = append(current.stderr, words[1:]...)
				case "exists", "!exists":
					for _, file := range words[1:] {
						current.exists[file] = kind[0] != '!'
					}
				default:
					t.Fatalf("%s: invalid directive %q", filename, kind)
				}
			}

			for _, tc := range cases {
				t.Run(fmt.Sprintf("L%d", tc.linenum), func(t *testing.T) {
					// Run the command.
					var stdout, stderr bytes.Buffer
					cmd := &command{stdout: &stdout, stderr: &stderr, dir: tmpdir}
					err := cmd.app().Run(append([]string{"unrecurse"}, tc.args...))
					if err != nil {
						fmt.Fprintf(&stderr, "unrecurse: %v\n", err)
						if !tc.wantErr {
							t.Fatalf("unrecurse failed: %v (stderr=%s)", err, &stderr)
						}
					} else if tc.wantErr {
						t.Fatalf("unrecurse succeeded unexpectedly (stdout=%s)", &stdout)
					}

					// Check each directive.
					got := stdout.String()
					for str, sense := range tc.want {
						if strings.Contains(got, str) != sense {
							if sense {
								t.Errorf("missing %q", str)
							} else {
								t.Errorf("unwanted %q", str)
							}
							t.Errorf("got: <<%s>>", got)
						}
					}
					for _, str := range tc.stderr {
						if !strings.Contains(stderr.String(), str) {
							t.Errorf("stderr lacks %q: <<%s>>", str, &stderr)
						}
					}
					for file, sense := range tc.exists {
						_, err := os.Stat(filepath.Join(tmpdir, file))
						if (err == nil) != sense {
							t.Errorf("exists(%s) = %v, want %v", file, err == nil, sense)
						}
					}
				})
			}
		})
	}
}

// words breaks a string into words, respecting
// Go string quotations around words with spaces.
func words(s string) ([]string, error) {
	var words []string
	for s != "" {
		s = strings.TrimSpace(s)
		var word string
		if s[0] == '"' || s[0] == '`' {
			prefix, err := strconv.QuotedPrefix(s)
			if err != nil {
				return nil, err
			}
			s = s[len(prefix):]
			word, _ = strconv.Unquote(prefix)
		} else {
			prefix, rest, _ := strings.Cut(s, " ")
			s = rest
			word = prefix
		}
		words = append(words, word)
	}
	return words, nil
}
