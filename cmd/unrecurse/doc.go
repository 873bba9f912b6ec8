// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
The unrecurse command replaces recursive Java methods with iterative
equivalents taken from a catalog of known algorithms.

	Usage: unrecurse [flags] [run | dumpconfig [file]]

Each subdirectory of the catalog directory is one algorithm. It holds
two Java files, one whose name contains "Recursive" and one whose name
contains "Iterative", each declaring the algorithm as its first method.

Every .java file beneath the input directory is parsed, and each of its
recursive methods is compared with the recursive implementation of each
catalog entry in turn. A method matches an entry when the two have the
same return and parameter types, the same number of if, for, foreach,
while, do-while, switch, break and continue statements, pairwise
equivalent loop and branch conditions, and equivalent arguments in
their recursive calls. Parameter names do not matter: parameters
correspond by position, and locals by type and initializer.

The first matching entry's iterative method replaces the method's
parameter list and body, renamed to the method's own parameter names.
The resulting file is written to the same relative path beneath the
output directory. Files without a match are copied unchanged; files
that cannot be parsed are reported and not written.

The command prints a table of the methods tried and, for every catalog
entry, the stage at which the comparison stopped:

	catalog          the entry is malformed or cannot be parsed
	signature        return or parameter types differ
	body             a method has no body
	construct-count  statement counts differ
	construct        a condition or loop clause differs
	recursive-call   the recursive calls have different arguments
	substitute       the iterative method could not be spliced in
	converted        the method was replaced

The -diff flag also prints a unified diff of each changed file. The
-report flag writes the table to a Markdown file, or to an HTML file if
the name ends in .html.

# Configuration

Settings come from built-in defaults (input userCode, catalog
algorithms, output userFileConverted), overridden by the environment
variables UNRECURSE_INPUT, UNRECURSE_CATALOG, UNRECURSE_OUTPUT,
UNRECURSE_ENCODING and UNRECURSE_JOBS, then by the TOML file named by
-config, then by flags.

Java files are read and written as UTF-8 unless -encoding names another
IANA character set, such as ISO-8859-1 or windows-1252.
The dumpconfig command prints the resulting settings as TOML:

	$ unrecurse -catalog /opt/algorithms dumpconfig > unrecurse.toml

The exit status is 1 if any file could not be read, parsed, or
written.
*/
package main
