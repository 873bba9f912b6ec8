// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report summarizes the results of a conversion run as a
// terminal table, a Markdown document, or an HTML page.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/recursion-tools/unrecurse/internal/convert"
)

// Status values of a file or method.
const (
	Converted = "converted"
	Unchanged = "unchanged"
	Failed    = "failed"
)

// A Summary counts the outcomes of a run.
type Summary struct {
	Files     int
	Changed   int // files with at least one converted method
	Failed    int
	Methods   int // recursive methods tried
	Converted int
}

// Summarize counts the outcomes in results.
func Summarize(results []*convert.FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed():
			s.Changed++
		}
		for _, m := range r.Methods {
			s.Methods++
			if m.Converted() != "" {
				s.Converted++
			}
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files (%d changed, %d failed), %d of %d recursive methods converted",
		s.Files, s.Changed, s.Failed, s.Converted, s.Methods)
}

// A row is one line of a report: a method, or a file without methods.
type row struct {
	file, method, status, detail string
}

func rows(results []*convert.FileResult) []row {
	var rs []row
	for _, r := range results {
		if r.Err != nil {
			rs = append(rs, row{r.Path, "", Failed, r.Err.Error()})
			continue
		}
		if len(r.Methods) == 0 {
			rs = append(rs, row{r.Path, "", Unchanged, "no recursive method"})
			continue
		}
		for _, m := range r.Methods {
			status := Unchanged
			if m.Converted() != "" {
				status = Converted
			}
			rs = append(rs, row{r.Path, m.Name, status, attempts(m)})
		}
	}
	return rs
}

// attempts describes the attempts for m, e.g. "factorial: construct:if, sum: converted".
func attempts(m *convert.MethodResult) string {
	if len(m.Attempts) == 0 {
		return "empty catalog"
	}
	parts := make([]string, len(m.Attempts))
	for i, a := range m.Attempts {
		parts[i] = a.Entry + ": " + a.Reason()
	}
	return strings.Join(parts, ", ")
}

var statusColor = map[string]*color.Color{
	Converted: color.New(color.FgGreen),
	Unchanged: color.New(color.FgYellow),
	Failed:    color.New(color.FgRed, color.Bold),
}

// WriteTable writes a table of results to w, followed by the summary
// and the catalog fingerprint. Colors follow color.NoColor.
func WriteTable(w io.Writer, results []*convert.FileResult, fingerprint string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Method", "Status", "Attempts"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, r := range rows(results) {
		table.Append([]string{r.file, r.method, statusColor[r.status].Sprint(r.status), r.detail})
	}
	table.Render()
	fmt.Fprintf(w, "%s\ncatalog %s\n", Summarize(results), fingerprint)
}

// Markdown returns a Markdown report of results.
func Markdown(results []*convert.FileResult, fingerprint string) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Conversion report\n\n")
	fmt.Fprintf(&buf, "%s.\n\nCatalog fingerprint: `%s`\n\n", Summarize(results), fingerprint)
	buf.WriteString("| File | Method | Status | Attempts |\n")
	buf.WriteString("|---|---|---|---|\n")
	for _, r := range rows(results) {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n", cell(r.file), cell(r.method), r.status, cell(r.detail))
	}
	return buf.Bytes()
}

// cell escapes s for use in a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// HTML renders a Markdown report as an HTML fragment.
func HTML(markdown []byte) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a report of results to the named file, as HTML if
// its extension is .html or .htm and as Markdown otherwise.
func WriteFile(name string, results []*convert.FileResult, fingerprint string) error {
	data := Markdown(results, fingerprint)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		var err error
		if data, err = HTML(data); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
	}
	return os.WriteFile(name, data, 0666)
}
