// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/recursion-tools/unrecurse/internal/failure"
)

// Options configures Run.
type Options struct {
	Input  string // directory of source files
	Output string // directory receiving the converted copies
	Jobs   int    // files converted concurrently; 0 means GOMAXPROCS
}

// Run converts every Java file beneath opts.Input and writes each
// result, changed or not, to the same relative path beneath
// opts.Output. Files are independent: a failure ends the processing
// of its own file only and is recorded in its result. The results are
// in lexical order of path. Run returns an error only if the input
// cannot be listed or ctx is cancelled.
func (c *Converter) Run(ctx context.Context, opts Options) ([]*FileResult, error) {
	paths, err := SourceFiles(opts.Input)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.ConvertFile(filepath.Join(opts.Input, rel), rel, filepath.Join(opts.Output, rel))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ConvertFile converts the file at path, recording rel as its name,
// and writes the result to output.
func (c *Converter) ConvertFile(path, rel, output string) *FileResult {
	raw, err := os.ReadFile(path)
	if err == nil {
		raw, err = c.decode(raw)
	}
	if err != nil {
		res := &FileResult{Path: rel, Err: failure.New(failure.ReadFailure, path, err)}
		c.logger().WithField("file", rel).WithError(res.Err).Error("skipped")
		return res
	}
	res, err := c.ConvertSource(rel, raw)
	if err != nil {
		res.Err = err
		c.logger().WithField("file", rel).WithError(err).Error("skipped")
		return res
	}
	data, err := c.encode(res.Result)
	if err == nil {
		err = writeFile(output, data)
	}
	if err != nil {
		res.Err = failure.New(failure.WriteFailure, output, err)
		c.logger().WithField("file", rel).WithError(res.Err).Error("not written")
		return res
	}
	res.Output = output
	return res
}

// SourceFiles returns the slash-separated paths, relative to dir, of
// the Java files beneath dir, in lexical order.
func SourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".java") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, failure.New(failure.ReadFailure, dir, err)
	}
	return paths, nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0777); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0666)
}
