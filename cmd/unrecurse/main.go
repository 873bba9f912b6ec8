// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/recursion-tools/unrecurse/internal/catalog"
	"github.com/recursion-tools/unrecurse/internal/config"
	"github.com/recursion-tools/unrecurse/internal/convert"
	"github.com/recursion-tools/unrecurse/internal/diff"
	"github.com/recursion-tools/unrecurse/internal/report"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	inputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "directory of Java files to convert",
	}
	catalogFlag = cli.StringFlag{
		Name:  "catalog",
		Usage: "directory of catalog entries",
	}
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "directory receiving the converted files",
	}
	encodingFlag = cli.StringFlag{
		Name:  "encoding",
		Usage: "character encoding of the Java files, e.g. ISO-8859-1 (default UTF-8)",
	}
	jobsFlag = cli.IntFlag{
		Name:  "jobs",
		Usage: "number of files converted concurrently (0 = one per CPU)",
	}
	diffFlag = cli.BoolFlag{
		Name:  "diff",
		Usage: "print a unified diff of each changed file",
	}
	reportFlag = cli.StringFlag{
		Name:  "report",
		Usage: "write a Markdown (or, for .html, HTML) report to this file",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every comparison",
	}
)

func main() {
	cmd := &command{stdout: os.Stdout, stderr: os.Stderr}
	if err := cmd.app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "unrecurse: %v\n", err)
		os.Exit(1)
	}
}

// A command is one invocation of the tool.
type command struct {
	stdout, stderr io.Writer
	dir            string // if set, relative paths are resolved against it
}

func (cmd *command) app() *cli.App {
	app := cli.NewApp()
	app.Name = "unrecurse"
	app.Usage = "replace recursive Java methods with iterative ones"
	app.Writer = cmd.stdout
	app.ErrWriter = cmd.stderr
	app.Flags = []cli.Flag{
		configFileFlag,
		inputFlag,
		catalogFlag,
		outputFlag,
		encodingFlag,
		jobsFlag,
		diffFlag,
		reportFlag,
		verboseFlag,
	}
	app.Action = cmd.run
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Convert the input directory (the default)",
			Action: cmd.run,
		},
		{
			Name:        "dumpconfig",
			Usage:       "Show configuration values",
			ArgsUsage:   "[file]",
			Action:      cmd.dumpConfig,
			Description: `The dumpconfig command shows configuration values.`,
		},
	}
	return app
}

// makeConfig applies the config file and flags to the defaults.
func (cmd *command) makeConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(cmd.path(file), &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.GlobalIsSet(inputFlag.Name) {
		cfg.Input = ctx.GlobalString(inputFlag.Name)
	}
	if ctx.GlobalIsSet(catalogFlag.Name) {
		cfg.Catalog = ctx.GlobalString(catalogFlag.Name)
	}
	if ctx.GlobalIsSet(outputFlag.Name) {
		cfg.Output = ctx.GlobalString(outputFlag.Name)
	}
	if ctx.GlobalIsSet(encodingFlag.Name) {
		cfg.Encoding = ctx.GlobalString(encodingFlag.Name)
	}
	if ctx.GlobalIsSet(jobsFlag.Name) {
		cfg.Jobs = ctx.GlobalInt(jobsFlag.Name)
	}
	if ctx.GlobalIsSet(diffFlag.Name) {
		cfg.Diff = ctx.GlobalBool(diffFlag.Name)
	}
	if ctx.GlobalIsSet(reportFlag.Name) {
		cfg.Report = ctx.GlobalString(reportFlag.Name)
	}
	return cfg, cfg.Validate()
}

func (cmd *command) path(name string) string {
	if cmd.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cmd.dir, name)
}

func (cmd *command) logger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = cmd.stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}

// run is the run command.
func (cmd *command) run(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", []string(ctx.Args()))
	}
	cfg, err := cmd.makeConfig(ctx)
	if err != nil {
		return err
	}
	log := cmd.logger(ctx.GlobalBool(verboseFlag.Name))
	enc, err := convert.Encoding(cfg.Encoding)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cmd.path(cfg.Catalog))
	if err != nil {
		return err
	}
	if len(cat.Entries) == 0 {
		log.WithField("catalog", cat.Dir).Warn("catalog is empty")
	}
	conv := &convert.Converter{Catalog: cat, Log: log, Encoding: enc}
	results, err := conv.Run(context.Background(), convert.Options{
		Input:  cmd.path(cfg.Input),
		Output: cmd.path(cfg.Output),
		Jobs:   cfg.Jobs,
	})
	if err != nil {
		return err
	}

	report.WriteTable(cmd.stdout, results, cat.Fingerprint)
	if cfg.Diff {
		for _, r := range results {
			if r.Err == nil && r.Changed() {
				io.WriteString(cmd.stdout, diff.Unified("a/"+r.Path, "b/"+r.Path, string(r.Src), string(r.Result)))
			}
		}
	}
	if cfg.Report != "" {
		if err := report.WriteFile(cmd.path(cfg.Report), results, cat.Fingerprint); err != nil {
			return err
		}
	}
	if s := report.Summarize(results); s.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", s.Failed, s.Files)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func (cmd *command) dumpConfig(ctx *cli.Context) error {
	cfg, err := cmd.makeConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() == 0 {
		return config.Dump(cmd.stdout, &cfg)
	}
	f, err := os.Create(cmd.path(ctx.Args().Get(0)))
	if err != nil {
		return err
	}
	if err := config.Dump(f, &cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
