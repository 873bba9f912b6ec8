// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a conversion run.
//
// Settings are taken, in increasing order of precedence, from built-in
// defaults, the UNRECURSE_* environment variables, a TOML file, and
// command-line flags (applied by the caller).
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/xyproto/env/v2"
)

// Built-in defaults, relative to the working directory.
const (
	DefaultInput   = "userCode"
	DefaultCatalog = "algorithms"
	DefaultOutput  = "userFileConverted"
)

// Config is the configuration of a run.
type Config struct {
	Input    string // directory of user source files
	Catalog  string // directory of catalog entries
	Output   string // directory receiving converted copies
	Encoding string `toml:",omitempty"` // IANA name of the user files' encoding; empty means UTF-8
	Jobs     int    `toml:",omitempty"` // files converted concurrently; 0 means one per CPU
	Report   string `toml:",omitempty"` // report file; .html for HTML, else Markdown
	Diff     bool   `toml:",omitempty"` // print unified diffs of changed files
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Default returns the built-in defaults overridden by the environment.
func Default() Config {
	return Config{
		Input:    env.Str("UNRECURSE_INPUT", DefaultInput),
		Catalog:  env.Str("UNRECURSE_CATALOG", DefaultCatalog),
		Output:   env.Str("UNRECURSE_OUTPUT", DefaultOutput),
		Encoding: env.Str("UNRECURSE_ENCODING", ""),
		Jobs:     env.Int("UNRECURSE_JOBS", 0),
	}
}

// Load decodes the TOML file into cfg. Fields absent from the file
// keep their values.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// Dump writes cfg to w as TOML.
func Dump(w io.Writer, cfg *Config) error {
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("no input directory")
	case c.Catalog == "":
		return errors.New("no catalog directory")
	case c.Output == "":
		return errors.New("no output directory")
	case c.Jobs < 0:
		return fmt.Errorf("invalid job count %d", c.Jobs)
	}
	return nil
}
