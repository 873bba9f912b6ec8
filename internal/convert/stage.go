// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"

	"github.com/recursion-tools/unrecurse/internal/construct"
)

// A Stage is the point at which an attempt to match a method against a
// catalog entry stopped.
type Stage int

const (
	StageCatalog       Stage = iota // the entry could not be loaded
	StageSignature                  // parameter types or return type differ
	StageBody                       // a method has no body
	StageConstructCount             // statement counts differ
	StageConstruct                  // an analyzer rejected; see Attempt.Kind
	StageRecursiveCall              // recursive call arguments differ
	StageSubstitute                 // the iterative template could not be spliced in
	StageConverted                  // success
)

var stageNames = [...]string{
	StageCatalog:        "catalog",
	StageSignature:      "signature",
	StageBody:           "body",
	StageConstructCount: "construct-count",
	StageConstruct:      "construct",
	StageRecursiveCall:  "recursive-call",
	StageSubstitute:     "substitute",
	StageConverted:      "converted",
}

func (s Stage) String() string {
	if 0 <= s && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// An Attempt records the outcome of matching one method against one
// catalog entry.
type Attempt struct {
	Entry string
	Stage Stage
	Kind  construct.Kind // for StageConstruct and StageConstructCount
	Err   error          // for StageCatalog, StageBody, and StageSubstitute
}

// Reason describes where the attempt stopped, e.g. "construct:for".
func (a Attempt) Reason() string {
	switch a.Stage {
	case StageConstruct, StageConstructCount:
		return fmt.Sprintf("%s:%s", a.Stage, a.Kind)
	}
	return a.Stage.String()
}

// Converted reports whether the attempt succeeded.
func (a Attempt) Converted() bool { return a.Stage == StageConverted }
