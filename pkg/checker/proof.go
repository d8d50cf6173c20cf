// Package checker implements the interactive Fitch-style proof state
// machine (spec §4.4): a Problem accumulates Lines and nested Subproofs
// under edits (add_line, begin_subproof, end_subproof,
// end_and_begin_subproof, delete_line), validating each new line against
// pkg/rules as it is added and reporting accumulated errors via
// hashicorp/go-multierror, the way the teacher's core packages surface
// multi-cause failures.
package checker

import "github.com/nd-prover/ndcheck/pkg/term"

// ProofObject is either a *Line or a *Subproof.
type ProofObject interface {
	objID() int
}

// Line is one justified step: a formula plus the rule and citations that
// license it. Assigned a monotonically increasing id at construction and
// never mutated thereafter (spec §3 "Lifecycle"); Err records the most
// recent validation failure, if any, so callers can recover incrementally
// instead of fatally rejecting an edit.
type Line struct {
	ID         int
	Formula    term.Formula
	Rule       string
	Citations  []int // object ids of cited Lines/Subproofs
	OwnerDepth int    // index into the owning Problem's open-subproof stack
	Err        error
}

func (l *Line) objID() int { return l.ID }

func (l *Line) isAssumption() bool { return l.Rule == "PR" || l.Rule == "AS" }

// Subproof is a nested sequence headed by an assumption Line (rule AS, or
// PR only at context level). Sequence grows at its tail only until Closed
// is set by end_subproof; a closed Subproof's interior lines are no longer
// individually citable, but the Subproof itself is citable as one unit
// (spec §3 "Scope invariant").
type Subproof struct {
	ID     int
	Seq    []ProofObject
	Depth  int // this subproof's own nesting depth (root = 0)
	Closed bool
}

func (s *Subproof) objID() int { return s.ID }

func (s *Subproof) assumption() *Line {
	return s.Seq[0].(*Line)
}

// lastLine returns the subproof's final Line, which end_subproof always
// appends last (spec §4.4). The tail of the root or of a still-open
// subproof can be a nested Subproof; ok is false then.
func (s *Subproof) lastLine() (*Line, bool) {
	if len(s.Seq) == 0 {
		return nil, false
	}
	l, ok := s.Seq[len(s.Seq)-1].(*Line)
	return l, ok
}
