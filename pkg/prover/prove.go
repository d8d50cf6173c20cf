package prover

import (
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/nd-prover/ndcheck/pkg/checker"
	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/sat"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// Error reports a failure spec.md §4.5 classifies as belonging to the
// prover rather than the checker (an unprovable or not-yet-found
// argument), distinct from checker.Problem's per-line InferenceErrors.
type Error struct{ msg string }

func (e *Error) Error() string { return e.msg }

// Prove implements spec §4.5 end to end: a semantic gate, a deadline-
// bounded complete search falling back to an unbounded greedy one, and
// post-processing into a freshly built, re-validated checker.Problem.
// Proof generation is TFL-only (spec §6); callers enforce that upstream.
func Prove(premises []term.Formula, conclusion term.Formula, timeout time.Duration, opts SearchOptions, clock clockwork.Clock) (*checker.Problem, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	if cm := sat.Countermodel(premises, conclusion); cm != nil {
		return nil, &Error{msg: "Invalid argument. Countermodel:\n\n" + formatCountermodel(cm)}
	}

	alloc := &idAlloc{}
	baseSeq := make([]proofObject, 0, len(premises))
	for _, f := range premises {
		baseSeq = append(baseSeq, &searchLine{id: alloc.alloc(), formula: f, rule: "PR", isAssumption: true})
	}

	root, err := attemptSearch(alloc, baseSeq, conclusion, opts, clock, timeout, true)
	if err != nil {
		// A deadline overrun during the complete pass falls back to the
		// unbounded greedy pass (spec §4.5 "If both modes fail, raise...").
		root = nil
	}
	if root == nil {
		alloc = &idAlloc{}
		baseSeq = make([]proofObject, 0, len(premises))
		for _, f := range premises {
			baseSeq = append(baseSeq, &searchLine{id: alloc.alloc(), formula: f, rule: "PR", isAssumption: true})
		}
		root, err = attemptSearch(alloc, baseSeq, conclusion, opts, clock, 0, false)
		if err != nil || root == nil {
			return nil, &Error{msg: "Argument is valid, but no proof was found."}
		}
	}

	return process(logic.TFL, premises, conclusion, root, alloc), nil
}

// attemptSearch runs one top-level search pass and returns the proved
// root proof, or nil if the goal wasn't reached (err is non-nil only for
// a genuine deadline overrun).
func attemptSearch(alloc *idAlloc, baseSeq []proofObject, conclusion term.Formula, opts SearchOptions, clock clockwork.Clock, timeout time.Duration, withDeadline bool) (*searchProof, error) {
	size := opts.MemoTableSize
	if size <= 0 {
		size = 4096
	}
	seen, _ := lru.New[string, seenEntry](size)

	root := newSearchProof(alloc, baseSeq, conclusion)
	var deadline time.Time
	if withDeadline {
		deadline = clock.Now().Add(timeout)
	}
	s := newSearcher(root, seen, alloc, clock, withDeadline, deadline, opts)

	ok, err := s.prove(withDeadline)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return root, nil
}

func formatCountermodel(cm sat.Assignment) string {
	keys := make([]string, 0, len(cm))
	for k := range cm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s : %t", k, cm[k]))
	}
	return strings.Join(lines, "\n")
}
