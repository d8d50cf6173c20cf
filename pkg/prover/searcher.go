package prover

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/nd-prover/ndcheck/pkg/term"
)

// SearchOptions tunes the search beyond what spec.md §4.5 pins down.
type SearchOptions struct {
	// ShareSeenAcrossSiblings controls whether independent alternative
	// branches (∨E's second disjunct-subproof, ↔E-force's two candidate
	// formulas) share one memoization table or each get their own copy.
	// spec.md §9 leaves this an open question; original_source's
	// prover.py shares it at most call sites and copies at exactly these
	// two, so "true" (the default) generalizes that to full sharing, which
	// is sound (a shared table only prunes search, never admits an
	// invalid derivation) and faster; "false" reproduces the original's
	// narrower, more conservative sharing.
	ShareSeenAcrossSiblings bool
	// MemoTableSize bounds the per-search LRU memoization table (§5: one
	// table per search, never shared across concurrent searches).
	MemoTableSize int
}

// DefaultSearchOptions shares one memoization table across sibling
// branches (see ShareSeenAcrossSiblings's doc) and bounds it at 4096
// entries.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{ShareSeenAcrossSiblings: true, MemoTableSize: 4096}
}

// seenEntry is the memoization table's stored value: the best (cheapest)
// cost reached at this (assumptions, goal) state, and the widest set of
// formulas derived at that cost (spec §4.5 "Memoization").
type seenEntry struct {
	cost     [2]int // (ip_count, line_count), lexicographic
	formulas map[string]term.Formula
}

// Searcher is one in-progress attempt at proving proof.goal from
// proof.assumptions; it is prover.py's Prover, renamed to avoid colliding
// with the package name.
type Searcher struct {
	proof *searchProof
	seen  *lru.Cache[string, seenEntry]
	alloc *idAlloc
	clock clockwork.Clock
	// deadlineSet is false for the unbounded "complete=false" fallback
	// pass (spec §4.5 "complete=false ... no deadline").
	deadlineSet bool
	deadline    time.Time
	opts        SearchOptions
}

// ErrTimeout is returned (and, at the top level, swallowed into a retry)
// when a recursive entry finds the deadline already passed.
type timeoutError struct{}

func (timeoutError) Error() string { return "search deadline exceeded" }

// ErrTimeout is the sentinel error a deadline overrun produces.
var ErrTimeout error = timeoutError{}

func newSearcher(proof *searchProof, seen *lru.Cache[string, seenEntry], alloc *idAlloc, clock clockwork.Clock, deadlineSet bool, deadline time.Time, opts SearchOptions) *Searcher {
	return &Searcher{proof: proof, seen: seen, alloc: alloc, clock: clock, deadlineSet: deadlineSet, deadline: deadline, opts: opts}
}

// copy snapshots the current proof into an independent branch that shares
// this searcher's memoization table, id allocator, clock and deadline —
// prover.py's Prover.copy.
func (s *Searcher) copy() *Searcher {
	return newSearcher(s.proof.copyProof(s.alloc), s.seen, s.alloc, s.clock, s.deadlineSet, s.deadline, s.opts)
}

// siblingSeen returns the table this searcher's independent alternative
// branches should use, per ShareSeenAcrossSiblings.
func (s *Searcher) siblingSeen() *lru.Cache[string, seenEntry] {
	if s.opts.ShareSeenAcrossSiblings {
		return s.seen
	}
	cloned, _ := lru.New[string, seenEntry](max(s.seen.Len()+s.opts.MemoTableSize, 1))
	for _, k := range s.seen.Keys() {
		if v, ok := s.seen.Peek(k); ok {
			cloned.Add(k, v)
		}
	}
	return cloned
}

// withProof returns a Searcher identical to s but aimed at a fresh branch
// proof, sharing (or not, per siblingSeen) the memoization table.
func (s *Searcher) withProof(p *searchProof, seen *lru.Cache[string, seenEntry]) *Searcher {
	return newSearcher(p, seen, s.alloc, s.clock, s.deadlineSet, s.deadline, s.opts)
}

// prove is the recursive search step of spec §4.5 phase 2.
func (s *Searcher) prove(complete bool) (bool, error) {
	if s.deadlineSet && !s.clock.Now().Before(s.deadline) {
		return false, ErrTimeout
	}
	if !s.enterState() {
		return false, nil
	}

	if eliminationSweep(s) {
		return true, nil
	}
	ok, err := s.introduce(complete)
	if err != nil || ok {
		return ok, err
	}

	type strategy func(*Searcher, bool) (bool, error)
	strategies := []strategy{
		func(p *Searcher, complete bool) (bool, error) {
			ok, err := forceNotE(p, complete)
			if err != nil || !ok {
				return false, err
			}
			return p.prove(complete)
		},
		func(p *Searcher, complete bool) (bool, error) {
			ok, err := forceImpE(p, complete)
			if err != nil || !ok {
				return false, err
			}
			return p.prove(complete)
		},
		func(p *Searcher, complete bool) (bool, error) {
			ok, err := forceIffE(p, complete)
			if err != nil || !ok {
				return false, err
			}
			return p.prove(complete)
		},
		orE,
		introduceIP,
	}

	var branches []*searchProof
	for _, strat := range strategies {
		p := s.copy()
		ok, err := strat(p, complete)
		if err != nil {
			return false, err
		}
		if ok {
			branches = append(branches, p.proof)
			if !complete {
				break
			}
		}
	}
	return s.proof.commitBestBranch(branches), nil
}

// enterState implements spec §4.5's memoization gate: dominated re-entries
// (cost no better, formulas no new) are pruned; otherwise the table is
// widened to the pointwise best seen so far (prover.py's _enter_state).
func (s *Searcher) enterState() bool {
	key := memoKey(s.proof.assumptions, s.proof.goal)
	cost := [2]int{s.proof.nIP, s.proof.nLines}
	formulas := s.proof.formulas

	if prev, ok := s.seen.Get(key); ok {
		if costGE(cost, prev.cost) && subsetOrEqual(formulas, prev.formulas) {
			return false
		}
		if costGT(cost, prev.cost) {
			cost = prev.cost
		}
		if properSubset(formulas, prev.formulas) {
			formulas = prev.formulas
		}
	}
	s.seen.Add(key, seenEntry{cost: cost, formulas: cloneFormulas(formulas)})
	return true
}

func memoKey(assumptions map[string]term.Formula, goal term.Formula) string {
	keys := make([]string, 0, len(assumptions))
	for k := range assumptions {
		keys = append(keys, k)
	}
	sortStrings(keys)
	s := ""
	for _, k := range keys {
		s += k + "\x1f"
	}
	return s + "\x1e" + term.Key(goal)
}

func sortStrings(xs []string) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func cloneFormulas(m map[string]term.Formula) map[string]term.Formula {
	out := make(map[string]term.Formula, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func costGE(a, b [2]int) bool { return a[0] > b[0] || (a[0] == b[0] && a[1] >= b[1]) }
func costGT(a, b [2]int) bool { return a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) }

func subsetOrEqual(a, b map[string]term.Formula) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func properSubset(a, b map[string]term.Formula) bool {
	return subsetOrEqual(a, b) && len(a) < len(b)
}
