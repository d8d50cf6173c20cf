// Package prover implements the TFL proof-search engine of spec.md §4.5:
// a bounded backtracking search over the same Fitch-style proof shape
// pkg/checker validates, guarded at every branch point by pkg/sat so the
// engine never explores a semantically dead end. Grounded on
// original_source/nd_prover/prover.py's _ProofObject/_Line/_Proof/
// Eliminator/Introducer/Prover/Processor, translated into an explicit,
// copy-on-write search tree instead of Python's dataclass mutation.
package prover

import "github.com/nd-prover/ndcheck/pkg/term"

// idAlloc hands out object ids that increase monotonically across one
// top-level Prove call, mirroring spec §5 "line ids increase monotonically
// in construction order" while staying per-search state rather than a
// process-wide counter (prover.py's _ProofObject.count is a class
// variable; sharing that across concurrent searches would violate §5).
type idAlloc struct{ next int }

func (a *idAlloc) alloc() int {
	a.next++
	return a.next
}

// proofObject is either a *searchLine or a *searchProof, mirroring
// checker.ProofObject's role one layer down (this is the search engine's
// own working representation, translated to checker.Problem only at the
// very end by the Processor).
type proofObject interface {
	objID() int
	lineCount() int
	ipCount() int
}

// searchLine is one derived or assumed line of a branch under
// construction.
type searchLine struct {
	id           int
	formula      term.Formula
	rule         string
	citations    []int
	isAssumption bool
}

func (l *searchLine) objID() int     { return l.id }
func (l *searchLine) lineCount() int { return 1 }
func (l *searchLine) ipCount() int {
	if l.rule == "IP" {
		return 1
	}
	return 0
}

func (l *searchLine) copy(a *idAlloc) *searchLine {
	return &searchLine{id: a.alloc(), formula: l.formula, rule: l.rule, citations: l.citations, isAssumption: l.isAssumption}
}

// searchProof is a sequence of proofObjects all working toward goal,
// alongside the sets/counts prover.py's _Proof.init() derives from seq —
// kept as explicit fields rather than recomputed on every read, updated
// incrementally by add() exactly as the original does.
type searchProof struct {
	id          int
	seq         []proofObject
	goal        term.Formula
	formulas    map[string]term.Formula
	assumptions map[string]term.Formula
	nLines      int
	nIP         int
}

func newSearchProof(a *idAlloc, seq []proofObject, goal term.Formula) *searchProof {
	p := &searchProof{id: a.alloc(), seq: append([]proofObject(nil), seq...), goal: goal}
	p.reinit()
	return p
}

func (p *searchProof) objID() int     { return p.id }
func (p *searchProof) lineCount() int { return p.nLines }
func (p *searchProof) ipCount() int   { return p.nIP }

func (p *searchProof) reinit() {
	p.formulas = map[string]term.Formula{}
	p.assumptions = map[string]term.Formula{}
	p.nLines, p.nIP = 0, 0
	for _, obj := range p.seq {
		if l, ok := obj.(*searchLine); ok {
			p.formulas[term.Key(l.formula)] = l.formula
			if l.isAssumption {
				p.assumptions[term.Key(l.formula)] = l.formula
			}
			p.nLines++
			if l.rule == "IP" {
				p.nIP++
			}
		} else {
			p.nLines += obj.lineCount()
			p.nIP += obj.ipCount()
		}
	}
}

// assumptionsOf lists p's assumption set as a slice, for passing to
// pkg/sat's semantic-entailment checks.
func assumptionsOf(p *searchProof) []term.Formula {
	out := make([]term.Formula, 0, len(p.assumptions))
	for _, f := range p.assumptions {
		out = append(out, f)
	}
	return out
}

// hasFormula reports whether f already occurs (by value) as a derived or
// assumed line accessible to this branch.
func (p *searchProof) hasFormula(f term.Formula) bool {
	_, ok := p.formulas[term.Key(f)]
	return ok
}

// copyWithGoal builds a new branch sharing this proof's seq (copy-on-write:
// the backing slice is copied, the *searchLine/*searchProof elements
// aren't) but aimed at a different goal.
func (p *searchProof) copyWithGoal(a *idAlloc, goal term.Formula) *searchProof {
	return newSearchProof(a, p.seq, goal)
}

// copyProof is copyWithGoal aimed at the same goal — prover.py's
// Prover.copy snapshots the branch proof before a strategy mutates it.
func (p *searchProof) copyProof(a *idAlloc) *searchProof {
	return newSearchProof(a, p.seq, p.goal)
}

// add appends objs, updating the running sets/counts incrementally
// (prover.py's _Proof.add).
func (p *searchProof) add(objs ...proofObject) {
	for _, obj := range objs {
		if l, ok := obj.(*searchLine); ok {
			p.formulas[term.Key(l.formula)] = l.formula
			if l.isAssumption {
				p.assumptions[term.Key(l.formula)] = l.formula
			}
			p.nLines++
			if l.rule == "IP" {
				p.nIP++
			}
		} else {
			p.nLines += obj.lineCount()
			p.nIP += obj.ipCount()
		}
		p.seq = append(p.seq, obj)
	}
}

// idToObj flattens this proof's tree into a map from object id to the
// *searchLine that carries it (subproofs recurse; only lines are keyed,
// matching prover.py's id_to_obj which is only ever queried for lines).
func (p *searchProof) idToObj() map[int]*searchLine {
	out := map[int]*searchLine{}
	p.collectIDToObj(out)
	return out
}

func (p *searchProof) collectIDToObj(out map[int]*searchLine) {
	for _, obj := range p.seq {
		switch o := obj.(type) {
		case *searchLine:
			out[o.id] = o
		case *searchProof:
			o.collectIDToObj(out)
		}
	}
}

// idToCiters maps every object id to the set of ids that cite it directly
// (prover.py's id_to_citers), used by the post-processor's uncited-removal
// and reiteration-collapse passes.
func (p *searchProof) idToCiters() map[int]map[int]bool {
	out := map[int]map[int]bool{}
	p.collectIDToCiters(out)
	return out
}

func (p *searchProof) collectIDToCiters(out map[int]map[int]bool) {
	for _, obj := range p.seq {
		switch o := obj.(type) {
		case *searchLine:
			for _, c := range o.citations {
				if out[c] == nil {
					out[c] = map[int]bool{}
				}
				out[c][o.id] = true
			}
			if out[o.id] == nil {
				out[o.id] = map[int]bool{}
			}
		case *searchProof:
			o.collectIDToCiters(out)
			if out[o.id] == nil {
				out[o.id] = map[int]bool{}
			}
		}
	}
}

// popReiteration drops a trailing bare reiteration of an already-derived
// line and returns the id of what it reiterated; otherwise it returns the
// id of whatever the final object is. Used to avoid leaving a redundant
// "R" line when a recursive sub-search's last act was to notice the goal
// was already present (prover.py's pop_reiteration).
func (p *searchProof) popReiteration() int {
	end := p.seq[len(p.seq)-1]
	if l, ok := end.(*searchLine); ok && l.rule == "R" {
		p.seq = p.seq[:len(p.seq)-1]
		p.nLines--
		return l.citations[0]
	}
	return end.objID()
}

// adopt overwrites p's seq and derived sets/counts with other's, leaving
// p's own id untouched — used wherever the original mutates
// prover.proof.seq in place after a successful forced derivation.
func (p *searchProof) adopt(other *searchProof) {
	p.seq = other.seq
	p.formulas = other.formulas
	p.assumptions = other.assumptions
	p.nLines = other.nLines
	p.nIP = other.nIP
}

// commitBestBranch replaces this proof's seq with whichever of branches
// minimizes (ipCount, lineCount) — spec §4.5 "Branch selection": each
// strategy operates on a copy, and the cheapest successful one is kept.
func (p *searchProof) commitBestBranch(branches []*searchProof) bool {
	if len(branches) == 0 {
		return false
	}
	best := branches[0]
	for _, b := range branches[1:] {
		if branchLess(b, best) {
			best = b
		}
	}
	p.adopt(best)
	return true
}

func branchLess(a, b *searchProof) bool {
	if a.nIP != b.nIP {
		return a.nIP < b.nIP
	}
	return a.nLines < b.nLines
}

// findSubproof looks for an already-built sibling subproof in seq whose
// assumption and final conclusion match, so a rule that needs two
// subproofs sharing a premise (∨E's two disjunct cases, ↔I's two
// directions) can reuse one instead of re-deriving it (prover.py's
// find_subproof).
func findSubproof(seq []proofObject, assumption, conclusion term.Formula) *searchProof {
	for _, obj := range seq {
		sp, ok := obj.(*searchProof)
		if !ok || len(sp.seq) == 1 {
			continue
		}
		first, firstOK := sp.seq[0].(*searchLine)
		last, lastOK := sp.seq[len(sp.seq)-1].(*searchLine)
		if !firstOK || !lastOK {
			continue
		}
		if term.Equal(first.formula, assumption) && term.Equal(last.formula, conclusion) {
			return sp
		}
	}
	return nil
}
