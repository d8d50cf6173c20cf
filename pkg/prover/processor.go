package prover

import (
	"github.com/nd-prover/ndcheck/pkg/checker"
	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// process runs spec §4.5 phase 3 over a proved search tree and replays
// the result into a fresh checker.Problem (prover.py's Processor.process,
// generalized to target pkg/checker's public edit API directly instead of
// a bespoke intermediate Proof/Line format — the replay re-validates
// every line exactly as a human-entered proof would).
func process(l logic.Logic, premises []term.Formula, conclusion term.Formula, root *searchProof, alloc *idAlloc) *checker.Problem {
	removeUncited(root, root.idToCiters())
	idToObj, idToCiters := root.idToObj(), root.idToCiters()
	replaceReiterations(root, idToObj, idToCiters, map[int]*searchLine{}, alloc)

	// Premise ("PR") lines always survive both passes untouched and in
	// order (spec §4.5 "Remove uncited" keeps every assumption); a fresh
	// Problem already carries its own premises as context (checker.
	// NewProblem), so replay only the derived body, with each premise's
	// original search-object id mapped to its context display number.
	p := checker.NewProblem(l, premises, conclusion)
	r := &replayer{n: len(premises), idToDisplay: map[int]int{}, idToRange: map[int][2]int{}}
	for i, obj := range root.seq[:len(premises)] {
		r.idToDisplay[obj.(*searchLine).id] = i + 1
	}
	r.replaySeq(p, root.seq[len(premises):])
	return p
}

// replayer tracks, during replay, the display line number (or subproof
// range) each original search-tree object id ends up at in the Problem
// being rebuilt — prover.py's Processor.translate id_to_idx.
type replayer struct {
	n           int
	idToDisplay map[int]int
	idToRange   map[int][2]int
}

func (r *replayer) citationsFor(ids []int) []ndparse.Citation {
	cites := make([]ndparse.Citation, 0, len(ids))
	for _, id := range ids {
		if n, ok := r.idToDisplay[id]; ok {
			cites = append(cites, ndparse.Citation{Line: n})
			continue
		}
		if rng, ok := r.idToRange[id]; ok {
			cites = append(cites, ndparse.Citation{IsRange: true, RangeFrom: rng[0], RangeTo: rng[1]})
		}
	}
	return cites
}

// replaySeq walks a sequence of proofObjects in order, issuing the
// matching checker.Problem edit for each: AddLine for an ordinary derived
// line, BeginSubproof+AddLine*+EndSubproof for a nested subproof (its last
// line goes through EndSubproof). Premises are not replayed.
func (r *replayer) replaySeq(p *checker.Problem, seq []proofObject) {
	for i, obj := range seq {
		switch o := obj.(type) {
		case *searchLine:
			r.n++
			just := &ndparse.Justification{RuleName: o.rule, Citations: r.citationsFor(o.citations)}
			if i == len(seq)-1 && p.Depth() > 0 {
				_ = p.EndSubproof(o.formula, just)
			} else {
				p.AddLine(o.formula, just)
			}
			r.idToDisplay[o.id] = r.n
		case *searchProof:
			first := o.seq[0].(*searchLine)
			r.n++
			p.BeginSubproof(first.formula)
			r.idToDisplay[first.id] = r.n
			start := r.n
			r.replaySeq(p, o.seq[1:])
			r.idToRange[o.id] = [2]int{start, r.n}
		}
	}
}
