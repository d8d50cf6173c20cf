package prover

import (
	"github.com/nd-prover/ndcheck/pkg/sat"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// forceNotE tries, for each accessible ¬α, to derive α in a continuation
// of the current branch — once derived it's accessible to the next
// elimination sweep, which will close the goal via ¬E/X. Guarded by the
// oracle so the engine never forces a branch unless the current
// assumptions are already classically inconsistent (prover.py's
// Eliminator.NotE_force).
func forceNotE(s *Searcher, complete bool) (bool, error) {
	if !sat.IsValid(assumptionsOf(s.proof), &term.Bot{}) {
		return false, nil
	}
	var branches []*searchProof
	for _, obj := range s.proof.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		n, ok := l.formula.(*term.Not)
		if !ok {
			continue
		}
		branch := s.withProof(s.proof.copyWithGoal(s.alloc, n.Inner), s.seen)
		ok2, err := branch.prove(complete)
		if err != nil {
			return false, err
		}
		if !ok2 {
			continue
		}
		branch.proof.popReiteration()
		if len(branch.proof.seq) != len(s.proof.seq) {
			branches = append(branches, branch.proof)
			if !complete {
				break
			}
		}
	}
	return s.proof.commitBestBranch(branches), nil
}

// forceImpE tries, for each accessible Imp(α, β) with β not yet derived
// and α semantically entailed, to derive α directly (prover.py's
// Eliminator.ImpE_force). Unlike the other force strategies this commits
// immediately on the first success rather than collecting branches.
func forceImpE(s *Searcher, complete bool) (bool, error) {
	for _, obj := range s.proof.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		imp, ok := l.formula.(*term.Imp)
		if !ok || s.proof.hasFormula(imp.Right) {
			continue
		}
		if !sat.IsValid(assumptionsOf(s.proof), imp.Left) {
			continue
		}
		branch := s.withProof(s.proof.copyWithGoal(s.alloc, imp.Left), s.seen)
		ok2, err := branch.prove(complete)
		if err != nil {
			return false, err
		}
		if !ok2 {
			continue
		}
		branch.proof.popReiteration()
		if len(branch.proof.seq) != len(s.proof.seq) {
			s.proof.adopt(branch.proof)
			return true, nil
		}
	}
	return false, nil
}

// forceIffE is ImpE_force's analogue for biconditionals: tries deriving
// either side of an Iff whose left side is semantically entailed and
// neither side is yet accessible (prover.py's Eliminator.IffE_force). The
// two candidate sides are genuine alternatives, so each gets its own
// memoization table per SearchOptions.ShareSeenAcrossSiblings.
func forceIffE(s *Searcher, complete bool) (bool, error) {
	for _, obj := range s.proof.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		iff, ok := l.formula.(*term.Iff)
		if !ok {
			continue
		}
		if s.proof.hasFormula(iff.Left) || s.proof.hasFormula(iff.Right) {
			continue
		}
		if !sat.IsValid(assumptionsOf(s.proof), iff.Left) {
			continue
		}

		var branches []*searchProof
		for _, formula := range [2]term.Formula{iff.Left, iff.Right} {
			branch := s.withProof(s.proof.copyWithGoal(s.alloc, formula), s.siblingSeen())
			ok2, err := branch.prove(complete)
			if err != nil {
				return false, err
			}
			if !ok2 {
				continue
			}
			branch.proof.popReiteration()
			if len(branch.proof.seq) != len(s.proof.seq) {
				branches = append(branches, branch.proof)
				if !complete {
					break
				}
			}
		}
		if s.proof.commitBestBranch(branches) {
			return true, nil
		}
	}
	return false, nil
}

// orE tries, for each accessible Or(α, β), to prove the goal in both a
// subproof assuming α and one assuming β — reusing an already-built
// matching subproof via findSubproof where possible (prover.py's
// Eliminator.OrE).
func orE(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal
	var branches []*searchProof

	for _, obj := range s.proof.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		or, ok := l.formula.(*term.Or)
		if !ok {
			continue
		}
		disjunct1, disjunct2 := or.Left, or.Right
		var objs []proofObject

		sub1 := findSubproof(s.proof.seq, disjunct1, goal)
		found1 := sub1 != nil
		if !found1 {
			branch1 := freshSubproofBranch(s, disjunct1, goal, s.seen)
			ok1, err := branch1.prove(complete)
			if err != nil {
				return false, err
			}
			if !ok1 {
				continue
			}
			trimToOwnLines(branch1.proof, s.proof.seq)
			sub1 = branch1.proof
			objs = append(objs, sub1)
		}

		seq := append(append([]proofObject(nil), s.proof.seq...), objs...)
		sub2 := findSubproof(seq, disjunct2, goal)
		found2 := sub2 != nil
		if !found2 {
			asLine := &searchLine{id: s.alloc.alloc(), formula: disjunct2, rule: "AS", isAssumption: true}
			branchSeq := append(append([]proofObject(nil), seq...), asLine)
			sp := newSearchProof(s.alloc, branchSeq, goal)
			branch2 := s.withProof(sp, s.siblingSeen())
			ok2, err := branch2.prove(complete)
			if err != nil {
				return false, err
			}
			if !ok2 {
				continue
			}
			trimToOwnLines(branch2.proof, seq)
			sub2 = branch2.proof
			objs = append(objs, sub2)
		}

		line := &searchLine{id: s.alloc.alloc(), formula: goal, rule: "∨E", citations: []int{l.id, sub1.objID(), sub2.objID()}}
		objs = append(objs, line)

		branchSeqFull := append(append([]proofObject(nil), s.proof.seq...), objs...)
		branches = append(branches, newSearchProof(s.alloc, branchSeqFull, goal))
		if !complete {
			break
		}
	}
	return s.proof.commitBestBranch(branches), nil
}
