package prover

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nd-prover/ndcheck/pkg/sat"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// introduce dispatches on the goal's principal connective (spec §4.5
// phase 2.3; prover.py's Introducer.intro).
func (s *Searcher) introduce(complete bool) (bool, error) {
	switch s.proof.goal.(type) {
	case *term.Not:
		return introduceNotI(s, complete)
	case *term.And:
		return introduceAndI(s, complete)
	case *term.Or:
		return introduceOrI(s, complete)
	case *term.Imp:
		return introduceImpI(s, complete)
	case *term.Iff:
		return introduceIffI(s, complete)
	}
	return false, nil
}

// freshSubproofBranch builds a new subproof searcher assuming assumption
// and aimed at goal, seeded with s's current seq (so the subproof's
// interior can cite everything accessible in s).
func freshSubproofBranch(s *Searcher, assumption, goal term.Formula, seen *lru.Cache[string, seenEntry]) *Searcher {
	asLine := &searchLine{id: s.alloc.alloc(), formula: assumption, rule: "AS", isAssumption: true}
	seq := append(append([]proofObject(nil), s.proof.seq...), asLine)
	sp := newSearchProof(s.alloc, seq, goal)
	return s.withProof(sp, seen)
}

// trimToOwnLines drops whatever the branch's seq shares with base,
// leaving only the lines the subproof itself contributed (prover.py's
// `subproof.seq = subproof.seq[len(proof.seq):]`).
func trimToOwnLines(branch *searchProof, base []proofObject) {
	branch.seq = branch.seq[len(base):]
	branch.reinit()
}

func introduceNotI(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal.(*term.Not)
	sub := findSubproof(s.proof.seq, goal.Inner, &term.Bot{})
	found := sub != nil

	if !found {
		branch := freshSubproofBranch(s, goal.Inner, &term.Bot{}, s.seen)
		ok, err := branch.prove(complete)
		if err != nil || !ok {
			return false, err
		}
		trimToOwnLines(branch.proof, s.proof.seq)
		sub = branch.proof
	}

	line := &searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "¬I", citations: []int{sub.objID()}}
	if found {
		s.proof.add(line)
	} else {
		s.proof.add(sub, line)
	}
	return true, nil
}

func introduceAndI(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal.(*term.And)
	var branches []*searchProof

	for _, pair := range [][2]term.Formula{{goal.Left, goal.Right}, {goal.Right, goal.Left}} {
		conjunct1, conjunct2 := pair[0], pair[1]

		branch1 := s.withProof(s.proof.copyWithGoal(s.alloc, conjunct1), s.seen)
		ok, err := branch1.prove(complete)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		c1ID := branch1.proof.popReiteration()

		branch2 := s.withProof(branch1.proof.copyWithGoal(s.alloc, conjunct2), s.seen)
		ok, err = branch2.prove(complete)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		c2ID := branch2.proof.popReiteration()

		line := &searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "∧I", citations: []int{c1ID, c2ID}}
		branch2.proof.add(line)
		branches = append(branches, branch2.proof)
		if !complete {
			break
		}
	}
	return s.proof.commitBestBranch(branches), nil
}

func introduceOrI(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal.(*term.Or)

	for _, obj := range s.proof.seq {
		l, ok := obj.(*searchLine)
		if ok && (term.Equal(l.formula, goal.Left) || term.Equal(l.formula, goal.Right)) {
			s.proof.add(&searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "∨I", citations: []int{l.id}})
			return true, nil
		}
	}

	var branches []*searchProof
	for _, disjunct := range [2]term.Formula{goal.Left, goal.Right} {
		if !sat.IsValid(assumptionsOf(s.proof), disjunct) {
			continue
		}
		branch := s.withProof(s.proof.copyWithGoal(s.alloc, disjunct), s.seen)
		ok, err := branch.prove(complete)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		disjunctID := branch.proof.popReiteration()
		branch.proof.add(&searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "∨I", citations: []int{disjunctID}})
		branches = append(branches, branch.proof)
		if !complete {
			break
		}
	}
	return s.proof.commitBestBranch(branches), nil
}

func introduceImpI(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal.(*term.Imp)
	sub := findSubproof(s.proof.seq, goal.Left, goal.Right)
	found := sub != nil

	if !found {
		branch := freshSubproofBranch(s, goal.Left, goal.Right, s.seen)
		ok, err := branch.prove(complete)
		if err != nil || !ok {
			return false, err
		}
		trimToOwnLines(branch.proof, s.proof.seq)
		sub = branch.proof
	}

	line := &searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "→I", citations: []int{sub.objID()}}
	if found {
		s.proof.add(line)
	} else {
		s.proof.add(sub, line)
	}
	return true, nil
}

func introduceIffI(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal.(*term.Iff)
	var objs []proofObject

	sub1 := findSubproof(s.proof.seq, goal.Left, goal.Right)
	found1 := sub1 != nil
	if !found1 {
		branch1 := freshSubproofBranch(s, goal.Left, goal.Right, s.seen)
		ok, err := branch1.prove(complete)
		if err != nil || !ok {
			return false, err
		}
		trimToOwnLines(branch1.proof, s.proof.seq)
		sub1 = branch1.proof
		objs = append(objs, sub1)
	}

	seq := append(append([]proofObject(nil), s.proof.seq...), objs...)
	sub2 := findSubproof(seq, goal.Right, goal.Left)
	found2 := sub2 != nil
	if !found2 {
		asLine := &searchLine{id: s.alloc.alloc(), formula: goal.Right, rule: "AS", isAssumption: true}
		branchSeq := append(append([]proofObject(nil), seq...), asLine)
		sp := newSearchProof(s.alloc, branchSeq, goal.Left)
		branch2 := s.withProof(sp, s.seen)
		ok, err := branch2.prove(complete)
		if err != nil || !ok {
			return false, err
		}
		trimToOwnLines(branch2.proof, seq)
		sub2 = branch2.proof
		objs = append(objs, sub2)
	}

	line := &searchLine{id: s.alloc.alloc(), formula: s.proof.goal, rule: "↔I", citations: []int{sub1.objID(), sub2.objID()}}
	objs = append(objs, line)
	s.proof.add(objs...)
	return true, nil
}

// introduceIP is a last-resort strategy (classical indirect proof),
// guarded so the engine never assumes ¬goal when goal is itself
// semantically unsatisfiable on its own (prover.py's Introducer.IP).
func introduceIP(s *Searcher, complete bool) (bool, error) {
	goal := s.proof.goal
	if sat.IsValid([]term.Formula{goal}, &term.Bot{}) {
		return false, nil
	}
	sub := findSubproof(s.proof.seq, &term.Not{Inner: goal}, &term.Bot{})
	found := sub != nil

	if !found {
		branch := freshSubproofBranch(s, &term.Not{Inner: goal}, &term.Bot{}, s.seen)
		ok, err := branch.prove(complete)
		if err != nil || !ok {
			return false, err
		}
		trimToOwnLines(branch.proof, s.proof.seq)
		sub = branch.proof
	}

	line := &searchLine{id: s.alloc.alloc(), formula: goal, rule: "IP", citations: []int{sub.objID()}}
	if found {
		s.proof.add(line)
	} else {
		s.proof.add(sub, line)
	}
	return true, nil
}
