package prover

// removeUncited iteratively drops any line that is not an assumption, not
// its subproof's final line, and not cited by anything, recursing into
// subproofs and repeating to a fixpoint (a line only kept alive by a line
// that itself just got dropped must be re-evaluated) — spec §4.5 phase 3.1,
// prover.py's Processor.remove_uncited.
func removeUncited(proof *searchProof, idToCiters map[int]map[int]bool) {
	for {
		n := len(proof.seq)
		seq := make([]proofObject, 0, n)
		for idx, obj := range proof.seq {
			if sp, ok := obj.(*searchProof); ok {
				removeUncited(sp, idToCiters)
				seq = append(seq, sp)
				continue
			}
			l := obj.(*searchLine)
			if l.isAssumption || idx == n-1 {
				seq = append(seq, l)
				continue
			}
			if len(idToCiters[l.id]) > 0 {
				seq = append(seq, l)
			}
		}
		proof.seq = seq
		proof.reinit()
		if len(seq) == n {
			return
		}
		idToCiters = proof.idToCiters()
	}
}

// replaceReiterations flattens indirection: whenever every citer of a
// line is a bare reiteration ("R"), each such citer is replaced by a
// fresh copy of the original line and the original itself is dropped —
// spec §4.5 phase 3.2, prover.py's Processor.replace_reiterations.
func replaceReiterations(proof *searchProof, idToObj map[int]*searchLine, idToCiters map[int]map[int]bool, replace map[int]*searchLine, alloc *idAlloc) {
	n := len(proof.seq)
	seq := make([]proofObject, 0, n)
	for idx, obj := range proof.seq {
		if sp, ok := obj.(*searchProof); ok {
			replaceReiterations(sp, idToObj, idToCiters, replace, alloc)
			seq = append(seq, sp)
			continue
		}
		l := obj.(*searchLine)
		if orig, ok := replace[l.id]; ok {
			seq = append(seq, orig.copy(alloc))
			continue
		}
		if l.isAssumption || idx == n-1 {
			seq = append(seq, l)
			continue
		}
		citers := idToCiters[l.id]
		allReiterations := true
		for c := range citers {
			if ct, ok := idToObj[c]; !ok || ct.rule != "R" {
				allReiterations = false
				break
			}
		}
		if !allReiterations {
			seq = append(seq, l)
			continue
		}
		for c := range citers {
			replace[c] = l
		}
	}
	proof.seq = seq
	proof.reinit()
}
