package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/term"
)

func mustParse(t *testing.T, s string) term.Formula {
	t.Helper()
	f, err := ndparse.ParseFormula(s)
	require.NoError(t, err)
	return f
}

func TestModusPonensDirect(t *testing.T) {
	a := mustParse(t, "A")
	b := mustParse(t, "B")
	imp := mustParse(t, "A -> B")
	p := NewProblem(logic.TFL, []term.Formula{a, imp}, b)

	p.AddLine(b, &ndparse.Justification{RuleName: "→E", Citations: []ndparse.Citation{{Line: 2}, {Line: 1}}})
	require.NoError(t, p.Errors())
	require.True(t, p.ConclusionReached())
}

func TestBadJustificationRecordsErrorAndCanBeDeleted(t *testing.T) {
	a := mustParse(t, "A")
	b := mustParse(t, "B")
	p := NewProblem(logic.TFL, []term.Formula{a}, b)

	p.AddLine(b, &ndparse.Justification{RuleName: "R", Citations: []ndparse.Citation{{Line: 1}}})
	require.Error(t, p.Errors())

	require.True(t, p.DeleteLine())
	require.NoError(t, p.Errors())
	require.False(t, p.ConclusionReached())
}

func TestConditionalProofViaSubproof(t *testing.T) {
	a := mustParse(t, "A")
	concl := mustParse(t, "A -> A")
	p := NewProblem(logic.TFL, nil, concl)

	p.BeginSubproof(a)
	err := p.EndSubproof(a, &ndparse.Justification{RuleName: "R", Citations: []ndparse.Citation{{Line: 1}}})
	require.NoError(t, err)
	p.AddLine(concl, &ndparse.Justification{RuleName: "→I", Citations: []ndparse.Citation{{IsRange: true, RangeFrom: 1, RangeTo: 2}}})
	require.NoError(t, p.Errors())
	require.True(t, p.ConclusionReached())
}

func TestCitationOutOfScopeAfterSubproofCloses(t *testing.T) {
	a := mustParse(t, "A")
	b := mustParse(t, "B")
	p := NewProblem(logic.TFL, nil, b)

	p.BeginSubproof(a)
	_ = p.EndSubproof(a, &ndparse.Justification{RuleName: "R", Citations: []ndparse.Citation{{Line: 1}}})
	require.NoError(t, p.Errors())

	// Line 1 (the assumption) is sealed inside the now-closed subproof.
	p.AddLine(b, &ndparse.Justification{RuleName: "R", Citations: []ndparse.Citation{{Line: 1}}})
	require.Error(t, p.Errors())
}

func TestModalReiterationAcrossTBoundary(t *testing.T) {
	a := mustParse(t, "A")
	boxA := mustParse(t, "[]A")
	p := NewProblem(logic.MLT, []term.Formula{boxA}, a)

	p.BeginSubproof(&term.BoxMarker{})
	err := p.EndSubproof(a, &ndparse.Justification{RuleName: "R", Citations: []ndparse.Citation{{Line: 1}}})
	require.NoError(t, err)
	require.NoError(t, p.Errors())
}
