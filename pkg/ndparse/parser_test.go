package ndparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/term"
)

func TestParseFormulaPrecedence(t *testing.T) {
	f, err := ParseFormula("A -> B & C")
	require.NoError(t, err)
	imp, ok := f.(*term.Imp)
	require.True(t, ok)
	require.Equal(t, "A", imp.Left.String())
	require.IsType(t, &term.And{}, imp.Right)
}

func TestParseImpRightAssociative(t *testing.T) {
	f, err := ParseFormula("A -> B -> C")
	require.NoError(t, err)
	imp, ok := f.(*term.Imp)
	require.True(t, ok)
	require.Equal(t, "A", imp.Left.String())
	require.IsType(t, &term.Imp{}, imp.Right)
}

func TestParseUnicodeAndAscii(t *testing.T) {
	a, err := ParseFormula("¬A ∧ (B ∨ C)")
	require.NoError(t, err)
	b, err := ParseFormula("!A & (B | C)")
	require.NoError(t, err)
	require.True(t, term.Equal(a, b))
}

func TestParseQuantifierScopeIsGreedy(t *testing.T) {
	f, err := ParseFormula("A.x P(x) & Q")
	require.NoError(t, err)
	forall, ok := f.(*term.Forall)
	require.True(t, ok, "quantifier scope extends over the whole formula, not just the next atom")
	require.IsType(t, &term.And{}, forall.Inner)
}

func TestParseEquality(t *testing.T) {
	f, err := ParseFormula("x = y")
	require.NoError(t, err)
	eq, ok := f.(*term.Eq)
	require.True(t, ok)
	require.IsType(t, &term.VarTerm{}, eq.Left)
	require.IsType(t, &term.VarTerm{}, eq.Right)
}

func TestParseOutermostParensStripped(t *testing.T) {
	f1, err := ParseFormula("(A & B)")
	require.NoError(t, err)
	f2, err := ParseFormula("A & B")
	require.NoError(t, err)
	require.True(t, term.Equal(f1, f2))
}

func TestParseAndVerifyPremisesNA(t *testing.T) {
	prems, err := ParseAndVerifyPremises("NA", func(term.Formula) bool { return true }, "TFL")
	require.NoError(t, err)
	require.Empty(t, prems)
}

func TestParseAndVerifyPremisesSplitsOnTopLevelSeparators(t *testing.T) {
	prems, err := ParseAndVerifyPremises("A, B; C", func(term.Formula) bool { return true }, "TFL")
	require.NoError(t, err)
	require.Len(t, prems, 3)
}

func TestParseLine(t *testing.T) {
	f, j, err := ParseLine("A & B ; ∧I 1, 2")
	require.NoError(t, err)
	require.IsType(t, &term.And{}, f)
	require.Equal(t, "∧I", j.RuleName)
	require.Equal(t, []Citation{{Line: 1}, {Line: 2}}, j.Citations)
}

func TestParseJustificationRange(t *testing.T) {
	j, err := ParseJustification("∨E 1, 2–4")
	require.NoError(t, err)
	require.Equal(t, "∨E", j.RuleName)
	require.Equal(t, 2, j.Citations[1].RangeFrom)
	require.Equal(t, 4, j.Citations[1].RangeTo)
}

func TestParsingErrorOnMalformed(t *testing.T) {
	_, err := ParseFormula("A &")
	require.Error(t, err)
	var pe *ParsingError
	require.ErrorAs(t, err, &pe)
}
