package prover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/term"
)

func mustParse(t *testing.T, s string) term.Formula {
	t.Helper()
	f, err := ndparse.ParseFormula(s)
	require.NoError(t, err)
	return f
}

func TestProveModusPonens(t *testing.T) {
	a := mustParse(t, "A")
	b := mustParse(t, "B")
	imp := mustParse(t, "A -> B")

	problem, err := Prove([]term.Formula{a, imp}, b, time.Second, DefaultSearchOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, problem.Errors())
	require.True(t, problem.ConclusionReached())
}

func TestProveRequiresConditionalSubproof(t *testing.T) {
	a := mustParse(t, "A")
	concl := mustParse(t, "A -> A")

	problem, err := Prove(nil, concl, time.Second, DefaultSearchOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, problem.Errors())
	require.True(t, problem.ConclusionReached())
	_ = a
}

func TestProveDoubleNegationViaIP(t *testing.T) {
	a := mustParse(t, "A")
	notNotA := mustParse(t, "!!A")

	problem, err := Prove([]term.Formula{notNotA}, a, time.Second, DefaultSearchOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, problem.Errors())
	require.True(t, problem.ConclusionReached())
}

func TestProveRejectsInvalidArgumentWithCountermodel(t *testing.T) {
	a := mustParse(t, "A")
	b := mustParse(t, "B")

	_, err := Prove([]term.Formula{a}, b, time.Second, DefaultSearchOptions(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid argument. Countermodel:")
}

func TestProveDisjunctionElimination(t *testing.T) {
	orAB := mustParse(t, "A | B")
	aImpC := mustParse(t, "A -> C")
	bImpC := mustParse(t, "B -> C")
	c := mustParse(t, "C")

	problem, err := Prove([]term.Formula{orAB, aImpC, bImpC}, c, time.Second, DefaultSearchOptions(), nil)
	require.NoError(t, err)
	require.NoError(t, problem.Errors())
	require.True(t, problem.ConclusionReached())
}
