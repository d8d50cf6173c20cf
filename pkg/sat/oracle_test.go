package sat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/term"
)

func TestCountermodelCorrectness(t *testing.T) {
	a := &term.Pred{Name: "A"}
	b := &term.Pred{Name: "B"}

	cm := Countermodel([]term.Formula{a}, b)
	require.NotNil(t, cm)
	require.True(t, Evaluate(a, cm))
	require.False(t, Evaluate(b, cm))
}

func TestIsValidModusPonens(t *testing.T) {
	a := &term.Pred{Name: "A"}
	b := &term.Pred{Name: "B"}
	imp := &term.Imp{Left: a, Right: b}

	require.True(t, IsValid([]term.Formula{imp, a}, b))
	require.False(t, IsValid([]term.Formula{a}, b))
}

func TestIsValidTautology(t *testing.T) {
	a := &term.Pred{Name: "A"}
	taut := &term.Or{Left: a, Right: &term.Not{Inner: a}}
	require.True(t, IsValid(nil, taut))
}

func TestPropVarsOpaqueAtBox(t *testing.T) {
	a := &term.Pred{Name: "A"}
	box := &term.Box{Inner: a}
	vars := PropVars(box)
	require.Len(t, vars, 1)
	require.Contains(t, vars, term.Key(box))
}
