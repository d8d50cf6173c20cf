package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/term"
)

func TestCatalogResolvesAliasAndCanonical(t *testing.T) {
	cat := ForLogic(logic.TFL)
	r1, ok := cat.Lookup("∧I")
	require.True(t, ok)
	r2, ok := cat.Lookup("AND_I")
	require.True(t, ok)
	require.Same(t, r1, r2)
}

func TestCatalogScopesByLogic(t *testing.T) {
	tfl := ForLogic(logic.TFL)
	_, ok := tfl.Lookup("∀I")
	require.False(t, ok)

	fol := ForLogic(logic.FOL)
	_, ok = fol.Lookup("∀I")
	require.True(t, ok)

	mlk := ForLogic(logic.MLK)
	_, ok = mlk.Lookup("☐I")
	require.True(t, ok)
	_, ok = mlk.Lookup("∀I")
	require.False(t, ok)
}

func TestAndIntroAndElim(t *testing.T) {
	a := &term.Pred{Name: "A"}
	b := &term.Pred{Name: "B"}
	conj := &term.And{Left: a, Right: b}

	require.True(t, andIntro.Validate(Input{Lines: []term.Formula{a, b}, Conclusion: conj}))
	require.False(t, andIntro.Validate(Input{Lines: []term.Formula{b, a}, Conclusion: conj}))

	require.True(t, andElim.Validate(Input{Lines: []term.Formula{conj}, Conclusion: a}))
	require.True(t, andElim.Validate(Input{Lines: []term.Formula{conj}, Conclusion: b}))
}

func TestOrElimRequiresMatchingSubproofConclusions(t *testing.T) {
	a := &term.Pred{Name: "A"}
	b := &term.Pred{Name: "B"}
	c := &term.Pred{Name: "C"}
	disj := &term.Or{Left: a, Right: b}

	ok := orElim.Validate(Input{
		Lines:      []term.Formula{disj},
		Subproofs:  []SubproofForm{{Assumption: a, Conclusion: c}, {Assumption: b, Conclusion: c}},
		Conclusion: c,
	})
	require.True(t, ok)

	bad := orElim.Validate(Input{
		Lines:      []term.Formula{disj},
		Subproofs:  []SubproofForm{{Assumption: a, Conclusion: c}, {Assumption: b, Conclusion: a}},
		Conclusion: c,
	})
	require.False(t, bad)
}

func TestForallElimInstantiatesWithAnyTerm(t *testing.T) {
	x := term.NewVar("x")
	cst := term.NewConst("a")
	body := &term.Pred{Name: "P", Args: []term.Term{x}}
	univ := &term.Forall{Var: x, Inner: body}

	ok := forallElim.Validate(Input{
		Lines:      []term.Formula{univ},
		Conclusion: &term.Pred{Name: "P", Args: []term.Term{cst}},
	})
	require.True(t, ok)
}

func TestForallIntroChecksFreshness(t *testing.T) {
	x := term.NewVar("x")
	cst := term.NewConst("a")
	body := &term.Pred{Name: "P", Args: []term.Term{x}}
	univ := &term.Forall{Var: x, Inner: body}

	in := Input{
		Subproofs: []SubproofForm{{
			Assumption: &term.BoxMarker{},
			Conclusion: &term.Pred{Name: "P", Args: []term.Term{cst}},
		}},
		Conclusion:           univ,
		ConstantFreshOutside: func(c *term.FuncTerm) bool { return c.Name == "a" },
	}
	require.True(t, forallIntro.Validate(in))

	in.ConstantFreshOutside = func(*term.FuncTerm) bool { return false }
	require.False(t, forallIntro.Validate(in))
}

func TestEqElimReplacesSomeOccurrences(t *testing.T) {
	a := term.NewConst("a")
	bb := term.NewConst("b")
	eq := &term.Eq{Left: a, Right: bb}
	phi := &term.Pred{Name: "P", Args: []term.Term{a, a}}

	// Replacing only one of the two occurrences of a is a legal =E step.
	partial := &term.Pred{Name: "P", Args: []term.Term{bb, a}}
	require.True(t, eqElim.Validate(Input{Lines: []term.Formula{eq, phi}, Conclusion: partial}))

	unrelated := &term.Pred{Name: "P", Args: []term.Term{bb, bb}}
	require.True(t, eqElim.Validate(Input{Lines: []term.Formula{eq, phi}, Conclusion: unrelated}))

	wrong := &term.Pred{Name: "Q", Args: []term.Term{bb, a}}
	require.False(t, eqElim.Validate(Input{Lines: []term.Formula{eq, phi}, Conclusion: wrong}))
}

func TestCrossBoundaryReiteration(t *testing.T) {
	a := &term.Pred{Name: "A"}
	box := &term.Box{Inner: a}

	require.False(t, CrossBoundaryReiterationAllowed(logic.AccessK, box, a))
	require.True(t, CrossBoundaryReiterationAllowed(logic.AccessT, box, a))
	require.False(t, CrossBoundaryReiterationAllowed(logic.AccessT, box, box))
	require.True(t, CrossBoundaryReiterationAllowed(logic.AccessS4, box, box))
	require.True(t, CrossBoundaryReiterationAllowed(logic.AccessS4, box, a))

	dia := &term.Dia{Inner: a}
	require.False(t, CrossBoundaryReiterationAllowed(logic.AccessS4, dia, dia))
	require.True(t, CrossBoundaryReiterationAllowed(logic.AccessS5, dia, dia))
}
