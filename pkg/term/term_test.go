package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintElidesOutermostParens(t *testing.T) {
	a := &Pred{Name: "A"}
	b := &Pred{Name: "B"}
	f := &And{Left: a, Right: b}
	require.Equal(t, "(A ∧ B)", f.String())
	require.Equal(t, "A ∧ B", Print(f))
}

func TestEqualStructural(t *testing.T) {
	a1 := &Pred{Name: "A"}
	a2 := &Pred{Name: "A"}
	require.True(t, Equal(a1, a2))
	require.True(t, Equal(&Not{Inner: a1}, &Not{Inner: a2}))
	require.False(t, Equal(a1, &Pred{Name: "B"}))
}

func TestUnifyBindsAndRollsBack(t *testing.T) {
	mv := NewMetavar(1, nil)
	trail := &Trail{}
	concrete := &Pred{Name: "A"}

	ok := UnifyFormula(mv, concrete, trail)
	require.True(t, ok)
	require.True(t, Equal(mv.Value.(Formula), concrete))

	mv2 := NewMetavar(2, nil)
	pattern := &And{Left: mv2, Right: &Pred{Name: "C"}}
	concrete2 := &And{Left: &Pred{Name: "X"}, Right: &Pred{Name: "D"}}

	trail2 := &Trail{}
	ok2 := UnifyFormula(pattern, concrete2, trail2)
	require.False(t, ok2, "right conjunct mismatch should fail the whole unification")
	require.Nil(t, mv2.Value, "left conjunct's binding must be rolled back on overall failure")
}

func TestUnifyNestedMetavarDelegates(t *testing.T) {
	mv := NewMetavar(1, nil)
	mv.Value = &Pred{Name: "A"}

	trail := &Trail{}
	require.True(t, UnifyFormula(mv, &Pred{Name: "A"}, trail))
	require.False(t, UnifyFormula(mv, &Pred{Name: "B"}, (&Trail{})))
}

func TestFreeVarsAndConstants(t *testing.T) {
	x := NewVar("x")
	c := NewConst("a")
	f := &Forall{Var: x, Inner: &Pred{Name: "P", Args: []Term{x, c}}}

	free := FreeVars(f)
	require.Empty(t, free, "x is bound by the quantifier")

	consts := Constants(f)
	require.Len(t, consts, 1)

	unbound := &Pred{Name: "P", Args: []Term{x, c}}
	require.Len(t, FreeVars(unbound), 1)
}

func TestSubTermFreshensEachOccurrence(t *testing.T) {
	x := NewVar("x")
	c := NewConst("a")
	f := &And{
		Left:  &Pred{Name: "P", Args: []Term{c}},
		Right: &Pred{Name: "Q", Args: []Term{c}},
	}

	n := 0
	gen := func() Term {
		n++
		if n == 1 {
			return x
		}
		return NewVar("y")
	}

	out := SubTerm(f, c, gen, nil)
	and, ok := out.(*And)
	require.True(t, ok)
	require.Equal(t, "P(x)", and.Left.String())
	require.Equal(t, "Q(y)", and.Right.String())
}
