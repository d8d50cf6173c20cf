package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/term"
)

func TestByName(t *testing.T) {
	l, ok := ByName("TFL")
	require.True(t, ok)
	require.Equal(t, TFL, l)

	_, ok = ByName("NOPE")
	require.False(t, ok)
}

func TestIsWellFormed(t *testing.T) {
	prop := &term.Pred{Name: "A"}
	nary := &term.Pred{Name: "P", Args: []term.Term{term.NewVar("x")}}
	modal := &term.Box{Inner: prop}

	require.True(t, TFL.IsWellFormed(prop, false))
	require.False(t, TFL.IsWellFormed(nary, false))
	require.False(t, TFL.IsWellFormed(modal, false))

	require.True(t, FOL.IsWellFormed(nary, false))
	require.False(t, FOL.IsWellFormed(nary, true), "x is free")

	require.True(t, MLK.IsWellFormed(modal, false))
	require.False(t, MLK.IsWellFormed(nary, false))

	foml := &term.Box{Inner: nary}
	require.True(t, FOMLK.IsWellFormed(foml, false))
}

func TestAccessibility(t *testing.T) {
	require.Equal(t, AccessK, MLK.Access())
	require.Equal(t, AccessT, MLT.Access())
	require.Equal(t, AccessS4, MLS4.Access())
	require.Equal(t, AccessS5, MLS5.Access())
	require.True(t, FOMLS5.IsModal())
	require.True(t, FOMLS5.IsFirstOrder())
}
