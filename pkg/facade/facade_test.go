package facade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nd-prover/ndcheck/pkg/prover"
)

func TestValidateAcceptsWellFormedArgument(t *testing.T) {
	res := Validate("TFL", "A, A -> B", "B")
	require.True(t, res.OK)
	require.Empty(t, res.Message)
}

func TestValidateRejectsUnknownLogic(t *testing.T) {
	res := Validate("NOPE", "A", "A")
	require.False(t, res.OK)
	require.Contains(t, res.Message, "Logic not recognized")
}

func TestValidateRejectsMissingConclusion(t *testing.T) {
	res := Validate("TFL", "A", "   ")
	require.False(t, res.OK)
	require.Contains(t, res.Message, "Invalid conclusion")
}

func TestValidateRejectsMalformedPremise(t *testing.T) {
	res := Validate("TFL", "A &", "A")
	require.False(t, res.OK)
	require.Contains(t, res.Message, "Invalid premise(s)")
}

func TestCheckCompletesDirectModusPonens(t *testing.T) {
	lineNo := 3
	lines := []LinePayload{
		{Kind: KindLine, LineNumber: &lineNo, FormulaText: "B", JustText: "→E 1, 2"},
	}
	res := Check("TFL", "A, A -> B", "B", lines, nil)
	require.True(t, res.OK)
	require.Equal(t, StatusComplete, res.Status)
	require.True(t, res.IsComplete)
	require.NotEmpty(t, res.ProofString)
}

func TestCheckReportsIncompleteProof(t *testing.T) {
	res := Check("TFL", "A, A -> B", "B", nil, nil)
	require.True(t, res.OK)
	require.Equal(t, StatusIncomplete, res.Status)
	require.False(t, res.IsComplete)
}

func TestCheckSubproofViaBeginAndEndSubproof(t *testing.T) {
	lineNo := 2
	lineNo3 := 3
	lines := []LinePayload{
		{Kind: KindAssumption, FormulaText: "A"},
		{Kind: KindCloseSubproof, LineNumber: &lineNo, FormulaText: "A", JustText: "R 1"},
		{Kind: KindLine, LineNumber: &lineNo3, FormulaText: "A -> A", JustText: "→I 1–2"},
	}
	res := Check("TFL", "NA", "A -> A", lines, nil)
	require.True(t, res.OK)
	require.Equal(t, StatusComplete, res.Status)
}

func TestCheckRejectsBadJustification(t *testing.T) {
	lineNo := 2
	lines := []LinePayload{
		{Kind: KindLine, LineNumber: &lineNo, FormulaText: "B", JustText: "R 1"},
	}
	res := Check("TFL", "A", "B", lines, nil)
	require.False(t, res.OK)
	require.Equal(t, StatusError, res.Status)
}

func TestGenerateRejectsNonTFL(t *testing.T) {
	res := Generate("FOL", "A", "A", time.Second, prover.DefaultSearchOptions(), nil)
	require.False(t, res.OK)
	require.Equal(t, "Proof generation is only supported for TFL.", res.Message)
}

func TestGenerateProducesProofLines(t *testing.T) {
	res := Generate("TFL", "A, A -> B", "B", time.Second, prover.DefaultSearchOptions(), nil)
	require.True(t, res.OK)
	require.Equal(t, StatusComplete, res.Status)
	require.NotEmpty(t, res.Lines)
}

func TestGenerateRejectsInvalidArgument(t *testing.T) {
	res := Generate("TFL", "A", "B", time.Second, prover.DefaultSearchOptions(), nil)
	require.False(t, res.OK)
	require.Contains(t, res.Message, "Countermodel")
}
