// Package facade is spec.md §6's "public API of the core (language-
// neutral)": check / validate / generate, each taking plain strings and
// returning a small result struct a JSON (or any other) transport can
// serialize verbatim. Grounded on app.py's check_proof/validate_problem/
// generate_proof Flask routes, generalized from JSON request/response
// dicts into Go structs and kept transport-agnostic (no net/http here;
// cmd/ndcheck calls these functions directly).
package facade

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nd-prover/ndcheck/internal/obslog"
	"github.com/nd-prover/ndcheck/pkg/checker"
	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/prover"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// LineKind is one line-edit payload's kind, matching app.py's
// check_proof "kind" discriminator exactly.
type LineKind string

const (
	KindPremise       LineKind = "premise"
	KindAssumption    LineKind = "assumption"
	KindEndAndBegin   LineKind = "end_and_begin"
	KindLine          LineKind = "line"
	KindCloseSubproof LineKind = "close_subproof"
)

// LinePayload is one entry of check's `lines` argument (spec.md §6's
// "check(logic, premisesText, conclusionText, lines)"). Raw, if empty,
// is reconstructed from FormulaText/JustText (app.py's check_proof does
// the same when the caller only sent the split fields).
type LinePayload struct {
	Kind        LineKind
	Raw         string
	LineNumber  *int
	FormulaText string
	JustText    string
}

// Status is check/generate's status field.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
	StatusError      Status = "error"
)

// CheckResult is check's return shape (spec.md §6).
type CheckResult struct {
	OK          bool
	Status      Status
	IsComplete  bool
	Message     string
	ProofString string
}

// ValidateResult is validate's return shape (spec.md §6).
type ValidateResult struct {
	OK      bool
	Message string
}

// GenerateResult is generate's return shape (spec.md §6).
type GenerateResult struct {
	OK      bool
	Status  Status
	Message string
	Lines   []checker.SerializedLine
}

func resolveLogic(logicName string) (logic.Logic, string) {
	l, ok := logic.ByName(logicName)
	if !ok {
		return 0, fmt.Sprintf("Logic not recognized: %q.", logicName)
	}
	return l, ""
}

func wellFormedFor(l logic.Logic) func(term.Formula) bool {
	return func(f term.Formula) bool { return l.IsWellFormed(f, true) }
}

func parsePremisesAndConclusion(l logic.Logic, premisesText, conclusionText string) ([]term.Formula, term.Formula, string) {
	premises, err := ndparse.ParseAndVerifyPremises(premisesText, wellFormedFor(l), l.String())
	if err != nil {
		return nil, nil, err.Error()
	}
	conclusion, err := ndparse.ParseAndVerifyFormula(conclusionText, wellFormedFor(l), l.String())
	if err != nil {
		return nil, nil, err.Error()
	}
	return premises, conclusion, ""
}

// Check parses logic/premises/conclusion, replays every line payload into
// a fresh checker.Problem (BeginSubproof/AddLine/EndSubproof/
// EndAndBeginSubproof exactly as app.py's check_proof does), and reports
// whether the resulting proof is complete, incomplete, or in error.
func Check(logicName, premisesText, conclusionText string, lines []LinePayload, log *zap.Logger) CheckResult {
	log = obslog.Or(log)
	l, errMsg := resolveLogic(logicName)
	if errMsg != "" {
		return CheckResult{OK: false, Status: StatusError, Message: errMsg}
	}

	premises, conclusion, errMsg := parsePremisesAndConclusion(l, premisesText, conclusionText)
	if errMsg != "" {
		return CheckResult{OK: false, Status: StatusError, Message: errMsg}
	}

	problem := checker.NewProblem(l, premises, conclusion)
	log.Debug("problem created", zap.String("problem_id", problem.ID.String()), zap.Stringer("logic", l))

	for _, payload := range lines {
		prefix := ""
		if payload.LineNumber != nil {
			prefix = fmt.Sprintf("Line %d: ", *payload.LineNumber)
		}

		switch payload.Kind {
		case KindPremise:
			continue

		case KindAssumption, KindEndAndBegin:
			if payload.FormulaText == "" {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + "Formula is missing."}
			}
			assumption, err := ndparse.ParseAssumption(payload.FormulaText)
			if err != nil {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + err.Error()}
			}
			if payload.Kind == KindAssumption {
				problem.BeginSubproof(assumption)
			} else if err := problem.EndAndBeginSubproof(assumption); err != nil {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + err.Error()}
			}

		default:
			if payload.FormulaText == "" {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + "Formula is missing."}
			}
			if payload.JustText == "" {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + "Justification is missing."}
			}
			raw := payload.Raw
			if raw == "" {
				raw = payload.FormulaText + "; " + payload.JustText
			}
			formula, just, err := ndparse.ParseLine(raw)
			if err != nil {
				return CheckResult{OK: false, Status: StatusError, Message: prefix + err.Error()}
			}
			switch payload.Kind {
			case KindLine:
				problem.AddLine(formula, just)
			case KindCloseSubproof:
				if err := problem.EndSubproof(formula, just); err != nil {
					return CheckResult{OK: false, Status: StatusError, Message: prefix + err.Error()}
				}
			}
		}
	}

	if err := problem.Errors(); err != nil {
		log.Warn("proof rejected", zap.String("problem_id", problem.ID.String()), zap.Error(err))
		return CheckResult{OK: false, Status: StatusError, Message: err.Error()}
	}

	isComplete := problem.ConclusionReached()
	status := StatusIncomplete
	message := "No errors yet, but the proof is incomplete!"
	if isComplete {
		status = StatusComplete
		message = "Proof complete!"
	}
	return CheckResult{
		OK: true, Status: status, IsComplete: isComplete,
		Message: message, ProofString: problem.String(),
	}
}

// Validate reports whether premisesText/conclusionText parse and are
// well-formed under logicName, without building a Problem at all
// (app.py's validate_problem).
func Validate(logicName, premisesText, conclusionText string) ValidateResult {
	l, errMsg := resolveLogic(logicName)
	if errMsg != "" {
		return ValidateResult{OK: false, Message: errMsg}
	}

	if _, err := ndparse.ParseAndVerifyPremises(premisesText, wellFormedFor(l), l.String()); err != nil {
		return ValidateResult{OK: false, Message: "Invalid premise(s): " + err.Error()}
	}
	if strings.TrimSpace(conclusionText) == "" {
		return ValidateResult{OK: false, Message: "Invalid conclusion: A conclusion must be provided."}
	}
	if _, err := ndparse.ParseAndVerifyFormula(conclusionText, wellFormedFor(l), l.String()); err != nil {
		return ValidateResult{OK: false, Message: "Invalid conclusion: " + err.Error()}
	}
	return ValidateResult{OK: true, Message: ""}
}

// Generate runs pkg/prover end to end (TFL only, per spec.md §6) and
// serializes the resulting Problem (app.py's generate_proof): the premise
// lines first, then the derived body.
func Generate(logicName, premisesText, conclusionText string, timeout time.Duration, opts prover.SearchOptions, log *zap.Logger) GenerateResult {
	log = obslog.Or(log)
	l, errMsg := resolveLogic(logicName)
	if errMsg != "" {
		return GenerateResult{OK: false, Status: StatusError, Message: errMsg}
	}
	if l != logic.TFL {
		return GenerateResult{OK: false, Status: StatusError, Message: "Proof generation is only supported for TFL."}
	}

	premises, conclusion, errMsg := parsePremisesAndConclusion(l, premisesText, conclusionText)
	if errMsg != "" {
		return GenerateResult{OK: false, Status: StatusError, Message: errMsg}
	}

	problem, err := prover.Prove(premises, conclusion, timeout, opts, nil)
	if err != nil {
		log.Warn("proof search failed", zap.Error(err))
		return GenerateResult{OK: false, Status: StatusError, Message: err.Error()}
	}

	return GenerateResult{
		OK: true, Status: StatusComplete, Message: "Proof complete!",
		Lines: problem.SerializeLines(),
	}
}
