// Command ndcheck is the thin demonstration harness SPEC_FULL.md names
// as an out-of-scope collaborator: it reads a sequent + line file from
// disk and calls pkg/facade's Check or Generate, printing the returned
// strings. No business logic lives here — grounded on cli.py's
// create_problem/perform_edit/main loop and app.py's two JSON routes,
// rebuilt around a CLI instead of a web server or stdin prompts, in the
// style of drand-drand's cmd/relay-s3 urfave/cli/v2 commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	cli "github.com/urfave/cli/v2"

	"github.com/nd-prover/ndcheck/internal/config"
	"github.com/nd-prover/ndcheck/pkg/facade"
	"github.com/nd-prover/ndcheck/pkg/prover"
)

func main() {
	app := &cli.App{
		Name:  "ndcheck",
		Usage: "check or generate a natural-deduction proof from a sequent file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML config file"},
		},
		Commands: []*cli.Command{checkCmd, generateCmd},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

var checkCmd = &cli.Command{
	Name:      "check",
	Usage:     "validate a completed (or in-progress) proof against a sequent file",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("usage: ndcheck check <file>", 1)
		}
		seq, err := readSequentFile(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		res := facade.Check(seq.logic, seq.premises, seq.conclusion, seq.lines, nil)
		if !res.OK {
			fmt.Println(color.RedString(res.Message))
			return cli.Exit("", 1)
		}
		fmt.Println(res.ProofString)
		if res.IsComplete {
			fmt.Println(color.GreenString(res.Message))
		} else {
			fmt.Println(res.Message)
		}
		return nil
	},
}

var generateCmd = &cli.Command{
	Name:      "generate",
	Usage:     "search for a TFL proof of a sequent file's argument",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "timeout", Usage: "complete-search deadline before falling back to the unbounded pass"},
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("usage: ndcheck generate <file>", 1)
		}
		seq, err := readSequentFile(path)
		if err != nil {
			return cli.Exit(err, 1)
		}

		cfg := config.Default()
		if p := c.String("config"); p != "" {
			if loaded, err := config.Load(p); err == nil {
				cfg = loaded
			}
		}
		timeout := cfg.ProverDeadline
		if d := c.Duration("timeout"); d > 0 {
			timeout = d
		}
		opts := prover.DefaultSearchOptions()
		opts.MemoTableSize = cfg.MemoTableSize

		res := facade.Generate(seq.logic, seq.premises, seq.conclusion, timeout, opts, nil)
		if !res.OK {
			fmt.Println(color.RedString(res.Message))
			return cli.Exit("", 1)
		}
		for _, line := range res.Lines {
			fmt.Printf("%s%s  [%s]\n", strings.Repeat("  ", line.Indent), line.Text, line.JustText)
		}
		fmt.Println(color.GreenString(res.Message))
		return nil
	},
}

// sequentFile is the on-disk input shape cmd/ndcheck reads: a logic
// label, premises/conclusion text, and an optional in-progress proof
// body, one edit per line.
type sequentFile struct {
	logic      string
	premises   string
	conclusion string
	lines      []facade.LinePayload
}

// readSequentFile parses a small line-oriented format:
//
//	logic: TFL
//	premises: A, A -> B
//	conclusion: B
//	lines:
//	AS A
//	END A ; R 3
//	A -> A ; →I 3–4
//
// Every line after "lines:" is one edit: "AS <formula>" begins a
// subproof, "EB <formula>" ends the current one and begins a sibling,
// "END <formula> ; <rule>" ends the current subproof, anything else is
// an ordinary "<formula> ; <rule>" line (cli.py's edit kinds 1-4,
// generalized into one line-prefixed grammar for a file instead of an
// interactive prompt).
func readSequentFile(path string) (*sequentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seq := &sequentFile{}
	inLines := false
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := scanner.Text()
		if inLines {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			lineNo++
			seq.lines = append(seq.lines, parseEditLine(trimmed, lineNo))
			continue
		}
		switch {
		case strings.HasPrefix(raw, "logic:"):
			seq.logic = strings.TrimSpace(strings.TrimPrefix(raw, "logic:"))
		case strings.HasPrefix(raw, "premises:"):
			seq.premises = strings.TrimSpace(strings.TrimPrefix(raw, "premises:"))
		case strings.HasPrefix(raw, "conclusion:"):
			seq.conclusion = strings.TrimSpace(strings.TrimPrefix(raw, "conclusion:"))
		case strings.HasPrefix(raw, "lines:"):
			inLines = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

func parseEditLine(line string, n int) facade.LinePayload {
	num := n
	switch {
	case strings.HasPrefix(line, "AS "):
		return facade.LinePayload{Kind: facade.KindAssumption, LineNumber: &num, FormulaText: strings.TrimSpace(line[3:])}
	case strings.HasPrefix(line, "EB "):
		return facade.LinePayload{Kind: facade.KindEndAndBegin, LineNumber: &num, FormulaText: strings.TrimSpace(line[3:])}
	case strings.HasPrefix(line, "END "):
		formula, just := splitFormulaJust(line[4:])
		return facade.LinePayload{Kind: facade.KindCloseSubproof, LineNumber: &num, FormulaText: formula, JustText: just}
	default:
		formula, just := splitFormulaJust(line)
		return facade.LinePayload{Kind: facade.KindLine, LineNumber: &num, FormulaText: formula, JustText: just}
	}
}

func splitFormulaJust(s string) (formula, just string) {
	parts := strings.SplitN(s, ";", 2)
	if len(parts) != 2 {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
