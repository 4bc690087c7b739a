package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/rexfa/compile"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds for the batch table scanner, mirroring the Skip/MakeToken
// action-table style of lr/scanner/lexmach/lexmachine.go's LMAdapter.
const (
	tokField = iota
	tokTab
	tokVerdict
)

// newRowLexer compiles a lexmachine lexer for "regex<TAB>input<TAB>verdict"
// rows. accept/reject are added before the catch-all field pattern so they
// win ties on equal-length matches, the same priority-by-registration-order
// the teacher's adapter relies on.
func newRowLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`accept`), verdictAction(true))
	lx.Add([]byte(`reject`), verdictAction(false))
	lx.Add([]byte(`\t`), skipToken(tokTab))
	lx.Add([]byte(`[^\t\n]+`), fieldAction)
	if err := lx.Compile(); err != nil {
		return nil, fmt.Errorf("compiling batch row lexer: %w", err)
	}
	return lx, nil
}

func fieldAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(tokField, string(m.Bytes), m), nil
}

func skipToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

func verdictAction(accept bool) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokVerdict, strconv.FormatBool(accept), m), nil
	}
}

// row is one parsed batch line: a regex, an input to test, and the verdict
// the table author expects.
type row struct {
	line    int
	regex   string
	input   string
	verdict bool
}

// scanRow extracts the three fields of a single line via the lexmachine
// scanner, rejecting lines that don't have exactly field/TAB/field/TAB/verdict.
func scanRow(lx *lexmachine.Lexer, lineno int, text string) (row, error) {
	scanner, err := lx.Scanner([]byte(text))
	if err != nil {
		return row{}, err
	}
	var fields []string
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return row{}, fmt.Errorf("line %d: %v", lineno, err)
		}
		t := tok.(*lexmachine.Token)
		if t.Type == tokTab {
			continue
		}
		fields = append(fields, string(t.Lexeme))
	}
	if len(fields) != 3 {
		return row{}, fmt.Errorf("line %d: expected regex<TAB>input<TAB>accept|reject, got %d field(s)", lineno, len(fields))
	}
	var verdict bool
	switch fields[2] {
	case "accept":
		verdict = true
	case "reject":
		verdict = false
	default:
		return row{}, fmt.Errorf("line %d: verdict field must be accept or reject, got %q", lineno, fields[2])
	}
	return row{line: lineno, regex: fields[0], input: fields[1], verdict: verdict}, nil
}

// RunBatch compiles and simulates every row of path, a tab-separated test
// table, reporting mismatches via pterm and returning the number that
// failed.
func RunBatch(path string, toDFA bool) (int, error) {
	lx, err := newRowLexer()
	if err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	failed := 0
	total := 0
	lineno := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		if text == "" {
			continue
		}
		total++
		r, err := scanRow(lx, lineno, text)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed++
			continue
		}
		res, err := compile.Compile(r.regex, compile.Options{ToDFA: toDFA})
		if err != nil {
			pterm.Error.Printfln("line %d: %q failed to compile: %v", r.line, r.regex, err)
			failed++
			continue
		}
		got := res.Simulate(r.input)
		if got != r.verdict {
			pterm.Error.Printfln("line %d: %q on %q: got %v, want %v", r.line, r.regex, r.input, got, r.verdict)
			failed++
			continue
		}
		pterm.Success.Printfln("line %d: %q on %q: %v", r.line, r.regex, r.input, got)
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("reading batch file: %w", err)
	}
	pterm.Info.Printfln("%d/%d row(s) passed", total-failed, total)
	return failed, nil
}
