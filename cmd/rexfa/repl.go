package main

import (
	"errors"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rexfa/compile"
	"github.com/npillmayer/rexfa/internal/env"
	"github.com/npillmayer/rexfa/lex"
	"github.com/npillmayer/rexfa/parse"
	"github.com/pterm/pterm"
)

// REPL is an interactive session over package compile, supporting named
// pattern bindings ("let name = pattern", SPEC_FULL.md §10.1) the way
// T.REPL supports "def" bindings over its own environment.
type REPL struct {
	rl    *readline.Instance
	scope *env.Scope
	toDFA bool
}

// NewREPL builds a REPL reading from stdin via readline, with history and a
// "rexfa> " prompt.
func NewREPL(toDFA bool) (*REPL, error) {
	rl, err := readline.New("rexfa> ")
	if err != nil {
		return nil, err
	}
	return &REPL{rl: rl, scope: env.NewScope("global", nil), toDFA: toDFA}, nil
}

var letPattern = regexp.MustCompile(`^let\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+)$`)
var nameRef = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)

// Run reads lines until EOF (^D), evaluating each as either a binding or a
// "regex<TAB>input" test line.
func (r *REPL) Run() {
	defer r.rl.Close()
	for {
		line, err := r.rl.Readline()
		if err != nil { // io.EOF on ^D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.eval(line)
	}
	pterm.Info.Println("Good bye!")
}

func (r *REPL) eval(line string) {
	if m := letPattern.FindStringSubmatch(line); m != nil {
		name, pattern := m[1], strings.TrimSpace(m[2])
		if _, err := compile.Compile(r.expand(pattern), compile.Options{}); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		r.scope.Bind(name, pattern)
		pterm.Info.Printfln("bound %s = %s", name, pattern)
		return
	}

	fields := strings.SplitN(line, "\t", 2)
	source := r.expand(strings.TrimSpace(fields[0]))
	res, err := compile.Compile(source, compile.Options{ToDFA: r.toDFA})
	if err != nil {
		r.reportError(source, err)
		return
	}
	if len(fields) == 1 {
		pterm.Info.Printfln("%s compiled: %s", fields[0], res.NFA.String())
		return
	}
	input := strings.TrimSpace(fields[1])
	if res.Simulate(input) {
		pterm.Success.Printfln("%q matches %q", fields[0], input)
	} else {
		pterm.Warning.Printfln("%q rejects %q", fields[0], input)
	}
}

// expand substitutes every $name reference with its bound pattern,
// parenthesized so it composes safely with surrounding concatenation,
// union or star. References inside a bound pattern are expanded
// recursively.
func (r *REPL) expand(source string) string {
	return nameRef.ReplaceAllStringFunc(source, func(ref string) string {
		name := ref[1:]
		if pattern, ok := r.scope.Resolve(name); ok {
			return "(" + r.expand(pattern) + ")"
		}
		return ref
	})
}

// reportError prints a CompilationError and, for lexical/syntax failures,
// a caret line pointing at the offending position in source.
func (r *REPL) reportError(source string, err error) {
	var ce *compile.CompilationError
	if !errors.As(err, &ce) {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Error.Printfln("%s: %v", ce.Phase, ce.Err)
	pos, ok := errorPosition(ce.Err)
	if !ok || pos < 0 || pos > len(source) {
		return
	}
	pterm.Println("  " + source)
	pterm.Println("  " + strings.Repeat(" ", pos) + "^")
}

// errorPosition extracts the source offset from a *lex.LexicalError or
// *parse.SyntaxError, the only two error kinds compile.Compile can surface.
func errorPosition(err error) (int, bool) {
	var lexErr *lex.LexicalError
	if errors.As(err, &lexErr) {
		return int(lexErr.Pos), true
	}
	var synErr *parse.SyntaxError
	if errors.As(err, &synErr) {
		return int(synErr.Pos), true
	}
	return 0, false
}
