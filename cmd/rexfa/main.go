/*
Command rexfa is a small CLI around package compile: either an interactive
REPL (modeled on terex/terexlang/trepl/repl.go's T.REPL) or, given
-batch, a table-driven test runner reading regex/input/verdict rows with
a lexmachine-built scanner (lr/scanner/lexmach/lexmachine.go's LMAdapter
pattern), one rexfa invocation per teacher CLI shape.
*/
package main

import (
	"flag"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

func tracer() tracing.Trace {
	return tracing.Select("rexfa.cmd")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	toDFA := flag.Bool("dfa", false, "Determinize every compiled expression before simulating")
	batch := flag.String("batch", "", "Run a tab-separated test table instead of starting the REPL")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))

	if *batch != "" {
		failed, err := RunBatch(*batch, *toDFA)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	pterm.Info.Println("Welcome to rexfa")
	repl, err := NewREPL(*toDFA)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl.Run()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
