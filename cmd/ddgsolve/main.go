// Command ddgsolve solves a Directed Disjunctive Graph job-shop scheduling
// problem read from a file, or synthesises a random one from `<M> <G>`
// arguments.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fejozsi/ddg-go/engine"
	"github.com/fejozsi/ddg-go/ingest"
	"github.com/fejozsi/ddg-go/synth"
	"github.com/fejozsi/ddg-go/textfmt"
)

// Exit codes.
const (
	exitOK            = 0
	exitUsage         = 1
	exitInputError    = 2
	exitCyclicInput   = 3
	exitInternalError = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	switch len(args) {
	case 1:
		return solveFile(args[0], stdout, stderr, logger)
	case 2:
		return synthesise(args[0], args[1], stdout, stderr)
	default:
		fmt.Fprintln(stderr, "usage: ddgsolve <problem-file> | ddgsolve <M> <G>")
		return exitUsage
	}
}

// solveFile reads a problem file, ingests it, and runs the search to
// completion, printing the final report.
func solveFile(path string, stdout, stderr *os.File, logger *slog.Logger) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "open %s: %v\n", path, err)
		return exitInputError
	}
	defer f.Close()

	p, err := textfmt.ReadProblem(f)
	if err != nil {
		return reportInputErr(stderr, err)
	}

	g, err := ingest.FromProblem(p)
	if err != nil {
		return reportInputErr(stderr, err)
	}

	opts := engine.DefaultOptions()
	opts.Logger = logger
	opts.LogEvery = p.LogDetail > 0
	if p.MaxRuntime > 0 {
		opts.MaxRuntime = time.Duration(p.MaxRuntime * float64(time.Second))
	}
	opts.MaxDepth = p.MaxDepth

	eng, err := engine.New(g, opts)
	if err != nil {
		fmt.Fprintf(stderr, "internal: %v\n", err)
		return exitInternalError
	}

	if _, err := eng.BuildInitialOrder(); err != nil {
		fmt.Fprintf(stderr, "internal: %v\n", err)
		return exitInternalError
	}
	if _, err := eng.ComputeLowerBound(); err != nil {
		fmt.Fprintf(stderr, "internal: %v\n", err)
		return exitInternalError
	}

	sol, err := eng.Run(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "internal: %v\n", err)
		return exitInternalError
	}

	fmt.Fprint(stdout, sol.Report())
	return exitOK
}

// synthesise generates a random problem with the given operation and
// machine counts and writes it to stdout in the text format with a
// generated-file header.
func synthesise(mArg, gArg string, stdout, stderr *os.File) int {
	m, err := strconv.Atoi(mArg)
	if err != nil {
		fmt.Fprintf(stderr, "invalid M %q: %v\n", mArg, err)
		return exitUsage
	}
	g, err := strconv.Atoi(gArg)
	if err != nil {
		fmt.Fprintf(stderr, "invalid G %q: %v\n", gArg, err)
		return exitUsage
	}

	p, err := synth.Generate(m, g)
	if err != nil {
		fmt.Fprintf(stderr, "generate: %v\n", err)
		return exitUsage
	}

	if err := textfmt.WriteGenerated(stdout, p, time.Now()); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return exitInputError
	}
	return exitOK
}

// reportInputErr classifies a textfmt/ingest error and reports the
// matching exit code.
func reportInputErr(stderr *os.File, err error) int {
	fmt.Fprintln(stderr, err)
	if errors.Is(err, ingest.ErrCyclic) {
		return exitCyclicInput
	}
	return exitInputError
}
