// Package main implements the hxwk command-line interface.
//
// hxwk is an ahead-of-time compiler for the Hexenwerk language. It
// reads source text from standard input, runs the lexer → parser →
// IR-lowering pipeline, and writes the resulting module as textual
// LLVM assembly.
//
// Examples:
//
//	hxwk < program.hx            # compile to ./out.ll
//	hxwk -o build/prog.ll < program.hx
//	hxwk --print-ast < program.hx
//
// Diagnostics go to stderr, one line per error, in the form
// "LINE:COL: Error: MESSAGE". The exit code is nonzero when the output
// file cannot be opened or any diagnostic was emitted.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elqu/hxwk/pkg/irgen"
	"github.com/elqu/hxwk/pkg/lexer"
	"github.com/elqu/hxwk/pkg/parser"
)

// errCompileFailed signals a run that emitted diagnostics; the
// messages were already printed, so main only maps it to the exit
// code.
var errCompileFailed = errors.New("compilation failed")

func main() {
	root := newRootCmd()
	// Usage and help belong on stderr; stdout is never written to
	root.SetOut(os.Stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
	if help, _ := root.Flags().GetBool("help"); help {
		os.Exit(1)
	}
}

// newRootCmd builds the single hxwk command.
func newRootCmd() *cobra.Command {
	var (
		outPath  string
		printAST bool
	)

	cmd := &cobra.Command{
		Use:   "hxwk",
		Short: "Ahead-of-time compiler for the Hexenwerk language",
		Long: `hxwk compiles Hexenwerk source read from standard input into an
LLVM assembly module named Hexenwerk, written to out.ll in the current
directory by default.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return compile(cmd.InOrStdin(), outPath, printAST)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "out.ll",
		"path of the emitted LLVM assembly")
	cmd.Flags().BoolVar(&printAST, "print-ast", false,
		"dump each parsed statement to stderr")

	return cmd
}

// compile runs the full pipeline: open the output file first (a
// failure here aborts before any work), then lower top-level
// statements one at a time. A lowering error stops the current
// statement only; a parse error stops the run, since the token stream
// is no longer trustworthy.
func compile(src io.Reader, outPath string, printAST bool) error {
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", outPath, err)

		return err
	}
	defer out.Close()

	p := parser.New(lexer.New(src))
	gen := irgen.New("Hexenwerk")

	nerrs := 0
	for {
		stmt, perr := p.Parse()
		if perr != nil {
			nerrs += reportParseErrors(perr)

			break
		}
		if stmt == nil {
			break
		}

		if printAST {
			fmt.Fprintf(os.Stderr, "%s;\n", stmt)
		}

		if lerr := gen.Lower(stmt); lerr != nil {
			fmt.Fprintln(os.Stderr, lerr)
			nerrs++
		}
	}

	if err := gen.Emit(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %s: %v\n", outPath, err)

		return err
	}

	if nerrs > 0 {
		return errCompileFailed
	}

	return nil
}

// reportParseErrors prints every accumulated parse diagnostic and
// returns how many there were.
func reportParseErrors(err error) int {
	var perrs *parser.ParseErrors
	if errors.As(err, &perrs) {
		for _, e := range perrs.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}

		return perrs.Count()
	}

	fmt.Fprintln(os.Stderr, err)

	return 1
}
