/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the Read-Eval-Print Loop: an interactive session
// that reuses one long-lived *eval.Interpreter across lines, so a variable
// declared on one line stays visible on the next. Grounded in the teacher's
// repl.Repl (repl/repl.go): the same banner/prompt/readline/color shape,
// generalized from the teacher's one-line-one-parse-one-evaluator-call loop
// (which built a fresh parser.NewParser(line) and a fresh eval.NewEvaluator()
// on *every* line) into a pipeline that re-lexes and re-parses each line but
// keeps the Interpreter - and therefore its global scope - alive for the
// whole session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

// asReadCloser adapts r to io.ReadCloser, so both os.Stdin (already one)
// and a bare net.Conn-wrapped reader can be handed to readline.Config.Stdin
// uniformly - os.Stdin satisfies io.ReadCloser directly; a plain io.Reader
// gets a no-op Close.
func asReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

// Color definitions for REPL chrome, the same palette split the teacher's
// repl.go uses (blue/green/yellow/cyan for decoration and banner, red
// reserved for errors - diagnostics.Reporter owns the error colors itself).
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	NoColor bool
}

// New creates a Repl with the given chrome.
func New(banner, version, author, line, license, prompt string, noColor bool) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, NoColor: noColor}
}

// printBanner writes the welcome banner and usage instructions to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type Go-Lox statements and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines from reader via readline and
// writing results and diagnostics to writer, until '.exit', EOF, or a
// readline error. Passing os.Stdin/os.Stdout drives an interactive
// terminal session; passing a net.Conn for both drives one TCP client's
// session (cmd/golox's `serve` subcommand).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  asReadCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	diag := diagnostics.New(writer)
	if r.NoColor {
		diag = diagnostics.NewPlain(writer)
	}
	it := eval.New(diag)
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good Bye!\n")
			return
		}
		rl.SaveHistory(line)
		r.evalLine(it, diag, line)
	}
}

// evalLine lexes, parses, and executes one line, recovering from any panic
// the interpreter's fatal path doesn't itself catch - a REPL never dies
// from one bad line the way a batch `interpret` run is allowed to.
func (r *Repl) evalLine(it *eval.Interpreter, diag *diagnostics.Reporter, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			diag.RuntimeError(0, "", "internal error during evaluation")
		}
	}()

	toks := lexer.New(line, diag).Tokens()
	p := parser.New(toks, diag)
	stmts := p.Parse()
	if hadErr, _ := p.HadError(); hadErr {
		return
	}
	it.Run(stmts)
}
