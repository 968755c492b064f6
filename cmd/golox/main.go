/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Lox interpreter. It dispatches to
one of five subcommands (tokenize/parse/interpret/repl/serve), matching
exit codes 0/1/65/66/other to spec.md §6, generalized from the teacher's
main/main.go arg-sniffing dispatch into the standard library's flag
package per subcommand.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/config"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/source"
)

// printStmts pretty-prints a parsed program with ast.Printer.
func printStmts(stmts []ast.Stmt) string {
	return ast.NewPrinter().PrintProgram(stmts)
}

const version = "v1.0.0"
const author = "akashmaji(@iisc.ac.in)"
const license = "MIT"
const prompt = "golox >>> "
const line = "----------------------------------------------------------------"

const banner = `
   ▄▄▄▄                      ▄▄▄             ▄▄▄
  █▀▀▀▀█  ▄▄▄▄   █   █       █   █ ▄▄▄  ▄   ▄  █
  █      █▀  ▀█  █   █       █   █ █ █ █  █▄█   █
  █  ▄▄▄ █    █  █   █  ▀▀▀  █▀▀▀  █ █  ▀▀█▀▀   █
  █▄▄▄▄█ █▄▄▄▄█  █▄▄▄█       █     █▄█   █    ▄▄█▄▄
`

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "tokenize":
		os.Exit(runTokenize(os.Args[2:]))
	case "parse":
		os.Exit(runParse(os.Args[2:]))
	case "interpret":
		os.Exit(runInterpret(os.Args[2:]))
	case "repl":
		os.Exit(runRepl(os.Args[2:]))
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "--version", "-v":
		fmt.Println("Go-Lox " + version)
		os.Exit(0)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: golox <tokenize|parse|interpret|repl|serve> [options] [source-file]")
}

// commonFlags parses the flags spec.md §6 names: --report-scopes, plus
// --no-color as an ambient addition (--version is handled by main itself,
// as the first argument only). Flags may come before or after the
// positional arguments, which are returned in rest. Unknown or malformed
// flags are silently ignored, per spec.md §6: flag.ContinueOnError stops
// at them, and parsing resumes with the arguments that follow.
func commonFlags(args []string) (opts config.Options, rest []string) {
	fs := flag.NewFlagSet("golox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	reportScopes := fs.Bool("report-scopes", false, "log every scope push/pop/swap/restore")
	noColor := fs.Bool("no-color", false, "disable ANSI color in diagnostics and REPL output")
	for len(args) > 0 {
		err := fs.Parse(args)
		left := fs.Args()
		if err == nil && len(left) > 0 {
			rest = append(rest, left[0])
			left = left[1:]
		} else if err != nil && len(left) == len(args) {
			left = left[1:]
		}
		args = left
	}
	return config.Options{ReportScopes: *reportScopes, NoColor: *noColor}, rest
}

func newReporter(opts config.Options) *diagnostics.Reporter {
	if opts.NoColor {
		return diagnostics.NewPlain(os.Stderr)
	}
	return diagnostics.New(os.Stderr)
}

func runTokenize(args []string) int {
	opts, rest := commonFlags(args)
	if len(rest) != 1 {
		usage()
		return 1
	}
	src, err := source.Load(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	diag := newReporter(opts)
	toks := lexer.New(src.Text, diag).Tokens()
	writeTokens(os.Stdout, toks)
	if diag.Count() > 0 {
		return 65
	}
	return 0
}

func runParse(args []string) int {
	opts, rest := commonFlags(args)
	if len(rest) != 1 {
		usage()
		return 1
	}
	src, err := source.Load(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	diag := newReporter(opts)
	toks := lexer.New(src.Text, diag).Tokens()
	if diag.Count() > 0 {
		return 65
	}
	p := parser.New(toks, diag)
	stmts := p.Parse()
	if hadErr, code := p.HadError(); hadErr {
		return code
	}
	fmt.Print(printStmts(stmts))
	return 0
}

func runInterpret(args []string) int {
	opts, rest := commonFlags(args)
	if len(rest) != 1 {
		usage()
		return 1
	}
	src, err := source.Load(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	diag := newReporter(opts)
	toks := lexer.New(src.Text, diag).Tokens()
	if diag.Count() > 0 {
		return 65
	}
	p := parser.New(toks, diag)
	stmts := p.Parse()
	if hadErr, code := p.HadError(); hadErr {
		return code
	}
	it := eval.New(diag)
	if opts.ReportScopes {
		it.Chain.Trace = diag.ScopeTrace
	}
	return it.Run(stmts)
}

func runRepl(args []string) int {
	opts, _ := commonFlags(args)
	r := repl.New(banner, version, author, line, license, prompt, opts.NoColor)
	r.Start(os.Stdin, os.Stdout)
	return 0
}

func runServe(args []string) int {
	opts, rest := commonFlags(args)
	if len(rest) != 1 {
		usage()
		return 1
	}
	port := rest[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		fmt.Fprintln(os.Stderr, "server error:", err)
		return 1
	}
	defer listener.Close()
	fmt.Printf("Go-Lox REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Fprintln(os.Stderr, "accept error:", err)
			continue
		}
		go handleClient(conn, opts)
	}
}

func handleClient(conn net.Conn, opts config.Options) {
	defer conn.Close()
	r := repl.New(banner, version, author, line, license, prompt, opts.NoColor)
	r.Start(conn, conn)
}
