/*
File    : golox/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics formats and writes the interpreter's error output.
// Every stage (lexer, parser, evaluator) reports through a Reporter instead
// of calling fmt.Println directly, generalizing the teacher's main.go
// convention of a package-level redColor/yellowColor/cyanColor trio
// (main/main.go, repl/repl.go) into one reusable type so lexer/parser/eval
// don't each need their own copy of the color wiring.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Kind identifies which stage produced a diagnostic, used both in the
// printed "[Kind]" tag and to pick which color renders it.
type Kind string

const (
	Lexical Kind = "Syntax"
	Static  Kind = "Static"
	Runtime Kind = "Runtime"
)

// Reporter formats and writes diagnostics to an io.Writer, colorizing by
// Kind the way main.go colorizes FILE/PARSE/RUNTIME errors (red/yellow/
// cyan there; here magenta=Lexical, yellow=Static, red=Runtime - chosen so
// Runtime, the most severe, keeps the teacher's red).
type Reporter struct {
	w        io.Writer
	lexical  *color.Color
	static   *color.Color
	runtime  *color.Color
	errCount int
}

// New creates a color-enabled Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:       w,
		lexical: color.New(color.FgMagenta),
		static:  color.New(color.FgYellow),
		runtime: color.New(color.FgRed),
	}
}

// NewPlain creates a Reporter with color disabled, for tests and non-TTY
// output where ANSI escapes would just be noise.
func NewPlain(w io.Writer) *Reporter {
	r := New(w)
	r.lexical.DisableColor()
	r.static.DisableColor()
	r.runtime.DisableColor()
	return r
}

// Count returns how many diagnostics have been reported.
func (r *Reporter) Count() int { return r.errCount }

// report renders lexeme with %q, except a STRING token's lexeme already
// carries its own source quotes (`"hi"`); for those, print it unquoted by
// Go's rules so it isn't double-quoted, per spec.md §4.6.
func (r *Reporter) report(c *color.Color, kind Kind, line int, lexeme, message string) {
	r.errCount++
	display := fmt.Sprintf("%q", lexeme)
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		display = lexeme
	}
	text := fmt.Sprintf("[%s] Line %d: %s - %s\n", kind, line, display, message)
	c.Fprint(r.w, text)
}

// LexError reports a lexical error - the Reporter itself implements the
// lexer.Diagnostics interface so a *Reporter can be passed straight into
// lexer.New.
func (r *Reporter) LexError(line int, message string) {
	r.report(r.lexical, Lexical, line, "", message)
}

// SyntaxError reports a parser error at the given token lexeme.
func (r *Reporter) SyntaxError(line int, lexeme, message string) {
	r.report(r.lexical, Lexical, line, lexeme, message)
}

// StaticError reports a static/analysis error under the [Static] tag.
// Nothing in the lexer, parser or evaluator calls it: the parser reports its
// 127-argument and 127-parameter limits through SyntaxError, and assignment
// to an undeclared name is a RuntimeError.
func (r *Reporter) StaticError(line int, lexeme, message string) {
	r.report(r.static, Static, line, lexeme, message)
}

// RuntimeError reports an error raised while evaluating the tree.
func (r *Reporter) RuntimeError(line int, lexeme, message string) {
	r.report(r.runtime, Runtime, line, lexeme, message)
}

// ScopeTrace logs one scope chain operation (push/pop/swap/restore) and the
// scope ID it acted on - the --report-scopes flag wires this directly to
// environment.Chain.Trace, without counting toward Count()'s error tally.
func (r *Reporter) ScopeTrace(op string, scopeID int) {
	fmt.Fprintf(r.w, "[Scope] %s %d\n", op, scopeID)
}
