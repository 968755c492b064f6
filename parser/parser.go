/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for the Go-Mix
// expression and statement grammar (spec.md §4.2): assignment is the
// lowest-precedence rule, down through logical-or, logical-and, equality,
// comparison, term, factor, unary, call, and primary.
//
// The teacher's parser (parser/parser.go) is Pratt-based, dispatching
// through UnaryFuncs/BinaryFuncs maps keyed on lexer.TokenType. This parser
// walks the token slice with a one-token cursor (cur/advance/check/expect)
// and drops the Pratt tables for one method per precedence level, since the
// grammar's few operators don't need a general-purpose precedence-climbing
// registry. Each syntax error is reported to diag and parsing continues, as
// in the teacher; internally, fail unwinds to the enclosing statement with a
// parseError panic, after which declarationRecovered runs the panic-mode
// synchronize() (parser_statements.go's sibling in spirit) since spec.md
// §4.2 asks for skip-to-statement-boundary recovery the teacher's
// map-driven parser does not need.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// Diagnostics is the subset of diagnostics.Reporter the parser needs.
type Diagnostics interface {
	SyntaxError(line int, lexeme, message string)
}

// maxArgs is spec.md §4.2's static arity ceiling: a call with more than 127
// arguments is a parse-time error, not a runtime one.
const maxArgs = 127

// Parser consumes a token slice (the lexer's complete output - unlike the
// teacher's streaming lexer.NextToken(), this lexer tokenizes eagerly, so
// the parser just walks an index into the slice) and builds an AST.
type Parser struct {
	toks  []token.Token
	pos   int
	diag  Diagnostics
	arena *ast.Arena

	hadErr  bool
	errCode int
}

// New creates a Parser over toks, reporting syntax errors to diag.
func New(toks []token.Token, diag Diagnostics) *Parser {
	return &Parser{toks: toks, diag: diag, arena: ast.NewArena()}
}

// HadError reports whether any syntax error occurred, and the exit code
// (66, spec.md §6) callers should use if so.
func (p *Parser) HadError() (bool, int) {
	return p.hadErr, p.errCode
}

// Arena returns the node arena this parse allocated from.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// --- token cursor -------------------------------------------------------

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Kind == token.EOF }
func (p *Parser) advance() token.Token {
	t := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.cur().Kind == kind
}

func (p *Parser) checkKeyword(kw token.Keyword) bool {
	return !p.atEnd() && p.cur().Kind == token.KEYWORD && p.cur().Keyword == kw
}

func (p *Parser) matchKind(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchKeyword(kws ...token.Keyword) bool {
	for _, kw := range kws {
		if p.checkKeyword(kw) {
			p.advance()
			return true
		}
	}
	return false
}

// parseError is a sentinel panic value that fail raises and
// declarationRecovered recovers (Go's closest analogue to the spec's
// longjmp-equivalent panic mode), unwinding back up to the nearest
// statement boundary.
type parseError struct{}

func (p *Parser) errorAt(t token.Token, message string) {
	p.hadErr = true
	p.errCode = 66
	p.diag.SyntaxError(t.Line, t.Lexeme, message)
}

// fail reports an error at the current token and unwinds to synchronize().
func (p *Parser) fail(message string) {
	p.errorAt(p.cur(), message)
	panic(parseError{})
}

// expect consumes the current token if it has kind, else fails.
func (p *Parser) expect(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(message)
	return token.Token{}
}

// expectKeyword consumes the current token if it is keyword kw, else fails.
func (p *Parser) expectKeyword(kw token.Keyword, message string) token.Token {
	if p.checkKeyword(kw) {
		return p.advance()
	}
	p.fail(message)
	return token.Token{}
}

// synchronize implements spec.md §4.2's panic-mode recovery: advance until
// a statement boundary (just past a `;`) or the start of a declaration
// keyword, whichever comes first.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.toks[p.pos-1].Kind == token.SEMICOLON {
			return
		}
		if p.cur().Kind == token.KEYWORD {
			switch p.cur().Keyword {
			case token.CLASS, token.FUN, token.IF, token.ELSE, token.FOR, token.VAR, token.WHILE, token.RETURN:
				return
			}
		}
		p.advance()
	}
}

// Parse runs the parser to completion, returning every top-level statement
// it could recover to. HadError reports whether the parse overall failed.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declarationRecovered(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declarationRecovered parses one top-level declaration, catching a
// parseError panic and synchronizing - the non-local exit spec.md §4.2
// describes, implemented with Go's panic/recover instead of C's longjmp.
func (p *Parser) declarationRecovered() (s ast.Stmt) {
	start := p.pos
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				if p.pos == start {
					// The failing token was never consumed; skip it so
					// recovery always makes progress.
					p.advance()
				}
				p.synchronize()
				s = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}
