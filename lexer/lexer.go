/*
File    : golox/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns source bytes into a token stream. It knows nothing
// about grammar: it recognizes fixed one/two-character lexemes, decodes
// string and numeric literals in place, and classifies identifiers against
// the keyword table. Whitespace and `//` comments are consumed silently.
package lexer

import (
	"fmt"

	"github.com/akashmaji946/golox/token"
)

// fixed maps single-character lexemes to their token kind. Two-character
// forms (==, !=, >=, <=) are detected by peeking one byte ahead before
// falling back to this table, so two-character matches always take
// priority over the one-character prefix.
var fixed = map[byte]token.Kind{
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}

// Diagnostics receives lexical error reports (unterminated string, stray
// character). It is the lexer's only collaborator with the outside world;
// the concrete implementation (diagnostics.Reporter) lives above this
// package so that lexer stays free of formatting/color concerns.
type Diagnostics interface {
	LexError(line int, message string)
}

// Lexer scans one source buffer into tokens. It is not safe for concurrent
// use; it holds no allocations beyond its own small fields, since token
// literals are substrings of Src, not copies.
type Lexer struct {
	Src  string
	pos  int
	line int

	diag    Diagnostics
	hadErr  bool
	errCode int // first error code observed (65 for lexical errors)
}

// New creates a Lexer over src. diag may be nil, in which case lexical
// errors are swallowed (useful for quick probing); production callers
// should always supply a diagnostics.Reporter.
func New(src string, diag Diagnostics) *Lexer {
	return &Lexer{Src: src, pos: 0, line: 1, diag: diag}
}

// HadError reports whether any lexical error was seen, and the exit code
// to propagate (65, per spec.md's CLI exit-code table).
func (l *Lexer) HadError() (bool, int) {
	return l.hadErr, l.errCode
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.Src) }

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.Src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.Src) {
		return 0
	}
	return l.Src[l.pos+1]
}

func (l *Lexer) advance() byte {
	c := l.Src[l.pos]
	l.pos++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.Src[l.pos] != expected {
		return false
	}
	l.pos++
	return true
}

func (l *Lexer) reportError(format string, a ...any) {
	l.hadErr = true
	if l.errCode == 0 {
		l.errCode = 65
	}
	if l.diag != nil {
		l.diag.LexError(l.line, fmt.Sprintf(format, a...))
	}
}

// Tokens scans the full source and returns every token, terminated by
// exactly one EOF token (invariant 1 of spec.md §8). Tokens that failed to
// decode (unterminated strings, unrecognized characters) are omitted from
// the returned slice but still advance the scan, matching the "ignore but
// advance" failure mode of spec.md §4.1.
func (l *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok, ok := l.next()
		if ok {
			out = append(out, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// next scans and returns the next token. The boolean return is false for
// tokens that should be dropped from the stream (lexical errors), true
// otherwise; EOF is always returned with ok=true.
func (l *Lexer) next() (token.Token, bool) {
	l.skipWhitespaceAndComments()

	startLine := l.line
	if l.atEnd() {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: startLine}, true
	}

	start := l.pos
	c := l.advance()

	if c == '"' {
		return l.readString(start, startLine)
	}
	if isDigit(c) {
		return l.readNumber(start, startLine)
	}
	if isAlpha(c) {
		return l.readIdentifier(start, startLine)
	}

	// Two-character operators take priority over their one-character prefix.
	switch c {
	case '!':
		if l.match('=') {
			return l.tok(token.BANG_EQUAL, start, startLine), true
		}
		return l.tok(token.BANG, start, startLine), true
	case '=':
		if l.match('=') {
			return l.tok(token.EQUAL_EQUAL, start, startLine), true
		}
		return l.tok(token.EQUAL, start, startLine), true
	case '<':
		if l.match('=') {
			return l.tok(token.LESS_EQUAL, start, startLine), true
		}
		return l.tok(token.LESS, start, startLine), true
	case '>':
		if l.match('=') {
			return l.tok(token.GREATER_EQUAL, start, startLine), true
		}
		return l.tok(token.GREATER, start, startLine), true
	case '/':
		// A `//` comment is consumed by skipWhitespaceAndComments before we
		// get here, so a bare '/' reaching this switch is always division.
		return l.tok(token.SLASH, start, startLine), true
	}

	if kind, ok := fixed[c]; ok {
		return l.tok(kind, start, startLine), true
	}

	l.reportError("Unexpected character: %c", c)
	return token.Token{}, false
}

func (l *Lexer) tok(kind token.Kind, start, line int) token.Token {
	return token.Token{Kind: kind, Lexeme: l.Src[start:l.pos], Line: line, Column: start + 1}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.pos++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// readString consumes a double-quoted string literal. An unterminated
// string (newline or EOF before the closing quote) is reported as a
// lexical error (code 65) and the token is dropped from the stream.
func (l *Lexer) readString(start, line int) (token.Token, bool) {
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			break
		}
		l.pos++
	}
	if l.atEnd() || l.peek() != '"' {
		l.reportError("Unterminated string.")
		return token.Token{}, false
	}
	content := l.Src[start+1 : l.pos]
	l.pos++ // consume closing quote
	tok := l.tok(token.STRING, start, line)
	tok.Str = content
	return tok, true
}

// readNumber consumes an integer or decimal literal and decodes it into a
// (whole, decimal) pair with trailing zeros stripped from the decimal part.
func (l *Lexer) readNumber(start, line int) (token.Token, bool) {
	for isDigit(l.peek()) {
		l.pos++
	}
	whole := l.Src[start:l.pos]
	decimal := ""
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.pos++ // consume '.'
		decStart := l.pos
		for isDigit(l.peek()) {
			l.pos++
		}
		decimal = stripTrailingZeros(l.Src[decStart:l.pos])
	}
	tok := l.tok(token.NUMBER, start, line)
	tok.Num = token.NumberPayload{Whole: whole, Decimal: decimal}
	return tok, true
}

func stripTrailingZeros(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// readIdentifier consumes an identifier or keyword. It starts with `_` or a
// letter and continues with `_`, a letter, or a digit.
func (l *Lexer) readIdentifier(start, line int) (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.pos++
	}
	text := l.Src[start:l.pos]
	if kw, ok := token.LookupKeyword(text); ok {
		tok := l.tok(token.KEYWORD, start, line)
		tok.Keyword = kw
		return tok, true
	}
	return l.tok(token.IDENTIFIER, start, line), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
