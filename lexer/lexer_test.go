/*
File    : golox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/token"
)

// kinds extracts just the Kind of each token for compact comparisons.
func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexer_FixedAndTwoCharTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			name: "single char punctuation",
			src:  "(){};,.-+*",
			want: []token.Kind{
				token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
				token.SEMICOLON, token.COMMA, token.DOT, token.MINUS, token.PLUS, token.STAR,
				token.EOF,
			},
		},
		{
			name: "two-char operators beat one-char prefixes",
			src:  "== != >= <= = ! > <",
			want: []token.Kind{
				token.EQUAL_EQUAL, token.BANG_EQUAL, token.GREATER_EQUAL, token.LESS_EQUAL,
				token.EQUAL, token.BANG, token.GREATER, token.LESS, token.EOF,
			},
		},
		{
			name: "comment consumes to end of line",
			src:  "1 // a comment\n+ 2",
			want: []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := New(tt.src, nil).Tokens()
			assert.Equal(t, tt.want, kinds(toks))
		})
	}
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := New(`"hello world"`, nil).Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Str)
	assert.Equal(t, token.EOF, toks[1].Kind)
}

func TestLexer_EmptyStringLiteral(t *testing.T) {
	toks := New(`""`, nil).Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, "", toks[0].Str)
}

type recordingDiag struct {
	lines []int
	msgs  []string
}

func (r *recordingDiag) LexError(line int, message string) {
	r.lines = append(r.lines, line)
	r.msgs = append(r.msgs, message)
}

func TestLexer_UnterminatedString(t *testing.T) {
	diag := &recordingDiag{}
	lex := New(`"unterminated`, diag)
	toks := lex.Tokens()

	// the broken string token is dropped, only EOF remains
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)

	hadErr, code := lex.HadError()
	assert.True(t, hadErr)
	assert.Equal(t, 65, code)
	require.Len(t, diag.msgs, 1)
}

func TestLexer_UnterminatedStringAcrossNewline(t *testing.T) {
	lex := New("\"oops\nvar x", nil)
	lex.Tokens()
	hadErr, code := lex.HadError()
	assert.True(t, hadErr)
	assert.Equal(t, 65, code)
}

func TestLexer_NumberLiteral(t *testing.T) {
	tests := []struct {
		src     string
		whole   string
		decimal string
	}{
		{"123", "123", ""},
		{"3.14", "3", "14"},
		{"3.140", "3", "14"},
		{"0.0", "0", ""},
	}
	for _, tt := range tests {
		toks := New(tt.src, nil).Tokens()
		require.Len(t, toks, 2)
		assert.Equal(t, token.NUMBER, toks[0].Kind)
		assert.Equal(t, tt.whole, toks[0].Num.Whole)
		assert.Equal(t, tt.decimal, toks[0].Num.Decimal)
	}
}

func TestLexer_IdentifiersAndKeywords(t *testing.T) {
	toks := New("var x = foo_bar and while", nil).Tokens()
	want := []token.Kind{
		token.KEYWORD, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER,
		token.KEYWORD, token.KEYWORD, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, token.VAR, toks[0].Keyword)
	assert.Equal(t, token.AND, toks[4].Keyword)
	assert.Equal(t, token.WHILE, toks[5].Keyword)
}

func TestLexer_UnexpectedCharacterIsDroppedButAdvances(t *testing.T) {
	diag := &recordingDiag{}
	toks := New("1 @ 2", diag).Tokens()
	// the '@' is reported and dropped, scanning continues past it
	want := []token.Kind{token.NUMBER, token.NUMBER, token.EOF}
	assert.Equal(t, want, kinds(toks))
	require.Len(t, diag.msgs, 1)
}

func TestLexer_LineTrackingAcrossNewlines(t *testing.T) {
	toks := New("1\n2\n\n3", nil).Tokens()
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}

func TestLexer_EmptySourceYieldsOnlyEOF(t *testing.T) {
	toks := New("", nil).Tokens()
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}
