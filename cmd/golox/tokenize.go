/*
File    : golox/cmd/golox/tokenize.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// writeTokens renders one line per token in the format spec.md §6 mandates:
// "<KIND> <lexeme> <payload>". NUMBER's payload reconstructs the decimal
// form; STRING's payload is the decoded (unquoted) content; KEYWORD tokens
// print their uppercased keyword name ahead of the lexeme, with a null
// payload; every other kind just prints its lexeme with a null payload.
func writeTokens(w io.Writer, toks []token.Token) {
	for _, t := range toks {
		switch t.Kind {
		case token.NUMBER:
			payload := t.Num.Whole
			if t.Num.Decimal != "" {
				payload += "." + t.Num.Decimal
			} else {
				payload += ".0"
			}
			fmt.Fprintf(w, "%s %s %s\n", t.Kind, t.Lexeme, payload)
		case token.STRING:
			fmt.Fprintf(w, "%s %s %s\n", t.Kind, t.Lexeme, t.Str)
		case token.KEYWORD:
			fmt.Fprintf(w, "%s %s %s null\n", t.Kind, t.Keyword.Name(), t.Lexeme)
		default:
			fmt.Fprintf(w, "%s %s null\n", t.Kind, t.Lexeme)
		}
	}
}
