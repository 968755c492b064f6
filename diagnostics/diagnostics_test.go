/*
File    : golox/diagnostics/diagnostics_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_PlainFormatsLexError(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.LexError(3, "unexpected character")

	assert.Equal(t, `[Syntax] Line 3: "" - unexpected character`+"\n", buf.String())
	assert.Equal(t, 1, r.Count())
}

func TestReporter_PlainFormatsSyntaxStaticRuntime(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.SyntaxError(1, "}", "expect expression")
	r.StaticError(2, "foo", "too many arguments")
	r.RuntimeError(5, "x", "undefined variable")

	want := `[Syntax] Line 1: "}" - expect expression
[Static] Line 2: "foo" - too many arguments
[Runtime] Line 5: "x" - undefined variable
`
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 3, r.Count())
}

func TestReporter_StringLexemeIsNotDoubleQuoted(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.RuntimeError(7, `"hi"`, "only instances have properties")

	assert.Equal(t, `[Runtime] Line 7: "hi" - only instances have properties`+"\n", buf.String())
}
