/*
File    : golox/eval/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

type noopDiag struct{ errs []string }

func (d *noopDiag) LexError(line int, message string)             { d.errs = append(d.errs, message) }
func (d *noopDiag) SyntaxError(line int, lexeme, message string)  { d.errs = append(d.errs, message) }
func (d *noopDiag) RuntimeError(line int, lexeme, message string) { d.errs = append(d.errs, message) }

func run(t *testing.T, src string) (string, *noopDiag, int) {
	t.Helper()
	diag := &noopDiag{}
	toks := lexer.New(src, diag).Tokens()
	p := parser.New(toks, diag)
	stmts := p.Parse()
	hadErr, _ := p.HadError()
	require.False(t, hadErr, "unexpected parse errors: %v", diag.errs)

	it := New(diag)
	var buf bytes.Buffer
	it.SetWriter(&buf)
	code := it.Run(stmts)
	return buf.String(), diag, code
}

func TestInterpreter_ArithmeticAndPrint(t *testing.T) {
	out, diag, code := run(t, `print 1 + 2 * 3;`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Double: 7.000000\n", out)
}

func TestInterpreter_GlobalsAndMutation(t *testing.T) {
	out, diag, _ := run(t, `
		var x = 1;
		x = x + 1;
		print x;
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Double: 2.000000\n", out)
}

func TestInterpreter_BlockScopingShadowsOuter(t *testing.T) {
	out, diag, _ := run(t, `
		var x = "outer";
		{
			var x = "inner";
			print x;
		}
		print x;
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "String: inner\nString: outer\n", out)
}

func TestInterpreter_ClosureCapturesIndependently(t *testing.T) {
	out, diag, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun inc() {
				count = count + 1;
				print count;
			}
			return inc;
		}
		var a = makeCounter();
		var b = makeCounter();
		a();
		a();
		b();
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Double: 1.000000\nDouble: 2.000000\nDouble: 1.000000\n", out)
}

func TestInterpreter_ClassMethodBindingAndFields(t *testing.T) {
	out, diag, _ := run(t, `
		class Counter {
			speak() {
				print this.count;
			}
		}
		var c = Counter();
		c.count = 5;
		c.speak();
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Double: 5.000000\n", out)
}

func TestInterpreter_ForLoopDesugaring(t *testing.T) {
	out, diag, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Double: 0.000000\nDouble: 1.000000\nDouble: 2.000000\n", out)
}

func TestInterpreter_ReturnUnwindsOutOfNestedBlock(t *testing.T) {
	out, diag, _ := run(t, `
		fun f() {
			if (true) {
				{
					return 42;
				}
			}
			print "unreachable";
		}
		print f();
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Double: 42.000000\n", out)
}

func TestInterpreter_DoubleNegationOfBoolIsIdentity(t *testing.T) {
	out, diag, _ := run(t, `
		var x = true;
		print !!x == x;
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Boolean: true\n", out)
}

func TestInterpreter_AndOrShortCircuit(t *testing.T) {
	out, diag, _ := run(t, `
		fun sideEffect() {
			print "called";
			return true;
		}
		var x = false and sideEffect();
		var y = true or sideEffect();
		print x;
		print y;
	`)
	assert.Empty(t, diag.errs)
	assert.Equal(t, "Boolean: false\nBoolean: true\n", out)
}

func TestInterpreter_NonBoolWhileConditionIsFatal(t *testing.T) {
	out, diag, code := run(t, `
		while ("x") {
			print "loop";
		}
	`)
	assert.Equal(t, "", out)
	require.NotEmpty(t, diag.errs)
	assert.Equal(t, 70, code)
}

func TestInterpreter_UndefinedIdentifierIsNonFatal(t *testing.T) {
	out, diag, code := run(t, `
		print nope;
		print "still runs";
	`)
	require.NotEmpty(t, diag.errs)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Error\nString: still runs\n", out)
}

func TestInterpreter_AssignToUndeclaredIsNonFatal(t *testing.T) {
	_, diag, code := run(t, `x = 1;`)
	require.NotEmpty(t, diag.errs)
	assert.Equal(t, 0, code)
}

func TestInterpreter_ArityMismatchIsNonFatal(t *testing.T) {
	out, diag, code := run(t, `
		fun f(a, b) { return a + b; }
		print f(1);
	`)
	require.NotEmpty(t, diag.errs)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Error\n", out)
}
