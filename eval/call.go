/*
File    : golox/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/value"
)

// VisitCall evaluates the callee and dispatches on its runtime kind -
// spec.md §4.5's Call rule. A Class callee simply constructs a new,
// field-less Instance: cross-referencing original_source/src/interpreter.c
// (only EVAL_TYPE_FUN is ever invoked) and original_source/src/types/
// value.c (value_new_instance takes no constructor arguments) confirms
// there is no init-method dispatch in this language - arguments passed to
// a class call are evaluated for their side effects and then ignored.
func (it *Interpreter) VisitCall(n *ast.Call) any {
	calleeVal := it.EvalExpr(n.Callee)
	switch callee := calleeVal.(type) {
	case *object.Class:
		for _, a := range n.Args {
			it.EvalExpr(a)
		}
		return object.NewInstance(callee)
	case *object.Function:
		return it.callFunction(callee, n)
	default:
		return it.runtimeErr(n.Paren.Line, n.Paren.Lexeme, "can only call functions and classes")
	}
}

// callFunction runs fn's body in a fresh scope layered on its captured
// closure, with Params bound to the evaluated Args. The caller's scope
// chain is swapped out for the duration of the call and restored
// afterward - spec.md §4.5's call-scoping rule, grounded in the teacher's
// Evaluator.callFunction (eval/eval_call.go), which performs the same
// swap/push/pop/restore dance over its own scope.Scope chain.
func (it *Interpreter) callFunction(fn *object.Function, n *ast.Call) value.Value {
	if len(n.Args) != len(fn.Params) {
		return it.runtimeErr(n.Paren.Line, n.Paren.Lexeme,
			fmt.Sprintf("expected %d arguments but got %d", len(fn.Params), len(n.Args)))
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = it.EvalExpr(a)
	}

	it.Chain.Swap(fn.Captured)
	it.Chain.Push()
	for i, p := range fn.Params {
		it.Chain.Current.Insert(p.Lexeme, args[i])
	}

	saved := it.ret
	it.ret = pendingReturn{armed: true}

	for _, s := range fn.Body.Statements {
		it.execStmt(s)
		if it.ret.shouldReturn {
			break
		}
	}

	result := value.Value(value.NilValue)
	if it.ret.shouldReturn {
		result = it.ret.value
	}

	it.ret = saved
	it.Chain.Pop()
	it.Chain.Restore()
	return result
}
