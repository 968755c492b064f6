/*
File    : golox/eval/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/value"
)

// VisitExprStmt evaluates Expr and discards the result.
func (it *Interpreter) VisitExprStmt(n *ast.ExprStmt) any {
	it.EvalExpr(n.Expr)
	return nil
}

// VisitPrintStmt evaluates Expr and writes its printed form.
func (it *Interpreter) VisitPrintStmt(n *ast.PrintStmt) any {
	it.print(it.EvalExpr(n.Expr))
	return nil
}

// VisitVarDecl evaluates Init (defaulting to Nil) and inserts the binding
// into the current scope - spec.md §4.4's `insert` semantics, so
// redeclaring a name in the same scope overwrites rather than shadows.
func (it *Interpreter) VisitVarDecl(n *ast.VarDecl) any {
	var v value.Value = value.NilValue
	if n.Init != nil {
		v = it.EvalExpr(n.Init)
	}
	it.Chain.Current.Insert(n.Name.Lexeme, v)
	return nil
}

// VisitFunDecl builds a Function capturing the current scope and binds it
// to Name - spec.md §4.5's function declaration rule.
func (it *Interpreter) VisitFunDecl(n *ast.FunDecl) any {
	fn := &object.Function{
		Name:     n.Name.Lexeme,
		Params:   n.Params,
		Body:     n.Body,
		Captured: it.Chain.Current.Acquire(),
	}
	it.Chain.Current.Insert(n.Name.Lexeme, fn)
	return nil
}

// VisitClassDecl builds a Class from its methods (each becoming a Function
// closing over the class declaration's own scope) and binds it to Name.
func (it *Interpreter) VisitClassDecl(n *ast.ClassDecl) any {
	cls := &object.Class{Name: n.Name.Lexeme}
	for _, m := range n.Methods {
		fn := &object.Function{
			Name:     m.Name.Lexeme,
			Params:   m.Params,
			Body:     m.Body,
			Captured: it.Chain.Current.Acquire(),
		}
		cls.Add(m.Name.Lexeme, fn)
	}
	it.Chain.Current.Insert(n.Name.Lexeme, cls)
	return nil
}

// VisitBlock pushes a fresh scope, executes Statements in it, and pops the
// scope on exit - unwinding early once a Return statement has set the
// pending return.
func (it *Interpreter) VisitBlock(n *ast.Block) any {
	it.Chain.Push()
	defer it.Chain.Pop()
	for _, s := range n.Statements {
		it.execStmt(s)
		if it.ret.shouldReturn {
			return nil
		}
	}
	return nil
}

// VisitConditional runs the first branch whose condition is true (or the
// trailing condition-less else branch), per spec.md §4.5's non-fatal
// non-Bool-condition handling: a branch whose condition fails to convert
// reports an error and is treated as false, letting evaluation fall
// through to the next branch rather than aborting the whole statement.
func (it *Interpreter) VisitConditional(n *ast.Conditional) any {
	for _, br := range n.Branches {
		if br.Cond == nil {
			it.execStmt(br.Body)
			return nil
		}
		cond := it.EvalExpr(br.Cond)
		b, ok := value.ConvertToBool(cond)
		if !ok {
			it.diag.RuntimeError(n.Keyword.Line, n.Keyword.Lexeme, "condition not convertible to boolean")
			continue
		}
		if b.Val {
			it.execStmt(br.Body)
			return nil
		}
	}
	return nil
}

// VisitWhile loops while Cond converts to true. spec.md §7 singles this
// case out as the one FATAL runtime error: a condition that cannot convert
// to Bool aborts the entire run rather than just this statement.
func (it *Interpreter) VisitWhile(n *ast.While) any {
	for {
		cond := it.EvalExpr(n.Cond)
		b, ok := value.ConvertToBool(cond)
		if !ok {
			it.fatal(n.Keyword.Line, n.Keyword.Lexeme, "condition not convertible to boolean")
		}
		if !b.Val {
			return nil
		}
		it.execStmt(n.Body)
		if it.ret.shouldReturn {
			return nil
		}
	}
}

// VisitReturn evaluates Expr (defaulting to Nil) and, when the pending
// return is armed (inside a function body), stores the value and sets
// shouldReturn, which unwinds through any enclosing Block/While up to the
// Call that invoked the current function body. Outside a function it
// reports a runtime error instead.
func (it *Interpreter) VisitReturn(n *ast.Return) any {
	var v value.Value = value.NilValue
	if n.Expr != nil {
		v = it.EvalExpr(n.Expr)
	}
	if !it.ret.armed {
		it.diag.RuntimeError(n.Keyword.Line, n.Keyword.Lexeme, "return outside function")
		return nil
	}
	it.ret.value = v
	it.ret.shouldReturn = true
	return nil
}
