/*
File    : golox/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/object"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// VisitLiteral resolves an identifier via lookup, or produces the constant
// named by a string/number/keyword token - spec.md §4.5's Literal rule.
func (it *Interpreter) VisitLiteral(n *ast.Literal) any {
	t := n.Token
	switch t.Kind {
	case token.IDENTIFIER:
		v, ok := it.Chain.Current.Lookup(t.Lexeme)
		if !ok {
			return it.runtimeErr(t.Line, t.Lexeme, "undefined identifier")
		}
		return v
	case token.STRING:
		return value.Str{Val: t.Str}
	case token.NUMBER:
		return value.Double{Val: value.ParseDouble(t.Num.Whole, t.Num.Decimal)}
	case token.KEYWORD:
		switch t.Keyword {
		case token.TRUE:
			return value.Bool{Val: true}
		case token.FALSE:
			return value.Bool{Val: false}
		case token.NIL:
			return value.NilValue
		case token.THIS:
			v, ok := it.Chain.Current.Lookup("this")
			if !ok {
				return it.runtimeErr(t.Line, t.Lexeme, "'this' outside a method")
			}
			return v
		}
	}
	return it.runtimeErr(t.Line, t.Lexeme, "not a literal")
}

// VisitGroup evaluates the parenthesized child expression.
func (it *Interpreter) VisitGroup(n *ast.Group) any {
	return it.EvalExpr(n.Expr)
}

// VisitUnary implements prefix `-` (Double negation) and `!` (Bool
// negation), each driven through the scalar conversion table.
func (it *Interpreter) VisitUnary(n *ast.Unary) any {
	right := it.EvalExpr(n.Right)
	switch n.Op.Kind {
	case token.MINUS:
		d, ok := value.ConvertToDouble(right)
		if !ok {
			return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand must be a number")
		}
		return value.Double{Val: -d.Val}
	case token.BANG:
		b, ok := value.ConvertToBool(right)
		if !ok {
			return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand not convertible to boolean")
		}
		return value.Bool{Val: !b.Val}
	}
	return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "unknown unary operator")
}

// VisitBinary implements arithmetic, comparison, and the short-circuiting
// `and`/`or` operators - spec.md §4.5's Binary rules. and/or carry their
// keyword identity on the operator token rather than a distinct Kind, so
// they are checked first.
func (it *Interpreter) VisitBinary(n *ast.Binary) any {
	if n.Op.IsKeyword(token.AND) {
		return it.evalAnd(n)
	}
	if n.Op.IsKeyword(token.OR) {
		return it.evalOr(n)
	}

	left := it.EvalExpr(n.Left)
	right := it.EvalExpr(n.Right)
	l, lok := value.ConvertToDouble(left)
	r, rok := value.ConvertToDouble(right)
	if !lok || !rok {
		return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operands must be numbers")
	}

	switch n.Op.Kind {
	case token.PLUS:
		return value.Double{Val: l.Val + r.Val}
	case token.MINUS:
		return value.Double{Val: l.Val - r.Val}
	case token.STAR:
		return value.Double{Val: l.Val * r.Val}
	case token.SLASH:
		return value.Double{Val: l.Val / r.Val} // division by 0.0 yields NaN, per spec.md §4.5
	case token.GREATER:
		return value.Bool{Val: l.Val > r.Val}
	case token.GREATER_EQUAL:
		return value.Bool{Val: l.Val >= r.Val}
	case token.LESS:
		return value.Bool{Val: l.Val < r.Val}
	case token.LESS_EQUAL:
		return value.Bool{Val: l.Val <= r.Val}
	case token.EQUAL_EQUAL:
		return value.Bool{Val: l.Val == r.Val}
	case token.BANG_EQUAL:
		return value.Bool{Val: l.Val != r.Val}
	}
	return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "unknown binary operator")
}

func (it *Interpreter) evalAnd(n *ast.Binary) value.Value {
	left := it.EvalExpr(n.Left)
	lb, ok := value.ConvertToBool(left)
	if !ok {
		return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand not convertible to boolean")
	}
	if !lb.Val {
		return lb
	}
	right := it.EvalExpr(n.Right)
	rb, ok := value.ConvertToBool(right)
	if !ok {
		return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand not convertible to boolean")
	}
	return rb
}

func (it *Interpreter) evalOr(n *ast.Binary) value.Value {
	left := it.EvalExpr(n.Left)
	lb, ok := value.ConvertToBool(left)
	if !ok {
		return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand not convertible to boolean")
	}
	if lb.Val {
		return lb
	}
	right := it.EvalExpr(n.Right)
	rb, ok := value.ConvertToBool(right)
	if !ok {
		return it.runtimeErr(n.Op.Line, n.Op.Lexeme, "operand not convertible to boolean")
	}
	return rb
}

// VisitGet resolves obj.name: a field first, then a bound method - spec.md
// §4.5's Get rule. The object must be an Instance.
func (it *Interpreter) VisitGet(n *ast.Get) any {
	objVal := it.EvalExpr(n.Object)
	inst, ok := objVal.(*object.Instance)
	if !ok {
		return it.runtimeErr(n.Name.Line, n.Name.Lexeme, "only instances have properties")
	}
	v, ok := inst.Get(n.Name.Lexeme, it.Chain.NewDetached)
	if !ok {
		return it.runtimeErr(n.Name.Line, n.Name.Lexeme, "undefined property")
	}
	return v
}

// VisitSet assigns obj.name = value - spec.md §4.5's Set rule: overwrite if
// the property exists, otherwise append.
func (it *Interpreter) VisitSet(n *ast.Set) any {
	objVal := it.EvalExpr(n.Object)
	inst, ok := objVal.(*object.Instance)
	if !ok {
		return it.runtimeErr(n.Name.Line, n.Name.Lexeme, "only instances have properties")
	}
	v := it.EvalExpr(n.Value)
	inst.Set(n.Name.Lexeme, v)
	return v
}

// VisitAssignment implements `name = value`: replace requires name to have
// been declared with `var` somewhere up the chain.
func (it *Interpreter) VisitAssignment(n *ast.Assignment) any {
	v := it.EvalExpr(n.Value)
	if !it.Chain.Current.Replace(n.Name.Lexeme, v) {
		return it.runtimeErr(n.Name.Line, n.Name.Lexeme, "assignment to undeclared variable")
	}
	return v
}

// VisitAnonFunction builds a Function value capturing the current scope.
func (it *Interpreter) VisitAnonFunction(n *ast.AnonFunction) any {
	return &object.Function{Params: n.Params, Body: n.Body, Captured: it.Chain.Current.Acquire()}
}

// VisitStatic returns the parser-synthesized embedded value (e.g. the
// implicit `true` condition of a bare `for(;;)`).
func (it *Interpreter) VisitStatic(n *ast.Static) any {
	switch val := n.Val.(type) {
	case bool:
		return value.Bool{Val: val}
	case value.Value:
		return val
	}
	return it.runtimeErr(n.Source.Line, n.Source.Lexeme, "unsupported static value")
}
