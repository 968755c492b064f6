/*
File    : golox/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// expression parses the lowest-precedence rule: assignment.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: parse the left side at the next
// precedence level, and if '=' follows, reinterpret that left side as an
// assignment target (spec.md §4.2: identifier -> Assignment, Get ->
// Set, anything else -> syntax error).
func (p *Parser) assignment() ast.Expr {
	left := p.or()

	if !p.check(token.EQUAL) {
		return left
	}
	eq := p.advance()
	value := p.assignment()

	switch target := left.(type) {
	case *ast.Literal:
		if target.Token.Kind == token.IDENTIFIER {
			return p.arena.NewAssignment(ast.Assignment{Name: target.Token, Value: value})
		}
	case *ast.Get:
		return p.arena.NewSet(ast.Set{Object: target.Object, Name: target.Name, Value: value})
	}
	p.errorAt(eq, "invalid assignment target")
	return left
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.checkKeyword(token.OR) {
		op := p.advance()
		right := p.and()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.checkKeyword(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchKind(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.toks[p.pos-1]
		right := p.comparison()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchKind(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.toks[p.pos-1]
		right := p.term()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchKind(token.PLUS, token.MINUS) {
		op := p.toks[p.pos-1]
		right := p.factor()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchKind(token.STAR, token.SLASH) {
		op := p.toks[p.pos-1]
		right := p.unary()
		expr = p.arena.NewBinary(ast.Binary{Left: expr, Op: op, Right: right})
	}
	return expr
}

// unary is right-associative: `!!x` parses as `!(!x)`.
func (p *Parser) unary() ast.Expr {
	if p.matchKind(token.BANG, token.MINUS) {
		op := p.toks[p.pos-1]
		right := p.unary()
		return p.arena.NewUnary(ast.Unary{Op: op, Right: right})
	}
	return p.call()
}

// call parses a primary followed by any number of `(args)` and `.name`
// suffixes - spec.md §4.2's call and property-access rules.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(token.LEFT_PAREN):
			p.advance()
			expr = p.finishCall(expr)
		case p.check(token.DOT):
			p.advance()
			name := p.expect(token.IDENTIFIER, "expect property name after '.'")
			expr = p.arena.NewGet(ast.Get{Object: expr, Name: name})
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.fail("can't have more than 127 arguments")
			}
			args = append(args, p.expression())
			if !p.matchKind(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RIGHT_PAREN, "expect ')' after arguments")
	return p.arena.NewCall(ast.Call{Callee: callee, Paren: paren, Args: args})
}

// primary parses a literal, a parenthesized expression, or an anonymous
// function. A bare binary operator token reaching here means the caller's
// precedence chain found no left operand - spec.md §4.2's "missing left
// operand" diagnostic.
func (p *Parser) primary() ast.Expr {
	switch {
	case p.matchKeyword(token.FALSE, token.TRUE, token.NIL, token.THIS):
		return p.arena.NewLiteral(ast.Literal{Token: p.toks[p.pos-1]})
	case p.check(token.NUMBER), p.check(token.STRING), p.check(token.IDENTIFIER):
		return p.arena.NewLiteral(ast.Literal{Token: p.advance()})
	case p.check(token.LEFT_PAREN):
		paren := p.advance()
		expr := p.expression()
		p.expect(token.RIGHT_PAREN, "expect ')' after expression")
		return p.arena.NewGroup(ast.Group{Paren: paren, Expr: expr})
	case p.checkKeyword(token.FUN):
		return p.anonFunction()
	case p.check(token.PLUS), p.check(token.MINUS), p.check(token.STAR), p.check(token.SLASH),
		p.check(token.BANG_EQUAL), p.check(token.EQUAL_EQUAL), p.check(token.GREATER), p.check(token.LESS),
		p.check(token.GREATER_EQUAL), p.check(token.LESS_EQUAL):
		p.fail("missing left operand")
		return nil
	default:
		p.fail("expect expression")
		return nil
	}
}

// anonFunction parses `fun (params) { body }` in expression position.
func (p *Parser) anonFunction() ast.Expr {
	kw := p.advance() // `fun`
	params, body := p.functionTail("function")
	return p.arena.NewAnonFunction(ast.AnonFunction{FunKeyword: kw, Params: params, Body: body})
}
