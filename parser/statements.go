/*
File    : golox/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// declaration parses one of the declaration-level statements, or falls
// through to statement() - spec.md §4.2's statement grammar, grounded in
// the shape of the teacher's parseStatement (parser_statements.go) which
// similarly dispatches on the leading keyword before trying an expression
// statement.
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.checkKeyword(token.CLASS):
		return p.classDecl()
	case p.checkKeyword(token.FUN):
		return p.funDecl()
	case p.checkKeyword(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	p.advance() // `class`
	name := p.expect(token.IDENTIFIER, "expect class name")
	p.expect(token.LEFT_BRACE, "expect '{' before class body")

	var methods []*ast.FunDecl
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.method())
	}
	p.expect(token.RIGHT_BRACE, "expect '}' after class body")
	return p.arena.NewClassDecl(ast.ClassDecl{Name: name, Methods: methods})
}

// method parses one class method: `name(params) { body }`, no `fun`
// keyword - spec.md §4.2: "each method is a FunDecl without the fun
// keyword."
func (p *Parser) method() *ast.FunDecl {
	name := p.expect(token.IDENTIFIER, "expect method name")
	params, body := p.functionTail("method")
	return p.arena.NewFunDecl(ast.FunDecl{Name: name, Params: params, Body: body})
}

func (p *Parser) funDecl() ast.Stmt {
	kw := p.advance() // `fun`
	name := p.expect(token.IDENTIFIER, "expect function name")
	params, body := p.functionTail("function")
	return p.arena.NewFunDecl(ast.FunDecl{FunKeyword: kw, Name: name, Params: params, Body: body})
}

// functionTail parses `(params) { body }`, shared by top-level functions,
// methods, and anonymous functions.
func (p *Parser) functionTail(kind string) ([]token.Token, *ast.Block) {
	p.expect(token.LEFT_PAREN, "expect '(' after "+kind+" name")
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.fail("can't have more than 127 parameters")
			}
			params = append(params, p.expect(token.IDENTIFIER, "expect parameter name"))
			if !p.matchKind(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RIGHT_PAREN, "expect ')' after parameters")
	p.expect(token.LEFT_BRACE, "expect '{' before "+kind+" body")
	return params, p.block()
}

func (p *Parser) varDecl() ast.Stmt {
	p.advance() // `var`
	name := p.expect(token.IDENTIFIER, "expect variable name")
	var init ast.Expr
	if p.matchKind(token.EQUAL) {
		init = p.expression()
	} else {
		init = p.arena.NewLiteral(ast.Literal{Token: token.Token{Kind: token.KEYWORD, Keyword: token.NIL}})
	}
	p.expect(token.SEMICOLON, "expect ';' after variable declaration")
	return p.arena.NewVarDecl(ast.VarDecl{Name: name, Init: init})
}

// statement parses a non-declaration statement.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.checkKeyword(token.PRINT):
		return p.printStmt()
	case p.checkKeyword(token.IF):
		return p.ifStmt()
	case p.checkKeyword(token.WHILE):
		return p.whileStmt()
	case p.checkKeyword(token.FOR):
		return p.forStmt()
	case p.checkKeyword(token.RETURN):
		return p.returnStmt()
	case p.check(token.LEFT_BRACE):
		p.advance()
		return p.block()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	kw := p.advance() // `print`
	expr := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after value")
	return p.arena.NewPrintStmt(ast.PrintStmt{Keyword: kw, Expr: expr})
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after expression")
	return p.arena.NewExprStmt(ast.ExprStmt{Expr: expr})
}

func (p *Parser) block() *ast.Block {
	left := p.toks[p.pos-1]
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if s := p.declarationRecovered(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RIGHT_BRACE, "expect '}' after block")
	return p.arena.NewBlock(ast.Block{LeftBrace: left, Statements: stmts})
}

func (p *Parser) ifStmt() ast.Stmt {
	kw := p.advance() // `if`
	var branches []ast.Branch
	branches = append(branches, p.ifBranch())

	for p.checkKeyword(token.ELSE) {
		p.advance()
		if p.checkKeyword(token.IF) {
			p.advance()
			branches = append(branches, p.ifBranch())
			continue
		}
		branches = append(branches, ast.Branch{Cond: nil, Body: p.statement()})
		break
	}
	return p.arena.NewConditional(ast.Conditional{Keyword: kw, Branches: branches})
}

func (p *Parser) ifBranch() ast.Branch {
	p.expect(token.LEFT_PAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.expect(token.RIGHT_PAREN, "expect ')' after condition")
	return ast.Branch{Cond: cond, Body: p.statement()}
}

func (p *Parser) whileStmt() ast.Stmt {
	kw := p.advance() // `while`
	p.expect(token.LEFT_PAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.expect(token.RIGHT_PAREN, "expect ')' after condition")
	body := p.statement()
	return p.arena.NewWhile(ast.While{Keyword: kw, Cond: cond, Body: body})
}

// forStmt desugars `for (init; cond; step) body` into
// `{ init; while (cond) { body; step; } }`, per spec.md §4.2. An omitted
// init or step is simply dropped from the desugared block; an omitted cond
// becomes the literal Static(true).
func (p *Parser) forStmt() ast.Stmt {
	forKw := p.advance() // `for`
	p.expect(token.LEFT_PAREN, "expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.matchKind(token.SEMICOLON):
		init = nil
	case p.checkKeyword(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	} else {
		cond = p.arena.NewStatic(ast.Static{Source: forKw, Val: true})
	}
	p.expect(token.SEMICOLON, "expect ';' after loop condition")

	var step ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		step = p.expression()
	}
	p.expect(token.RIGHT_PAREN, "expect ')' after for clauses")

	bodyStmts := []ast.Stmt{p.statement()}
	if step != nil {
		bodyStmts = append(bodyStmts, p.arena.NewExprStmt(ast.ExprStmt{Expr: step}))
	}
	body := ast.Stmt(p.arena.NewBlock(ast.Block{Statements: bodyStmts}))
	loop := ast.Stmt(p.arena.NewWhile(ast.While{Keyword: forKw, Cond: cond, Body: body}))
	if init == nil {
		return loop
	}
	return p.arena.NewBlock(ast.Block{Statements: []ast.Stmt{init, loop}})
}

func (p *Parser) returnStmt() ast.Stmt {
	kw := p.advance() // `return`
	var expr ast.Expr
	if !p.check(token.SEMICOLON) {
		expr = p.expression()
	} else {
		expr = p.arena.NewLiteral(ast.Literal{Token: token.Token{Kind: token.KEYWORD, Keyword: token.NIL}})
	}
	p.expect(token.SEMICOLON, "expect ';' after return value")
	return p.arena.NewReturn(ast.Return{Keyword: kw, Expr: expr})
}
