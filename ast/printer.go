/*
File    : golox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a visitor that renders a statement list as an indented tree,
// one line per node such as "Binary (+)" or "VarDecl (x)" - the same shape as the teacher's
// PrintingVisitor in print_visitor.go, generalized from its four node
// kinds to the full Expr/Stmt family above. The `parse` CLI command uses
// this to pretty-print a parsed program.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// NewPrinter creates an empty Printer.
func NewPrinter() *Printer { return &Printer{} }

// String returns everything written to the printer so far.
func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) line(format string, a ...any) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, format, a...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

// PrintProgram renders an entire statement list.
func (p *Printer) PrintProgram(stmts []Stmt) string {
	p.line("Program")
	p.nested(func() {
		for _, s := range stmts {
			AcceptStmt(s, p)
		}
	})
	return p.String()
}

// --- ExprVisitor -------------------------------------------------------

func (p *Printer) VisitLiteral(n *Literal) any {
	p.line("Literal (%s)", n.Token.Lexeme)
	return nil
}

func (p *Printer) VisitGroup(n *Group) any {
	p.line("Group")
	p.nested(func() { Accept(n.Expr, p) })
	return nil
}

func (p *Printer) VisitUnary(n *Unary) any {
	p.line("Unary (%s)", n.Op.Lexeme)
	p.nested(func() { Accept(n.Right, p) })
	return nil
}

func (p *Printer) VisitBinary(n *Binary) any {
	p.line("Binary (%s)", n.Op.Lexeme)
	p.nested(func() {
		Accept(n.Left, p)
		Accept(n.Right, p)
	})
	return nil
}

func (p *Printer) VisitCall(n *Call) any {
	p.line("Call (%d args)", len(n.Args))
	p.nested(func() {
		Accept(n.Callee, p)
		for _, arg := range n.Args {
			Accept(arg, p)
		}
	})
	return nil
}

func (p *Printer) VisitGet(n *Get) any {
	p.line("Get (.%s)", n.Name.Lexeme)
	p.nested(func() { Accept(n.Object, p) })
	return nil
}

func (p *Printer) VisitSet(n *Set) any {
	p.line("Set (.%s)", n.Name.Lexeme)
	p.nested(func() {
		Accept(n.Object, p)
		Accept(n.Value, p)
	})
	return nil
}

func (p *Printer) VisitAssignment(n *Assignment) any {
	p.line("Assignment (%s)", n.Name.Lexeme)
	p.nested(func() { Accept(n.Value, p) })
	return nil
}

func (p *Printer) VisitAnonFunction(n *AnonFunction) any {
	p.line("AnonFunction (%d params)", len(n.Params))
	p.nested(func() { p.VisitBlock(n.Body) })
	return nil
}

func (p *Printer) VisitStatic(n *Static) any {
	p.line("Static (%v)", n.Val)
	return nil
}

// --- StmtVisitor ---------------------------------------------------------

func (p *Printer) VisitExprStmt(n *ExprStmt) any {
	p.line("ExprStmt")
	p.nested(func() { Accept(n.Expr, p) })
	return nil
}

func (p *Printer) VisitPrintStmt(n *PrintStmt) any {
	p.line("PrintStmt")
	p.nested(func() { Accept(n.Expr, p) })
	return nil
}

func (p *Printer) VisitVarDecl(n *VarDecl) any {
	p.line("VarDecl (%s)", n.Name.Lexeme)
	p.nested(func() { Accept(n.Init, p) })
	return nil
}

func (p *Printer) VisitFunDecl(n *FunDecl) any {
	p.line("FunDecl (%s, %d params)", n.Name.Lexeme, len(n.Params))
	p.nested(func() { p.VisitBlock(n.Body) })
	return nil
}

func (p *Printer) VisitClassDecl(n *ClassDecl) any {
	p.line("ClassDecl (%s, %d methods)", n.Name.Lexeme, len(n.Methods))
	p.nested(func() {
		for _, m := range n.Methods {
			p.VisitFunDecl(m)
		}
	})
	return nil
}

func (p *Printer) VisitBlock(n *Block) any {
	p.line("Block")
	p.nested(func() {
		for _, s := range n.Statements {
			AcceptStmt(s, p)
		}
	})
	return nil
}

func (p *Printer) VisitConditional(n *Conditional) any {
	p.line("Conditional (%d branches)", len(n.Branches))
	p.nested(func() {
		for _, b := range n.Branches {
			if b.Cond != nil {
				p.line("Branch")
				p.nested(func() {
					Accept(b.Cond, p)
					AcceptStmt(b.Body, p)
				})
			} else {
				p.line("Else")
				p.nested(func() { AcceptStmt(b.Body, p) })
			}
		}
	})
	return nil
}

func (p *Printer) VisitWhile(n *While) any {
	p.line("While")
	p.nested(func() {
		Accept(n.Cond, p)
		AcceptStmt(n.Body, p)
	})
	return nil
}

func (p *Printer) VisitReturn(n *Return) any {
	p.line("Return")
	p.nested(func() { Accept(n.Expr, p) })
	return nil
}
