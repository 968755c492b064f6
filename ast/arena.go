/*
File    : golox/ast/arena.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

// Arena is the bulk allocator the Parser owns for the lifetime of one
// parse (spec.md §4.2's "Memory discipline"). Every node constructor below
// goes through an Arena so the tree has one obvious owner and one obvious
// release point, matching the C source's arena-per-parse discipline even
// though Go's garbage collector - not Release - is what actually reclaims
// the memory. Release exists to keep that ownership contract visible and
// machine-checkable (a caller that never calls it is a caller that forgot
// the AST is arena-scoped), not because it frees anything itself.
type Arena struct {
	count int
}

// NewArena creates an empty Arena.
func NewArena() *Arena { return &Arena{} }

// Count returns how many nodes this arena has allocated, for diagnostics.
func (a *Arena) Count() int { return a.count }

// Release marks the arena as done. All nodes it allocated are considered
// dead after this call; the caller must not dereference them. It frees
// nothing itself (the Go garbage collector does, see the Arena doc
// comment); it only resets Count to zero.
func (a *Arena) Release() { a.count = 0 }

func (a *Arena) NewLiteral(n Literal) *Literal           { a.count++; v := n; return &v }
func (a *Arena) NewGroup(n Group) *Group                 { a.count++; v := n; return &v }
func (a *Arena) NewUnary(n Unary) *Unary                 { a.count++; v := n; return &v }
func (a *Arena) NewBinary(n Binary) *Binary              { a.count++; v := n; return &v }
func (a *Arena) NewCall(n Call) *Call                    { a.count++; v := n; return &v }
func (a *Arena) NewGet(n Get) *Get                       { a.count++; v := n; return &v }
func (a *Arena) NewSet(n Set) *Set                       { a.count++; v := n; return &v }
func (a *Arena) NewAssignment(n Assignment) *Assignment  { a.count++; v := n; return &v }
func (a *Arena) NewAnonFunction(n AnonFunction) *AnonFunction {
	a.count++
	v := n
	return &v
}
func (a *Arena) NewStatic(n Static) *Static { a.count++; v := n; return &v }

func (a *Arena) NewExprStmt(n ExprStmt) *ExprStmt       { a.count++; v := n; return &v }
func (a *Arena) NewPrintStmt(n PrintStmt) *PrintStmt    { a.count++; v := n; return &v }
func (a *Arena) NewVarDecl(n VarDecl) *VarDecl          { a.count++; v := n; return &v }
func (a *Arena) NewFunDecl(n FunDecl) *FunDecl          { a.count++; v := n; return &v }
func (a *Arena) NewClassDecl(n ClassDecl) *ClassDecl    { a.count++; v := n; return &v }
func (a *Arena) NewBlock(n Block) *Block                { a.count++; v := n; return &v }
func (a *Arena) NewConditional(n Conditional) *Conditional {
	a.count++
	v := n
	return &v
}
func (a *Arena) NewWhile(n While) *While    { a.count++; v := n; return &v }
func (a *Arena) NewReturn(n Return) *Return { a.count++; v := n; return &v }
