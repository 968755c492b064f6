/*
File    : golox/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object holds the three runtime types that can't live in value
// without creating an import cycle: Function, Class, and Instance all need
// to reference environment.Scope (a closure's captured scope, an instance's
// method-binding scope), while environment.Scope needs to hold value.Value
// bindings. Splitting value/environment/object into three layers - the same
// trick the teacher uses across objects/scope/function, there broken via
// the FunctionInterface abstraction in objects/struct.go - avoids the cycle
// without resorting to an interface{} escape hatch.
package object

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// Function is a user-defined function or method: its parameter list, body,
// and the scope it closed over at definition time (spec.md §4.5's closure
// rule). Grounded in the teacher's function.Function, generalized from a
// *parser.BlockStatementNode/*scope.Scope pair to *ast.Block/
// *environment.Scope.
type Function struct {
	Name     string
	Params   []token.Token
	Body     *ast.Block
	Captured *environment.Scope
}

func (*Function) GetKind() value.Kind { return value.FunctionKind }

// String is the print-statement form mandated for Function values:
// "Function[<scope-id>](<params>)", keyed on the closure's captured scope
// rather than the function's name - two closures over different calls to
// the same `fun` print distinctly, the way the teacher's scope-carrying
// Function.ToObject ("<func[name(params)]>", function/function.go) makes a
// function's identity visible, generalized here to also disambiguate
// closures sharing one declaration.
func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	scopeID := -1
	if f.Captured != nil {
		scopeID = f.Captured.ID
	}
	return fmt.Sprintf("Function[%d](%s)", scopeID, strings.Join(names, ", "))
}

// Signature mirrors the teacher's Function.ToObject: "<func[name(a, b)]>",
// used for diagnostics rather than the print statement.
func (f *Function) Signature() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<func[%s(%s)]>", name, strings.Join(names, ", "))
}

// Bind returns a copy of f whose Captured scope is a new child of f's own
// Captured scope with "this" bound to inst - spec.md §4.5's rule that
// fetching a method off an instance produces a new Function value, not the
// same one every instance shares. newScope is supplied by the caller (the
// evaluator owns the Chain and therefore the only valid way to mint scopes).
func (f *Function) Bind(inst *Instance, newScope *environment.Scope) *Function {
	newScope.Insert("this", inst)
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Captured: newScope}
}

// method pairs a name with the Function it resolves to. Class.Methods keeps
// these in declaration order; spec.md §9 Open Question 3 resolves a
// duplicate method name by last-declaration-wins, which Add below
// implements directly (overwrite in place, matching environment.Scope.Insert
// rather than the teacher's Add which rejects duplicates outright).
type method struct {
	Name string
	Fn   *Function
}

// Class is a user-defined class: a name and an ordered table of methods.
// Grounded in the teacher's objects.GoMixStruct, adapted from its
// map[string]FunctionInterface (unordered, duplicate-rejecting) to an
// ordered slice so last-declaration-wins falls out of Add's linear scan
// the same way environment.Scope.Insert updates an existing binding.
type Class struct {
	Name    string
	Methods []method
}

func (*Class) GetKind() value.Kind { return value.ClassKind }

// String is the print-statement form mandated for Class values: "Class:
// <name>", adapted from the teacher's GoMixStruct.ToString ("struct(Name)").
func (c *Class) String() string { return fmt.Sprintf("Class: %s", c.Name) }

// Add installs fn under name, overwriting any earlier method of that name.
func (c *Class) Add(name string, fn *Function) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			c.Methods[i].Fn = fn
			return
		}
	}
	c.Methods = append(c.Methods, method{Name: name, Fn: fn})
}

// FindMethod returns the Function registered under name, if any.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return c.Methods[i].Fn, true
		}
	}
	return nil, false
}

// field pairs a name with its current value; Instance.fields stays ordered
// for the same reason environment.Scope's bindings do (spec.md §4.4's
// "insert updates in place" discipline applies equally to `this.x = v`).
type field struct {
	Name string
	Val  value.Value
}

// Instance is a live object: a reference to the Class that created it and
// its own ordered property table. Grounded in the teacher's
// objects.GoMixObjectInstance, generalized from its unordered
// map[string]GoMixObject to the ordered field list above.
type Instance struct {
	Class  *Class
	fields []field
}

// NewInstance creates a field-less instance of cls.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls}
}

func (*Instance) GetKind() value.Kind { return value.InstanceKind }

// String is the print-statement form mandated for Instance values:
// "Instance of <class-name>", adapted from the teacher's
// GoMixObjectInstance.ToString ("object(Name)").
func (i *Instance) String() string { return fmt.Sprintf("Instance of %s", i.Class.Name) }

// Get resolves name as a field first, then a bound method - spec.md §4.5's
// property lookup order. A method hit calls mint(method.Captured) to build
// the fresh this-scope layered on top of the method's original closure, and
// binds the method to it.
func (i *Instance) Get(name string, mint func(parent *environment.Scope) *environment.Scope) (value.Value, bool) {
	for _, f := range i.fields {
		if f.Name == name {
			return f.Val, true
		}
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i, mint(m.Captured)), true
	}
	return nil, false
}

// Set assigns name on the instance, creating the field if it is new.
func (i *Instance) Set(name string, val value.Value) {
	for idx := range i.fields {
		if i.fields[idx].Name == name {
			i.fields[idx].Val = val
			return
		}
	}
	i.fields = append(i.fields, field{Name: name, Val: val})
}
