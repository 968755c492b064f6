/*
File    : golox/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value model: the tagged Value variants
// the evaluator produces and consumes, and the small from/to conversion
// table that governs truthiness and numeric coercion.
//
// Function, Class, and Instance - the reference-counted composite values
// that close over an environment.Scope - are deliberately NOT defined here.
// Putting them in this package would make value depend on environment,
// which itself must depend on value to store bindings; the package split
// mirrors the teacher's own objects/scope/function layering, which uses the
// same trick (a separate function package importing both objects and
// scope) to avoid the identical cycle. See object.Function et al.
package value

import "fmt"

// Kind identifies which Value variant a value is.
type Kind string

const (
	DoubleKind   Kind = "double"
	StringKind   Kind = "string"
	BoolKind     Kind = "bool"
	NilKind      Kind = "nil"
	ErrorKind    Kind = "error"
	FunctionKind Kind = "func"
	ClassKind    Kind = "class"
	InstanceKind Kind = "instance"
)

// Value is implemented by every runtime value variant. GetKind supports
// type dispatch; String renders the `print` output described in spec.md §6.
type Value interface {
	GetKind() Kind
	String() string
}

// Double is the language's only numeric type.
type Double struct{ Val float64 }

func (d Double) GetKind() Kind  { return DoubleKind }
func (d Double) String() string { return fmt.Sprintf("Double: %f", d.Val) }

// Str is the language's string type. A Str constructed from a literal
// shares its backing array with the source buffer; the interpreter's entry
// point owns keeping that buffer alive (spec.md §3 invariant 4).
type Str struct{ Val string }

func (s Str) GetKind() Kind  { return StringKind }
func (s Str) String() string { return fmt.Sprintf("String: %s", s.Val) }

// Bool is a boolean value.
type Bool struct{ Val bool }

func (b Bool) GetKind() Kind  { return BoolKind }
func (b Bool) String() string { return fmt.Sprintf("Boolean: %t", b.Val) }

// Nil is the language's null value. There is exactly one meaningful
// instance; NilValue below is a ready-made zero value for convenience.
type Nil struct{}

func (Nil) GetKind() Kind  { return NilKind }
func (Nil) String() string { return "NIL" }

// NilValue is the canonical Nil value, handed out by evaluator helpers that
// need a Nil without allocating a fresh struct literal every time.
var NilValue = Nil{}

// Error is the sentinel produced when evaluation fails. It is never
// assignable by user code - only the evaluator constructs one, in response
// to a runtime error (spec.md §4.5/§7). Message carries the diagnostic text
// the Error sentinel was raised with; String (the print form) does not
// include it.
type Error struct{ Message string }

func (e Error) GetKind() Kind  { return ErrorKind }
func (e Error) String() string { return "Error" }

// IsError reports whether v is the Error sentinel.
func IsError(v Value) bool {
	_, ok := v.(Error)
	return ok
}

// Truthy reports whether v is Bool{true}. It does NOT perform the
// Double/Nil->Bool coercion described in §4.3 - callers that need "is this
// condition true" semantics should call ConvertToBool first. This keeps
// Truthy a pure, cheap predicate for code that already holds a Bool.
func Truthy(v Value) bool {
	b, ok := v.(Bool)
	return ok && b.Val
}
