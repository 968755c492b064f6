/*
File    : golox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical scope chain described in
// spec.md §4.4: a singly-linked chain of scopes, each an ordered list of
// (name, value) bindings, with push/pop/swap/restore operations and a
// logical reference count that tracks closure capture.
//
// This generalizes the teacher's scope.Scope (a map-based chain with
// Bind/Assign/LookUp) into the ordered, ref-counted shape spec.md demands:
// ordered bindings (so "insert into an existing name updates in place,
// size unchanged" is observable), an ID per scope for --report-scopes
// diagnostics, and an explicit swap/restore pair for temporarily entering a
// captured closure scope during a call.
//
// The refs counter is a DIAGNOSTIC aid, not a memory-safety mechanism: Go's
// garbage collector is what actually keeps a captured scope alive after its
// defining block exits (every Scope still holds a plain Go pointer to its
// Upper, and a captured Scope is kept alive by whatever Function holds it).
// refs exists so tests and --report-scopes tracing can assert the
// push/pop/swap/restore balance spec.md §8 invariant 3 describes.
package environment

import "github.com/akashmaji946/golox/value"

type binding struct {
	Name string
	Val  value.Value
}

// Scope is one node in the chain. Upper is nil only for the global scope.
type Scope struct {
	ID       int
	Upper    *Scope
	bindings []binding
	refs     int
}

// Acquire records a new holder of s (the evaluator's `current`, a
// Function's capture, or a `sided` stack entry) and returns s, so it reads
// naturally at the call site: `fn.Captured = chain.Current.Acquire()`.
func (s *Scope) Acquire() *Scope {
	if s != nil {
		s.refs++
	}
	return s
}

// Release records that one holder of s has let go. It never deallocates
// anything itself (the GC does that once the last Go reference is gone);
// it only keeps the diagnostic refs counter honest.
func (s *Scope) Release() {
	if s != nil {
		s.refs--
	}
}

// Refs returns the current diagnostic reference count, for tests.
func (s *Scope) Refs() int {
	if s == nil {
		return 0
	}
	return s.refs
}

// Insert binds name to val in this scope only. If name already exists in
// this scope, the existing cell is overwritten in place (size unchanged);
// otherwise a new binding is appended. This is spec.md §4.4's `insert`,
// used for `var`, `fun`, and `class` declarations.
func (s *Scope) Insert(name string, val value.Value) {
	for i := range s.bindings {
		if s.bindings[i].Name == name {
			s.bindings[i].Val = val
			return
		}
	}
	s.bindings = append(s.bindings, binding{Name: name, Val: val})
}

// Replace walks from s up the chain looking for name, and overwrites it in
// the scope where it is defined. It reports false without creating a
// binding if name is undeclared anywhere in the chain - this is how plain
// assignment (`x = v;`, without `var`) distinguishes a declared identifier
// from an undeclared one (spec.md §4.5).
func (s *Scope) Replace(name string, val value.Value) bool {
	for cur := s; cur != nil; cur = cur.Upper {
		for i := range cur.bindings {
			if cur.bindings[i].Name == name {
				cur.bindings[i].Val = val
				return true
			}
		}
	}
	return false
}

// Lookup walks from s up the chain and returns the first binding found.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.Upper {
		for i := range cur.bindings {
			if cur.bindings[i].Name == name {
				return cur.bindings[i].Val, true
			}
		}
	}
	return nil, false
}

// Chain is the evaluator's live scope state: the innermost active scope
// (Current) and a stack of scopes suspended by Swap (Sided), used to
// temporarily enter a captured closure scope during a function call.
type Chain struct {
	Current *Scope
	Sided   []*Scope
	nextID  int

	// Trace, if non-nil, is called after every push/pop/swap/restore with
	// the operation name and the scope ID involved - the hook
	// --report-scopes wires to diagnostics.Reporter.
	Trace func(op string, scopeID int)
}

// NewChain creates a Chain rooted at a single global scope (ID 0, no
// parent), the scope every top-level declaration lands in.
func NewChain() *Chain {
	root := &Scope{ID: 0}
	root.Acquire()
	return &Chain{Current: root, nextID: 1}
}

func (c *Chain) trace(op string, id int) {
	if c.Trace != nil {
		c.Trace(op, id)
	}
}

// NewDetached mints a fresh, uniquely-ID'd scope parented on parent without
// touching Current or Sided. Used for the method-binding scope spec.md
// §4.5's Get rule describes: "a freshly-created scope containing just
// this → instance, layered on top of the method's original captured
// scope" is not part of the active call chain until (and unless) the
// bound method is later called, so it must not disturb Push/Pop bookkeeping.
func (c *Chain) NewDetached(parent *Scope) *Scope {
	s := &Scope{ID: c.nextID, Upper: parent}
	c.nextID++
	s.Acquire()
	return s
}

// Push creates a new scope whose parent is Current and makes it Current.
// Used on block entry and function call.
func (c *Chain) Push() *Scope {
	s := &Scope{ID: c.nextID, Upper: c.Current}
	c.nextID++
	s.Acquire()
	c.Current = s
	c.trace("push", s.ID)
	return s
}

// Pop releases Current and restores its parent as the new Current. Used on
// block exit and function return.
func (c *Chain) Pop() {
	old := c.Current
	c.Current = old.Upper
	old.Release()
	c.trace("pop", old.ID)
}

// Swap pushes Current onto Sided and installs captured as the new Current.
// Used when entering a function call: captured is the function's closure
// scope, acquired (not moved) for the duration of the call.
func (c *Chain) Swap(captured *Scope) {
	captured.Acquire()
	c.Sided = append(c.Sided, c.Current)
	c.Current = captured
	c.trace("swap", captured.ID)
}

// Restore pops Sided back into Current, releasing the swapped-in scope.
// Used when a function call returns, to resume the caller's scope chain.
func (c *Chain) Restore() {
	n := len(c.Sided)
	leaving := c.Current
	c.Current = c.Sided[n-1]
	c.Sided = c.Sided[:n-1]
	leaving.Release()
	c.trace("restore", c.Current.ID)
}
