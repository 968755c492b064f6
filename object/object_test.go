/*
File    : golox/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

func TestClass_AddLastDeclarationWins(t *testing.T) {
	c := &Class{Name: "Counter"}
	first := &Function{Name: "speak"}
	second := &Function{Name: "speak"}
	c.Add("speak", first)
	c.Add("speak", second)

	got, ok := c.FindMethod("speak")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Len(t, c.Methods, 1)
}

func TestInstance_GetPrefersFieldsOverMethods(t *testing.T) {
	c := &Class{Name: "Counter"}
	c.Add("speak", &Function{Name: "speak"})
	inst := NewInstance(c)
	inst.Set("speak", value.Double{Val: 42})

	got, ok := inst.Get("speak", func(parent *environment.Scope) *environment.Scope { return &environment.Scope{Upper: parent} })
	require.True(t, ok)
	assert.Equal(t, value.Double{Val: 42}, got)
}

func TestInstance_GetBindsMethodWithThis(t *testing.T) {
	c := &Class{Name: "Counter"}
	c.Add("speak", &Function{Name: "speak", Captured: &environment.Scope{}})
	inst := NewInstance(c)

	got, ok := inst.Get("speak", func(parent *environment.Scope) *environment.Scope { return &environment.Scope{Upper: parent} })
	require.True(t, ok)
	fn, ok := got.(*Function)
	require.True(t, ok)

	this, ok := fn.Captured.Lookup("this")
	require.True(t, ok)
	assert.Same(t, inst, this)
}

func TestInstance_SetUpdatesInPlace(t *testing.T) {
	inst := NewInstance(&Class{Name: "Point"})
	inst.Set("x", value.Double{Val: 1})
	inst.Set("x", value.Double{Val: 2})

	assert.Len(t, inst.fields, 1)
	got, ok := inst.Get("x", nil)
	require.True(t, ok)
	assert.Equal(t, value.Double{Val: 2}, got)
}

func TestFunction_SignatureAndString(t *testing.T) {
	fn := &Function{
		Name:     "add",
		Params:   []token.Token{{Lexeme: "a"}, {Lexeme: "b"}},
		Captured: &environment.Scope{ID: 3},
	}
	assert.Equal(t, "Function[3](a, b)", fn.String())
	assert.Equal(t, "<func[add(a, b)]>", fn.Signature())
}

func TestClass_String(t *testing.T) {
	c := &Class{Name: "Counter"}
	assert.Equal(t, "Class: Counter", c.String())
}

func TestInstance_String(t *testing.T) {
	inst := NewInstance(&Class{Name: "Counter"})
	assert.Equal(t, "Instance of Counter", inst.String())
}
