/*
File    : golox/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToBool_DoubleRuleIsInverted(t *testing.T) {
	zero, ok := ConvertToBool(Double{Val: 0.0})
	assert.True(t, ok)
	assert.True(t, zero.Val, "zero must convert to true per the inverted source rule")

	nonzero, ok := ConvertToBool(Double{Val: 7.0})
	assert.True(t, ok)
	assert.False(t, nonzero.Val, "nonzero must convert to false per the inverted source rule")

	negative, ok := ConvertToBool(Double{Val: -3.5})
	assert.True(t, ok)
	assert.False(t, negative.Val, "negative values are nonzero and also convert to false")
}

func TestConvertToBool_NilAndBoolAndUnconvertible(t *testing.T) {
	n, ok := ConvertToBool(Nil{})
	assert.True(t, ok)
	assert.False(t, n.Val)

	b, ok := ConvertToBool(Bool{Val: true})
	assert.True(t, ok)
	assert.True(t, b.Val)

	_, ok = ConvertToBool(Str{Val: "x"})
	assert.False(t, ok)
}

func TestConvertToDouble(t *testing.T) {
	d, ok := ConvertToDouble(Bool{Val: true})
	assert.True(t, ok)
	assert.Equal(t, 1.0, d.Val)

	d, ok = ConvertToDouble(Bool{Val: false})
	assert.True(t, ok)
	assert.Equal(t, 0.0, d.Val)

	_, ok = ConvertToDouble(Str{Val: "x"})
	assert.False(t, ok)
}

func TestParseDouble(t *testing.T) {
	assert.Equal(t, 7.0, ParseDouble("7", ""))
	assert.Equal(t, 3.14, ParseDouble("3", "14"))
	assert.Equal(t, 0.0, ParseDouble("0", ""))
}

func TestPrintFormats(t *testing.T) {
	assert.Equal(t, "Double: 7.000000", Double{Val: 7}.String())
	assert.Equal(t, "String: hi", Str{Val: "hi"}.String())
	assert.Equal(t, "Boolean: true", Bool{Val: true}.String())
	assert.Equal(t, "NIL", Nil{}.String())
	assert.Equal(t, "Error", Error{Message: "boom"}.String())
}
