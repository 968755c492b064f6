/*
File    : golox/value/convert.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strconv"

// The conversion table below is deliberately tiny and keyed on (from, to)
// pairs, mirroring original_source/src/types/evaluation.c's
// convertion_table: Double<->Bool in both directions, Nil->Bool. Any pair
// not in the table is "not convertible" and ConvertToBool/ConvertToDouble
// return ok=false.

// ConvertToBool converts v to Bool per spec.md §4.3.
//
// IMPORTANT - the Double->Bool rule is INVERTED from customary practice:
// the source sets `bvalue = (val == 0.0)`, i.e. zero converts to true and
// every nonzero value (including negatives) converts to false. This is
// preserved verbatim per spec.md's Open Question #1, confirmed against
// original_source/src/types/evaluation.c's DOUBLE_TO_BOOL_fn. Do not "fix"
// this without updating the test suite and spec.md together.
func ConvertToBool(v Value) (Bool, bool) {
	switch x := v.(type) {
	case Bool:
		return x, true
	case Double:
		return Bool{Val: x.Val == 0.0}, true
	case Nil:
		return Bool{Val: false}, true
	default:
		return Bool{}, false
	}
}

// ConvertToDouble converts v to Double per spec.md §4.3: true->1.0,
// false->0.0. No other variant converts to Double.
func ConvertToDouble(v Value) (Double, bool) {
	switch x := v.(type) {
	case Double:
		return x, true
	case Bool:
		if x.Val {
			return Double{Val: 1.0}, true
		}
		return Double{Val: 0.0}, true
	default:
		return Double{}, false
	}
}

// ParseDouble reconstructs the float64 value of a lexer NumberPayload:
// whole + decimal / 10^len(decimal). Trailing zeros were already stripped
// from decimal by the lexer, so e.g. "3.140" arrives as whole="3",
// decimal="14" and reconstructs to 3.14 - not bit-identical to every IEEE
// double a user could type, which is a known, accepted limitation (see
// spec.md §9's "Number representation" design note).
func ParseDouble(whole, decimal string) float64 {
	w, _ := strconv.ParseFloat(whole, 64)
	if decimal == "" {
		return w
	}
	d, _ := strconv.ParseFloat(decimal, 64)
	scale := 1.0
	for i := 0; i < len(decimal); i++ {
		scale *= 10
	}
	return w + d/scale
}
