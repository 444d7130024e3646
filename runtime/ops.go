/*
File    : masala/runtime/ops.go
Package : runtime
*/

package runtime

import "strings"

// Equal implements `==`/`!=` deep-value equality: two values are equal
// only if they share the same concrete variant, and within a variant
// compare their scalar payload. Unit equals only Unit. Function values
// are never equal to anything, including themselves, since Masala has
// no use for comparing closures.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	default:
		return false
	}
}

// Stringify renders a value for concatenation into Print output. It is
// identical to Inspect for every current variant, kept as a distinct
// entry point because Print's join rule (space-separated arguments) is
// a property of the call site, not of any individual value.
func Stringify(v Value) string {
	return v.Inspect()
}

// JoinPrintArgs renders the stringified, space-joined line that
// `ek baat bataun:` writes for a given argument list.
func JoinPrintArgs(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Stringify(v)
	}
	return strings.Join(parts, " ")
}
