// Package userfn implements the predicate functions a schema's
// user-function calls may invoke, plus the Fn type and registration map
// the matcher consumes.
package userfn

import (
	"encoding/binary"

	"github.com/ndnlvs/lvs/pkg/model"
)

// Fn evaluates a user function call against the component under test and
// its arguments. Arguments that were unbound references resolve to a
// nil/empty component rather than aborting the call.
type Fn func(value model.Component, args []model.Component) bool

// Builtin returns the standard predicate library every checker is
// expected to register, keyed by the function name a schema references.
func Builtin() map[string]Fn {
	return map[string]Fn{
		"equal":               Equal,
		"isNumber":            IsNumber,
		"inRange":             InRange,
		"keyLocatorAfterData": KeyLocatorAfterData,
	}
}

// Equal reports whether value equals its single argument byte-for-byte.
func Equal(value model.Component, args []model.Component) bool {
	if len(args) != 1 {
		return false
	}
	return string(value) == string(args[0])
}

// IsNumber reports whether value decodes as a big-endian natural number of
// wire-legal width (1, 2, 4 or 8 bytes).
func IsNumber(value model.Component, args []model.Component) bool {
	_, ok := asNatural(value)
	return ok
}

// InRange reports whether value decodes as a natural number n with
// low <= n <= high, where low and high are themselves big-endian natural
// numbers passed as the two arguments.
func InRange(value model.Component, args []model.Component) bool {
	if len(args) != 2 {
		return false
	}
	n, ok := asNatural(value)
	if !ok {
		return false
	}
	low, ok := asNatural(args[0])
	if !ok {
		return false
	}
	high, ok := asNatural(args[1])
	if !ok {
		return false
	}
	return n >= low && n <= high
}

// KeyLocatorAfterData reports whether value, interpreted as a version or
// sequence marker, is strictly greater than its single argument -- the
// convention schemas use to require that a key was issued after the data
// it signs.
func KeyLocatorAfterData(value model.Component, args []model.Component) bool {
	if len(args) != 1 {
		return false
	}
	n, ok := asNatural(value)
	if !ok {
		return false
	}
	ref, ok := asNatural(args[0])
	if !ok {
		return false
	}
	return n > ref
}

func asNatural(c model.Component) (uint64, bool) {
	switch len(c) {
	case 1:
		return uint64(c[0]), true
	case 2:
		return uint64(binary.BigEndian.Uint16(c)), true
	case 4:
		return uint64(binary.BigEndian.Uint32(c)), true
	case 8:
		return binary.BigEndian.Uint64(c), true
	default:
		return 0, false
	}
}
