package decnum

import "github.com/zeebo/errs"

// Error classes returned by this package and by [decnum/math].
// Callers distinguish failure categories with [errs.Class.Has]:
//
//	_, err := d.Quo(e)
//	if decnum.ErrDivisionByZero.Has(err) {
//		// handle
//	}
var (
	// ErrParse is returned when a string is not a well-formed decimal literal.
	ErrParse = errs.Class("parse error")

	// ErrBadInit is returned when a constructor is given a negative scale.
	ErrBadInit = errs.Class("bad init")

	// ErrMathDomain is returned for arguments outside a function's domain:
	// the square root of a negative number, the logarithm of a non-positive
	// number, arcsine or arccosine outside [-1, 1], and atan2(0, 0).
	ErrMathDomain = errs.Class("math domain error")

	// ErrDivisionByZero is returned when a divisor has a zero mantissa and
	// by the tangent where the cosine rounds to zero.
	ErrDivisionByZero = errs.Class("division by zero")
)
