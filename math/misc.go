// Package math implements constants and transcendental functions over
// decnum decimals: π, e, the exponential, the natural logarithm, the
// trigonometric functions and their inverses.
//
// Every function computes internally with guard digits through the decnum
// *Exact operations and rounds once to the package-wide scale on return,
// so results are accurate in the last retained place. Series evaluation
// stops when the next term is indistinguishable from zero at the working
// scale.
package math

import "github.com/decnum/decnum"

// guardDigits is the extra precision carried by internal computations to
// absorb accumulated rounding error before the final rounding.
const guardDigits = 10

var (
	one   = decnum.MustNew(1, 0)
	tenth = decnum.MustNew(1, 1)
)

// ulpAt returns 10^-scale, the smallest increment at the given scale.
func ulpAt(scale int) decnum.Decimal {
	return decnum.MustNew(1, scale)
}

// quo divides by a divisor known to be non-zero.
func quo(x, y decnum.Decimal, scale int) decnum.Decimal {
	z, err := x.QuoExact(y, scale)
	if err != nil {
		panic(err)
	}
	return z
}

func quoInt64(x decnum.Decimal, n int64, scale int) decnum.Decimal {
	return quo(x, decnum.NewFromInt64(n), scale)
}

func mulInt64(x decnum.Decimal, n int64, scale int) decnum.Decimal {
	return x.MulExact(decnum.NewFromInt64(n), scale)
}

// sqrt takes the root of a value known to be non-negative.
func sqrt(x decnum.Decimal, scale int) decnum.Decimal {
	z, err := x.SqrtExact(scale)
	if err != nil {
		panic(err)
	}
	return z
}
