package math

import "github.com/decnum/decnum"

// Exp returns e raised to the power of x, rounded to the current scale.
func Exp(x decnum.Decimal) decnum.Decimal {
	scale := decnum.GetScale()
	return expAt(x, scale+guardDigits).Round(scale)
}

// expAt computes e^x with scale fraction digits.
//
// The argument is split into its integer and fractional parts: e^x is the
// cached e raised to the integer part by binary exponentiation, carried
// with enough extra digits for the magnitude of the result, times the
// Maclaurin series of the fractional part. Negative arguments invert the
// positive power.
func expAt(x decnum.Decimal, scale int) decnum.Decimal {
	if x.IsZero() {
		return one
	}
	if x.IsNeg() {
		return quo(one, expAt(x.Abs(), scale+2), scale)
	}
	n := x.IntPart().Int64()
	f := x.SubExact(decnum.NewFromInt64(n), scale+4)
	s := expSeries(f, scale+4)
	if n == 0 {
		return s.Round(scale)
	}
	// e^n has about n·log10(e) digits before the point; every one of them
	// eats into the fraction digits of the final product.
	w := scale + int(n*43430/100000) + 4
	en, err := e(w).PowExact(int(n), w)
	if err != nil {
		panic(err) // unreachable, the power is positive
	}
	return en.MulExact(s, w).Round(scale)
}

// expSeries sums e^f = Σ f^k/k! for 0 ≤ f < 1.
func expSeries(f decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = one.AddExact(f, scale)
		t   = f
		eps = ulpAt(scale)
		k   = int64(1)
	)
	for {
		k++
		t = quoInt64(t.MulExact(f, scale), k, scale)
		if t.Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(t, scale)
	}
	return s
}
