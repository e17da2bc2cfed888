package math

import "github.com/decnum/decnum"

// Asin returns the arcsine of x in radians, rounded to the current scale.
// Asin returns an error of class [decnum.ErrMathDomain] if x is outside
// [-1, 1].
func Asin(x decnum.Decimal) (decnum.Decimal, error) {
	if x.Abs().CmpInt64(1) > 0 {
		return decnum.Decimal{}, decnum.ErrMathDomain.New("arcsine of %s outside [-1, 1]", x)
	}
	scale := decnum.GetScale()
	return asinAt(x, scale+guardDigits).Round(scale), nil
}

// Acos returns the arccosine of x in radians, rounded to the current scale.
// Acos returns an error of class [decnum.ErrMathDomain] if x is outside
// [-1, 1].
func Acos(x decnum.Decimal) (decnum.Decimal, error) {
	if x.Abs().CmpInt64(1) > 0 {
		return decnum.Decimal{}, decnum.ErrMathDomain.New("arccosine of %s outside [-1, 1]", x)
	}
	scale := decnum.GetScale()
	w := scale + guardDigits
	halfPi := quoInt64(pi(w+2), 2, w+2)
	return halfPi.SubExact(asinAt(x, w), w).Round(scale), nil
}

// asinAt computes asin x with scale fraction digits. The Maclaurin series
// is used up to |x| ≤ √2/2; beyond that it converges too slowly and the
// complement asin x = ±(π/2 - asin √(1-x²)) brings the argument back into
// the fast range.
func asinAt(x decnum.Decimal, scale int) decnum.Decimal {
	x2 := x.MulExact(x, scale+2)
	if mulInt64(x2, 2, scale+2).CmpInt64(1) > 0 {
		c := sqrt(one.SubExact(x2, scale+2), scale+2)
		halfPi := quoInt64(pi(scale+2), 2, scale+2)
		r := halfPi.SubExact(asinSeries(c, scale), scale)
		if x.IsNeg() {
			r = r.Neg()
		}
		return r
	}
	return asinSeries(x, scale)
}

// asinSeries sums asin x = x + x³/6 + 3x⁵/40 + ... for |x| ≤ √2/2, with
// the term recurrence tₖ₊₁ = tₖ·x²·(2k+1)²/((2k+2)(2k+3)).
func asinSeries(x decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = x
		t   = x
		x2  = x.MulExact(x, scale)
		eps = ulpAt(scale)
	)
	for k := int64(0); ; k++ {
		t = t.MulExact(x2, scale)
		t = mulInt64(t, (2*k+1)*(2*k+1), scale)
		t = quoInt64(t, (2*k+2)*(2*k+3), scale)
		if t.Abs().Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(t, scale)
	}
	return s
}

// Atan returns the arctangent of x in radians, rounded to the current
// scale.
func Atan(x decnum.Decimal) decnum.Decimal {
	scale := decnum.GetScale()
	return atanAt(x, scale+guardDigits).Round(scale)
}

// atanAt computes atan x with scale fraction digits. Arguments beyond 1
// flip to their reciprocal, then the half-angle identity
// atan x = 2·atan(x/(1+√(1+x²))) is applied until the argument is at most
// 0.1, where the Maclaurin series needs only a handful of terms.
func atanAt(x decnum.Decimal, scale int) decnum.Decimal {
	if x.Abs().CmpInt64(1) > 0 {
		halfPi := quoInt64(pi(scale+2), 2, scale+2)
		inv := quo(one, x, scale+2)
		if x.IsNeg() {
			return halfPi.Neg().SubExact(atanAt(inv, scale), scale)
		}
		return halfPi.SubExact(atanAt(inv, scale), scale)
	}
	mult := int64(1)
	y := x
	for y.Abs().Cmp(tenth) > 0 {
		y2 := y.MulExact(y, scale)
		y = quo(y, one.AddExact(sqrt(one.AddExact(y2, scale), scale), scale), scale)
		mult *= 2
	}
	return mulInt64(atanSeries(y, scale), mult, scale)
}

// atanSeries sums atan x = x - x³/3 + x⁵/5 - ... for |x| ≤ 0.1.
func atanSeries(x decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = x
		t   = x
		x2  = x.MulExact(x, scale)
		eps = ulpAt(scale)
	)
	for k := int64(1); ; k++ {
		t = t.MulExact(x2, scale).Neg()
		term := quoInt64(t, 2*k+1, scale)
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(term, scale)
	}
	return s
}

// Atan2 returns the angle of the point (x, y) in radians within (-π, π],
// rounded to the current scale. Atan2 returns an error of class
// [decnum.ErrMathDomain] when both arguments are zero.
func Atan2(y, x decnum.Decimal) (decnum.Decimal, error) {
	scale := decnum.GetScale()
	w := scale + guardDigits
	switch {
	case x.Sign() > 0:
		return atanAt(quo(y, x, w), w).Round(scale), nil
	case x.Sign() < 0:
		a := atanAt(quo(y, x, w), w)
		if y.IsNeg() {
			return a.SubExact(pi(w), w).Round(scale), nil
		}
		return a.AddExact(pi(w), w).Round(scale), nil
	case y.Sign() > 0:
		return quoInt64(pi(w), 2, w).Round(scale), nil
	case y.Sign() < 0:
		return quoInt64(pi(w), 2, w).Neg().Round(scale), nil
	default:
		return decnum.Decimal{}, decnum.ErrMathDomain.New("atan2 of (0, 0) is undefined")
	}
}
