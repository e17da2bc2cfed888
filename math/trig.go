package math

import "github.com/decnum/decnum"

// Sin returns the sine of x (in radians), rounded to the current scale.
func Sin(x decnum.Decimal) decnum.Decimal {
	scale := decnum.GetScale()
	return sinAt(x, scale+guardDigits).Round(scale)
}

// Cos returns the cosine of x (in radians), rounded to the current scale.
func Cos(x decnum.Decimal) decnum.Decimal {
	scale := decnum.GetScale()
	return cosAt(x, scale+guardDigits).Round(scale)
}

// Tan returns the tangent of x (in radians), rounded to the current scale.
// Tan returns an error of class [decnum.ErrDivisionByZero] where the
// cosine rounds to zero at the current scale.
func Tan(x decnum.Decimal) (decnum.Decimal, error) {
	scale := decnum.GetScale()
	w := scale + guardDigits
	r := reduceAngle(x, w+2)
	s, c := sinAt(r, w), cosAt(r, w)
	if c.Round(scale).IsZero() {
		return decnum.Decimal{}, decnum.ErrDivisionByZero.New("tangent of %s, cosine vanishes at scale %d", x, scale)
	}
	return quo(s, c, w).Round(scale), nil
}

// reduceAngle maps x into [-π, π] by subtracting the nearest multiple of
// 2π. The constant is carried with extra digits matching the magnitude of
// x, so the difference keeps its accuracy at the working scale.
func reduceAngle(x decnum.Decimal, scale int) decnum.Decimal {
	wp := scale + 2
	if d := x.Prec() - x.Scale(); d > 0 {
		wp += d
	}
	twoPi := mulInt64(pi(wp), 2, wp)
	q := quo(x, twoPi, wp).Round(0)
	if q.IsZero() {
		return x
	}
	return x.SubExact(q.MulExact(twoPi, wp), scale)
}

// sinAt computes sin x with scale fraction digits, folding the reduced
// angle into [-π/2, π/2] where the Maclaurin series converges quickly.
func sinAt(x decnum.Decimal, scale int) decnum.Decimal {
	r := reduceAngle(x, scale+2)
	p := pi(scale + 4)
	halfPi := quoInt64(p, 2, scale+4)
	switch {
	case r.Cmp(halfPi) > 0:
		r = p.SubExact(r, scale+2) // sin r = sin(π - r)
	case r.Cmp(halfPi.Neg()) < 0:
		r = p.Neg().SubExact(r, scale+2) // sin r = sin(-π - r)
	}
	return sinSeries(r, scale)
}

// cosAt computes cos x with scale fraction digits, folding the reduced
// angle into [0, π/2] with the complement identity.
func cosAt(x decnum.Decimal, scale int) decnum.Decimal {
	r := reduceAngle(x, scale+2).Abs()
	p := pi(scale + 4)
	halfPi := quoInt64(p, 2, scale+4)
	if r.Cmp(halfPi) > 0 {
		return cosSeries(p.SubExact(r, scale+2), scale).Neg() // cos r = -cos(π - r)
	}
	return cosSeries(r, scale)
}

// sinSeries sums sin x = x - x³/3! + x⁵/5! - ... for |x| ≤ π/2.
func sinSeries(x decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = x
		t   = x
		x2  = x.MulExact(x, scale)
		eps = ulpAt(scale)
	)
	for k := int64(1); ; k++ {
		t = quoInt64(t.MulExact(x2, scale), 2*k*(2*k+1), scale).Neg()
		if t.Abs().Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(t, scale)
	}
	return s
}

// cosSeries sums cos x = 1 - x²/2! + x⁴/4! - ... for |x| ≤ π/2.
func cosSeries(x decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = one
		t   = one
		x2  = x.MulExact(x, scale)
		eps = ulpAt(scale)
	)
	for k := int64(1); ; k++ {
		t = quoInt64(t.MulExact(x2, scale), (2*k-1)*2*k, scale).Neg()
		if t.Abs().Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(t, scale)
	}
	return s
}
