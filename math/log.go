package math

import "github.com/decnum/decnum"

// threshold between a decade's lower and upper half, roughly √10. Keeping
// the reduced mantissa in [0.32, 3.2) bounds the series argument below 0.53.
var decadeSplit = decnum.MustNew(32, 1)

// Ln returns the natural logarithm of x, rounded to the current scale.
// Ln returns an error of class [decnum.ErrMathDomain] if x is not positive.
func Ln(x decnum.Decimal) (decnum.Decimal, error) {
	if x.Sign() <= 0 {
		return decnum.Decimal{}, decnum.ErrMathDomain.New("natural logarithm of non-positive number %s", x)
	}
	if x.EqualInt64(1) {
		return decnum.Decimal{}, nil
	}
	scale := decnum.GetScale()
	w := scale + guardDigits

	// Decade reduction: x = m·10^k with m in [1, 10), then ln x = k·ln 10 +
	// 2·atanh((m-1)/(m+1)). The mantissa is pulled below √10 so the series
	// argument stays small.
	k := x.Prec() - x.Scale() - 1
	m := x.Shift(-k)
	if m.Cmp(decadeSplit) >= 0 {
		m = m.Shift(-1)
		k++
	}
	u := quo(m.SubExact(one, w), m.AddExact(one, w), w)
	res := mulInt64(atanhSeries(u, w), 2, w)
	if k != 0 {
		res = res.AddExact(mulInt64(ln10(w+10), int64(k), w), w)
	}
	return res.Round(scale), nil
}

// atanhSeries sums atanh(u) = u + u³/3 + u⁵/5 + ... for |u| < 1.
func atanhSeries(u decnum.Decimal, scale int) decnum.Decimal {
	var (
		s   = u
		t   = u
		u2  = u.MulExact(u, scale)
		eps = ulpAt(scale)
		k   = int64(1)
	)
	for {
		t = t.MulExact(u2, scale)
		term := quoInt64(t, 2*k+1, scale)
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
		s = s.AddExact(term, scale)
		k++
	}
	return s
}
