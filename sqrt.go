package decnum

// Sqrt returns the square root of d at the current scale.
// Sqrt returns an error of class [ErrMathDomain] if d is negative.
//
// The result is the greatest decimal with exactly scale fraction digits
// whose square does not exceed d, so squaring it never overshoots:
//
//	Sqrt(d)² ≤ d < (Sqrt(d) + ulp)²
func (d Decimal) Sqrt() (Decimal, error) {
	return d.SqrtExact(GetScale())
}

// SqrtExact is like [Decimal.Sqrt], but computes the root at the given
// scale instead of the current one.
func (d Decimal) SqrtExact(scale int) (Decimal, error) {
	if scale < 0 {
		scale = 0
	}
	if d.IsNeg() {
		return Decimal{}, ErrMathDomain.New("square root of negative number %s", d)
	}
	if d.coef == nil {
		return Decimal{}, nil
	}
	// Lift the value to an integer carrying 2*scale fraction digits, so the
	// integer root carries exactly scale of them.
	m := getBint()
	defer putBint(m)
	if shift := 2*scale - d.scale; shift >= 0 {
		m.lsh(d.coef, shift)
	} else {
		m.rshDown(d.coef, -shift)
	}
	z := new(bint)
	z.sqrt(m)
	if z.sign() == 0 {
		return Decimal{}, nil
	}
	return Decimal{scale: scale, coef: z}, nil
}
