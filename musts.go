package decnum

import "fmt"

// MustNew is like [New] but panics on error.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func MustQuo(d, e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func MustPow(d Decimal, power int) Decimal {
	f, err := d.Pow(power)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", d, power, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics if computing error.
func MustSqrt(d Decimal) Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}
