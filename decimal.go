package decnum

import (
	"math/big"
)

// Decimal type is a representation of a finite floating-point decimal number.
// The zero value is the numeric value of 0.
//
// A decimal is a struct with three fields:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: a non-negative integer indicating the position of the floating
//     decimal point within the coefficient.
//   - Coefficient: an unbounded non-negative integer holding all significant
//     digits of the decimal without the decimal point.
//
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45. Such an approach allows for multiple
// representations of the same numerical value: 1, 1.0 and 1.00 all have the
// same value but different scales and coefficients. Trailing zeros are
// significant, they carry declared precision.
//
// Operation results are rounded half-to-even to the package-wide scale, see
// [GetScale]. The *Exact method variants round to an explicit scale instead,
// which is how extra guard digits are carried through longer computations.
//
// The decimal does not support special values such as NaN, Infinity or
// signed zeros: the sign of a zero is always positive. Arithmetic and
// rounding results that are zero also have a zero scale; [Decimal.Neg] and
// [Decimal.Abs] keep the declared scale of a zero.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int   // the position of the floating decimal point
	coef  *bint // the coefficient of the decimal; nil means zero
}

// coefBint returns the coefficient for reading. The result must never be
// written to: it is either shared with other values or the global zero.
func (d Decimal) coefBint() *bint {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// newFromBint assembles an operation result. Zero is collapsed to its
// canonical form and the coefficient is rounded half-to-even down to the
// target scale. The coefficient must be owned by the caller.
func newFromBint(neg bool, coef *bint, scale, target int) Decimal {
	if coef.sign() == 0 {
		return Decimal{}
	}
	if scale > target {
		z := new(bint)
		z.rshHalfEven(coef, scale-target)
		if z.sign() == 0 {
			return Decimal{}
		}
		return Decimal{neg: neg, scale: target, coef: z}
	}
	return Decimal{neg: neg, scale: scale, coef: coef}
}

// New returns a decimal equal to coef / 10^scale.
// New returns an error of class [ErrBadInit] if scale is negative.
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrBadInit.New("New(%v, %v) failed: negative scale", coef, scale)
	}
	b := new(big.Int).SetInt64(coef)
	neg := b.Sign() < 0
	b.Abs(b)
	if b.Sign() == 0 {
		return Decimal{scale: scale}, nil
	}
	return Decimal{neg: neg, scale: scale, coef: (*bint)(b)}, nil
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied, the caller keeps ownership of coef.
// NewFromBigInt returns an error of class [ErrBadInit] if scale is negative.
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrBadInit.New("NewFromBigInt(%v, %v) failed: negative scale", coef, scale)
	}
	b := new(big.Int).Abs(coef)
	if b.Sign() == 0 {
		return Decimal{scale: scale}, nil
	}
	return Decimal{neg: coef.Sign() < 0, scale: scale, coef: (*bint)(b)}, nil
}

// NewFromInt64 returns a decimal equal to the given integer.
func NewFromInt64(n int64) Decimal {
	d, err := New(n, 0)
	if err != nil {
		panic(err) // unreachable, scale is 0
	}
	return d
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// Prec returns the number of digits in the coefficient.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	if d.coef == nil {
		return 0
	}
	return d.coef.prec()
}

// Coef returns the coefficient of the decimal as a new big integer.
func (d Decimal) Coef() *big.Int {
	return d.coefBint().bigInt()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.coef == nil:
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// IsZero returns true if d is 0.
func (d Decimal) IsZero() bool {
	return d.coef == nil
}

// IsNeg returns true if d is less than 0.
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns true if d is greater than 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	if d.scale == 0 || d.coef == nil {
		return true
	}
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	y := getBint()
	defer putBint(y)
	y.pow10(d.scale)
	q.quoRem(d.coef, y, r)
	return r.sign() == 0
}

// Neg returns d with the opposite sign. The scale is preserved; the zero
// keeps its positive sign.
func (d Decimal) Neg() Decimal {
	if d.coef == nil {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of d. The scale is preserved.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Round returns d rounded half-to-even to the given number of digits after
// the decimal point. If d is non-zero and its scale is not greater than the
// given scale, d is returned unchanged. If the given scale is negative, it
// is redefined to zero. A zero d, or a result that collapses to zero, is
// returned as the canonical zero.
func (d Decimal) Round(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	if d.coef == nil {
		return Decimal{}
	}
	if d.scale <= scale {
		return d
	}
	z := new(bint)
	z.rshHalfEven(d.coef, d.scale-scale)
	if z.sign() == 0 {
		return Decimal{}
	}
	return Decimal{neg: d.neg, scale: scale, coef: z}
}

// Trunc returns d truncated towards zero to the given number of digits
// after the decimal point. If the given scale is negative, it is redefined
// to zero.
func (d Decimal) Trunc(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	if d.coef == nil {
		return Decimal{}
	}
	if d.scale <= scale {
		return d
	}
	z := new(bint)
	z.rshDown(d.coef, d.scale-scale)
	if z.sign() == 0 {
		return Decimal{}
	}
	return Decimal{neg: d.neg, scale: scale, coef: z}
}

// Normalize returns d rounded to the current package-wide scale. It is the
// way to snap a value with more declared digits, for example a parsed
// literal, to the scale operations round to.
func (d Decimal) Normalize() Decimal {
	return d.Round(GetScale())
}

// Shift returns d * 10^power. The shift is exact: it moves the decimal
// point without touching the digits, so the result may carry more
// fractional digits than the package-wide scale.
func (d Decimal) Shift(power int) Decimal {
	if d.coef == nil {
		return Decimal{}
	}
	scale := d.scale - power
	if scale >= 0 {
		return Decimal{neg: d.neg, scale: scale, coef: d.coef}
	}
	z := new(bint)
	z.lsh(d.coef, -scale)
	return Decimal{neg: d.neg, scale: 0, coef: z}
}

// alignedCoef returns a copy of the coefficient scaled up to the given
// scale, which must not be smaller than the scale of d.
func (d Decimal) alignedCoef(scale int) *bint {
	z := new(bint)
	z.lsh(d.coefBint(), scale-d.scale)
	return z
}

func (d Decimal) addRound(e Decimal, target int) Decimal {
	scale := d.scale
	if e.scale > scale {
		scale = e.scale
	}
	dcoef := d.alignedCoef(scale)
	ecoef := e.alignedCoef(scale)
	z := new(bint)
	var neg bool
	if d.neg == e.neg {
		z.add(dcoef, ecoef)
		neg = d.neg
	} else {
		switch dcoef.cmp(ecoef) {
		case 1:
			z.sub(dcoef, ecoef)
			neg = d.neg
		case -1:
			z.sub(ecoef, dcoef)
			neg = e.neg
		default:
			return Decimal{}
		}
	}
	return newFromBint(neg, z, scale, target)
}

// Add returns d + e rounded to the current scale.
func (d Decimal) Add(e Decimal) Decimal {
	return d.addRound(e, GetScale())
}

// AddExact is like [Decimal.Add], but rounds to the given scale instead of
// the current one.
func (d Decimal) AddExact(e Decimal, scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	return d.addRound(e, scale)
}

// AddInt64 returns d + n rounded to the current scale.
func (d Decimal) AddInt64(n int64) Decimal {
	return d.Add(NewFromInt64(n))
}

// Sub returns d - e rounded to the current scale.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.addRound(e.Neg(), GetScale())
}

// SubExact is like [Decimal.Sub], but rounds to the given scale instead of
// the current one.
func (d Decimal) SubExact(e Decimal, scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	return d.addRound(e.Neg(), scale)
}

// SubInt64 returns d - n rounded to the current scale.
func (d Decimal) SubInt64(n int64) Decimal {
	return d.Sub(NewFromInt64(n))
}

func (d Decimal) mulRound(e Decimal, target int) Decimal {
	if d.coef == nil || e.coef == nil {
		return Decimal{}
	}
	z := new(bint)
	z.mul(d.coef, e.coef)
	return newFromBint(d.neg != e.neg, z, d.scale+e.scale, target)
}

// Mul returns d * e rounded to the current scale.
func (d Decimal) Mul(e Decimal) Decimal {
	return d.mulRound(e, GetScale())
}

// MulExact is like [Decimal.Mul], but rounds to the given scale instead of
// the current one.
func (d Decimal) MulExact(e Decimal, scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	return d.mulRound(e, scale)
}

// MulInt64 returns d * n rounded to the current scale.
func (d Decimal) MulInt64(n int64) Decimal {
	return d.Mul(NewFromInt64(n))
}

func (d Decimal) quoRound(e Decimal, target int) (Decimal, error) {
	if e.coef == nil {
		return Decimal{}, ErrDivisionByZero.New("division of %s by zero", d)
	}
	if d.coef == nil {
		return Decimal{}, nil
	}
	// Pad the dividend so the raw quotient carries one guard digit past the
	// target scale, then round half-to-even to the target.
	u := getBint()
	defer putBint(u)
	u.lsh(d.coef, target+1+e.scale)
	v := getBint()
	defer putBint(v)
	v.lsh(e.coef, d.scale)
	z := new(bint)
	z.quo(u, v)
	return newFromBint(d.neg != e.neg, z, target+1, target), nil
}

// Quo returns d / e rounded to the current scale.
// Quo returns an error of class [ErrDivisionByZero] if e is 0.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return d.quoRound(e, GetScale())
}

// QuoExact is like [Decimal.Quo], but rounds to the given scale instead of
// the current one.
func (d Decimal) QuoExact(e Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		scale = 0
	}
	return d.quoRound(e, scale)
}

// QuoInt64 returns d / n rounded to the current scale.
// QuoInt64 returns an error of class [ErrDivisionByZero] if n is 0.
func (d Decimal) QuoInt64(n int64) (Decimal, error) {
	return d.Quo(NewFromInt64(n))
}

// powGuard is the number of extra digits intermediate powers are carried
// with before the final rounding.
const powGuard = 10

func (d Decimal) powRound(power, target int) (Decimal, error) {
	if power == 0 {
		return NewFromInt64(1), nil
	}
	if power < 0 {
		z, err := d.powRound(-power, target+powGuard)
		if err != nil {
			return Decimal{}, err
		}
		return NewFromInt64(1).quoRound(z, target)
	}
	// Binary exponentiation. Intermediate products are rounded with guard
	// digits to bound coefficient growth; integer bases stay exact.
	work := target + powGuard
	z := NewFromInt64(1)
	base := d
	for n := power; n > 0; n >>= 1 {
		if n&1 == 1 {
			z = z.mulRound(base, work)
		}
		if n > 1 {
			base = base.mulRound(base, work)
		}
	}
	return z.Round(target), nil
}

// Pow returns d raised to the given integer power, rounded to the current
// scale. A negative power inverts the positive one: d^-n = 1 / d^n.
// Pow returns an error of class [ErrDivisionByZero] if d is 0 and the
// power is negative. d^0 is 1 for any d, including 0.
func (d Decimal) Pow(power int) (Decimal, error) {
	return d.powRound(power, GetScale())
}

// PowExact is like [Decimal.Pow], but rounds to the given scale instead of
// the current one.
func (d Decimal) PowExact(power, scale int) (Decimal, error) {
	if scale < 0 {
		scale = 0
	}
	return d.powRound(power, scale)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Values are aligned before the comparison, so declared precision does not
// matter: 1.5 and 1.500 are equal.
func (d Decimal) Cmp(e Decimal) int {
	dsign, esign := d.Sign(), e.Sign()
	switch {
	case dsign < esign:
		return -1
	case dsign > esign:
		return 1
	case dsign == 0:
		return 0
	}
	scale := d.scale
	if e.scale > scale {
		scale = e.scale
	}
	dcoef := getBint()
	defer putBint(dcoef)
	dcoef.lsh(d.coefBint(), scale-d.scale)
	ecoef := getBint()
	defer putBint(ecoef)
	ecoef.lsh(e.coefBint(), scale-e.scale)
	r := dcoef.cmp(ecoef)
	if d.neg {
		r = -r
	}
	return r
}

// CmpInt64 compares d with the given integer, see [Decimal.Cmp].
func (d Decimal) CmpInt64(n int64) int {
	return d.Cmp(NewFromInt64(n))
}

// Equal returns true if d and e represent the same numeric value.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// EqualInt64 returns true if d equals the given integer.
func (d Decimal) EqualInt64(n int64) bool {
	return d.CmpInt64(n) == 0
}
