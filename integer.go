package decnum

import (
	"math/big"
	"sync"
)

// bint is a wrapper around big.Int. It always holds a non-negative value;
// signs live in [Decimal].
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Entries are shared and must never be written to.
var bpow10 = func() [64]*bint {
	var p [64]*bint
	x := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range p {
		p[i] = (*bint)(new(big.Int).Set(x))
		x.Mul(x, ten)
	}
	return p
}()

// bzero is the shared read-only coefficient of zero values.
var bzero = (*bint)(new(big.Int))

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// setString reads a non-empty string of decimal digits.
func (z *bint) setString(digits string) bool {
	_, ok := (*big.Int)(z).SetString(digits, 10)
	return ok
}

// bigInt converts z to a freshly allocated *big.Int.
func (z *bint) bigInt() *big.Int {
	return new(big.Int).Set((*big.Int)(z))
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bpow10[0])
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = ⌊x / y⌋.
func (z *bint) quo(x, y *bint) {
	// Passing r to prevent heap allocations.
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	(*big.Int)(z).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// rshDown (Right Shift) calculates z = ⌊x / 10^shift⌋ and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.quo(x, y)
}

// rshHalfEven (Right Shift) calculates z = round(x / 10^shift) and
// rounds result using "half to even" rule.
func (z *bint) rshHalfEven(x *bint, shift int) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	var y, r *bint
	r = getBint()
	defer putBint(r)
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.quoRem(x, y, r)
	r.dbl(r) // r = r * 2
	switch y.cmp(r) {
	case -1:
		z.inc(z) // z = z + 1
	case 0:
		// half-to-even
		if z.isOdd() {
			z.inc(z) // z = z + 1
		}
	}
}

// sqrt calculates z = ⌊√x⌋ by Newton iteration, seeded with a power of two
// no smaller than the root. The iterates decrease monotonically, so the
// first non-decreasing step stops the loop.
func (z *bint) sqrt(x *bint) {
	xb := (*big.Int)(x)
	if xb.Sign() == 0 {
		z.setInt64(0)
		return
	}
	r := new(big.Int).Lsh(big.NewInt(1), uint(xb.BitLen()/2+1))
	t := new(big.Int)
	for {
		t.Quo(xb, r)
		t.Add(t, r)
		t.Rsh(t, 1)
		if t.Cmp(r) >= 0 {
			break
		}
		r.Set(t)
	}
	(*big.Int)(z).Set(r)
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
func (z *bint) prec() int {
	if z.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(z.string())
	}
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
