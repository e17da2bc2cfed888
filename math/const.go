package math

import (
	"sync"

	"github.com/decnum/decnum"
)

// constant caches a lazily computed value together with the number of
// fraction digits it was last computed at. Refinement is monotone: a
// request beyond the cached precision recomputes and keeps the finer
// value, a request within it reuses the cache rounded down.
type constant struct {
	mu      sync.Mutex
	compute func(scale int) decnum.Decimal
	value   decnum.Decimal
	digits  int
}

func (c *constant) at(scale int) decnum.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.digits < scale {
		c.value = c.compute(scale + guardDigits)
		c.digits = scale + guardDigits
	}
	return c.value.Round(scale)
}

var (
	piCache   = &constant{compute: computePi}
	eCache    = &constant{compute: computeE}
	ln10Cache = &constant{compute: computeLn10}
)

// Pi returns π rounded to the current scale.
func Pi() decnum.Decimal {
	return piCache.at(decnum.GetScale())
}

// E returns e rounded to the current scale.
func E() decnum.Decimal {
	return eCache.at(decnum.GetScale())
}

func pi(scale int) decnum.Decimal {
	return piCache.at(scale)
}

func e(scale int) decnum.Decimal {
	return eCache.at(scale)
}

func ln10(scale int) decnum.Decimal {
	return ln10Cache.at(scale)
}

// computePi sums π = 3 + Σ tₖ with t₀ = 3 and tₖ₊₁ = tₖ·n/d, where n runs
// over the odd squares and d over the matching products of consecutive
// even numbers. The loop stops when another term no longer changes the
// accumulated sum at the working scale.
func computePi(scale int) decnum.Decimal {
	var (
		lasts decnum.Decimal
		t     = decnum.NewFromInt64(3)
		s     = decnum.NewFromInt64(3)
		n, na = int64(1), int64(0)
		d, da = int64(0), int64(24)
	)
	for !s.Equal(lasts) {
		lasts = s
		n, na = n+na, na+8
		d, da = d+da, da+32
		t = quoInt64(mulInt64(t, n, scale), d, scale)
		s = s.AddExact(t, scale)
	}
	return s
}

// computeE sums e = Σ 1/k! until the sum stops changing.
func computeE(scale int) decnum.Decimal {
	var (
		lasts decnum.Decimal
		s     = decnum.NewFromInt64(2) // 1/0! + 1/1!
		t     = one
		k     = int64(1)
	)
	for !s.Equal(lasts) {
		lasts = s
		k++
		t = quoInt64(t, k, scale)
		s = s.AddExact(t, scale)
	}
	return s
}

// computeLn10 evaluates ln 10 = 3·ln 2 + ln 1.25 through the inverse
// hyperbolic tangent: ln x = 2·atanh((x-1)/(x+1)).
func computeLn10(scale int) decnum.Decimal {
	w := scale + 4
	a := atanhSeries(quoInt64(one, 3, w), w) // atanh(1/3) = ln(2)/2
	b := atanhSeries(quoInt64(one, 9, w), w) // atanh(1/9) = ln(1.25)/2
	return mulInt64(a, 6, w).AddExact(mulInt64(b, 2, w), scale)
}
