package decnum

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse converts a string to a decimal. The string must match
//
//	-?([0-9]+(\.[0-9]*)?|\.[0-9]+)
//
// that is: an optional minus sign, then integer digits, an optional decimal
// point and fraction digits. A leading plus sign, exponents and any other
// characters are rejected with an error of class [ErrParse].
//
// The declared precision of the literal is retained: parsing does not round
// to the package-wide scale, so "0.123456789012345678901" keeps all of its
// digits until it takes part in an operation.
func Parse(s string) (Decimal, error) {
	var (
		pos   int
		width = len(s)
		neg   bool
	)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	intStart := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	intDigits := s[intStart:pos]

	// Fraction
	var fracDigits string
	if pos < width && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		fracDigits = s[fracStart:pos]
	}

	if pos != width {
		return Decimal{}, ErrParse.New("invalid character %q in %q", s[pos], s)
	}
	if len(intDigits) == 0 && len(fracDigits) == 0 {
		return Decimal{}, ErrParse.New("no digits in %q", s)
	}

	coef := new(bint)
	if !coef.setString(intDigits + fracDigits) {
		return Decimal{}, ErrParse.New("malformed coefficient in %q", s)
	}
	if coef.sign() == 0 {
		// No negative zero; the declared scale is kept.
		return Decimal{scale: len(fracDigits)}, nil
	}
	return Decimal{neg: neg, scale: len(fracDigits), coef: coef}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the decimal: an optional minus sign, integer digits and,
// when the scale is positive, a decimal point followed by exactly scale
// fraction digits. Trailing zeros are preserved, they carry precision.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	digits := d.coefBint().string()
	var b strings.Builder
	b.Grow(len(digits) + d.scale + 3)
	if d.neg {
		b.WriteByte('-')
	}
	switch {
	case d.scale == 0:
		b.WriteString(digits)
	case len(digits) <= d.scale:
		b.WriteString("0.")
		for i := len(digits); i < d.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	default:
		b.WriteString(digits[:len(digits)-d.scale])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-d.scale:])
	}
	return b.String()
}

// StringThousands is like [Decimal.String] but groups the digits of the
// integer part in threes, separated by commas: -1234567.8 renders as
// "-1,234,567.8".
func (d Decimal) StringThousands() string {
	s := d.String()
	start := 0
	if d.neg {
		start = 1
	}
	end := strings.IndexByte(s, '.')
	if end < 0 {
		end = len(s)
	}
	if end-start <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + (end-start)/3)
	b.WriteString(s[:start])
	for i := start; i < end; i++ {
		if i > start && (end-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	b.WriteString(s[end:])
	return b.String()
}

// StringMaxLen renders the decimal into at most max characters. The integer
// part is never shortened: if it does not fit, including the sign, the
// literal string "Overflow" is returned. Otherwise fraction digits are
// truncated, never rounded, from the right until the rendering fits.
// Trailing zeros exposed by the truncation are dropped together with a
// trailing decimal point.
//
// StringMaxLen panics if max is less than 8, the length of "Overflow".
func (d Decimal) StringMaxLen(max int) string {
	if max < 8 {
		panic(fmt.Sprintf("StringMaxLen(%v) failed: maximum length must be at least 8", max))
	}
	s := d.String()
	if len(s) <= max {
		return s
	}
	point := strings.IndexByte(s, '.')
	if point < 0 {
		point = len(s)
	}
	if point > max {
		return "Overflow"
	}
	keep := max - point - 1
	if keep < 0 {
		keep = 0
	}
	s = s[:point+1+keep]
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// IntPart returns the integer part of d, truncated towards zero, as a new
// big integer.
func (d Decimal) IntPart() *big.Int {
	z := getBint()
	defer putBint(z)
	z.rshDown(d.coefBint(), d.scale)
	r := z.bigInt()
	if d.neg {
		r.Neg(r)
	}
	return r
}

// IntRound returns d rounded half-to-even to zero digits after the decimal
// point, as a new big integer.
func (d Decimal) IntRound() *big.Int {
	z := getBint()
	defer putBint(z)
	z.rshHalfEven(d.coefBint(), d.scale)
	r := z.bigInt()
	if d.neg {
		r.Neg(r)
	}
	return r
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// Format implements the [fmt.Formatter] interface. It supports the verbs
// 's', 'v' and 'q' together with width and the '-' flag.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'v':
		s = d.String()
	case 'q':
		s = "\"" + d.String() + "\""
	default:
		fmt.Fprintf(state, "%%!%c(decnum.Decimal=%s)", verb, d.String())
		return
	}
	width, ok := state.Width()
	if !ok || width <= len(s) {
		state.Write([]byte(s))
		return
	}
	pad := strings.Repeat(" ", width-len(s))
	if state.Flag('-') {
		state.Write([]byte(s + pad))
		return
	}
	state.Write([]byte(pad + s))
}
