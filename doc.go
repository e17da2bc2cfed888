/*
Package decnum implements immutable arbitrary-precision decimal
floating-point numbers. It is designed for environments without usable
hardware floating point, where results must be exact decimals with a
well-defined number of fraction digits.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unbounded non-negative integer representing the numeric
    value of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal
    point within the coefficient. For example, a decimal with a coefficient
    of 12345 and a scale of 2 represents the value 123.45.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have multiple representations: 1, 1.0 and 1.00
all represent the same value with different scales. Trailing zeros are kept
by construction and rendering, they carry declared precision. The only
canonical value is zero: every arithmetic or rounding operation that
produces 0 returns it with a zero scale and a positive sign.

# Rounding

Each arithmetic operation rounds its result half-to-even ("banker's
rounding") to the package-wide scale, 16 fraction digits unless changed
with [SetScale]. Changing the scale never mutates existing values, it only
affects subsequent operations; [Decimal.Normalize] re-rounds a value to the
scale in effect. The *Exact method variants ([Decimal.AddExact] and
friends) round to an explicit scale instead and exist so longer
computations, such as the series in [decnum/math], can carry guard digits.

# Operations

The package provides addition, subtraction, multiplication, division with a
guard digit, integer powers by binary exponentiation and the integer square
root lifted to decimals. Mixed decimal/integer forms ([Decimal.AddInt64]
and friends) lift the integer operand to a decimal with a zero scale.
Constants and transcendental functions (π, e, Exp, Ln, trigonometry) live
in the sub-package [decnum/math].

# Errors

Failures are grouped into four classes, matched with [errs.Class.Has]:
[ErrParse], [ErrBadInit], [ErrMathDomain] and [ErrDivisionByZero]. The
package never returns NaN, infinities or other sentinel values.

# Concurrency

Decimal values are immutable and safe for concurrent use. The package-wide
scale is atomic and the constant caches in [decnum/math] are guarded, but
the usual deployment is single-threaded: a scale change is not a
synchronization point for in-flight operations on other goroutines.

[decnum/math]: https://pkg.go.dev/github.com/decnum/decnum/math
*/
package decnum
