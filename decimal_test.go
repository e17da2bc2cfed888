package decnum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decnum/decnum"
)

// setScale changes the package scale for one test and restores it afterwards.
func setScale(t *testing.T, scale int) {
	t.Helper()
	old := decnum.GetScale()
	decnum.SetScale(scale)
	t.Cleanup(func() { decnum.SetScale(old) })
}

func TestDecimal_ZeroValue(t *testing.T) {
	var d decnum.Decimal
	require.Equal(t, "0", d.String())
	require.Equal(t, 0, d.Sign())
	require.Equal(t, 0, d.Scale())
	require.True(t, d.IsZero())
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			coef  int64
			scale int
			want  string
		}{
			{0, 0, "0"},
			{0, 5, "0.00000"},
			{1, 0, "1"},
			{-1, 0, "-1"},
			{12345, 2, "123.45"},
			{-12345, 4, "-1.2345"},
			{5, 3, "0.005"},
			{9999999999999999999, 0, "9999999999999999999"},
		}
		for _, tt := range tests {
			d, err := decnum.New(tt.coef, tt.scale)
			require.NoError(t, err)
			require.Equal(t, tt.want, d.String())
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err := decnum.New(1, -1)
		require.Error(t, err)
		require.True(t, decnum.ErrBadInit.Has(err))
	})
}

func TestNewFromInt64(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, decnum.NewFromInt64(tt.n).String())
	}
}

func TestSetScale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setScale(t, 4)
		require.Equal(t, 4, decnum.GetScale())
	})
	t.Run("panic", func(t *testing.T) {
		require.Panics(t, func() { decnum.SetScale(0) })
		require.Panics(t, func() { decnum.SetScale(-3) })
	})
}

func TestDecimal_Add(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"1", "1", "2"},
		{"2", "3", "5"},
		{"5.75", "3.3", "9.05"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"-7", "2.5", "-4.5"},
		{"0.7", "0.3", "1.0"},
		{"1.25", "1.25", "2.50"},
		{"7.3329", "157.82", "165.1529"},
		{"0.0", "0", "0"},
		{"1.5", "-1.5", "0"},
		{"-1.5", "1.5", "0"},
		{"0.0000000000000000004", "0", "0"},
		{"0.00000000000000005", "0", "0"},                      // tie to even, 0 stays
		{"0.00000000000000015", "0", "0.0000000000000002"},     // tie to even, 1 bumps
		{"99999999999999999999999999", "1", "100000000000000000000000000"},
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		e := decnum.MustParse(tt.e)
		require.Equal(t, tt.want, d.Add(e).String(), "%s + %s", tt.d, tt.e)
		require.Equal(t, tt.want, e.Add(d).String(), "%s + %s", tt.e, tt.d)
	}
}

func TestDecimal_Sub(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-5", "-3", "-2"},
		{"1.5", "1.500", "0"},
		{"0", "0.4", "-0.4"},
		{"165.1529", "157.82", "7.3329"},
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		e := decnum.MustParse(tt.e)
		require.Equal(t, tt.want, d.Sub(e).String(), "%s - %s", tt.d, tt.e)
	}
}

func TestDecimal_Mul(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"2", "2", "4"},
		{"2", "3", "6"},
		{"5", "1", "5"},
		{"-5", "1", "-5"},
		{"5", "-1", "-5"},
		{"-5", "-1", "5"},
		{"1.5", "1.5", "2.25"},
		{"0.1", "0.1", "0.01"},
		{"0", "-7.5", "0"},
		{"0.00000001", "0.000000001", "0"},
		{"0.000000001", "0.00000005", "0"},                  // 5e-17 ties to even 0
		{"0.000000015", "0.00000001", "0.0000000000000002"}, // 1.5e-16 ties to even 2
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		e := decnum.MustParse(tt.e)
		require.Equal(t, tt.want, d.Mul(e).String(), "%s * %s", tt.d, tt.e)
		require.Equal(t, tt.want, e.Mul(d).String(), "%s * %s", tt.e, tt.d)
	}
}

func TestDecimal_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e, want string
		}{
			{"1", "2", "0.5000000000000000"},
			{"1", "3", "0.3333333333333333"},
			{"2", "3", "0.6666666666666667"},
			{"-7", "4", "-1.7500000000000000"},
			{"7", "-4", "-1.7500000000000000"},
			{"-7", "-4", "1.7500000000000000"},
			{"100", "8", "12.5000000000000000"},
			{"0", "5", "0"},
			{"6", "2", "3.0000000000000000"},
		}
		for _, tt := range tests {
			d := decnum.MustParse(tt.d)
			e := decnum.MustParse(tt.e)
			q, err := d.Quo(e)
			require.NoError(t, err)
			require.Equal(t, tt.want, q.String(), "%s / %s", tt.d, tt.e)
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err := decnum.NewFromInt64(1).Quo(decnum.NewFromInt64(0))
		require.Error(t, err)
		require.True(t, decnum.ErrDivisionByZero.Has(err))

		_, err = decnum.NewFromInt64(1).Quo(decnum.MustParse("0.000"))
		require.True(t, decnum.ErrDivisionByZero.Has(err))
	})
}

func TestDecimal_QuoInt64(t *testing.T) {
	q, err := decnum.MustParse("1").QuoInt64(8)
	require.NoError(t, err)
	require.Equal(t, "0.1250000000000000", q.String())

	_, err = decnum.MustParse("1").QuoInt64(0)
	require.True(t, decnum.ErrDivisionByZero.Has(err))
}

func TestDecimal_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d     string
			power int
			want  string
		}{
			{"2", 0, "1"},
			{"0", 0, "1"},
			{"2", 3, "8"},
			{"-2", 3, "-8"},
			{"-2", 2, "4"},
			{"1.5", 2, "2.25"},
			{"0.5", -3, "8.0000000000000000"},
			{"2", 10, "1024"},
			{"1.01234567", 15, "1.2020774344056969"},
			{"2", 107, "162259276829213363391578010288128"},
		}
		for _, tt := range tests {
			d := decnum.MustParse(tt.d)
			z, err := d.Pow(tt.power)
			require.NoError(t, err)
			require.Equal(t, tt.want, z.String(), "%s ^ %d", tt.d, tt.power)
		}
	})
	t.Run("mersenne", func(t *testing.T) {
		z, err := decnum.NewFromInt64(2).Pow(107)
		require.NoError(t, err)
		require.Equal(t, "162259276829213363391578010288127", z.SubInt64(1).String())
	})
	t.Run("error", func(t *testing.T) {
		_, err := decnum.NewFromInt64(0).Pow(-2)
		require.Error(t, err)
		require.True(t, decnum.ErrDivisionByZero.Has(err))
	})
}

func TestDecimal_Round(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		want  string
	}{
		// Ties resolve to the even neighbour.
		{"0.5", 0, "0"},
		{"1.5", 0, "2"},
		{"2.5", 0, "2"},
		{"3.5", 0, "4"},
		{"-0.5", 0, "0"},
		{"-2.5", 0, "-2"},
		{"-3.5", 0, "-4"},
		{"2.675", 2, "2.68"},
		{"2.665", 2, "2.66"},
		{"1.234", 5, "1.234"},
		{"1.2349", 3, "1.235"},
		{"-1.2344", 3, "-1.234"},
		{"0.0001", 3, "0"},
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		require.Equal(t, tt.want, d.Round(tt.scale).String(), "round(%s, %d)", tt.d, tt.scale)
	}
}

func TestDecimal_Trunc(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		want  string
	}{
		{"1.999", 0, "1"},
		{"-1.999", 0, "-1"},
		{"1.999", 2, "1.99"},
		{"1.999", 5, "1.999"},
		{"0.0009", 2, "0"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, decnum.MustParse(tt.d).Trunc(tt.scale).String())
	}
}

func TestDecimal_Normalize(t *testing.T) {
	setScale(t, 16)
	tests := []struct {
		d, want string
	}{
		{"0.12345678901234567890", "0.1234567890123457"},
		{"1.5", "1.5"},
		{"42", "42"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, decnum.MustParse(tt.d).Normalize().String())
	}
}

func TestDecimal_NegAbs(t *testing.T) {
	tests := []struct {
		d, neg, abs string
	}{
		{"1.5", "-1.5", "1.5"},
		{"-1.5", "1.5", "1.5"},
		{"0", "0", "0"},
		{"0.00", "0.00", "0.00"}, // the sign of zero never flips, declared digits stay
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		require.Equal(t, tt.neg, d.Neg().String())
		require.Equal(t, tt.abs, d.Abs().String())
	}
}

func TestDecimal_NoNegativeZero(t *testing.T) {
	x := decnum.MustParse("1.25")
	require.Equal(t, 0, x.Sub(x).Sign())
	require.Equal(t, "0", x.Sub(x).String())

	z := decnum.MustParse("0").Mul(decnum.MustParse("-7"))
	require.False(t, z.IsNeg())
	require.Equal(t, "0", z.String())

	// Rounding that collapses a negative value to zero drops the sign.
	r := decnum.MustParse("-0.0004").Round(3)
	require.False(t, r.IsNeg())
	require.Equal(t, "0", r.String())
}

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		d, e string
		want int
	}{
		{"0", "0", 0},
		{"0", "0.000", 0},
		{"1.5", "1.500", 0},
		{"-1.5", "-1.500", 0},
		{"2", "3", -1},
		{"3", "2", 1},
		{"-2", "1", -1},
		{"-2", "-3", 1},
		{"0.09", "0.1", -1},
	}
	for _, tt := range tests {
		d := decnum.MustParse(tt.d)
		e := decnum.MustParse(tt.e)
		require.Equal(t, tt.want, d.Cmp(e), "cmp(%s, %s)", tt.d, tt.e)
		require.Equal(t, -tt.want, e.Cmp(d), "cmp(%s, %s)", tt.e, tt.d)
		require.Equal(t, tt.want == 0, d.Equal(e))
	}
}

func TestDecimal_CmpInt64(t *testing.T) {
	require.Equal(t, 0, decnum.MustParse("5.00").CmpInt64(5))
	require.Equal(t, -1, decnum.MustParse("4.99").CmpInt64(5))
	require.Equal(t, 1, decnum.MustParse("-2").CmpInt64(-3))
	require.True(t, decnum.MustParse("7.0").EqualInt64(7))
	require.False(t, decnum.MustParse("7.1").EqualInt64(7))
}

func TestDecimal_IntOperands(t *testing.T) {
	d := decnum.MustParse("2.5")
	require.Equal(t, "5.5", d.AddInt64(3).String())
	require.Equal(t, "-0.5", d.SubInt64(3).String())
	require.Equal(t, "7.5", d.MulInt64(3).String())
}

func TestDecimal_Shift(t *testing.T) {
	tests := []struct {
		d     string
		power int
		want  string
	}{
		{"1.5", 1, "15"},
		{"1.5", -1, "0.15"},
		{"1.5", 3, "1500"},
		{"123", -2, "1.23"},
		{"0", 5, "0"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, decnum.MustParse(tt.d).Shift(tt.power).String())
	}
}

func TestDecimal_ExactVariants(t *testing.T) {
	// Exact variants round to their own scale, not the package one.
	setScale(t, 2)
	d := decnum.MustParse("1")
	e := decnum.MustParse("3")
	q, err := d.QuoExact(e, 10)
	require.NoError(t, err)
	require.Equal(t, "0.3333333333", q.String())
	require.Equal(t, "0.33", decnum.MustQuo(d, e).String())

	s := decnum.MustParse("0.123456").AddExact(decnum.MustParse("0.111111"), 4)
	require.Equal(t, "0.2346", s.String())
}

func TestDecimal_Properties(t *testing.T) {
	setScale(t, 16)
	a := decnum.MustParse("12.3456")
	b := decnum.MustParse("-0.89")
	c := decnum.MustParse("0.001")
	ulp := decnum.MustNew(1, 16)

	// v + 0 == normalize(v), v + (-v) == 0
	require.True(t, a.Add(decnum.Decimal{}).Equal(a.Normalize()))
	require.True(t, a.Add(a.Neg()).IsZero())

	// commutativity
	require.True(t, a.Add(b).Equal(b.Add(a)))
	require.True(t, a.Mul(b).Equal(b.Mul(a)))

	// distributivity up to rounding
	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	require.LessOrEqual(t, lhs.Sub(rhs).Abs().Cmp(ulp), 0)

	// division inverse within one ulp
	q := decnum.MustQuo(a, b)
	diff := q.Mul(b).Sub(a.Normalize()).Abs()
	require.LessOrEqual(t, diff.Cmp(ulp), 0)
}
