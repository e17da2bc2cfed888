package math_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decnum/decnum"
	"github.com/decnum/decnum/math"
)

func TestSin(t *testing.T) {
	setScale(t, 16)
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"0.5", "0.4794255386042030"},
		{"1", "0.8414709848078965"},
		{"2", "0.9092974268256817"},
		{"3", "0.1411200080598672"},
		{"-1.2", "-0.9320390859672263"},
		{"10", "-0.5440211108893698"},
		{"100", "-0.5063656411097588"},
		{"1.5707963267948966", "1.0000000000000000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, math.Sin(decnum.MustParse(tt.x)).String(), "sin(%s)", tt.x)
	}
}

func TestCos(t *testing.T) {
	setScale(t, 16)
	tests := []struct {
		x, want string
	}{
		{"0", "1"},
		{"0.5", "0.8775825618903727"},
		{"1", "0.5403023058681397"},
		{"2", "-0.4161468365471424"},
		{"3", "-0.9899924966004455"},
		{"-1.2", "0.3623577544766736"},
		{"10", "-0.8390715290764525"},
		{"100", "0.8623188722876839"},
		{"1.5707963267948966", "0"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, math.Cos(decnum.MustParse(tt.x)).String(), "cos(%s)", tt.x)
	}
}

func TestTan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setScale(t, 16)
		tests := []struct {
			x, want string
		}{
			{"0.5", "0.5463024898437905"},
			{"1", "1.5574077246549022"},
			{"2", "-2.1850398632615190"},
			{"3", "-0.1425465430742778"},
			{"-1.2", "-2.5721516221263189"},
			{"10", "0.6483608274590867"},
			{"100", "-0.5872139151569291"},
		}
		for _, tt := range tests {
			z, err := math.Tan(decnum.MustParse(tt.x))
			require.NoError(t, err)
			require.Equal(t, tt.want, z.String(), "tan(%s)", tt.x)
		}
	})
	t.Run("error", func(t *testing.T) {
		// The cosine of π/2 truncated to 16 digits rounds to zero at
		// scale 16, so the tangent has no representable value there.
		_, err := math.Tan(decnum.MustParse("1.5707963267948966"))
		require.Error(t, err)
		require.True(t, decnum.ErrDivisionByZero.Has(err))
	})
}

func TestSinCos_Identity(t *testing.T) {
	setScale(t, 16)
	// sin² + cos² stays within 10^(-scale+2) of one.
	eps := decnum.MustNew(1, 14)
	one := decnum.NewFromInt64(1)
	for _, s := range []string{"0.1", "0.7", "1", "2.5", "-3", "12.345"} {
		x := decnum.MustParse(s)
		sin, cos := math.Sin(x), math.Cos(x)
		sum := sin.Mul(sin).Add(cos.Mul(cos))
		require.LessOrEqual(t, sum.Sub(one).Abs().Cmp(eps), 0, "sin²+cos² at %s", s)
	}
}
