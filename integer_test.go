package decnum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBint_RshHalfEven(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 5, "0"},
		{"12345", 0, "12345"},
		{"12345", 1, "1234"}, // 4.5 ties to even 4
		{"12355", 1, "1236"}, // 5.5 ties to even 6
		{"12349", 1, "1235"},
		{"12341", 1, "1234"},
		{"15", 1, "2"},
		{"25", 1, "2"},
		{"35", 1, "4"},
		{"5", 1, "0"},
		{"151", 2, "2"},
		{"149", 2, "1"},
		{"99999999999999999999995", 1, "10000000000000000000000"},
	}
	for _, tt := range tests {
		x := new(bint)
		require.True(t, x.setString(tt.x))
		z := new(bint)
		z.rshHalfEven(x, tt.shift)
		require.Equal(t, tt.want, z.string(), "rshHalfEven(%s, %d)", tt.x, tt.shift)
	}
}

func TestBint_RshDown(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"12399", 2, "123"},
		{"99", 2, "0"},
		{"12399", 0, "12399"},
	}
	for _, tt := range tests {
		x := new(bint)
		require.True(t, x.setString(tt.x))
		z := new(bint)
		z.rshDown(x, tt.shift)
		require.Equal(t, tt.want, z.string())
	}
}

func TestBint_Sqrt(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"8", "2"},
		{"9", "3"},
		{"99", "9"},
		{"100", "10"},
		{"101", "10"},
		{"152415787532388367501905199875019052100", "12345678901234567890"},
		{"152415787532388367501905199875019052099", "12345678901234567889"},
		{"200000000000000000000000000000000000000000000000000000000000",
			"447213595499957939281834733746"},
	}
	for _, tt := range tests {
		x := new(bint)
		require.True(t, x.setString(tt.x))
		z := new(bint)
		z.sqrt(x)
		require.Equal(t, tt.want, z.string(), "sqrt(%s)", tt.x)
	}
}

func TestBint_LshPrec(t *testing.T) {
	x := new(bint)
	require.True(t, x.setString("12345"))
	require.Equal(t, 5, x.prec())

	z := new(bint)
	z.lsh(x, 70) // beyond the cached powers of ten
	require.Equal(t, 75, z.prec())
	require.Equal(t, "12345", z.string()[:5])
}
