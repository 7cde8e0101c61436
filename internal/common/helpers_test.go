package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTokenAmount(t *testing.T) {
	tests := []struct {
		name            string
		amount          string
		decimals        int
		displayDecimals int
		want            string
	}{
		{"50 cCOP", "50000000000000000000", 18, 2, "50.00"},
		{"500 cCOP", "500000000000000000000", 18, 2, "500.00"},
		{"zero", "0", 18, 2, "0.00"},
		{"one wei", "1", 18, 2, "0.00"},
		{"small fee", "100000000000000", 18, 4, "0.0001"},
		{"rounds up", "155", 2, 1, "1.6"},
		{"rounds down", "154", 2, 1, "1.5"},
		{"carry into whole", "999", 2, 1, "10.0"},
		{"no display decimals", "150000000000000000000", 18, 0, "150"},
		{"negative", "-50000000000000000000", 18, 2, "-50.00"},
		{"negative rounds to zero", "-1", 18, 2, "0.00"},
		{"non numeric", "abc", 18, 2, "0"},
		{"empty", "", 18, 2, "0"},
		{"decimal point rejected", "1.5", 18, 2, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTokenAmount(tt.amount, tt.decimals, tt.displayDecimals)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCOP(t *testing.T) {
	assert.Equal(t, "$50.000 COP", FormatCOP(50000))
	assert.Equal(t, "$1.234.567 COP", FormatCOP(1234567))
	assert.Equal(t, "$0 COP", FormatCOP(0))
	assert.Equal(t, "$0 COP", FormatCOP(math.NaN()))
	assert.Equal(t, "$0 COP", FormatCOP(math.Inf(1)))
	assert.Equal(t, "-$1.500 COP", FormatCOP(-1500))
	assert.Equal(t, "$150 COP", FormatCOP(150.4))
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "0x742d...bEb0", ShortenAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"))
	assert.Equal(t, "0x1234...5678", ShortenAddress("0x12345678"))
	assert.Equal(t, "0x123456", ShortenAddress("0x123456"))
	assert.Equal(t, "", ShortenAddress(""))
}

func TestCopTokenUnitsRoundTrip(t *testing.T) {
	for _, cop := range []float64{0, 1, 150.5, 50000, 1234567.89} {
		units := CopToTokenUnits(cop, TokenDecimals)
		got := TokenUnitsToCOP(units, TokenDecimals)
		assert.InDelta(t, cop, got, cop*1e-9+1e-9, "cop=%v units=%s", cop, units)
	}
}

func TestCopToTokenUnitsInvalid(t *testing.T) {
	assert.Equal(t, "0", CopToTokenUnits(math.NaN(), 18))
	assert.Equal(t, float64(0), TokenUnitsToCOP("not-a-number", 18))
}

func TestGenerateMockAddress(t *testing.T) {
	addr := GenerateMockAddress()
	require.Len(t, addr, 42)
	assert.True(t, IsValidAddress(addr))
	assert.NotEqual(t, addr, GenerateMockAddress())
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"))
	assert.False(t, IsValidAddress("0x742d"))
	assert.False(t, IsValidAddress("742d35Cc6634C0532925a3b844Bc9e7595f0bEb000"))
	assert.False(t, IsValidAddress("0xZZ2d35Cc6634C0532925a3b844Bc9e7595f0bEb0"))
}

func TestDateFormatting(t *testing.T) {
	ts := time.Date(2025, time.January, 2, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "2 ene 2025, 14:30", FormatDateTime(ts))
	assert.Equal(t, "2 de enero de 2025", FormatDate(ts))
	assert.Equal(t, "14:30:05", FormatTime(ts))
}
