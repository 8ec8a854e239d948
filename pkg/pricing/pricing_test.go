package pricing

import (
	"testing"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedCostOnDemand(t *testing.T) {
	q := Quote{Hourly: catalog.USD(0.10)}
	cost := ExpectedCost(q, 0.5, 2)
	require.True(t, cost.Valid)
	assert.InDelta(t, 876.0, cost.USD, 1e-9)
}

func TestExpectedCostReserved(t *testing.T) {
	cases := []struct {
		name  string
		quote Quote
		lease int
		want  float64
	}{
		{
			name:  "1yr commitment charged every year",
			quote: Quote{Contract: catalog.ContractLength1Year, Hourly: catalog.USD(0.08), Commitment: catalog.USD(100)},
			lease: 3,
			want:  3*8760*0.08 + 300,
		},
		{
			name:  "3yr commitment charged per started block",
			quote: Quote{Contract: catalog.ContractLength3Year, Hourly: catalog.USD(0), Commitment: catalog.USD(250)},
			lease: 4,
			want:  500,
		},
		{
			name:  "3yr commitment within one block",
			quote: Quote{Contract: catalog.ContractLength3Year, Hourly: catalog.USD(0.01), Commitment: catalog.USD(250)},
			lease: 3,
			want:  3*8760*0.01 + 250,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cost := ExpectedCost(tc.quote, 0.25, tc.lease)
			require.True(t, cost.Valid)
			assert.InDelta(t, tc.want, cost.USD, 1e-9)
		})
	}
}

func TestExpectedCostReservedIgnoresUtilization(t *testing.T) {
	q := Quote{Contract: catalog.ContractLength1Year, Hourly: catalog.USD(0.08), Commitment: catalog.USD(100)}
	full := ExpectedCost(q, 1, 3)
	partial := ExpectedCost(q, 0.1, 3)
	assert.InDelta(t, 2402.4, full.USD, 1e-9)
	assert.Equal(t, full, partial)
}

func TestExpectedCostMissingPrices(t *testing.T) {
	assert.False(t, ExpectedCost(Quote{}, 1, 1).Valid)
	q := Quote{Contract: catalog.ContractLength1Year, Hourly: catalog.USD(0.1)}
	assert.False(t, ExpectedCost(q, 1, 1).Valid)
}

func TestDiff(t *testing.T) {
	diff, ok := Diff(catalog.USD(438), catalog.USD(0.1), 1, 1)
	require.True(t, ok)
	assert.InDelta(t, -0.5, diff, 1e-9)

	_, ok = Diff(catalog.USD(438), catalog.Price{}, 1, 1)
	assert.False(t, ok)

	_, ok = Diff(catalog.USD(438), catalog.USD(0), 1, 1)
	assert.False(t, ok)
}

func TestDigitFormat(t *testing.T) {
	cases := []struct {
		v    float64
		min  int
		want string
	}{
		{0.001, 2, "0.001"},
		{0.011, 2, "0.01"},
		{123.011, 2, "123.01"},
		{5, 2, "5.00"},
		{0, 2, "0.00"},
		{0.000015, 3, "0.000015"},
		{1234.56, 0, "1235"},
		{0.4, 0, "0"},
		{0.017, 3, "0.017"},
		// Only an all-zero fraction widens.
		{0.1004, 3, "0.100"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DigitFormat(tc.v, tc.min), "DigitFormat(%v, %d)", tc.v, tc.min)
	}
}

func TestWithComma(t *testing.T) {
	assert.Equal(t, "1,234,567.891", WithComma("1234567.891"))
	assert.Equal(t, "876", WithComma("876"))
	assert.Equal(t, "-12,345", WithComma("-12345"))
	assert.Equal(t, "abc", WithComma("abc"))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$2,402.40", FormatUSD(catalog.USD(2402.4), 2))
	assert.Equal(t, Unavailable, FormatUSD(catalog.Price{}, 2))
	assert.Equal(t, "-50%", FormatDiff(-0.5, true))
	assert.Equal(t, Unavailable, FormatDiff(0, false))
}
