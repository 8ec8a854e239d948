package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Unavailable is displayed in place of a missing price.
const Unavailable = "Unavailable"

// maxDigits bounds the widening in DigitFormat; float64 never needs more.
const maxDigits = 340

// DigitFormat formats v with at least minDigits decimals. When the shown
// decimals are all zero but v is not, precision is widened until the output
// reads back as v, so tiny prices never show as 0.00.
//
//	DigitFormat(0.001, 2)   == "0.001"
//	DigitFormat(0.011, 2)   == "0.01"
//	DigitFormat(123.011, 2) == "123.01"
func DigitFormat(v float64, minDigits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	res := d.StringFixed(int32(minDigits))
	if minDigits <= 0 {
		return res
	}

	rounded := d.Round(int32(minDigits))
	if rounded.Equal(d) || !rounded.Sub(rounded.Truncate(0)).IsZero() {
		return res
	}
	for i := minDigits + 1; i <= maxDigits; i++ {
		res = d.StringFixed(int32(i))
		if decimal.RequireFromString(res).Equal(d) {
			return res
		}
	}
	return res
}

// WithComma groups the integer part of a formatted number with commas.
func WithComma(s string) string {
	intPart, fraction, hasFraction := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	grouped := humanize.Comma(n)
	if intPart == "-0" {
		grouped = "-0"
	}
	if !hasFraction {
		return grouped
	}
	return grouped + "." + fraction
}

// FormatUSD renders a price as "$1,234.56", or Unavailable.
func FormatUSD(p catalog.Price, minDigits int) string {
	if !p.Valid {
		return Unavailable
	}
	return "$" + WithComma(DigitFormat(p.USD, minDigits))
}

// FormatDiff renders a Diff result as a rounded percentage, e.g. "-42%".
func FormatDiff(diff float64, ok bool) string {
	if !ok {
		return Unavailable
	}
	return fmt.Sprintf("%.0f%%", diff*100)
}
