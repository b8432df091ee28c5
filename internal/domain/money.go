package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer US cents.
// Results crossing a package boundary carry money as Cents, never float dollars.
type Cents int64

var centsPerDollar = decimal.NewFromInt(100)

// DollarsToCents converts a dollar amount to cents with a single rounding step.
func DollarsToCents(dollars float64) Cents {
	return DecimalToCents(decimal.NewFromFloat(dollars))
}

// DecimalToCents rounds a dollar amount half away from zero to whole cents.
func DecimalToCents(dollars decimal.Decimal) Cents {
	return Cents(dollars.Mul(centsPerDollar).Round(0).IntPart())
}

// Decimal returns the amount in dollars.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Dollars returns the amount as float dollars for display arithmetic.
func (c Cents) Dollars() float64 {
	return c.Decimal().InexactFloat64()
}

func (c Cents) String() string {
	return FormatDecimal(c.Decimal())
}

// FormatDecimal renders a dollar amount rounded to cents, e.g. "$1,250.00".
func FormatDecimal(dollars decimal.Decimal) string {
	s := dollars.StringFixed(2)
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupDigits(whole) + "." + frac
}

// FormatDollars renders a float dollar amount for calculation traces.
func FormatDollars(d float64) string {
	return FormatDecimal(decimal.NewFromFloat(d))
}

// FormatPounds renders a weight with thousands separators, e.g. "95,000 lbs".
func FormatPounds(lbs float64) string {
	n := int64(math.Round(lbs))
	if n < 0 {
		return "-" + groupDigits(strconv.FormatInt(-n, 10)) + " lbs"
	}
	return groupDigits(strconv.FormatInt(n, 10)) + " lbs"
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
