package captable

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Cents is a cash amount in minor units, 1/100 of the currency.
type Cents int64

// ParseCash parses a non-negative amount with at most two fractional digits,
// like "10", "1.4", "3.23" or ".5", into cents.
func ParseCash(str string) (Cents, error) {
	whole, frac, hasDot := strings.Cut(str, ".")
	switch {
	case hasDot && (len(frac) == 0 || len(frac) > 2 || !isDigits(frac)):
		return 0, fmt.Errorf("%w: %q", ErrInvalidCashFormat, str)
	case whole == "" && !hasDot:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCashFormat, str)
	case whole != "" && !isDigits(whole):
		return 0, fmt.Errorf("%w: %q", ErrInvalidCashFormat, str)
	}

	var fracCents int64
	for i := range 2 {
		fracCents *= 10
		if i < len(frac) {
			fracCents += int64(frac[i] - '0')
		}
	}

	var units int64
	if whole != "" {
		var err error
		units, err = strconv.ParseInt(whole, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: cash %q", ErrOverflow, str)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCashFormat, str)
		}
	}
	if units > (math.MaxInt64-fracCents)/100 {
		return 0, fmt.Errorf("%w: cash %q", ErrOverflow, str)
	}
	return Cents(units*100 + fracCents), nil
}

// Decimal returns the exact amount in major units.
func (c Cents) Decimal() decimal.Decimal { return decimal.New(int64(c), -2) }

// Format returns the amount formatted for display in the given currency, e.g. "$1,234.50".
func (c Cents) Format(currency string) string {
	return money.New(int64(c), currency).Display()
}

// String returns the amount in major units, without currency.
func (c Cents) String() string { return c.Decimal().StringFixed(2) }

// isDigits reports whether s is a non empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// addInt64 returns a+b for non-negative operands, ok is false if the sum overflows.
func addInt64(a, b int64) (sum int64, ok bool) {
	if b > math.MaxInt64-a {
		return a, false
	}
	return a + b, true
}
