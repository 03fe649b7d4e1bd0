package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a user-entered gross salary to a decimal. Thousands
// separators ("100,000", "100 000") are tolerated; anything non-numeric or
// negative is rejected with InvalidInputError.
func ParseAmount(input string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(input)
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")
	if clean == "" {
		return decimal.Zero, &InvalidInputError{Input: input}
	}
	d, err := decimal.NewFromString(clean)
	if err != nil || d.IsNegative() {
		return decimal.Zero, &InvalidInputError{Input: input}
	}
	return d, nil
}
