package captable

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseShares parses a strictly positive number of shares. Only plain digits
// are accepted, without sign and without leading zero.
func ParseShares(str string) (int64, error) {
	if !isDigits(str) || str[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSharesFormat, str)
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: shares %q", ErrOverflow, str)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSharesFormat, str)
	}
	return n, nil
}
