package captable

import "errors"

// Errors returned while computing a cap table. They are wrapped with context
// (file path, line number, offending value), use errors.Is to classify them.
var (
	ErrFileNotFound        = errors.New("could not find")
	ErrInvalidDateFormat   = errors.New("date was not in proper format")
	ErrInvalidSharesFormat = errors.New("shares were not in proper format")
	ErrInvalidCashFormat   = errors.New("cash paid was not in proper format")
	ErrMissingInvestor     = errors.New("investor not specified")
	ErrOverflow            = errors.New("maximum value exceeded while calculating table")
)
