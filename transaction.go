package captable

import (
	"fmt"
	"strings"

	"github.com/etnz/captable/date"
)

// Ledger columns, in file order.
const (
	colDate = iota
	colShares
	colCash
	colInvestor
	numColumns
)

// Transaction is a purchase of shares for cash by an investor.
type Transaction struct {
	Date     date.Date
	Shares   int64
	CashPaid Cents
	Investor string
}

// ParseRecord validates one ledger record and returns the Transaction it
// describes.
//
// ok is false, with no error, when the transaction happened after the as-of
// date 'on': such a record does not belong to the cap table. Unless strict is
// set, the remaining fields of such a record are not validated. In strict mode
// every field is validated first, whatever the date.
//
// Missing trailing fields are read as empty, extra fields are ignored.
func ParseRecord(record []string, on date.Date, strict bool) (tx Transaction, ok bool, err error) {
	var fields [numColumns]string
	for i := range fields {
		if i < len(record) {
			fields[i] = strings.TrimSpace(record[i])
		}
	}

	tx.Date, err = date.Parse(fields[colDate])
	if err != nil {
		return Transaction{}, false, fmt.Errorf("%w: %q", ErrInvalidDateFormat, fields[colDate])
	}

	future := tx.Date.After(on)
	if future && !strict {
		return Transaction{}, false, nil
	}

	if tx.Shares, err = ParseShares(fields[colShares]); err != nil {
		return Transaction{}, false, err
	}
	if tx.CashPaid, err = ParseCash(fields[colCash]); err != nil {
		return Transaction{}, false, err
	}
	if tx.Investor = fields[colInvestor]; tx.Investor == "" {
		return Transaction{}, false, ErrMissingInvestor
	}

	if future {
		return Transaction{}, false, nil
	}
	return tx, true, nil
}
