package captable

import (
	"github.com/etnz/captable/date"
)

// CapTable reports who owns what on a given date.
type CapTable struct {
	Date        date.Date
	CashRaised  Cents
	TotalShares int64
	Ownership   []Ownership // in order of first appearance in the ledger
}

// Ownership is a single investor line of the cap table.
type Ownership struct {
	Investor string
	Shares   int64
	CashPaid Cents
	Percent  Percent
}

// CapTable builds the cap table on date 'on' from the accumulated totals.
func (a *Aggregator) CapTable(on date.Date) *CapTable {
	t := &CapTable{
		Date:        on,
		CashRaised:  a.totals.CashPaid,
		TotalShares: a.totals.Shares,
		Ownership:   make([]Ownership, 0, len(a.investors)),
	}
	if a.totals.Shares == 0 {
		return t
	}
	for acc := range a.All() {
		t.Ownership = append(t.Ownership, Ownership{
			Investor: acc.Investor,
			Shares:   acc.Shares,
			CashPaid: acc.CashPaid,
			Percent:  ratio(acc.Shares, a.totals.Shares),
		})
	}
	return t
}

// MarshalJSON encodes the cap table with its date as MM/DD/YYYY and cash
// amounts in major units.
func (t *CapTable) MarshalJSON() ([]byte, error) {
	ownership := t.Ownership
	if ownership == nil {
		ownership = []Ownership{}
	}
	var w jsonObjectWriter
	w.Append("date", t.Date.USString())
	w.Append("cash_raised", t.CashRaised.Decimal())
	w.Append("total_number_of_shares", t.TotalShares)
	w.Append("ownership", ownership)
	return w.MarshalJSON()
}

func (o Ownership) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("investor", o.Investor)
	w.Append("shares", o.Shares)
	w.Append("cash_paid", o.CashPaid.Decimal())
	w.Append("ownership", o.Percent)
	return w.MarshalJSON()
}
