package captable

import (
	"fmt"
	"iter"
	"strings"
)

// InvestorAccumulator holds the running totals of a single investor.
type InvestorAccumulator struct {
	Investor string // name as it first appeared in the ledger
	Shares   int64
	CashPaid Cents
}

// RunTotals holds the running totals across all investors.
type RunTotals struct {
	Shares   int64
	CashPaid Cents
}

// Aggregator sums transactions per investor.
//
// Investors are identified by their lowercased name, and reported in the order
// they first appeared. An Aggregator is the state of a single computation and
// is not safe for concurrent use.
type Aggregator struct {
	index     map[string]int // identity key to position in investors
	investors []InvestorAccumulator
	totals    RunTotals
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[string]int)}
}

// Add accumulates tx into its investor's totals and into the run totals.
//
// It fails with ErrOverflow if a run total exceeds the int64 range, in which
// case nothing is accumulated.
func (a *Aggregator) Add(tx Transaction) error {
	shares, ok := addInt64(a.totals.Shares, tx.Shares)
	if !ok {
		return fmt.Errorf("%w: total shares", ErrOverflow)
	}
	cash, ok := addInt64(int64(a.totals.CashPaid), int64(tx.CashPaid))
	if !ok {
		return fmt.Errorf("%w: total cash paid", ErrOverflow)
	}

	// Per investor sums are bounded by the run totals.
	key := strings.ToLower(tx.Investor)
	i, exists := a.index[key]
	if !exists {
		i = len(a.investors)
		a.index[key] = i
		a.investors = append(a.investors, InvestorAccumulator{Investor: tx.Investor})
	}
	acc := &a.investors[i]
	acc.Shares += tx.Shares
	acc.CashPaid += tx.CashPaid

	a.totals = RunTotals{Shares: shares, CashPaid: Cents(cash)}
	return nil
}

// Totals returns the run totals.
func (a *Aggregator) Totals() RunTotals { return a.totals }

// Len returns the number of distinct investors.
func (a *Aggregator) Len() int { return len(a.investors) }

// All iterates over investors in order of first appearance.
func (a *Aggregator) All() iter.Seq[InvestorAccumulator] {
	return func(yield func(InvestorAccumulator) bool) {
		for _, acc := range a.investors {
			if !yield(acc) {
				return
			}
		}
	}
}
