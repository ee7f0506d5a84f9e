package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validate every record of a ledger"
}
func (*checkCmd) Usage() string {
	return `captable check <ledger.csv> [<date>]

  Validates every record of the ledger, including records dated after the
  given date (today by default), and prints a summary of the cap table.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, on, err := ledgerArgs(f.Args())
	if err != nil {
		return parseFailure(err)
	}

	table, err := generate(path, on, true)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ ledger %q is valid: %d investors, %d shares, %s raised as of %s.\n",
		path,
		len(table.Ownership),
		table.TotalShares,
		table.CashRaised.Format(displayCurrency()),
		table.Date.USString(),
	)
	return subcommands.ExitSuccess
}
