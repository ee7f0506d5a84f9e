package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	strict bool
	raw    bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the cap table of a ledger" }
func (*showCmd) Usage() string {
	return `captable show [-strict] [-raw] <ledger.csv> [<date>]

  Displays the cap table of the ledger on the given date (today by default):
  total shares, cash raised and the ownership of each investor.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "validate every record, including records after the date")
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal styling")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, on, err := ledgerArgs(f.Args())
	if err != nil {
		return parseFailure(err)
	}

	table, err := generate(path, on, c.strict)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	md := renderer.CapTableMarkdown(table, displayCurrency())
	if c.raw {
		fmt.Fprint(stdout, md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// printMarkdown prints md styled for the terminal, or as is if it cannot be styled.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger().Debug().Err(err).Msg("could not style markdown")
	fmt.Fprint(stdout, md)
}
