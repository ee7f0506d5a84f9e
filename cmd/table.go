package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/captable"
	"github.com/google/subcommands"
)

type tableCmd struct {
	strict bool
	query  string
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "print the cap table of a ledger as JSON" }
func (*tableCmd) Usage() string {
	return `captable table [-strict] [-q <jsonpath>] <ledger.csv> [<date>]

  Computes the cap table of the ledger on the given date (today by default)
  and prints it as JSON.

Usage Examples:
# Cap table as of the end of 2017.
$ captable table ledger.csv 2017-12-31

# Name of the first investor.
$ captable table -q '$.ownership[0].investor' ledger.csv

`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "validate every record, including records after the date")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the result")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, on, err := ledgerArgs(f.Args())
	if err != nil {
		return parseFailure(err)
	}

	table, err := generate(path, on, c.strict)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	out, err := encodeJSON(table, c.query)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// encodeJSON returns the indented JSON of the cap table, or of the part
// selected by the JSONPath query if it is not empty.
func encodeJSON(table *captable.CapTable, query string) ([]byte, error) {
	raw, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("could not encode cap table: %w", err)
	}
	if query == "" {
		var b bytes.Buffer
		if err := json.Indent(&b, raw, "", "  "); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}

	// numbers are kept as written
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	selected, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return json.MarshalIndent(selected, "", "  ")
}
