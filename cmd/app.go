// Package cmd implements the CLI application to compute cap tables.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/etnz/captable"
	"github.com/etnz/captable/date"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands are the subcommands of the captable tool.
var Commands = []subcommands.Command{
	&tableCmd{},
	&showCmd{},
	&checkCmd{},
}

// Environment variables providing defaults for the global flags.
const (
	EnvCurrency = "CAPTABLE_CURRENCY"
	EnvVerbose  = "CAPTABLE_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyFlag = flag.String("currency", "", "Currency used to display cash amounts (default $"+EnvCurrency+" or USD)")
var verboseFlag = flag.Bool("v", false, "Log diagnostics to stderr (default $"+EnvVerbose+")")

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv loads environment variables from a .env file in the working
// directory, if there is one. Variables already set are not overridden.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger().Warn().Err(err).Msg("could not load .env file")
	}
}

// displayCurrency returns the currency used to display cash amounts.
func displayCurrency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	return "USD"
}

// verbose reports whether debug logs are enabled.
func verbose() bool {
	if *verboseFlag {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// usageError is an error in the command line arguments, reported as is to the user.
type usageError string

func (e usageError) Error() string { return string(e) }

const (
	errUsage       usageError = "Please specify a path to a csv file and an optional date."
	errNoLedger    usageError = "Please specify a path to a csv file."
	errInvalidDate usageError = "Please enter a valid date."
)

// ledgerArgs reads the ledger path and the optional as-of date from the
// positional arguments. The date defaults to today.
func ledgerArgs(args []string) (path string, on date.Date, err error) {
	if len(args) == 0 || len(args) > 2 {
		return "", date.Date{}, errUsage
	}
	path = args[0]
	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return "", date.Date{}, errNoLedger
	}

	on = date.Today()
	if len(args) == 2 {
		on, err = date.ParseArg(args[1])
		if err != nil {
			logger().Debug().Err(err).Str("date", args[1]).Msg("invalid date argument")
			return "", date.Date{}, errInvalidDate
		}
	}
	return path, on, nil
}

// generate computes the cap table of the ledger at path, on date 'on'.
func generate(path string, on date.Date, strict bool) (*captable.CapTable, error) {
	log := logger().With().Str("ledger", path).Str("date", on.String()).Bool("strict", strict).Logger()
	log.Debug().Msg("computing cap table")

	start := time.Now()
	table, err := captable.Generate(path, on, captable.Options{Strict: strict})
	if err != nil {
		log.Debug().Err(err).Msg("cap table failed")
		return nil, err
	}
	log.Debug().
		Int("investors", len(table.Ownership)).
		Int64("shares", table.TotalShares).
		Dur("elapsed", time.Since(start)).
		Msg("cap table computed")
	return table, nil
}

// parseFailure prints err and returns the exit status for a failed argument parsing.
func parseFailure(err error) subcommands.ExitStatus {
	fmt.Fprintln(stderr, err)
	return subcommands.ExitUsageError
}
