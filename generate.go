package captable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/captable/date"
)

// Options tunes the ledger validation.
type Options struct {
	// Strict validates every field of every record, including records dated
	// after the as-of date that are excluded from the table anyway.
	Strict bool
}

// Generate reads the ledger file at path and computes the cap table on date 'on'.
//
// The path must be an existing regular file, otherwise the error wraps
// ErrFileNotFound.
func Generate(path string, on date.Date, opts Options) (*CapTable, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, on, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode reads a ledger from r and computes the cap table on date 'on'.
//
// The first line is a header and is skipped. Lines have no length limit.
// Fields are separated by commas, quoting is not supported. Blank lines are
// tolerated anywhere instead of being reported as an invalid date. The first
// invalid record aborts the computation; the error names its line.
func Decode(r io.Reader, on date.Date, opts Options) (*CapTable, error) {
	agg := NewAggregator()
	br := bufio.NewReader(r)

	line := 0
	for eof := false; !eof; {
		text, err := br.ReadString('\n')
		switch {
		case err == io.EOF:
			eof = true
		case err != nil:
			return nil, fmt.Errorf("could not read ledger: %w", err)
		}
		if text == "" {
			continue // end of input
		}
		line++
		if line == 1 {
			continue // header
		}
		text = strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		tx, ok, err := ParseRecord(strings.Split(text, ","), on, opts.Strict)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		if err := agg.Add(tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return agg.CapTable(on), nil
}
