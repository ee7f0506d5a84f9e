package captable

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/captable/date"
)

// farFuture is a cutoff after every ledger record of the testdata.
var farFuture = date.MustParse("2100-01-01")

func marshal(t *testing.T, table *CapTable) string {
	t.Helper()
	b, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	return string(b)
}

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name string
		file string
		on   date.Date
		want string
	}{
		{
			name: "all records",
			file: "testdata/sample.csv",
			on:   farFuture,
			want: `{"date":"01/01/2100","cash_raised":165500,"total_number_of_shares":9500,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":3000,"cash_paid":60000,"ownership":31.58},` +
				`{"investor":"Don Valentine","shares":3000,"cash_paid":52000,"ownership":31.58},` +
				`{"investor":"Ann Miura-Ko","shares":2000,"cash_paid":40000,"ownership":21.05},` +
				`{"investor":"Fred Wilson","shares":1500,"cash_paid":13500,"ownership":15.79}]}`,
		},
		{
			name: "previous date",
			file: "testdata/sample.csv",
			on:   date.MustParse("2017-11-14"),
			want: `{"date":"11/14/2017","cash_raised":22000,"total_number_of_shares":2000,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":1000,"cash_paid":10000,"ownership":50},` +
				`{"investor":"Don Valentine","shares":1000,"cash_paid":12000,"ownership":50}]}`,
		},
		{
			name: "day before a record",
			file: "testdata/sample.csv",
			on:   date.MustParse("2017-11-13"),
			want: `{"date":"11/13/2017","cash_raised":10000,"total_number_of_shares":1000,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":1000,"cash_paid":10000,"ownership":100}]}`,
		},
		{
			name: "date before existing data",
			file: "testdata/sample.csv",
			on:   date.MustParse("2015-11-14"),
			want: `{"date":"11/14/2015","cash_raised":0,"total_number_of_shares":0,"ownership":[]}`,
		},
		{
			name: "special characters in investor names",
			file: "testdata/specialCharsInNames.csv",
			on:   farFuture,
			want: `{"date":"01/01/2100","cash_raised":165500,"total_number_of_shares":9500,"ownership":[` +
				`{"investor":"Sandy O'Lerner","shares":3000,"cash_paid":60000,"ownership":31.58},` +
				`{"investor":"Don M. Va$lentine","shares":3000,"cash_paid":52000,"ownership":31.58},` +
				"{\"investor\":\"Ann Mi`ura-Ko\",\"shares\":2000,\"cash_paid\":40000,\"ownership\":21.05}," +
				`{"investor":"Fred Wi+lson","shares":1500,"cash_paid":13500,"ownership":15.79}]}`,
		},
		{
			name: "case insensitive investor names",
			file: "testdata/upperAndLowerMixedName.csv",
			on:   farFuture,
			want: `{"date":"01/01/2100","cash_raised":88000,"total_number_of_shares":8000,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":4000,"cash_paid":40000,"ownership":50},` +
				`{"investor":"Don Valentine","shares":4000,"cash_paid":48000,"ownership":50}]}`,
		},
		{
			name: "crlf and blank lines",
			file: "testdata/crlf.csv",
			on:   farFuture,
			want: `{"date":"01/01/2100","cash_raised":1520,"total_number_of_shares":8000,"ownership":[` +
				`{"investor":"A","shares":3000,"cash_paid":600,"ownership":37.5},` +
				`{"investor":"B","shares":3000,"cash_paid":520,"ownership":37.5},` +
				`{"investor":"C","shares":2000,"cash_paid":400,"ownership":25}]}`,
		},
		{
			name: "large data set",
			file: "testdata/largeDataSet.csv",
			on:   farFuture,
			want: `{"date":"01/01/2100","cash_raised":22876000,"total_number_of_shares":2086000,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":1078000,"cash_paid":10780000,"ownership":51.68},` +
				`{"investor":"Don Valentine","shares":1008000,"cash_paid":12096000,"ownership":48.32}]}`,
		},
		{
			name: "future record is not validated",
			file: "testdata/futureInvalid.csv",
			on:   date.MustParse("2020-01-01"),
			want: `{"date":"01/01/2020","cash_raised":10000,"total_number_of_shares":1000,"ownership":[` +
				`{"investor":"Sandy Lerner","shares":1000,"cash_paid":10000,"ownership":100}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Generate(tc.file, tc.on, Options{})
			if err != nil {
				t.Fatalf("Generate(%q) error = %v", tc.file, err)
			}
			if got := marshal(t, table); got != tc.want {
				t.Errorf("Generate(%q) =\n%s\nwant\n%s", tc.file, got, tc.want)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		on      date.Date
		opts    Options
		wantErr error
		wantMsg string
	}{
		{"missing file", "testdata/fake.csv", farFuture, Options{}, ErrFileNotFound, "could not find testdata/fake.csv"},
		{"directory", "testdata", farFuture, Options{}, ErrFileNotFound, "could not find testdata"},
		{"invalid cash", "testdata/invalidCash.csv", farFuture, Options{}, ErrInvalidCashFormat, `line 3: cash paid was not in proper format: "12000.001"`},
		{"invalid date", "testdata/invalidDate.csv", farFuture, Options{}, ErrInvalidDateFormat, `line 3: date was not in proper format: "yesterday"`},
		{"invalid shares", "testdata/invalidShares.csv", farFuture, Options{}, ErrInvalidSharesFormat, `line 3: shares were not in proper format: "12.5"`},
		{"missing investor", "testdata/missingInvestor.csv", farFuture, Options{}, ErrMissingInvestor, "line 3: investor not specified"},
		{"shares overflow", "testdata/largeShares.csv", farFuture, Options{}, ErrOverflow, "line 3: maximum value exceeded"},
		{"cash overflow", "testdata/largeCash.csv", farFuture, Options{}, ErrOverflow, "line 3: maximum value exceeded"},
		{"strict future record", "testdata/futureInvalid.csv", date.MustParse("2020-01-01"), Options{Strict: true}, ErrInvalidSharesFormat, "line 3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Generate(tc.file, tc.on, tc.opts)
			if err == nil {
				t.Fatalf("Generate(%q) = %v, want error", tc.file, table)
			}
			if table != nil {
				t.Errorf("Generate(%q) returned a partial table along with error %v", tc.file, err)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Generate(%q) error = %v, want %v", tc.file, err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Generate(%q) error = %q, want it to contain %q", tc.file, err, tc.wantMsg)
			}
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	on := date.MustParse("2018-12-31")
	first, err := Generate("testdata/sample.csv", on, Options{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate("testdata/sample.csv", on, Options{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if a, b := marshal(t, first), marshal(t, second); a != b {
		t.Errorf("two runs differ:\n%s\n%s", a, b)
	}
}

func TestDecode(t *testing.T) {
	t.Run("header is always skipped", func(t *testing.T) {
		// the header looks like a valid record.
		ledger := "2016-04-03,5,5.00,Header\n2016-04-03,1,1.00,Body\n"
		table, err := Decode(strings.NewReader(ledger), farFuture, Options{})
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(table.Ownership) != 1 || table.Ownership[0].Investor != "Body" {
			t.Errorf("Decode() ownership = %+v, want only Body", table.Ownership)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := Decode(strings.NewReader(""), farFuture, Options{})
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if table.TotalShares != 0 || len(table.Ownership) != 0 {
			t.Errorf("Decode() = %+v, want an empty table", table)
		}
	})

	t.Run("long line", func(t *testing.T) {
		name := strings.Repeat("x", 70*1024)
		ledger := "header\n2016-04-03,1,1.00," + name + "\n2016-04-04,1,1.00,B"
		table, err := Decode(strings.NewReader(ledger), farFuture, Options{})
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(table.Ownership) != 2 || table.Ownership[0].Investor != name {
			t.Errorf("Decode() got %d investors, want the long name first and B", len(table.Ownership))
		}
	})

	t.Run("first error aborts", func(t *testing.T) {
		ledger := "header\n2016-04-03,1,1.00,A\n2016-04-03,0,1.00,B\n2016-04-03,1,x,C\n"
		_, err := Decode(strings.NewReader(ledger), farFuture, Options{})
		if !errors.Is(err, ErrInvalidSharesFormat) {
			t.Errorf("Decode() error = %v, want %v", err, ErrInvalidSharesFormat)
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		ledger := "header\n2016-04-03,10\n"
		_, err := Decode(strings.NewReader(ledger), farFuture, Options{})
		if !errors.Is(err, ErrInvalidCashFormat) {
			t.Errorf("Decode() error = %v, want %v", err, ErrInvalidCashFormat)
		}
	})

	t.Run("scenario", func(t *testing.T) {
		ledger := "header\n2020-01-01,3000,600.00,A\n2020-01-02,3000,520.00,B\n2020-01-03,2000,400.00,C\n"
		table, err := Decode(strings.NewReader(ledger), farFuture, Options{Strict: true})
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if table.TotalShares != 8000 {
			t.Errorf("TotalShares = %d, want 8000", table.TotalShares)
		}
		want := []string{"37.50%", "37.50%", "25.00%"}
		for i, o := range table.Ownership {
			if got := o.Percent.String(); got != want[i] {
				t.Errorf("Ownership[%d] = %s, want %s", i, got, want[i])
			}
		}
	})
}

func TestCapTable_PercentSum(t *testing.T) {
	// 1/3 each cannot add up to exactly 100 once rounded.
	var b bytes.Buffer
	b.WriteString("header\n")
	for _, name := range []string{"a", "b", "c"} {
		b.WriteString("2016-04-03,1,1.00," + name + "\n")
	}

	table, err := Decode(&b, farFuture, Options{})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var sum float64
	for _, o := range table.Ownership {
		sum += o.Percent.Decimal().InexactFloat64()
	}
	tolerance := 0.01 * float64(len(table.Ownership))
	if sum < 100-tolerance || sum > 100+tolerance {
		t.Errorf("ownership sums to %v, want 100 ± %v", sum, tolerance)
	}
}
