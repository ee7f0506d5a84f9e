package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/captable"
)

// CapTable is the cap table prepared for display: amounts are formatted in
// the display currency and names are escaped for markdown tables.
type CapTable struct {
	Date        string
	TotalShares string
	CashRaised  string
	Investors   []CapTableInvestor
}

// CapTableInvestor is a single line of the ownership table.
type CapTableInvestor struct {
	Name      string
	Shares    string
	CashPaid  string
	Ownership string
}

// NewCapTable creates a CapTable ready to render from a computed cap table.
func NewCapTable(t *captable.CapTable, currency string) *CapTable {
	c := &CapTable{
		Date:        t.Date.USString(),
		TotalShares: strconv.FormatInt(t.TotalShares, 10),
		CashRaised:  t.CashRaised.Format(currency),
		Investors:   make([]CapTableInvestor, 0, len(t.Ownership)),
	}
	for _, o := range t.Ownership {
		c.Investors = append(c.Investors, CapTableInvestor{
			Name:      escapeCell(o.Investor),
			Shares:    strconv.FormatInt(o.Shares, 10),
			CashPaid:  o.CashPaid.Format(currency),
			Ownership: o.Percent.String(),
		})
	}
	return c
}

// CapTableMarkdown renders a computed cap table as markdown.
func CapTableMarkdown(t *captable.CapTable, currency string) string {
	return RenderCapTable(NewCapTable(t, currency))
}

// cellEscaper escapes the characters that would split a table cell or style its text.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
)

// escapeCell makes s safe inside a markdown table cell.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
