package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	year  int
	month int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the monthly dashboard summary" }
func (*summaryCmd) Usage() string {
	return `dnb summary [-y <year>] [-m <month>]

  Shows the month's paid income and expenses, pending expenses, balance,
  invested capital and market value, and the expense breakdown by
  category. Defaults to the current month.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "y", 0, "Year of the report. Defaults to the current year.")
	f.IntVar(&p.month, "m", 0, "Month of the report (1-12). Defaults to the current month.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := pocket.Today()
	year, month := p.year, time.Month(p.month)
	if year == 0 {
		year = today.Year()
	}
	if p.month == 0 {
		month = today.Month()
	} else if p.month < 1 || p.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d.\n", p.month)
		return subcommands.ExitUsageError
	}

	data := openStore().Data()
	s := pocket.NewSummary(data, year, month)
	lang := data.Language

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary %04d-%02d\n\n", s.Year, int(s.Month))
	fmt.Fprintf(&b, "- Income: %s\n", pocket.FormatAmount(s.Income, lang))
	fmt.Fprintf(&b, "- Expenses: %s\n", pocket.FormatAmount(s.Expenses, lang))
	fmt.Fprintf(&b, "- Pending expenses: %s\n", pocket.FormatAmount(s.PendingExpenses, lang))
	fmt.Fprintf(&b, "- Balance: %s\n", pocket.FormatAmount(s.Balance, lang))
	fmt.Fprintf(&b, "- Invested: %s\n", pocket.FormatAmount(s.Invested, lang))
	fmt.Fprintf(&b, "- Market value: %s\n", pocket.FormatAmount(s.MarketValue, lang))

	if len(s.ByCategory) > 0 {
		b.WriteString("\n## Expenses by category\n\n")
		b.WriteString("| Category | Amount |\n|---|---:|\n")
		for _, c := range s.ByCategory {
			fmt.Fprintf(&b, "| %s | %s |\n", c.Category, pocket.FormatAmount(c.Amount, lang))
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
