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

type calendarCmd struct {
	year  int
	month int
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show the month's transactions day by day" }
func (*calendarCmd) Usage() string {
	return `dnb calendar [-y <year>] [-m <month>]

  Buckets the month's transactions by day: unpaid records on their due
  date, paid ones on their transaction date. Defaults to the current
  month.
`
}

func (p *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "y", 0, "Year of the report. Defaults to the current year.")
	f.IntVar(&p.month, "m", 0, "Month of the report (1-12). Defaults to the current month.")
}

func (p *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	lang := data.Language

	var b strings.Builder
	fmt.Fprintf(&b, "# Calendar %04d-%02d\n", year, int(month))
	for _, day := range pocket.NewCalendar(data, year, month) {
		fmt.Fprintf(&b, "\n## Day %d", day.Day)
		if !day.Income.IsZero() {
			fmt.Fprintf(&b, " (+%s)", pocket.FormatAmount(day.Income, lang))
		}
		if !day.Expenses.IsZero() {
			fmt.Fprintf(&b, " (-%s)", pocket.FormatAmount(day.Expenses, lang))
		}
		b.WriteString("\n\n")
		for _, tx := range day.Transactions {
			status := "paid"
			if !tx.Paid {
				status = "due"
			}
			fmt.Fprintf(&b, "- %s %s, %s (%s)\n", tx.Description,
				pocket.FormatAmount(tx.Amount, lang), status, tx.Type)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
