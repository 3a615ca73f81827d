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

type txCmd struct {
	year    int
	month   int
	pending bool
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded transactions" }
func (*txCmd) Usage() string {
	return `dnb tx [-y <year> -m <month>] [-pending] [-head <n>] [-tail <n>]

  Lists transactions, optionally restricted to one month, to unpaid
  records, or to the first/last N entries.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "y", 0, "Restrict to this year.")
	f.IntVar(&p.month, "m", 0, "Restrict to this month (1-12), requires -y.")
	f.BoolVar(&p.pending, "pending", false, "Show only unpaid transactions.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	data := openStore().Data()

	var transactions []pocket.Transaction
	for _, tx := range data.Transactions {
		if p.year != 0 && tx.Date.Year() != p.year {
			continue
		}
		if p.month != 0 && tx.Date.Month() != time.Month(p.month) {
			continue
		}
		if p.pending && tx.Paid {
			continue
		}
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	var b strings.Builder
	b.WriteString("| Date | Type | Description | Amount | Paid | Id |\n")
	b.WriteString("|---|---|---|---:|---|---|\n")
	for _, tx := range transactions {
		paid := " "
		if tx.Paid {
			paid = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Type, tx.Description,
			pocket.FormatAmount(tx.Amount, data.Language), paid, tx.ID)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
