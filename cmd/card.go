package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type cardCmd struct {
	name    string
	limit   string
	balance string
	dueDay  int
}

func (*cardCmd) Name() string     { return "card" }
func (*cardCmd) Synopsis() string { return "register a credit card" }
func (*cardCmd) Usage() string {
	return `dnb card -name <name> [-limit <amount>] [-balance <amount>] [-due <day>]

  Registers a credit card. The current balance is a utilization figure
  maintained by hand, not derived from transactions.
`
}

func (p *cardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Card name.")
	f.StringVar(&p.limit, "limit", "", "Credit limit.")
	f.StringVar(&p.balance, "balance", "", "Current utilization.")
	f.IntVar(&p.dueDay, "due", 1, "Billing due day of the month (1-31).")
}

func (p *cardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	limit, err := parseDecimal(p.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	balance, err := parseDecimal(p.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	created := openStore().AddCreditCard(pocket.CreditCard{
		Name:           p.name,
		Limit:          limit,
		CurrentBalance: balance,
		DueDate:        p.dueDay,
	})
	fmt.Printf("Created card %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
