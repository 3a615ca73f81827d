package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type debtCmd struct {
	name   string
	amount string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "register an outstanding debt" }
func (*debtCmd) Usage() string {
	return `dnb debt -name <name> -amount <remaining>

  Registers a debt counted among the liabilities of the balance sheet.
`
}

func (p *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Debt name.")
	f.StringVar(&p.amount, "amount", "", "Remaining amount owed.")
}

func (p *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	created := openStore().AddDebt(pocket.Debt{Name: p.name, RemainingAmount: amount})
	fmt.Printf("Created debt %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
