package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type accountCmd struct {
	name        string
	balance     string
	institution string
	accType     string
	color       string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "register a bank account" }
func (*accountCmd) Usage() string {
	return `dnb account -name <name> [-balance <amount>] [-institution <name>] [-type <type>] [-color <hex>]

  Registers a bank account. The initial balance may be negative; current
  balances are derived from it and the paid transactions settled against
  the account.
`
}

func (p *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Account name.")
	f.StringVar(&p.balance, "balance", "", "Initial balance, signed. Defaults to zero.")
	f.StringVar(&p.institution, "institution", "", "Holding institution.")
	f.StringVar(&p.accType, "type", "checking", "Account type label.")
	f.StringVar(&p.color, "color", "", "Display color.")
}

func (p *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	balance, err := parseDecimal(p.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	created := openStore().AddAccount(pocket.Account{
		Name:           p.name,
		InitialBalance: balance,
		Institution:    p.institution,
		Type:           p.accType,
		Color:          p.color,
	})
	fmt.Printf("Created account %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
