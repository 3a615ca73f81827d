package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	kind string
	id   string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record by kind and id" }
func (*deleteCmd) Usage() string {
	return `dnb delete -kind <kind> -id <id>

  Deletes one record. Kinds: tx, account, card, investment, property,
  debt. Deleting an account or card detaches it from its transactions but
  never deletes them. Unknown ids change nothing.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "", "Kind of record to delete.")
	f.StringVar(&p.id, "id", "", "Record id.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.kind == "" || p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -kind and -id are required.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	switch p.kind {
	case "tx", "transaction":
		store.DeleteTransaction(p.id)
	case "account":
		store.DeleteAccount(p.id)
	case "card":
		store.DeleteCreditCard(p.id)
	case "investment":
		store.DeleteInvestment(p.id)
	case "property":
		store.DeleteProperty(p.id)
	case "debt":
		store.DeleteDebt(p.id)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q.\n", p.kind)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
