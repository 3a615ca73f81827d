package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type payCmd struct {
	id   string
	undo bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark a transaction as paid (or unpaid with -undo)" }
func (*payCmd) Usage() string {
	return `dnb pay -id <transaction-id> [-undo]

  Flips the paid flag on a transaction. An unknown id changes nothing.
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Transaction id.")
	f.BoolVar(&p.undo, "undo", false, "Mark the transaction back as unpaid.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	openStore().MarkTransactionPaid(p.id, !p.undo)
	return subcommands.ExitSuccess
}
