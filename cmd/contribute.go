package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type contributeCmd struct {
	id     string
	amount string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add a contribution to a savings goal" }
func (*contributeCmd) Usage() string {
	return `dnb contribute -id <goal-id> -amount <value>

  Adds the amount to the goal's saved total. The total is allowed to
  exceed the target.
`
}

func (p *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Goal id.")
	f.StringVar(&p.amount, "amount", "", "Contribution amount.")
}

func (p *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	data := store.Data()
	for _, g := range data.Goals {
		if g.ID != p.id {
			continue
		}
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		store.UpdateGoal(g)
		fmt.Printf("Goal %q now at %s of %s\n", g.Name,
			pocket.FormatAmount(g.CurrentAmount, data.Language),
			pocket.FormatAmount(g.TargetAmount, data.Language))
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: no goal with id %q.\n", p.id)
	return subcommands.ExitFailure
}
