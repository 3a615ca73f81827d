package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type goalCmd struct {
	name     string
	target   string
	deadline string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create a savings goal" }
func (*goalCmd) Usage() string {
	return `dnb goal -name <name> -target <amount> [-deadline <YYYY-MM-DD>]

  Creates a savings goal. Contributions are recorded with 'dnb contribute'.
`
}

func (p *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.StringVar(&p.target, "target", "", "Target amount to save.")
	f.StringVar(&p.deadline, "deadline", "", "Date the goal should be reached by.")
}

func (p *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -target are required.")
		return subcommands.ExitUsageError
	}
	target, err := parseAmount(p.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	g := pocket.Goal{Name: p.name, TargetAmount: target}
	if p.deadline != "" {
		deadline, err := pocket.ParseDate(p.deadline)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		g.Deadline = deadline
	}

	created := openStore().AddGoal(g)
	fmt.Printf("Created goal %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
