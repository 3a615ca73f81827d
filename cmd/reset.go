package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the dataset back to empty" }
func (*resetCmd) Usage() string {
	return `dnb reset -yes

  Erases every record and persists an empty dataset. Export a backup
  first if in doubt.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Confirm erasing all data.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.yes {
		fmt.Fprintln(os.Stderr, "Refusing to erase without -yes.")
		return subcommands.ExitUsageError
	}
	openStore().Reset()
	fmt.Println("Dataset erased.")
	return subcommands.ExitSuccess
}
