package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
	yes   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the dataset with a JSON backup" }
func (*importCmd) Usage() string {
	return `dnb import -i <file> [-yes]

  Validates a backup file and replaces the whole dataset with it. The
  replacement only happens with -yes; without it the command reports what
  the backup contains and changes nothing.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Backup file to import.")
	f.BoolVar(&p.yes, "yes", false, "Confirm replacing the current dataset.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	data, err := pocket.ImportData(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Backup holds %d transactions, %d goals, %d accounts, %d cards, %d investments.\n",
		len(data.Transactions), len(data.Goals), len(data.Accounts),
		len(data.CreditCards), len(data.Investments))
	if !p.yes {
		fmt.Println("Re-run with -yes to replace the current dataset.")
		return subcommands.ExitSuccess
	}

	openStore().Replace(data)
	fmt.Println("Dataset replaced.")
	return subcommands.ExitSuccess
}
