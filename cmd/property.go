package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type propertyCmd struct {
	name  string
	value string
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "register a valued property" }
func (*propertyCmd) Usage() string {
	return `dnb property -name <name> -value <amount>

  Registers a property counted among the assets of the balance sheet.
`
}

func (p *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Property name.")
	f.StringVar(&p.value, "value", "", "Estimated value.")
}

func (p *propertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.value == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -value are required.")
		return subcommands.ExitUsageError
	}
	value, err := parseAmount(p.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	created := openStore().AddProperty(pocket.Property{Name: p.name, Value: value})
	fmt.Printf("Created property %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
