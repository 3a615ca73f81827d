package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type categoryCmd struct {
	add string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list category suggestions or add a custom one" }
func (*categoryCmd) Usage() string {
	return `dnb category [-add <name>]

  Without flags, lists the suggested categories: the built-in set followed
  by the custom ones. With -add, records a new custom category. Names are
  de-duplicated; transactions may still carry any free-form category.
`
}

func (p *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Custom category name to record.")
}

func (p *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	if p.add != "" {
		store.AddCustomCategory(p.add)
	}

	var b strings.Builder
	for _, c := range store.Data().Categories() {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
