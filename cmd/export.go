package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full dataset as a JSON backup" }
func (*exportCmd) Usage() string {
	return `dnb export [-o <file>]

  Writes the full dataset as indented JSON, to stdout or to a file. The
  backup is the exact persisted shape and can be restored with 'dnb
  import'.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Destination file. Defaults to stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var w io.Writer = os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := pocket.ExportData(w, openStore().Data()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Printf("Exported dataset to %s\n", p.output)
	}
	return subcommands.ExitSuccess
}
