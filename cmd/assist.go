package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/doisnobolsoapp/pocket"
	"github.com/doisnobolsoapp/pocket/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the bookkeeper assistant"
}
func (*assistCmd) Usage() string {
	return `dnb assist [initial question]

  Starts a chat with the AI bookkeeper. It can answer from the monthly
  figures and draft transactions from plain descriptions; drafted
  transactions are listed at the end of the session and only recorded
  after an explicit confirmation.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	store := openStore()
	bookkeeper, proposals := agent.NewBookkeeper(store.Data)
	a := agent.New(os.Stdout, os.Stdin, bookkeeper)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	drafted := proposals.Drain()
	if len(drafted) == 0 {
		return subcommands.ExitSuccess
	}

	lang := store.Data().Language
	fmt.Printf("\nThe bookkeeper drafted %d transaction(s):\n", len(drafted))
	for _, tx := range drafted {
		fmt.Printf("  %s  %s  %s  %s\n", tx.Date, tx.Type,
			pocket.FormatAmount(tx.Amount, lang), tx.Description)
	}
	fmt.Print("Record them? [y/N] ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "y" {
		fmt.Println("Discarded.")
		return subcommands.ExitSuccess
	}
	store.AddTransactions(drafted)
	fmt.Println("Recorded.")
	return subcommands.ExitSuccess
}
