package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show account balances and the balance sheet" }
func (*balanceCmd) Usage() string {
	return `dnb balance

  Shows the derived balance of each account, then the full balance sheet:
  assets, liabilities and net worth.
`
}

func (*balanceCmd) SetFlags(_ *flag.FlagSet) {}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data := openStore().Data()
	lang := data.Language
	sheet := pocket.NewBalanceSheet(data)

	var b strings.Builder
	if len(data.Accounts) > 0 {
		b.WriteString("## Accounts\n\n| Account | Balance |\n|---|---:|\n")
		for _, a := range data.Accounts {
			fmt.Fprintf(&b, "| %s | %s |\n", a.Name,
				pocket.FormatAmount(pocket.AccountBalance(data, a.ID), lang))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Balance sheet\n\n")
	fmt.Fprintf(&b, "- Account funds: %s\n", pocket.FormatAmount(sheet.AccountFunds, lang))
	fmt.Fprintf(&b, "- Investments: %s\n", pocket.FormatAmount(sheet.Investments, lang))
	fmt.Fprintf(&b, "- Properties: %s\n", pocket.FormatAmount(sheet.Properties, lang))
	fmt.Fprintf(&b, "- Goal savings: %s\n", pocket.FormatAmount(sheet.GoalSavings, lang))
	fmt.Fprintf(&b, "- **Assets: %s**\n\n", pocket.FormatAmount(sheet.Assets, lang))
	fmt.Fprintf(&b, "- Debts: %s\n", pocket.FormatAmount(sheet.Debts, lang))
	fmt.Fprintf(&b, "- Card utilization: %s\n", pocket.FormatAmount(sheet.CardUtilization, lang))
	fmt.Fprintf(&b, "- **Liabilities: %s**\n\n", pocket.FormatAmount(sheet.Liabilities, lang))
	fmt.Fprintf(&b, "- **Net worth: %s**\n", pocket.FormatAmount(sheet.NetWorth, lang))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
