package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type investCmd struct {
	name     string
	assType  string
	broker   string
	strategy string
	quantity string
	price    string
	date     string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "start tracking an investment position" }
func (*investCmd) Usage() string {
	return `dnb invest -name <name> [-type <asset>] [-broker <name>] [-strategy <strategy>] [-quantity <q> -price <p>] [-date <YYYY-MM-DD>]

  Starts tracking a position. A nonzero starting quantity records an
  implicit opening BUY at the given price, so the movement history always
  explains the position.

Usage Examples:
# Track 10 shares bought at 32.50.
$ dnb invest -name PETR4 -type stock -broker XP -quantity 10 -price 32.50
`
}

func (p *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Position name (ticker or label).")
	f.StringVar(&p.assType, "type", "other", "Asset class (stock, fii, fixed_income, crypto, etf, other).")
	f.StringVar(&p.broker, "broker", "", "Broker holding the position.")
	f.StringVar(&p.strategy, "strategy", "growth", "Strategy (growth, dividends, speculation, reserve).")
	f.StringVar(&p.quantity, "quantity", "", "Starting quantity. Defaults to zero.")
	f.StringVar(&p.price, "price", "", "Price per unit of the starting quantity.")
	f.StringVar(&p.date, "date", "", "Purchase date. Defaults to today.")
}

func (p *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	quantity, err := parseDecimal(p.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	price, err := parseDecimal(p.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	date, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	created := openStore().AddInvestment(pocket.Investment{
		Name:         p.name,
		Type:         pocket.InvestmentType(p.assType),
		Broker:       p.broker,
		Strategy:     pocket.Strategy(p.strategy),
		Quantity:     quantity,
		AveragePrice: price,
		CurrentPrice: price,
		PurchaseDate: date,
	})
	fmt.Printf("Tracking %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
