package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type movementCmd struct {
	id       string
	mvType   string
	quantity string
	price    string
	date     string
	notes    string
}

func (*movementCmd) Name() string     { return "movement" }
func (*movementCmd) Synopsis() string { return "record a buy, sell or price update on a position" }
func (*movementCmd) Usage() string {
	return `dnb movement -id <investment-id> -type <buy|sell|update> -price <p> [-quantity <q>] [-date <YYYY-MM-DD>] [-notes <text>]

  Appends one movement to a position's history. A buy raises the quantity
  and re-weights the average cost; a sell lowers the quantity and leaves
  the average cost untouched; an update only re-marks the current price.
`
}

func (p *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Investment id.")
	f.StringVar(&p.mvType, "type", "", "Movement type (buy, sell, update).")
	f.StringVar(&p.quantity, "quantity", "", "Quantity bought or sold.")
	f.StringVar(&p.price, "price", "", "Price per unit.")
	f.StringVar(&p.date, "date", "", "Movement date. Defaults to today.")
	f.StringVar(&p.notes, "notes", "", "Free-form note on the movement.")
}

func (p *movementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" || p.mvType == "" || p.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -id, -type and -price are required.")
		return subcommands.ExitUsageError
	}
	mvType := pocket.MovementType(strings.ToUpper(p.mvType))
	switch mvType {
	case pocket.MovementBuy, pocket.MovementSell, pocket.MovementUpdate:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown movement type %q.\n", p.mvType)
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

	mv, ok := openStore().AddInvestmentMovement(p.id, mvType, date, quantity, price, p.notes)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: movement not applied (unknown position, or a buy needs a positive quantity).")
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s @ %s on %s\n", mv.Type, mv.Quantity, mv.PricePerUnit, mv.Date)
	return subcommands.ExitSuccess
}
