// Package cmd implements the dnb CLI to manage the household dataset.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// commands lists every subcommand with its help group. Register and Names
// both walk this list so the commander and the shell completion never
// drift apart.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&addCmd{}, "transactions"},
	{&payCmd{}, "transactions"},
	{&txCmd{}, "transactions"},

	{&goalCmd{}, "planning"},
	{&contributeCmd{}, "planning"},
	{&categoryCmd{}, "planning"},

	{&accountCmd{}, "assets"},
	{&cardCmd{}, "assets"},
	{&investCmd{}, "assets"},
	{&movementCmd{}, "assets"},
	{&propertyCmd{}, "assets"},
	{&debtCmd{}, "assets"},
	{&deleteCmd{}, "assets"},

	{&summaryCmd{}, "reports"},
	{&balanceCmd{}, "reports"},
	{&calendarCmd{}, "reports"},

	{&exportCmd{}, "data"},
	{&importCmd{}, "data"},
	{&resetCmd{}, "data"},

	{&assistCmd{}, "assistant"},
}

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Names returns every registered command name, for shell completion.
func Names() []string {
	names := make([]string, 0, len(commands))
	for _, e := range commands {
		names = append(names, e.cmd.Name())
	}
	return names
}

// As a CLI application it has a very short-lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Directory holding the dnb data file")

func defaultDataDir() string {
	if dir := os.Getenv("DNB_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dnb"
	}
	return filepath.Join(home, ".dnb")
}

// openStore opens the dataset in the app data directory. An absent or
// unreadable file yields an empty dataset, so this never fails.
func openStore() *pocket.Store {
	return pocket.NewStore(pocket.FileBackend{Dir: *dataDir})
}

// parseAmount parses a strictly positive decimal amount from a flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %q", s)
	}
	return v, nil
}

// parseDecimal parses any decimal value from a flag value, empty meaning zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// parseDay parses an optional date flag, empty meaning today.
func parseDay(s string) (pocket.Date, error) {
	if s == "" {
		return pocket.Today(), nil
	}
	return pocket.ParseDate(s)
}
