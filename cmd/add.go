package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/doisnobolsoapp/pocket"
	"github.com/google/subcommands"
)

type addCmd struct {
	txType       string
	description  string
	amount       string
	category     string
	date         string
	method       string
	accountID    string
	cardID       string
	installments int
	paid         bool
	due          string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income, expense, investment or loan" }
func (*addCmd) Usage() string {
	return `dnb add -desc <description> -amount <value> [-type <type>] [-category <name>] [-date <YYYY-MM-DD>] [-method <method>] [-account <id>] [-card <id>] [-n <installments>] [-paid] [-due <YYYY-MM-DD>]

  Records one financial movement. A credit-card purchase with -n greater
  than one is expanded into its monthly installment records.

Usage Examples:
# A paid grocery run, cash.
$ dnb add -desc "market" -amount 250.40 -category groceries -paid

# A 12-installment purchase on a card.
$ dnb add -desc "new couch" -amount 3600 -method credit_card -card <id> -n 12
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.txType, "type", "expense", "Transaction type (income, expense, investment, loan).")
	f.StringVar(&p.description, "desc", "", "Description of the movement.")
	f.StringVar(&p.amount, "amount", "", "Positive amount; the type implies the sign.")
	f.StringVar(&p.category, "category", "", "Category name, free form.")
	f.StringVar(&p.date, "date", "", "Transaction date. Defaults to today.")
	f.StringVar(&p.method, "method", "cash", "Payment method (cash, bank_transfer, debit_card, credit_card, pix).")
	f.StringVar(&p.accountID, "account", "", "Bank account id, for transfers and debit.")
	f.StringVar(&p.cardID, "card", "", "Credit card id, for card purchases.")
	f.IntVar(&p.installments, "n", 1, "Number of monthly installments (credit card only).")
	f.BoolVar(&p.paid, "paid", false, "Mark the movement as already settled.")
	f.StringVar(&p.due, "due", "", "Due date for unpaid movements. Defaults to the transaction date.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.description == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -desc and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	date, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	tx := pocket.Transaction{
		Type:        pocket.TransactionType(p.txType),
		Description: p.description,
		Amount:      amount,
		Category:    p.category,
		Date:        date,
		Paid:        p.paid,
	}
	switch method := pocket.PaymentMethod(p.method); method {
	case pocket.PayCash, pocket.PayPix:
		tx.Payment = pocket.CashPayment{Via: method}
	case pocket.PayBankTransfer, pocket.PayDebitCard:
		tx.Payment = pocket.TransferPayment{Via: method, AccountID: p.accountID}
	case pocket.PayCreditCard:
		tx.Payment = pocket.CardPayment{CardID: p.cardID}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown payment method %q.\n", p.method)
		return subcommands.ExitUsageError
	}
	if p.due != "" {
		due, err := pocket.ParseDate(p.due)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		tx.DueDate = &due
	}

	store := openStore()
	lang := store.Data().Language

	if tx.PaymentMethod() == pocket.PayCreditCard && p.installments > 1 {
		created := store.AddTransactions(pocket.ExpandInstallments(tx, p.installments, date))
		for _, c := range created {
			fmt.Printf("Added %s  %s  %s\n", c.Date, pocket.FormatAmount(c.Amount, lang), c.Description)
		}
		return subcommands.ExitSuccess
	}

	created := store.AddTransaction(tx)
	fmt.Printf("Added %s  %s  %s (%s)\n", created.Date, pocket.FormatAmount(created.Amount, lang), created.Description, created.ID)
	return subcommands.ExitSuccess
}
