package pocket

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// The calculators in this file own no state: they read a dataset snapshot
// and derive the views the presentation layer renders. Writes never pass
// through here.

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Summary is the dashboard view for one calendar month.
type Summary struct {
	Year            int
	Month           time.Month
	Income          decimal.Decimal // paid income in the month
	Expenses        decimal.Decimal // paid expenses in the month
	PendingExpenses decimal.Decimal // unpaid expenses due in the month
	Balance         decimal.Decimal // income minus paid expenses
	Invested        decimal.Decimal // total remaining cost basis
	MarketValue     decimal.Decimal // positions at the latest mark
	ByCategory      []CategoryAmount
}

// NewSummary computes the dashboard summary for the given month.
func NewSummary(data *AppData, year int, month time.Month) *Summary {
	s := &Summary{Year: year, Month: month}
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range data.Transactions {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		switch tx.Type {
		case Income:
			if tx.Paid {
				s.Income = s.Income.Add(tx.Amount)
			}
		case Expense:
			if tx.Paid {
				s.Expenses = s.Expenses.Add(tx.Amount)
				byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
			} else {
				s.PendingExpenses = s.PendingExpenses.Add(tx.Amount)
			}
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)

	for _, inv := range data.Investments {
		s.Invested = s.Invested.Add(inv.CostBasis())
		s.MarketValue = s.MarketValue.Add(inv.MarketValue())
	}

	for category, amount := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})
	return s
}

// AccountBalance derives the current balance of one account: its initial
// balance plus every paid movement settled against it.
func AccountBalance(data *AppData, accountID string) decimal.Decimal {
	balance := decimal.Zero
	for _, a := range data.Accounts {
		if a.ID == accountID {
			balance = a.InitialBalance
			break
		}
	}
	for _, tx := range data.Transactions {
		if !tx.Paid || tx.AccountID() != accountID {
			continue
		}
		switch tx.Type {
		case Income:
			balance = balance.Add(tx.Amount)
		default:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

// BalanceSheet aggregates everything the dataset owns and owes.
type BalanceSheet struct {
	AccountFunds    decimal.Decimal // derived balances of all accounts
	Investments     decimal.Decimal // market value of all positions
	Properties      decimal.Decimal
	GoalSavings     decimal.Decimal // amounts already set aside for goals
	Assets          decimal.Decimal
	Debts           decimal.Decimal
	CardUtilization decimal.Decimal // running balances of all cards
	Liabilities     decimal.Decimal
	NetWorth        decimal.Decimal
}

// NewBalanceSheet computes the balance-sheet aggregation over the dataset.
func NewBalanceSheet(data *AppData) *BalanceSheet {
	b := &BalanceSheet{}
	for _, a := range data.Accounts {
		b.AccountFunds = b.AccountFunds.Add(AccountBalance(data, a.ID))
	}
	for _, inv := range data.Investments {
		b.Investments = b.Investments.Add(inv.MarketValue())
	}
	for _, p := range data.Properties {
		b.Properties = b.Properties.Add(p.Value)
	}
	for _, g := range data.Goals {
		b.GoalSavings = b.GoalSavings.Add(g.CurrentAmount)
	}
	b.Assets = b.AccountFunds.Add(b.Investments).Add(b.Properties).Add(b.GoalSavings)

	for _, d := range data.Debts {
		b.Debts = b.Debts.Add(d.RemainingAmount)
	}
	for _, c := range data.CreditCards {
		b.CardUtilization = b.CardUtilization.Add(c.CurrentBalance)
	}
	b.Liabilities = b.Debts.Add(b.CardUtilization)
	b.NetWorth = b.Assets.Sub(b.Liabilities)
	return b
}

// CalendarDay buckets the transactions due on one day of a month.
type CalendarDay struct {
	Day          int
	Transactions []Transaction
	Income       decimal.Decimal
	Expenses     decimal.Decimal
}

// NewCalendar buckets a month's transactions by due day. Unpaid
// transactions bucket on their due date, paid ones on their date. Only days
// with activity are returned, in day order.
func NewCalendar(data *AppData, year int, month time.Month) []CalendarDay {
	days := make(map[int]*CalendarDay)
	for _, tx := range data.Transactions {
		on := tx.Date
		if !tx.Paid {
			on = tx.Due()
		}
		if on.Year() != year || on.Month() != month {
			continue
		}
		day, ok := days[on.Day()]
		if !ok {
			day = &CalendarDay{Day: on.Day()}
			days[on.Day()] = day
		}
		day.Transactions = append(day.Transactions, tx)
		switch tx.Type {
		case Income:
			day.Income = day.Income.Add(tx.Amount)
		case Expense:
			day.Expenses = day.Expenses.Add(tx.Amount)
		}
	}

	out := make([]CalendarDay, 0, len(days))
	for _, day := range days {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
