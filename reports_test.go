package pocket

import (
	"testing"
	"time"
)

// seedMonth fills a store with a small March 2025 scenario.
func seedMonth(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	march := func(day int) Date { return NewDate(2025, time.March, day) }

	s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("5000"), Date: march(1), Paid: true})
	s.AddTransaction(Transaction{Type: Expense, Description: "rent", Amount: dec("1500"), Category: "housing", Date: march(5), Paid: true})
	s.AddTransaction(Transaction{Type: Expense, Description: "market", Amount: dec("800"), Category: "groceries", Date: march(8), Paid: true})
	s.AddTransaction(Transaction{Type: Expense, Description: "internet", Amount: dec("120"), Category: "utilities", Date: march(20)}) // unpaid
	// Outside the month, must not count.
	s.AddTransaction(Transaction{Type: Expense, Description: "old", Amount: dec("999"), Category: "other", Date: NewDate(2025, time.February, 10), Paid: true})
	return s
}

func TestNewSummary(t *testing.T) {
	s := seedMonth(t)
	position(t, s, "10", "5.00")

	sum := NewSummary(s.Data(), 2025, time.March)

	if !sum.Income.Equal(dec("5000")) {
		t.Errorf("income = %s, want 5000", sum.Income)
	}
	if !sum.Expenses.Equal(dec("2300")) {
		t.Errorf("expenses = %s, want 2300", sum.Expenses)
	}
	if !sum.PendingExpenses.Equal(dec("120")) {
		t.Errorf("pending = %s, want 120", sum.PendingExpenses)
	}
	if !sum.Balance.Equal(dec("2700")) {
		t.Errorf("balance = %s, want 2700", sum.Balance)
	}
	if !sum.Invested.Equal(dec("50")) {
		t.Errorf("invested = %s, want 50", sum.Invested)
	}
	if !sum.MarketValue.Equal(dec("50")) {
		t.Errorf("market value = %s, want 50", sum.MarketValue)
	}

	// Categories sorted by amount descending.
	if len(sum.ByCategory) != 2 {
		t.Fatalf("categories = %d, want 2", len(sum.ByCategory))
	}
	if sum.ByCategory[0].Category != "housing" || sum.ByCategory[1].Category != "groceries" {
		t.Errorf("category order = %s, %s; want housing, groceries",
			sum.ByCategory[0].Category, sum.ByCategory[1].Category)
	}
}

func TestAccountBalance(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount(Account{Name: "checking", InitialBalance: dec("1000")})
	other := s.AddAccount(Account{Name: "savings", InitialBalance: dec("500")})

	s.AddTransaction(Transaction{
		Type: Income, Description: "salary", Amount: dec("3000"), Paid: true,
		Payment: TransferPayment{Via: PayBankTransfer, AccountID: acc.ID},
	})
	s.AddTransaction(Transaction{
		Type: Expense, Description: "rent", Amount: dec("1200"), Paid: true,
		Payment: TransferPayment{Via: PayBankTransfer, AccountID: acc.ID},
	})
	// Unpaid movements do not touch the balance.
	s.AddTransaction(Transaction{
		Type: Expense, Description: "bill", Amount: dec("400"),
		Payment: TransferPayment{Via: PayDebitCard, AccountID: acc.ID},
	})

	data := s.Data()
	if got := AccountBalance(data, acc.ID); !got.Equal(dec("2800")) {
		t.Errorf("balance = %s, want 2800", got)
	}
	if got := AccountBalance(data, other.ID); !got.Equal(dec("500")) {
		t.Errorf("untouched balance = %s, want 500", got)
	}
}

func TestNewBalanceSheet(t *testing.T) {
	s := newTestStore(t)
	s.AddAccount(Account{Name: "checking", InitialBalance: dec("1000")})
	position(t, s, "10", "5.00") // market value 50
	s.AddProperty(Property{Name: "car", Value: dec("40000")})
	s.AddGoal(Goal{Name: "trip", TargetAmount: dec("5000"), CurrentAmount: dec("1500")})
	s.AddDebt(Debt{Name: "loan", RemainingAmount: dec("8000")})
	s.AddCreditCard(CreditCard{Name: "Nubank", Limit: dec("8000"), CurrentBalance: dec("700"), DueDate: 10})

	sheet := NewBalanceSheet(s.Data())

	if !sheet.Assets.Equal(dec("42550")) {
		t.Errorf("assets = %s, want 42550", sheet.Assets)
	}
	if !sheet.Liabilities.Equal(dec("8700")) {
		t.Errorf("liabilities = %s, want 8700", sheet.Liabilities)
	}
	if !sheet.NetWorth.Equal(dec("33850")) {
		t.Errorf("net worth = %s, want 33850", sheet.NetWorth)
	}
}

func TestNewCalendar(t *testing.T) {
	s := newTestStore(t)
	march := func(day int) Date { return NewDate(2025, time.March, day) }

	s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("5000"), Date: march(1), Paid: true})
	due := march(15)
	s.AddTransaction(Transaction{Type: Expense, Description: "bill", Amount: dec("120"), Date: march(2), DueDate: &due})
	s.AddTransaction(Transaction{Type: Expense, Description: "market", Amount: dec("300"), Date: march(15), Paid: true})

	days := NewCalendar(s.Data(), 2025, time.March)
	if len(days) != 2 {
		t.Fatalf("days with activity = %d, want 2", len(days))
	}
	if days[0].Day != 1 || days[1].Day != 15 {
		t.Errorf("day order = %d, %d; want 1, 15", days[0].Day, days[1].Day)
	}
	// The unpaid bill buckets on its due day alongside the paid market run.
	if len(days[1].Transactions) != 2 {
		t.Errorf("day 15 transactions = %d, want 2", len(days[1].Transactions))
	}
	if !days[1].Expenses.Equal(dec("420")) {
		t.Errorf("day 15 expenses = %s, want 420", days[1].Expenses)
	}
	if !days[0].Income.Equal(dec("5000")) {
		t.Errorf("day 1 income = %s, want 5000", days[0].Income)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(dec("1234.56"), LanguageEN); got != "$1,234.56" {
		t.Errorf("FormatAmount(EN) = %q, want $1,234.56", got)
	}
	if got := FormatAmount(dec("1234.56"), LanguagePT); got != "R$1.234,56" {
		t.Errorf("FormatAmount(PT) = %q, want R$1.234,56", got)
	}
}
