package pocket

import (
	"errors"
	"testing"
	"time"
)

func TestStorePersistsAcrossReopen(t *testing.T) {
	backend := NewMemoryBackend()

	s := NewStore(backend)
	created := s.AddTransaction(Transaction{
		Type:        Expense,
		Description: "market",
		Amount:      dec("250.40"),
		Category:    "groceries",
		Paid:        true,
	})

	// A second store over the same backend sees the same dataset.
	reopened := NewStore(backend)
	got := reopened.Data().Transaction(created.ID)
	if got == nil {
		t.Fatal("transaction not found after reopen")
	}
	if got.Description != "market" || !got.Amount.Equal(dec("250.40")) {
		t.Errorf("reloaded transaction = %q %s, want market 250.40", got.Description, got.Amount)
	}
	if got.PaymentMethod() != PayCash {
		t.Errorf("payment method = %s, want cash default", got.PaymentMethod())
	}
}

func TestStoreStartsEmptyOnUnparsableBlob(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Set(StorageKey, []byte("not json at all"))

	s := NewStore(backend)
	if n := len(s.Data().Transactions); n != 0 {
		t.Errorf("transactions = %d, want 0", n)
	}
}

func TestStoreMigratesOldBlob(t *testing.T) {
	// A blob from an older schema version: missing collections and settings.
	backend := NewMemoryBackend()
	backend.Set(StorageKey, []byte(`{"transactions":[{"id":"t1","type":"expense","description":"old","amount":10,"category":"other","date":"2024-05-01","paid":true}]}`))

	data := NewStore(backend).Data()
	if len(data.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(data.Transactions))
	}
	if data.Goals == nil || data.Investments == nil || data.CustomCategories == nil {
		t.Error("missing collections were not defaulted to empty slices")
	}
	if data.UserMode != ModeIndividual {
		t.Errorf("user mode = %q, want INDIVIDUAL", data.UserMode)
	}
	if data.Language != LanguagePT {
		t.Errorf("language = %q, want PT", data.Language)
	}
	if data.Transactions[0].PaymentMethod() != PayCash {
		t.Errorf("payment method = %s, want cash for a record without one", data.Transactions[0].PaymentMethod())
	}
}

func TestAddTransactionsAssignsUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	txs := ExpandInstallments(purchase("couch", "3600.00", "card-1"), 12, NewDate(2025, time.January, 5))
	created := s.AddTransactions(txs)

	seen := map[string]bool{}
	for _, tx := range created {
		if tx.ID == "" {
			t.Error("transaction created without id")
		}
		if seen[tx.ID] {
			t.Errorf("duplicate id %q", tx.ID)
		}
		seen[tx.ID] = true
	}
	if len(s.Data().Transactions) != 12 {
		t.Errorf("stored transactions = %d, want 12", len(s.Data().Transactions))
	}
}

func TestUnpaidTransactionGetsDueDate(t *testing.T) {
	s := newTestStore(t)
	day := NewDate(2025, time.March, 10)
	created := s.AddTransaction(Transaction{
		Type: Expense, Description: "rent", Amount: dec("1200"), Date: day,
	})
	if created.DueDate == nil || *created.DueDate != day {
		t.Errorf("due date = %v, want %v", created.DueDate, day)
	}
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore(t)
	keep := s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("100")})
	gone := s.AddTransaction(Transaction{Type: Expense, Description: "typo", Amount: dec("1")})

	s.DeleteTransaction(gone.ID)
	s.DeleteTransaction("never-existed") // silent no-op

	data := s.Data()
	if len(data.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(data.Transactions))
	}
	if data.Transactions[0].ID != keep.ID {
		t.Errorf("kept id = %q, want %q", data.Transactions[0].ID, keep.ID)
	}
}

func TestMarkTransactionPaid(t *testing.T) {
	s := newTestStore(t)
	tx := s.AddTransaction(Transaction{Type: Expense, Description: "rent", Amount: dec("1200")})

	s.MarkTransactionPaid(tx.ID, true)
	if got := s.Data().Transaction(tx.ID); !got.Paid {
		t.Error("transaction not marked paid")
	}
	s.MarkTransactionPaid(tx.ID, false)
	if got := s.Data().Transaction(tx.ID); got.Paid {
		t.Error("transaction not marked back unpaid")
	}
	s.MarkTransactionPaid("never-existed", true) // silent no-op
}

func TestMarkNotificationSent(t *testing.T) {
	s := newTestStore(t)
	tx := s.AddTransaction(Transaction{Type: Expense, Description: "bill", Amount: dec("80")})

	s.MarkNotificationSent(tx.ID, true)
	if got := s.Data().Transaction(tx.ID); !got.NotificationSent {
		t.Error("notification flag not set")
	}
}

func TestDeleteAccountOrphansTransactions(t *testing.T) {
	s := newTestStore(t)
	acc := s.AddAccount(Account{Name: "checking", InitialBalance: dec("1000")})
	tx := s.AddTransaction(Transaction{
		Type: Expense, Description: "rent", Amount: dec("1200"), Paid: true,
		Payment: TransferPayment{Via: PayBankTransfer, AccountID: acc.ID},
	})

	s.DeleteAccount(acc.ID)

	data := s.Data()
	if len(data.Accounts) != 0 {
		t.Fatalf("accounts = %d, want 0", len(data.Accounts))
	}
	got := data.Transaction(tx.ID)
	if got == nil {
		t.Fatal("transaction was deleted with its account")
	}
	if got.AccountID() != "" {
		t.Errorf("accountId = %q, want cleared", got.AccountID())
	}
	if got.PaymentMethod() != PayBankTransfer {
		t.Errorf("payment method = %s, want bank_transfer preserved", got.PaymentMethod())
	}
}

func TestDeleteCreditCardOrphansTransactions(t *testing.T) {
	s := newTestStore(t)
	card := s.AddCreditCard(CreditCard{Name: "Nubank", Limit: dec("8000"), DueDate: 10})
	created := s.AddTransactions(ExpandInstallments(purchase("couch", "300.00", card.ID), 3, NewDate(2025, time.January, 5)))

	s.DeleteCreditCard(card.ID)

	data := s.Data()
	if len(data.CreditCards) != 0 {
		t.Fatalf("cards = %d, want 0", len(data.CreditCards))
	}
	for _, tx := range created {
		got := data.Transaction(tx.ID)
		if got == nil {
			t.Fatal("installment was deleted with its card")
		}
		if got.CardID() != "" {
			t.Errorf("cardId = %q, want cleared", got.CardID())
		}
		p, ok := got.Payment.(CardPayment)
		if !ok {
			t.Fatalf("payment = %T, want CardPayment preserved", got.Payment)
		}
		if p.Installments == nil {
			t.Error("installment marker lost on card deletion")
		}
	}
}

func TestUpdateGoal(t *testing.T) {
	s := newTestStore(t)
	g := s.AddGoal(Goal{Name: "trip", TargetAmount: dec("5000")})

	g.CurrentAmount = dec("1500")
	s.UpdateGoal(g)

	data := s.Data()
	if !data.Goals[0].CurrentAmount.Equal(dec("1500")) {
		t.Errorf("current amount = %s, want 1500", data.Goals[0].CurrentAmount)
	}

	// Updating an unknown goal changes nothing.
	s.UpdateGoal(Goal{ID: "never-existed", Name: "ghost"})
	if len(s.Data().Goals) != 1 {
		t.Errorf("goals = %d, want 1", len(s.Data().Goals))
	}
}

func TestGoalWithoutDeadlineRoundTrips(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewStore(backend)
	g := s.AddGoal(Goal{Name: "trip", TargetAmount: dec("5000")})

	// Reading back a dataset holding an unset deadline must work, both from
	// the live store and from a reopened one.
	got := s.Data().Goals
	if len(got) != 1 || got[0].ID != g.ID {
		t.Fatalf("goals = %v, want the created goal", got)
	}
	reopened := NewStore(backend).Data().Goals
	if len(reopened) != 1 {
		t.Fatalf("goals after reopen = %d, want 1", len(reopened))
	}
	if !reopened[0].Deadline.IsZero() {
		t.Errorf("deadline = %v, want unset", reopened[0].Deadline)
	}
}

func TestReplaceWithDatelessRecords(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewStore(backend)
	s.Replace(&AppData{
		Transactions: []Transaction{{ID: "t1", Type: Income, Description: "salary", Amount: dec("5")}},
		Goals:        []Goal{{ID: "g1", Name: "trip", TargetAmount: dec("5000")}},
	})

	data := s.Data()
	if len(data.Transactions) != 1 || len(data.Goals) != 1 {
		t.Fatalf("transactions = %d, goals = %d; want 1 and 1", len(data.Transactions), len(data.Goals))
	}
	if !data.Transactions[0].Date.IsZero() {
		t.Errorf("date = %v, want unset", data.Transactions[0].Date)
	}

	reopened := NewStore(backend).Data()
	if len(reopened.Transactions) != 1 || len(reopened.Goals) != 1 {
		t.Error("dataset with unset dates did not survive reopen")
	}
}

func TestAddCustomCategory(t *testing.T) {
	s := newTestStore(t)
	s.AddCustomCategory("pets")
	s.AddCustomCategory("  pets  ") // trimmed duplicate
	s.AddCustomCategory("")
	s.AddCustomCategory("travel")

	got := s.Data().CustomCategories
	if len(got) != 2 || got[0] != "pets" || got[1] != "travel" {
		t.Errorf("custom categories = %v, want [pets travel]", got)
	}

	all := s.Data().Categories()
	if all[len(all)-1] != "travel" {
		t.Errorf("Categories() does not end with the custom entries: %v", all)
	}
}

// failingBackend accepts reads but refuses every write.
type failingBackend struct{}

func (failingBackend) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (failingBackend) Set(string, []byte) error         { return errors.New("disk full") }

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	s := NewStore(failingBackend{})
	created := s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("100")})

	// The write failed, but the session keeps working on the in-memory data.
	if got := s.Data().Transaction(created.ID); got == nil {
		t.Fatal("transaction lost after a failed save")
	}
}

func TestReplaceNormalizes(t *testing.T) {
	s := newTestStore(t)
	s.Replace(&AppData{Transactions: []Transaction{{ID: "t1", Type: Income, Amount: dec("5")}}})

	data := s.Data()
	if data.Goals == nil || data.Language != LanguagePT {
		t.Error("replaced dataset was not normalized")
	}
	if len(data.Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(data.Transactions))
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("100")})
	s.AddGoal(Goal{Name: "trip", TargetAmount: dec("5000")})

	s.Reset()

	data := s.Data()
	if len(data.Transactions) != 0 || len(data.Goals) != 0 {
		t.Error("reset did not clear the dataset")
	}
}

func TestDataReturnsACopy(t *testing.T) {
	s := newTestStore(t)
	s.AddTransaction(Transaction{Type: Income, Description: "salary", Amount: dec("100")})

	snapshot := s.Data()
	snapshot.Transactions[0].Description = "tampered"
	snapshot.Transactions = nil

	data := s.Data()
	if len(data.Transactions) != 1 || data.Transactions[0].Description != "salary" {
		t.Error("mutating a snapshot leaked into the store")
	}
}
