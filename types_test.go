package pocket

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTransactionWireShape(t *testing.T) {
	due := NewDate(2025, time.April, 10)
	tx := Transaction{
		ID:          "t1",
		Type:        Expense,
		Description: "couch (1/3)",
		Amount:      dec("100.00"),
		Category:    "shopping",
		Date:        NewDate(2025, time.March, 10),
		DueDate:     &due,
		Payment:     CardPayment{CardID: "card-1", Installments: &Installments{Current: 1, Total: 3}},
	}

	blob, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	got := string(blob)

	// The payment variant flattens into the fixed top-level keys. Amounts
	// serialize as plain JSON numbers; decimal trims trailing zeros.
	want := `{"id":"t1","type":"expense","description":"couch (1/3)","amount":100,"category":"shopping","date":"2025-03-10","paid":false,"dueDate":"2025-04-10","paymentMethod":"credit_card","cardId":"card-1","installments":{"current":1,"total":3}}`
	if got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
	}{
		{"cash", CashPayment{Via: PayCash}},
		{"pix", CashPayment{Via: PayPix}},
		{"transfer", TransferPayment{Via: PayBankTransfer, AccountID: "acc-1"}},
		{"debit", TransferPayment{Via: PayDebitCard, AccountID: "acc-1"}},
		{"card", CardPayment{CardID: "card-1", Installments: &Installments{Current: 2, Total: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Transaction{
				ID: "t1", Type: Expense, Description: "x", Amount: dec("10"),
				Date: NewDate(2025, time.March, 1), Payment: tt.payment,
			}
			blob, err := json.Marshal(in)
			if err != nil {
				t.Fatal(err)
			}
			var out Transaction
			if err := json.Unmarshal(blob, &out); err != nil {
				t.Fatal(err)
			}
			if out.PaymentMethod() != in.PaymentMethod() {
				t.Errorf("method = %s, want %s", out.PaymentMethod(), in.PaymentMethod())
			}
			if out.AccountID() != in.AccountID() {
				t.Errorf("accountId = %q, want %q", out.AccountID(), in.AccountID())
			}
			if out.CardID() != in.CardID() {
				t.Errorf("cardId = %q, want %q", out.CardID(), in.CardID())
			}
		})
	}
}

func TestTransactionUnknownPaymentMethod(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"id":"t1","type":"expense","amount":1,"date":"2025-01-01","paymentMethod":"barter"}`), &tx)
	if err == nil || !strings.Contains(err.Error(), "barter") {
		t.Errorf("error = %v, want unknown payment method", err)
	}
}

func TestTransactionDue(t *testing.T) {
	day := NewDate(2025, time.March, 10)
	due := NewDate(2025, time.April, 10)

	tx := Transaction{Date: day}
	if tx.Due() != day {
		t.Errorf("Due() = %v, want the transaction date", tx.Due())
	}
	tx.DueDate = &due
	if tx.Due() != due {
		t.Errorf("Due() = %v, want the explicit due date", tx.Due())
	}
}
