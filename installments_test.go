package pocket

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func purchase(desc, amount, cardID string) Transaction {
	return Transaction{
		Type:        Expense,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    "shopping",
		Paid:        true,
		Payment:     CardPayment{CardID: cardID},
	}
}

func TestExpandInstallmentsAmounts(t *testing.T) {
	start := NewDate(2025, time.January, 10)

	tests := []struct {
		total string
		count int
		per   string
		sum   string
	}{
		{"100.00", 3, "33.33", "99.99"}, // drift from the total is expected
		{"3600.00", 12, "300.00", "3600.00"},
		{"100.00", 6, "16.67", "100.02"},
		{"0.05", 2, "0.03", "0.06"}, // half away from zero
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s in %d", tt.total, tt.count), func(t *testing.T) {
			out := ExpandInstallments(purchase("tv", tt.total, "card-1"), tt.count, start)
			if len(out) != tt.count {
				t.Fatalf("len = %d, want %d", len(out), tt.count)
			}
			sum := decimal.Zero
			for i, tx := range out {
				if !tx.Amount.Equal(decimal.RequireFromString(tt.per)) {
					t.Errorf("installment %d amount = %s, want %s", i+1, tx.Amount, tt.per)
				}
				sum = sum.Add(tx.Amount)
			}
			if !sum.Equal(decimal.RequireFromString(tt.sum)) {
				t.Errorf("sum = %s, want %s", sum, tt.sum)
			}
		})
	}
}

func TestExpandInstallmentsShape(t *testing.T) {
	start := NewDate(2025, time.January, 31)
	out := ExpandInstallments(purchase("couch", "300.00", "card-1"), 3, start)

	// Dates advance one calendar month per installment, clamping in short months.
	wantDates := []Date{
		NewDate(2025, time.January, 31),
		NewDate(2025, time.February, 28),
		NewDate(2025, time.March, 31),
	}
	for i, tx := range out {
		if tx.Date != wantDates[i] {
			t.Errorf("installment %d date = %v, want %v", i+1, tx.Date, wantDates[i])
		}
		want := fmt.Sprintf("couch (%d/3)", i+1)
		if tx.Description != want {
			t.Errorf("installment %d description = %q, want %q", i+1, tx.Description, want)
		}
		if tx.Paid {
			t.Errorf("installment %d is paid, future installments are never settled", i+1)
		}
		p, ok := tx.Payment.(CardPayment)
		if !ok {
			t.Fatalf("installment %d payment = %T, want CardPayment", i+1, tx.Payment)
		}
		if p.CardID != "card-1" {
			t.Errorf("installment %d cardId = %q, want card-1", i+1, p.CardID)
		}
		if p.Installments == nil || p.Installments.Current != i+1 || p.Installments.Total != 3 {
			t.Errorf("installment %d marker = %+v, want %d/3", i+1, p.Installments, i+1)
		}
	}
}

func TestExpandInstallmentsDefaults(t *testing.T) {
	// A count below one yields a single installment dated today.
	out := ExpandInstallments(purchase("snack", "10.00", ""), 0, Date{})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Date != Today() {
		t.Errorf("date = %v, want today", out[0].Date)
	}
	if !out[0].Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("amount = %s, want 10.00", out[0].Amount)
	}
}
