package pocket

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExpandInstallments converts one credit-card purchase into count dated
// transaction records, one per monthly installment.
//
// Each installment independently rounds total/count to cents, so the sum of
// the generated amounts may drift from the purchase total by up to
// count-1 cents. The drift is a known property of the reference behavior
// and is kept as-is rather than folded into the last installment.
//
// Installment i is dated i-1 calendar months after start (day-of-month
// clamped in shorter months), described as "<description> (i/count)", and
// always unpaid: future installments of a card purchase are never
// considered settled, whatever the purchase form said.
//
// The base transaction supplies description, total amount, type, category
// and card reference; ids are assigned when the batch is inserted through
// the store.
func ExpandInstallments(base Transaction, count int, start Date) []Transaction {
	if count < 1 {
		count = 1
	}
	if start.IsZero() {
		start = Today()
	}

	cardID := base.CardID()
	per := round2(base.Amount.Div(decimal.NewFromInt(int64(count))))

	out := make([]Transaction, 0, count)
	for i := 1; i <= count; i++ {
		tx := base
		tx.ID = ""
		tx.Amount = per
		tx.Date = start.AddMonths(i - 1)
		tx.DueDate = nil
		tx.Paid = false
		tx.NotificationSent = false
		tx.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i, count)
		tx.Payment = CardPayment{
			CardID:       cardID,
			Installments: &Installments{Current: i, Total: count},
		}
		out = append(out, tx)
	}
	return out
}
