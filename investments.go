package pocket

import "github.com/shopspring/decimal"

// This file holds the position-tracking engine: how BUY, SELL and UPDATE
// movements derive the quantity, weighted-average price, and latest mark of
// an investment. The engine is deliberately permissive: no movement is ever
// rejected for economic implausibility. Over-sells clamp the position to
// zero, and a non-positive BUY quantity is the only silent no-op.

// newMovement builds a ledger entry. TotalAmount is always the product of
// quantity and price, which for a pure mark UPDATE (quantity 0) records 0:
// the entry exists to log the new mark, not a position change.
func newMovement(mvType MovementType, day Date, quantity, pricePerUnit decimal.Decimal, notes string) Movement {
	return Movement{
		ID:           newID(),
		Date:         day,
		Type:         mvType,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		TotalAmount:  quantity.Mul(pricePerUnit),
		Notes:        notes,
	}
}

// applyMovement applies a movement to the position and appends it to the
// history. It reports whether the movement was applied; when false the
// position is untouched and nothing is appended.
//
//   - BUY recomputes the weighted-average price over the old cost basis and
//     the new lot, and moves the mark to the transacted price. Quantity
//     must be positive.
//   - SELL reduces the quantity, clamping at zero, and moves the mark.
//     The average price never changes on a sale.
//   - UPDATE moves the mark only.
func applyMovement(inv *Investment, mv Movement) bool {
	switch mv.Type {
	case MovementBuy:
		if !mv.Quantity.IsPositive() {
			return false
		}
		oldCost := inv.Quantity.Mul(inv.AveragePrice)
		newQty := inv.Quantity.Add(mv.Quantity)
		inv.AveragePrice = oldCost.Add(mv.TotalAmount).Div(newQty)
		inv.Quantity = newQty
		inv.CurrentPrice = mv.PricePerUnit
	case MovementSell:
		remaining := inv.Quantity.Sub(mv.Quantity)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		inv.Quantity = remaining
		inv.CurrentPrice = mv.PricePerUnit
	case MovementUpdate:
		inv.CurrentPrice = mv.PricePerUnit
	default:
		return false
	}
	inv.History = append(inv.History, mv)
	return true
}

// CostBasis returns the remaining total cost basis of the position,
// quantity times weighted-average price.
func (inv Investment) CostBasis() decimal.Decimal {
	return inv.Quantity.Mul(inv.AveragePrice)
}

// MarketValue returns the position valued at the latest mark.
func (inv Investment) MarketValue() decimal.Decimal {
	return inv.Quantity.Mul(inv.CurrentPrice)
}

// UnrealizedGain returns the difference between market value and remaining
// cost basis.
func (inv Investment) UnrealizedGain() decimal.Decimal {
	return inv.MarketValue().Sub(inv.CostBasis())
}
