package pocket

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for presentation purposes. Persisted
// amounts stay plain decimals; Money only pairs an amount with the currency
// implied by the dataset language so reports and the CLI can format it.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a decimal amount and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the locale-formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) Add(n Money) Money       { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money       { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// CurrencyFor returns the display currency for a dataset language.
func CurrencyFor(lang Language) string {
	if lang == LanguageEN {
		return money.USD
	}
	return money.BRL
}

// FormatAmount formats a raw decimal amount in the display currency of the
// given language.
func FormatAmount(value decimal.Decimal, lang Language) string {
	return M(value, CurrencyFor(lang)).String()
}

// round2 rounds an amount to cents, half away from zero.
func round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
