package pocket

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the nature of a financial movement. The sign of
// the amount is implied by the type; amounts are always positive.
type TransactionType string

const (
	Income         TransactionType = "income"
	Expense        TransactionType = "expense"
	InvestmentFlow TransactionType = "investment"
	Loan           TransactionType = "loan"
)

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayDebitCard    PaymentMethod = "debit_card"
	PayCreditCard   PaymentMethod = "credit_card"
	PayPix          PaymentMethod = "pix"
)

// Installments marks one record of an N-way credit-card purchase.
type Installments struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Payment is the tagged variant carrying the method-specific details of a
// transaction. Making the variants explicit keeps the optional-field
// coupling (accountId only with transfers, cardId only with credit cards)
// unrepresentable-states-unrepresentable; the wire format stays flat.
type Payment interface {
	Method() PaymentMethod
}

// CashPayment settles a transaction in cash or via pix, with no account or
// card reference.
type CashPayment struct {
	Via PaymentMethod // cash or pix
}

func (p CashPayment) Method() PaymentMethod { return p.Via }

// TransferPayment settles a transaction against a bank account, either by
// bank transfer or debit card. AccountID may be empty after the referenced
// account has been deleted.
type TransferPayment struct {
	Via       PaymentMethod // bank_transfer or debit_card
	AccountID string
}

func (p TransferPayment) Method() PaymentMethod { return p.Via }

// CardPayment settles a transaction on a credit card, possibly as one
// installment of a larger purchase. CardID may be empty after the referenced
// card has been deleted.
type CardPayment struct {
	CardID       string
	Installments *Installments
}

func (p CardPayment) Method() PaymentMethod { return PayCreditCard }

// Transaction is a single financial movement. Once created, only Paid and
// NotificationSent are ever mutated in place.
type Transaction struct {
	ID               string
	Type             TransactionType
	Description      string
	Amount           decimal.Decimal // always > 0, sign implied by Type
	Category         string
	Date             Date
	Paid             bool
	DueDate          *Date // used when Paid is false, defaults to Date
	Payment          Payment
	NotificationSent bool
}

// PaymentMethod returns the settlement method, defaulting to cash when no
// payment detail is attached.
func (t Transaction) PaymentMethod() PaymentMethod {
	if t.Payment == nil {
		return PayCash
	}
	return t.Payment.Method()
}

// AccountID returns the referenced bank account id, or "" when the
// transaction is not settled against an account.
func (t Transaction) AccountID() string {
	if p, ok := t.Payment.(TransferPayment); ok {
		return p.AccountID
	}
	return ""
}

// CardID returns the referenced credit card id, or "" when the transaction
// is not settled on a card.
func (t Transaction) CardID() string {
	if p, ok := t.Payment.(CardPayment); ok {
		return p.CardID
	}
	return ""
}

// Due returns the date the transaction is (or was) due: DueDate when set,
// the transaction date otherwise.
func (t Transaction) Due() Date {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.Date
}

// MarshalJSON flattens the payment variant into the fixed wire shape
// (paymentMethod plus optional accountId/cardId/installments keys).
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Append("paid", t.Paid)
	if t.DueDate != nil {
		w.Append("dueDate", t.DueDate)
	}
	w.Append("paymentMethod", t.PaymentMethod())
	switch p := t.Payment.(type) {
	case TransferPayment:
		w.Optional("accountId", p.AccountID)
	case CardPayment:
		w.Optional("cardId", p.CardID)
		if p.Installments != nil {
			w.Append("installments", p.Installments)
		}
	}
	w.Optional("notificationSent", t.NotificationSent)
	return w.MarshalJSON()
}

// UnmarshalJSON rebuilds the payment variant from the flat wire shape.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID               string          `json:"id"`
		Type             TransactionType `json:"type"`
		Description      string          `json:"description"`
		Amount           decimal.Decimal `json:"amount"`
		Category         string          `json:"category"`
		Date             Date            `json:"date"`
		Paid             bool            `json:"paid"`
		DueDate          *Date           `json:"dueDate"`
		PaymentMethod    PaymentMethod   `json:"paymentMethod"`
		AccountID        string          `json:"accountId"`
		CardID           string          `json:"cardId"`
		Installments     *Installments   `json:"installments"`
		NotificationSent bool            `json:"notificationSent"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.ID = temp.ID
	t.Type = temp.Type
	t.Description = temp.Description
	t.Amount = temp.Amount
	t.Category = temp.Category
	t.Date = temp.Date
	t.Paid = temp.Paid
	t.DueDate = temp.DueDate
	t.NotificationSent = temp.NotificationSent

	switch temp.PaymentMethod {
	case PayBankTransfer, PayDebitCard:
		t.Payment = TransferPayment{Via: temp.PaymentMethod, AccountID: temp.AccountID}
	case PayCreditCard:
		t.Payment = CardPayment{CardID: temp.CardID, Installments: temp.Installments}
	case PayCash, PayPix:
		t.Payment = CashPayment{Via: temp.PaymentMethod}
	case "":
		t.Payment = CashPayment{Via: PayCash}
	default:
		return fmt.Errorf("unknown payment method %q", temp.PaymentMethod)
	}
	return nil
}

// Goal is a savings target. CurrentAmount is not capped by TargetAmount.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      Date            `json:"deadline"`
}

// Account is a cash-holding bank account.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"` // signed
	Institution    string          `json:"institution,omitempty"`
	Type           string          `json:"type"`
	Color          string          `json:"color"`
}

// CreditCard is a credit card. CurrentBalance is a running utilization
// figure maintained by the user, not derived from transactions.
type CreditCard struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Limit          decimal.Decimal `json:"limit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	DueDate        int             `json:"dueDate"` // billing due day of the month
}

// InvestmentType is the asset class of a tracked position.
type InvestmentType string

const (
	AssetStock       InvestmentType = "stock"
	AssetRealFund    InvestmentType = "fii"
	AssetFixedIncome InvestmentType = "fixed_income"
	AssetCrypto      InvestmentType = "crypto"
	AssetETF         InvestmentType = "etf"
	AssetOther       InvestmentType = "other"
)

// Strategy is the investment strategy a position belongs to.
type Strategy string

const (
	StrategyGrowth      Strategy = "growth"
	StrategyDividends   Strategy = "dividends"
	StrategySpeculation Strategy = "speculation"
	StrategyReserve     Strategy = "reserve"
)

// MovementType identifies a ledger entry against an investment position.
type MovementType string

const (
	MovementBuy    MovementType = "BUY"
	MovementSell   MovementType = "SELL"
	MovementUpdate MovementType = "UPDATE"
)

// Movement is one immutable ledger entry against an Investment.
type Movement struct {
	ID           string          `json:"id"`
	Date         Date            `json:"date"`
	Type         MovementType    `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Notes        string          `json:"notes,omitempty"`
}

// Investment is a tracked asset position. History is append-only, in entry
// order (not necessarily sorted by movement date), and always explains the
// current position from an empty starting point.
type Investment struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         InvestmentType  `json:"type"`
	Broker       string          `json:"broker"`
	Strategy     Strategy        `json:"strategy"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"` // cost basis per unit
	CurrentPrice decimal.Decimal `json:"currentPrice"` // latest mark
	PurchaseDate Date            `json:"purchaseDate"`
	History      []Movement      `json:"history"`
}

// Property is a simple valued asset.
type Property struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Debt is an outstanding liability.
type Debt struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}
