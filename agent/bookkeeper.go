package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/doisnobolsoapp/pocket"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Proposals collects the mutation intents the assistant produced during a
// session. The assistant never writes to the store itself: the caller
// reviews the proposals and applies them through the normal mutation API.
type Proposals struct {
	Transactions []pocket.Transaction
}

// Drain returns the collected proposals and empties the list.
func (p *Proposals) Drain() []pocket.Transaction {
	out := p.Transactions
	p.Transactions = nil
	return out
}

// NewBookkeeper creates the assistant expert. The snapshot func supplies a
// read-only view of the dataset for its reporting tools; proposed
// transactions accumulate in the returned Proposals.
func NewBookkeeper(snapshot func() *pocket.AppData) (*Expert, *Proposals) {
	proposals := &Proposals{}

	lib := []Function{
		proposeTransaction(proposals),
		monthlySummary(snapshot),
	}

	return &Expert{
		Name:      "Bookkeeper",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the household bookkeeper of a personal finance tracker.
			The user tells you about money they earned or spent, or asks how
			the month is going.

			When the user describes a concrete income or expense, call
			ProposeTransaction with your best reading of it. You only
			propose; the user reviews and applies the proposals afterwards,
			so never claim a record was saved.

			When the user asks about totals, balances or categories, call
			MonthlySummary and answer from its figures.

			Dates use the YYYY-MM-DD format. Amounts are plain positive
			numbers; the transaction type carries the sign.
		`}}},
		},
		Library: NewLibrary(lib),
	}, proposals
}

func proposeTransaction(proposals *Proposals) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ProposeTransaction",
			Description: `ProposeTransaction drafts one income or expense record from the
			user's words. The draft is applied by the user later, through the
			regular mutation flow.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {
						Type:        genai.TypeString,
						Description: "One of: income, expense, investment, loan.",
					},
					"description": {
						Type:        genai.TypeString,
						Description: "Short human description of the movement.",
					},
					"amount": {
						Type:        genai.TypeNumber,
						Description: "Positive amount; the type implies the sign.",
					},
					"category": {
						Type:        genai.TypeString,
						Description: "Category name, free form.",
					},
					"date": {
						Type:        genai.TypeString,
						Description: "Date as YYYY-MM-DD. Today when omitted.",
					},
					"paymentMethod": {
						Type:        genai.TypeString,
						Description: "One of: cash, bank_transfer, debit_card, credit_card, pix. Defaults to cash.",
					},
				},
				Required: []string{"type", "description", "amount"},
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "ProposeTransaction"}

			amount, ok := args["amount"].(float64)
			if !ok || amount <= 0 {
				fresp.Response = map[string]any{"error": "amount must be a positive number"}
				return fresp
			}

			tx := pocket.Transaction{
				Type:        pocket.TransactionType(str(args, "type")),
				Description: str(args, "description"),
				Amount:      decimal.NewFromFloat(amount),
				Category:    str(args, "category"),
				Paid:        true,
			}
			tx.Date = pocket.Today()
			if s := str(args, "date"); s != "" {
				day, err := pocket.ParseDate(s)
				if err != nil {
					fresp.Response = map[string]any{"error": err.Error()}
					return fresp
				}
				tx.Date = day
			}
			switch method := pocket.PaymentMethod(str(args, "paymentMethod")); method {
			case pocket.PayBankTransfer, pocket.PayDebitCard:
				tx.Payment = pocket.TransferPayment{Via: method}
			case pocket.PayCreditCard:
				tx.Payment = pocket.CardPayment{}
			case pocket.PayPix:
				tx.Payment = pocket.CashPayment{Via: pocket.PayPix}
			default:
				tx.Payment = pocket.CashPayment{Via: pocket.PayCash}
			}

			proposals.Transactions = append(proposals.Transactions, tx)
			fresp.Response = map[string]any{
				"output": fmt.Sprintf("proposed %s %q of %s, pending user review",
					tx.Type, tx.Description, tx.Amount),
			}
			return fresp
		},
	}
}

func monthlySummary(snapshot func() *pocket.AppData) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MonthlySummary",
			Description: `MonthlySummary returns the dashboard figures for one calendar
			month: paid income and expenses, pending expenses, net balance,
			invested capital, market value, and the expense breakdown by
			category.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "Calendar year. Current year when omitted.",
					},
					"month": {
						Type:        genai.TypeInteger,
						Description: "Month number 1-12. Current month when omitted.",
					},
				},
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			today := pocket.Today()
			year, month := today.Year(), today.Month()
			if y, ok := args["year"].(float64); ok && y != 0 {
				year = int(y)
			}
			if m, ok := args["month"].(float64); ok && m >= 1 && m <= 12 {
				month = time.Month(m)
			}

			s := pocket.NewSummary(snapshot(), year, month)
			categories := make(map[string]any, len(s.ByCategory))
			for _, c := range s.ByCategory {
				categories[c.Category] = c.Amount.InexactFloat64()
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "MonthlySummary",
				Response: map[string]any{
					"year":            year,
					"month":           int(month),
					"income":          s.Income.InexactFloat64(),
					"expenses":        s.Expenses.InexactFloat64(),
					"pendingExpenses": s.PendingExpenses.InexactFloat64(),
					"balance":         s.Balance.InexactFloat64(),
					"invested":        s.Invested.InexactFloat64(),
					"marketValue":     s.MarketValue.InexactFloat64(),
					"byCategory":      categories,
				},
			}
		},
	}
}

func str(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
