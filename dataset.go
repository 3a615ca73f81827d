package pocket

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// UserMode selects whether the dataset tracks one person or a couple.
type UserMode string

const (
	ModeIndividual UserMode = "INDIVIDUAL"
	ModeCouple     UserMode = "COUPLE"
)

// Language selects the dataset display language.
type Language string

const (
	LanguagePT Language = "PT"
	LanguageEN Language = "EN"
)

// AppData is the aggregate root: the complete financial dataset for one
// user profile. It is loaded whole, mutated whole, and saved whole.
type AppData struct {
	Transactions     []Transaction `json:"transactions"`
	Goals            []Goal        `json:"goals"`
	Accounts         []Account     `json:"accounts"`
	CreditCards      []CreditCard  `json:"creditCards"`
	Investments      []Investment  `json:"investments"`
	Properties       []Property    `json:"properties"`
	Debts            []Debt        `json:"debts"`
	CustomCategories []string      `json:"customCategories"`
	UserMode         UserMode      `json:"userMode"`
	Language         Language      `json:"language"`
}

// NewAppData returns a freshly initialized empty dataset.
func NewAppData() *AppData {
	d := &AppData{}
	d.normalize()
	return d
}

// normalize is the read-time migration: any top-level field missing from an
// older schema version is filled with its type-appropriate default. Old
// data is never rewritten proactively; defaults apply on every load.
func (d *AppData) normalize() {
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
	if d.CreditCards == nil {
		d.CreditCards = []CreditCard{}
	}
	if d.Investments == nil {
		d.Investments = []Investment{}
	}
	if d.Properties == nil {
		d.Properties = []Property{}
	}
	if d.Debts == nil {
		d.Debts = []Debt{}
	}
	if d.CustomCategories == nil {
		d.CustomCategories = []string{}
	}
	if d.UserMode == "" {
		d.UserMode = ModeIndividual
	}
	if d.Language == "" {
		d.Language = LanguagePT
	}
}

// decodeAppData parses a serialized dataset blob and applies the read-time
// migration.
func decodeAppData(blob []byte) (*AppData, error) {
	var d AppData
	if err := json.Unmarshal(blob, &d); err != nil {
		return nil, fmt.Errorf("cannot parse dataset: %w", err)
	}
	d.normalize()
	return &d, nil
}

// encodeAppData serializes the full dataset.
func encodeAppData(d *AppData) ([]byte, error) {
	blob, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize dataset: %w", err)
	}
	return blob, nil
}

// clone returns a deep copy of the dataset by round-tripping it through its
// serialized form. A round-trip failure falls back to sharing the live
// dataset rather than taking the session down.
func (d *AppData) clone() *AppData {
	blob, err := encodeAppData(d)
	if err != nil {
		log.Printf("could not copy dataset, sharing the live one: %v", err)
		return d
	}
	c, err := decodeAppData(blob)
	if err != nil {
		log.Printf("could not copy dataset, sharing the live one: %v", err)
		return d
	}
	return c
}

// Transaction returns the transaction with the given id, or nil.
func (d *AppData) Transaction(id string) *Transaction {
	for i := range d.Transactions {
		if d.Transactions[i].ID == id {
			return &d.Transactions[i]
		}
	}
	return nil
}

// Investment returns the investment with the given id, or nil.
func (d *AppData) Investment(id string) *Investment {
	for i := range d.Investments {
		if d.Investments[i].ID == id {
			return &d.Investments[i]
		}
	}
	return nil
}

// Categories returns the suggested category list: the built-in suggestions
// followed by the user's custom categories, insertion-ordered.
func (d *AppData) Categories() []string {
	out := make([]string, 0, len(defaultCategories)+len(d.CustomCategories))
	out = append(out, defaultCategories...)
	out = append(out, d.CustomCategories...)
	return out
}

// defaultCategories is the built-in suggestion list. Transactions may carry
// any free-form category; this list only feeds pickers and the assistant.
var defaultCategories = []string{
	"housing",
	"groceries",
	"transport",
	"health",
	"education",
	"leisure",
	"salary",
	"utilities",
	"subscriptions",
	"other",
}
