package pocket

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorageKey is the versioned key the dataset blob lives under. Bumping the
// version token is the designed path for breaking schema changes: old data
// under the old key becomes invisible instead of corrupting reads.
const StorageKey = "dois-no-bolso-data-v2"

// Store owns the dataset and its mutation API. Every mutation runs as one
// load-mutate-save cycle under a single mutex, so concurrent callers cannot
// interleave and lose updates. Persistence failures are logged and
// swallowed: the in-memory dataset stays authoritative for the session.
type Store struct {
	mu      sync.Mutex
	backend Backend
	data    *AppData
}

// NewStore opens the dataset persisted in the backend. An absent or
// unparsable blob yields a fresh empty dataset.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	s.data = s.load()
	return s
}

func (s *Store) load() *AppData {
	blob, ok, err := s.backend.Get(StorageKey)
	if err != nil {
		log.Printf("could not read dataset, starting empty: %v", err)
		return NewAppData()
	}
	if !ok {
		return NewAppData()
	}
	data, err := decodeAppData(blob)
	if err != nil {
		log.Printf("unparsable dataset under %q, starting empty: %v", StorageKey, err)
		return NewAppData()
	}
	return data
}

// save flushes the full dataset. Callers hold the mutex.
func (s *Store) save() {
	blob, err := encodeAppData(s.data)
	if err != nil {
		log.Printf("could not serialize dataset: %v", err)
		return
	}
	if err := s.backend.Set(StorageKey, blob); err != nil {
		// In-memory state remains authoritative; a later successful save
		// reconciles the divergence.
		log.Printf("could not persist dataset: %v", err)
	}
}

func newID() string { return uuid.NewString() }

// Data returns a snapshot of the current dataset. The snapshot is a deep
// copy; mutating it does not affect the store.
func (s *Store) Data() *AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

// Replace swaps in a whole new dataset (backup restore, settings import)
// and persists it. The incoming data goes through read-time defaulting.
func (s *Store) Replace(data *AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.normalize()
	s.data = data
	s.save()
}

// Reset clears the dataset back to its empty defaults and persists.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = NewAppData()
	s.save()
}

// prepare applies creation defaults to a transaction: a fresh id, today's
// date when none is given, and a due date mirroring the transaction date
// for unpaid records.
func prepare(tx Transaction) Transaction {
	tx.ID = newID()
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	if tx.Payment == nil {
		tx.Payment = CashPayment{Via: PayCash}
	}
	if !tx.Paid && tx.DueDate == nil {
		due := tx.Date
		tx.DueDate = &due
	}
	return tx
}

// AddTransaction appends one transaction and persists. It returns the
// created record with its assigned id.
func (s *Store) AddTransaction(tx Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx = prepare(tx)
	s.data.Transactions = append(s.data.Transactions, tx)
	s.save()
	return tx
}

// AddTransactions appends several transactions as one atomic bulk insert
// (a single save), e.g. the expanded installments of a credit-card
// purchase.
func (s *Store) AddTransactions(txs []Transaction) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		tx = prepare(tx)
		s.data.Transactions = append(s.data.Transactions, tx)
		created = append(created, tx)
	}
	s.save()
	return created
}

// DeleteTransaction removes the transaction with the given id. Missing ids
// are a silent no-op.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Transactions[:0]
	for _, tx := range s.data.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.data.Transactions = kept
	s.save()
}

// MarkTransactionPaid flips the paid flag on a transaction. Missing ids are
// a silent no-op.
func (s *Store) MarkTransactionPaid(id string, paid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx := s.data.Transaction(id); tx != nil {
		tx.Paid = paid
		s.save()
	}
}

// MarkNotificationSent records that a due-date notification went out for a
// transaction. Missing ids are a silent no-op.
func (s *Store) MarkNotificationSent(id string, sent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx := s.data.Transaction(id); tx != nil {
		tx.NotificationSent = sent
		s.save()
	}
}

// AddGoal appends a savings goal and persists.
func (s *Store) AddGoal(g Goal) Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = newID()
	s.data.Goals = append(s.data.Goals, g)
	s.save()
	return g
}

// UpdateGoal replaces the full goal record matching on id. Missing ids are
// a silent no-op.
func (s *Store) UpdateGoal(g Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Goals {
		if s.data.Goals[i].ID == g.ID {
			s.data.Goals[i] = g
			s.save()
			return
		}
	}
}

// AddAccount appends a bank account and persists.
func (s *Store) AddAccount(a Account) Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID()
	s.data.Accounts = append(s.data.Accounts, a)
	s.save()
	return a
}

// DeleteAccount removes an account and clears the accountId back-reference
// on every transaction that held it. Transactions are orphaned, never
// deleted.
func (s *Store) DeleteAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Accounts[:0]
	for _, a := range s.data.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.data.Accounts = kept
	for i := range s.data.Transactions {
		if p, ok := s.data.Transactions[i].Payment.(TransferPayment); ok && p.AccountID == id {
			p.AccountID = ""
			s.data.Transactions[i].Payment = p
		}
	}
	s.save()
}

// AddCreditCard appends a credit card and persists.
func (s *Store) AddCreditCard(c CreditCard) CreditCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	s.data.CreditCards = append(s.data.CreditCards, c)
	s.save()
	return c
}

// DeleteCreditCard removes a card and clears the cardId back-reference on
// every transaction that held it, mirroring DeleteAccount.
func (s *Store) DeleteCreditCard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.CreditCards[:0]
	for _, c := range s.data.CreditCards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.data.CreditCards = kept
	for i := range s.data.Transactions {
		if p, ok := s.data.Transactions[i].Payment.(CardPayment); ok && p.CardID == id {
			p.CardID = ""
			s.data.Transactions[i].Payment = p
		}
	}
	s.save()
}

// AddInvestment appends a tracked position and persists. A nonzero starting
// quantity synthesizes one implicit BUY movement dated at creation, so the
// history always explains the current position from an empty start.
func (s *Store) AddInvestment(inv Investment) Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = newID()
	if inv.PurchaseDate.IsZero() {
		inv.PurchaseDate = Today()
	}
	inv.History = []Movement{}
	if inv.Quantity.IsPositive() {
		inv.History = append(inv.History, newMovement(MovementBuy, inv.PurchaseDate,
			inv.Quantity, inv.AveragePrice, "initial balance"))
	}
	s.data.Investments = append(s.data.Investments, inv)
	s.save()
	return inv
}

// AddInvestmentMovement applies a BUY/SELL/UPDATE movement to a position
// and appends it to the history. It reports whether the movement was
// applied: a missing investment or a non-positive BUY quantity is a silent
// no-op with no persisted effect.
func (s *Store) AddInvestmentMovement(investmentID string, mvType MovementType, day Date, quantity, pricePerUnit decimal.Decimal, notes string) (Movement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := s.data.Investment(investmentID)
	if inv == nil {
		return Movement{}, false
	}
	if day.IsZero() {
		day = Today()
	}
	mv := newMovement(mvType, day, quantity, pricePerUnit, notes)
	if !applyMovement(inv, mv) {
		return Movement{}, false
	}
	s.save()
	return mv, true
}

// DeleteInvestment removes a position and its history.
func (s *Store) DeleteInvestment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Investments[:0]
	for _, inv := range s.data.Investments {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	s.data.Investments = kept
	s.save()
}

// AddProperty appends a valued property and persists.
func (s *Store) AddProperty(p Property) Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID()
	s.data.Properties = append(s.data.Properties, p)
	s.save()
	return p
}

// DeleteProperty removes a property. Missing ids are a silent no-op.
func (s *Store) DeleteProperty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Properties[:0]
	for _, p := range s.data.Properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.data.Properties = kept
	s.save()
}

// AddDebt appends a debt and persists.
func (s *Store) AddDebt(d Debt) Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = newID()
	s.data.Debts = append(s.data.Debts, d)
	s.save()
	return d
}

// DeleteDebt removes a debt. Missing ids are a silent no-op.
func (s *Store) DeleteDebt(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Debts[:0]
	for _, d := range s.data.Debts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.data.Debts = kept
	s.save()
}

// AddCustomCategory records a user-defined category name. Names are kept in
// insertion order and de-duplicated; blank or known names are a no-op.
func (s *Store) AddCustomCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, c := range s.data.CustomCategories {
		if c == name {
			return
		}
	}
	s.data.CustomCategories = append(s.data.CustomCategories, name)
	s.save()
}
