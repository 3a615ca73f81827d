// Package pocket is the data core of the Dois no Bolso personal-finance
// tracker: a single-profile dataset of transactions, goals, accounts,
// cards, investments, properties and debts, persisted as one versioned
// JSON blob behind a swappable key-value backend.
//
// The Store owns the dataset and exposes one mutation per lifecycle event;
// every mutation is a full load-mutate-save cycle serialized by the store.
// On top of the dataset, pure calculators derive the dashboard summary,
// balance sheet and calendar views, the installment expander turns a
// credit-card purchase into its monthly records, and the investment engine
// maintains weighted-average cost basis across BUY/SELL/UPDATE movements.
package pocket
