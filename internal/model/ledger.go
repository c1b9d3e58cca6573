package model

import "time"

// LedgerEntry is an immutable record of a correctly classified simulation
// transaction. Entries are append-only: once written they are never
// mutated, and financial statements are re-derived from the full ledger on
// each request.
type LedgerEntry struct {
	ID          int64          `json:"id"`
	Date        SimDate        `json:"date"`
	Period      int            `json:"period"`
	ActionKey   string         `json:"action_key"`
	Narrative   string         `json:"narrative"`
	Variables   map[string]any `json:"variables"`
	Assertions  AssertionSet   `json:"assertions"`
	Legs        []JournalLeg   `json:"legs"`
	TemplateKey string         `json:"template_key"`
	CreatedAt   time.Time      `json:"created_at"`
}
