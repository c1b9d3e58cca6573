package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// AppendLedgerEntry appends one immutable entry to the learner's ledger
// and fills in the entry's assigned ID. Simulation moves commit their
// entries through CommitMove instead; this is the low-level append.
func (s *SQLiteStorage) AppendLedgerEntry(ctx context.Context, learnerID string, entry *model.LedgerEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	id, err := appendLedgerEntryTx(ctx, s.db, learnerID, entry)
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// appendLedgerEntryTx inserts the entry against q and returns the assigned
// row id without mutating entry.
func appendLedgerEntryTx(ctx context.Context, q execer, learnerID string, entry *model.LedgerEntry) (int64, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return 0, fmt.Errorf("failed to encode ledger entry: %w", err)
	}

	result, err := q.ExecContext(ctx,
		`INSERT INTO ledger_entries (learner_id, sim_year, sim_month, sim_day, period, action_key, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		learnerID, entry.Date.Year, entry.Date.Month, entry.Date.Day,
		entry.Period, entry.ActionKey, string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get ledger entry ID: %w", err)
	}
	return id, nil
}

// GetLedgerEntries returns the learner's full ledger ordered by simulation
// date, then insertion order.
func (s *SQLiteStorage) GetLedgerEntries(ctx context.Context, learnerID string) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload FROM ledger_entries
		 WHERE learner_id = ?
		 ORDER BY sim_year, sim_month, sim_day, id`,
		learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		var id int64
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		var entry model.LedgerEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode ledger entry %d: %w", id, err)
		}
		entry.ID = id
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}
