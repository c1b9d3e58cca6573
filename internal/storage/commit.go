package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// execer is the shared write surface of *sql.DB and *sql.Tx, so the
// single-statement storage methods and CommitMove's transaction run the
// same statements.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CommitMove lands a completed simulation move as one atomic unit: the
// business state is written (compare-and-swap on state.Version), the
// ledger entry is appended, and the pending transaction is deleted, all in
// a single database transaction. On any failure, including a version
// conflict against a concurrent writer, nothing is committed. On success
// state.Version and entry.ID carry their newly assigned values.
func (s *SQLiteStorage) CommitMove(ctx context.Context, learnerID string, entry *model.LedgerEntry, state *model.BusinessState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	version, err := putBusinessStateTx(ctx, tx, learnerID, state)
	if err != nil {
		return err
	}

	id, err := appendLedgerEntryTx(ctx, tx, learnerID, entry)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pending_transactions WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("failed to delete pending transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit move: %w", err)
	}

	state.Version = version
	entry.ID = id
	return nil
}
