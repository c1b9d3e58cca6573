package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// GetPendingTransaction returns the learner's pending transaction, or
// common.ErrNoPending when the learner is idle.
func (s *SQLiteStorage) GetPendingTransaction(ctx context.Context, learnerID string) (*model.PendingTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM pending_transactions WHERE learner_id = ?`,
		learnerID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoPending
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending transaction: %w", err)
	}

	var pending model.PendingTransaction
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, fmt.Errorf("failed to decode pending transaction: %w", err)
	}
	return &pending, nil
}

// CreatePendingTransaction inserts the learner's pending transaction. The
// primary key on learner_id makes this a strict insert: a second create
// while one is in flight fails with common.ErrDuplicatePending rather than
// overwriting.
func (s *SQLiteStorage) CreatePendingTransaction(ctx context.Context, learnerID string, pending *model.PendingTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}
	if err := validatePending(pending); err != nil {
		return err
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending transaction: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO pending_transactions (learner_id, payload) VALUES (?, ?)`,
		learnerID, string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert pending transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check insert result: %w", err)
	}
	if rows == 0 {
		return common.ErrDuplicatePending
	}
	return nil
}

// UpdatePendingTransaction rewrites the existing pending transaction, used
// to persist incremented attempt counts. It returns common.ErrNoPending
// when there is nothing to update.
func (s *SQLiteStorage) UpdatePendingTransaction(ctx context.Context, learnerID string, pending *model.PendingTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}
	if err := validatePending(pending); err != nil {
		return err
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending transaction: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE pending_transactions SET payload = ? WHERE learner_id = ?`,
		string(payload), learnerID)
	if err != nil {
		return fmt.Errorf("failed to update pending transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return common.ErrNoPending
	}
	return nil
}

// DeletePendingTransaction removes the pending transaction. Deleting when
// none exists is a no-op.
func (s *SQLiteStorage) DeletePendingTransaction(ctx context.Context, learnerID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_transactions WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("failed to delete pending transaction: %w", err)
	}
	return nil
}
