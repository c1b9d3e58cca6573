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

// GetBusinessState returns the learner's persisted state with its current
// compare-and-swap version, or common.ErrNotFound for an unknown learner.
func (s *SQLiteStorage) GetBusinessState(ctx context.Context, learnerID string) (*model.BusinessState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return nil, err
	}

	var payload string
	var version int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, version FROM business_state WHERE learner_id = ?`,
		learnerID).Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: business state for learner %q", common.ErrNotFound, learnerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business state: %w", err)
	}

	var state model.BusinessState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("failed to decode business state: %w", err)
	}
	state.Version = version
	return &state, nil
}

// PutBusinessState writes the state with compare-and-swap semantics: a
// state with Version zero must not exist yet, and any other version must
// match the stored row. On success state.Version is advanced to the newly
// stored version.
func (s *SQLiteStorage) PutBusinessState(ctx context.Context, learnerID string, state *model.BusinessState) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}
	if err := validateState(state); err != nil {
		return err
	}

	version, err := putBusinessStateTx(ctx, s.db, learnerID, state)
	if err != nil {
		return err
	}
	state.Version = version
	return nil
}

// putBusinessStateTx performs the compare-and-swap write against q and
// returns the version the row now holds. It does not mutate state, so a
// caller running inside a transaction can apply the new version only after
// commit.
func putBusinessStateTx(ctx context.Context, q execer, learnerID string, state *model.BusinessState) (int64, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("failed to encode business state: %w", err)
	}

	if state.Version == 0 {
		result, insertErr := q.ExecContext(ctx,
			`INSERT OR IGNORE INTO business_state (learner_id, payload, version) VALUES (?, ?, 1)`,
			learnerID, string(payload))
		if insertErr != nil {
			return 0, fmt.Errorf("failed to insert business state: %w", insertErr)
		}
		rows, raErr := result.RowsAffected()
		if raErr != nil {
			return 0, fmt.Errorf("failed to check insert result: %w", raErr)
		}
		if rows == 0 {
			return 0, fmt.Errorf("%w: business state for learner %q already exists", common.ErrVersionConflict, learnerID)
		}
		return 1, nil
	}

	result, err := q.ExecContext(ctx,
		`UPDATE business_state
		 SET payload = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		 WHERE learner_id = ? AND version = ?`,
		string(payload), learnerID, state.Version)
	if err != nil {
		return 0, fmt.Errorf("failed to update business state: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return 0, fmt.Errorf("%w: business state for learner %q changed since read", common.ErrVersionConflict, learnerID)
	}
	return state.Version + 1, nil
}

// ResetLearner deletes the learner's state, pending transaction, and
// ledger in a single transaction.
func (s *SQLiteStorage) ResetLearner(ctx context.Context, learnerID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(learnerID, "learnerID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, query := range []string{
		`DELETE FROM business_state WHERE learner_id = ?`,
		`DELETE FROM pending_transactions WHERE learner_id = ?`,
		`DELETE FROM ledger_entries WHERE learner_id = ?`,
	} {
		if _, execErr := tx.ExecContext(ctx, query, learnerID); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to reset learner: %w", execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
