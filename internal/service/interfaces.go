// Package service defines the interfaces between the simulation core and
// its collaborators.
package service

import (
	"context"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// Storage is the persistence contract for per-learner simulation state.
//
// Put operations are compare-and-swap: they succeed only when the stored
// version still equals the Version carried by the value being written, and
// return common.ErrVersionConflict otherwise. This is what makes
// read-decide-write sequences (start an action only if no pending
// transaction exists) safe under concurrent calls for the same learner.
type Storage interface {
	// GetBusinessState returns the learner's state, or
	// common.ErrNotFound when the learner has never played.
	GetBusinessState(ctx context.Context, learnerID string) (*model.BusinessState, error)

	// PutBusinessState writes the state. state.Version must equal the
	// stored version (zero for a first write); on success the stored
	// version advances.
	PutBusinessState(ctx context.Context, learnerID string, state *model.BusinessState) error

	// GetPendingTransaction returns the learner's single pending
	// transaction, or common.ErrNoPending when none exists.
	GetPendingTransaction(ctx context.Context, learnerID string) (*model.PendingTransaction, error)

	// CreatePendingTransaction inserts the learner's pending transaction.
	// It returns common.ErrDuplicatePending when one already exists; this
	// insert-only semantic is what keeps two concurrent start-action calls
	// from both succeeding.
	CreatePendingTransaction(ctx context.Context, learnerID string, pending *model.PendingTransaction) error

	// UpdatePendingTransaction rewrites the existing pending transaction
	// (attempt counts). It returns common.ErrNoPending when none exists.
	UpdatePendingTransaction(ctx context.Context, learnerID string, pending *model.PendingTransaction) error

	// DeletePendingTransaction removes the pending transaction; deleting
	// when none exists is not an error.
	DeletePendingTransaction(ctx context.Context, learnerID string) error

	// CommitMove atomically appends the ledger entry, writes the new
	// state (compare-and-swap on state.Version), and deletes the pending
	// transaction. Nothing is committed on failure, so a lost
	// compare-and-swap leaves the ledger and the pending transaction
	// untouched and the move can simply be retried.
	CommitMove(ctx context.Context, learnerID string, entry *model.LedgerEntry, state *model.BusinessState) error

	// GetLedgerEntries returns the learner's full ledger ordered by
	// simulation date, then insertion order.
	GetLedgerEntries(ctx context.Context, learnerID string) ([]model.LedgerEntry, error)

	// ResetLearner discards the learner's state, pending transaction, and
	// ledger in one atomic operation.
	ResetLearner(ctx context.Context, learnerID string) error

	// Migrate brings the underlying schema up to date.
	Migrate(ctx context.Context) error

	Close() error
}
