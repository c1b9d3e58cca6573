package storage

import (
	"context"
	"testing"

	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testPending(problemID string) *model.PendingTransaction {
	return &model.PendingTransaction{
		ProblemID:      problemID,
		ActionKey:      "buy-tshirts",
		TemplateKey:    "buy-tshirts-cash",
		Narrative:      "a narrative",
		Variables:      map[string]any{"amount": 400.0},
		Classification: "cash-inventory-purchase",
	}
}

func TestGetBusinessStateUnknownLearner(t *testing.T) {
	store := setupStorage(t)

	_, err := store.GetBusinessState(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPutBusinessStateVersioning(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	state := model.NewBusinessState()
	require.NoError(t, store.PutBusinessState(ctx, "learner", state))
	assert.Equal(t, int64(1), state.Version)

	loaded, err := store.GetBusinessState(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	assert.InDelta(t, state.Cash, loaded.Cash, 1e-9)

	loaded.Cash -= 400
	require.NoError(t, store.PutBusinessState(ctx, "learner", loaded))
	assert.Equal(t, int64(2), loaded.Version)

	// A writer holding the old version loses the compare-and-swap.
	stale := model.NewBusinessState()
	stale.Version = 1
	assert.ErrorIs(t, store.PutBusinessState(ctx, "learner", stale), common.ErrVersionConflict)

	// A second initial insert for the same learner loses too.
	fresh := model.NewBusinessState()
	assert.ErrorIs(t, store.PutBusinessState(ctx, "learner", fresh), common.ErrVersionConflict)
}

func TestPendingTransactionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	_, err := store.GetPendingTransaction(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)

	pending := testPending("p-1")
	require.NoError(t, store.CreatePendingTransaction(ctx, "learner", pending))

	// Strict insert: a second create must not overwrite the first.
	err = store.CreatePendingTransaction(ctx, "learner", testPending("p-2"))
	assert.ErrorIs(t, err, common.ErrDuplicatePending)

	loaded, err := store.GetPendingTransaction(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, "p-1", loaded.ProblemID)
	assert.Equal(t, 0, loaded.Attempts)

	loaded.Attempts++
	require.NoError(t, store.UpdatePendingTransaction(ctx, "learner", loaded))

	loaded, err = store.GetPendingTransaction(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Attempts)

	require.NoError(t, store.DeletePendingTransaction(ctx, "learner"))
	_, err = store.GetPendingTransaction(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)

	// Delete is idempotent, update of a missing row is not.
	assert.NoError(t, store.DeletePendingTransaction(ctx, "learner"))
	assert.ErrorIs(t, store.UpdatePendingTransaction(ctx, "learner", loaded), common.ErrNoPending)
}

func TestLedgerEntriesOrderedBySimDate(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	// Inserted out of simulation-date order on purpose.
	dates := []model.SimDate{
		{Year: 2, Month: 1, Day: 5},
		{Year: 1, Month: 3, Day: 12},
		{Year: 1, Month: 3, Day: 2},
	}
	for i, date := range dates {
		entry := &model.LedgerEntry{
			Date:      date,
			Period:    1,
			ActionKey: "buy-tshirts",
			Legs:      []model.JournalLeg{{Debit: "Raw Materials Inventory $400", Credit: "Cash $400"}},
		}
		require.NoError(t, store.AppendLedgerEntry(ctx, "learner", entry))
		assert.Equal(t, int64(i+1), entry.ID, "append fills the assigned row id")
	}

	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, model.SimDate{Year: 1, Month: 3, Day: 2}, entries[0].Date)
	assert.Equal(t, model.SimDate{Year: 1, Month: 3, Day: 12}, entries[1].Date)
	assert.Equal(t, model.SimDate{Year: 2, Month: 1, Day: 5}, entries[2].Date)
	assert.Equal(t, "Cash $400", entries[0].Legs[0].Credit)
}

func TestLedgerEntriesSameDateOrderedByInsertion(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	date := model.SimDate{Year: 1, Month: 2, Day: 7}
	for _, key := range []string{"first", "second"} {
		entry := &model.LedgerEntry{Date: date, Period: 1, ActionKey: key}
		require.NoError(t, store.AppendLedgerEntry(ctx, "learner", entry))
	}

	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].ActionKey)
	assert.Equal(t, "second", entries[1].ActionKey)
}

func TestCommitMoveLandsWholeMove(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	state := model.NewBusinessState()
	require.NoError(t, store.PutBusinessState(ctx, "learner", state))
	require.NoError(t, store.CreatePendingTransaction(ctx, "learner", testPending("p-1")))

	state.Cash -= 400
	entry := &model.LedgerEntry{
		Date:      model.SimStart,
		Period:    1,
		ActionKey: "buy-tshirts",
		Legs:      []model.JournalLeg{{Debit: "Raw Materials Inventory $400", Credit: "Cash $400"}},
	}
	require.NoError(t, store.CommitMove(ctx, "learner", entry, state))

	assert.Equal(t, int64(2), state.Version)
	assert.Equal(t, int64(1), entry.ID)

	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "buy-tshirts", entries[0].ActionKey)

	_, err = store.GetPendingTransaction(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)
}

func TestCommitMoveRollsBackOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	state := model.NewBusinessState()
	require.NoError(t, store.PutBusinessState(ctx, "learner", state))
	require.NoError(t, store.CreatePendingTransaction(ctx, "learner", testPending("p-1")))

	// A rival writer advances the stored version after our read.
	rival, err := store.GetBusinessState(ctx, "learner")
	require.NoError(t, err)
	require.NoError(t, store.PutBusinessState(ctx, "learner", rival))

	state.Cash -= 400
	entry := &model.LedgerEntry{Date: model.SimStart, Period: 1, ActionKey: "buy-tshirts"}
	err = store.CommitMove(ctx, "learner", entry, state)
	assert.ErrorIs(t, err, common.ErrVersionConflict)
	assert.Zero(t, entry.ID)
	assert.Equal(t, int64(1), state.Version, "a failed commit must not advance the in-memory version")

	// The lost race committed nothing.
	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = store.GetPendingTransaction(ctx, "learner")
	assert.NoError(t, err)
}

func TestResetLearnerClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	require.NoError(t, store.PutBusinessState(ctx, "learner", model.NewBusinessState()))
	require.NoError(t, store.CreatePendingTransaction(ctx, "learner", testPending("p-1")))
	require.NoError(t, store.AppendLedgerEntry(ctx, "learner", &model.LedgerEntry{
		Date: model.SimStart, Period: 1, ActionKey: "buy-tshirts",
	}))

	// Another learner's data must survive the reset.
	require.NoError(t, store.PutBusinessState(ctx, "other", model.NewBusinessState()))

	require.NoError(t, store.ResetLearner(ctx, "learner"))

	_, err := store.GetBusinessState(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetPendingTransaction(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)
	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.GetBusinessState(ctx, "other")
	assert.NoError(t, err)
}

func TestValidationErrors(t *testing.T) {
	ctx := context.Background()
	store := setupStorage(t)

	_, err := store.GetBusinessState(ctx, "")
	assert.Error(t, err)

	_, err = store.GetBusinessState(nil, "learner") //nolint:staticcheck // exercising the nil-context guard
	assert.Error(t, err)

	assert.Error(t, store.PutBusinessState(ctx, "learner", nil))
	assert.Error(t, store.CreatePendingTransaction(ctx, "learner", nil))
	assert.Error(t, store.AppendLedgerEntry(ctx, "learner", nil))

	// A pending transaction without a classification is rejected.
	incomplete := testPending("p-1")
	incomplete.Classification = ""
	assert.Error(t, store.CreatePendingTransaction(ctx, "learner", incomplete))
}
