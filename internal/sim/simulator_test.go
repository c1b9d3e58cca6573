package sim

import (
	"context"
	"testing"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/drdebit/aalp-sub001/internal/service"
	"github.com/drdebit/aalp-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T) *Simulator {
	t.Helper()
	store := testutil.SetupTestDB(t)
	return NewSimulator(catalog.MustDefault(), store, testutil.SeededRNG(42))
}

func TestStartActionCreatesPendingTransaction(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, catalog.ActionBuyTshirts, start.Pending.ActionKey)
	assert.Equal(t, catalog.RuleCashInventoryPurchase, start.Pending.Classification)
	assert.NotEmpty(t, start.Pending.Narrative)
	assert.NotEmpty(t, start.Pending.Assertions)
	assert.InDelta(t, model.StartingCash, start.State.Cash, 1e-9, "starting an action must not touch the business yet")

	pending, err := simulator.Pending(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, start.Pending.ProblemID, pending.ProblemID)
}

func TestStartActionRejectsSecondPending(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	_, err = simulator.StartAction(ctx, "learner", catalog.ActionBuyPrinter, 1, nil)
	assert.ErrorIs(t, err, common.ErrDuplicatePending)
}

func TestStartActionUnknownAction(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", "no-such-action", 1, nil)
	assert.ErrorIs(t, err, common.ErrUnknownAction)
}

func TestStartActionPrerequisiteFailure(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", catalog.ActionProduceTshirts, 1, nil)

	var prereqErr *PrerequisiteError
	require.ErrorAs(t, err, &prereqErr)
	assert.Equal(t, "Requires a T-Shirt Printer", prereqErr.Reason)
}

func TestStartActionLevelGate(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", catalog.ActionTakeLoan, 1, nil)

	var prereqErr *PrerequisiteError
	require.ErrorAs(t, err, &prereqErr)
	assert.Equal(t, "Unlocks at level 4", prereqErr.Reason)
}

func TestClassifyPendingIncorrectKeepsTransaction(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	outcome, err := simulator.ClassifyPending(ctx, "learner", model.AssertionSet{
		catalog.AssertProvides: {},
	})
	require.NoError(t, err)

	assert.False(t, outcome.Result.Correct())
	assert.NotEmpty(t, outcome.Result.Feedback.Hints)
	require.NotNil(t, outcome.Pending)
	assert.Equal(t, 1, outcome.Pending.Attempts)
	assert.Nil(t, outcome.LedgerEntry)
	assert.Nil(t, outcome.State)

	// The transaction survives for another attempt, with the count saved.
	pending, err := simulator.Pending(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Attempts)

	// And the business is untouched.
	state, err := simulator.State(ctx, "learner")
	require.NoError(t, err)
	assert.InDelta(t, model.StartingCash, state.Cash, 1e-9)
	assert.Empty(t, state.Inventory)
}

func TestClassifyPendingCorrectAppliesMove(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	amount, ok := model.NumericValue(start.Pending.Variables["amount"])
	require.True(t, ok)
	qty, ok := model.NumericValue(start.Pending.Variables["quantity"])
	require.True(t, ok)

	// Submitting the answer key is, by construction, a correct submission.
	outcome, err := simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)

	require.True(t, outcome.Result.Correct())
	require.NotNil(t, outcome.State)
	assert.InDelta(t, model.StartingCash-amount, outcome.State.Cash, 1e-9)
	assert.Equal(t, int(qty), outcome.State.Inventory[catalog.ItemBlankTshirts])
	assert.Equal(t, model.MovesPerPeriod-1, outcome.State.MovesLeft)
	assert.Equal(t, -1, model.SimStart.Compare(outcome.State.Date), "the clock advances after a move")

	// The ledger recorded the entry at the pre-advance date.
	require.NotNil(t, outcome.LedgerEntry)
	assert.Equal(t, model.SimStart, outcome.LedgerEntry.Date)
	assert.NotEmpty(t, outcome.LedgerEntry.Legs)

	// Pending transaction is gone.
	_, err = simulator.Pending(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)

	entries, err := simulator.Ledger(ctx, "learner")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, catalog.ActionBuyTshirts, entries[0].ActionKey)
}

func TestPeriodRollsOverAfterFiveMoves(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	for i := 0; i < model.MovesPerPeriod; i++ {
		start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1,
			map[string]any{"amount": 200})
		require.NoError(t, err)

		_, err = simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
		require.NoError(t, err)
	}

	state, err := simulator.State(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, 2, state.Period)
	assert.Equal(t, model.MovesPerPeriod, state.MovesLeft)
}

func TestSettlePayableFlow(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	// Buy on credit to create a payable.
	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirtsCredit, 2, nil)
	require.NoError(t, err)
	vendor, ok := start.Pending.Variables["vendor"].(string)
	require.True(t, ok)
	amount, ok := model.NumericValue(start.Pending.Variables["amount"])
	require.True(t, ok)

	_, err = simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)

	// Then pay the vendor; the bound amount must be the full balance.
	start, err = simulator.StartAction(ctx, "learner", catalog.ActionPayVendor, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, vendor, start.Pending.Variables["vendor"])
	boundAmount, ok := model.NumericValue(start.Pending.Variables["amount"])
	require.True(t, ok)
	assert.InDelta(t, amount, boundAmount, 1e-9)

	outcome, err := simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)

	require.True(t, outcome.Result.Correct())
	assert.NotContains(t, outcome.State.Payables, vendor)
	assert.InDelta(t, model.StartingCash-amount, outcome.State.Cash, 1e-9)
}

// contendedStorage simulates a rival writer landing between the
// simulator's state read and its commit: the next GetBusinessState returns
// the state as read, then advances the stored version behind its back.
type contendedStorage struct {
	service.Storage
	contend bool
}

func (c *contendedStorage) GetBusinessState(ctx context.Context, learnerID string) (*model.BusinessState, error) {
	state, err := c.Storage.GetBusinessState(ctx, learnerID)
	if err != nil || !c.contend {
		return state, err
	}
	c.contend = false

	rival, err := c.Storage.GetBusinessState(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if err := c.Storage.PutBusinessState(ctx, learnerID, rival); err != nil {
		return nil, err
	}
	return state, nil
}

func TestClassifyPendingConflictCommitsNothing(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)
	contended := &contendedStorage{Storage: store}
	simulator := NewSimulator(catalog.MustDefault(), contended, testutil.SeededRNG(7))

	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	contended.contend = true
	_, err = simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.ErrorIs(t, err, common.ErrVersionConflict)

	// The lost race left no ledger entry and the pending transaction
	// intact.
	entries, err := store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	assert.Empty(t, entries)
	pending, err := store.GetPendingTransaction(ctx, "learner")
	require.NoError(t, err)
	assert.Equal(t, start.Pending.ProblemID, pending.ProblemID)

	// Retrying the same submission commits exactly one entry.
	outcome, err := simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)
	require.True(t, outcome.Result.Correct())

	entries, err = store.GetLedgerEntries(ctx, "learner")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = store.GetPendingTransaction(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)
}

func TestCancelPendingClearsTransaction(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	_, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)

	require.NoError(t, simulator.CancelPending(ctx, "learner"))

	_, err = simulator.Pending(ctx, "learner")
	assert.ErrorIs(t, err, common.ErrNoPending)

	// A new action can start immediately.
	_, err = simulator.StartAction(ctx, "learner", catalog.ActionBuyPrinter, 1, nil)
	assert.NoError(t, err)
}

func TestResetRestoresInitialState(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)
	_, err = simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)

	state, err := simulator.Reset(ctx, "learner")
	require.NoError(t, err)

	assert.InDelta(t, model.StartingCash, state.Cash, 1e-9)
	assert.Equal(t, 1, state.Period)
	assert.Equal(t, model.MovesPerPeriod, state.MovesLeft)
	assert.Equal(t, model.SimStart, state.Date)
	assert.Empty(t, state.Inventory)

	entries, err := simulator.Ledger(ctx, "learner")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLearnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	start, err := simulator.StartAction(ctx, "alice", catalog.ActionBuyTshirts, 1, nil)
	require.NoError(t, err)
	_, err = simulator.ClassifyPending(ctx, "alice", start.Pending.Assertions)
	require.NoError(t, err)

	bob, err := simulator.State(ctx, "bob")
	require.NoError(t, err)
	assert.InDelta(t, model.StartingCash, bob.Cash, 1e-9)

	entries, err := simulator.Ledger(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStudentVarsPinDraw(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	for i := 0; i < 5; i++ {
		start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyTshirts, 1,
			map[string]any{"amount": 800})
		require.NoError(t, err)

		amount, ok := model.NumericValue(start.Pending.Variables["amount"])
		require.True(t, ok)
		assert.InDelta(t, 800.0, amount, 1e-9)

		qty, ok := model.NumericValue(start.Pending.Variables["quantity"])
		require.True(t, ok)
		assert.InDelta(t, 200.0, qty, 1e-9, "paired quantity follows the pinned amount")

		require.NoError(t, simulator.CancelPending(ctx, "learner"))
	}
}

func TestStatementsDeriveFromLedger(t *testing.T) {
	ctx := context.Background()
	simulator := newTestSimulator(t)

	start, err := simulator.StartAction(ctx, "learner", catalog.ActionBuyPrinter, 1, nil)
	require.NoError(t, err)
	_, err = simulator.ClassifyPending(ctx, "learner", start.Pending.Assertions)
	require.NoError(t, err)

	statements, err := simulator.Statements(ctx, "learner")
	require.NoError(t, err)

	assert.Equal(t, 1, statements.TransactionCount)
	assert.InDelta(t, statements.BalanceSheet.TotalAssets, statements.BalanceSheet.LiabilitiesPlusEquity, 1e-9)
}
