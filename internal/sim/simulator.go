// Package sim implements the business-simulation state machine. Each
// learner is either Idle (no pending transaction) or AwaitingClassification
// (exactly one). Starting an action generates a pending transaction;
// classifying it correctly applies the action's effects to the learner's
// business state and appends a ledger entry; canceling discards it.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/classify"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/ledger"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/drdebit/aalp-sub001/internal/problem"
	"github.com/drdebit/aalp-sub001/internal/service"
)

// Simulator drives per-learner simulations on top of a Storage. Atomicity
// comes from the storage contract: pending-transaction creation is a
// strict insert, state writes are compare-and-swap, and a completed move
// commits its ledger entry, state, and pending-delete as one unit, so
// concurrent operations for the same learner cannot both win a
// read-decide-write race and a lost race leaves nothing half-applied.
type Simulator struct {
	catalog *catalog.Catalog
	engine  *classify.Engine
	storage service.Storage
	rng     *rand.Rand
}

// NewSimulator creates a simulator. A nil rng gets a time-seeded source.
func NewSimulator(c *catalog.Catalog, storage service.Storage, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{
		catalog: c,
		engine:  classify.NewEngine(c),
		storage: storage,
		rng:     rng,
	}
}

// StartResult is the successful outcome of StartAction.
type StartResult struct {
	Pending *model.PendingTransaction `json:"pending"`
	State   *model.BusinessState      `json:"state"`
}

// ClassifyOutcome is the outcome of ClassifyPending. LedgerEntry and State
// are set only on a correct verdict; Pending is set (with its incremented
// attempt count) only on an incorrect one.
type ClassifyOutcome struct {
	Result      model.ClassificationResult `json:"result"`
	LedgerEntry *model.LedgerEntry         `json:"ledger_entry,omitempty"`
	State       *model.BusinessState       `json:"state,omitempty"`
	Pending     *model.PendingTransaction  `json:"pending,omitempty"`
}

// StartAction begins a simulation move: it verifies no transaction is
// already pending, checks the action's level gate and prerequisites, binds
// the action's template against the current state (with simulation
// overrides such as picking an affordable quantity or an existing vendor),
// and stores the resulting pending transaction. studentVars may pin
// template variables, e.g. which vendor to pay.
func (s *Simulator) StartAction(ctx context.Context, learnerID, actionKey string, level int, studentVars map[string]any) (*StartResult, error) {
	state, err := s.loadOrInitState(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPendingTransaction(ctx, learnerID); err == nil {
		return nil, common.ErrDuplicatePending
	} else if !errors.Is(err, common.ErrNoPending) {
		return nil, err
	}

	action, ok := s.catalog.Action(actionKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownAction, actionKey)
	}
	if ok, reason := checkAction(s.catalog, action, level, state); !ok {
		return nil, &PrerequisiteError{Reason: reason}
	}

	tmpl, ok := s.catalog.Template(action.TemplateKey)
	if !ok {
		return nil, fmt.Errorf("%w: action %q template %q", common.ErrInvalidCatalog, actionKey, action.TemplateKey)
	}

	narrative, vars, err := s.bindTransaction(action, tmpl, state, studentVars)
	if err != nil {
		return nil, err
	}

	pending := &model.PendingTransaction{
		ProblemID:      fmt.Sprintf("%s-%d", tmpl.Key, s.rng.Int63()),
		ActionKey:      action.Key,
		TemplateKey:    tmpl.Key,
		Narrative:      narrative,
		Variables:      vars,
		Assertions:     problem.ResolveAssertions(tmpl.RequiredAssertions, vars),
		Classification: tmpl.Classification,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.storage.CreatePendingTransaction(ctx, learnerID, pending); err != nil {
		return nil, err
	}

	common.LogDebug("Started action", common.Fields{
		"learner": learnerID,
		"action":  actionKey,
		"problem": pending.ProblemID,
	})
	return &StartResult{Pending: pending, State: state}, nil
}

// ClassifyPending scores the learner's assertions against the pending
// transaction's correct classification. Every call increments the attempt
// counter. A correct verdict applies the action's effects, advances the
// simulation clock, appends a ledger entry, and clears the pending
// transaction; anything else leaves the transaction in place.
func (s *Simulator) ClassifyPending(ctx context.Context, learnerID string, assertions model.AssertionSet) (*ClassifyOutcome, error) {
	pending, err := s.storage.GetPendingTransaction(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Classify(assertions, pending.Classification)
	if err != nil {
		return nil, err
	}

	pending.Attempts++

	if !result.Correct() {
		if err := s.storage.UpdatePendingTransaction(ctx, learnerID, pending); err != nil {
			return nil, err
		}
		return &ClassifyOutcome{Result: result, Pending: pending}, nil
	}

	state, err := s.loadOrInitState(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	action, ok := s.catalog.Action(pending.ActionKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownAction, pending.ActionKey)
	}

	next := state.Clone()
	if err := applyEffects(next, action.Effects, pending.Variables); err != nil {
		return nil, err
	}

	entryDate := next.Date
	next.MovesLeft--
	if next.MovesLeft <= 0 {
		next.Period++
		next.MovesLeft = model.MovesPerPeriod
	}
	next.Date = next.Date.AddDays(1 + s.rng.Intn(5))

	entry := &model.LedgerEntry{
		Date:        entryDate,
		Period:      state.Period,
		ActionKey:   pending.ActionKey,
		Narrative:   pending.Narrative,
		Variables:   pending.Variables,
		Assertions:  pending.Assertions,
		Legs:        s.renderEntryLegs(pending),
		TemplateKey: pending.TemplateKey,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.storage.CommitMove(ctx, learnerID, entry, next); err != nil {
		return nil, err
	}

	result.JournalEntry = entry.Legs

	common.LogDebug("Classified pending transaction", common.Fields{
		"learner":  learnerID,
		"action":   pending.ActionKey,
		"attempts": pending.Attempts,
	})
	return &ClassifyOutcome{Result: result, LedgerEntry: entry, State: next}, nil
}

// CancelPending unconditionally clears the pending transaction.
func (s *Simulator) CancelPending(ctx context.Context, learnerID string) error {
	return s.storage.DeletePendingTransaction(ctx, learnerID)
}

// Reset discards the learner's state, pending transaction, and entire
// ledger, and reinitializes the business to its starting values.
func (s *Simulator) Reset(ctx context.Context, learnerID string) (*model.BusinessState, error) {
	if err := s.storage.ResetLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	state := model.NewBusinessState()
	if err := s.storage.PutBusinessState(ctx, learnerID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// State returns the learner's current business state, initializing a new
// one on first contact.
func (s *Simulator) State(ctx context.Context, learnerID string) (*model.BusinessState, error) {
	return s.loadOrInitState(ctx, learnerID)
}

// Pending returns the learner's pending transaction, or
// common.ErrNoPending.
func (s *Simulator) Pending(ctx context.Context, learnerID string) (*model.PendingTransaction, error) {
	return s.storage.GetPendingTransaction(ctx, learnerID)
}

// Ledger returns the learner's full ledger in simulation-date order.
func (s *Simulator) Ledger(ctx context.Context, learnerID string) ([]model.LedgerEntry, error) {
	return s.storage.GetLedgerEntries(ctx, learnerID)
}

// Statements loads the learner's ledger and derives fresh financial
// statements from it.
func (s *Simulator) Statements(ctx context.Context, learnerID string) (ledger.FinancialStatements, error) {
	entries, err := s.storage.GetLedgerEntries(ctx, learnerID)
	if err != nil {
		return ledger.FinancialStatements{}, err
	}
	return ledger.Derive(s.catalog, entries), nil
}

func (s *Simulator) loadOrInitState(ctx context.Context, learnerID string) (*model.BusinessState, error) {
	state, err := s.storage.GetBusinessState(ctx, learnerID)
	if errors.Is(err, common.ErrNotFound) {
		state = model.NewBusinessState()
		if putErr := s.storage.PutBusinessState(ctx, learnerID, state); putErr != nil {
			return nil, putErr
		}
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// renderEntryLegs renders the rule's journal entry with the transaction's
// bound dollar amount, falling back to the engine's assertion-derived
// amount when the template has none.
func (s *Simulator) renderEntryLegs(pending *model.PendingTransaction) []model.JournalLeg {
	rule, ok := s.catalog.Rule(pending.Classification)
	if !ok {
		return nil
	}
	amount, _ := model.NumericValue(pending.Variables["amount"])
	return s.engine.RenderLegs(rule, pending.Assertions, amount)
}

// bindTransaction binds a template for the simulation: variable draws are
// constrained by the current state (affordable amounts, sellable
// quantities, existing counterparty balances) and may be pinned by
// studentVars.
func (s *Simulator) bindTransaction(action *model.Action, tmpl *model.TransactionTemplate, state *model.BusinessState, studentVars map[string]any) (string, map[string]any, error) {
	vars := make(map[string]any, len(tmpl.Variables)+1)

	switch {
	case hasEffect(action, model.EffectSettlePayable):
		party, amount, err := s.pickBalance(state.Payables, studentVars, "vendor")
		if err != nil {
			return "", nil, err
		}
		if amount > state.Cash {
			return "", nil, &PrerequisiteError{
				Reason: fmt.Sprintf("Not enough cash to settle %s's $%s balance", party, common.FormatAmount(amount)),
			}
		}
		vars["vendor"] = party
		vars["amount"] = amount

	case hasEffect(action, model.EffectSettleReceivable):
		party, amount, err := s.pickBalance(state.Receivables, studentVars, "customer")
		if err != nil {
			return "", nil, err
		}
		vars["customer"] = party
		vars["amount"] = amount

	default:
		if err := s.drawVariables(action, tmpl, state, studentVars, vars); err != nil {
			return "", nil, err
		}
	}

	vars["date"] = state.Date
	return problem.RenderNarrative(tmpl.Narrative, vars), vars, nil
}

// drawVariables performs the paired random draw with simulation
// constraints: when the action spends cash only affordable amounts are
// eligible, and when it removes finished goods only sellable quantities
// are.
func (s *Simulator) drawVariables(action *model.Action, tmpl *model.TransactionTemplate, state *model.BusinessState, studentVars, vars map[string]any) error {
	names := make([]string, 0, len(tmpl.Variables))
	for name := range tmpl.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	indexByLength := make(map[int]int)
	for _, name := range names {
		values := tmpl.Variables[name]
		length := len(values)
		if _, done := indexByLength[length]; done {
			continue
		}

		eligible := s.eligibleIndices(action, tmpl, state, studentVars, length)
		if len(eligible) == 0 {
			return &PrerequisiteError{Reason: "No affordable option for this action right now"}
		}
		indexByLength[length] = eligible[s.rng.Intn(len(eligible))]
	}

	for _, name := range names {
		values := tmpl.Variables[name]
		vars[name] = values[indexByLength[len(values)]]
	}
	return nil
}

func (s *Simulator) eligibleIndices(action *model.Action, tmpl *model.TransactionTemplate, state *model.BusinessState, studentVars map[string]any, length int) []int {
	amounts := arrayOfLength(tmpl, "amount", length)
	quantities := arrayOfLength(tmpl, "quantity", length)

	var eligible []int
	for i := 0; i < length; i++ {
		if amounts != nil && hasEffect(action, model.EffectSpendCash) {
			if amount, ok := model.NumericValue(amounts[i]); ok && amount > state.Cash {
				continue
			}
		}
		if quantities != nil && hasEffect(action, model.EffectRemoveFinished) {
			if qty, ok := model.NumericValue(quantities[i]); ok && int(qty) > state.FinishedGoods {
				continue
			}
		}
		if !matchesPinned(tmpl, studentVars, length, i) {
			continue
		}
		eligible = append(eligible, i)
	}
	return eligible
}

// matchesPinned restricts a draw to indices consistent with any studentVars
// that name variables of this array length.
func matchesPinned(tmpl *model.TransactionTemplate, studentVars map[string]any, length, idx int) bool {
	for name, pinned := range studentVars {
		values, ok := tmpl.Variables[name]
		if !ok || len(values) != length {
			continue
		}
		if !model.ValueEqual(values[idx], pinned) {
			return false
		}
	}
	return true
}

func arrayOfLength(tmpl *model.TransactionTemplate, name string, length int) []any {
	values, ok := tmpl.Variables[name]
	if !ok || len(values) != length {
		return nil
	}
	return values
}

// pickBalance selects an existing counterparty balance to settle,
// preferring one pinned in studentVars.
func (s *Simulator) pickBalance(balances map[string]float64, studentVars map[string]any, varName string) (string, float64, error) {
	if pinned, ok := studentVars[varName].(string); ok {
		if amount, exists := balances[pinned]; exists && amount > 0 {
			return pinned, amount, nil
		}
		return "", 0, &PrerequisiteError{Reason: fmt.Sprintf("No outstanding balance for %q", pinned)}
	}

	parties := make([]string, 0, len(balances))
	for party, amount := range balances {
		if amount > 0 {
			parties = append(parties, party)
		}
	}
	if len(parties) == 0 {
		return "", 0, &PrerequisiteError{Reason: "No outstanding balance to settle"}
	}
	sort.Strings(parties)

	party := parties[s.rng.Intn(len(parties))]
	return party, balances[party], nil
}

func hasEffect(action *model.Action, kind model.EffectKind) bool {
	for _, effect := range action.Effects {
		if effect.Kind == kind {
			return true
		}
	}
	return false
}
