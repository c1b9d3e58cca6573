package classify

import (
	"strings"
	"testing"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.MustDefault())
}

func TestClassifyExactEquipmentPurchase(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary},
		catalog.AssertReceives:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemTshirtPrinter},
		catalog.AssertCounterparty: {},
	}

	result, err := engine.Classify(set, catalog.RuleCashEquipmentPurchase)
	require.NoError(t, err)

	assert.True(t, result.Correct())
	assert.Equal(t, catalog.RuleCashEquipmentPurchase, result.Feedback.Classification)
	require.Len(t, result.JournalEntry, 1)
	assert.Equal(t, catalog.AccountEquipment, result.JournalEntry[0].Debit)
	assert.Equal(t, catalog.AccountCash, result.JournalEntry[0].Credit)
}

func TestClassifyDistinguishesPurchaseByItemCategory(t *testing.T) {
	engine := newTestEngine(t)

	// Same assertion shape, but raw materials instead of equipment.
	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary, "quantity": 400},
		catalog.AssertReceives:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemBlankTshirts, "quantity": 100},
		catalog.AssertCounterparty: {"name": "Tees R Us"},
	}

	result, err := engine.Classify(set, "")
	require.NoError(t, err)

	assert.True(t, result.Correct())
	assert.Equal(t, catalog.RuleCashInventoryPurchase, result.Feedback.Classification)
	require.Len(t, result.JournalEntry, 1)
	assert.Equal(t, catalog.AccountRawMaterials+" $400", result.JournalEntry[0].Debit)
	assert.Equal(t, catalog.AccountCash+" $400", result.JournalEntry[0].Credit)
}

func TestClassifyBareProvidesAgainstCashSale(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertProvides: {},
	}

	result, err := engine.Classify(set, catalog.RuleCashSale)
	require.NoError(t, err)

	assert.False(t, result.Correct())
	require.NotNil(t, result.Nearest)
	assert.Equal(t, catalog.RuleCashSale, result.Nearest.Key)
	assert.ElementsMatch(t,
		[]string{catalog.AssertReceives, catalog.AssertCounterparty, catalog.AssertReports},
		result.Nearest.Breakdown.MissingRequired)
	// Three missing required assertions at weight 1.0, plus the present
	// provides assertion missing its required unit parameter at 1.5.
	assert.InDelta(t, 4.5, result.Nearest.Distance, 1e-9)
	assert.NotEmpty(t, result.Feedback.Hints)
}

func TestClassifyProhibitedAssertionScoresHeavier(t *testing.T) {
	engine := newTestEngine(t)

	// A cash sale submission that wrongly adds the future-inflow assertion,
	// which the cash-sale pattern prohibits.
	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemPrintedTshirts},
		catalog.AssertReceives:     {"unit": catalog.UnitMonetary},
		catalog.AssertCounterparty: {},
		catalog.AssertReports:      {"what": catalog.ReportsRevenue},
		catalog.AssertExpects:      {"unit": catalog.UnitMonetary},
	}

	result, err := engine.Classify(set, catalog.RuleCashSale)
	require.NoError(t, err)

	assert.False(t, result.Correct())
	require.NotNil(t, result.Nearest)
	assert.Equal(t, []string{catalog.AssertExpects}, result.Nearest.Breakdown.ProhibitedPresent)
	assert.InDelta(t, 2.0, result.Nearest.Distance, 1e-9)

	found := false
	for _, hint := range result.Feedback.Hints {
		if strings.Contains(hint, "contradicts") {
			found = true
		}
	}
	assert.True(t, found, "expected a remove-this-assertion hint, got %v", result.Feedback.Hints)
}

func TestClassifyCategoryHintNamesAnExampleItem(t *testing.T) {
	engine := newTestEngine(t)

	// An inventory purchase described with a finished good where the
	// pattern accepts any raw material.
	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary},
		catalog.AssertReceives:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemPrintedTshirts},
		catalog.AssertCounterparty: {},
	}

	result, err := engine.Classify(set, catalog.RuleCashInventoryPurchase)
	require.NoError(t, err)

	assert.False(t, result.Correct())
	found := false
	for _, hint := range result.Feedback.Hints {
		if strings.Contains(hint, "a raw material such as Blank T-Shirts") {
			found = true
		}
	}
	assert.True(t, found, "expected a category hint naming an example item, got %v", result.Feedback.Hints)
}

func TestClassifyWrongPatternEntirely(t *testing.T) {
	engine := newTestEngine(t)

	// Learner describes an owner contribution, but the transaction was a
	// loan. Both match exactly on their own; the verdict must grade against
	// the correct one.
	set := model.AssertionSet{
		catalog.AssertReceives:     {"unit": catalog.UnitMonetary},
		catalog.AssertCounterparty: {},
	}

	result, err := engine.Classify(set, catalog.RuleLoanReceived)
	require.NoError(t, err)

	assert.False(t, result.Correct())
	require.NotNil(t, result.Nearest)
	assert.Equal(t, catalog.RuleLoanReceived, result.Nearest.Key)
	assert.Contains(t, result.Nearest.Breakdown.MissingRequired, catalog.AssertRequires)
}

func TestClassifyUngradedReportsMatches(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary},
		catalog.AssertCounterparty: {},
		catalog.AssertSettles:      {"balance": catalog.BalancePayable},
	}

	result, err := engine.Classify(set, "")
	require.NoError(t, err)

	assert.True(t, result.Correct())
	assert.Contains(t, result.ExactMatches, catalog.RuleSettlePayable)
}

func TestClassifyUnknownCorrectKey(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Classify(model.AssertionSet{catalog.AssertProvides: {}}, "no-such-rule")
	assert.ErrorIs(t, err, common.ErrUnknownClassification)
}

func TestClassifyNormalizesNilParams(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertReceives:     {"unit": catalog.UnitMonetary},
		catalog.AssertCounterparty: nil,
	}

	result, err := engine.Classify(set, catalog.RuleOwnerContribution)
	require.NoError(t, err)
	assert.True(t, result.Correct())
}

func TestClassifyLinkagesExplainAccounts(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary},
		catalog.AssertReceives:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemBlankTshirts},
		catalog.AssertCounterparty: {},
	}

	result, err := engine.Classify(set, "")
	require.NoError(t, err)

	byAssertion := make(map[string]model.AccountLinkage)
	for _, linkage := range result.Feedback.Linkages {
		byAssertion[linkage.Assertion] = linkage
	}

	provides, ok := byAssertion[catalog.AssertProvides]
	require.True(t, ok)
	assert.Equal(t, catalog.AccountCash, provides.Account)
	assert.Equal(t, "credit", provides.Side)

	receives, ok := byAssertion[catalog.AssertReceives]
	require.True(t, ok)
	assert.Equal(t, catalog.AccountRawMaterials, receives.Account)
	assert.Equal(t, "debit", receives.Side)
}

func TestRenderLegsAmountSelection(t *testing.T) {
	engine := newTestEngine(t)
	c := catalog.MustDefault()

	rule, ok := c.Rule(catalog.RuleCreditSale)
	require.True(t, ok)

	// The physical quantity on provides must not be mistaken for the
	// dollar amount; expects carries the monetary quantity.
	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemPrintedTshirts, "quantity": 20},
		catalog.AssertExpects:      {"unit": catalog.UnitMonetary, "quantity": 500},
		catalog.AssertCounterparty: {},
		catalog.AssertReports:      {"what": catalog.ReportsRevenue},
	}

	legs := engine.RenderLegs(rule, set, 0)
	require.Len(t, legs, 1)
	assert.Equal(t, catalog.AccountReceivable+" $500", legs[0].Debit)
	assert.Equal(t, catalog.AccountSalesRevenue+" $500", legs[0].Credit)
}

func TestRenderLegsWithoutAmount(t *testing.T) {
	engine := newTestEngine(t)
	c := catalog.MustDefault()

	rule, ok := c.Rule(catalog.RuleCashEquipmentPurchase)
	require.True(t, ok)

	set := model.AssertionSet{
		catalog.AssertProvides:     {"unit": catalog.UnitMonetary},
		catalog.AssertReceives:     {"unit": catalog.UnitPhysical, "physical-item": catalog.ItemTshirtPrinter},
		catalog.AssertCounterparty: {},
	}

	legs := engine.RenderLegs(rule, set, 0)
	require.Len(t, legs, 1)
	assert.Equal(t, catalog.AccountEquipment, legs[0].Debit)
	assert.Equal(t, catalog.AccountCash, legs[0].Credit)
}

func TestNearestMatchDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	set := model.AssertionSet{
		catalog.AssertProvides: {"unit": catalog.UnitMonetary},
	}

	first, err := engine.Classify(set, "")
	require.NoError(t, err)
	require.NotNil(t, first.Nearest)

	for i := 0; i < 10; i++ {
		again, err := engine.Classify(set, "")
		require.NoError(t, err)
		require.NotNil(t, again.Nearest)
		assert.Equal(t, first.Nearest.Key, again.Nearest.Key)
		assert.Equal(t, first.Feedback.Hints, again.Feedback.Hints)
	}
}
