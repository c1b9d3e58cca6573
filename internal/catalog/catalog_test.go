package catalog

import (
	"testing"

	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Rules(), 13)
	assert.NotEmpty(t, c.Items())
	assert.NotEmpty(t, c.Actions())
	assert.NotEmpty(t, c.Accounts())
}

func TestCatalogLookups(t *testing.T) {
	c := MustDefault()

	item, ok := c.Item(ItemBlankTshirts)
	require.True(t, ok)
	assert.Equal(t, "Blank T-Shirts", item.Label)
	assert.Equal(t, model.CategoryRawMaterial, item.Category)

	rule, ok := c.Rule(RuleCashSale)
	require.True(t, ok)
	assert.Contains(t, rule.Required, AssertReports)

	_, ok = c.Rule("no-such-rule")
	assert.False(t, ok)

	account, ok := c.Account(AccountAccumDepr)
	require.True(t, ok)
	assert.Equal(t, model.AccountContra, account.Type)
}

func TestTemplatesForLevelGates(t *testing.T) {
	c := MustDefault()

	level1 := c.TemplatesForLevel(1)
	for _, tmpl := range level1 {
		assert.LessOrEqual(t, tmpl.Level, 1, "template %s leaked past its level gate", tmpl.Key)
	}

	// Higher levels are supersets of lower ones.
	assert.Greater(t, len(c.TemplatesForLevel(4)), len(level1))
}

func TestAssertionsForLevelGates(t *testing.T) {
	c := MustDefault()

	level1 := c.AssertionsForLevel(1)
	codes := make(map[string]bool, len(level1))
	for _, def := range level1 {
		codes[def.Code] = true
	}

	assert.True(t, codes[AssertProvides])
	assert.True(t, codes[AssertReceives])
	assert.False(t, codes[AssertConsumes], "level 3 assertion visible at level 1")
}

func TestNewRejectsBadCrossReferences(t *testing.T) {
	items := DefaultItems()
	assertions := DefaultAssertions()
	accounts := DefaultAccounts()

	tests := []struct {
		name      string
		rules     []model.ClassificationRule
		templates []model.TransactionTemplate
		actions   []model.Action
	}{
		{
			name: "rule with unknown assertion",
			rules: []model.ClassificationRule{{
				Key:      "bad-rule",
				Required: []string{"no-such-assertion"},
			}},
		},
		{
			name: "rule constrains params of non-required assertion",
			rules: []model.ClassificationRule{{
				Key:            "bad-rule",
				Required:       []string{AssertProvides},
				RequiredParams: map[string]model.Params{AssertReceives: {"unit": UnitMonetary}},
			}},
		},
		{
			name: "rule leg with unknown account",
			rules: []model.ClassificationRule{{
				Key:      "bad-rule",
				Required: []string{AssertProvides},
				Legs:     []model.LegTemplate{{Debit: "No Such Account", Credit: AccountCash}},
			}},
		},
		{
			name:  "template with unknown classification",
			rules: DefaultRules(),
			templates: []model.TransactionTemplate{{
				Key:            "bad-template",
				Classification: "no-such-rule",
			}},
		},
		{
			name:      "action with unknown template",
			rules:     DefaultRules(),
			templates: DefaultTemplates(),
			actions: []model.Action{{
				Key:         "bad-action",
				TemplateKey: "no-such-template",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(items, assertions, tt.rules, tt.templates, tt.actions, accounts)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidCatalog)
		})
	}
}

func TestNewRejectsEmptyRuleSet(t *testing.T) {
	_, err := New(DefaultItems(), DefaultAssertions(), nil, nil, nil, DefaultAccounts())
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestActionsReferenceValidTemplateVariables(t *testing.T) {
	c := MustDefault()

	for _, action := range c.Actions() {
		tmpl, ok := c.Template(action.TemplateKey)
		require.True(t, ok, "action %s", action.Key)

		for _, effect := range action.Effects {
			if effect.AmountVar != "" {
				assert.Contains(t, tmpl.Variables, effect.AmountVar,
					"action %s effect %s names a variable its template lacks", action.Key, effect.Kind)
			}
			if effect.QtyVar != "" {
				assert.Contains(t, tmpl.Variables, effect.QtyVar,
					"action %s effect %s names a variable its template lacks", action.Key, effect.Kind)
			}
		}
	}
}
