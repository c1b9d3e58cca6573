// Package catalog holds the immutable domain data: physical items,
// assertion definitions, classification rules, transaction templates, the
// simulation action set, and the account classification table. Derived
// indices are precomputed once at construction; nothing here is recomputed
// per request.
package catalog

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// Catalog is the validated, indexed bundle of all static domain data.
type Catalog struct {
	items      []model.PhysicalItem
	assertions []model.AssertionDefinition
	rules      []model.ClassificationRule
	templates  []model.TransactionTemplate
	actions    []model.Action
	accounts   []AccountInfo

	itemsByKey      map[string]*model.PhysicalItem
	itemsByCategory map[model.ItemCategory][]*model.PhysicalItem
	assertionsByKey map[string]*model.AssertionDefinition
	rulesByKey      map[string]*model.ClassificationRule
	templatesByKey  map[string]*model.TransactionTemplate
	actionsByKey    map[string]*model.Action
	accountsByName  map[string]*AccountInfo
}

// New builds and validates a catalog from its parts. Cross-references are
// checked eagerly: a rule naming an unknown assertion code, a template
// naming an unknown rule, or an action naming an unknown template is a
// configuration error, not a runtime condition.
func New(
	items []model.PhysicalItem,
	assertions []model.AssertionDefinition,
	rules []model.ClassificationRule,
	templates []model.TransactionTemplate,
	actions []model.Action,
	accounts []AccountInfo,
) (*Catalog, error) {
	c := &Catalog{
		items:      items,
		assertions: assertions,
		rules:      rules,
		templates:  templates,
		actions:    actions,
		accounts:   accounts,

		itemsByKey:      make(map[string]*model.PhysicalItem, len(items)),
		itemsByCategory: make(map[model.ItemCategory][]*model.PhysicalItem),
		assertionsByKey: make(map[string]*model.AssertionDefinition, len(assertions)),
		rulesByKey:      make(map[string]*model.ClassificationRule, len(rules)),
		templatesByKey:  make(map[string]*model.TransactionTemplate, len(templates)),
		actionsByKey:    make(map[string]*model.Action, len(actions)),
		accountsByName:  make(map[string]*AccountInfo, len(accounts)),
	}

	for i := range items {
		item := &c.items[i]
		if _, dup := c.itemsByKey[item.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate item %q", common.ErrInvalidCatalog, item.Key)
		}
		c.itemsByKey[item.Key] = item
		c.itemsByCategory[item.Category] = append(c.itemsByCategory[item.Category], item)
	}

	for i := range assertions {
		def := &c.assertions[i]
		if _, dup := c.assertionsByKey[def.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate assertion %q", common.ErrInvalidCatalog, def.Code)
		}
		c.assertionsByKey[def.Code] = def
	}

	for i := range accounts {
		acct := &c.accounts[i]
		if _, dup := c.accountsByName[acct.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate account %q", common.ErrInvalidCatalog, acct.Name)
		}
		c.accountsByName[acct.Name] = acct
	}

	for i := range rules {
		rule := &c.rules[i]
		if _, dup := c.rulesByKey[rule.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate rule %q", common.ErrInvalidCatalog, rule.Key)
		}
		if err := c.validateRule(rule); err != nil {
			return nil, err
		}
		c.rulesByKey[rule.Key] = rule
	}

	for i := range templates {
		tmpl := &c.templates[i]
		if _, dup := c.templatesByKey[tmpl.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate template %q", common.ErrInvalidCatalog, tmpl.Key)
		}
		if _, ok := c.rulesByKey[tmpl.Classification]; !ok {
			return nil, fmt.Errorf("%w: template %q references unknown classification %q",
				common.ErrInvalidCatalog, tmpl.Key, tmpl.Classification)
		}
		for code := range tmpl.RequiredAssertions {
			if _, ok := c.assertionsByKey[code]; !ok {
				return nil, fmt.Errorf("%w: template %q uses unknown assertion %q",
					common.ErrInvalidCatalog, tmpl.Key, code)
			}
		}
		c.templatesByKey[tmpl.Key] = tmpl
	}

	for i := range actions {
		action := &c.actions[i]
		if _, dup := c.actionsByKey[action.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate action %q", common.ErrInvalidCatalog, action.Key)
		}
		if _, ok := c.templatesByKey[action.TemplateKey]; !ok {
			return nil, fmt.Errorf("%w: action %q references unknown template %q",
				common.ErrInvalidCatalog, action.Key, action.TemplateKey)
		}
		c.actionsByKey[action.Key] = action
	}

	if len(c.rules) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	return c, nil
}

func (c *Catalog) validateRule(rule *model.ClassificationRule) error {
	check := func(codes []string, set string) error {
		for _, code := range codes {
			if _, ok := c.assertionsByKey[code]; !ok {
				return fmt.Errorf("%w: rule %q %s set uses unknown assertion %q",
					common.ErrInvalidCatalog, rule.Key, set, code)
			}
		}
		return nil
	}
	if err := check(rule.Required, "required"); err != nil {
		return err
	}
	if err := check(rule.Prohibited, "prohibited"); err != nil {
		return err
	}
	if err := check(rule.Optional, "optional"); err != nil {
		return err
	}
	for code := range rule.RequiredParams {
		if !rule.RequiresAssertion(code) {
			return fmt.Errorf("%w: rule %q constrains parameters of %q which is not required",
				common.ErrInvalidCatalog, rule.Key, code)
		}
	}
	for _, leg := range rule.Legs {
		for _, account := range []string{leg.Debit, leg.Credit} {
			if _, ok := c.accountsByName[account]; !ok {
				return fmt.Errorf("%w: rule %q leg uses unknown account %q",
					common.ErrInvalidCatalog, rule.Key, account)
			}
		}
	}
	return nil
}

// Default builds the standard catalog shipped with the application.
func Default() (*Catalog, error) {
	return New(
		DefaultItems(),
		DefaultAssertions(),
		DefaultRules(),
		DefaultTemplates(),
		DefaultActions(),
		DefaultAccounts(),
	)
}

// MustDefault builds the standard catalog and panics on a configuration
// error. Intended for tests and command wiring where the shipped data is
// known good.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Item looks up a physical item by key.
func (c *Catalog) Item(key string) (*model.PhysicalItem, bool) {
	item, ok := c.itemsByKey[key]
	return item, ok
}

// ItemsByCategory returns the precomputed item list for a category.
func (c *Catalog) ItemsByCategory(category model.ItemCategory) []*model.PhysicalItem {
	return c.itemsByCategory[category]
}

// Items returns all physical items.
func (c *Catalog) Items() []model.PhysicalItem {
	return c.items
}

// Assertion looks up an assertion definition by code.
func (c *Catalog) Assertion(code string) (*model.AssertionDefinition, bool) {
	def, ok := c.assertionsByKey[code]
	return def, ok
}

// AssertionsForLevel returns the assertion definitions unlocked at or below
// the given level.
func (c *Catalog) AssertionsForLevel(level int) []model.AssertionDefinition {
	var defs []model.AssertionDefinition
	for _, def := range c.assertions {
		if def.MinLevel <= level {
			defs = append(defs, def)
		}
	}
	return defs
}

// Rule looks up a classification rule by key.
func (c *Catalog) Rule(key string) (*model.ClassificationRule, bool) {
	rule, ok := c.rulesByKey[key]
	return rule, ok
}

// Rules returns all classification rules.
func (c *Catalog) Rules() []model.ClassificationRule {
	return c.rules
}

// Template looks up a transaction template by key.
func (c *Catalog) Template(key string) (*model.TransactionTemplate, bool) {
	tmpl, ok := c.templatesByKey[key]
	return tmpl, ok
}

// TemplatesForLevel returns templates whose level is at or below the given
// level.
func (c *Catalog) TemplatesForLevel(level int) []*model.TransactionTemplate {
	var eligible []*model.TransactionTemplate
	for i := range c.templates {
		if c.templates[i].Level <= level {
			eligible = append(eligible, &c.templates[i])
		}
	}
	return eligible
}

// Action looks up a simulation action by key.
func (c *Catalog) Action(key string) (*model.Action, bool) {
	action, ok := c.actionsByKey[key]
	return action, ok
}

// Actions returns all simulation actions.
func (c *Catalog) Actions() []model.Action {
	return c.actions
}

// Account looks up the classification of a canonical account name.
func (c *Catalog) Account(name string) (*AccountInfo, bool) {
	acct, ok := c.accountsByName[name]
	return acct, ok
}

// Accounts returns the full account classification table.
func (c *Catalog) Accounts() []AccountInfo {
	return c.accounts
}

// AccountsForLevel returns the canonical account names available to a
// learner at the given level, for free-form journal-entry construction.
func (c *Catalog) AccountsForLevel(level int) []string {
	var names []string
	for _, acct := range c.accounts {
		if acct.UnlockLevel <= level {
			names = append(names, acct.Name)
		}
	}
	return names
}
