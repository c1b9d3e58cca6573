package classify

import (
	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// quantitySearchOrder is the order assertions are scanned for a dollar
// amount to annotate journal-entry legs with.
var quantitySearchOrder = []string{
	catalog.AssertExpects,
	catalog.AssertRequires,
	catalog.AssertReceives,
	catalog.AssertProvides,
}

// RenderLegs produces the displayed journal entry for a matched rule:
// canonical legs for static rules, account resolution from assertion
// parameters for derived ones, with the dollar amount injected into each
// side. When amount is zero the first monetary quantity found among the
// assertions (expects, requires, receives, provides, in that order) is
// used; legs render without an amount when none exists.
func (e *Engine) RenderLegs(rule *model.ClassificationRule, set model.AssertionSet, amount float64) []model.JournalLeg {
	if amount == 0 {
		amount = e.firstMonetaryQuantity(set)
	}

	templates := rule.Legs
	if rule.DerivedLegs {
		templates = e.deriveLegs(set)
	}

	legs := make([]model.JournalLeg, 0, len(templates))
	for _, t := range templates {
		legs = append(legs, model.JournalLeg{
			Debit:  RenderLegSide(t.Debit, amount),
			Credit: RenderLegSide(t.Credit, amount),
		})
	}
	return legs
}

// RenderLegSide renders one side of a journal leg in the canonical
// "<Account> $<amount,formatted>" form the statement deriver parses.
func RenderLegSide(account string, amount float64) string {
	if amount == 0 {
		return account
	}
	return account + " $" + common.FormatAmount(amount)
}

func (e *Engine) firstMonetaryQuantity(set model.AssertionSet) float64 {
	for _, code := range quantitySearchOrder {
		params, ok := set[code]
		if !ok {
			continue
		}
		if unit, hasUnit := params["unit"]; hasUnit && unit != catalog.UnitMonetary {
			continue
		}
		if qty, ok := model.NumericValue(params["quantity"]); ok && qty > 0 {
			return qty
		}
	}
	return 0
}

// deriveLegs computes a derived rule's accounts from the assertion
// parameters: what is received or produced resolves the debit side through
// the item catalog, and how it is paid for (or what is consumed) resolves
// the credit side.
func (e *Engine) deriveLegs(set model.AssertionSet) []model.LegTemplate {
	var debit, credit string

	if params, ok := set[catalog.AssertReceives]; ok {
		if item, found := e.paramItem(params); found {
			debit = item.ReceivingAccount
		}
	}
	if debit == "" {
		if params, ok := set[catalog.AssertProduces]; ok {
			if item, found := e.paramItem(params); found {
				debit = item.ReceivingAccount
			}
		}
	}

	if params, ok := set[catalog.AssertProvides]; ok && params["unit"] == catalog.UnitMonetary {
		credit = catalog.AccountCash
	}
	if credit == "" {
		if _, ok := set[catalog.AssertRequires]; ok {
			credit = catalog.AccountPayable
		}
	}
	if credit == "" {
		if params, ok := set[catalog.AssertConsumes]; ok {
			if item, found := e.paramItem(params); found {
				credit = item.ProvidingAccount
			}
		}
	}

	if debit == "" || credit == "" {
		return nil
	}
	return []model.LegTemplate{{Debit: debit, Credit: credit}}
}
