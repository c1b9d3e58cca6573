package catalog

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// valueLabels renders parameter values in learner-facing feedback.
var valueLabels = map[string]string{
	UnitMonetary:      "money",
	UnitPhysical:      "physical goods",
	UnitService:       "a service",
	ReportsRevenue:    "revenue",
	ReportsExpense:    "an expense",
	BalancePayable:    "an account payable",
	BalanceReceivable: "an account receivable",
}

// AssertionLabel returns the display label for an assertion code, falling
// back to the raw code for unknown submissions.
func (c *Catalog) AssertionLabel(code string) string {
	if def, ok := c.assertionsByKey[code]; ok {
		return def.Label
	}
	return code
}

// ValueLabel returns the display label for a parameter value: unit kinds
// and dropdown values map through the label table, item keys map to item
// labels, and anything else renders as itself.
func (c *Catalog) ValueLabel(value any) string {
	s, ok := value.(string)
	if !ok {
		if ref, isRef := value.(model.CategoryRef); isRef {
			return c.categoryLabel(model.ItemCategory(ref))
		}
		return toDisplay(value)
	}
	if label, ok := valueLabels[s]; ok {
		return label
	}
	if item, ok := c.itemsByKey[s]; ok {
		return item.Label
	}
	return s
}

func (c *Catalog) categoryLabel(category model.ItemCategory) string {
	switch category {
	case model.CategoryRawMaterial:
		return "a raw material"
	case model.CategoryEquipment:
		return "equipment"
	case model.CategoryFinishedGood:
		return "a finished good"
	default:
		return string(category)
	}
}

func toDisplay(value any) string {
	return fmt.Sprint(value)
}
