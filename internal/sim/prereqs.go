package sim

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// checkPrereq evaluates one structured prerequisite against a state and
// returns a learner-facing reason when it fails.
func checkPrereq(c *catalog.Catalog, p model.Prerequisite, state *model.BusinessState) (bool, string) {
	switch p.Kind {
	case model.PrereqMinCash:
		if state.Cash < p.Amount {
			return false, fmt.Sprintf("Need $%s cash (have $%s)",
				common.FormatAmount(p.Amount), common.FormatAmount(state.Cash))
		}
	case model.PrereqMinInventory:
		have := state.Inventory[p.ItemKey]
		if have < p.Qty {
			return false, fmt.Sprintf("Need %d %s (have %d)", p.Qty, itemLabel(c, p.ItemKey), have)
		}
	case model.PrereqMinFinished:
		if state.FinishedGoods < p.Qty {
			return false, fmt.Sprintf("Need %d finished t-shirts (have %d)", p.Qty, state.FinishedGoods)
		}
	case model.PrereqOwnsEquipment:
		if !state.OwnsEquipment(p.ItemKey) {
			return false, fmt.Sprintf("Requires a %s", itemLabel(c, p.ItemKey))
		}
	case model.PrereqLacksEquipment:
		if state.OwnsEquipment(p.ItemKey) {
			return false, fmt.Sprintf("You already own a %s", itemLabel(c, p.ItemKey))
		}
	case model.PrereqHasPayable:
		if !hasPositiveBalance(state.Payables) {
			return false, "No outstanding vendor balances to pay"
		}
	case model.PrereqHasReceivable:
		if !hasPositiveBalance(state.Receivables) {
			return false, "No outstanding customer invoices to collect"
		}
	default:
		return false, fmt.Sprintf("Unknown prerequisite %q", p.Kind)
	}
	return true, ""
}

// checkAction evaluates the level gate and every prerequisite of an action.
func checkAction(c *catalog.Catalog, action *model.Action, level int, state *model.BusinessState) (bool, string) {
	if action.MinLevel > level {
		return false, fmt.Sprintf("Unlocks at level %d", action.MinLevel)
	}
	for _, p := range action.Prereqs {
		if ok, reason := checkPrereq(c, p, state); !ok {
			return false, reason
		}
	}
	return true, ""
}

// AvailableActions is a pure projection: it evaluates every catalog action
// against the given level and state and reports availability with a reason
// when unavailable. It never mutates anything and is safe to call in any
// state.
func AvailableActions(c *catalog.Catalog, level int, state *model.BusinessState) []model.ActionAvailability {
	actions := c.Actions()
	out := make([]model.ActionAvailability, 0, len(actions))
	for i := range actions {
		action := &actions[i]
		ok, reason := checkAction(c, action, level, state)
		out = append(out, model.ActionAvailability{
			Key:       action.Key,
			Label:     action.Label,
			Level:     action.MinLevel,
			Available: ok,
			Reason:    reason,
		})
	}
	return out
}

func itemLabel(c *catalog.Catalog, key string) string {
	if item, ok := c.Item(key); ok {
		return item.Label
	}
	return key
}

func hasPositiveBalance(balances map[string]float64) bool {
	for _, amount := range balances {
		if amount > 0 {
			return true
		}
	}
	return false
}
