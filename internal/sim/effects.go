package sim

import (
	"fmt"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// effectFunc applies one named transform to a business state. Effects are
// pure with respect to their inputs: they mutate only the state they are
// handed (always a clone) and read operands from the bound transaction
// variables.
type effectFunc func(state *model.BusinessState, effect model.Effect, vars map[string]any) error

// effectHandlers is the closed dispatch table for every effect kind.
// applyEffects rejects kinds missing from it, and the package tests assert
// the table covers the full catalog.
var effectHandlers = map[model.EffectKind]effectFunc{
	model.EffectSpendCash:        applySpendCash,
	model.EffectReceiveCash:      applyReceiveCash,
	model.EffectAddInventory:     applyAddInventory,
	model.EffectAddEquipment:     applyAddEquipment,
	model.EffectRunProduction:    applyRunProduction,
	model.EffectRemoveFinished:   applyRemoveFinished,
	model.EffectAddPayable:       applyAddPayable,
	model.EffectSettlePayable:    applySettlePayable,
	model.EffectAddReceivable:    applyAddReceivable,
	model.EffectSettleReceivable: applySettleReceivable,
}

// applyEffects runs an action's effect list against the state in order.
func applyEffects(state *model.BusinessState, effects []model.Effect, vars map[string]any) error {
	for _, effect := range effects {
		handler, ok := effectHandlers[effect.Kind]
		if !ok {
			return fmt.Errorf("no handler for effect kind %q", effect.Kind)
		}
		if err := handler(state, effect, vars); err != nil {
			return fmt.Errorf("effect %s: %w", effect.Kind, err)
		}
	}
	return nil
}

func effectAmount(effect model.Effect, vars map[string]any) (float64, error) {
	amount, ok := model.NumericValue(vars[effect.AmountVar])
	if !ok {
		return 0, fmt.Errorf("variable %q is not numeric", effect.AmountVar)
	}
	return amount, nil
}

func effectQty(effect model.Effect, vars map[string]any) (int, error) {
	qty, ok := model.NumericValue(vars[effect.QtyVar])
	if !ok {
		return 0, fmt.Errorf("variable %q is not numeric", effect.QtyVar)
	}
	return int(qty), nil
}

func effectParty(effect model.Effect, vars map[string]any) (string, error) {
	party, ok := vars[effect.PartyVar].(string)
	if !ok || party == "" {
		return "", fmt.Errorf("variable %q is not a party name", effect.PartyVar)
	}
	return party, nil
}

func applySpendCash(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	if amount > state.Cash {
		return fmt.Errorf("insufficient cash: need %.2f, have %.2f", amount, state.Cash)
	}
	state.Cash -= amount
	return nil
}

func applyReceiveCash(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	state.Cash += amount
	return nil
}

func applyAddInventory(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	qty, err := effectQty(effect, vars)
	if err != nil {
		return err
	}
	state.Inventory[effect.ItemKey] += qty
	return nil
}

func applyAddEquipment(state *model.BusinessState, effect model.Effect, _ map[string]any) error {
	state.Equipment[effect.ItemKey] = true
	return nil
}

// applyRunProduction consumes the recipe's raw materials and yields the
// same count of finished goods.
func applyRunProduction(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	qty, err := effectQty(effect, vars)
	if err != nil {
		return err
	}
	have := state.Inventory[effect.ItemKey]
	if have < qty {
		return fmt.Errorf("insufficient %s: need %d, have %d", effect.ItemKey, qty, have)
	}
	state.Inventory[effect.ItemKey] = have - qty
	if state.Inventory[effect.ItemKey] == 0 {
		delete(state.Inventory, effect.ItemKey)
	}
	state.FinishedGoods += qty
	return nil
}

func applyRemoveFinished(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	qty, err := effectQty(effect, vars)
	if err != nil {
		return err
	}
	if state.FinishedGoods < qty {
		return fmt.Errorf("insufficient finished goods: need %d, have %d", qty, state.FinishedGoods)
	}
	state.FinishedGoods -= qty
	return nil
}

func applyAddPayable(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	party, err := effectParty(effect, vars)
	if err != nil {
		return err
	}
	state.Payables[party] += amount
	return nil
}

func applySettlePayable(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	party, err := effectParty(effect, vars)
	if err != nil {
		return err
	}
	state.Payables[party] -= amount
	state.PrunePayable(party)
	return nil
}

func applyAddReceivable(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	party, err := effectParty(effect, vars)
	if err != nil {
		return err
	}
	state.Receivables[party] += amount
	return nil
}

func applySettleReceivable(state *model.BusinessState, effect model.Effect, vars map[string]any) error {
	amount, err := effectAmount(effect, vars)
	if err != nil {
		return err
	}
	party, err := effectParty(effect, vars)
	if err != nil {
		return err
	}
	state.Receivables[party] -= amount
	state.PruneReceivable(party)
	return nil
}
