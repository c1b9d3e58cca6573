package model

// PrereqKind identifies one structured prerequisite check on an action.
type PrereqKind string

// Prerequisite kind constants.
const (
	PrereqMinCash        PrereqKind = "min-cash"
	PrereqMinInventory   PrereqKind = "min-inventory"
	PrereqMinFinished    PrereqKind = "min-finished-goods"
	PrereqOwnsEquipment  PrereqKind = "owns-equipment"
	PrereqHasPayable     PrereqKind = "has-payable"
	PrereqHasReceivable  PrereqKind = "has-receivable"
	PrereqLacksEquipment PrereqKind = "lacks-equipment"
)

// Prerequisite is one structured predicate evaluated against BusinessState
// before an action may start.
type Prerequisite struct {
	Kind    PrereqKind
	ItemKey string  // for inventory and equipment checks
	Amount  float64 // for cash checks
	Qty     int     // for inventory and finished-goods checks
}

// EffectKind identifies one named transform applied to BusinessState when a
// pending transaction is classified correctly. The set is closed; the
// simulator's handler table covers every kind.
type EffectKind string

// Effect kind constants.
const (
	EffectSpendCash        EffectKind = "spend-cash"
	EffectReceiveCash      EffectKind = "receive-cash"
	EffectAddInventory     EffectKind = "add-inventory"
	EffectAddEquipment     EffectKind = "add-equipment"
	EffectRunProduction    EffectKind = "run-production"
	EffectRemoveFinished   EffectKind = "remove-finished-goods"
	EffectAddPayable       EffectKind = "add-payable"
	EffectSettlePayable    EffectKind = "settle-payable"
	EffectAddReceivable    EffectKind = "add-receivable"
	EffectSettleReceivable EffectKind = "settle-receivable"
)

// Effect is one named transform in an action's effect list. AmountVar,
// QtyVar, and PartyVar name bound transaction variables supplying the
// effect's operands.
type Effect struct {
	Kind      EffectKind
	ItemKey   string
	AmountVar string
	QtyVar    string
	PartyVar  string
}

// Action is one move a learner can take in the simulation: prerequisites
// gate it, a transaction template narrates it, and effects apply it to
// BusinessState once classified correctly.
type Action struct {
	Key         string
	Label       string
	MinLevel    int
	TemplateKey string
	Prereqs     []Prerequisite
	Effects     []Effect
}

// ActionAvailability reports whether one action can currently be taken and,
// when it cannot, a human-readable reason.
type ActionAvailability struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Level     int    `json:"level"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
