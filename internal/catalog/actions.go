package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Simulation action keys.
const (
	ActionBuyTshirts        = "buy-tshirts"
	ActionBuyPrinter        = "buy-printer"
	ActionProduceTshirts    = "produce-tshirts"
	ActionSellTshirtsCash   = "sell-tshirts-cash"
	ActionBuyTshirtsCredit  = "buy-tshirts-credit"
	ActionSellTshirtsCredit = "sell-tshirts-credit"
	ActionPayVendor         = "pay-vendor"
	ActionCollectCustomer   = "collect-customer"
	ActionPayWages          = "pay-wages"
	ActionPayRent           = "pay-rent"
	ActionOwnerContribution = "owner-contribution"
	ActionTakeLoan          = "take-loan"
)

// productionBatch is the fixed production recipe: one run consumes this
// many blank t-shirts and yields the same count of printed shirts.
const productionBatch = 10

// DefaultActions returns the simulation action set. Depreciation stays a
// drill-only concept: it has no cash or inventory movement for the
// simulation to track, so no action targets its template.
func DefaultActions() []model.Action {
	return []model.Action{
		{
			Key:         ActionBuyTshirts,
			Label:       "Buy blank t-shirts for cash",
			MinLevel:    1,
			TemplateKey: TemplateBuyTshirtsCash,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinCash, Amount: 200},
			},
			Effects: []model.Effect{
				{Kind: model.EffectSpendCash, AmountVar: "amount"},
				{Kind: model.EffectAddInventory, ItemKey: ItemBlankTshirts, QtyVar: "quantity"},
			},
		},
		{
			Key:         ActionBuyPrinter,
			Label:       "Buy a t-shirt printer",
			MinLevel:    1,
			TemplateKey: TemplateBuyPrinterCash,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinCash, Amount: 2500},
				{Kind: model.PrereqLacksEquipment, ItemKey: ItemTshirtPrinter},
			},
			Effects: []model.Effect{
				{Kind: model.EffectSpendCash, AmountVar: "amount"},
				{Kind: model.EffectAddEquipment, ItemKey: ItemTshirtPrinter},
			},
		},
		{
			Key:         ActionProduceTshirts,
			Label:       "Print a batch of t-shirts",
			MinLevel:    1,
			TemplateKey: TemplateProduceTshirts,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqOwnsEquipment, ItemKey: ItemTshirtPrinter},
				{Kind: model.PrereqMinInventory, ItemKey: ItemBlankTshirts, Qty: productionBatch},
			},
			Effects: []model.Effect{
				{Kind: model.EffectRunProduction, ItemKey: ItemBlankTshirts, QtyVar: "quantity"},
			},
		},
		{
			Key:         ActionSellTshirtsCash,
			Label:       "Sell printed t-shirts for cash",
			MinLevel:    1,
			TemplateKey: TemplateSellTshirtsCash,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinFinished, Qty: 10},
			},
			Effects: []model.Effect{
				{Kind: model.EffectReceiveCash, AmountVar: "amount"},
				{Kind: model.EffectRemoveFinished, QtyVar: "quantity"},
			},
		},
		{
			Key:         ActionBuyTshirtsCredit,
			Label:       "Buy blank t-shirts on account",
			MinLevel:    2,
			TemplateKey: TemplateBuyTshirtsCredit,
			Effects: []model.Effect{
				{Kind: model.EffectAddInventory, ItemKey: ItemBlankTshirts, QtyVar: "quantity"},
				{Kind: model.EffectAddPayable, PartyVar: "vendor", AmountVar: "amount"},
			},
		},
		{
			Key:         ActionSellTshirtsCredit,
			Label:       "Sell printed t-shirts on account",
			MinLevel:    2,
			TemplateKey: TemplateSellTshirtsCredit,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinFinished, Qty: 10},
			},
			Effects: []model.Effect{
				{Kind: model.EffectRemoveFinished, QtyVar: "quantity"},
				{Kind: model.EffectAddReceivable, PartyVar: "customer", AmountVar: "amount"},
			},
		},
		{
			Key:         ActionPayVendor,
			Label:       "Pay a vendor what you owe",
			MinLevel:    2,
			TemplateKey: TemplatePayVendor,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqHasPayable},
			},
			Effects: []model.Effect{
				{Kind: model.EffectSpendCash, AmountVar: "amount"},
				{Kind: model.EffectSettlePayable, PartyVar: "vendor", AmountVar: "amount"},
			},
		},
		{
			Key:         ActionCollectCustomer,
			Label:       "Collect a customer's invoice",
			MinLevel:    2,
			TemplateKey: TemplateCollectCustomer,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqHasReceivable},
			},
			Effects: []model.Effect{
				{Kind: model.EffectReceiveCash, AmountVar: "amount"},
				{Kind: model.EffectSettleReceivable, PartyVar: "customer", AmountVar: "amount"},
			},
		},
		{
			Key:         ActionPayWages,
			Label:       "Pay wages",
			MinLevel:    3,
			TemplateKey: TemplatePayWages,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinCash, Amount: 800},
			},
			Effects: []model.Effect{
				{Kind: model.EffectSpendCash, AmountVar: "amount"},
			},
		},
		{
			Key:         ActionPayRent,
			Label:       "Pay rent",
			MinLevel:    3,
			TemplateKey: TemplatePayRent,
			Prereqs: []model.Prerequisite{
				{Kind: model.PrereqMinCash, Amount: 750},
			},
			Effects: []model.Effect{
				{Kind: model.EffectSpendCash, AmountVar: "amount"},
			},
		},
		{
			Key:         ActionOwnerContribution,
			Label:       "Invest personal savings",
			MinLevel:    4,
			TemplateKey: TemplateOwnerContribution,
			Effects: []model.Effect{
				{Kind: model.EffectReceiveCash, AmountVar: "amount"},
			},
		},
		{
			Key:         ActionTakeLoan,
			Label:       "Take out a bank loan",
			MinLevel:    4,
			TemplateKey: TemplateTakeLoan,
			Effects: []model.Effect{
				{Kind: model.EffectReceiveCash, AmountVar: "amount"},
				{Kind: model.EffectAddPayable, PartyVar: "lender", AmountVar: "amount"},
			},
		},
	}
}
