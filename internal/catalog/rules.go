package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Classification rule keys.
const (
	RuleCashInventoryPurchase = "cash-inventory-purchase"
	RuleCashEquipmentPurchase = "cash-equipment-purchase"
	RuleCashSale              = "cash-sale"
	RuleCreditPurchase        = "credit-inventory-purchase"
	RuleCreditSale            = "credit-sale"
	RuleSettlePayable         = "settle-payable"
	RuleCollectReceivable     = "collect-receivable"
	RuleProduction            = "production"
	RulePayWages              = "pay-wages"
	RulePayRent               = "pay-rent"
	RuleOwnerContribution     = "owner-contribution"
	RuleLoanReceived          = "loan-received"
	RuleDepreciation          = "depreciation"
)

// DefaultRules returns the canonical transaction patterns. Required sets
// must all be present, prohibited sets must all be absent, and nothing
// outside required+optional may appear for an exact match. Required
// parameters constrain values; a model.CategoryRef value matches any
// physical item of that category.
func DefaultRules() []model.ClassificationRule {
	return []model.ClassificationRule{
		{
			Key:        RuleCashInventoryPurchase,
			Level:      1,
			Required:   []string{AssertProvides, AssertReceives, AssertCounterparty},
			Prohibited: []string{AssertExpects, AssertRequires, AssertSettles, AssertReports},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitMonetary},
				AssertReceives: {"unit": UnitPhysical, "physical-item": model.CategoryRef(model.CategoryRawMaterial)},
			},
			DerivedLegs: true,
			Description: "Buying raw materials with cash",
			Notes:       "Money goes out now; an asset comes in. No obligation remains.",
			Example:     "Paying $400 cash for 100 blank t-shirts.",
		},
		{
			Key:        RuleCashEquipmentPurchase,
			Level:      1,
			Required:   []string{AssertProvides, AssertReceives, AssertCounterparty},
			Prohibited: []string{AssertExpects, AssertRequires, AssertSettles, AssertReports},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitMonetary},
				AssertReceives: {"unit": UnitPhysical, "physical-item": model.CategoryRef(model.CategoryEquipment)},
			},
			DerivedLegs: true,
			Description: "Buying long-lived equipment with cash",
			Notes:       "Equipment is an asset, not an expense; its cost is not recognized immediately.",
			Example:     "Paying $2,500 cash for a t-shirt printer.",
		},
		{
			Key:        RuleCashSale,
			Level:      1,
			Required:   []string{AssertProvides, AssertReceives, AssertCounterparty, AssertReports},
			Prohibited: []string{AssertExpects, AssertRequires, AssertSettles},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitPhysical},
				AssertReceives: {"unit": UnitMonetary},
				AssertReports:  {"what": ReportsRevenue},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountCash, Credit: AccountSalesRevenue},
			},
			Description: "Selling finished goods for cash",
			Notes:       "Revenue is recognized when goods are delivered, and cash comes in at once.",
			Example:     "A customer pays $250 cash for 10 printed t-shirts.",
		},
		{
			Key:        RuleCreditPurchase,
			Level:      2,
			Required:   []string{AssertReceives, AssertCounterparty, AssertRequires},
			Prohibited: []string{AssertProvides, AssertSettles, AssertReports},
			RequiredParams: map[string]model.Params{
				AssertReceives: {"unit": UnitPhysical, "physical-item": model.CategoryRef(model.CategoryRawMaterial)},
				AssertRequires: {"unit": UnitMonetary},
			},
			DerivedLegs: true,
			Description: "Buying raw materials on account",
			Notes:       "The asset comes in now; the cash outflow is deferred as a payable.",
			Example:     "Receiving 100 blank t-shirts with payment due in 30 days.",
		},
		{
			Key:        RuleCreditSale,
			Level:      2,
			Required:   []string{AssertProvides, AssertCounterparty, AssertExpects, AssertReports},
			Prohibited: []string{AssertReceives, AssertSettles},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitPhysical},
				AssertExpects:  {"unit": UnitMonetary},
				AssertReports:  {"what": ReportsRevenue},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountReceivable, Credit: AccountSalesRevenue},
			},
			Description: "Selling finished goods on account",
			Notes:       "Revenue is recognized on delivery even though the cash arrives later.",
			Example:     "Shipping 20 printed t-shirts with an invoice for $500.",
		},
		{
			Key:        RuleSettlePayable,
			Level:      2,
			Required:   []string{AssertProvides, AssertCounterparty, AssertSettles},
			Prohibited: []string{AssertReceives, AssertReports, AssertExpects, AssertRequires},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitMonetary},
				AssertSettles:  {"balance": BalancePayable},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountPayable, Credit: AccountCash},
			},
			Description: "Paying off an account payable",
			Notes:       "Nothing new is received; an existing obligation is extinguished.",
			Example:     "Paying a vendor the $400 owed from an earlier credit purchase.",
		},
		{
			Key:        RuleCollectReceivable,
			Level:      2,
			Required:   []string{AssertReceives, AssertCounterparty, AssertSettles},
			Prohibited: []string{AssertProvides, AssertReports, AssertExpects, AssertRequires},
			RequiredParams: map[string]model.Params{
				AssertReceives: {"unit": UnitMonetary},
				AssertSettles:  {"balance": BalanceReceivable},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountCash, Credit: AccountReceivable},
			},
			Description: "Collecting an account receivable",
			Notes:       "No new revenue; the earlier sale's receivable converts to cash.",
			Example:     "A customer pays the $500 invoice from last period's credit sale.",
		},
		{
			Key:        RuleProduction,
			Level:      3,
			Required:   []string{AssertConsumes, AssertProduces},
			Prohibited: []string{AssertCounterparty, AssertProvides, AssertReceives, AssertReports},
			Optional:   []string{AssertConsumesLabor},
			RequiredParams: map[string]model.Params{
				AssertConsumes: {"physical-item": model.CategoryRef(model.CategoryRawMaterial)},
				AssertProduces: {"physical-item": model.CategoryRef(model.CategoryFinishedGood)},
			},
			DerivedLegs: true,
			Description: "Converting raw materials into finished goods",
			Notes:       "An internal event with no counterparty; cost moves between inventory accounts.",
			Example:     "Printing 10 blank t-shirts into 10 finished shirts.",
		},
		{
			Key:        RulePayWages,
			Level:      3,
			Required:   []string{AssertProvides, AssertConsumesLabor, AssertReports},
			Prohibited: []string{AssertReceives, AssertExpects, AssertRequires, AssertSettles},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitMonetary},
				AssertReports:  {"what": ReportsExpense},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountWagesExpense, Credit: AccountCash},
			},
			Description: "Paying employees for labor already used",
			Notes:       "Labor is consumed as it is worked, so the cost is an expense immediately.",
			Example:     "Paying $800 of wages for the period's production work.",
		},
		{
			Key:        RulePayRent,
			Level:      3,
			Required:   []string{AssertProvides, AssertReceives, AssertCounterparty, AssertReports},
			Prohibited: []string{AssertExpects, AssertRequires, AssertSettles},
			RequiredParams: map[string]model.Params{
				AssertProvides: {"unit": UnitMonetary},
				AssertReceives: {"unit": UnitService},
				AssertReports:  {"what": ReportsExpense},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountRentExpense, Credit: AccountCash},
			},
			Description: "Paying rent for the use of space",
			Notes:       "What comes in is a service, used up in the period, so it is expensed.",
			Example:     "Paying $750 rent for this month's use of the shop.",
		},
		{
			Key:        RuleOwnerContribution,
			Level:      4,
			Required:   []string{AssertReceives, AssertCounterparty},
			Prohibited: []string{AssertProvides, AssertRequires, AssertReports, AssertSettles},
			RequiredParams: map[string]model.Params{
				AssertReceives: {"unit": UnitMonetary},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountCash, Credit: AccountOwnersCapital},
			},
			Description: "Owner invests cash in the business",
			Notes:       "Cash from the owner is equity, never revenue.",
			Example:     "The owner deposits $5,000 of personal savings into the business account.",
		},
		{
			Key:        RuleLoanReceived,
			Level:      4,
			Required:   []string{AssertReceives, AssertCounterparty, AssertRequires},
			Prohibited: []string{AssertProvides, AssertSettles, AssertReports},
			RequiredParams: map[string]model.Params{
				AssertReceives: {"unit": UnitMonetary},
				AssertRequires: {"unit": UnitMonetary},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountCash, Credit: AccountNotesPayable},
			},
			Description: "Borrowing cash from a lender",
			Notes:       "Cash in now, matched by an obligation to repay; no income is recognized.",
			Example:     "The bank lends the business $5,000 on a one-year note.",
		},
		{
			Key:        RuleDepreciation,
			Level:      4,
			Required:   []string{AssertConsumes, AssertReports},
			Prohibited: []string{AssertProvides, AssertReceives, AssertCounterparty, AssertProduces},
			RequiredParams: map[string]model.Params{
				AssertConsumes: {"physical-item": model.CategoryRef(model.CategoryEquipment)},
				AssertReports:  {"what": ReportsExpense},
			},
			Legs: []model.LegTemplate{
				{Debit: AccountDeprExpense, Credit: AccountAccumDepr},
			},
			Description: "Recording a period's use of equipment",
			Notes:       "The equipment account is untouched; the contra-asset accumulates instead.",
			Example:     "Recording $50 of wear on the t-shirt printer for the period.",
		},
	}
}
