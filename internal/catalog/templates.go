package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Transaction template keys.
const (
	TemplateBuyTshirtsCash    = "buy-tshirts-cash"
	TemplateBuyPrinterCash    = "buy-printer-cash"
	TemplateSellTshirtsCash   = "sell-tshirts-cash"
	TemplateBuyTshirtsCredit  = "buy-tshirts-credit"
	TemplateSellTshirtsCredit = "sell-tshirts-credit"
	TemplatePayVendor         = "pay-vendor"
	TemplateCollectCustomer   = "collect-customer"
	TemplateProduceTshirts    = "produce-tshirts"
	TemplatePayWages          = "pay-wages"
	TemplatePayRent           = "pay-rent"
	TemplateOwnerContribution = "owner-contribution"
	TemplateTakeLoan          = "take-loan"
	TemplateDepreciation      = "record-depreciation"
)

var vendors = []any{"Tees R Us", "Bulk Blanks Co.", "Cotton Supply Warehouse", "Fabric Direct"}

var customers = []any{"Campus Bookstore", "The Corner Gift Shop", "Riverside Running Club", "Maple Street Cafe", "Local 5K Committee"}

// DefaultTemplates returns the generatable transaction narratives.
// Variable arrays of equal length are paired: quantity and amount stay
// correlated because one index is drawn per distinct length. The {date}
// placeholder is reserved and bound by the generator.
func DefaultTemplates() []model.TransactionTemplate {
	return []model.TransactionTemplate{
		{
			Key:            TemplateBuyTshirtsCash,
			Level:          1,
			Classification: RuleCashInventoryPurchase,
			Narrative:      "On {date}, your business purchases {quantity} blank t-shirts from {vendor}, paying ${amount} in cash.",
			Variables: map[string][]any{
				"quantity": {50, 100, 200},
				"amount":   {200, 400, 800},
				"vendor":   vendors,
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertReceives:     {"unit": UnitPhysical, "physical-item": ItemBlankTshirts, "quantity": model.VarRef("quantity")},
				AssertCounterparty: {"name": model.VarRef("vendor")},
			},
		},
		{
			Key:            TemplateBuyPrinterCash,
			Level:          1,
			Classification: RuleCashEquipmentPurchase,
			Narrative:      "On {date}, your business buys a t-shirt printer from {vendor} for ${amount} in cash.",
			Variables: map[string][]any{
				"amount": {2500},
				"vendor": {"Print Machines Inc.", "Equipment Depot", "PrintTech Solutions"},
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertReceives:     {"unit": UnitPhysical, "physical-item": ItemTshirtPrinter, "quantity": 1},
				AssertCounterparty: {"name": model.VarRef("vendor")},
			},
		},
		{
			Key:            TemplateSellTshirtsCash,
			Level:          1,
			Classification: RuleCashSale,
			Narrative:      "On {date}, {customer} buys {quantity} printed t-shirts from your shop, paying ${amount} in cash.",
			Variables: map[string][]any{
				"quantity": {10, 20, 40},
				"amount":   {250, 500, 1000},
				"customer": customers,
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitPhysical, "physical-item": ItemPrintedTshirts, "quantity": model.VarRef("quantity")},
				AssertReceives:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("customer")},
				AssertReports:      {"what": ReportsRevenue},
			},
		},
		{
			Key:            TemplateBuyTshirtsCredit,
			Level:          2,
			Classification: RuleCreditPurchase,
			Narrative:      "On {date}, {vendor} delivers {quantity} blank t-shirts to your business; the ${amount} invoice is due in 30 days.",
			Variables: map[string][]any{
				"quantity": {50, 100, 200},
				"amount":   {200, 400, 800},
				"vendor":   vendors,
			},
			RequiredAssertions: map[string]model.Params{
				AssertReceives:     {"unit": UnitPhysical, "physical-item": ItemBlankTshirts, "quantity": model.VarRef("quantity")},
				AssertRequires:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("vendor")},
			},
		},
		{
			Key:            TemplateSellTshirtsCredit,
			Level:          2,
			Classification: RuleCreditSale,
			Narrative:      "On {date}, you deliver {quantity} printed t-shirts to {customer} and send an invoice for ${amount}, due next month.",
			Variables: map[string][]any{
				"quantity": {10, 20, 40},
				"amount":   {250, 500, 1000},
				"customer": customers,
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitPhysical, "physical-item": ItemPrintedTshirts, "quantity": model.VarRef("quantity")},
				AssertExpects:      {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("customer")},
				AssertReports:      {"what": ReportsRevenue},
			},
		},
		{
			Key:            TemplatePayVendor,
			Level:          2,
			Classification: RuleSettlePayable,
			Narrative:      "On {date}, your business pays {vendor} the ${amount} it owes from an earlier purchase.",
			Variables: map[string][]any{
				"amount": {200, 400, 800},
				"vendor": vendors,
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("vendor")},
				AssertSettles:      {"balance": BalancePayable},
			},
		},
		{
			Key:            TemplateCollectCustomer,
			Level:          2,
			Classification: RuleCollectReceivable,
			Narrative:      "On {date}, {customer} pays the ${amount} invoice from an earlier delivery.",
			Variables: map[string][]any{
				"amount":   {250, 500, 1000},
				"customer": customers,
			},
			RequiredAssertions: map[string]model.Params{
				AssertReceives:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("customer")},
				AssertSettles:      {"balance": BalanceReceivable},
			},
		},
		{
			Key:            TemplateProduceTshirts,
			Level:          3,
			Classification: RuleProduction,
			Narrative:      "On {date}, your workers run the printer and turn {quantity} blank t-shirts into {quantity} printed t-shirts.",
			Variables: map[string][]any{
				"quantity": {10},
				"amount":   {40},
			},
			RequiredAssertions: map[string]model.Params{
				AssertConsumes: {"physical-item": ItemBlankTshirts, "quantity": model.VarRef("quantity")},
				AssertProduces: {"physical-item": ItemPrintedTshirts, "quantity": model.VarRef("quantity")},
			},
		},
		{
			Key:            TemplatePayWages,
			Level:          3,
			Classification: RulePayWages,
			Narrative:      "On {date}, you pay your production workers ${amount} in wages for {hours} hours of work.",
			Variables: map[string][]any{
				"amount": {800, 1200},
				"hours":  {40, 60},
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:      {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertConsumesLabor: {"hours": model.VarRef("hours")},
				AssertReports:       {"what": ReportsExpense},
			},
		},
		{
			Key:            TemplatePayRent,
			Level:          3,
			Classification: RulePayRent,
			Narrative:      "On {date}, you pay {landlord} ${amount} rent for this month's use of your shop space.",
			Variables: map[string][]any{
				"amount":   {750},
				"landlord": {"Main Street Properties", "Crestview Realty"},
			},
			RequiredAssertions: map[string]model.Params{
				AssertProvides:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertReceives:     {"unit": UnitService, "quantity": 1},
				AssertCounterparty: {"name": model.VarRef("landlord")},
				AssertReports:      {"what": ReportsExpense},
			},
		},
		{
			Key:            TemplateOwnerContribution,
			Level:          4,
			Classification: RuleOwnerContribution,
			Narrative:      "On {date}, you invest an additional ${amount} of personal savings into the business.",
			Variables: map[string][]any{
				"amount": {1000, 2500, 5000},
				"owner":  {"Owner"},
			},
			RequiredAssertions: map[string]model.Params{
				AssertReceives:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("owner")},
			},
		},
		{
			Key:            TemplateTakeLoan,
			Level:          4,
			Classification: RuleLoanReceived,
			Narrative:      "On {date}, {lender} lends your business ${amount}, to be repaid in one year.",
			Variables: map[string][]any{
				"amount": {2000, 5000},
				"lender": {"First Community Bank"},
			},
			RequiredAssertions: map[string]model.Params{
				AssertReceives:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
				AssertCounterparty: {"name": model.VarRef("lender")},
				AssertRequires:     {"unit": UnitMonetary, "quantity": model.VarRef("amount")},
			},
		},
		{
			Key:            TemplateDepreciation,
			Level:          4,
			Classification: RuleDepreciation,
			Narrative:      "On {date}, you record ${amount} of depreciation for one period's wear on your t-shirt printer.",
			Variables: map[string][]any{
				"amount": {50},
			},
			RequiredAssertions: map[string]model.Params{
				AssertConsumes: {"physical-item": ItemTshirtPrinter, "quantity": 1},
				AssertReports:  {"what": ReportsExpense},
			},
		},
	}
}
