package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Assertion codes.
const (
	AssertProvides      = "provides"
	AssertReceives      = "receives"
	AssertCounterparty  = "has-counterparty"
	AssertReports       = "reports"
	AssertExpects       = "expects"
	AssertRequires      = "requires"
	AssertSettles       = "settles"
	AssertConsumes      = "consumes"
	AssertProduces      = "produces"
	AssertConsumesLabor = "consumes-labor"
)

// Unit kinds used in assertion parameters.
const (
	UnitMonetary = "monetary-unit"
	UnitPhysical = "physical-unit"
	UnitService  = "service-unit"
)

// Values for the reports and settles parameters.
const (
	ReportsRevenue    = "revenue"
	ReportsExpense    = "expense"
	BalancePayable    = "accounts-payable"
	BalanceReceivable = "accounts-receivable"
)

// DefaultAssertions returns the assertion vocabulary learners build
// submissions from.
func DefaultAssertions() []model.AssertionDefinition {
	units := []string{UnitMonetary, UnitPhysical, UnitService}

	return []model.AssertionDefinition{
		{
			Code:     AssertProvides,
			Label:    "Provides",
			Group:    "exchange",
			MinLevel: 1,
			Params: []model.ParamSpec{
				{Name: "unit", Kind: model.ParamDropdown, Options: units},
				{Name: "quantity", Kind: model.ParamNumber},
				{Name: "physical-item", Kind: model.ParamItem},
			},
		},
		{
			Code:     AssertReceives,
			Label:    "Receives",
			Group:    "exchange",
			MinLevel: 1,
			Params: []model.ParamSpec{
				{Name: "unit", Kind: model.ParamDropdown, Options: units},
				{Name: "quantity", Kind: model.ParamNumber},
				{Name: "physical-item", Kind: model.ParamItem},
			},
		},
		{
			Code:     AssertCounterparty,
			Label:    "Has Counterparty",
			Group:    "parties",
			MinLevel: 1,
			Params: []model.ParamSpec{
				{Name: "name", Kind: model.ParamString},
			},
		},
		{
			Code:     AssertReports,
			Label:    "Reports",
			Group:    "recognition",
			MinLevel: 1,
			Params: []model.ParamSpec{
				{Name: "what", Kind: model.ParamDropdown, Options: []string{ReportsRevenue, ReportsExpense}},
			},
		},
		{
			Code:     AssertExpects,
			Label:    "Expects Future Inflow",
			Group:    "obligations",
			MinLevel: 2,
			Params: []model.ParamSpec{
				{Name: "unit", Kind: model.ParamDropdown, Options: units},
				{Name: "quantity", Kind: model.ParamNumber},
			},
		},
		{
			Code:     AssertRequires,
			Label:    "Requires Future Outflow",
			Group:    "obligations",
			MinLevel: 2,
			Params: []model.ParamSpec{
				{Name: "unit", Kind: model.ParamDropdown, Options: units},
				{Name: "quantity", Kind: model.ParamNumber},
			},
		},
		{
			Code:     AssertSettles,
			Label:    "Settles Existing Balance",
			Group:    "obligations",
			MinLevel: 2,
			Params: []model.ParamSpec{
				{Name: "balance", Kind: model.ParamDropdown, Options: []string{BalancePayable, BalanceReceivable}},
			},
		},
		{
			Code:     AssertConsumes,
			Label:    "Consumes",
			Group:    "internal",
			MinLevel: 3,
			Params: []model.ParamSpec{
				{Name: "physical-item", Kind: model.ParamItem},
				{Name: "quantity", Kind: model.ParamNumber},
			},
		},
		{
			Code:     AssertProduces,
			Label:    "Produces",
			Group:    "internal",
			MinLevel: 3,
			Params: []model.ParamSpec{
				{Name: "physical-item", Kind: model.ParamItem},
				{Name: "quantity", Kind: model.ParamNumber},
			},
		},
		{
			Code:     AssertConsumesLabor,
			Label:    "Consumes Labor",
			Group:    "internal",
			MinLevel: 3,
			Params: []model.ParamSpec{
				{Name: "hours", Kind: model.ParamNumber},
			},
		},
	}
}
