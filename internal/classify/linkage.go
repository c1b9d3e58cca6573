package classify

import (
	"sort"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// linkages resolves, for every present assertion, the account and
// debit/credit effect it implies. This is learner-facing explanation only:
// it never feeds back into matching or scoring.
func (e *Engine) linkages(set model.AssertionSet) []model.AccountLinkage {
	var links []model.AccountLinkage

	add := func(code, account, side string) {
		if account == "" {
			return
		}
		links = append(links, model.AccountLinkage{Assertion: code, Account: account, Side: side})
	}

	for code, params := range set {
		switch code {
		case catalog.AssertProvides:
			account, side := e.exchangeAccount(params, false)
			add(code, account, side)
		case catalog.AssertReceives:
			account, side := e.exchangeAccount(params, true)
			add(code, account, side)
		case catalog.AssertExpects:
			add(code, catalog.AccountReceivable, "debit")
		case catalog.AssertRequires:
			add(code, catalog.AccountPayable, "credit")
		case catalog.AssertSettles:
			switch params["balance"] {
			case catalog.BalancePayable:
				add(code, catalog.AccountPayable, "debit")
			case catalog.BalanceReceivable:
				add(code, catalog.AccountReceivable, "credit")
			}
		case catalog.AssertReports:
			switch params["what"] {
			case catalog.ReportsRevenue:
				add(code, catalog.AccountSalesRevenue, "credit")
			case catalog.ReportsExpense:
				add(code, "an expense account", "debit")
			}
		case catalog.AssertConsumes:
			if item, ok := e.paramItem(params); ok {
				if item.Category == model.CategoryEquipment {
					add(code, catalog.AccountAccumDepr, "credit")
				} else {
					add(code, item.ProvidingAccount, "credit")
				}
			}
		case catalog.AssertProduces:
			if item, ok := e.paramItem(params); ok {
				add(code, item.ReceivingAccount, "debit")
			}
		case catalog.AssertConsumesLabor:
			add(code, catalog.AccountWagesExpense, "debit")
		}
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Assertion < links[j].Assertion })
	return links
}

// exchangeAccount maps a provides/receives assertion to its implied
// account. Receiving is the debit side; providing is the credit side.
func (e *Engine) exchangeAccount(params model.Params, receiving bool) (string, string) {
	side := "credit"
	if receiving {
		side = "debit"
	}

	switch params["unit"] {
	case catalog.UnitMonetary:
		return catalog.AccountCash, side
	case catalog.UnitPhysical:
		if item, ok := e.paramItem(params); ok {
			if receiving {
				return item.ReceivingAccount, side
			}
			return item.ProvidingAccount, side
		}
		return "", ""
	case catalog.UnitService:
		if receiving {
			return "an expense account", side
		}
		return catalog.AccountSalesRevenue, side
	default:
		return "", ""
	}
}

func (e *Engine) paramItem(params model.Params) (*model.PhysicalItem, bool) {
	key, ok := params["physical-item"].(string)
	if !ok {
		return nil, false
	}
	return e.catalog.Item(key)
}
