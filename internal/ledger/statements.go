// Package ledger derives financial statements from a learner's ledger.
// Statements are never stored: each request folds the full ledger into a
// fresh balance sheet and income statement.
package ledger

import (
	"sort"
	"strings"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/model"
)

// AccountBalance is one account's normal-sign balance on a statement.
type AccountBalance struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

// BalanceSheet groups balance-sheet accounts into their buckets.
type BalanceSheet struct {
	Assets                []AccountBalance `json:"assets"`
	ContraAssets          []AccountBalance `json:"contra_assets"`
	Liabilities           []AccountBalance `json:"liabilities"`
	Equity                []AccountBalance `json:"equity"`
	TotalAssets           float64          `json:"total_assets"`
	TotalLiabilities      float64          `json:"total_liabilities"`
	TotalEquity           float64          `json:"total_equity"`
	LiabilitiesPlusEquity float64          `json:"liabilities_plus_equity"`
}

// IncomeStatement groups income-statement accounts and their net result.
type IncomeStatement struct {
	Revenues      []AccountBalance `json:"revenues"`
	Expenses      []AccountBalance `json:"expenses"`
	TotalRevenue  float64          `json:"total_revenue"`
	TotalExpenses float64          `json:"total_expenses"`
	NetIncome     float64          `json:"net_income"`
}

// FinancialStatements is the derived output for one learner's ledger.
type FinancialStatements struct {
	BalanceSheet     BalanceSheet    `json:"balance_sheet"`
	IncomeStatement  IncomeStatement `json:"income_statement"`
	TransactionCount int             `json:"transaction_count"`
	AsOfDate         model.SimDate   `json:"as_of_date"`
}

// Derive folds the full ledger into statements. Amounts are parsed back
// out of the rendered journal-leg strings, accumulated per account with a
// debit-positive convention, converted to each account's normal sign, and
// bucketed; zero balances are dropped.
func Derive(c *catalog.Catalog, entries []model.LedgerEntry) FinancialStatements {
	balances := make(map[string]float64)

	for _, entry := range entries {
		for _, leg := range entry.Legs {
			account, amount := parseLegSide(leg.Debit)
			if account != "" {
				balances[account] += amount
			}
			account, amount = parseLegSide(leg.Credit)
			if account != "" {
				balances[account] -= amount
			}
		}
	}

	statements := FinancialStatements{TransactionCount: len(entries)}
	for _, entry := range entries {
		if entry.Date.Compare(statements.AsOfDate) > 0 {
			statements.AsOfDate = entry.Date
		}
	}

	names := make([]string, 0, len(balances))
	for name := range balances {
		names = append(names, name)
	}
	sort.Strings(names)

	bs := &statements.BalanceSheet
	is := &statements.IncomeStatement

	for _, name := range names {
		info, ok := c.Account(name)
		if !ok {
			continue
		}

		balance := balances[name]
		if info.Normal == catalog.NormalCredit {
			balance = -balance
		}
		if balance == 0 {
			continue
		}

		ab := AccountBalance{Account: name, Balance: balance}
		switch info.Type {
		case model.AccountAsset:
			bs.Assets = append(bs.Assets, ab)
			bs.TotalAssets += balance
		case model.AccountContra:
			bs.ContraAssets = append(bs.ContraAssets, ab)
			bs.TotalAssets -= balance
		case model.AccountLiability:
			bs.Liabilities = append(bs.Liabilities, ab)
			bs.TotalLiabilities += balance
		case model.AccountEquity:
			bs.Equity = append(bs.Equity, ab)
			bs.TotalEquity += balance
		case model.AccountRevenue:
			is.Revenues = append(is.Revenues, ab)
			is.TotalRevenue += balance
		case model.AccountExpense:
			is.Expenses = append(is.Expenses, ab)
			is.TotalExpenses += balance
		}
	}

	is.NetIncome = is.TotalRevenue - is.TotalExpenses

	// Retained earnings are not posted to an account in this simplified
	// ledger; the check figure carries net income so the sheet balances.
	bs.TotalEquity += is.NetIncome
	bs.LiabilitiesPlusEquity = bs.TotalLiabilities + bs.TotalEquity

	return statements
}

// parseLegSide splits a rendered leg side into account name and amount. A
// side with no embedded amount contributes nothing to any balance.
func parseLegSide(side string) (string, float64) {
	amount, ok := common.ParseAmount(side)
	if !ok {
		return "", 0
	}
	account := side
	if i := strings.LastIndex(side, " $"); i >= 0 {
		account = side[:i]
	}
	return account, amount
}
