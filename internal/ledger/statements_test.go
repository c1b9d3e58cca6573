package ledger

import (
	"testing"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date model.SimDate, legs ...model.JournalLeg) model.LedgerEntry {
	return model.LedgerEntry{Date: date, Legs: legs}
}

func leg(debit, credit string) model.JournalLeg {
	return model.JournalLeg{Debit: debit, Credit: credit}
}

func TestDeriveEmptyLedger(t *testing.T) {
	statements := Derive(catalog.MustDefault(), nil)

	assert.Zero(t, statements.TransactionCount)
	assert.Empty(t, statements.BalanceSheet.Assets)
	assert.Zero(t, statements.BalanceSheet.TotalAssets)
	assert.Zero(t, statements.IncomeStatement.NetIncome)
}

func TestDeriveBalanceSheetBalances(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 1, Month: 1, Day: 1},
			leg("Cash $10,000", "Owner's Capital $10,000")),
		entry(model.SimDate{Year: 1, Month: 1, Day: 4},
			leg("Equipment (Fixed Asset) $2,500", "Cash $2,500")),
	}

	statements := Derive(c, entries)

	assert.Equal(t, 2, statements.TransactionCount)
	assert.Equal(t, model.SimDate{Year: 1, Month: 1, Day: 4}, statements.AsOfDate)

	bs := statements.BalanceSheet
	assert.Equal(t, []AccountBalance{
		{Account: "Cash", Balance: 7500},
		{Account: "Equipment (Fixed Asset)", Balance: 2500},
	}, bs.Assets)
	assert.InDelta(t, 10000.0, bs.TotalAssets, 1e-9)
	assert.InDelta(t, 10000.0, bs.TotalEquity, 1e-9)
	assert.InDelta(t, bs.TotalAssets, bs.LiabilitiesPlusEquity, 1e-9)
}

func TestDeriveNetIncomeFlowsIntoEquity(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 1, Month: 2, Day: 10},
			leg("Cash $250", "Sales Revenue $250")),
		entry(model.SimDate{Year: 1, Month: 2, Day: 12},
			leg("Rent Expense $100", "Cash $100")),
	}

	statements := Derive(c, entries)

	is := statements.IncomeStatement
	assert.InDelta(t, 250.0, is.TotalRevenue, 1e-9)
	assert.InDelta(t, 100.0, is.TotalExpenses, 1e-9)
	assert.InDelta(t, 150.0, is.NetIncome, 1e-9)

	// No equity account was posted, so equity is the net income check figure.
	bs := statements.BalanceSheet
	assert.Empty(t, bs.Equity)
	assert.InDelta(t, 150.0, bs.TotalEquity, 1e-9)
	assert.InDelta(t, bs.TotalAssets, bs.LiabilitiesPlusEquity, 1e-9)
}

func TestDeriveContraAssetReducesTotalAssets(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 1, Month: 1, Day: 1},
			leg("Equipment (Fixed Asset) $2,500", "Cash $2,500")),
		entry(model.SimDate{Year: 1, Month: 12, Day: 28},
			leg("Depreciation Expense $500", "Accumulated Depreciation $500")),
	}

	statements := Derive(c, entries)

	bs := statements.BalanceSheet
	require.Len(t, bs.ContraAssets, 1)
	assert.Equal(t, AccountBalance{Account: "Accumulated Depreciation", Balance: 500}, bs.ContraAssets[0])
	// Equipment 2,500 less Cash 2,500 less accumulated depreciation 500.
	assert.InDelta(t, -500.0, bs.TotalAssets, 1e-9)
	assert.InDelta(t, -500.0, statements.IncomeStatement.NetIncome, 1e-9)
	assert.InDelta(t, bs.TotalAssets, bs.LiabilitiesPlusEquity, 1e-9)
}

func TestDeriveDropsZeroBalances(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 1, Month: 1, Day: 2},
			leg("Raw Materials Inventory $400", "Accounts Payable $400")),
		entry(model.SimDate{Year: 1, Month: 1, Day: 9},
			leg("Accounts Payable $400", "Cash $400")),
	}

	statements := Derive(c, entries)

	assert.Empty(t, statements.BalanceSheet.Liabilities)
	assert.Zero(t, statements.BalanceSheet.TotalLiabilities)
	accounts := make([]string, 0, len(statements.BalanceSheet.Assets))
	for _, ab := range statements.BalanceSheet.Assets {
		accounts = append(accounts, ab.Account)
	}
	assert.ElementsMatch(t, []string{"Cash", "Raw Materials Inventory"}, accounts)
}

func TestDeriveAsOfDateIsLatestEntryDate(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 2, Month: 1, Day: 3},
			leg("Cash $250", "Sales Revenue $250")),
		entry(model.SimDate{Year: 1, Month: 6, Day: 14},
			leg("Rent Expense $100", "Cash $100")),
	}

	statements := Derive(c, entries)

	assert.Equal(t, model.SimDate{Year: 2, Month: 1, Day: 3}, statements.AsOfDate)
}

func TestDeriveIgnoresLegsWithoutAmounts(t *testing.T) {
	c := catalog.MustDefault()
	entries := []model.LedgerEntry{
		entry(model.SimDate{Year: 1, Month: 1, Day: 1},
			leg("Cash", "Sales Revenue")),
	}

	statements := Derive(c, entries)

	assert.Equal(t, 1, statements.TransactionCount)
	assert.Empty(t, statements.BalanceSheet.Assets)
	assert.Zero(t, statements.IncomeStatement.TotalRevenue)
}
