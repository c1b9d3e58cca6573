package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Statement identifies which financial statement an account belongs to.
type Statement string

// Statement constants.
const (
	StatementBalanceSheet Statement = "balance-sheet"
	StatementIncome       Statement = "income-statement"
)

// NormalSide is the side on which an account's balance normally sits.
type NormalSide string

// Normal side constants.
const (
	NormalDebit  NormalSide = "debit"
	NormalCredit NormalSide = "credit"
)

// AccountInfo classifies one canonical account name for statement
// derivation: which statement it appears on, its type, and its normal side.
type AccountInfo struct {
	Name        string
	Statement   Statement
	Type        model.AccountType
	Normal      NormalSide
	UnlockLevel int
}

// Canonical account names used by rules, items, and the statement deriver.
const (
	AccountCash          = "Cash"
	AccountReceivable    = "Accounts Receivable"
	AccountRawMaterials  = "Raw Materials Inventory"
	AccountFinishedGoods = "Finished Goods Inventory"
	AccountEquipment     = "Equipment (Fixed Asset)"
	AccountAccumDepr     = "Accumulated Depreciation"
	AccountPayable       = "Accounts Payable"
	AccountNotesPayable  = "Notes Payable"
	AccountOwnersCapital = "Owner's Capital"
	AccountSalesRevenue  = "Sales Revenue"
	AccountWagesExpense  = "Wages Expense"
	AccountRentExpense   = "Rent Expense"
	AccountDeprExpense   = "Depreciation Expense"
)

// DefaultAccounts returns the static account classification table.
func DefaultAccounts() []AccountInfo {
	return []AccountInfo{
		{Name: AccountCash, Statement: StatementBalanceSheet, Type: model.AccountAsset, Normal: NormalDebit, UnlockLevel: 1},
		{Name: AccountReceivable, Statement: StatementBalanceSheet, Type: model.AccountAsset, Normal: NormalDebit, UnlockLevel: 2},
		{Name: AccountRawMaterials, Statement: StatementBalanceSheet, Type: model.AccountAsset, Normal: NormalDebit, UnlockLevel: 1},
		{Name: AccountFinishedGoods, Statement: StatementBalanceSheet, Type: model.AccountAsset, Normal: NormalDebit, UnlockLevel: 1},
		{Name: AccountEquipment, Statement: StatementBalanceSheet, Type: model.AccountAsset, Normal: NormalDebit, UnlockLevel: 1},
		{Name: AccountAccumDepr, Statement: StatementBalanceSheet, Type: model.AccountContra, Normal: NormalCredit, UnlockLevel: 4},
		{Name: AccountPayable, Statement: StatementBalanceSheet, Type: model.AccountLiability, Normal: NormalCredit, UnlockLevel: 2},
		{Name: AccountNotesPayable, Statement: StatementBalanceSheet, Type: model.AccountLiability, Normal: NormalCredit, UnlockLevel: 4},
		{Name: AccountOwnersCapital, Statement: StatementBalanceSheet, Type: model.AccountEquity, Normal: NormalCredit, UnlockLevel: 4},
		{Name: AccountSalesRevenue, Statement: StatementIncome, Type: model.AccountRevenue, Normal: NormalCredit, UnlockLevel: 1},
		{Name: AccountWagesExpense, Statement: StatementIncome, Type: model.AccountExpense, Normal: NormalDebit, UnlockLevel: 3},
		{Name: AccountRentExpense, Statement: StatementIncome, Type: model.AccountExpense, Normal: NormalDebit, UnlockLevel: 3},
		{Name: AccountDeprExpense, Statement: StatementIncome, Type: model.AccountExpense, Normal: NormalDebit, UnlockLevel: 4},
	}
}
