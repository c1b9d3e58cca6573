package model

// ItemCategory groups physical items by their role in the business.
type ItemCategory string

// Item category constants.
const (
	CategoryRawMaterial  ItemCategory = "raw-material"
	CategoryEquipment    ItemCategory = "equipment"
	CategoryFinishedGood ItemCategory = "finished-good"
)

// AccountType classifies the account a physical item maps to.
type AccountType string

// Account type constants.
const (
	AccountAsset     AccountType = "asset"
	AccountContra    AccountType = "contra-asset"
	AccountLiability AccountType = "liability"
	AccountEquity    AccountType = "equity"
	AccountRevenue   AccountType = "revenue"
	AccountExpense   AccountType = "expense"
)

// PhysicalItem is the single source of truth for a tradeable good: its
// label, the accounts it maps to when received or provided, and its
// simulation economics. The catalog of items is immutable.
type PhysicalItem struct {
	Key              string
	Label            string
	ReceivingAccount string // account debited when the business receives the item
	ProvidingAccount string // account credited when the business provides the item
	AccountType      AccountType
	Category         ItemCategory
	UnlockLevel      int
	PurchaseCost     float64 // per-unit cost when buying
	SalePrice        float64 // per-unit price when selling; 0 when not sold
}
