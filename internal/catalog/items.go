package catalog

import "github.com/drdebit/aalp-sub001/internal/model"

// Physical item keys.
const (
	ItemBlankTshirts   = "blank-tshirts"
	ItemInkCartridges  = "ink-cartridges"
	ItemTshirtPrinter  = "t-shirt-printer"
	ItemHeatPress      = "heat-press"
	ItemPrintedTshirts = "printed-tshirts"
)

// DefaultItems returns the immutable physical-item catalog. Every account
// mapping involving goods flows through this table.
func DefaultItems() []model.PhysicalItem {
	return []model.PhysicalItem{
		{
			Key:              ItemBlankTshirts,
			Label:            "Blank T-Shirts",
			ReceivingAccount: AccountRawMaterials,
			ProvidingAccount: AccountRawMaterials,
			AccountType:      model.AccountAsset,
			Category:         model.CategoryRawMaterial,
			UnlockLevel:      1,
			PurchaseCost:     4,
		},
		{
			Key:              ItemInkCartridges,
			Label:            "Ink Cartridges",
			ReceivingAccount: AccountRawMaterials,
			ProvidingAccount: AccountRawMaterials,
			AccountType:      model.AccountAsset,
			Category:         model.CategoryRawMaterial,
			UnlockLevel:      2,
			PurchaseCost:     60,
		},
		{
			Key:              ItemTshirtPrinter,
			Label:            "T-Shirt Printer",
			ReceivingAccount: AccountEquipment,
			ProvidingAccount: AccountEquipment,
			AccountType:      model.AccountAsset,
			Category:         model.CategoryEquipment,
			UnlockLevel:      1,
			PurchaseCost:     2500,
		},
		{
			Key:              ItemHeatPress,
			Label:            "Heat Press",
			ReceivingAccount: AccountEquipment,
			ProvidingAccount: AccountEquipment,
			AccountType:      model.AccountAsset,
			Category:         model.CategoryEquipment,
			UnlockLevel:      3,
			PurchaseCost:     1200,
		},
		{
			Key:              ItemPrintedTshirts,
			Label:            "Printed T-Shirts",
			ReceivingAccount: AccountFinishedGoods,
			ProvidingAccount: AccountFinishedGoods,
			AccountType:      model.AccountAsset,
			Category:         model.CategoryFinishedGood,
			UnlockLevel:      1,
			PurchaseCost:     4,
			SalePrice:        25,
		},
	}
}
