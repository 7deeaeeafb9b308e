package models

// All lists every model managed by migrations, parents before children.
func All() []interface{} {
	return []interface{}{
		&MealPackage{},
		&MealItem{},
		&MealItemSize{},
		&Addon{},
		&SystemSetting{},
		&Order{},
		&OrderLine{},
		&OrderStatusLog{},
		&Invoice{},
		&InvoiceLine{},
		&LedgerEntry{},
		&Guest{},
	}
}
