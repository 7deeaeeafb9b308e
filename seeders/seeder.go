package seeders

import (
	"fmt"
	"log/slog"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// helper untuk pointer string
func ptrString(s string) *string {
	return &s
}

func ptrInt(n int) *int {
	return &n
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type seedItem struct {
	item   models.MealItem
	pkg    string
	addons []string
}

// Seed loads a demo menu and the fiscal settings an order needs. Running it again changes nothing.
func Seed(db *gorm.DB, log *slog.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// ============= Seed Settings =============
		settings := []models.SystemSetting{
			{Type: models.SettingTypeVAT, Value: "5", Status: models.SettingStatusActive, Description: ptrString("Standard VAT"), AddedBy: "seeder", UpdatedBy: "seeder"},
			{Type: models.SettingTypeFinanceYr, Value: "2026", Status: models.SettingStatusOpen, Description: ptrString("Current financial year"), AddedBy: "seeder", UpdatedBy: "seeder"},
		}
		for _, s := range settings {
			if err := tx.FirstOrCreate(&s, map[string]interface{}{"type": s.Type, "status": s.Status, "setting_for": s.SettingFor}).Error; err != nil {
				return fmt.Errorf("seed setting %s: %w", s.Type, err)
			}
		}

		// ============= Seed Packages =============
		packages := []models.MealPackage{
			{PackageName: "Breakfast", Status: models.CatalogActive, PrepareTime: 10, DisplayOrder: 1, Description: ptrString("Served until late morning")},
			{PackageName: "Mains", Status: models.CatalogActive, PrepareTime: 20, DisplayOrder: 2},
			{PackageName: "Drinks", Status: models.CatalogActive, PrepareTime: 5, DisplayOrder: 3},
			{PackageName: "Coffee", Status: models.CatalogActive, PrepareTime: 5, DisplayOrder: 4},
		}
		packageIDs := make(map[string]uint, len(packages))
		for _, p := range packages {
			if err := tx.FirstOrCreate(&p, models.MealPackage{PackageName: p.PackageName}).Error; err != nil {
				return fmt.Errorf("seed package %s: %w", p.PackageName, err)
			}
			packageIDs[p.PackageName] = p.PackageID
		}

		// ============= Seed Addons =============
		addons := []models.Addon{
			{AddonName: "Extra Cheese", Price: price("1.50"), Status: models.CatalogActive, DisplayOrder: 1},
			{AddonName: "Fried Egg", Price: price("1.00"), Status: models.CatalogActive, DisplayOrder: 2},
			{AddonName: "Oat Milk", Price: price("0.60"), Status: models.CatalogActive, DisplayOrder: 3},
		}
		addonsByName := make(map[string]models.Addon, len(addons))
		for _, a := range addons {
			if err := tx.FirstOrCreate(&a, models.Addon{AddonName: a.AddonName}).Error; err != nil {
				return fmt.Errorf("seed addon %s: %w", a.AddonName, err)
			}
			addonsByName[a.AddonName] = a
		}

		// ============= Seed Items =============
		items := []seedItem{
			{pkg: "Breakfast", addons: []string{"Fried Egg"}, item: models.MealItem{
				ItemName: "Pancake Stack", CostPrice: price("6.50"), OrderTo: models.StationKitchen,
				StartFrom: ptrString("06:00:00"), EndTo: ptrString("11:30:00"), Status: models.CatalogActive, DisplayOrder: 1,
			}},
			{pkg: "Mains", addons: []string{"Extra Cheese", "Fried Egg"}, item: models.MealItem{
				ItemName: "Beef Burger", CostPrice: price("10.00"), OrderTo: models.StationKitchen,
				Status: models.CatalogActive, PrepareTime: ptrInt(18), DisplayOrder: 1,
				Ingredients: ptrString("Beef patty, lettuce, tomato, brioche bun"),
			}},
			{pkg: "Mains", item: models.MealItem{
				ItemName: "Vegetable Curry", CostPrice: price("9.25"), OrderTo: models.StationKitchen,
				Status: models.CatalogActive, IsVegetarian: true, IsSpicy: true, DisplayOrder: 2,
			}},
			{pkg: "Drinks", item: models.MealItem{
				ItemName: "Fresh Orange Juice", CostPrice: price("3.50"), OrderTo: models.StationDrinks,
				Status: models.CatalogActive, DisplayOrder: 1,
				Sizes: []models.MealItemSize{
					{SizeName: "Small", Price: price("3.50"), Status: models.CatalogActive, DisplayOrder: 1},
					{SizeName: "Large", Price: price("5.00"), Status: models.CatalogActive, DisplayOrder: 2},
				},
			}},
			{pkg: "Coffee", addons: []string{"Oat Milk"}, item: models.MealItem{
				ItemName: "Flat White", CostPrice: price("3.20"), OrderTo: models.StationCoffee,
				Status: models.CatalogActive, PrepareTime: ptrInt(4), DisplayOrder: 1,
			}},
		}
		for _, si := range items {
			item := si.item
			item.PackageID = packageIDs[si.pkg]
			if err := tx.FirstOrCreate(&item, models.MealItem{ItemName: item.ItemName}).Error; err != nil {
				return fmt.Errorf("seed item %s: %w", item.ItemName, err)
			}
			if len(si.addons) == 0 {
				continue
			}
			linked := make([]models.Addon, 0, len(si.addons))
			for _, name := range si.addons {
				linked = append(linked, addonsByName[name])
			}
			if err := tx.Model(&item).Association("Addons").Append(linked); err != nil {
				return fmt.Errorf("link addons to %s: %w", item.ItemName, err)
			}
		}

		if log != nil {
			log.Info("seeding finished", "settings", len(settings), "packages", len(packages), "addons", len(addons), "items", len(items))
		}
		return nil
	})
}
