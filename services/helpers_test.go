package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func intPtr(n int) *int { return &n }

func uintPtr(n uint) *uint { return &n }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedMenu creates package 1 (prepare 12) with item 7 at 10.00 (no prepare time), item 8 at 4.25
// (prepare 3, drinks) with sizes 1 (Small 4.25) and 2 (Large 6.00), and package 2 (prepare 0).
func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.MealPackage{PackageID: 1, PackageName: "Mains", Status: models.CatalogActive, PrepareTime: 12}).Error)
	require.NoError(t, db.Create(&models.MealPackage{PackageID: 2, PackageName: "Specials", Status: models.CatalogActive}).Error)
	require.NoError(t, db.Model(&models.MealPackage{}).Where("package_id = ?", 2).Update("prepare_time", 0).Error)
	require.NoError(t, db.Create(&models.MealItem{ItemID: 7, ItemName: "Burger", PackageID: 1, CostPrice: dec("10.00"), Status: models.CatalogActive}).Error)
	require.NoError(t, db.Create(&models.MealItem{
		ItemID: 8, ItemName: "Lemonade", PackageID: 1, CostPrice: dec("4.25"), OrderTo: models.StationDrinks,
		Status: models.CatalogActive, PrepareTime: intPtr(3),
	}).Error)
	require.NoError(t, db.Create(&models.MealItemSize{SizeID: 1, ItemID: 8, SizeName: "Small", Price: dec("4.25"), Status: models.CatalogActive}).Error)
	require.NoError(t, db.Create(&models.MealItemSize{SizeID: 2, ItemID: 8, SizeName: "Large", Price: dec("6.00"), Status: models.CatalogActive}).Error)
}

func seedSettings(t *testing.T, db *gorm.DB, vat, year string) {
	t.Helper()
	require.NoError(t, db.Create(&models.SystemSetting{Type: models.SettingTypeVAT, Value: vat, Status: models.SettingStatusActive}).Error)
	require.NoError(t, db.Create(&models.SystemSetting{Type: models.SettingTypeFinanceYr, Value: year, Status: models.SettingStatusOpen}).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

type groupCounts struct {
	Orders, Lines, Invoices, InvoiceLines, Ledger int64
}

func countGroups(t *testing.T, db *gorm.DB) groupCounts {
	t.Helper()
	return groupCounts{
		Orders:       countRows(t, db, &models.Order{}),
		Lines:        countRows(t, db, &models.OrderLine{}),
		Invoices:     countRows(t, db, &models.Invoice{}),
		InvoiceLines: countRows(t, db, &models.InvoiceLine{}),
		Ledger:       countRows(t, db, &models.LedgerEntry{}),
	}
}

var errInjected = errors.New("injected write failure")

// failInsertsInto makes every insert into table fail.
func failInsertsInto(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == table {
			_ = tx.AddError(errInjected)
		}
	})
	require.NoError(t, err)
}

type fakeCatalog struct {
	items    map[uint]models.MealItem
	packages map[uint]models.MealPackage
	sizes    map[uint]models.MealItemSize
	calls    int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		items: map[uint]models.MealItem{
			7: {ItemID: 7, ItemName: "Burger", PackageID: 1, CostPrice: dec("10.00")},
			8: {ItemID: 8, ItemName: "Lemonade", PackageID: 1, CostPrice: dec("4.25"), OrderTo: models.StationDrinks, PrepareTime: intPtr(3)},
			9: {ItemID: 9, ItemName: "Soup", PackageID: 2, CostPrice: dec("3.333")},
		},
		packages: map[uint]models.MealPackage{
			1: {PackageID: 1, PackageName: "Mains", PrepareTime: 12},
			2: {PackageID: 2, PackageName: "Specials"},
		},
		sizes: map[uint]models.MealItemSize{
			2: {SizeID: 2, ItemID: 8, SizeName: "Large", Price: dec("6.00")},
		},
	}
}

func (f *fakeCatalog) FindItem(_ context.Context, itemID uint) (*models.MealItem, error) {
	f.calls++
	item, ok := f.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
	}
	return &item, nil
}

func (f *fakeCatalog) FindPackage(_ context.Context, packageID uint) (*models.MealPackage, error) {
	f.calls++
	pkg, ok := f.packages[packageID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPackageNotFound, packageID)
	}
	return &pkg, nil
}

func (f *fakeCatalog) FindSize(_ context.Context, itemID, sizeID uint) (*models.MealItemSize, error) {
	f.calls++
	size, ok := f.sizes[sizeID]
	if !ok || size.ItemID != itemID {
		return nil, fmt.Errorf("%w: size %d of item %d", ErrSizeNotFound, sizeID, itemID)
	}
	return &size, nil
}

func testBuilder(catalog CatalogStore) *OrderBuilder {
	return NewOrderBuilder(catalog, BuilderOptions{Now: func() time.Time { return fixedNow }})
}

func tableRequest(lines ...CartLine) OrderRequest {
	return OrderRequest{Lines: lines, TableName: "Table 4", TableID: "T4", WhouseID: "W1"}
}
