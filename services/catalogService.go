package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// CatalogStore is the read-only menu lookup used while pricing an order.
type CatalogStore interface {
	FindItem(ctx context.Context, itemID uint) (*models.MealItem, error)
	FindPackage(ctx context.Context, packageID uint) (*models.MealPackage, error)
	FindSize(ctx context.Context, itemID, sizeID uint) (*models.MealItemSize, error)
}

// ItemFilter narrows ListItems. Zero values mean no restriction.
type ItemFilter struct {
	PackageID   uint
	Query       string
	AvailableAt *time.Time
}

type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// FindItem returns the item regardless of its active flag.
func (s *Catalog) FindItem(ctx context.Context, itemID uint) (*models.MealItem, error) {
	var item models.MealItem
	if err := s.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("find item %d: %w", itemID, err)
	}
	return &item, nil
}

func (s *Catalog) FindPackage(ctx context.Context, packageID uint) (*models.MealPackage, error) {
	var pkg models.MealPackage
	if err := s.db.WithContext(ctx).First(&pkg, packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrPackageNotFound, packageID)
		}
		return nil, fmt.Errorf("find package %d: %w", packageID, err)
	}
	return &pkg, nil
}

// FindSize returns an active size belonging to the item.
func (s *Catalog) FindSize(ctx context.Context, itemID, sizeID uint) (*models.MealItemSize, error) {
	var size models.MealItemSize
	err := s.db.WithContext(ctx).
		Where("size_id = ? AND item_id = ? AND status = ?", sizeID, itemID, models.CatalogActive).
		First(&size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: size %d of item %d", ErrSizeNotFound, sizeID, itemID)
		}
		return nil, fmt.Errorf("find size %d: %w", sizeID, err)
	}
	return &size, nil
}

func activeSizes(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.CatalogActive).Order("display_order ASC, size_id ASC")
}

func activeItems(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.CatalogActive).Order("display_order ASC, item_id ASC")
}

// ListPackages returns active packages, optionally with their active items and sizes.
func (s *Catalog) ListPackages(ctx context.Context, withItems bool) ([]models.MealPackage, error) {
	q := s.db.WithContext(ctx).
		Where("status = ?", models.CatalogActive).
		Order("display_order ASC, package_id ASC")
	if withItems {
		q = q.Preload("Items", activeItems).Preload("Items.Sizes", activeSizes)
	}

	var packages []models.MealPackage
	if err := q.Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

// ActivePackage returns ErrPackageNotFound for inactive packages too.
func (s *Catalog) ActivePackage(ctx context.Context, packageID uint, withItems bool) (*models.MealPackage, error) {
	q := s.db.WithContext(ctx).Where("package_id = ? AND status = ?", packageID, models.CatalogActive)
	if withItems {
		q = q.Preload("Items", activeItems).Preload("Items.Sizes", activeSizes)
	}

	var pkg models.MealPackage
	if err := q.First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package %d: %w", packageID, err)
	}
	return &pkg, nil
}

// ListItems returns active items with their package and active sizes.
func (s *Catalog) ListItems(ctx context.Context, f ItemFilter) ([]models.MealItem, error) {
	q := s.db.WithContext(ctx).
		Preload("Package").
		Preload("Sizes", activeSizes).
		Where("status = ?", models.CatalogActive)

	if f.PackageID != 0 {
		q = q.Where("package_id = ?", f.PackageID)
	}
	for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(f.Query))) {
		q = q.Where("LOWER(item_name) LIKE ?", "%"+term+"%")
	}
	if f.AvailableAt != nil {
		now := f.AvailableAt.Format(models.TimeOfDayLayout)
		q = q.Where("((start_from IS NULL AND end_to IS NULL) OR (start_from <= ? AND end_to >= ?))", now, now)
	}

	var items []models.MealItem
	if err := q.Order("display_order ASC, item_id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ActiveItem returns ErrItemNotFound for inactive items too.
func (s *Catalog) ActiveItem(ctx context.Context, itemID uint) (*models.MealItem, error) {
	var item models.MealItem
	err := s.db.WithContext(ctx).
		Preload("Package").
		Preload("Sizes", activeSizes).
		Preload("Addons", "status = ?", models.CatalogActive).
		Where("item_id = ? AND status = ?", itemID, models.CatalogActive).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("find item %d: %w", itemID, err)
	}
	return &item, nil
}

func (s *Catalog) ListAddons(ctx context.Context) ([]models.Addon, error) {
	var addons []models.Addon
	err := s.db.WithContext(ctx).
		Where("status = ?", models.CatalogActive).
		Order("display_order ASC, addon_id ASC").
		Find(&addons).Error
	if err != nil {
		return nil, fmt.Errorf("list addons: %w", err)
	}
	return addons, nil
}

func (s *Catalog) Addon(ctx context.Context, addonID uint) (*models.Addon, error) {
	var addon models.Addon
	if err := s.db.WithContext(ctx).First(&addon, addonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddonNotFound
		}
		return nil, fmt.Errorf("find addon %d: %w", addonID, err)
	}
	return &addon, nil
}

// AddonsForItem returns the active addons linked to an item.
func (s *Catalog) AddonsForItem(ctx context.Context, itemID uint) ([]models.Addon, error) {
	var addons []models.Addon
	err := s.db.WithContext(ctx).
		Joins("JOIN rs_meal_item_addons ON rs_meal_item_addons.addon_id = rs_addons.addon_id").
		Where("rs_meal_item_addons.item_id = ? AND rs_addons.status = ?", itemID, models.CatalogActive).
		Order("rs_addons.display_order ASC, rs_addons.addon_id ASC").
		Find(&addons).Error
	if err != nil {
		return nil, fmt.Errorf("list addons for item %d: %w", itemID, err)
	}
	return addons, nil
}
