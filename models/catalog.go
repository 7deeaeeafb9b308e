package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CatalogActive   = "active"
	CatalogInactive = "inactive"
)

// DefaultPrepareTime is used when neither the item nor its package carry a prepare time (minutes).
const DefaultPrepareTime = 15

type MealPackage struct {
	PackageID    uint       `gorm:"primaryKey;column:package_id" json:"packageID"`
	PackageName  string     `gorm:"size:191;not null" json:"packageName"`
	Photo80      *string    `json:"photo80,omitempty"`
	Photo320     *string    `json:"photo320,omitempty"`
	Status       string     `gorm:"size:20;not null;default:active;index" json:"status"`
	PrepareTime  int        `gorm:"not null;default:15" json:"prepareTime"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int        `gorm:"not null;default:0;index" json:"displayOrder"`
	Items        []MealItem `gorm:"foreignKey:PackageID;references:PackageID" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MealPackage) TableName() string { return "rs_meal_packages" }

type MealItem struct {
	ItemID       uint            `gorm:"primaryKey;column:item_id" json:"itemID"`
	ItemName     string          `gorm:"size:191;not null" json:"itemName"`
	PackageID    uint            `gorm:"not null;index" json:"packageID"`
	Package      *MealPackage    `gorm:"foreignKey:PackageID;references:PackageID" json:"package,omitempty"`
	Photo80      *string         `json:"photo80,omitempty"`
	Photo320     *string         `json:"photo320,omitempty"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"costPrice"`
	OrderTo      string          `gorm:"size:20;not null;default:kitchen;index" json:"orderTo"`
	StartFrom    *string         `gorm:"size:8" json:"startFrom,omitempty"`
	EndTo        *string         `gorm:"size:8" json:"endTo,omitempty"`
	Status       string          `gorm:"size:20;not null;default:active;index" json:"status"`
	PrepareTime  *int            `json:"prepareTime,omitempty"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	Ingredients  *string         `gorm:"type:text" json:"ingredients,omitempty"`
	IsVegetarian bool            `gorm:"not null;default:false" json:"isVegetarian"`
	IsSpicy      bool            `gorm:"not null;default:false" json:"isSpicy"`
	DisplayOrder int             `gorm:"not null;default:0;index" json:"displayOrder"`
	Sizes        []MealItemSize  `gorm:"foreignKey:ItemID;references:ItemID" json:"sizes,omitempty"`
	Addons       []Addon         `gorm:"many2many:rs_meal_item_addons;joinForeignKey:ItemID;joinReferences:AddonID" json:"addons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MealItem) TableName() string { return "rs_meal_items" }

// EffectivePrepareTime resolves item override, then package default, then DefaultPrepareTime.
func (m MealItem) EffectivePrepareTime(pkg *MealPackage) int {
	if m.PrepareTime != nil && *m.PrepareTime > 0 {
		return *m.PrepareTime
	}
	if pkg != nil && pkg.PrepareTime > 0 {
		return pkg.PrepareTime
	}
	return DefaultPrepareTime
}

// AvailableAt reports whether t falls inside the item's time-of-day window.
// An item with no window is always available.
func (m MealItem) AvailableAt(t time.Time) bool {
	if m.StartFrom == nil && m.EndTo == nil {
		return true
	}
	if m.StartFrom == nil || m.EndTo == nil {
		return false
	}
	now := t.Format(TimeOfDayLayout)
	return now >= *m.StartFrom && now <= *m.EndTo
}

// TimeOfDayLayout is the storage format of StartFrom/EndTo.
const TimeOfDayLayout = "15:04:05"

type MealItemSize struct {
	SizeID       uint            `gorm:"primaryKey;column:size_id" json:"sizeID"`
	ItemID       uint            `gorm:"not null;index:idx_size_item_status" json:"itemID"`
	SizeName     string          `gorm:"size:50;not null" json:"sizeName"`
	Price        decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Status       string          `gorm:"size:20;not null;default:active;index:idx_size_item_status" json:"status"`
	DisplayOrder int             `gorm:"not null;default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MealItemSize) TableName() string { return "rs_meal_item_sizes" }

type Addon struct {
	AddonID      uint            `gorm:"primaryKey;column:addon_id" json:"addonID"`
	AddonName    string          `gorm:"size:191;not null" json:"addonName"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Status       string          `gorm:"size:20;not null;default:active;index" json:"status"`
	DisplayOrder int             `gorm:"not null;default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Addon) TableName() string { return "rs_addons" }
