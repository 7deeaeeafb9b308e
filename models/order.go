package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID     uint            `gorm:"primaryKey;column:order_id"`
	WhouseID    string          `gorm:"size:64;not null;index"`
	OrderFrom   string          `gorm:"size:32;not null"`
	OrderType   string          `gorm:"size:32;not null"`
	OrderSource string          `gorm:"size:64;not null"`
	Reference   string          `gorm:"size:64;not null;index"`
	TableLabel  string          `gorm:"column:table_name;size:191;not null"`
	OrderAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FinanceYr   string          `gorm:"size:32;not null;index"`
	Status      string          `gorm:"size:20;not null;default:ordered"`
	VatValue    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VatPercents decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	VatStatus   string          `gorm:"size:20;not null"`
	PrintStatus string          `gorm:"size:20;not null"`
	AddedBy     string          `gorm:"size:64;not null"`
	UpdatedBy   string          `gorm:"size:64;not null"`
	AddedDate   time.Time       `gorm:"not null"`
	UpdatedDate time.Time       `gorm:"not null"`
	Lines       []OrderLine     `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string { return "rs_meal_order" }

// TotalAmount is subtotal plus tax.
func (o Order) TotalAmount() decimal.Decimal {
	return o.OrderAmount.Add(o.VatValue)
}

// OrderLine is a priced snapshot of one cart line. Item and package names and the unit price are
// copied at placement time and never follow later catalog changes.
type OrderLine struct {
	DetailID      uint            `gorm:"primaryKey;column:detail_id"`
	OrderID       uint            `gorm:"not null;index"`
	MealType      string          `gorm:"size:32;not null"`
	MealID        uint            `gorm:"not null;index"`
	ItemName      string          `gorm:"size:191;not null"`
	PackageID     uint            `gorm:"not null"`
	PackageName   string          `gorm:"size:191;not null"`
	SizeID        *uint           `gorm:"index"`
	SizeName      string          `gorm:"size:50"`
	Quantity      int             `gorm:"not null"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OrderTo       string          `gorm:"size:20;not null"`
	Status        string          `gorm:"size:20;not null"`
	PrintStatus   string          `gorm:"size:20;not null"`
	PaidStatus    string          `gorm:"size:20;not null"`
	Notes         string          `gorm:"type:text"`
	PrepareTime   int             `gorm:"not null"`
	PrepareStatus string          `gorm:"size:20;not null"`
	StartedTime   *time.Time      `gorm:"column:started_time"`
	ReadyTime     *time.Time      `gorm:"column:ready_time"`
	AddedBy       string          `gorm:"size:64;not null"`
	UpdatedBy     string          `gorm:"size:64;not null"`
	AddedDate     time.Time       `gorm:"not null"`
	UpdatedDate   time.Time       `gorm:"not null"`
}

func (OrderLine) TableName() string { return "rs_meal_order_details" }

// OrderStatusLog records each status change of an order.
type OrderStatusLog struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uint      `gorm:"not null;index"`
	OldStatus string    `gorm:"size:20;not null"`
	NewStatus string    `gorm:"size:20;not null"`
	OldPaid   *string   `gorm:"size:32"`
	NewPaid   *string   `gorm:"size:32"`
	ChangedBy string    `gorm:"size:64;not null"`
	IPAddress *string   `gorm:"size:64"`
	ChangedAt time.Time `gorm:"not null"`
}

func (OrderStatusLog) TableName() string { return "rs_order_status_logs" }
