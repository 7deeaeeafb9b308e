package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the accounting mirror of an order. Exactly one per order.
type Invoice struct {
	InvocID          uint            `gorm:"primaryKey;column:invoc_id"`
	WhouseID         string          `gorm:"size:64;not null;index"`
	InvceType        string          `gorm:"size:32;not null"`
	Reference        uint            `gorm:"not null;uniqueIndex"`
	PayeeID          string          `gorm:"size:32;not null"`
	CommissionerID   uint            `gorm:"not null;default:0"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CommissionStatus string          `gorm:"size:20;not null"`
	PaidStatus       string          `gorm:"size:20;not null"`
	Remarks          string          `gorm:"size:255"`
	FinanceYr        string          `gorm:"size:32;not null;index"`
	Status           string          `gorm:"size:20;not null"`
	AddedBy          string          `gorm:"size:64;not null"`
	UpdatedBy        string          `gorm:"size:64;not null"`
	AddedDate        time.Time       `gorm:"not null"`
	UpdatedDate      time.Time       `gorm:"not null"`
	Lines            []InvoiceLine   `gorm:"foreignKey:InvocID;references:InvocID"`
}

func (Invoice) TableName() string { return "sys_invoice" }

type InvoiceLine struct {
	DetailID      uint            `gorm:"primaryKey;column:detail_id"`
	InvocID       uint            `gorm:"not null;index"`
	ServiceType   string          `gorm:"size:32;not null"`
	Reference     string          `gorm:"size:64;not null"`
	OrderID       uint            `gorm:"not null;index"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaidStatus    string          `gorm:"size:20;not null"`
	Status        string          `gorm:"size:20;not null"`
	WhatOffered   string          `gorm:"column:whatoffered;size:191;not null"`
	PropertyPrice decimal.Decimal `gorm:"column:propertyprice;type:decimal(10,2);not null"`
	UserGenerated string          `gorm:"size:64;not null"`
	AddedBy       string          `gorm:"size:64;not null"`
	UpdatedBy     string          `gorm:"size:64;not null"`
	DateGenerated time.Time       `gorm:"not null"`
	AddedDate     time.Time       `gorm:"not null"`
	UpdatedDate   time.Time       `gorm:"not null"`
}

func (InvoiceLine) TableName() string { return "sys_invoice_details" }

// LineTotal is quantity times price less discount.
func (l InvoiceLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Sub(l.Discount)
}

// LedgerEntry is the append-only client activity row written once per placed order.
type LedgerEntry struct {
	AcvtyID   uint            `gorm:"primaryKey;column:acvty_id"`
	AcvtyType string          `gorm:"size:32;not null;index"`
	ClientID  string          `gorm:"size:32;not null;index"`
	TransRef  uint            `gorm:"not null;uniqueIndex"`
	AmountIn  decimal.Decimal `gorm:"column:amount_in;type:decimal(12,2);not null"`
	AmountOut decimal.Decimal `gorm:"column:amount_out;type:decimal(12,2);not null"`
	Vat       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FinanceYr string          `gorm:"size:32;not null;index"`
	AddedBy   string          `gorm:"size:64;not null"`
	AddedDate time.Time       `gorm:"not null"`
}

func (LedgerEntry) TableName() string { return "fn_client_activity" }
