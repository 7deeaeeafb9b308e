package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMealItem_AvailableAt(t *testing.T) {
	at := func(hh, mm int) time.Time { return time.Date(2026, 5, 1, hh, mm, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end *string
		t          time.Time
		want       bool
	}{
		{"no window", nil, nil, at(3, 0), true},
		{"inside", strPtr("06:00:00"), strPtr("11:30:00"), at(9, 15), true},
		{"at start", strPtr("06:00:00"), strPtr("11:30:00"), at(6, 0), true},
		{"at end", strPtr("06:00:00"), strPtr("11:30:00"), at(11, 30), true},
		{"after end", strPtr("06:00:00"), strPtr("11:30:00"), at(11, 31), false},
		{"before start", strPtr("06:00:00"), strPtr("11:30:00"), at(5, 59), false},
		{"start only", strPtr("06:00:00"), nil, at(9, 0), false},
		{"end only", nil, strPtr("11:00:00"), at(9, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := MealItem{StartFrom: tt.start, EndTo: tt.end}
			assert.Equal(t, tt.want, item.AvailableAt(tt.t))
		})
	}
}

func TestMealItem_EffectivePrepareTime(t *testing.T) {
	five := 5
	assert.Equal(t, 5, MealItem{PrepareTime: &five}.EffectivePrepareTime(&MealPackage{PrepareTime: 20}))
	assert.Equal(t, 20, MealItem{}.EffectivePrepareTime(&MealPackage{PrepareTime: 20}))
	assert.Equal(t, DefaultPrepareTime, MealItem{}.EffectivePrepareTime(&MealPackage{}))
	assert.Equal(t, DefaultPrepareTime, MealItem{}.EffectivePrepareTime(nil))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("flying"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("Ordered"))
}

func TestOrderTotals(t *testing.T) {
	o := Order{OrderAmount: decimal.RequireFromString("20.00"), VatValue: decimal.RequireFromString("1.00")}
	assert.True(t, decimal.RequireFromString("21").Equal(o.TotalAmount()))

	l := InvoiceLine{Quantity: 3, Price: decimal.RequireFromString("2.50"), Discount: decimal.RequireFromString("0.50")}
	assert.True(t, decimal.RequireFromString("7").Equal(l.LineTotal()))
}
