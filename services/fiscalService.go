package services

import (
	"context"
	"fmt"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FiscalProvider supplies the tax rate and accounting period in force for a warehouse.
// Both fail with ErrConfigurationMissing when no active record exists.
type FiscalProvider interface {
	CurrentTaxRate(ctx context.Context, whouseID string) (decimal.Decimal, error)
	CurrentFiscalPeriod(ctx context.Context, whouseID string) (string, error)
}

// FiscalSnapshot is the configuration an order is priced under.
type FiscalSnapshot struct {
	TaxRate decimal.Decimal
	Period  string
}

// LoadFiscalSnapshot reads both values, failing on the first missing one.
func LoadFiscalSnapshot(ctx context.Context, p FiscalProvider, whouseID string) (FiscalSnapshot, error) {
	rate, err := p.CurrentTaxRate(ctx, whouseID)
	if err != nil {
		return FiscalSnapshot{}, err
	}
	period, err := p.CurrentFiscalPeriod(ctx, whouseID)
	if err != nil {
		return FiscalSnapshot{}, err
	}
	return FiscalSnapshot{TaxRate: rate, Period: period}, nil
}

// StaticFiscal is a fixed FiscalProvider.
type StaticFiscal struct {
	Rate   decimal.Decimal
	Period string
}

func (s StaticFiscal) CurrentTaxRate(context.Context, string) (decimal.Decimal, error) {
	return s.Rate, nil
}

func (s StaticFiscal) CurrentFiscalPeriod(context.Context, string) (string, error) {
	if s.Period == "" {
		return "", ErrConfigurationMissing
	}
	return s.Period, nil
}

type SettingsFiscal struct {
	db *gorm.DB
}

// NewSettingsFiscal reads fiscal configuration from sys_settings. A row whose settingFor matches the
// warehouse wins over a global row (empty settingFor).
func NewSettingsFiscal(db *gorm.DB) *SettingsFiscal {
	return &SettingsFiscal{db: db}
}

func (s *SettingsFiscal) CurrentTaxRate(ctx context.Context, whouseID string) (decimal.Decimal, error) {
	row, err := s.Setting(ctx, models.SettingTypeVAT, models.SettingStatusActive, whouseID)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := decimal.NewFromString(row.Value)
	if err != nil || rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: vat value %q is not a percentage", ErrConfigurationMissing, row.Value)
	}
	return rate, nil
}

func (s *SettingsFiscal) CurrentFiscalPeriod(ctx context.Context, whouseID string) (string, error) {
	row, err := s.Setting(ctx, models.SettingTypeFinanceYr, models.SettingStatusOpen, whouseID)
	if err != nil {
		return "", err
	}
	if row.Value == "" {
		return "", fmt.Errorf("%w: empty financial year", ErrConfigurationMissing)
	}
	return row.Value, nil
}

// Setting returns the most specific row of the given type and status.
func (s *SettingsFiscal) Setting(ctx context.Context, settingType, status, whouseID string) (*models.SystemSetting, error) {
	var rows []models.SystemSetting
	err := s.db.WithContext(ctx).
		Where("type = ? AND status = ?", settingType, status).
		Where("setting_for IN ?", []string{"", whouseID}).
		Order("rec_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load %s setting: %w", settingType, err)
	}

	var global *models.SystemSetting
	for i := range rows {
		if whouseID != "" && rows[i].SettingFor == whouseID {
			return &rows[i], nil
		}
		if rows[i].SettingFor == "" && global == nil {
			global = &rows[i]
		}
	}
	if global == nil {
		return nil, fmt.Errorf("%w: no %s %s setting", ErrConfigurationMissing, status, settingType)
	}
	return global, nil
}
