package controllers

import (
	"context"
	"errors"
	"net/http"

	"restaurant-api/dtos"
	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
)

// SettingReader looks up the most specific settings row for a warehouse.
type SettingReader interface {
	Setting(ctx context.Context, settingType, status, whouseID string) (*models.SystemSetting, error)
}

type SettingsController struct {
	settings SettingReader
}

func NewSettingsController(settings SettingReader) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetAppSettings is read once at app start. Missing values fall back to "0" and null.
func (ctl *SettingsController) GetAppSettings(c *gin.Context) {
	ctx := c.Request.Context()
	whouseID := c.Query("whouseID")

	out := dtos.AppSettings{VatPercentage: "0"}

	vat, err := ctl.settings.Setting(ctx, models.SettingTypeVAT, models.SettingStatusActive, whouseID)
	switch {
	case err == nil:
		out.VatPercentage = vat.Value
	case !errors.Is(err, services.ErrConfigurationMissing):
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch settings", err)
		return
	}

	year, err := ctl.settings.Setting(ctx, models.SettingTypeFinanceYr, models.SettingStatusOpen, whouseID)
	switch {
	case err == nil:
		out.FinancialYear = &year.Value
	case !errors.Is(err, services.ErrConfigurationMissing):
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch settings", err)
		return
	}

	response.OK(c, http.StatusOK, out, nil)
}

func (ctl *SettingsController) GetVat(c *gin.Context) {
	row, ok := ctl.lookup(c, models.SettingTypeVAT, models.SettingStatusActive, "VAT setting not found")
	if !ok {
		return
	}
	response.OK(c, http.StatusOK, dtos.VatSetting{VatPercentage: row.Value, Description: row.Description}, nil)
}

func (ctl *SettingsController) GetFinancialYear(c *gin.Context) {
	row, ok := ctl.lookup(c, models.SettingTypeFinanceYr, models.SettingStatusOpen, "Financial year not found")
	if !ok {
		return
	}
	response.OK(c, http.StatusOK, dtos.FinancialYearSetting{FinancialYear: row.Value, Description: row.Description}, nil)
}

func (ctl *SettingsController) lookup(c *gin.Context, settingType, status, missing string) (*models.SystemSetting, bool) {
	row, err := ctl.settings.Setting(c.Request.Context(), settingType, status, c.Query("whouseID"))
	if err != nil {
		if errors.Is(err, services.ErrConfigurationMissing) {
			response.Fail(c, http.StatusNotFound, missing, nil)
			return nil, false
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch settings", err)
		return nil, false
	}
	return row, true
}
