package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
)

// CatalogReader is the read side of the menu used by the public catalog endpoints.
type CatalogReader interface {
	ListPackages(ctx context.Context, withItems bool) ([]models.MealPackage, error)
	ActivePackage(ctx context.Context, packageID uint, withItems bool) (*models.MealPackage, error)
	ListItems(ctx context.Context, f services.ItemFilter) ([]models.MealItem, error)
	ActiveItem(ctx context.Context, itemID uint) (*models.MealItem, error)
	ListAddons(ctx context.Context) ([]models.Addon, error)
	Addon(ctx context.Context, addonID uint) (*models.Addon, error)
	AddonsForItem(ctx context.Context, itemID uint) ([]models.Addon, error)
}

type CatalogController struct {
	catalog CatalogReader
	now     func() time.Time
}

func NewCatalogController(catalog CatalogReader) *CatalogController {
	return &CatalogController{catalog: catalog, now: time.Now}
}

func (ctl *CatalogController) GetPackages(c *gin.Context) {
	ctl.listPackages(c, false)
}

func (ctl *CatalogController) GetPackagesWithItems(c *gin.Context) {
	ctl.listPackages(c, true)
}

// GetMenu is the full active menu, packages with their items.
func (ctl *CatalogController) GetMenu(c *gin.Context) {
	ctl.listPackages(c, true)
}

func (ctl *CatalogController) listPackages(c *gin.Context, withItems bool) {
	packages, err := ctl.catalog.ListPackages(c.Request.Context(), withItems)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch packages", err)
		return
	}
	response.OK(c, http.StatusOK, packages, gin.H{"count": len(packages)})
}

func (ctl *CatalogController) GetPackage(c *gin.Context) {
	ctl.getPackage(c, false)
}

func (ctl *CatalogController) GetPackageWithItems(c *gin.Context) {
	ctl.getPackage(c, true)
}

func (ctl *CatalogController) getPackage(c *gin.Context, withItems bool) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	pkg, err := ctl.catalog.ActivePackage(c.Request.Context(), id, withItems)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			response.Fail(c, http.StatusNotFound, "Package not found or inactive", nil)
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch package", err)
		return
	}
	response.OK(c, http.StatusOK, pkg, nil)
}

func (ctl *CatalogController) GetAddons(c *gin.Context) {
	addons, err := ctl.catalog.ListAddons(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch addons", err)
		return
	}
	response.OK(c, http.StatusOK, addons, gin.H{"count": len(addons)})
}

func (ctl *CatalogController) GetAddon(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	addon, err := ctl.catalog.Addon(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAddonNotFound) {
			response.Fail(c, http.StatusNotFound, "Addon not found", nil)
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch addon", err)
		return
	}
	response.OK(c, http.StatusOK, addon, nil)
}

func (ctl *CatalogController) GetItemAddons(c *gin.Context) {
	itemID, ok := uintParam(c, "itemID")
	if !ok {
		return
	}
	addons, err := ctl.catalog.AddonsForItem(c.Request.Context(), itemID)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch addons", err)
		return
	}
	response.OK(c, http.StatusOK, addons, gin.H{"count": len(addons)})
}
