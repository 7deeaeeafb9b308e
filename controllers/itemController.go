package controllers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
)

func (ctl *CatalogController) GetItems(c *gin.Context) {
	ctl.listItems(c, services.ItemFilter{}, nil)
}

// GetAvailableItems applies each item's time-of-day window at the current time.
func (ctl *CatalogController) GetAvailableItems(c *gin.Context) {
	now := ctl.now()
	ctl.listItems(c, services.ItemFilter{AvailableAt: &now}, nil)
}

func (ctl *CatalogController) SearchItems(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Fail(c, http.StatusUnprocessableEntity, "Search query is required", nil)
		return
	}
	ctl.listItems(c, services.ItemFilter{Query: q}, gin.H{"query": q})
}

func (ctl *CatalogController) GetItemsByPackage(c *gin.Context) {
	packageID, ok := uintParam(c, "packageID")
	if !ok {
		return
	}
	ctl.listItems(c, services.ItemFilter{PackageID: packageID}, nil)
}

func (ctl *CatalogController) GetAvailableItemsByPackage(c *gin.Context) {
	packageID, ok := uintParam(c, "packageID")
	if !ok {
		return
	}
	now := ctl.now()
	ctl.listItems(c, services.ItemFilter{PackageID: packageID, AvailableAt: &now}, nil)
}

func (ctl *CatalogController) listItems(c *gin.Context, f services.ItemFilter, extra gin.H) {
	items, err := ctl.catalog.ListItems(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch items", err)
		return
	}
	if extra == nil {
		extra = gin.H{}
	}
	extra["count"] = len(items)
	response.OK(c, http.StatusOK, items, extra)
}

func (ctl *CatalogController) GetItemByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	item, err := ctl.catalog.ActiveItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			response.Fail(c, http.StatusNotFound, "Item not found or inactive", nil)
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch item", err)
		return
	}
	response.OK(c, http.StatusOK, item, nil)
}
