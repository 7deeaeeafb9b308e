package routes

import (
	"restaurant-api/controllers"
	"restaurant-api/middlewares"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Orders   *controllers.OrderController
	Catalog  *controllers.CatalogController
	Settings *controllers.SettingsController
	Guests   *controllers.GuestController
	Health   *controllers.HealthController

	GuestTokens middlewares.TokenParser
	// RequireGuestToken puts order placement behind a guest session.
	RequireGuestToken bool
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	controllers.UseJSONFieldNames()
	guestAuth := middlewares.GuestAuth(h.GuestTokens)

	r.GET("/health", h.Health.Health)

	// Guest sessions
	guest := r.Group("/guest/session")
	{
		guest.POST("", h.Guests.CreateSession)
		guest.POST("/refresh", guestAuth, h.Guests.RefreshSession)
		guest.GET("", guestAuth, h.Guests.GetSession)
	}

	// Settings
	settings := r.Group("/settings")
	{
		settings.GET("", h.Settings.GetAppSettings)
		settings.GET("/vat", h.Settings.GetVat)
		settings.GET("/financial-year", h.Settings.GetFinancialYear)
	}

	// Catalog
	r.GET("/menu", h.Catalog.GetMenu)

	packages := r.Group("/packages")
	{
		packages.GET("", h.Catalog.GetPackages)
		packages.GET("/with-items", h.Catalog.GetPackagesWithItems)
		packages.GET("/:id", h.Catalog.GetPackage)
		packages.GET("/:id/with-items", h.Catalog.GetPackageWithItems)
	}

	items := r.Group("/items")
	{
		items.GET("", h.Catalog.GetItems)
		items.GET("/available", h.Catalog.GetAvailableItems)
		items.GET("/search", h.Catalog.SearchItems)
		items.GET("/package/:packageID", h.Catalog.GetItemsByPackage)
		items.GET("/package/:packageID/available", h.Catalog.GetAvailableItemsByPackage)
		items.GET("/:id", h.Catalog.GetItemByID)
	}

	addons := r.Group("/addons")
	{
		addons.GET("", h.Catalog.GetAddons)
		addons.GET("/item/:itemID", h.Catalog.GetItemAddons)
		addons.GET("/:id", h.Catalog.GetAddon)
	}

	// Orders
	orders := r.Group("/orders")
	{
		if h.RequireGuestToken {
			orders.POST("", guestAuth, h.Orders.PlaceOrder)
		} else {
			orders.POST("", h.Orders.PlaceOrder)
		}
		orders.GET("/latest", middlewares.NoStore(), h.Orders.GetLatestOrder)
		orders.GET("/newer/:orderID", middlewares.NoStore(), h.Orders.GetNewerOrders)
		orders.GET("/table/:tableID", h.Orders.GetTableOrders)
		orders.GET("/:orderID", h.Orders.GetOrder)
		orders.PUT("/:orderID/status", h.Orders.UpdateOrderStatus)
	}
}
