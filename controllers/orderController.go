package controllers

import (
	"net/http"
	"strconv"

	"restaurant-api/dtos"
	"restaurant-api/middlewares"
	"restaurant-api/services"
	"restaurant-api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	orders services.OrderService
	// source tags status changes made without a guest session.
	source string
}

func NewOrderController(orders services.OrderService, source string) *OrderController {
	return &OrderController{orders: orders, source: source}
}

// PlaceOrder creates an order with its invoice and ledger entry from a cart.
func (ctl *OrderController) PlaceOrder(c *gin.Context) {
	var input dtos.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, "Validation failed", bindingError(err))
		return
	}

	req := services.OrderRequest{
		TableName: input.TableName,
		TableID:   input.TableID,
		WhouseID:  input.WhouseID,
		Lines:     make([]services.CartLine, 0, len(input.Items)),
	}
	for _, it := range input.Items {
		line := services.CartLine{
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			PackageID: it.PackageID,
			SizeID:    it.SizeID,
			Discount:  decimal.Zero,
		}
		if it.Discount != nil {
			line.Discount = decimal.NewFromFloat(*it.Discount)
		}
		if it.Notes != nil {
			line.Notes = *it.Notes
		}
		req.Lines = append(req.Lines, line)
	}

	order, err := ctl.orders.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		failPlacement(c, err)
		return
	}

	response.OK(c, http.StatusOK, placeOrderResult(order), gin.H{"message": "Order placed successfully"})
}

func (ctl *OrderController) GetOrder(c *gin.Context) {
	orderID, ok := uintParam(c, "orderID")
	if !ok {
		return
	}

	order, err := ctl.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		failQuery(c, "Failed to fetch order", err)
		return
	}
	response.OK(c, http.StatusOK, orderView(order), nil)
}

// GetTableOrders returns every order for a table, newest first. No orders is an empty list.
func (ctl *OrderController) GetTableOrders(c *gin.Context) {
	tableID := c.Param("tableID")

	orders, err := ctl.orders.GetByTable(c.Request.Context(), tableID)
	if err != nil {
		failQuery(c, "Failed to fetch table orders", err)
		return
	}
	response.OK(c, http.StatusOK, orderViews(orders), gin.H{"count": len(orders)})
}

// GetLatestOrder returns data:null when no order exists.
func (ctl *OrderController) GetLatestOrder(c *gin.Context) {
	order, err := ctl.orders.GetLatest(c.Request.Context())
	if err != nil {
		failQuery(c, "Failed to fetch latest order", err)
		return
	}
	response.OK(c, http.StatusOK, latestOrder(order), nil)
}

// GetNewerOrders is the polling feed: orders with an id above the watermark, ascending.
func (ctl *OrderController) GetNewerOrders(c *gin.Context) {
	orderID, ok := uintParam(c, "orderID")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Fail(c, http.StatusUnprocessableEntity, "Invalid limit", nil)
			return
		}
		limit = n
	}

	orders, err := ctl.orders.GetNewerThan(c.Request.Context(), orderID, limit)
	if err != nil {
		failQuery(c, "Failed to fetch new orders", err)
		return
	}
	response.OK(c, http.StatusOK, newerOrders(orders), gin.H{"count": len(orders)})
}

func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "orderID")
	if !ok {
		return
	}

	var input dtos.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, "Validation failed", bindingError(err))
		return
	}

	change := services.StatusChange{
		Status:    input.Status,
		ChangedBy: ctl.source,
		IPAddress: c.ClientIP(),
	}
	if claims, ok := middlewares.GuestClaims(c); ok {
		change.ChangedBy = claims.GuestID
	}
	if input.PaidAmount != nil {
		paid := decimal.NewFromFloat(*input.PaidAmount)
		change.PaidAmount = &paid
	}

	order, err := ctl.orders.UpdateStatus(c.Request.Context(), orderID, change)
	if err != nil {
		failQuery(c, "Failed to update order status", err)
		return
	}
	response.Message(c, http.StatusOK, "Order status updated", orderView(order))
}
