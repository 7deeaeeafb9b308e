package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"restaurant-api/dtos"
	"restaurant-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, s *testServer, body interface{}) dtos.PlaceOrderResult {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res dtos.PlaceOrderResult
	decodeData(t, env, &res)
	return res
}

func TestPlaceOrder(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)

	w, env := s.do(t, http.MethodPost, "/orders", cart(line(7, 2)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Success)

	var res dtos.PlaceOrderResult
	decodeData(t, env, &res)
	assert.NotZero(t, res.OrderID)
	assert.Equal(t, 20.0, res.OrderAmount)
	assert.Equal(t, 1.0, res.VatValue)
	assert.Equal(t, 21.0, res.TotalAmount)
	assert.Equal(t, "Table 4", res.TableName)
	assert.NotEmpty(t, res.OrderDate)
	assert.NotEmpty(t, res.OrderTime)

	assert.Equal(t, int64(1), s.count(t, &models.Order{}))
	assert.Equal(t, int64(1), s.count(t, &models.LedgerEntry{}))
}

func TestPlaceOrder_InactiveItemIsStillOrderable(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)

	res := placeOrder(t, s, cart(line(8, 1)))
	assert.Equal(t, 5.0, res.OrderAmount)
}

func TestPlaceOrder_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		status  int
		message string
	}{
		{"empty cart", cart(), http.StatusUnprocessableEntity, "Validation failed"},
		{"missing table", map[string]interface{}{"items": []interface{}{line(7, 1)}, "whouseID": "W1"}, http.StatusUnprocessableEntity, "Validation failed"},
		{"zero quantity", cart(line(7, 0)), http.StatusUnprocessableEntity, "Validation failed"},
		{"negative discount", cart(map[string]interface{}{"itemID": 7, "quantity": 1, "discount": -1}), http.StatusUnprocessableEntity, "Validation failed"},
		{"discount above amount", cart(map[string]interface{}{"itemID": 7, "quantity": 1, "discount": 11}), http.StatusUnprocessableEntity, "Validation failed"},
		{"malformed json", `{"items": [`, http.StatusUnprocessableEntity, "Validation failed"},
		{"unknown item", cart(line(7, 1), line(999999, 1)), http.StatusInternalServerError, "Failed to place order"},
		{"unknown package", cart(map[string]interface{}{"itemID": 7, "quantity": 1, "packageID": 42}), http.StatusInternalServerError, "Failed to place order"},
		{"unknown size", cart(map[string]interface{}{"itemID": 7, "quantity": 1, "sizeID": 42}), http.StatusInternalServerError, "Failed to place order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, false)
			s.seedMenu(t)
			s.seedSettings(t)

			w, env := s.do(t, http.MethodPost, "/orders", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
			assert.NotEmpty(t, env.Error)

			assert.Zero(t, s.count(t, &models.Order{}))
			assert.Zero(t, s.count(t, &models.OrderLine{}))
			assert.Zero(t, s.count(t, &models.Invoice{}))
			assert.Zero(t, s.count(t, &models.InvoiceLine{}))
			assert.Zero(t, s.count(t, &models.LedgerEntry{}))
		})
	}
}

func TestPlaceOrder_MultibyteNotes(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)

	notes := strings.Repeat("é", 300)
	placed := placeOrder(t, s, cart(map[string]interface{}{"itemID": 7, "quantity": 1, "notes": notes}))

	_, env := s.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", placed.OrderID), nil)
	var order dtos.OrderView
	decodeData(t, env, &order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, notes, order.Items[0].Notes)
}

func TestPlaceOrder_ValidationNamesJSONFields(t *testing.T) {
	s := newTestServer(t, false)
	_, env := s.do(t, http.MethodPost, "/orders", cart(line(7, 0)))
	assert.Contains(t, env.Error, "items[0].quantity")
}

func TestPlaceOrder_MissingSettings(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)

	w, env := s.do(t, http.MethodPost, "/orders", cart(line(7, 1)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "System settings not found", env.Message)
	assert.Zero(t, s.count(t, &models.Order{}))
}

func TestPlaceOrder_RequiresGuestTokenWhenConfigured(t *testing.T) {
	s := newTestServer(t, true)
	s.seedMenu(t)
	s.seedSettings(t)

	w, _ := s.do(t, http.MethodPost, "/orders", cart(line(7, 1)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(t, http.MethodPost, "/guest/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session dtos.GuestSession
	decodeData(t, env, &session)

	w, _ = s.do(t, http.MethodPost, "/orders", cart(line(7, 1)), "Authorization", "Bearer "+session.Token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGetOrder(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)
	placed := placeOrder(t, s, cart(line(7, 2), map[string]interface{}{"itemID": 7, "quantity": 1, "notes": "well done"}))

	path := fmt.Sprintf("/orders/%d", placed.OrderID)
	w, env := s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order dtos.OrderView
	decodeData(t, env, &order)
	assert.Equal(t, placed.OrderID, order.OrderID)
	assert.Equal(t, "T4", order.TableID)
	assert.Equal(t, 31.5, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Burger", order.Items[0].ItemName)
	assert.Equal(t, "well done", order.Items[1].Notes)
	assert.Equal(t, 12, order.Items[0].PrepareTime)

	_, again := s.do(t, http.MethodGet, path, nil)
	assert.JSONEq(t, string(env.Data), string(again.Data))

	w, env = s.do(t, http.MethodGet, "/orders/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Order not found", env.Message)

	w, _ = s.do(t, http.MethodGet, "/orders/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetTableOrders(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)
	first := placeOrder(t, s, cart(line(7, 1)))
	second := placeOrder(t, s, cart(line(7, 3)))

	w, env := s.do(t, http.MethodGet, "/orders/table/T4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []dtos.OrderView
	decodeData(t, env, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, second.OrderID, orders[0].OrderID)
	assert.Equal(t, first.OrderID, orders[1].OrderID)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	w, env = s.do(t, http.MethodGet, "/orders/table/T99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestPollingEndpointsAreNeverCached(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)

	w, env := s.do(t, http.MethodGet, "/orders/latest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	a := placeOrder(t, s, cart(line(7, 1)))
	b := placeOrder(t, s, cart(line(7, 2)))
	c := placeOrder(t, s, cart(line(7, 3)))

	w, env = s.do(t, http.MethodGet, "/orders/latest", nil)
	var latest dtos.LatestOrder
	decodeData(t, env, &latest)
	assert.Equal(t, c.OrderID, latest.OrderID)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	w, env = s.do(t, http.MethodGet, fmt.Sprintf("/orders/newer/%d", a.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	var newer []dtos.NewerOrder
	decodeData(t, env, &newer)
	require.Len(t, newer, 2)
	assert.Equal(t, b.OrderID, newer[0].OrderID)
	assert.Equal(t, c.OrderID, newer[1].OrderID)
	assert.Equal(t, "T4", newer[0].TableID)
	assert.Equal(t, models.StatusOrdered, newer[0].Status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	_, env = s.do(t, http.MethodGet, "/orders/newer/0?limit=1", nil)
	decodeData(t, env, &newer)
	require.Len(t, newer, 1)
	assert.Equal(t, a.OrderID, newer[0].OrderID)

	w, _ = s.do(t, http.MethodGet, "/orders/newer/0?limit=zero", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestServer(t, false)
	s.seedMenu(t)
	s.seedSettings(t)
	placed := placeOrder(t, s, cart(line(7, 2)))
	path := fmt.Sprintf("/orders/%d/status", placed.OrderID)

	w, env := s.do(t, http.MethodPut, path, map[string]interface{}{"status": "flying"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)
	assert.True(t, strings.Contains(env.Error, "status"))

	var order models.Order
	require.NoError(t, s.db.First(&order, placed.OrderID).Error)
	assert.Equal(t, models.StatusOrdered, order.Status)

	w, env = s.do(t, http.MethodPut, path, map[string]interface{}{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view dtos.OrderView
	decodeData(t, env, &view)
	assert.Equal(t, models.StatusPreparing, view.Status)

	w, _ = s.do(t, http.MethodPut, path, map[string]interface{}{"status": "completed", "paidAmount": 50})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = s.do(t, http.MethodPut, path, map[string]interface{}{"status": "completed", "paidAmount": 21})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeData(t, env, &view)
	assert.Equal(t, 21.0, view.PaidAmount)
	assert.Equal(t, int64(2), s.count(t, &models.OrderStatusLog{}))

	w, _ = s.do(t, http.MethodPut, "/orders/424242/status", map[string]interface{}{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodPut, path, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
