package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"restaurant-api/controllers"
	"restaurant-api/models"
	"restaurant-api/routes"
	"restaurant-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	guests services.GuestService
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Query   string          `json:"query"`
}

func newTestServer(t *testing.T, requireGuest bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := services.NewCatalog(db)
	fiscal := services.NewSettingsFiscal(db)
	builder := services.NewOrderBuilder(catalog, services.BuilderOptions{})
	orders := services.NewOrderService(fiscal, builder, services.NewOrderRepository(db), log)
	guests := services.NewGuestService(db, "test-secret", time.Hour)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Handlers{
		Orders:            controllers.NewOrderController(orders, "pwa"),
		Catalog:           controllers.NewCatalogController(catalog),
		Settings:          controllers.NewSettingsController(fiscal),
		Guests:            controllers.NewGuestController(guests),
		Health:            controllers.NewHealthController(db),
		GuestTokens:       guests,
		RequireGuestToken: requireGuest,
	})
	return &testServer{router: r, db: db, guests: guests}
}

func (s *testServer) seedMenu(t *testing.T) {
	t.Helper()
	d := decimal.RequireFromString
	require.NoError(t, s.db.Create(&models.MealPackage{PackageID: 1, PackageName: "Mains", Status: models.CatalogActive, PrepareTime: 12}).Error)
	require.NoError(t, s.db.Create(&models.MealItem{ItemID: 7, ItemName: "Burger", PackageID: 1, CostPrice: d("10.00"), Status: models.CatalogActive}).Error)
	require.NoError(t, s.db.Create(&models.MealItem{ItemID: 8, ItemName: "Old Special", PackageID: 1, CostPrice: d("5.00"), Status: models.CatalogInactive}).Error)
	require.NoError(t, s.db.Create(&models.Addon{AddonID: 1, AddonName: "Cheese", Price: d("1.50"), Status: models.CatalogActive}).Error)
}

func (s *testServer) seedSettings(t *testing.T) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.SystemSetting{Type: models.SettingTypeVAT, Value: "5", Status: models.SettingStatusActive}).Error)
	require.NoError(t, s.db.Create(&models.SystemSetting{Type: models.SettingTypeFinanceYr, Value: "2026", Status: models.SettingStatusOpen}).Error)
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func cart(lines ...map[string]interface{}) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(lines))
	items = append(items, lines...)
	return map[string]interface{}{
		"items":     items,
		"tableName": "Table 4",
		"tableID":   "T4",
		"whouseID":  "W1",
	}
}

func line(itemID uint, qty int) map[string]interface{} {
	return map[string]interface{}{"itemID": itemID, "quantity": qty}
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

