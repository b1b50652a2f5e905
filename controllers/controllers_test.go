package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Kariqs/foodcourt-api/controllers"
	"github.com/Kariqs/foodcourt-api/initializers"
	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/reports"
	"github.com/Kariqs/foodcourt-api/repository"
	"github.com/Kariqs/foodcourt-api/routes"
	"github.com/Kariqs/foodcourt-api/services"
	"github.com/Kariqs/foodcourt-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, adminSecret string) *gin.Engine {
	t.Helper()
	db, err := initializers.OpenDB("sqlite", "file::memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, initializers.Migrate(db))
	require.NoError(t, initializers.SeedDefaults(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	reportsDir := t.TempDir()
	store := repository.NewGormStore(db)
	handlers := controllers.New(
		services.NewCatalogService(store),
		services.NewOrderService(store),
		services.NewWaiterService(store),
		services.NewDayEndService(store, reports.Dir{Path: reportsDir}, nil),
	)

	server := gin.New()
	routes.Register(server, handlers, routes.Options{AdminSecret: adminSecret, ReportsDir: reportsDir})
	return server
}

func do(server *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHomeAndMetrics(t *testing.T) {
	server := newRouter(t, "")

	assert.Equal(t, http.StatusOK, do(server, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, do(server, http.MethodGet, "/metrics", "").Code)
}

func TestItems(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.Item](t, w)
	require.Len(t, items, 6)
	assert.Equal(t, "Cold Coffee", items[0].Name)

	w = do(server, http.MethodPost, "/api/items", `{"name":"Filter Coffee","price_cents":4000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(4000), decode[models.Item](t, w).PriceCents)

	w = do(server, http.MethodPost, "/api/items", `{"name":"Idli","price_cents":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name and positive price_cents required", errorMessage(t, w))

	w = do(server, http.MethodPatch, "/api/items/4", `{"price_cents":9500}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9500), decode[models.Item](t, w).PriceCents)

	w = do(server, http.MethodPatch, "/api/items/404", `{"price_cents":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomers(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodPost, "/api/customers", `{"phone":"9000000001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name required", errorMessage(t, w))

	w = do(server, http.MethodPost, "/api/customers", `{"name":"Kiran","phone":"9000000001"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(server, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Customer](t, w), 1)
}

func TestCreateOrderAndFetch(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodPost, "/api/orders",
		`{"table_number":4,"waiter_id":1,"customer":{"name":"Kiran","phone":"9000000001"},"items":[{"item_id":2,"quantity":2},{"item_id":4,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[services.CreateOrderResult](t, w)
	assert.Equal(t, int64(39000), created.TotalCents)

	w = do(server, http.MethodGet, "/api/orders/"+strconv.FormatUint(uint64(created.ID), 10), "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[map[string]any](t, w)
	assert.Equal(t, "Kiran", view["customer_name"])
	assert.Equal(t, "Asha", view["waiter_name"])
	assert.Equal(t, "free", view["waiter_status"])
	assert.Len(t, view["items"], 2)

	w = do(server, http.MethodGet, "/api/orders?limit=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.OrderView](t, w), 1)
}

func TestCreateOrderValidation(t *testing.T) {
	server := newRouter(t, "")

	cases := []struct {
		body    string
		message string
	}{
		{``, "table_number required"},
		{`{"table_number":"five","items":[{"item_id":1,"quantity":1}]}`, "table_number required"},
		{`{"table_number":5,"items":[]}`, "items required"},
		{`{"table_number":5,"items":"lots"}`, "items required"},
		{`{"table_number":5,"items":[{"item_id":"one","quantity":1}]}`, "invalid item line at index 0: numeric item_id and quantity required"},
		{`{"table_number":5,"items":[{"item_id":1,"quantity":1},{"item_id":2,"quantity":2.5}]}`, "invalid item line at index 1: numeric item_id and quantity required"},
		{`{"table_number":5,"items":[{"item_id":1,"quantity":1},{"item_id":2,"quantity":1},"dosa"]}`, "invalid item line at index 2: numeric item_id and quantity required"},
		{`{"table_number":5,"items":[{"item_id":1}]}`, "invalid item line at index 0: numeric item_id and quantity required"},
		{`{"table_number":5,"items":[{"item_id":1,"quantity":5000000}]}`, "invalid item line at index 0: quantity must not exceed 1000000"},
		{`{"table_number":5,"items":[{"item_id":99999,"quantity":1}]}`, "item not found: 99999"},
		{`{"table_number":5,"waiter_id":77,"items":[{"item_id":1,"quantity":1}]}`, "waiter not found"},
	}
	for _, tc := range cases {
		w := do(server, http.MethodPost, "/api/orders", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.body)
		assert.Equal(t, tc.message, errorMessage(t, w), tc.body)
	}

	w := do(server, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.OrderView](t, w))
}

func TestGetOrderErrors(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodGet, "/api/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad id", errorMessage(t, w))

	w = do(server, http.MethodGet, "/api/orders/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWaiters(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodGet, "/api/waiters", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Waiter](t, w), 3)

	w = do(server, http.MethodPost, "/api/waiters", `{"name":"Farah","status":"busy"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.WaiterFree, decode[models.Waiter](t, w).Status)

	w = do(server, http.MethodPost, "/api/waiters/login", `{"phone":"9876543210"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha", decode[models.Waiter](t, w).Name)

	w = do(server, http.MethodPost, "/api/waiters/login", `{"phone":"1111111111"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "waiter not found", errorMessage(t, w))

	w = do(server, http.MethodPost, "/api/waiters/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "phone required", errorMessage(t, w))
}

func TestWaiterStatus(t *testing.T) {
	server := newRouter(t, "")

	w := do(server, http.MethodPost, "/api/waiters/2/status", `{"status":"engaged"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.WaiterEngaged, decode[models.Waiter](t, w).Status)

	w = do(server, http.MethodPatch, "/api/waiters/2/status", `{"status":"on-break"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.WaiterFree, decode[models.Waiter](t, w).Status)

	w = do(server, http.MethodPost, "/api/waiters/2/status", `{"status":42}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.WaiterFree, decode[models.Waiter](t, w).Status)

	w = do(server, http.MethodPost, "/api/waiters/abc/status", `{"status":"engaged"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid waiter id", errorMessage(t, w))

	w = do(server, http.MethodPost, "/api/waiters/99/status", `{"status":"engaged"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "waiter not found", errorMessage(t, w))
}

func TestWaiterOrders(t *testing.T) {
	server := newRouter(t, "")

	for i := 0; i < 3; i++ {
		w := do(server, http.MethodPost, "/api/orders", `{"table_number":2,"waiter_id":3,"items":[{"item_id":5,"quantity":1}]}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(server, http.MethodGet, "/api/waiters/3/orders?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode[[]models.OrderView](t, w)
	require.Len(t, orders, 2)
	assert.Greater(t, orders[0].ID, orders[1].ID)

	w = do(server, http.MethodGet, "/api/waiters/3/orders?limit=-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.OrderView](t, w), 3)

	w = do(server, http.MethodGet, "/api/waiters/42/orders", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDayEnd(t *testing.T) {
	server := newRouter(t, "")

	for _, body := range []string{
		`{"table_number":1,"items":[{"item_id":1,"quantity":1}]}`,
		`{"table_number":2,"items":[{"item_id":2,"quantity":3}]}`,
	} {
		require.Equal(t, http.StatusCreated, do(server, http.MethodPost, "/api/orders", body).Code)
	}

	w := do(server, http.MethodPost, "/api/day-end", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reports.ContentType, w.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="day_end_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.xlsx"$`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	rows, err := f.GetRows(reports.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	require.NoError(t, f.Close())

	w = do(server, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.OrderView](t, w))

	w = do(server, http.MethodGet, "/api/day-end/reports", "")
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]models.DayEndReport](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].OrderCount)

	w = do(server, http.MethodGet, "/reports/"+history[0].Filename, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuard(t *testing.T) {
	server := newRouter(t, testSecret)

	w := do(server, http.MethodPost, "/api/items", `{"name":"Idli","price_cents":3000}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(server, http.MethodPost, "/api/day-end", "", "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	waiterToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "waiter",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	w = do(server, http.MethodPost, "/api/waiters", `{"name":"Farah"}`, "Authorization", "Bearer "+waiterToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := utils.GenerateAdminToken(testSecret, time.Hour)
	require.NoError(t, err)
	w = do(server, http.MethodPost, "/api/items", `{"name":"Idli","price_cents":3000}`, "Authorization", "Bearer "+adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	// reads and order taking stay open
	assert.Equal(t, http.StatusOK, do(server, http.MethodGet, "/api/items", "").Code)
	w = do(server, http.MethodPost, "/api/orders", `{"table_number":1,"items":[{"item_id":1,"quantity":1}]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
