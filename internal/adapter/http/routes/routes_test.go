package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrahman10101/Cost-Management/internal/clock"
	"github.com/Abdelrahman10101/Cost-Management/internal/config"
	"github.com/Abdelrahman10101/Cost-Management/internal/infrastructure/metrics"
)

func newTestRouter(t *testing.T, swagger bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Billing: config.BillingConfig{
			InvoiceDueDays: 30,
			IDStrategy:     config.IDStrategySequence,
			IDStart:        1,
		},
		Swagger: config.SwaggerConfig{Enabled: swagger},
	}
	reg := prometheus.NewRegistry()
	router, err := NewRouter(Options{
		Config:  cfg,
		Clock:   clock.NewFakeClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)),
		Metrics: metrics.NewWithRegistry(reg, reg),
	})
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Ping(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodGet, "/api/ping", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])
}

func TestRouter_SeededInvoice(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodGet, "/api/invoices/1001", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "870", body["subtotal"])
	assert.Equal(t, "66.12", body["tax_amount"])
	assert.Equal(t, "892.62", body["total"])
}

func TestRouter_InvoiceLifecycle(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodPost, "/api/invoices",
		`{"client_id":"CL001","items":[{"name":"Audit","quantity":2,"unit_price":"100.00"}],"discount":0.1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.EqualValues(t, 1002, created["id"])
	assert.Equal(t, "200", created["subtotal"])
	assert.Equal(t, "0.0825", created["tax_rate"])
	assert.Equal(t, "194.85", created["total"])
	assert.Equal(t, "2024-04-09", created["due_date"])

	w = serve(router, http.MethodPut, "/api/invoices/1002", `{"discount":0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "200", updated["discounted_amount"])
	assert.Equal(t, "216.5", updated["total"])
	assert.NotNil(t, updated["updated_at"])

	w = serve(router, http.MethodPost, "/api/invoices/1002/reminders", `{"due_date":"2024-03-14"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reminder := decode(t, w)
	assert.Equal(t, "client1@example.com", reminder["recipient"])
	assert.Equal(t, "email", reminder["method"])
	assert.EqualValues(t, 3, reminder["days_until_due"])
	assert.Equal(t, "Friendly reminder: Your invoice #1002 is due in 3 days.", reminder["message"])
}

func TestRouter_ReminderWithoutBody(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodPost, "/api/invoices/1001/reminders", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, decode(t, w)["message"], "is overdue by")
}

func TestRouter_InvoiceNotFound(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodGet, "/api/invoices/9999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INVOICE_NOT_FOUND", decode(t, w)["code"])
}

func TestRouter_TaxCalculate(t *testing.T) {
	router := newTestRouter(t, false)

	w := serve(router, http.MethodGet, "/api/tax/calculate?subtotal=100&region=US-CA", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "8.25", body["tax_amount"])
	assert.Equal(t, "108.25", body["total"])
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, false)
	serve(router, http.MethodGet, "/api/ping", "")
	serve(router, http.MethodPost, "/api/invoices/1001/reminders", "")

	w := serve(router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `costmgmt_http_requests_total{method="GET",route="/api/ping",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `costmgmt_invoice_reminders_total{method="email",urgency="overdue"} 1`)
}

func TestRouter_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		w := serve(newTestRouter(t, false), http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		w := serve(newTestRouter(t, true), http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"basePath": "/api"`)
	})
}
