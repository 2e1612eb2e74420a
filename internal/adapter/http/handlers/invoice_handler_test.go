package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/handlers/mocks"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/invoices", h.ListInvoices)
	r.GET("/api/invoices/:id", h.GetInvoice)
	r.POST("/api/invoices", h.CreateInvoice)
	r.PUT("/api/invoices/:id", h.UpdateInvoice)
	r.POST("/api/invoices/:id/reminders", h.SendReminder)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		w := doJSON(r, http.MethodPost, "/api/invoices", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrInvoiceClientRequired, http.StatusBadRequest, "INVALID_CLIENT_ID"},
			{usecase.ErrInvalidItems, http.StatusBadRequest, "INVALID_ITEMS"},
			{usecase.ErrInvoiceClientNotFound, http.StatusBadRequest, "CLIENT_NOT_FOUND"},
			{usecase.ErrInvalidDiscount, http.StatusBadRequest, "INVALID_DISCOUNT"},
			{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			r := newInvoiceRouter(NewInvoiceHandler(uc))
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, tc.err)

			w := doJSON(r, http.MethodPost, "/api/invoices", `{"client_id":"CL001","items":[]}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.code {
				t.Fatalf("%v: expected code %s, got %v", tc.err, tc.code, body["code"])
			}
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateInvoiceCommand) (entities.Invoice, error) {
				if cmd.ClientID != "CL001" || len(cmd.Items) != 1 || cmd.TaxRate != nil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.Discount.Equal(decimal.RequireFromString("0.05")) {
					t.Fatalf("unexpected discount: %s", cmd.Discount)
				}
				return entities.Invoice{
					ID:       1002,
					ClientID: cmd.ClientID,
					Items:    cmd.Items,
					Total:    decimal.RequireFromString("102.6"),
					Status:   entities.InvoiceStatusPending,
				}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/api/invoices", `{"client_id":"CL001","items":[{"name":"Audit","quantity":1,"unit_price":100}],"discount":0.05}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["total"] != "102.6" || body["status"] != "pending" || body["id"] != float64(1002) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		w := doJSON(r, http.MethodGet, "/api/invoices/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))
		uc.EXPECT().GetByID(gomock.Any(), int64(9999)).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := doJSON(r, http.MethodGet, "/api/invoices/9999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))
		uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{{ID: 1001}}, nil)

		w := doJSON(r, http.MethodGet, "/api/invoices", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
			t.Fatalf("unexpected list %s: %v", w.Body.String(), err)
		}
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().Update(gomock.Any(), int64(1001), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, cmd usecase.UpdateInvoiceCommand) (entities.Invoice, error) {
				if cmd.Items != nil || cmd.TaxRate != nil || cmd.Discount == nil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Invoice{ID: 1001, Total: decimal.RequireFromString("845.64"), UpdatedAt: &now}, nil
			},
		)

		w := doJSON(r, http.MethodPut, "/api/invoices/1001", `{"discount":0.10}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total"] != "845.64" || body["updated_at"] == nil {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))
		uc.EXPECT().Update(gomock.Any(), int64(9999), gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := doJSON(r, http.MethodPut, "/api/invoices/9999", `{"tax_rate":0.1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_SendReminder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().SendReminder(gomock.Any(), int64(1001), usecase.ReminderCommand{}).Return(entities.Notification{
			ID:        "n-1",
			InvoiceID: 1001,
			Recipient: "client1@example.com",
			Method:    entities.NotificationMethodEmail,
			Message:   "Reminder: Your invoice #1001 is due today.",
			Status:    entities.NotificationStatusSent,
		}, nil)

		w := doJSON(r, http.MethodPost, "/api/invoices/1001/reminders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["method"] != "email" || body["status"] != "sent" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("overrides passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().SendReminder(gomock.Any(), int64(1001), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, cmd usecase.ReminderCommand) (entities.Notification, error) {
				if cmd.DueDate == nil || *cmd.DueDate != "2024-01-01" || cmd.Contact == nil || cmd.Contact.Phone != "+1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Notification{Method: entities.NotificationMethodSMS}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/api/invoices/1001/reminders", `{"due_date":"2024-01-01","client_contact":{"phone":"+1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrInvoiceNotFound, http.StatusNotFound, "INVOICE_NOT_FOUND"},
			{usecase.ErrInvalidDueDate, http.StatusBadRequest, "INVALID_DUE_DATE"},
			{usecase.ErrReminderContactMissing, http.StatusUnprocessableEntity, "REMINDER_CONTACT_MISSING"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			r := newInvoiceRouter(NewInvoiceHandler(uc))
			uc.EXPECT().SendReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Notification{}, tc.err)

			w := doJSON(r, http.MethodPost, "/api/invoices/1001/reminders", "")
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.code {
				t.Fatalf("%v: expected code %s, got %v", tc.err, tc.code, body["code"])
			}
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		w := doJSON(r, http.MethodPost, "/api/invoices/1001/reminders", `{"due_date":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
