package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sav_interventions/internal/adapter/http/handlers/mocks"
	"sav_interventions/internal/domain/entities"
	"sav_interventions/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillingHandler_CalculateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/calculate", h.CalculateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/calculate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/calculate", h.CalculateInvoice)

		uc.EXPECT().CalculateInvoice(gomock.Any(), "i-1", 2.0, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ float64, parts []entities.PartLine) (entities.Invoice, error) {
				if len(parts) != 1 || parts[0].UnitPrice != 45 {
					t.Fatalf("unexpected parts: %+v", parts)
				}
				return entities.Invoice{InterventionID: "i-1", LaborCost: 360, PartsCost: 45, SubtotalHT: 405, VAT: 81, TotalTTC: 486}, nil
			},
		)

		body := `{"hours_worked":2,"parts":[{"reference":"JNT-01","quantity":1,"unit_price":45}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/calculate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total_ttc"] != 486.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not completed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/calculate", h.CalculateInvoice)

		uc.EXPECT().CalculateInvoice(gomock.Any(), "i-1", 2.0, gomock.Any()).Return(entities.Invoice{}, usecase.ErrNotCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/calculate", bytes.NewBufferString(`{"hours_worked":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid hours maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/calculate", h.CalculateInvoice)

		uc.EXPECT().CalculateInvoice(gomock.Any(), "i-1", 0.0, gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvalidHours)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/calculate", bytes.NewBufferString(`{"hours_worked":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillingHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("under warranty maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/generate", h.GenerateInvoice)

		uc.EXPECT().GenerateInvoice(gomock.Any(), "i-1", 2.0, gomock.Any()).Return(entities.Invoice{}, usecase.ErrUnderWarranty)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/generate", bytes.NewBufferString(`{"hours_worked":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/generate", h.GenerateInvoice)

		uc.EXPECT().GenerateInvoice(gomock.Any(), "missing", 2.0, gomock.Any()).Return(entities.Invoice{}, usecase.ErrInterventionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/missing/invoice/generate", bytes.NewBufferString(`{"hours_worked":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/generate", h.GenerateInvoice)

		uc.EXPECT().GenerateInvoice(gomock.Any(), "i-1", 2.0, gomock.Any()).Return(
			entities.Invoice{InterventionID: "i-1", TotalTTC: 486}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/generate", bytes.NewBufferString(`{"hours_worked":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingHandler_CheckBilling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("needs invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/interventions/:id/billing-check", h.CheckBilling)

		uc.EXPECT().BillingCheck(gomock.Any(), "i-1").Return(entities.BillingCheck{
			InterventionID: "i-1",
			Numero:         "INT-20250601-001",
			Status:         entities.InterventionStatusCompleted,
			NeedsInvoice:   true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/interventions/i-1/billing-check", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["needs_invoice"] != true || body["numero"] != "INT-20250601-001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.GET("/v1/interventions/:id/billing-check", h.CheckBilling)

		uc.EXPECT().BillingCheck(gomock.Any(), "missing").Return(entities.BillingCheck{}, usecase.ErrInterventionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/interventions/missing/billing-check", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillingHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/pay", h.PayInvoice)

		amount := 486.0
		uc.EXPECT().MarkPaid(gomock.Any(), "i-1", gomock.Any()).Return(
			entities.Intervention{ID: "i-1", InvoiceAmount: &amount, InvoicePaid: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["invoice_paid"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("provider payload forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/pay", h.PayInvoice)

		uc.EXPECT().MarkPaid(gomock.Any(), "i-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Intervention, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload not forwarded: %v", err)
				}
				if body["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Intervention{ID: "i-1", InvoicePaid: true}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/pay",
			bytes.NewBufferString(`{"payment_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no invoice maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/interventions/:id/invoice/pay", h.PayInvoice)

		uc.EXPECT().MarkPaid(gomock.Any(), "i-1", gomock.Any()).Return(entities.Intervention{}, usecase.ErrNoInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/interventions/i-1/invoice/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
